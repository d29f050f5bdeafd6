package editor

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/dragonwilds-editor/internal/entities"
	"github.com/KirkDiggler/dragonwilds-editor/internal/repositories/catalog"
)

var unavailableWarnings = map[entities.CatalogKind]string{
	entities.CatalogItems: "Could not load items.json; hotbar/backpack disabled.",
	entities.CatalogRunes: "Could not load runes.json; runes disabled.",
}

// LoadCatalogs loads the items and runes catalogs once each. A failure never
// propagates: that catalog comes back empty and unavailable, and a warning
// is added for the user.
func LoadCatalogs(ctx context.Context, repo catalog.Repository) *CatalogLoadResult {
	result := &CatalogLoadResult{}

	for _, kind := range entities.CatalogKinds() {
		c := loadCatalog(ctx, repo, kind)
		if !c.Available {
			result.Warnings = append(result.Warnings, unavailableWarnings[kind])
		}

		switch kind {
		case entities.CatalogItems:
			result.Items = c
		case entities.CatalogRunes:
			result.Runes = c
		}
	}

	return result
}

func loadCatalog(ctx context.Context, repo catalog.Repository, kind entities.CatalogKind) *entities.Catalog {
	if repo == nil {
		slog.WarnContext(ctx, "no catalog repository configured", "kind", kind)
		return entities.UnavailableCatalog(kind)
	}

	output, err := repo.Load(ctx, catalog.LoadInput{Kind: kind})
	if err != nil {
		slog.WarnContext(ctx, "catalog unavailable",
			"kind", kind,
			"error", err)
		return entities.UnavailableCatalog(kind)
	}

	c := entities.NewCatalog(kind, output.Entries)
	slog.InfoContext(ctx, "catalog loaded",
		"kind", kind,
		"source", output.Source,
		"names", c.Len())

	return c
}
