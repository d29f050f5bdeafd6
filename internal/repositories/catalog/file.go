package catalog

import (
	"context"
	"log/slog"
	"os"

	"github.com/KirkDiggler/dragonwilds-editor/internal/entities"
	"github.com/KirkDiggler/dragonwilds-editor/internal/errors"
)

type fileRepository struct {
	paths map[entities.CatalogKind]string
}

// FileConfig contains configuration for the JSON file catalog repository.
type FileConfig struct {
	ItemsPath string
	RunesPath string
}

// Validate validates the FileConfig.
func (cfg *FileConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ItemsPath", cfg.ItemsPath, vb)
	errors.ValidateRequired("RunesPath", cfg.RunesPath, vb)
	return vb.Build()
}

// NewFile creates a catalog repository reading items.json and runes.json
func NewFile(cfg *FileConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &fileRepository{
		paths: map[entities.CatalogKind]string{
			entities.CatalogItems: cfg.ItemsPath,
			entities.CatalogRunes: cfg.RunesPath,
		},
	}, nil
}

func (r *fileRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if err := validateKind(input.Kind); err != nil {
		return nil, err
	}

	path := r.paths[input.Kind]
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.FromFS(err, path, "failed to read catalog file")
	}

	entries, err := decodeEntries(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse catalog file %s", path).
			WithMeta("path", path)
	}

	slog.DebugContext(ctx, "catalog loaded from file",
		"kind", input.Kind,
		"path", path,
		"entries", len(entries))

	return &LoadOutput{
		Kind:    input.Kind,
		Source:  path,
		Entries: entries,
	}, nil
}
