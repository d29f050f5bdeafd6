package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dragonwilds-editor/internal/config"
	"github.com/KirkDiggler/dragonwilds-editor/internal/errors"
	"github.com/KirkDiggler/dragonwilds-editor/internal/orchestrators/editor"
	"github.com/KirkDiggler/dragonwilds-editor/internal/pkg/clock"
	"github.com/KirkDiggler/dragonwilds-editor/internal/redis"
	"github.com/KirkDiggler/dragonwilds-editor/internal/repositories/catalog"
	"github.com/KirkDiggler/dragonwilds-editor/internal/repositories/savefile"
)

const redisTimeout = 2 * time.Second

// deps are the repositories and session one command works with
type deps struct {
	saveRepo savefile.Repository
	catalogs *editor.CatalogLoadResult
	session  *editor.Session
	close    func()
}

func newFileCatalog(cfg *config.Config) (catalog.Repository, error) {
	return catalog.NewFile(&catalog.FileConfig{
		ItemsPath: cfg.ItemsPath,
		RunesPath: cfg.RunesPath,
	})
}

func newRedisCatalog(cfg *config.Config) (catalog.SharedRepository, redis.Client, error) {
	client, err := redis.NewClient(cfg.RedisAddr, &redis.Options{
		DialTimeout: redisTimeout,
		ReadTimeout: redisTimeout,
	})
	if err != nil {
		return nil, nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid redis address")
	}

	repo, err := catalog.NewRedis(&catalog.RedisConfig{
		Client: client,
		Clock:  clock.New(),
	})
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	return repo, client, nil
}

// newCatalogRepository opens the configured catalog source
func newCatalogRepository(cfg *config.Config) (catalog.Repository, func(), error) {
	if cfg.CatalogSource == config.CatalogSourceRedis {
		repo, client, err := newRedisCatalog(cfg)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() { _ = client.Close() }, nil
	}

	repo, err := newFileCatalog(cfg)
	if err != nil {
		return nil, nil, err
	}
	return repo, func() {}, nil
}

// newDeps loads both catalogs and builds a session. Catalog warnings go to
// warn; they never fail the command.
func newDeps(ctx context.Context, cfg *config.Config, warn io.Writer) (*deps, error) {
	catalogRepo, closeCatalog, err := newCatalogRepository(cfg)
	if err != nil {
		return nil, err
	}

	catalogs := editor.LoadCatalogs(ctx, catalogRepo)
	if warn != nil {
		for _, w := range catalogs.Warnings {
			fmt.Fprintf(warn, "Warning: %s\n", w)
		}
	}

	saveRepo := savefile.NewFile(nil)
	session, err := editor.NewSession(&editor.Config{
		SaveRepo: saveRepo,
		Items:    catalogs.Items,
		Runes:    catalogs.Runes,
	})
	if err != nil {
		closeCatalog()
		return nil, err
	}

	return &deps{
		saveRepo: saveRepo,
		catalogs: catalogs,
		session:  session,
		close:    closeCatalog,
	}, nil
}

// editFile opens path, applies edit and writes the file back
func editFile(cmd *cobra.Command, opts *rootOptions, path string, edit func(ctx context.Context, s *editor.Session) error) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	d, err := newDeps(ctx, opts.cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer d.close()

	if _, err := d.session.Open(ctx, path); err != nil {
		return err
	}

	if err := edit(ctx, d.session); err != nil {
		return err
	}

	output, err := d.session.Save(ctx)
	if err != nil {
		return err
	}

	slog.DebugContext(ctx, "save written", "path", output.Path, "bytes", output.BytesWritten)
	fmt.Fprintf(out, "Wrote back to: %s\n", output.Path)
	return nil
}
