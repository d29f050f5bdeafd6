package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dragonwilds-editor/internal/entities"
	"github.com/KirkDiggler/dragonwilds-editor/internal/errors"
	"github.com/KirkDiggler/dragonwilds-editor/internal/redis"
	"github.com/KirkDiggler/dragonwilds-editor/internal/repositories/catalog"
)

func newCatalogCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and publish the item and rune catalogs",
	}

	cmd.AddCommand(newCatalogListCmd(opts))
	cmd.AddCommand(newCatalogPushCmd(opts))
	cmd.AddCommand(newCatalogVerifyCmd(opts))

	return cmd
}

func parseKind(kind string) (entities.CatalogKind, error) {
	for _, k := range entities.CatalogKinds() {
		if string(k) == kind {
			return k, nil
		}
	}
	return "", errors.InvalidArgumentf("unknown catalog kind %q, want items or runes", kind)
}

func newCatalogListCmd(opts *rootOptions) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog names from the configured source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k, err := parseKind(kind)
			if err != nil {
				return err
			}

			repo, closeRepo, err := newCatalogRepository(opts.cfg)
			if err != nil {
				return err
			}
			defer closeRepo()

			output, err := repo.Load(cmd.Context(), catalog.LoadInput{Kind: k})
			if err != nil {
				return err
			}

			c := entities.NewCatalog(k, output.Entries)
			out := cmd.OutOrStdout()
			for _, name := range c.Names() {
				entry, _ := c.Lookup(name)
				fmt.Fprintf(out, "%-32s max %d\n", name, entry.Max)
			}
			fmt.Fprintf(out, "%d names from %s\n", c.Len(), output.Source)
			if !output.UpdatedAt.IsZero() {
				fmt.Fprintf(out, "stored %s\n", output.UpdatedAt.UTC().Format(time.RFC3339))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", string(entities.CatalogItems), "catalog kind: items or runes")
	return cmd
}

func newCatalogPushCmd(opts *rootOptions) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Copy a catalog file into Redis",
		Long: `Copy items.json or runes.json into Redis so editors started with
--catalog-source redis share one catalog.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			k, err := parseKind(kind)
			if err != nil {
				return err
			}

			fileRepo, err := newFileCatalog(opts.cfg)
			if err != nil {
				return err
			}
			loaded, err := fileRepo.Load(ctx, catalog.LoadInput{Kind: k})
			if err != nil {
				return err
			}

			redisRepo, client, err := newRedisCatalog(opts.cfg)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			if err := redis.Ping(ctx, client); err != nil {
				return errors.WrapWithCodef(err, errors.CodeUnavailable, "redis at %s is unreachable", opts.cfg.RedisAddr)
			}

			stored, err := redisRepo.Store(ctx, catalog.StoreInput{Kind: k, Entries: loaded.Entries})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Pushed %d entries from %s to %s\n", stored.Entries, loaded.Source, stored.Source)
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", string(entities.CatalogItems), "catalog kind: items or runes")
	return cmd
}

func newCatalogVerifyCmd(opts *rootOptions) *cobra.Command {
	var purge bool

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the catalogs stored in Redis",
		Long: `Decode every catalog stored in Redis and report the ones that are
corrupt. With --delete the corrupt catalogs are removed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			repo, client, err := newRedisCatalog(opts.cfg)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			output, err := repo.Verify(ctx, catalog.VerifyInput{})
			if err != nil {
				return err
			}

			for _, c := range output.Corrupted {
				fmt.Fprintf(out, "corrupt %s: %s\n", c.Key, c.Reason)
			}
			fmt.Fprintf(out, "Checked %d catalogs, found %d corrupt\n", output.Checked, len(output.Corrupted))

			if !purge {
				return nil
			}
			for _, c := range output.Corrupted {
				if _, err := repo.Delete(ctx, catalog.DeleteInput{Key: c.Key}); err != nil {
					return err
				}
				fmt.Fprintf(out, "Deleted %s\n", c.Key)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&purge, "delete", false, "delete corrupt catalogs")
	return cmd
}
