// Package main is the entry point for the Dragonwilds save editor
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dragonwilds-editor/internal/config"
)

// rootOptions carries the persistent flags and the resolved config to
// every subcommand
type rootOptions struct {
	configPath    string
	itemsPath     string
	runesPath     string
	catalogSource string
	redisAddr     string
	logLevel      string

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "dragonwilds-editor",
		Short: "RS Dragonwilds character save editor",
		Long: `Edit RS Dragonwilds character saves: skill experience and the hotbar,
backpack and rune inventory slots. Run "tui" for the interactive editor or
use the skills and inventory commands for scripted edits.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.resolve(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "YAML config file")
	flags.StringVar(&opts.itemsPath, "items", config.DefaultItemsPath, "items catalog file")
	flags.StringVar(&opts.runesPath, "runes", config.DefaultRunesPath, "runes catalog file")
	flags.StringVar(&opts.catalogSource, "catalog-source", config.CatalogSourceFile, "catalog source: file or redis")
	flags.StringVar(&opts.redisAddr, "redis-addr", config.DefaultRedisAddr, "Redis address for the redis catalog source")
	flags.StringVar(&opts.logLevel, "log-level", config.DefaultLogLevel, "log level: debug, info, warn or error")

	cmd.AddCommand(newTUICmd(opts))
	cmd.AddCommand(newShowCmd(opts))
	cmd.AddCommand(newSkillsCmd(opts))
	cmd.AddCommand(newInventoryCmd(opts))
	cmd.AddCommand(newCatalogCmd(opts))

	return cmd
}

// resolve layers flags the user set over the file and environment config
func (o *rootOptions) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("items") {
		cfg.ItemsPath = o.itemsPath
	}
	if flags.Changed("runes") {
		cfg.RunesPath = o.runesPath
	}
	if flags.Changed("catalog-source") {
		cfg.CatalogSource = o.catalogSource
	}
	if flags.Changed("redis-addr") {
		cfg.RedisAddr = o.redisAddr
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := cfg.SlogLevel()
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	o.cfg = cfg
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
