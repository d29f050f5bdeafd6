// Package config loads editor settings from defaults, an optional YAML file
// and EDITOR_* environment variables, in that order of precedence.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/dragonwilds-editor/internal/errors"
)

// Catalog sources
const (
	CatalogSourceFile  = "file"
	CatalogSourceRedis = "redis"
)

// Defaults
const (
	DefaultItemsPath = "items.json"
	DefaultRunesPath = "runes.json"
	DefaultRedisAddr = "localhost:6379"
	DefaultLogLevel  = "info"
)

var saveDirSegments = []string{"RSDragonwilds", "Saved", "SaveCharacters"}

// Config holds every editor setting. LogFile receives TUI logs; empty
// discards them.
type Config struct {
	ItemsPath     string `yaml:"items_path" env:"EDITOR_ITEMS_PATH"`
	RunesPath     string `yaml:"runes_path" env:"EDITOR_RUNES_PATH"`
	SaveDir       string `yaml:"save_dir" env:"EDITOR_SAVE_DIR"`
	CatalogSource string `yaml:"catalog_source" env:"EDITOR_CATALOG_SOURCE"`
	RedisAddr     string `yaml:"redis_addr" env:"EDITOR_REDIS_ADDR"`
	LogLevel      string `yaml:"log_level" env:"EDITOR_LOG_LEVEL"`
	LogFile       string `yaml:"log_file" env:"EDITOR_LOG_FILE"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		ItemsPath:     DefaultItemsPath,
		RunesPath:     DefaultRunesPath,
		SaveDir:       DefaultSaveDir(),
		CatalogSource: CatalogSourceFile,
		RedisAddr:     DefaultRedisAddr,
		LogLevel:      DefaultLogLevel,
	}
}

// Load builds the config from defaults, then the YAML file at path when
// path is not empty, then the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NotFoundf("config file %s not found", path).WithMeta("path", path)
		}
		return errors.Wrapf(err, "failed to read config file %s", path)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return errors.WrapWithCodef(err, errors.CodeInvalidArgument, "config file %s is not valid YAML", path)
	}

	return nil
}

// Validate checks the settings the selected catalog source needs
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("CatalogSource", c.CatalogSource,
		[]string{CatalogSourceFile, CatalogSourceRedis}, vb)

	switch c.CatalogSource {
	case CatalogSourceFile:
		errors.ValidateRequired("ItemsPath", c.ItemsPath, vb)
		errors.ValidateRequired("RunesPath", c.RunesPath, vb)
	case CatalogSourceRedis:
		errors.ValidateRequired("RedisAddr", c.RedisAddr, vb)
	}

	if _, err := c.SlogLevel(); err != nil {
		vb.InvalidField("LogLevel", "must be debug, info, warn or error")
	}

	return vb.Build()
}

// SlogLevel parses LogLevel, treating empty as info
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if strings.TrimSpace(c.LogLevel) == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, errors.InvalidArgumentf("unknown log level %q", c.LogLevel)
	}
	return level, nil
}

// DefaultSaveDir is the game's save folder under LOCALAPPDATA when it
// exists, otherwise the working directory.
func DefaultSaveDir() string {
	if base := os.Getenv("LOCALAPPDATA"); base != "" {
		dir := filepath.Join(append([]string{base}, saveDirSegments...)...)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}
