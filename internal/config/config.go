// Package config loads browser settings using koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix is the prefix of environment overrides, e.g.
	// RECIPES_CATALOG_PATTERN.
	EnvPrefix = "RECIPES_"

	// DefaultFile is read when no config path is given and it exists.
	DefaultFile = "recipebrowser.yaml"

	// DefaultLogPath keeps logs off the terminal while the browser runs.
	DefaultLogPath = ".recipebrowser/recipebrowser.log"

	DefaultLogFileMaxSizeMB  = 10
	DefaultLogFileMaxBackups = 3
	DefaultLogFileMaxAgeDays = 28

	DefaultWrap = 80
)

// Config is the root configuration structure.
type Config struct {
	Catalog CatalogConfig `koanf:"catalog"`
	Log     LogConfig     `koanf:"log"     validate:"required"`
	Display DisplayConfig `koanf:"display" validate:"required"`
}

// CatalogConfig selects the recipe source.
type CatalogConfig struct {
	// Pattern is a file path or doublestar glob. Empty uses the built-in
	// collection.
	Pattern string `koanf:"pattern"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string        `koanf:"level" validate:"required,oneof=off normal verbose"`
	File  LogFileConfig `koanf:"file"`
}

// LogFileConfig contains rolling log file settings. An empty path or
// "stderr" logs to the console.
type LogFileConfig struct {
	Path       string `koanf:"path"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"min=0,max=365"`
}

// DisplayConfig controls terminal rendering of recipe details.
type DisplayConfig struct {
	Style string `koanf:"style" validate:"required,oneof=auto dark light notty"`
	Wrap  int    `koanf:"wrap"  validate:"min=20,max=200"`
}

// defaults returns the default configuration values.
func defaults() map[string]any {
	return map[string]any{
		"catalog.pattern": "",

		"log.level":            "normal",
		"log.file.path":        DefaultLogPath,
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,

		"display.style": "auto",
		"display.wrap":  DefaultWrap,
	}
}

// Load loads configuration with the following precedence (highest to lowest):
//  1. Environment variables (RECIPES_ prefix)
//  2. The config file at path, or DefaultFile if path is empty
//  3. Default values
//
// An explicit path that does not exist is an error; a missing DefaultFile
// is not.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	err := k.Load(confmap.Provider(defaults(), "."), nil)
	if err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config %s: %w", path, err)
		}
	} else if err := loadFileIfExists(k, DefaultFile); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", DefaultFile, err)
	}

	err = k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// envKeys maps RECIPES_ suffixes to config keys. Keys themselves contain
// underscores, so a plain "_" to "." replacement is ambiguous.
var envKeys = func() map[string]string {
	m := make(map[string]string)
	for key := range defaults() {
		m[strings.ReplaceAll(key, ".", "_")] = key
	}
	return m
}()

// envKey converts RECIPES_LOG_FILE_MAX_SIZE to log.file.max_size. Unknown
// variables fall back to replacing every "_" with ".".
func envKey(s string) string {
	name := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if key, ok := envKeys[name]; ok {
		return key
	}
	return strings.ReplaceAll(name, "_", ".")
}

// loadFileIfExists loads a YAML config file if it exists.
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return k.Load(file.Provider(path), yaml.Parser())
}
