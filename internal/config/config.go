// Package config loads the faktorgen.yaml project configuration.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"

	"github.com/syssam/faktorgen/persistence"
)

// Config represents the faktorgen configuration.
type Config struct {
	Project string `mapstructure:"project"`
	// Model is the snapshot file of the project.
	Model string `mapstructure:"model"`
	// SearchPath lists snapshot files consulted after the project and the
	// projects it references.
	SearchPath  []string          `mapstructure:"search_path"`
	Locale      string            `mapstructure:"locale"`
	Persistence PersistenceConfig `mapstructure:"persistence"`
	Generator   GeneratorConfig   `mapstructure:"generator"`
	Log         LogConfig         `mapstructure:"log"`
}

// PersistenceConfig selects the persistence technology.
type PersistenceConfig struct {
	Provider string `mapstructure:"provider"`
}

// GeneratorConfig represents code generation configuration.
type GeneratorConfig struct {
	Output              string `mapstructure:"output"`
	BasePackage         string `mapstructure:"base_package"`
	Header              string `mapstructure:"header"`
	Workers             int    `mapstructure:"workers"`
	CacheSize           int    `mapstructure:"cache_size"`
	GenerateJPA         bool   `mapstructure:"generate_jpa"`
	DocumentationBundle string `mapstructure:"documentation_bundle"`
}

// LogConfig represents logging configuration. File is empty for console
// only logging; sizes are in megabytes and ages in days.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
	Dev        bool   `mapstructure:"dev"`
}

// EnvPrefix prefixes environment variables overriding configuration keys,
// e.g. FAKTORGEN_GENERATOR_WORKERS.
const EnvPrefix = "FAKTORGEN"

// Load loads the configuration from path or, if path is empty, from
// faktorgen.yml or faktorgen.yaml in the current directory. A missing
// default file is not an error. Relative paths are resolved against the
// directory of the file read.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("project", "")
	v.SetDefault("model", "model.yaml")
	v.SetDefault("search_path", []string{})
	v.SetDefault("locale", "en")
	v.SetDefault("persistence.provider", string(persistence.None))
	v.SetDefault("generator.output", "src/generated/java")
	v.SetDefault("generator.base_package", "")
	v.SetDefault("generator.header", "// Generated by faktorgen. DO NOT EDIT.")
	v.SetDefault("generator.workers", 0)
	v.SetDefault("generator.cache_size", 0)
	v.SetDefault("generator.generate_jpa", true)
	v.SetDefault("generator.documentation_bundle", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)
	v.SetDefault("log.compress", false)
	v.SetDefault("log.dev", false)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("faktorgen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if file := v.ConfigFileUsed(); file != "" {
		config.resolve(filepath.Dir(file))
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) resolve(dir string) {
	abs := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}
	c.Model = abs(c.Model)
	c.Generator.Output = abs(c.Generator.Output)
	for i, p := range c.SearchPath {
		c.SearchPath[i] = abs(p)
	}
	c.Log.File = abs(c.Log.File)
}

// LocaleTag returns the parsed locale.
func (c *Config) LocaleTag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.English
	}
	return tag
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	if _, err := language.Parse(cfg.Locale); err != nil {
		return fmt.Errorf("locale must be a BCP 47 language tag, got: %s", cfg.Locale)
	}
	if !slices.Contains(persistence.IDs(), persistence.ID(cfg.Persistence.Provider)) {
		return fmt.Errorf("persistence.provider must be one of %q, got: %s", persistence.IDs(), cfg.Persistence.Provider)
	}
	if cfg.Generator.Workers < 0 {
		return fmt.Errorf("generator.workers must not be negative, got: %d", cfg.Generator.Workers)
	}
	if cfg.Generator.CacheSize < 0 {
		return fmt.Errorf("generator.cache_size must not be negative, got: %d", cfg.Generator.CacheSize)
	}
	if _, err := zapcore.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}
