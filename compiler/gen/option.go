package gen

import (
	"errors"

	"go.uber.org/zap"

	"github.com/syssam/faktorgen/persistence"
)

// Option configures code generation.
type Option func(*Config) error

// WithHeader sets the file header comment.
// The header is added at the top of each generated file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithTarget sets the output directory.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithBasePackage sets the Java package all generated classes are placed
// below, e.g. "org.acme.model".
func WithBasePackage(pkg string) Option {
	return func(c *Config) error {
		c.BasePackage = pkg
		return nil
	}
}

// WithWorkers sets the number of files written in parallel.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n < 0 {
			return NewConfigError("Workers", n, "workers cannot be negative")
		}
		c.Workers = n
		return nil
	}
}

// WithCacheSize sets the capacity of the node cache.
func WithCacheSize(n int) Option {
	return func(c *Config) error {
		if n < 0 {
			return NewConfigError("CacheSize", n, "cache size cannot be negative")
		}
		c.CacheSize = n
		return nil
	}
}

// WithProvider selects the persistence technology by id.
// Unknown ids are rejected.
func WithProvider(id persistence.ID) Option {
	return func(c *Config) error {
		if _, err := persistence.New(id); err != nil {
			return NewConfigError("Provider", id, err.Error())
		}
		c.Provider = id
		return nil
	}
}

// WithDocumentation sets the documentation bundle and its default locale.
func WithDocumentation(bundle, defaultLocale string) Option {
	return func(c *Config) error {
		if bundle == "" {
			return NewConfigError("DocumentationBundle", nil, "bundle name cannot be empty")
		}
		c.DocumentationBundle = bundle
		c.DefaultLocale = defaultLocale
		return nil
	}
}

// WithFeatures enables specific features.
func WithFeatures(features ...Feature) Option {
	return func(c *Config) error {
		for _, f := range features {
			if !c.FeatureEnabled(f.Name) {
				c.Features = append(c.Features, f)
			}
		}
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = l
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config with the given options.
// Features enabled by default are added first.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{}
	for _, f := range AllFeatures {
		if f.Default {
			c.Features = append(c.Features, f)
		}
	}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
