package gen

import (
	"runtime"
	"slices"

	"go.uber.org/zap"

	"github.com/syssam/faktorgen/persistence"
)

// DefaultCacheSize is the node cache size used when none is configured.
const DefaultCacheSize = 1024

// Config holds the configuration of one generator run.
type Config struct {
	// Target is the output directory of the generated sources.
	Target string
	// BasePackage prefixes the Java package of every generated class,
	// e.g. "org.acme.model".
	BasePackage string
	// Header is written at the top of each generated file.
	Header string
	// Workers bounds the number of files written in parallel.
	Workers int
	// CacheSize is the capacity of the node cache of a build context.
	CacheSize int
	// Provider selects the persistence technology. None disables JPA.
	Provider persistence.ID
	// DocumentationBundle is the base name of the label and description
	// bundle referenced by @IpsDocumented.
	DocumentationBundle string
	// DefaultLocale is the default locale of the documentation bundle.
	DefaultLocale string
	// Features are the enabled optional features.
	Features []Feature
	// Logger receives progress messages. Nil means no logging.
	Logger *zap.Logger
}

// OutputConfig groups the output related settings.
type OutputConfig struct {
	Target      string
	BasePackage string
	Header      string
}

// Output returns the output related settings.
func (c *Config) Output() OutputConfig {
	return OutputConfig{
		Target:      c.Target,
		BasePackage: c.BasePackage,
		Header:      c.Header,
	}
}

// FeatureEnabled reports whether the feature with the given name is enabled.
func (c *Config) FeatureEnabled(name string) bool {
	return slices.ContainsFunc(c.Features, func(f Feature) bool { return f.Name == name })
}

// GeneratesJPA reports whether persistence annotations are generated.
func (c *Config) GeneratesJPA() bool {
	return c.Provider != "" && c.Provider != persistence.None && c.FeatureEnabled(FeatureJPA.Name)
}

func (c *Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (c *Config) cacheSize() int {
	if c.CacheSize > 0 {
		return c.CacheSize
	}
	return DefaultCacheSize
}

func (c *Config) logger() *zap.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return zap.NewNop()
}
