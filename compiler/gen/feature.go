package gen

import (
	"os"
	"path/filepath"
)

var (
	// FeatureJPA enables persistence annotations on policy classes. It has
	// no effect unless a persistence provider is configured.
	FeatureJPA = Feature{
		Name:        "jpa",
		Stage:       Stable,
		Default:     true,
		Description: "Generates JPA annotations for persistent policy component types",
	}

	// FeatureDocumentation writes the label and description bundle and
	// references it with @IpsDocumented.
	FeatureDocumentation = Feature{
		Name:        "documentation",
		Stage:       Beta,
		Default:     false,
		Description: "Generates the documentation bundle and the @IpsDocumented annotations",
		cleanup: func(c *Config) error {
			if c.DocumentationBundle == "" {
				return nil
			}
			path := bundlePath(c.Target, c.BasePackage, c.DocumentationBundle)
			return remove(filepath.Dir(path), filepath.Base(path))
		},
	}

	// FeatureDeprecation emits @Deprecated on deprecated model elements.
	FeatureDeprecation = Feature{
		Name:        "deprecation",
		Stage:       Stable,
		Default:     true,
		Description: "Marks getters of deprecated attributes and associations with @Deprecated",
	}

	// AllFeatures holds a list of all feature-flags.
	AllFeatures = []Feature{
		FeatureJPA,
		FeatureDocumentation,
		FeatureDeprecation,
	}
)

// FeatureStage describes the stage of the codegen feature.
type FeatureStage int

const (
	_ FeatureStage = iota

	// Experimental features are in development.
	Experimental

	// Alpha features are complete but their output may still change.
	Alpha

	// Beta features are documented and no breaking changes are expected.
	Beta

	// Stable features have been in use for a while.
	Stable
)

// A Feature of the annotation generator.
type Feature struct {
	// Name of the feature.
	Name string

	// Stage of the feature.
	Stage FeatureStage

	// Default values indicates if this feature is enabled by default.
	Default bool

	// A Description of this feature.
	Description string

	// cleanup removes the output of the feature when it is disabled,
	// e.g. files from previous runs.
	cleanup func(*Config) error
}

// cleanupFeatures runs the cleanup of every disabled feature.
func cleanupFeatures(c *Config) error {
	for _, f := range AllFeatures {
		if f.cleanup == nil || c.FeatureEnabled(f.Name) {
			continue
		}
		if err := f.cleanup(c); err != nil {
			return err
		}
	}
	return nil
}

// remove file (if exists) and its dir if it's empty.
func remove(dir, file string) error {
	if err := os.Remove(filepath.Join(dir, file)); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	infos, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		return os.Remove(dir)
	}
	return nil
}
