package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputConfig(t *testing.T) {
	t.Run("returns grouped output settings", func(t *testing.T) {
		c := &Config{
			Target:      "./src/generated",
			BasePackage: "org.acme.model",
			Header:      "// Custom header",
		}

		output := c.Output()

		assert.Equal(t, "./src/generated", output.Target)
		assert.Equal(t, "org.acme.model", output.BasePackage)
		assert.Equal(t, "// Custom header", output.Header)
	})

	t.Run("handles empty config", func(t *testing.T) {
		output := (&Config{}).Output()

		assert.Empty(t, output.Target)
		assert.Empty(t, output.BasePackage)
		assert.Empty(t, output.Header)
	})
}

func TestFeatureEnabled(t *testing.T) {
	c := &Config{Features: []Feature{FeatureDocumentation}}
	assert.True(t, c.FeatureEnabled("documentation"))
	assert.False(t, c.FeatureEnabled("jpa"))
	assert.False(t, (&Config{}).FeatureEnabled("documentation"))
}

func TestAllFeatures(t *testing.T) {
	names := make(map[string]bool)
	for _, f := range AllFeatures {
		assert.NotEmpty(t, f.Description, f.Name)
		assert.False(t, names[f.Name], "duplicate feature %s", f.Name)
		names[f.Name] = true
	}
	assert.Equal(t, map[string]bool{"jpa": true, "documentation": true, "deprecation": true}, names)
}

func TestCleanupFeatures(t *testing.T) {
	t.Run("removes bundle of disabled feature", func(t *testing.T) {
		target := t.TempDir()
		path := bundlePath(target, "org.acme", "model-documentation")
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("stale=1\n"), 0o644))

		c := MustNewConfig(WithTarget(target), WithBasePackage("org.acme"), WithDocumentation("model-documentation", "en"))
		require.NoError(t, cleanupFeatures(c))
		assert.NoFileExists(t, path)
		assert.NoDirExists(t, filepath.Dir(path), "empty directory is removed")
	})

	t.Run("keeps bundle of enabled feature", func(t *testing.T) {
		target := t.TempDir()
		path := bundlePath(target, "", "docs")
		require.NoError(t, os.WriteFile(path, []byte("k=v\n"), 0o644))

		c := MustNewConfig(WithTarget(target), WithDocumentation("docs", "en"), WithFeatures(FeatureDocumentation))
		require.NoError(t, cleanupFeatures(c))
		assert.FileExists(t, path)
	})

	t.Run("missing file is not an error", func(t *testing.T) {
		c := MustNewConfig(WithTarget(t.TempDir()), WithDocumentation("docs", "en"))
		assert.NoError(t, cleanupFeatures(c))
	})
}
