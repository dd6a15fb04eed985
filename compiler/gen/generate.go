package gen

import (
	"context"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/syssam/faktorgen/model"
)

// Generate builds the classes of the types declared by p, resolving
// references with r, and writes them below the configured target. It runs
// in a fresh context, so concurrent calls do not share node caches.
func Generate(ctx context.Context, r model.Resolver, p *model.Project, c *Config) (*WriterMetrics, error) {
	if c == nil || c.Target == "" {
		return nil, NewConfigError("Target", nil, "missing target directory in config")
	}
	start := time.Now()
	gctx, err := NewContext(r, c)
	if err != nil {
		return nil, err
	}
	b := NewBuilder(gctx)
	classes, err := b.Build(p)
	if err != nil {
		return nil, err
	}

	var bundle *Bundle
	if c.FeatureEnabled(FeatureDocumentation.Name) && c.DocumentationBundle != "" {
		path, err := filepath.Rel(c.Target, bundlePath(c.Target, c.BasePackage, c.DocumentationBundle))
		if err != nil {
			return nil, NewGenerationError(PhaseWrite, c.DocumentationBundle, "bundle path", err)
		}
		bundle = &Bundle{Path: path, Entries: b.Documentation(p)}
	}

	w := NewTemplateWriter(c.Target).WithWorkers(c.workers()).WithLogger(gctx.log)
	if err := w.GenerateAll(ctx, classes, bundle); err != nil {
		return nil, err
	}
	if err := cleanupFeatures(c); err != nil {
		return nil, NewGenerationError(PhaseCleanup, c.Target, "", err)
	}
	m := w.Metrics()
	gctx.log.Info("generation finished",
		zap.String("project", p.Name),
		zap.Int("files", m.FilesGenerated),
		zap.Int64("bytes", m.TotalBytes),
		zap.Duration("took", time.Since(start)))
	return m, nil
}
