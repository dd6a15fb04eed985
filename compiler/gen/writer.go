package gen

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"text/template"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:embed template/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("gen").
	Funcs(template.FuncMap{
		"propertyKey":   escapePropertyKey,
		"propertyValue": escapePropertyValue,
	}).
	ParseFS(templateFS, "template/*.tmpl"))

// TemplateWriter renders classes with templates and writes them in parallel.
type TemplateWriter struct {
	tmpl    *template.Template
	outDir  string
	workers int
	log     *zap.Logger

	// Metrics for performance monitoring
	mu      sync.Mutex
	metrics *WriterMetrics
}

// WriterMetrics tracks generation output.
type WriterMetrics struct {
	FilesGenerated int
	TotalBytes     int64
}

// NewTemplateWriter creates a writer into outDir.
func NewTemplateWriter(outDir string) *TemplateWriter {
	return &TemplateWriter{
		tmpl:    templates,
		outDir:  outDir,
		workers: runtime.GOMAXPROCS(0),
		log:     zap.NewNop(),
		metrics: &WriterMetrics{},
	}
}

// WithWorkers sets the number of parallel workers.
func (w *TemplateWriter) WithWorkers(n int) *TemplateWriter {
	if n > 0 {
		w.workers = n
	}
	return w
}

// WithLogger sets the logger.
func (w *TemplateWriter) WithLogger(l *zap.Logger) *TemplateWriter {
	if l != nil {
		w.log = l
	}
	return w
}

// Metrics returns the generation metrics.
func (w *TemplateWriter) Metrics() *WriterMetrics {
	w.mu.Lock()
	defer w.mu.Unlock()
	m := *w.metrics
	return &m
}

// Bundle is the documentation bundle written next to the classes.
type Bundle struct {
	// Path is the file path relative to the output directory.
	Path    string
	Entries []BundleEntry
}

// GenerateAll writes every class and, if not nil, the bundle.
func (w *TemplateWriter) GenerateAll(ctx context.Context, classes []*JavaClass, bundle *Bundle) error {
	if err := os.MkdirAll(w.outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	files := make([]fileTask, 0, len(classes)+1)
	for _, c := range classes {
		files = append(files, fileTask{
			name:     c.FileName(),
			template: "class",
			data:     c,
		})
	}
	if bundle != nil {
		files = append(files, fileTask{
			name:     bundle.Path,
			template: "bundle",
			data:     bundle.Entries,
		})
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(w.workers)

	for _, f := range files {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return w.generateFile(f)
			}
		})
	}

	return eg.Wait()
}

// fileTask represents a single file generation task.
type fileTask struct {
	name     string // output file path (relative to outDir)
	template string // template name to execute
	data     any    // data to pass to template
}

// generateFile generates a single file.
func (w *TemplateWriter) generateFile(f fileTask) error {
	var buf bytes.Buffer
	if err := w.tmpl.ExecuteTemplate(&buf, f.template, f.data); err != nil {
		return NewGenerationError(PhaseWrite, f.name, "execute template "+f.template, err)
	}

	fullPath := filepath.Join(w.outDir, f.name)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", f.name, err)
	}
	if err := os.WriteFile(fullPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", f.name, err)
	}
	w.log.Debug("file written", zap.String("file", f.name), zap.Int("bytes", buf.Len()))

	w.mu.Lock()
	w.metrics.FilesGenerated++
	w.metrics.TotalBytes += int64(buf.Len())
	w.mu.Unlock()

	return nil
}

var (
	propertyKeyEscaper = strings.NewReplacer(
		`\`, `\\`, " ", `\ `, "=", `\=`, ":", `\:`, "#", `\#`, "!", `\!`,
		"\n", `\n`, "\r", `\r`, "\t", `\t`)
	propertyValueEscaper = strings.NewReplacer(
		`\`, `\\`, "\n", `\n`, "\r", `\r`, "\t", `\t`)
)

func escapePropertyKey(s string) string { return propertyKeyEscaper.Replace(s) }

func escapePropertyValue(s string) string { return propertyValueEscaper.Replace(s) }
