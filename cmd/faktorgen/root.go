package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/syssam/faktorgen/compiler/gen"
	"github.com/syssam/faktorgen/compiler/load"
	"github.com/syssam/faktorgen/internal/config"
	"github.com/syssam/faktorgen/internal/logs"
	"github.com/syssam/faktorgen/model"
	"github.com/syssam/faktorgen/persistence"
)

// app holds the state shared by the subcommands.
type app struct {
	configPath string
	verbose    bool

	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "faktorgen",
		Short: "Product model reconciliation and Java code generation",
		Long: `faktorgen keeps product components in line with the product component
types they instantiate and generates the Java classes of the model.

The model is read from the YAML snapshot named in faktorgen.yaml.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logs.Sync()
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file (default faktorgen.yaml in the working directory)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug output")

	root.AddCommand(newDeltaCmd(a))
	root.AddCommand(newGenerateCmd(a))
	root.AddCommand(newStructureCmd(a))
	root.AddCommand(newWatchCmd(a))
	return root
}

func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	a.cfg = cfg
	a.log = logs.Init("faktorgen", cfg.Log)
	logs.Debug("configuration loaded", zap.String("model", cfg.Model))
	return nil
}

// loadProject loads the model and the projects on the configured search
// path.
func (a *app) loadProject() (*model.Project, *model.SearchPath, error) {
	p, err := load.Load(a.cfg.Model)
	if err != nil {
		return nil, nil, err
	}
	for _, path := range a.cfg.SearchPath {
		ref, err := load.Load(path)
		if err != nil {
			return nil, nil, err
		}
		p.References = append(p.References, ref)
	}
	sp := model.NewSearchPath(p)
	a.log.Debug("model loaded",
		zap.String("project", p.Name),
		zap.Int("projects", len(sp.Projects())),
		zap.Int("components", len(p.ProductCmpts())))
	return p, sp, nil
}

// save writes p back to the model file, keeping its references.
func (a *app) save(p *model.Project) error {
	orig, err := load.ReadFile(a.cfg.Model)
	if err != nil {
		return err
	}
	s := load.NewSnapshot(p)
	s.References = orig.References
	return load.WriteFile(a.cfg.Model, s)
}

func (a *app) genConfig() (*gen.Config, error) {
	g := a.cfg.Generator
	provider := persistence.ID(a.cfg.Persistence.Provider)
	if !g.GenerateJPA {
		provider = persistence.None
	}
	opts := []gen.Option{
		gen.WithTarget(g.Output),
		gen.WithBasePackage(g.BasePackage),
		gen.WithHeader(g.Header),
		gen.WithWorkers(g.Workers),
		gen.WithCacheSize(g.CacheSize),
		gen.WithProvider(provider),
		gen.WithLogger(a.log),
	}
	if g.DocumentationBundle != "" {
		opts = append(opts,
			gen.WithDocumentation(g.DocumentationBundle, a.cfg.Locale),
			gen.WithFeatures(gen.FeatureDocumentation))
	}
	return gen.NewConfig(opts...)
}

func (a *app) generate(ctx context.Context, out io.Writer) error {
	p, sp, err := a.loadProject()
	if err != nil {
		return err
	}
	c, err := a.genConfig()
	if err != nil {
		return err
	}
	m, err := gen.Generate(ctx, sp, p, c)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "generated %d files (%d bytes) into %s\n", m.FilesGenerated, m.TotalBytes, c.Target)
	return err
}
