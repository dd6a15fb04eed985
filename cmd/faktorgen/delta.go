package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/syssam/faktorgen/delta"
	"github.com/syssam/faktorgen/internal/report"
	"github.com/syssam/faktorgen/model"
)

func newDeltaCmd(a *app) *cobra.Command {
	var (
		fix    bool
		format string
	)
	cmd := &cobra.Command{
		Use:   "delta [component...]",
		Short: "List differences between product components and their types",
		Long: `List the differences between product components and their types.

Without arguments all components of the project are checked. With --fix the
fixes of all entries are applied and the model file is rewritten.

Examples:
  faktorgen delta
  faktorgen delta products.Home2026 --format json
  faktorgen delta --fix`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}
			p, sp, err := a.loadProject()
			if err != nil {
				return err
			}
			cmpts, err := components(p, args)
			if err != nil {
				return err
			}

			deltas := make([]*delta.Delta, 0, len(cmpts))
			for _, c := range cmpts {
				deltas = append(deltas, delta.Compute(c, sp, delta.WithLogger(a.log)))
			}
			if err := report.Write(cmd.OutOrStdout(), f, deltas, delta.NewPrinter(a.cfg.LocaleTag())); err != nil {
				return err
			}
			if !fix {
				return nil
			}

			fixed := 0
			for _, d := range deltas {
				if !d.IsEmpty() {
					d.FixAll()
					fixed++
				}
			}
			if fixed == 0 {
				return nil
			}
			if err := a.save(p); err != nil {
				return fmt.Errorf("write fixed model: %w", err)
			}
			a.log.Info("fixed components", zap.Int("components", fixed), zap.String("model", a.cfg.Model))
			return nil
		},
	}
	cmd.Flags().BoolVar(&fix, "fix", false, "apply all fixes and write the model back")
	cmd.Flags().StringVarP(&format, "format", "f", string(report.Text), fmt.Sprintf("output format %q", report.Formats()))
	return cmd
}

// components returns the named components of p, or all of them.
func components(p *model.Project, names []string) ([]*model.ProductCmpt, error) {
	if len(names) == 0 {
		return p.ProductCmpts(), nil
	}
	cmpts := make([]*model.ProductCmpt, 0, len(names))
	for _, name := range names {
		c := p.FindProductCmpt(name)
		if c == nil {
			return nil, fmt.Errorf("component %s not found in project %s", name, p.Name)
		}
		cmpts = append(cmpts, c)
	}
	return cmpts, nil
}
