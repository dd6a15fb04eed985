package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/syssam/faktorgen/structure"
)

func newStructureCmd(a *app) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "structure <component>",
		Short: "Print the product structure below a component",
		Long: `Print the components reachable from a component through its links.

Links of generations are taken from the generation effective at --date,
by default the latest one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, sp, err := a.loadProject()
			if err != nil {
				return err
			}
			root := sp.FindProductCmpt(args[0])
			if root == nil {
				return fmt.Errorf("component %s not found", args[0])
			}
			var opts []structure.Option
			if date != "" {
				d, err := time.Parse(time.DateOnly, date)
				if err != nil {
					return fmt.Errorf("invalid --date: %w", err)
				}
				opts = append(opts, structure.WithDate(d))
			}
			tree, err := structure.Build(root, sp, opts...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), tree.String())
			return err
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "effective date (YYYY-MM-DD)")
	return cmd
}
