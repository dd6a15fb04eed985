package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/syssam/faktorgen/internal/watch"
)

func newWatchCmd(a *app) *cobra.Command {
	var delay time.Duration
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate the Java classes whenever the model changes",
		Long: `Generate the Java classes, then watch the model file and the files on the
search path and generate again after every change. Failed runs are logged
and do not stop watching. Press Ctrl+C to stop.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			if err := a.generate(ctx, out); err != nil {
				a.log.Error("generation failed", zap.Error(err))
			}
			files := append([]string{a.cfg.Model}, a.cfg.SearchPath...)
			fmt.Fprintf(out, "watching %s\n", strings.Join(files, ", "))
			return watch.Watch(ctx, files, delay, a.log, func(changed []string) {
				a.log.Info("model changed", zap.Strings("files", changed))
				if err := a.generate(ctx, out); err != nil {
					a.log.Error("generation failed", zap.Error(err))
				}
			})
		},
	}
	cmd.Flags().DurationVar(&delay, "delay", watch.DefaultDelay, "quiet period before regenerating")
	return cmd
}
