package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bridge-deals-service/internal/batch"
	"bridge-deals-service/internal/config"
	"bridge-deals-service/internal/metrics"
	"bridge-deals-service/internal/store"
)

func newParseCmd() *cobra.Command {
	var dataDir string
	var workers int
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Reconstruct deals from every stored board record",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if dataDir == "" {
				dataDir = cfg.DataDir
			}
			if workers == 0 {
				workers = cfg.Workers
			}
			logger := newLogger()

			source := store.NewFSStore(dataDir)
			sink := store.NewDealStore()
			runner := batch.New(source, sink, logger, metrics.NewRecorder(), workers)

			summary, err := runner.Run(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "records:    %d\n", summary.Total)
			fmt.Fprintf(out, "parsed:     %d\n", summary.Parsed)
			fmt.Fprintf(out, "skipped:    %d\n", summary.Skipped)
			fmt.Fprintf(out, "incomplete: %d\n", summary.Incomplete)
			for kind, count := range summary.Failures {
				fmt.Fprintf(out, "  %s: %d\n", kind, count)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "record directory (defaults to DATA_DIR)")
	cmd.Flags().IntVar(&workers, "workers", 0, "parser workers (defaults to one per CPU)")
	return cmd
}
