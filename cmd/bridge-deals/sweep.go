package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bridge-deals-service/internal/config"
	"bridge-deals-service/internal/store"
)

func newSweepCmd() *cobra.Command {
	var dataDir string
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Remove files that are not well-formed board records",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dataDir == "" {
				dataDir = config.Load().DataDir
			}
			logger := newLogger()
			removed, err := store.NewFSStore(dataDir).Sweep(logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d malformed files\n", removed)
			return nil
		},
	}
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "record directory (defaults to DATA_DIR)")
	return cmd
}
