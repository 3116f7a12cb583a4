package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"bridge-deals-service/internal/logging"
)

const appVersion = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bridge-deals",
		Short:         "Collect and reconstruct tournament board records",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newCrawlCmd(), newSweepCmd(), newParseCmd(), newShowCmd())
	return root
}

func newLogger() *slog.Logger {
	return logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "bridge-deals-service",
		Version: appVersion,
	})
}
