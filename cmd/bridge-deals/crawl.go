package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"bridge-deals-service/internal/config"
	"bridge-deals-service/internal/crawler"
	"bridge-deals-service/internal/logging"
	"bridge-deals-service/internal/metrics"
	"bridge-deals-service/internal/store"
)

const checkpointFile = "timestamp.json"

func newCrawlCmd() *cobra.Command {
	var once bool
	cmd := &cobra.Command{
		Use:   "crawl",
		Short: "Sweep the tournament archive for new board records",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCrawl(cmd.Context(), once)
		},
	}
	cmd.Flags().BoolVar(&once, "once", false, "perform a single sweep and exit")
	return cmd
}

func runCrawl(parent context.Context, once bool) error {
	cfg := config.Load()
	logger := newLogger()

	if cfg.Crawler.BaseURL == "" {
		return errors.New("crawl: CRAWL_BASE_URL is required")
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	recorder, promHandler, shutdown, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			logging.Error(logger, "metrics shutdown failed", err)
		}
	}()

	if promHandler != nil {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promHandler)
		metricsSrv := &http.Server{Addr: ":" + cfg.Metrics.Port, Handler: mux}
		go func() {
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logging.Error(logger, "metrics server failed", err)
			}
		}()
		defer func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := metricsSrv.Shutdown(closeCtx); err != nil {
				logging.Error(logger, "metrics server shutdown failed", err)
			}
		}()
	}

	st := store.NewFSStore(cfg.DataDir)
	checkpoint := crawler.NewCheckpoint(filepath.Join(cfg.DataDir, checkpointFile))

	client := crawler.NewClient(crawler.Config{
		BaseURL:  cfg.Crawler.BaseURL,
		Username: cfg.Crawler.Username,
		Password: cfg.Crawler.Password,
		Timeout:  cfg.Crawler.Timeout,
	})
	fetcher := crawler.NewRetryingFetcher(client, logger, recorder, cfg.Crawler.MaxRetries)

	c := crawler.New(fetcher, st, checkpoint, logger, recorder, crawler.Options{
		Interval: cfg.Crawler.Interval,
		MinDelay: cfg.Crawler.MinDelay,
		MaxDelay: cfg.Crawler.MaxDelay,
	})

	if once {
		if err := fetcher.Login(ctx); err != nil {
			return err
		}
		return c.RunOnce(ctx)
	}

	err = c.Run(ctx)
	if errors.Is(err, context.Canceled) {
		logging.Info(logger, "crawler stopped")
		return nil
	}
	return err
}
