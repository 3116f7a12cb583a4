package config

import "time"

const (
	envDataDir       = "DATA_DIR"
	envWorkers       = "WORKERS"
	envCrawlBaseURL  = "CRAWL_BASE_URL"
	envCrawlUsername = "CRAWL_USERNAME"
	envCrawlPassword = "CRAWL_PASSWORD"
	envCrawlInterval = "CRAWL_INTERVAL"
	envCrawlMinDelay = "CRAWL_MIN_DELAY"
	envCrawlMaxDelay = "CRAWL_MAX_DELAY"
	envCrawlTimeout  = "CRAWL_TIMEOUT"
	envCrawlRetries  = "CRAWL_MAX_RETRIES"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultDataDir = "data"
	// Archive listings refresh hourly; polling faster than that just
	// re-reads the same page, so idle at least an hour between passes.
	defaultCrawlInterval = time.Hour + time.Minute
	// Spacing between record downloads so the archive never throttles
	// us; the exact delay is randomized inside this window.
	defaultCrawlMinDelay = 4 * time.Second
	defaultCrawlMaxDelay = 10 * time.Second
	defaultCrawlTimeout  = 30 * time.Second
	defaultCrawlRetries  = 3
	defaultMetricsPort   = "9090"
)
