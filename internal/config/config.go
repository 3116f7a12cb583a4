package config

// Config holds runtime configuration for the service.
type Config struct {
	DataDir string
	Workers int
	Crawler CrawlerConfig
	Metrics MetricsConfig
}

// Load reads configuration from environment variables with sensible
// defaults. Workers defaults to zero, meaning one worker per CPU.
func Load() Config {
	return Config{
		DataDir: envOrDefault(envDataDir, defaultDataDir),
		Workers: intEnvOrDefault(envWorkers, 0),
		Crawler: loadCrawler(),
		Metrics: loadMetrics(),
	}
}
