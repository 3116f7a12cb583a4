package config

import "time"

// CrawlerConfig controls how we talk to the tournament archive site.
type CrawlerConfig struct {
	BaseURL    string
	Username   string
	Password   string
	Interval   time.Duration // delay between full archive passes
	MinDelay   time.Duration // politeness window between downloads
	MaxDelay   time.Duration
	Timeout    time.Duration
	MaxRetries int
}

func loadCrawler() CrawlerConfig {
	return CrawlerConfig{
		BaseURL:    envOrDefault(envCrawlBaseURL, ""),
		Username:   envOrDefault(envCrawlUsername, ""),
		Password:   envOrDefault(envCrawlPassword, ""),
		Interval:   durationEnvOrDefault(envCrawlInterval, defaultCrawlInterval),
		MinDelay:   durationEnvOrDefault(envCrawlMinDelay, defaultCrawlMinDelay),
		MaxDelay:   durationEnvOrDefault(envCrawlMaxDelay, defaultCrawlMaxDelay),
		Timeout:    durationEnvOrDefault(envCrawlTimeout, defaultCrawlTimeout),
		MaxRetries: intEnvOrDefault(envCrawlRetries, defaultCrawlRetries),
	}
}
