package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		envDataDir, envWorkers, envCrawlBaseURL, envCrawlInterval,
		envCrawlMinDelay, envCrawlMaxDelay, envMetricsOn, envMetricsPort,
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.DataDir != defaultDataDir {
		t.Fatalf("DataDir = %q, want %q", cfg.DataDir, defaultDataDir)
	}
	if cfg.Workers != 0 {
		t.Fatalf("Workers = %d, want 0 (auto)", cfg.Workers)
	}
	if cfg.Crawler.Interval != defaultCrawlInterval {
		t.Fatalf("Interval = %v, want %v", cfg.Crawler.Interval, defaultCrawlInterval)
	}
	if cfg.Crawler.MinDelay != defaultCrawlMinDelay || cfg.Crawler.MaxDelay != defaultCrawlMaxDelay {
		t.Fatalf("delay window = %v..%v", cfg.Crawler.MinDelay, cfg.Crawler.MaxDelay)
	}
	if !cfg.Metrics.Enabled {
		t.Fatal("metrics should default to enabled")
	}
	if cfg.Metrics.Port != defaultMetricsPort {
		t.Fatalf("metrics port = %q, want %q", cfg.Metrics.Port, defaultMetricsPort)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv(envDataDir, "/mnt/archive")
	t.Setenv(envWorkers, "8")
	t.Setenv(envCrawlBaseURL, "https://archive.example.com")
	t.Setenv(envCrawlInterval, "30m")
	t.Setenv(envMetricsOn, "false")

	cfg := Load()
	if cfg.DataDir != "/mnt/archive" {
		t.Fatalf("DataDir = %q", cfg.DataDir)
	}
	if cfg.Workers != 8 {
		t.Fatalf("Workers = %d, want 8", cfg.Workers)
	}
	if cfg.Crawler.BaseURL != "https://archive.example.com" {
		t.Fatalf("BaseURL = %q", cfg.Crawler.BaseURL)
	}
	if cfg.Crawler.Interval != 30*time.Minute {
		t.Fatalf("Interval = %v, want 30m", cfg.Crawler.Interval)
	}
	if cfg.Metrics.Enabled {
		t.Fatal("metrics should be disabled")
	}
}

func TestDurationEnvRejectsGarbage(t *testing.T) {
	t.Setenv(envCrawlInterval, "soon")
	if got := Load().Crawler.Interval; got != defaultCrawlInterval {
		t.Fatalf("Interval = %v, want default on bad value", got)
	}

	t.Setenv(envCrawlInterval, "-5m")
	if got := Load().Crawler.Interval; got != defaultCrawlInterval {
		t.Fatalf("Interval = %v, want default on negative value", got)
	}
}

func TestBoolEnvOrDefault(t *testing.T) {
	cases := []struct {
		val  string
		want bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"0", false},
		{"no", false},
		{"maybe", true}, // falls back to default on unknown
	}
	for _, tc := range cases {
		t.Setenv("BOOL_TEST", tc.val)
		if got := boolEnvOrDefault("BOOL_TEST", true); got != tc.want {
			t.Fatalf("boolEnvOrDefault(%q) = %v, want %v", tc.val, got, tc.want)
		}
	}
}
