package metrics

import (
	"sync"
	"time"

	"bridge-deals-service/internal/lin"
)

type crawlStats struct {
	fetches         int
	errors          int
	throttleHits    int
	lastRetryAfter  time.Duration
	lastFetchLatency time.Duration
}

type parseStats struct {
	records  int
	failures map[lin.ErrorKind]int
}

// Recorder captures lightweight, in-memory metrics about crawl fetches
// and record parses. It is intentionally simple so it can be swapped
// for a real backend later.
type Recorder struct {
	mu    sync.Mutex
	crawl map[string]*crawlStats
	parse parseStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		crawl: make(map[string]*crawlStats),
		parse: parseStats{failures: make(map[lin.ErrorKind]int)},
		otel:  otel,
	}
}

// RecordCrawlFetch increments counters for one archive fetch and stores
// the last observed latency.
func (r *Recorder) RecordCrawlFetch(page string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureCrawl(page)
	stats.fetches++
	stats.lastFetchLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCrawlFetch(page, duration, err)
	}
}

// RecordThrottle tracks that the archive throttled a fetch and stores
// the last Retry-After.
func (r *Recorder) RecordThrottle(page string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureCrawl(page)
	stats.throttleHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordThrottle(page, retryAfter)
	}
}

// RecordParse tallies one record parse. A non-empty kind marks the
// parse as a rejection of that taxonomy kind.
func (r *Recorder) RecordParse(duration time.Duration, kind lin.ErrorKind) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.parse.records++
	if kind != "" {
		r.parse.failures[kind]++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordParse(duration, kind)
	}
}

// RecordBatchRun tracks one batch cycle over the corpus.
func (r *Recorder) RecordBatchRun(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordBatchRun(duration, err)
}

// CrawlFetches returns the total fetches recorded for a page kind.
func (r *Recorder) CrawlFetches(page string) int {
	return r.crawlSnapshot(page).fetches
}

// CrawlErrors returns the failed fetches recorded for a page kind.
func (r *Recorder) CrawlErrors(page string) int {
	return r.crawlSnapshot(page).errors
}

// ThrottleHits returns the throttle events seen for a page kind.
func (r *Recorder) ThrottleHits(page string) int {
	return r.crawlSnapshot(page).throttleHits
}

// LastRetryAfter returns the most recent Retry-After recorded for a
// page kind.
func (r *Recorder) LastRetryAfter(page string) time.Duration {
	return r.crawlSnapshot(page).lastRetryAfter
}

// ParsedRecords returns the total parses recorded.
func (r *Recorder) ParsedRecords() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.parse.records
}

// ParseFailures returns the rejections recorded for one taxonomy kind.
func (r *Recorder) ParseFailures(kind lin.ErrorKind) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.parse.failures[kind]
}

func (r *Recorder) ensureCrawl(page string) *crawlStats {
	stats, ok := r.crawl[page]
	if !ok {
		stats = &crawlStats{}
		r.crawl[page] = stats
	}
	return stats
}

func (r *Recorder) crawlSnapshot(page string) crawlStats {
	if r == nil {
		return crawlStats{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.crawl[page]; ok && stats != nil {
		return *stats
	}
	return crawlStats{}
}
