// Package batch drives the reconstruction engine over a corpus of raw
// record files. Records are independent, so the runner fans them out to
// a worker pool with no shared mutable state between tasks; one bad
// record is tallied and skipped, never fatal to the run.
package batch

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"bridge-deals-service/internal/analysis"
	"bridge-deals-service/internal/domain"
	"bridge-deals-service/internal/lin"
	"bridge-deals-service/internal/metrics"
)

// Source lists and reads raw record files. store.FSStore satisfies it.
type Source interface {
	ListRecords() ([]string, error)
	ReadRecord(path string) (string, error)
}

// Sink collects successfully parsed deals. store.DealStore satisfies
// it.
type Sink interface {
	Put(path string, deal *domain.Deal)
}

// Summary reports one batch run.
type Summary struct {
	Total      int
	Parsed     int
	Skipped    int
	Incomplete int
	Failures   map[lin.ErrorKind]int
}

// Runner parses a record corpus with a fixed-size worker pool.
type Runner struct {
	source  Source
	sink    Sink
	logger  *slog.Logger
	metrics *metrics.Recorder
	workers int
}

// New constructs a Runner. A non-positive worker count falls back to
// the number of CPUs.
func New(source Source, sink Sink, logger *slog.Logger, recorder *metrics.Recorder, workers int) *Runner {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Runner{
		source:  source,
		sink:    sink,
		logger:  logger,
		metrics: recorder,
		workers: workers,
	}
}

type result struct {
	path       string
	incomplete bool
	err        error
}

// Run parses every record the source lists and returns the tallies.
// Only listing the corpus can fail; per-record problems are counted in
// the summary and logged at debug level.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	start := time.Now()

	paths, err := r.source.ListRecords()
	if err != nil {
		r.metrics.RecordBatchRun(time.Since(start), err)
		return Summary{}, err
	}

	jobs := make(chan string)
	results := make(chan result, len(paths))

	var group errgroup.Group
	for w := 0; w < r.workers; w++ {
		group.Go(func() error {
			for path := range jobs {
				results <- r.parseOne(path)
			}
			return nil
		})
	}

	dispatched := 0
dispatch:
	for _, path := range paths {
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- path:
			dispatched++
		}
	}
	close(jobs)
	_ = group.Wait()
	close(results)

	summary := Summary{
		Total:    len(paths),
		Failures: make(map[lin.ErrorKind]int),
	}
	for res := range results {
		if res.err != nil {
			summary.Skipped++
			summary.Failures[lin.ClassifyError(res.err)]++
			r.logDebug("record skipped", "path", res.path, "error", res.err)
			continue
		}
		summary.Parsed++
		if res.incomplete {
			summary.Incomplete++
		}
	}
	// Records never dispatched because the context ended count as
	// skipped, not silently dropped.
	summary.Skipped += len(paths) - dispatched

	r.metrics.RecordBatchRun(time.Since(start), ctx.Err())
	r.logInfo("batch run finished",
		"total", summary.Total,
		"parsed", summary.Parsed,
		"skipped", summary.Skipped,
		"incomplete", summary.Incomplete,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return summary, ctx.Err()
}

func (r *Runner) parseOne(path string) result {
	raw, err := r.source.ReadRecord(path)
	if err != nil {
		return result{path: path, err: err}
	}

	start := time.Now()
	deal, err := lin.Parse(raw)
	r.metrics.RecordParse(time.Since(start), lin.ClassifyError(err))
	if err != nil {
		return result{path: path, err: err}
	}

	if r.sink != nil {
		r.sink.Put(path, deal)
	}
	return result{path: path, incomplete: analysis.Incomplete(deal)}
}

func (r *Runner) logInfo(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Info(msg, args...)
	}
}

func (r *Runner) logDebug(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Debug(msg, args...)
	}
}
