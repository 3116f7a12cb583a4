package crawler

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"bridge-deals-service/internal/logging"
	"bridge-deals-service/internal/metrics"
)

const (
	defaultMaxRetries     = 3
	defaultInitialBackoff = 500 * time.Millisecond
)

// Fetcher is the archive access surface the crawler drives. *Client
// implements it; tests substitute fakes.
type Fetcher interface {
	Login(ctx context.Context) error
	FetchTournaments(ctx context.Context) ([]Tournament, error)
	FetchTravellers(ctx context.Context, t Tournament) ([]Traveller, error)
	FetchRecordLinks(ctx context.Context, tr Traveller) ([]RecordLink, error)
	DownloadRecord(ctx context.Context, link RecordLink) ([]byte, error)
}

// retryingFetcher wraps a Fetcher with exponential backoff. Throttle
// responses are surfaced to metrics before the next attempt.
type retryingFetcher struct {
	inner      Fetcher
	logger     *slog.Logger
	recorder   *metrics.Recorder
	maxRetries uint64
}

// NewRetryingFetcher wraps the given fetcher with retries. If
// maxRetries is <= 0 a default is used.
func NewRetryingFetcher(inner Fetcher, logger *slog.Logger, recorder *metrics.Recorder, maxRetries int) Fetcher {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	return &retryingFetcher{
		inner:      inner,
		logger:     logger,
		recorder:   recorder,
		maxRetries: uint64(maxRetries),
	}
}

func (r *retryingFetcher) Login(ctx context.Context) error {
	return r.retry(ctx, PageLogin, func() error {
		return r.inner.Login(ctx)
	})
}

func (r *retryingFetcher) FetchTournaments(ctx context.Context) ([]Tournament, error) {
	var out []Tournament
	err := r.retry(ctx, PageListing, func() error {
		var innerErr error
		out, innerErr = r.inner.FetchTournaments(ctx)
		return innerErr
	})
	return out, err
}

func (r *retryingFetcher) FetchTravellers(ctx context.Context, t Tournament) ([]Traveller, error) {
	var out []Traveller
	err := r.retry(ctx, PageBoards, func() error {
		var innerErr error
		out, innerErr = r.inner.FetchTravellers(ctx, t)
		return innerErr
	})
	return out, err
}

func (r *retryingFetcher) FetchRecordLinks(ctx context.Context, tr Traveller) ([]RecordLink, error) {
	var out []RecordLink
	err := r.retry(ctx, PageTraveller, func() error {
		var innerErr error
		out, innerErr = r.inner.FetchRecordLinks(ctx, tr)
		return innerErr
	})
	return out, err
}

func (r *retryingFetcher) DownloadRecord(ctx context.Context, link RecordLink) ([]byte, error) {
	var out []byte
	err := r.retry(ctx, PageRecord, func() error {
		var innerErr error
		out, innerErr = r.inner.DownloadRecord(ctx, link)
		return innerErr
	})
	return out, err
}

func (r *retryingFetcher) retry(ctx context.Context, page string, op func() error) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = defaultInitialBackoff
	bo.MaxElapsedTime = 0
	policy := backoff.WithContext(backoff.WithMaxRetries(bo, r.maxRetries), ctx)

	return backoff.RetryNotify(func() error {
		err := op()
		if err == nil {
			return nil
		}
		if tErr, ok := AsThrottledError(err); ok {
			r.recorder.RecordThrottle(page, tErr.RetryAfter)
		}
		return err
	}, policy, func(err error, next time.Duration) {
		logging.Warn(r.logger, "archive fetch retry",
			logging.FieldPage, page,
			"next_attempt_in", next.String(),
			"error", err)
	})
}
