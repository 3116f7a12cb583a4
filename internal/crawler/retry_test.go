package crawler

import (
	"context"
	"errors"
	"testing"
	"time"

	"bridge-deals-service/internal/metrics"
)

type flakyFetcher struct {
	fakeFetcher
	failures int
	attempts int
	err      error
}

func (f *flakyFetcher) FetchTournaments(ctx context.Context) ([]Tournament, error) {
	f.attempts++
	if f.attempts <= f.failures {
		return nil, f.err
	}
	return f.tournaments, nil
}

func TestRetryingFetcherRecovers(t *testing.T) {
	inner := &flakyFetcher{
		fakeFetcher: fakeFetcher{tournaments: []Tournament{{ID: "1"}}},
		failures:    1,
		err:         errors.New("transient"),
	}
	fetcher := NewRetryingFetcher(inner, nil, metrics.NewRecorder(), 2)

	tournaments, err := fetcher.FetchTournaments(context.Background())
	if err != nil {
		t.Fatalf("expected fetch to recover, got %v", err)
	}
	if len(tournaments) != 1 {
		t.Fatalf("expected 1 tournament, got %d", len(tournaments))
	}
	if inner.attempts != 2 {
		t.Fatalf("expected 2 attempts, got %d", inner.attempts)
	}
}

func TestRetryingFetcherGivesUp(t *testing.T) {
	inner := &flakyFetcher{
		failures: 10,
		err:      errors.New("persistent"),
	}
	fetcher := NewRetryingFetcher(inner, nil, metrics.NewRecorder(), 1)

	if _, err := fetcher.FetchTournaments(context.Background()); err == nil {
		t.Fatal("expected fetch to fail")
	}
	if inner.attempts != 2 {
		t.Fatalf("expected 2 attempts, got %d", inner.attempts)
	}
}

func TestRetryingFetcherRecordsThrottle(t *testing.T) {
	recorder := metrics.NewRecorder()
	inner := &flakyFetcher{
		failures: 10,
		err:      &ThrottledError{StatusCode: 429, RetryAfter: 5 * time.Second},
	}
	fetcher := NewRetryingFetcher(inner, nil, recorder, 1)

	_, err := fetcher.FetchTournaments(context.Background())
	if _, ok := AsThrottledError(err); !ok {
		t.Fatalf("expected a throttled error, got %v", err)
	}
	if got := recorder.ThrottleHits(PageListing); got != 2 {
		t.Fatalf("expected 2 throttle hits, got %d", got)
	}
	if got := recorder.LastRetryAfter(PageListing); got != 5*time.Second {
		t.Fatalf("expected retry-after 5s, got %v", got)
	}
}

func TestRetryingFetcherHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inner := &flakyFetcher{failures: 10, err: errors.New("down")}
	fetcher := NewRetryingFetcher(inner, nil, metrics.NewRecorder(), 3)

	if _, err := fetcher.FetchTournaments(ctx); err == nil {
		t.Fatal("expected fetch to fail under a cancelled context")
	}
	if inner.attempts != 1 {
		t.Fatalf("expected a single attempt, got %d", inner.attempts)
	}
}
