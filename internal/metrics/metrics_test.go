package metrics

import (
	"context"
	"testing"
	"time"

	"bridge-deals-service/internal/lin"
)

func TestRecorderCrawlCounters(t *testing.T) {
	r := NewRecorder()

	r.RecordCrawlFetch("traveller", 120*time.Millisecond, nil)
	r.RecordCrawlFetch("traveller", 80*time.Millisecond, context.DeadlineExceeded)
	r.RecordCrawlFetch("record", 15*time.Millisecond, nil)
	r.RecordThrottle("traveller", 30*time.Second)

	if got := r.CrawlFetches("traveller"); got != 2 {
		t.Fatalf("CrawlFetches = %d, want 2", got)
	}
	if got := r.CrawlErrors("traveller"); got != 1 {
		t.Fatalf("CrawlErrors = %d, want 1", got)
	}
	if got := r.CrawlFetches("record"); got != 1 {
		t.Fatalf("CrawlFetches(record) = %d, want 1", got)
	}
	if got := r.ThrottleHits("traveller"); got != 1 {
		t.Fatalf("ThrottleHits = %d, want 1", got)
	}
	if got := r.LastRetryAfter("traveller"); got != 30*time.Second {
		t.Fatalf("LastRetryAfter = %v, want 30s", got)
	}
}

func TestRecorderParseCounters(t *testing.T) {
	r := NewRecorder()

	r.RecordParse(time.Millisecond, "")
	r.RecordParse(time.Millisecond, lin.KindCorruptEncoding)
	r.RecordParse(time.Millisecond, lin.KindCorruptEncoding)
	r.RecordParse(time.Millisecond, lin.KindMissingField)

	if got := r.ParsedRecords(); got != 4 {
		t.Fatalf("ParsedRecords = %d, want 4", got)
	}
	if got := r.ParseFailures(lin.KindCorruptEncoding); got != 2 {
		t.Fatalf("ParseFailures(corrupt) = %d, want 2", got)
	}
	if got := r.ParseFailures(lin.KindMalformedPlay); got != 0 {
		t.Fatalf("ParseFailures(play) = %d, want 0", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var r *Recorder
	r.RecordCrawlFetch("traveller", time.Second, nil)
	r.RecordThrottle("traveller", time.Second)
	r.RecordParse(time.Second, "")
	r.RecordBatchRun(time.Second, nil)
	if r.ParsedRecords() != 0 || r.CrawlFetches("traveller") != 0 {
		t.Fatal("nil recorder should read as zero")
	}
}

func TestSetupDisabledReturnsRecorderWithoutHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if rec == nil {
		t.Fatal("expected a recorder even when telemetry is off")
	}
	if handler != nil {
		t.Fatal("expected no prometheus handler when disabled")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestSetupEnabledWiresPrometheus(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: true})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			t.Fatalf("shutdown: %v", err)
		}
	}()
	if handler == nil {
		t.Fatal("expected a prometheus handler")
	}
	rec.RecordParse(time.Millisecond, lin.KindMalformedAuction)
	if got := rec.ParseFailures(lin.KindMalformedAuction); got != 1 {
		t.Fatalf("ParseFailures = %d, want 1", got)
	}
}
