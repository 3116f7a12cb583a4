package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"bridge-deals-service/internal/lin"
)

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and
// optional OTLP exporter. It returns a Recorder, the Prometheus HTTP
// handler, and a shutdown function.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = "bridge-deals-service"
	}

	promReader, promHandler, err := promReaderFactory()
	if err != nil {
		return nil, nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, nil, nil, err
	}

	rec := newRecorder(otelInst)
	shutdown := func(c context.Context) error {
		return provider.Shutdown(c)
	}

	return rec, promHandler, shutdown, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second)), nil
}

type otelInstruments struct {
	ctx             context.Context
	meter           metric.Meter
	crawlFetches    metric.Int64Counter
	crawlErrors     metric.Int64Counter
	crawlLatencyMs  metric.Float64Histogram
	throttleHits    metric.Int64Counter
	retryAfterMs    metric.Float64Histogram
	parseRecords    metric.Int64Counter
	parseFailures   metric.Int64Counter
	parseLatencyMs  metric.Float64Histogram
	batchRuns       metric.Int64Counter
	batchErrors     metric.Int64Counter
	batchLatencyMs  metric.Float64Histogram
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter("bridge-deals-service")
	ctx := context.Background()

	crawlFetches, err := meter.Int64Counter("crawl_fetches_total")
	if err != nil {
		return nil, err
	}
	crawlErrors, err := meter.Int64Counter("crawl_errors_total")
	if err != nil {
		return nil, err
	}
	crawlLatency, err := meter.Float64Histogram("crawl_fetch_duration_ms")
	if err != nil {
		return nil, err
	}
	throttleHits, err := meter.Int64Counter("crawl_throttle_hits_total")
	if err != nil {
		return nil, err
	}
	retryAfter, err := meter.Float64Histogram("crawl_retry_after_ms")
	if err != nil {
		return nil, err
	}
	parseRecords, err := meter.Int64Counter("parse_records_total")
	if err != nil {
		return nil, err
	}
	parseFailures, err := meter.Int64Counter("parse_failures_total")
	if err != nil {
		return nil, err
	}
	parseLatency, err := meter.Float64Histogram("parse_duration_ms")
	if err != nil {
		return nil, err
	}
	batchRuns, err := meter.Int64Counter("batch_runs_total")
	if err != nil {
		return nil, err
	}
	batchErrors, err := meter.Int64Counter("batch_errors_total")
	if err != nil {
		return nil, err
	}
	batchLatency, err := meter.Float64Histogram("batch_run_duration_ms")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		ctx:            ctx,
		meter:          meter,
		crawlFetches:   crawlFetches,
		crawlErrors:    crawlErrors,
		crawlLatencyMs: crawlLatency,
		throttleHits:   throttleHits,
		retryAfterMs:   retryAfter,
		parseRecords:   parseRecords,
		parseFailures:  parseFailures,
		parseLatencyMs: parseLatency,
		batchRuns:      batchRuns,
		batchErrors:    batchErrors,
		batchLatencyMs: batchLatency,
	}, nil
}

func (o *otelInstruments) recordCrawlFetch(page string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrPage, page)}
	o.recordCounter(o.crawlFetches, 1, attrs...)
	o.recordHistogram(o.crawlLatencyMs, float64(duration.Milliseconds()), attrs...)
	if err != nil {
		o.recordCounter(o.crawlErrors, 1, attrs...)
	}
}

func (o *otelInstruments) recordThrottle(page string, retryAfter time.Duration) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrPage, page)}
	o.recordCounter(o.throttleHits, 1, attrs...)
	if retryAfter > 0 {
		o.recordHistogram(o.retryAfterMs, float64(retryAfter.Milliseconds()), attrs...)
	}
}

func (o *otelInstruments) recordParse(duration time.Duration, kind lin.ErrorKind) {
	if o == nil {
		return
	}
	o.recordCounter(o.parseRecords, 1)
	o.recordHistogram(o.parseLatencyMs, float64(duration.Milliseconds()))
	if kind != "" {
		o.recordCounter(o.parseFailures, 1, attribute.String(AttrKind, string(kind)))
	}
}

func (o *otelInstruments) recordBatchRun(duration time.Duration, err error) {
	if o == nil {
		return
	}
	o.recordCounter(o.batchRuns, 1)
	o.recordHistogram(o.batchLatencyMs, float64(duration.Milliseconds()))
	if err != nil {
		o.recordCounter(o.batchErrors, 1)
	}
}

func (o *otelInstruments) recordCounter(counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	counter.Add(o.ctx, value, metric.WithAttributes(attrs...))
}

func (o *otelInstruments) recordHistogram(hist metric.Float64Histogram, value float64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	hist.Record(o.ctx, value, metric.WithAttributes(attrs...))
}
