package crawler

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"bridge-deals-service/internal/logging"
	"bridge-deals-service/internal/metrics"
)

const (
	defaultInterval = time.Hour + time.Minute
	defaultMinDelay = 4 * time.Second
	defaultMaxDelay = 10 * time.Second
)

// RecordWriter persists downloaded board records.
type RecordWriter interface {
	WriteRecord(tournType, tournID, travellerID, recordID string, content []byte) error
}

// Options tune the crawl loop.
type Options struct {
	Interval time.Duration
	MinDelay time.Duration
	MaxDelay time.Duration
}

// Crawler sweeps the tournament archive on an interval and stores
// every board record newer than the last checkpoint.
type Crawler struct {
	fetcher    Fetcher
	writer     RecordWriter
	checkpoint *Checkpoint
	logger     *slog.Logger
	metrics    *metrics.Recorder
	interval   time.Duration
	minDelay   time.Duration
	maxDelay   time.Duration
	now        func() time.Time
	delayFn    func() time.Duration
}

// New constructs a Crawler with sane defaults.
func New(fetcher Fetcher, writer RecordWriter, checkpoint *Checkpoint, logger *slog.Logger, recorder *metrics.Recorder, opts Options) *Crawler {
	interval := opts.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	minDelay := opts.MinDelay
	if minDelay <= 0 {
		minDelay = defaultMinDelay
	}
	maxDelay := opts.MaxDelay
	if maxDelay <= 0 {
		maxDelay = defaultMaxDelay
	}
	if maxDelay < minDelay {
		maxDelay = minDelay
	}

	c := &Crawler{
		fetcher:    fetcher,
		writer:     writer,
		checkpoint: checkpoint,
		logger:     logger,
		metrics:    recorder,
		interval:   interval,
		minDelay:   minDelay,
		maxDelay:   maxDelay,
		now:        time.Now,
	}
	c.delayFn = c.randomDelay
	return c
}

// Run logs in and sweeps the archive until the context is cancelled.
func (c *Crawler) Run(ctx context.Context) error {
	if err := c.fetcher.Login(ctx); err != nil {
		return err
	}
	logging.Info(c.logger, "crawler started", logging.FieldDurationMS, c.interval.Milliseconds())

	for {
		if err := c.RunOnce(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logging.Error(c.logger, "archive sweep failed", err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.interval):
		}
	}
}

// RunOnce performs a single sweep. The listing runs newest to oldest,
// so the sweep stops at the first tournament older than the
// checkpoint; the checkpoint advances only after the sweep completes.
func (c *Crawler) RunOnce(ctx context.Context) error {
	last, err := c.checkpoint.Load()
	if err != nil {
		return err
	}
	mark := c.now().UTC()

	start := time.Now()
	tournaments, err := c.fetcher.FetchTournaments(ctx)
	c.metrics.RecordCrawlFetch(PageListing, time.Since(start), err)
	if err != nil {
		return err
	}

	scraped := 0
	for _, t := range tournaments {
		if t.StartsAt.Before(last) {
			break
		}
		if err := c.scrapeTournament(ctx, t); err != nil {
			return err
		}
		scraped++
	}

	if err := c.checkpoint.Save(mark); err != nil {
		return err
	}
	logging.Info(c.logger, "archive sweep complete",
		logging.FieldCount, scraped,
		logging.FieldDurationMS, time.Since(start).Milliseconds())
	return nil
}

func (c *Crawler) scrapeTournament(ctx context.Context, t Tournament) error {
	logging.Info(c.logger, "entering tournament", logging.FieldTournament, t.ID)

	start := time.Now()
	travellers, err := c.fetcher.FetchTravellers(ctx, t)
	c.metrics.RecordCrawlFetch(PageBoards, time.Since(start), err)
	if err != nil {
		return err
	}

	for _, tr := range travellers {
		if err := c.scrapeTraveller(ctx, t, tr); err != nil {
			return err
		}
	}
	return nil
}

func (c *Crawler) scrapeTraveller(ctx context.Context, t Tournament, tr Traveller) error {
	logging.Info(c.logger, "fetching traveller",
		logging.FieldTournament, t.ID,
		logging.FieldTraveller, tr.ID)

	start := time.Now()
	links, err := c.fetcher.FetchRecordLinks(ctx, tr)
	c.metrics.RecordCrawlFetch(PageTraveller, time.Since(start), err)
	if err != nil {
		return err
	}

	for _, link := range links {
		downloadStart := time.Now()
		content, err := c.fetcher.DownloadRecord(ctx, link)
		c.metrics.RecordCrawlFetch(PageRecord, time.Since(downloadStart), err)
		if err != nil {
			return err
		}
		if err := c.writer.WriteRecord(t.Type, t.ID, tr.ID, link.ID, content); err != nil {
			return err
		}
		logging.Info(c.logger, "stored board record",
			logging.FieldTournament, t.ID,
			logging.FieldTraveller, tr.ID,
			logging.FieldRecord, link.ID)

		if err := c.pause(ctx); err != nil {
			return err
		}
	}
	return nil
}

// pause waits a randomized delay between downloads so the crawl does
// not trip the archive's throttling.
func (c *Crawler) pause(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(c.delayFn()):
		return nil
	}
}

func (c *Crawler) randomDelay() time.Duration {
	if c.maxDelay <= c.minDelay {
		return c.minDelay
	}
	return c.minDelay + time.Duration(rand.Int63n(int64(c.maxDelay-c.minDelay)))
}
