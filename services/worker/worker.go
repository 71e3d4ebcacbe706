package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"sjsage522/olxworker/internal/crawler"
	"sjsage522/olxworker/internal/extractor"
	"sjsage522/olxworker/logger"
	"sjsage522/olxworker/services/publisher"
)

// ResultWriter persists the records of one crawler
type ResultWriter interface {
	Write(suffix string, records []extractor.Record) ([]string, error)
}

// Report summarizes one crawl cycle
type Report struct {
	RunID   string
	Results []crawler.Result
	// Failed counts crawlers that returned an error instead of a result
	Failed int
}

// Worker handles the crawling, saving and publishing process
type Worker struct {
	crawlers      []crawler.Crawler
	publisher     publisher.Publisher
	writer        ResultWriter
	crawlInterval time.Duration
}

// NewWorker creates a new worker. A zero crawlInterval makes Start run a
// single cycle.
func NewWorker(
	crawlers []crawler.Crawler,
	pub publisher.Publisher,
	writer ResultWriter,
	crawlInterval time.Duration,
) *Worker {
	if pub == nil {
		pub = publisher.NopPublisher{}
	}
	return &Worker{
		crawlers:      crawlers,
		publisher:     pub,
		writer:        writer,
		crawlInterval: crawlInterval,
	}
}

// Start runs crawl cycles until the context is cancelled
func (w *Worker) Start(ctx context.Context) error {
	if _, err := w.RunOnce(ctx); err != nil {
		return err
	}
	if w.crawlInterval <= 0 {
		return nil
	}

	ticker := time.NewTicker(w.crawlInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.ForWorker().Info().Msg("Worker stopped")
			return nil
		case <-ticker.C:
			if _, err := w.RunOnce(ctx); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
		}
	}
}

// RunOnce runs all the crawlers in parallel and then trims the streams.
// A failing crawler never stops the others.
func (w *Worker) RunOnce(ctx context.Context) (Report, error) {
	report := Report{
		RunID:   uuid.NewString(),
		Results: make([]crawler.Result, len(w.crawlers)),
	}
	log := logger.ForWorker().WithField("run_id", report.RunID)
	log.Info().Int("crawlers", len(w.crawlers)).Msg("Crawl cycle started")

	start := time.Now()
	failed := make([]bool, len(w.crawlers))

	g, gctx := errgroup.WithContext(ctx)
	for i, c := range w.crawlers {
		i, c := i, c
		g.Go(func() error {
			result, err := w.crawlAndPublish(gctx, c)
			if err != nil {
				failed[i] = true
				logger.LogError(c.GetName(), err, "Crawl failed for %s", c.GetTarget())
				return nil
			}
			report.Results[i] = result
			return nil
		})
	}
	g.Wait()

	for _, f := range failed {
		if f {
			report.Failed++
		}
	}

	if err := ctx.Err(); err != nil {
		return report, err
	}

	// Trim all streams after crawling
	if err := w.publisher.TrimStreams(ctx); err != nil {
		logger.LogError("StreamTrimming", err, "Failed to trim streams")
	}

	log.Info().
		Dur("elapsed", time.Since(start)).
		Int("failed", report.Failed).
		Msg("Crawl cycle finished")
	return report, nil
}

// crawlAndPublish fetches listings from a crawler, saves them and publishes
// every record. Save and publish errors are logged, not returned.
func (w *Worker) crawlAndPublish(ctx context.Context, c crawler.Crawler) (crawler.Result, error) {
	name := c.GetName()
	log := logger.ForCrawler(c.GetTarget()).WithField("crawler", name)

	result, err := c.FetchListings(ctx)
	if err != nil {
		return result, err
	}

	log.Info().
		Int("listings", len(result.Records)).
		Str("strategy", result.Strategy).
		Str("source", string(result.Source)).
		Msg("Listings fetched")

	if len(result.Records) == 0 {
		log.Warn().Msg("No listings found")
		return result, nil
	}

	if w.writer != nil {
		if _, err := w.writer.Write(w.fileSuffix(name), result.Records); err != nil {
			logger.LogError(name, err, "Failed to save listings")
		}
	}

	for i, record := range result.Records {
		data, err := json.Marshal(record)
		if err != nil {
			logger.LogError(name, err, "Failed to encode listing")
			continue
		}

		if err := w.publisher.Publish(ctx, c.GetTarget(), data); err != nil {
			logger.LogError(name, err, "Failed to publish listing")
			continue
		}

		// Log only the first listing for each crawler
		if i == 0 && logger.IsDebugEnabled() {
			log.Debug().RawJSON("listing", data).Msg("Published listing")
		}
	}

	return result, nil
}

// fileSuffix keeps output files of several target pages apart
func (w *Worker) fileSuffix(name string) string {
	if len(w.crawlers) > 1 {
		return name
	}
	return ""
}
