package worker

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"edelgado544/ecomscraper/internal/scraper"
	"edelgado544/ecomscraper/logger"
	"edelgado544/ecomscraper/services/publisher"
)

// Runner scrapes a single URL into a result
type Runner interface {
	Run(ctx context.Context, url string) scraper.ScrapingResult
}

// Worker scrapes a fixed set of product URLs on an interval and publishes
// each result
type Worker struct {
	ctx       context.Context
	runner    Runner
	urls      []string
	publisher publisher.Publisher
	log       *logger.Logger
	interval  time.Duration
}

// NewWorker creates a new worker
func NewWorker(
	ctx context.Context,
	runner Runner,
	urls []string,
	pub publisher.Publisher,
	interval time.Duration,
) *Worker {
	return &Worker{
		ctx:       ctx,
		runner:    runner,
		urls:      urls,
		publisher: pub,
		log:       logger.ForWorker(),
		interval:  interval,
	}
}

// Start runs the scrape loop until the worker's context is cancelled
func (w *Worker) Start() error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		start := time.Now()
		w.runOnce()
		w.log.Debug().Dur("elapsed", time.Since(start)).Msg("Scrape pass finished")

		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		case <-ticker.C:
		}
	}
}

// runOnce scrapes all URLs in parallel and then trims the streams
func (w *Worker) runOnce() {
	var wg sync.WaitGroup
	for _, url := range w.urls {
		wg.Add(1)
		go func(url string) {
			defer wg.Done()
			w.scrapeAndPublish(url)
		}(url)
	}
	wg.Wait()

	if err := w.publisher.TrimStreams(w.ctx); err != nil {
		w.log.Error().Err(err).Msg("Failed to trim streams")
	}
}

// scrapeAndPublish scrapes one URL and publishes the result
func (w *Worker) scrapeAndPublish(url string) {
	result := w.runner.Run(w.ctx, url)

	if !result.Success {
		w.log.Warn().
			Str("url", url).
			Str("error", result.Error).
			Msg("Scrape failed")
	}

	data, err := json.Marshal(result)
	if err != nil {
		w.log.Error().Err(err).Str("url", url).Msg("Failed to marshal result")
		return
	}

	site := result.Site
	if site == "" {
		site = "unknown"
	}

	if err := w.publisher.Publish(w.ctx, site, data); err != nil {
		w.log.Error().Err(err).Str("url", url).Msg("Failed to publish result")
		return
	}

	w.log.Info().
		Str("url", url).
		Str("site", site).
		Bool("success", result.Success).
		Str("title", result.Title).
		Str("price", result.Price).
		Msg("Published scrape result")
}
