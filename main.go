package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"edelgado544/ecomscraper/config"
	"edelgado544/ecomscraper/internal/scraper"
	"edelgado544/ecomscraper/logger"
	"edelgado544/ecomscraper/services/cache"
	"edelgado544/ecomscraper/services/publisher"
	"edelgado544/ecomscraper/services/worker"

	"github.com/joho/godotenv"
)

func main() {
	jsonOutput := flag.Bool("json", false, "print results as raw JSON")
	watch := flag.Bool("watch", false, "scrape WATCH_URLS on an interval and publish to Redis")
	timeoutSecs := flag.Int("timeout", 0, "per-URL deadline in seconds (overrides SCRAPE_DEADLINE_SECONDS)")
	flag.Parse()

	// Load environment variables
	godotenv.Load()

	// Initialize logger first
	logger.Init()
	log := logger.Default

	// Load and validate configuration
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	if *timeoutSecs > 0 {
		cfg.ScrapeDeadline = time.Duration(*timeoutSecs) * time.Second
	}

	if *watch {
		runWatch(cfg)
		return
	}

	urls := flag.Args()
	if len(urls) == 0 {
		fmt.Fprintln(os.Stderr, "usage: ecomscraper [-json] [-timeout seconds] <url> [url ...]")
		fmt.Fprintln(os.Stderr, "       ecomscraper -watch")
		os.Exit(2)
	}

	s := newScraper(cfg)

	allOK := true
	for _, url := range urls {
		result := s.Run(context.Background(), url)
		if !result.Success {
			allOK = false
		}
		if *jsonOutput {
			data, err := json.Marshal(result)
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to marshal result")
			}
			fmt.Println(string(data))
		} else {
			printFormattedResult(result)
		}
	}

	if !allOK {
		os.Exit(1)
	}
}

// newScraper wires the scraper with the optional memcache block cache
func newScraper(cfg config.Config) *scraper.Scraper {
	opts := scraper.Options{
		Deadline:  cfg.ScrapeDeadline,
		BlockTime: cfg.BlockTime,
	}
	if cfg.MemcacheAddr != "" {
		opts.Cache = cache.NewMemcacheService(cfg.MemcacheAddr)
		logger.Info("Using memcache rate-limit blocks at %s", cfg.MemcacheAddr)
	}
	return scraper.New(scraper.NewRegistry(), opts)
}

// runWatch scrapes the configured URLs on an interval and publishes each
// result to Redis streams until interrupted
func runWatch(cfg config.Config) {
	log := logger.Default

	if len(cfg.WatchURLs) == 0 {
		log.Fatal().Msg("Watch mode requires WATCH_URLS")
	}

	log.Info().
		Str("environment", cfg.Environment).
		Int("url_count", len(cfg.WatchURLs)).
		Dur("interval", cfg.WatchInterval).
		Msg("Starting watch mode")

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	redisPublisher := publisher.NewRedisPublisher(
		cfg.RedisAddr,
		cfg.RedisDB,
		cfg.RedisStream,
		cfg.RedisStreamCount,
		cfg.RedisStreamMaxLength,
	)
	defer redisPublisher.Close()

	logger.Info("Connected to Redis at %s (DB: %d, Stream: %s)",
		cfg.RedisAddr, cfg.RedisDB, cfg.RedisStream)

	w := worker.NewWorker(ctx, newScraper(cfg), cfg.WatchURLs, redisPublisher, cfg.WatchInterval)

	// Start worker in a goroutine
	workerDone := make(chan error, 1)
	go func() {
		workerDone <- w.Start()
	}()

	// Wait for shutdown signal or worker error
	select {
	case sig := <-sigChan:
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
		<-workerDone
	case err := <-workerDone:
		if err != nil && err != context.Canceled {
			log.Error().Err(err).Msg("Worker exited with error")
		}
	}

	log.Info().Msg("Shutting down gracefully...")
}

// currencySymbols maps ISO codes back to display symbols
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"MXN": "$",
	"ARS": "$",
}

// printFormattedResult prints a human-readable result to stdout
func printFormattedResult(result scraper.ScrapingResult) {
	line := "============================================================"
	fmt.Println(line)

	if result.Success {
		fmt.Println("OK - product information extracted")
		fmt.Printf("Site:    %s\n", result.Site)
		fmt.Printf("URL:     %s\n", result.URL)

		if result.Title != "" {
			fmt.Printf("Product: %s\n", result.Title)
		} else {
			fmt.Println("Product: not found")
		}

		if result.Price != "" {
			fmt.Printf("Price:   %s%s %s\n", currencySymbols[result.Currency], result.Price, result.Currency)
		} else {
			fmt.Println("Price:   not found")
		}
	} else {
		fmt.Println("ERROR - extraction failed")
		fmt.Printf("Site:    %s\n", result.Site)
		fmt.Printf("URL:     %s\n", result.URL)
		fmt.Printf("Error:   %s\n", result.Error)
	}

	fmt.Println(line)
}
