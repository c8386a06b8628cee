package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	apperr "edelgado544/ecomscraper/pkg/errors"
)

// Config represents the application configuration
type Config struct {
	// Scraper configuration
	ScrapeDeadline time.Duration
	BlockTime      time.Duration

	// Memcache configuration (optional, rate-limit blocks)
	MemcacheAddr string

	// Redis configuration (watch mode publishing)
	RedisAddr            string
	RedisDB              int
	RedisStream          string
	RedisStreamCount     int
	RedisStreamMaxLength int

	// Watch mode configuration
	WatchURLs     []string
	WatchInterval time.Duration

	// Environment
	Environment string
}

// LoadConfig loads the configuration from environment variables with defaults
func LoadConfig() Config {
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	streamCount, _ := strconv.Atoi(getEnv("REDIS_STREAM_COUNT", "1"))
	streamMaxLen, _ := strconv.Atoi(getEnv("REDIS_STREAM_MAX_LENGTH", "500"))
	deadline, _ := strconv.Atoi(getEnv("SCRAPE_DEADLINE_SECONDS", "30"))
	blockTime, _ := strconv.Atoi(getEnv("RATE_LIMIT_BLOCK_SECONDS", "300"))
	watchInterval, _ := strconv.Atoi(getEnv("WATCH_INTERVAL_SECONDS", "60"))

	return Config{
		ScrapeDeadline:       time.Duration(deadline) * time.Second,
		BlockTime:            time.Duration(blockTime) * time.Second,
		MemcacheAddr:         getEnv("MEMCACHE_ADDR", ""),
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:              redisDB,
		RedisStream:          getEnv("REDIS_STREAM", "products"),
		RedisStreamCount:     streamCount,
		RedisStreamMaxLength: streamMaxLen,
		WatchURLs:            splitList(getEnv("WATCH_URLS", "")),
		WatchInterval:        time.Duration(watchInterval) * time.Second,
		Environment:          getEnv("SCRAPER_ENVIRONMENT", "development"),
	}
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if c.ScrapeDeadline <= 0 {
		return apperr.NewConfiguration("scrape deadline must be positive", nil)
	}
	if c.BlockTime <= 0 {
		return apperr.NewConfiguration("rate limit block time must be positive", nil)
	}
	if c.WatchInterval <= 0 {
		return apperr.NewConfiguration("watch interval must be positive", nil)
	}
	if c.RedisStreamCount <= 0 {
		return apperr.NewConfiguration("redis stream count must be positive", nil)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// splitList splits a comma-separated list, dropping empty entries
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
