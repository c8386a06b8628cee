package scraper

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PuerkitoBio/goquery"

	"edelgado544/ecomscraper/helpers"
	"edelgado544/ecomscraper/logger"
	apperr "edelgado544/ecomscraper/pkg/errors"
	"edelgado544/ecomscraper/services/cache"
)

const (
	// DefaultDeadline bounds one whole Run call, fetch included
	DefaultDeadline = 30 * time.Second

	// DefaultBlockTime is how long a domain stays blocked after a 429
	DefaultBlockTime = 5 * time.Minute
)

// Scraper is the top-level extraction entry point: one URL in, one
// ScrapingResult out. Safe for concurrent use; each Run is independent.
type Scraper struct {
	registry  *Registry
	fetcher   Fetcher
	cacheSvc  cache.CacheService
	deadline  time.Duration
	blockTime time.Duration
}

// Options configures a Scraper. Zero values fall back to defaults; a nil
// Cache disables rate-limit blocking.
type Options struct {
	Fetcher   Fetcher
	Cache     cache.CacheService
	Deadline  time.Duration
	BlockTime time.Duration
}

// New creates a scraper over the given registry
func New(registry *Registry, opts Options) *Scraper {
	s := &Scraper{
		registry:  registry,
		fetcher:   opts.Fetcher,
		cacheSvc:  opts.Cache,
		deadline:  opts.Deadline,
		blockTime: opts.BlockTime,
	}
	if s.fetcher == nil {
		s.fetcher = helpers.FetchWithRandomHeaders
	}
	if s.deadline <= 0 {
		s.deadline = DefaultDeadline
	}
	if s.blockTime <= 0 {
		s.blockTime = DefaultBlockTime
	}
	return s
}

// Run scrapes one product URL. Every failure path terminates in a well-formed
// result; no error escapes as a panic or raw return. Success reports that the
// page was fetched and parsed, independent of whether any selector matched.
func (s *Scraper) Run(ctx context.Context, rawURL string) ScrapingResult {
	if err := ValidateURL(rawURL); err != nil {
		return s.fail(rawURL, "", "invalid URL")
	}

	domain := ExtractDomain(rawURL)
	profile := s.registry.Lookup(domain)
	log := logger.ForSite(profile.Domain)

	blockKey := "block:" + domain
	if s.cacheSvc != nil {
		if _, err := s.cacheSvc.Get(blockKey); err == nil {
			return s.fail(rawURL, profile.Domain,
				fmt.Sprintf("rate limited: requests to %s are blocked", domain))
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.deadline)
	defer cancel()

	body, err := s.fetcher(ctx, rawURL)
	if err != nil {
		var scrapeErr *apperr.ScrapeError
		if errors.As(err, &scrapeErr) && scrapeErr.Type == apperr.ErrorTypeRateLimit && s.cacheSvc != nil {
			if setErr := s.cacheSvc.Set(blockKey, []byte(domain), s.blockTime); setErr != nil {
				log.Warn().Err(setErr).Msg("Failed to set rate limit block")
			}
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return s.fail(rawURL, profile.Domain, apperr.NewTimeout(profile.Domain, s.deadline).Error())
		}
		return s.fail(rawURL, profile.Domain, err.Error())
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return s.fail(rawURL, profile.Domain,
			apperr.NewParsing(profile.Domain, "failed to parse HTML", err).Error())
	}

	result := ScrapingResult{
		Success: true,
		URL:     rawURL,
		Site:    profile.Domain,
	}

	if title := ExtractField(doc, profile.TitleSelectors); title != nil {
		result.Title = title.Text
		log.Debug().Int("rule", title.RuleIndex).Msg("Title selector matched")
	} else {
		log.Debug().Msg("No title selector matched")
	}

	if price := ExtractField(doc, profile.PriceSelectors); price != nil {
		amount, currency, normErr := NormalizePrice(price.Text, profile, domain)
		if normErr != nil {
			// Non-fatal: the result degrades to an absent price
			log.Debug().Err(normErr).Str("raw", price.Text).Msg("Price normalization failed")
		} else {
			result.Price = amount
			result.Currency = currency
			log.Debug().Int("rule", price.RuleIndex).Str("price", amount).Msg("Price selector matched")
		}
	} else {
		log.Debug().Msg("No price selector matched")
	}

	result.Timestamp = time.Now().Unix()
	return result
}

// fail builds a terminal failure result. Title, price and currency stay
// absent on failure.
func (s *Scraper) fail(url, site, message string) ScrapingResult {
	return ScrapingResult{
		Success:   false,
		URL:       url,
		Site:      site,
		Error:     message,
		Timestamp: time.Now().Unix(),
	}
}
