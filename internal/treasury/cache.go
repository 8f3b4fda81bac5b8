package treasury

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/phi-h-nguyen/modernfi-take-home/internal/domain/models"
	"github.com/phi-h-nguyen/modernfi-take-home/internal/logger"
)

// DefaultCacheSize bounds how many distinct years stay resident.
const DefaultCacheSize = 16

// YearCache memoizes parsed per-year yield data behind the remote
// fetcher. It is constructed once at startup and shared by reference
// across request handlers; all internal state is safe for concurrent
// use.
//
// Keys are taken verbatim: any string the caller supplies is a valid
// key, not just 4-digit years. Capacity overflow evicts the least
// recently used year. Entries never expire by time, so the current
// year — which the upstream feed extends every trading day — goes
// stale for the lifetime of the process. Known tradeoff.
type YearCache struct {
	fetcher Fetcher
	entries *lru.Cache[string, []models.DailyYield]
	group   singleflight.Group
}

// NewYearCache builds a cache over the given fetcher with the given
// capacity (<= 0 falls back to DefaultCacheSize).
func NewYearCache(fetcher Fetcher, capacity int) (*YearCache, error) {
	if capacity <= 0 {
		capacity = DefaultCacheSize
	}
	entries, err := lru.New[string, []models.DailyYield](capacity)
	if err != nil {
		return nil, fmt.Errorf("init lru: %w", err)
	}
	return &YearCache{fetcher: fetcher, entries: entries}, nil
}

// Get returns the dataset for a year, fetching and parsing it on first
// access. Concurrent misses for the same year share one fetch.
//
// Failures propagate to every waiting caller and are never cached: the
// next request for the same year retries the fetch.
func (c *YearCache) Get(ctx context.Context, year string) ([]models.DailyYield, error) {
	if data, ok := c.entries.Get(year); ok {
		return data, nil
	}

	v, err, _ := c.group.Do(year, func() (interface{}, error) {
		// Re-check: another flight may have populated the entry
		// between our miss and acquiring the flight.
		if data, ok := c.entries.Get(year); ok {
			return data, nil
		}

		raw, err := c.fetcher.FetchYear(ctx, year)
		if err != nil {
			return nil, err
		}
		data, err := ParseYearCSV(raw)
		if err != nil {
			return nil, fmt.Errorf("parse year %s: %w", year, err)
		}

		c.entries.Add(year, data)
		logger.L().Info().Str("year", year).Int("days", len(data)).Msg("cached treasury year")
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.DailyYield), nil
}

// Len reports how many years are currently resident.
func (c *YearCache) Len() int { return c.entries.Len() }
