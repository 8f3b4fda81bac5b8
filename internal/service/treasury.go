package service

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/phi-h-nguyen/modernfi-take-home/internal/domain/dto"
	"github.com/phi-h-nguyen/modernfi-take-home/internal/domain/models"
)

// feedSource identifies where yield data comes from in range responses.
const feedSource = "treasury.gov"

// YieldService resolves yield-curve queries against the year cache.
// This decouples HTTP handlers from the fetch/cache pipeline.
type YieldService interface {
	// RangeQuery merges the requested years and filters by the optional
	// inclusive [start, end] bounds. Data is sorted ascending by date.
	RangeQuery(ctx context.Context, years []string, start, end *time.Time) (*dto.TreasuryRangeResponse, error)

	// EffectiveDate resolves the yield curve in effect on the target
	// date, rolling weekend dates back to the preceding Friday.
	EffectiveDate(ctx context.Context, target time.Time) (*dto.TreasuryDayResponse, error)
}

// YearSource is the cache-facing dependency of the resolver.
type YearSource interface {
	Get(ctx context.Context, year string) ([]models.DailyYield, error)
}

type yieldService struct {
	cache YearSource
}

// NewYieldService builds a YieldService over the given year source.
func NewYieldService(cache YearSource) YieldService {
	return &yieldService{cache: cache}
}

func (s *yieldService) RangeQuery(ctx context.Context, years []string, start, end *time.Time) (*dto.TreasuryRangeResponse, error) {
	if start != nil && end != nil && start.After(*end) {
		return nil, NewValidationError("start_date must not be after end_date")
	}

	// All-or-nothing: one failing year fails the whole query. No
	// partial results for multi-year requests.
	var merged []models.DailyYield
	for _, year := range years {
		data, err := s.cache.Get(ctx, year)
		if err != nil {
			return nil, &UpstreamError{Year: year, Err: err}
		}
		merged = append(merged, data...)
	}

	// Merge order is independent of each year's internal descending
	// order and of the user-supplied year order.
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Date.Before(merged[j].Date)
	})

	filtered := merged[:0:0]
	for _, rec := range merged {
		if start != nil && rec.Date.Before(*start) {
			continue
		}
		if end != nil && rec.Date.After(*end) {
			continue
		}
		filtered = append(filtered, rec)
	}

	if len(filtered) == 0 {
		return nil, ErrNoData
	}

	days := make([]dto.TreasuryDay, 0, len(filtered))
	for _, rec := range filtered {
		days = append(days, dto.TreasuryDay{
			Date:   rec.Date.Format("01/02/2006"),
			Yields: rec.Yields,
		})
	}

	return &dto.TreasuryRangeResponse{
		Source: feedSource,
		Years:  years,
		Data:   days,
		Count:  len(days),
		DateRange: dto.DateRange{
			StartDate: formatBound(start),
			EndDate:   formatBound(end),
		},
	}, nil
}

func (s *yieldService) EffectiveDate(ctx context.Context, target time.Time) (*dto.TreasuryDayResponse, error) {
	// Weekend roll-back happens before any data lookup and does not
	// consult holidays.
	switch target.Weekday() {
	case time.Saturday:
		target = target.AddDate(0, 0, -1)
	case time.Sunday:
		target = target.AddDate(0, 0, -2)
	}

	year := strconv.Itoa(target.Year())
	data, err := s.cache.Get(ctx, year)
	if err != nil {
		return nil, &UpstreamError{Year: year, Err: err}
	}
	if len(data) == 0 {
		return nil, ErrNoData
	}

	// Data is newest-first: the first record on or before the target
	// is the latest one. A target before all of the year's data is a
	// miss; the previous year is deliberately not consulted.
	for _, rec := range data {
		if !rec.Date.After(target) {
			return &dto.TreasuryDayResponse{
				Date:   rec.Date.Format("2006-01-02"),
				Yields: rec.Yields,
			}, nil
		}
	}

	return nil, ErrNoData
}

func formatBound(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
