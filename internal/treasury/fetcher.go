package treasury

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/phi-h-nguyen/modernfi-take-home/internal/logger"
)

// DefaultBaseURL is the treasury.gov endpoint serving one CSV file of
// daily yield-curve rates per calendar year.
const DefaultBaseURL = "https://home.treasury.gov/resource-center/data-chart-center/interest-rates/daily-treasury-rates.csv"

// DefaultTimeout bounds a single feed request.
const DefaultTimeout = 15 * time.Second

// FetchErrorKind classifies a failed feed request.
type FetchErrorKind string

const (
	// KindStatus means the feed answered with a non-200 status.
	KindStatus FetchErrorKind = "status"
	// KindTimeout means the request deadline elapsed.
	KindTimeout FetchErrorKind = "timeout"
	// KindNetwork means a connection-level failure (DNS, refused, reset).
	KindNetwork FetchErrorKind = "network"
)

// FetchError is returned by Fetcher implementations when a year's CSV
// could not be retrieved. StatusCode is only set for KindStatus.
type FetchError struct {
	Year       string
	Kind       FetchErrorKind
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindStatus:
		return fmt.Sprintf("fetch year %s: unexpected status %d", e.Year, e.StatusCode)
	case KindTimeout:
		return fmt.Sprintf("fetch year %s: request timed out", e.Year)
	default:
		return fmt.Sprintf("fetch year %s: %v", e.Year, e.Err)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

// Fetcher retrieves the raw CSV body for one calendar year.
type Fetcher interface {
	FetchYear(ctx context.Context, year string) (string, error)
}

// HTTPFetcher fetches yield-curve CSVs from the treasury.gov feed over
// plain HTTP GET. No retries: a failed fetch surfaces immediately and
// the caller decides what to do (the year cache never caches failures).
type HTTPFetcher struct {
	baseURL string
	client  *http.Client
}

// NewHTTPFetcher builds a fetcher against the given base URL with the
// given per-request timeout. Zero values fall back to DefaultBaseURL
// and DefaultTimeout.
func NewHTTPFetcher(baseURL string, timeout time.Duration) *HTTPFetcher {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPFetcher{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// yearURL builds the per-year feed URL: fixed base, year path segment,
// fixed query parameters selecting daily yield-curve data.
func (f *HTTPFetcher) yearURL(year string) string {
	q := url.Values{}
	q.Set("type", "daily_treasury_yield_curve")
	q.Set("field_tdr_date_value", year)
	q.Set("_format", "csv")
	return fmt.Sprintf("%s/%s/all?%s&page", f.baseURL, url.PathEscape(year), q.Encode())
}

// FetchYear performs the GET and returns the raw CSV body on HTTP 200.
//
// The request runs on its own timeout context detached from the caller:
// a client that disconnects mid-fetch does not cancel the download, so
// the result can still populate the cache.
func (f *HTTPFetcher) FetchYear(_ context.Context, year string) (string, error) {
	u := f.yearURL(year)

	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return "", &FetchError{Year: year, Kind: KindNetwork, Err: err}
	}

	logger.L().Debug().Str("year", year).Str("url", u).Msg("fetching treasury feed")

	resp, err := f.client.Do(req)
	if err != nil {
		var ne interface{ Timeout() bool }
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
			return "", &FetchError{Year: year, Kind: KindTimeout, Err: err}
		}
		return "", &FetchError{Year: year, Kind: KindNetwork, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &FetchError{Year: year, Kind: KindStatus, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{Year: year, Kind: KindNetwork, Err: err}
	}

	return string(body), nil
}
