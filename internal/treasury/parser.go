package treasury

import (
	"encoding/csv"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/phi-h-nguyen/modernfi-take-home/internal/domain/models"
)

// feedDateLayout is the date format used by the treasury.gov CSV feed.
const feedDateLayout = "01/02/2006"

// ParseYearCSV converts one year of raw yield-curve CSV text into daily
// records sorted descending by date (newest first).
//
// The feed is tolerated rather than trusted: a row with a blank or
// unparseable Date is dropped, a blank or non-numeric tenor cell is
// dropped, and a day left with no yields at all is dropped. None of
// these anomalies is an error. Only structurally broken input fails the
// whole parse:
//   - text that encoding/csv cannot read at all
//   - a header row without a "Date" column
//
// Percentages are converted to integer basis points with exact decimal
// arithmetic: "4.58" -> 458, never 457 from float drift.
func ParseYearCSV(raw string) ([]models.DailyYield, error) {
	r := csv.NewReader(strings.NewReader(raw))
	r.FieldsPerRecord = -1 // feed rows occasionally miss trailing cells

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty csv: no header row")
	}

	header := rows[0]
	dateCol := -1
	for i, h := range header {
		if strings.TrimSpace(h) == "Date" {
			dateCol = i
			break
		}
	}
	if dateCol == -1 {
		return nil, fmt.Errorf("invalid header: no Date column in %q", strings.Join(header, ","))
	}

	records := make([]models.DailyYield, 0, len(rows)-1)

	for _, rec := range rows[1:] {
		if dateCol >= len(rec) {
			continue
		}
		dateStr := strings.TrimSpace(rec[dateCol])
		if dateStr == "" {
			continue
		}
		date, err := time.Parse(feedDateLayout, dateStr)
		if err != nil {
			// Malformed date, skip the whole row.
			continue
		}

		yields := make(map[string]int)
		for i, cell := range rec {
			if i == dateCol || i >= len(header) {
				continue
			}
			tenor := strings.TrimSpace(header[i])
			if tenor == "" {
				continue
			}
			bp, ok := toBasisPoints(cell)
			if !ok {
				continue
			}
			yields[tenor] = bp
		}

		// A day that contributed nothing is not worth keeping.
		if len(yields) == 0 {
			continue
		}

		records = append(records, models.DailyYield{Date: date, Yields: yields})
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})

	return records, nil
}

// toBasisPoints parses a percentage cell ("4.58") into integer basis
// points (458). Returns false for blank or non-numeric cells.
func toBasisPoints(cell string) (int, bool) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return 0, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, false
	}
	return int(d.Shift(2).Round(0).IntPart()), true
}
