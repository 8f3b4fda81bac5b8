package models

import "time"

// DailyYield represents the Treasury yield curve observed on a single
// trading day.
//
// Yields maps a tenor label exactly as it appears in the feed header
// (e.g. "1 Mo", "2 Yr", "30 Yr") to the yield in integer basis points.
// A feed value of 4.58% is stored as 458. Tenors whose cell was blank
// or non-numeric for that day are absent from the map; a day with no
// parseable tenors at all is dropped by the parser and never reaches
// this type.
type DailyYield struct {
	Date   time.Time      // calendar date of the observation (date-only, UTC)
	Yields map[string]int // tenor label -> basis points
}
