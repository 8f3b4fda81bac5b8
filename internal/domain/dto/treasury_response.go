package dto

// TreasuryDay is one day of yield-curve data as serialized in range
// responses. The date uses the feed's native MM/DD/YYYY format.
type TreasuryDay struct {
	Date   string         `json:"date" example:"09/26/2025"`
	Yields map[string]int `json:"yields"`
}

// DateRange echoes the requested date bounds back to the client.
// Absent bounds serialize as null.
type DateRange struct {
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

// TreasuryRangeResponse is the body of a multi-year/range query on
// GET /api/yields/treasury.
//
// Years preserves the order the client supplied them in; Data is always
// sorted ascending by date regardless of that order.
type TreasuryRangeResponse struct {
	Source    string        `json:"source" example:"treasury.gov"`
	Years     []string      `json:"years"`
	Data      []TreasuryDay `json:"data"`
	Count     int           `json:"count" example:"250"`
	DateRange DateRange     `json:"date_range"`
}

// TreasuryDayResponse is the body of a single effective-date lookup on
// GET /api/yields/treasury?date=YYYY-MM-DD. Unlike range responses the
// date is serialized as YYYY-MM-DD, mirroring the query parameter.
type TreasuryDayResponse struct {
	Date   string         `json:"date" example:"2025-09-26"`
	Yields map[string]int `json:"yields"`
}
