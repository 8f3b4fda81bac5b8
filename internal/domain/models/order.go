package models

import "time"

// Order represents a single trade order in the blotter.
//
// Orders are insert-only in this service: they are created through the
// API, listed newest-first, and never updated or deleted.
type Order struct {
	ID           int64     `json:"id"`
	Side         string    `json:"side"`          // "Buy" or "Sell"
	Tenor        string    `json:"tenor"`         // one of ValidTenors
	IssuanceType string    `json:"issuance_type"` // "WI", "OTR" or "OFTR"
	Quantity     float64   `json:"quantity"`
	Yield        float64   `json:"yield"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
}

// ValidSides are the accepted order sides.
var ValidSides = []string{"Buy", "Sell"}

// ValidTenors are the accepted order maturities. These are order-entry
// tenors and intentionally distinct from the yield-curve column labels
// ("1 Mo", "2 Yr", ...) used by the Treasury feed.
var ValidTenors = []string{
	"1M", "1.5M", "2M", "3M", "4M", "6M",
	"1Y", "2Y", "3Y", "5Y", "7Y", "10Y", "20Y", "30Y",
}

// ValidIssuanceTypes are the accepted issuance types: when-issued,
// on-the-run and off-the-run.
var ValidIssuanceTypes = []string{"WI", "OTR", "OFTR"}
