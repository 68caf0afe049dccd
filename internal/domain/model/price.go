package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tick is a single persisted index price observation. Ticks are never updated.
type Tick struct {
	ID        int64           `json:"id"`
	Ticker    string          `json:"ticker"`
	Price     decimal.Decimal `json:"price"`
	Timestamp time.Time       `json:"timestamp"`
	CreatedAt time.Time       `json:"created_at"`
}

// RawPriceObservation is what the price source returned, before normalization.
// Price keeps the provider's textual representation.
type RawPriceObservation struct {
	Price       string
	TimestampMs int64
}

type TickPage struct {
	Items []Tick `json:"items"`
	Total int64  `json:"total"`
}

type LatestPrice struct {
	Ticker    string          `json:"ticker"`
	Price     decimal.Decimal `json:"price"`
	Timestamp time.Time       `json:"timestamp"`
	FetchedAt time.Time       `json:"fetched_at"`
}
