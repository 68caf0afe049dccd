package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Normalize turns a raw provider observation into a Tick ready to be stored.
// The price is parsed from its decimal text so no precision is lost.
func Normalize(raw RawPriceObservation, currency string) (Tick, error) {
	if strings.TrimSpace(currency) == "" {
		return Tick{}, fmt.Errorf("%w: empty currency code", ErrMalformedObservation)
	}

	text := strings.TrimSpace(raw.Price)
	if text == "" {
		return Tick{}, fmt.Errorf("%w: missing price", ErrMalformedObservation)
	}

	price, err := decimal.NewFromString(text)
	if err != nil {
		return Tick{}, fmt.Errorf("%w: price %q: %v", ErrMalformedObservation, text, err)
	}
	if price.IsNegative() {
		return Tick{}, fmt.Errorf("%w: negative price %s", ErrMalformedObservation, price)
	}

	return Tick{
		Ticker:    TickerFor(currency),
		Price:     price,
		Timestamp: time.UnixMilli(raw.TimestampMs).UTC().Truncate(time.Second),
	}, nil
}
