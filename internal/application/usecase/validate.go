package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"indexprice/internal/domain/model"
)

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

var dateLayouts = []struct {
	layout  string
	hasTime bool
}{
	{"2006-01-02", false},
	{"2006-01-02 15:04:05", true},
	{"2006-01-02T15:04:05", true},
}

// ValidateTicker lowercases raw and checks it against the allow-list.
func ValidateTicker(tickers model.TickerSet, raw string) (string, error) {
	ticker := strings.ToLower(strings.TrimSpace(raw))
	if !tickers.Contains(ticker) {
		return "", model.NewValidationError("Invalid ticker. Supported values: " + strings.Join(tickers.Sorted(), ", "))
	}
	return ticker, nil
}

func ValidatePage(skip, limit int) error {
	if skip < 0 {
		return model.NewValidationError("skip must be a non-negative integer")
	}
	if limit < 1 || limit > MaxLimit {
		return model.NewValidationError(fmt.Sprintf("limit must be an integer between 1 and %d", MaxLimit))
	}
	return nil
}

// ParsePage reads skip and limit query values. Empty values fall back to 0
// and DefaultLimit.
func ParsePage(skipRaw, limitRaw string) (int, int, error) {
	skip, limit := 0, DefaultLimit

	if skipRaw != "" {
		n, err := strconv.Atoi(skipRaw)
		if err != nil {
			return 0, 0, model.NewValidationError("skip must be a non-negative integer")
		}
		skip = n
	}
	if limitRaw != "" {
		n, err := strconv.Atoi(limitRaw)
		if err != nil {
			return 0, 0, model.NewValidationError(fmt.Sprintf("limit must be an integer between 1 and %d", MaxLimit))
		}
		limit = n
	}

	if err := ValidatePage(skip, limit); err != nil {
		return 0, 0, err
	}
	return skip, limit, nil
}

// ParseDate accepts exactly YYYY-MM-DD, "YYYY-MM-DD HH:MM:SS" and
// YYYY-MM-DDTHH:MM:SS, interpreted as UTC. hasTime reports whether a time of
// day was given.
func ParseDate(raw string) (t time.Time, hasTime bool, err error) {
	for _, f := range dateLayouts {
		t, err := time.ParseInLocation(f.layout, raw, time.UTC)
		// time.Parse also accepts fractional seconds the layout does not name.
		if err == nil && t.Format(f.layout) == raw {
			return t, f.hasTime, nil
		}
	}
	return time.Time{}, false, model.NewValidationError("Invalid date format. Use YYYY-MM-DD or YYYY-MM-DD HH:MM:SS")
}
