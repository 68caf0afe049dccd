package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"indexprice/internal/application/usecase"
	"indexprice/internal/domain/model"
)

func TestParsePage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		skip, limit  string
		wantSkip     int
		wantLimit    int
		wantValidErr bool
	}{
		{name: "defaults", wantSkip: 0, wantLimit: 100},
		{name: "explicit", skip: "20", limit: "1000", wantSkip: 20, wantLimit: 1000},
		{name: "not a number", skip: "abc", wantValidErr: true},
		{name: "negative skip", skip: "-1", wantValidErr: true},
		{name: "limit zero", limit: "0", wantValidErr: true},
		{name: "limit float", limit: "1.5", wantValidErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skip, limit, err := usecase.ParsePage(tt.skip, tt.limit)
			if tt.wantValidErr {
				var verr *model.ValidationError
				require.ErrorAs(t, err, &verr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantSkip, skip)
			require.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	d, hasTime, err := usecase.ParseDate("2024-01-15")
	require.NoError(t, err)
	require.False(t, hasTime)
	require.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), d)

	d, hasTime, err = usecase.ParseDate("2024-01-15 10:30:00")
	require.NoError(t, err)
	require.True(t, hasTime)
	require.Equal(t, time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC), d)

	_, _, err = usecase.ParseDate("2024-13-01")
	require.Error(t, err)
}

func TestParseDate_RejectsNonLiteralInput(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{
		"2024-01-10 10:00:00.5",
		"2024-01-10T10:00:00.123",
		" 2024-01-10",
		"2024-01-10 ",
		"2024-01-10 10:00",
		"2024-1-10",
	} {
		_, _, err := usecase.ParseDate(raw)
		var verr *model.ValidationError
		require.ErrorAs(t, err, &verr, raw)
		require.Equal(t, "Invalid date format. Use YYYY-MM-DD or YYYY-MM-DD HH:MM:SS", verr.Message, raw)
	}
}

func TestValidateTicker(t *testing.T) {
	t.Parallel()

	set := model.NewTickerSet([]string{"BTC", "eth", "sol"})

	got, err := usecase.ValidateTicker(set, " Sol_USD ")
	require.NoError(t, err)
	require.Equal(t, "sol_usd", got)

	_, err = usecase.ValidateTicker(set, "doge_usd")
	require.EqualError(t, err, "Invalid ticker. Supported values: btc_usd, eth_usd, sol_usd")
}
