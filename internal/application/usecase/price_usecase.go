package usecase

import (
	"context"
	"fmt"
	"time"

	"indexprice/internal/domain/model"
	"indexprice/internal/domain/port"
)

type PriceUseCase struct {
	repo    port.TickRepository
	tickers model.TickerSet
	now     func() time.Time
}

func NewPriceUseCase(repo port.TickRepository, tickers model.TickerSet) *PriceUseCase {
	return &PriceUseCase{
		repo:    repo,
		tickers: tickers,
		now:     time.Now,
	}
}

// ListPrices pages through a ticker's ticks, newest first. Total is the
// number of ticks stored for the ticker.
func (uc *PriceUseCase) ListPrices(ctx context.Context, ticker string, skip, limit int) (model.TickPage, error) {
	ticker, err := ValidateTicker(uc.tickers, ticker)
	if err != nil {
		return model.TickPage{}, err
	}
	if err := ValidatePage(skip, limit); err != nil {
		return model.TickPage{}, err
	}

	items, err := uc.repo.ListByTicker(ctx, ticker, skip, limit)
	if err != nil {
		return model.TickPage{}, fmt.Errorf("listing ticks: %w", err)
	}
	total, err := uc.repo.CountByTicker(ctx, ticker)
	if err != nil {
		return model.TickPage{}, fmt.Errorf("counting ticks: %w", err)
	}

	return model.TickPage{Items: nonNil(items), Total: total}, nil
}

func (uc *PriceUseCase) GetLatestPrice(ctx context.Context, ticker string) (model.LatestPrice, error) {
	ticker, err := ValidateTicker(uc.tickers, ticker)
	if err != nil {
		return model.LatestPrice{}, err
	}

	tick, err := uc.repo.LatestByTicker(ctx, ticker)
	if err != nil {
		return model.LatestPrice{}, fmt.Errorf("fetching latest tick: %w", err)
	}
	if tick == nil {
		return model.LatestPrice{}, model.NewNotFoundError("No prices found for ticker: " + ticker)
	}

	return model.LatestPrice{
		Ticker:    tick.Ticker,
		Price:     tick.Price,
		Timestamp: tick.Timestamp,
		FetchedAt: uc.now().UTC(),
	}, nil
}

// GetPricesByDate returns ticks with start <= timestamp < end. A date-only
// end is advanced to the start of the next day; an end with a time of day is
// used as given. Total is the length of the returned page, not the match
// count.
func (uc *PriceUseCase) GetPricesByDate(ctx context.Context, ticker, startDate, endDate string, skip, limit int) (model.TickPage, error) {
	ticker, err := ValidateTicker(uc.tickers, ticker)
	if err != nil {
		return model.TickPage{}, err
	}
	if err := ValidatePage(skip, limit); err != nil {
		return model.TickPage{}, err
	}

	start, _, err := ParseDate(startDate)
	if err != nil {
		return model.TickPage{}, err
	}
	end, endHasTime, err := ParseDate(endDate)
	if err != nil {
		return model.TickPage{}, err
	}
	if start.After(end) {
		return model.TickPage{}, model.NewValidationError("Start date must be before end date")
	}

	if !endHasTime {
		end = end.AddDate(0, 0, 1)
	}

	items, err := uc.repo.RangeByTicker(ctx, ticker, start, end, skip, limit)
	if err != nil {
		return model.TickPage{}, fmt.Errorf("fetching ticks by date: %w", err)
	}

	return model.TickPage{Items: nonNil(items), Total: int64(len(items))}, nil
}

func nonNil(items []model.Tick) []model.Tick {
	if items == nil {
		return []model.Tick{}
	}
	return items
}
