package port

import (
	"context"

	"indexprice/internal/domain/model"
)

//go:generate mockgen -source=source.go -destination=mock/source_mock.go -package=mock

// PriceSource fetches the current index price for one ticker. Implementations
// do not retry; failures wrap model.ErrSourceUnavailable.
type PriceSource interface {
	FetchIndexPrice(ctx context.Context, ticker string) (model.RawPriceObservation, error)
	Name() string
}
