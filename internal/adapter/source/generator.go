package source

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"indexprice/internal/domain/model"
)

var startingPrices = map[string]decimal.Decimal{
	"btc_usd": decimal.NewFromInt(60000),
	"eth_usd": decimal.NewFromInt(3000),
}

// Generator produces a random walk of prices per ticker. It backs the
// "test" source mode so the service runs without network access.
type Generator struct {
	log         *slog.Logger
	failureRate float64
	now         func() time.Time

	mu     sync.Mutex
	rand   *rand.Rand
	prices map[string]decimal.Decimal
}

type GeneratorOption func(*Generator)

// WithFailureRate makes a fraction of fetches fail as if the source were
// unavailable.
func WithFailureRate(rate float64) GeneratorOption {
	return func(g *Generator) {
		g.failureRate = rate
	}
}

func WithSeed(seed int64) GeneratorOption {
	return func(g *Generator) {
		g.rand = rand.New(rand.NewSource(seed))
	}
}

func WithClock(now func() time.Time) GeneratorOption {
	return func(g *Generator) {
		g.now = now
	}
}

func NewGenerator(log *slog.Logger, opts ...GeneratorOption) *Generator {
	g := &Generator{
		log:    log,
		now:    time.Now,
		rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
		prices: make(map[string]decimal.Decimal),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) Name() string { return "generator" }

func (g *Generator) FetchIndexPrice(ctx context.Context, ticker string) (model.RawPriceObservation, error) {
	if err := ctx.Err(); err != nil {
		return model.RawPriceObservation{}, fmt.Errorf("%w: %w", model.ErrSourceUnavailable, err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.failureRate > 0 && g.rand.Float64() < g.failureRate {
		g.log.Debug("generator simulated outage", "ticker", ticker)
		return model.RawPriceObservation{}, fmt.Errorf("%w: simulated outage", model.ErrSourceUnavailable)
	}

	price, ok := g.prices[ticker]
	if !ok {
		price, ok = startingPrices[ticker]
		if !ok {
			price = decimal.NewFromInt(100)
		}
	}

	// step within +/-0.5%
	step := decimal.NewFromFloat(1 + (g.rand.Float64()-0.5)/100)
	price = price.Mul(step).Round(8)
	if !price.IsPositive() {
		price = decimal.New(1, -8)
	}
	g.prices[ticker] = price

	return model.RawPriceObservation{
		Price:       price.StringFixed(8),
		TimestampMs: g.now().UnixMilli(),
	}, nil
}
