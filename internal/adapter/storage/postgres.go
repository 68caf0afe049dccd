package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	_ "github.com/lib/pq"

	dbmodel "indexprice/internal/adapter/storage/gen/model"
	"indexprice/internal/adapter/storage/gen/table"
	"indexprice/internal/domain/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS price_ticks (
	id BIGSERIAL PRIMARY KEY,
	ticker VARCHAR(10) NOT NULL,
	price NUMERIC(20, 8) NOT NULL,
	timestamp TIMESTAMPTZ NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_ticker_timestamp ON price_ticks(ticker, timestamp);
`

// dbtx is satisfied by both *sql.DB and *sql.Tx.
type dbtx interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type txKey struct{}

// PoolOptions tunes the database/sql connection pool. Zero values keep the
// driver defaults.
type PoolOptions struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type PostgresAdapter struct {
	db *sql.DB
}

func NewPostgresAdapter(ctx context.Context, connStr string, pool PoolOptions) (*PostgresAdapter, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if pool.MaxOpenConns > 0 {
		db.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns > 0 {
		db.SetMaxIdleConns(pool.MaxIdleConns)
	}
	if pool.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(pool.ConnMaxLifetime)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresAdapter{db: db}, nil
}

// InitSchema creates the price_ticks table and its index if missing.
func (a *PostgresAdapter) InitSchema(ctx context.Context) error {
	if _, err := a.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to init schema: %w", err)
	}
	return nil
}

func (a *PostgresAdapter) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return errors.Join(err, fmt.Errorf("failed to roll back: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (a *PostgresAdapter) conn(ctx context.Context) dbtx {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return a.db
}

func (a *PostgresAdapter) Insert(ctx context.Context, tick model.Tick) (model.Tick, error) {
	t := table.PriceTicks
	stmt := t.INSERT(t.Ticker, t.Price, t.Timestamp).
		MODEL(dbmodel.PriceTicks{
			Ticker:    tick.Ticker,
			Price:     tick.Price,
			Timestamp: tick.Timestamp.UTC(),
		}).
		RETURNING(t.AllColumns)

	var row dbmodel.PriceTicks
	if err := stmt.QueryContext(ctx, a.conn(ctx), &row); err != nil {
		return model.Tick{}, fmt.Errorf("failed to insert tick: %w", err)
	}
	return toTick(row), nil
}

func (a *PostgresAdapter) ListByTicker(ctx context.Context, ticker string, offset, limit int) ([]model.Tick, error) {
	t := table.PriceTicks
	stmt := t.SELECT(t.AllColumns).
		WHERE(t.Ticker.EQ(postgres.String(ticker))).
		ORDER_BY(t.Timestamp.DESC(), t.ID.DESC()).
		LIMIT(int64(limit)).
		OFFSET(int64(offset))

	return a.queryTicks(ctx, stmt)
}

func (a *PostgresAdapter) LatestByTicker(ctx context.Context, ticker string) (*model.Tick, error) {
	t := table.PriceTicks
	stmt := t.SELECT(t.AllColumns).
		WHERE(t.Ticker.EQ(postgres.String(ticker))).
		ORDER_BY(t.Timestamp.DESC(), t.ID.DESC()).
		LIMIT(1)

	var row dbmodel.PriceTicks
	err := stmt.QueryContext(ctx, a.conn(ctx), &row)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest tick: %w", err)
	}

	tick := toTick(row)
	return &tick, nil
}

func (a *PostgresAdapter) RangeByTicker(ctx context.Context, ticker string, start, end time.Time, offset, limit int) ([]model.Tick, error) {
	t := table.PriceTicks
	stmt := t.SELECT(t.AllColumns).
		WHERE(postgres.AND(
			t.Ticker.EQ(postgres.String(ticker)),
			t.Timestamp.GT_EQ(postgres.TimestampzT(start.UTC())),
			t.Timestamp.LT(postgres.TimestampzT(end.UTC())),
		)).
		ORDER_BY(t.Timestamp.DESC(), t.ID.DESC()).
		LIMIT(int64(limit)).
		OFFSET(int64(offset))

	return a.queryTicks(ctx, stmt)
}

func (a *PostgresAdapter) CountByTicker(ctx context.Context, ticker string) (int64, error) {
	t := table.PriceTicks
	query, args := postgres.SELECT(postgres.COUNT(postgres.STAR)).
		FROM(t).
		WHERE(t.Ticker.EQ(postgres.String(ticker))).
		Sql()

	var n int64
	if err := a.conn(ctx).QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count ticks: %w", err)
	}
	return n, nil
}

func (a *PostgresAdapter) Ping(ctx context.Context) error {
	return a.db.PingContext(ctx)
}

func (a *PostgresAdapter) Close() error {
	return a.db.Close()
}

func (a *PostgresAdapter) queryTicks(ctx context.Context, stmt postgres.SelectStatement) ([]model.Tick, error) {
	rows := []dbmodel.PriceTicks{}
	if err := stmt.QueryContext(ctx, a.conn(ctx), &rows); err != nil {
		return nil, fmt.Errorf("failed to fetch ticks: %w", err)
	}

	ticks := make([]model.Tick, 0, len(rows))
	for _, r := range rows {
		ticks = append(ticks, toTick(r))
	}
	return ticks, nil
}

func toTick(row dbmodel.PriceTicks) model.Tick {
	return model.Tick{
		ID:        row.ID,
		Ticker:    row.Ticker,
		Price:     row.Price,
		Timestamp: row.Timestamp.UTC(),
		CreatedAt: row.CreatedAt.UTC(),
	}
}
