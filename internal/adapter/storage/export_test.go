package storage

import "context"

// Truncate empties price_ticks between integration tests.
func (a *PostgresAdapter) Truncate(ctx context.Context) error {
	_, err := a.db.ExecContext(ctx, "TRUNCATE price_ticks RESTART IDENTITY")
	return err
}
