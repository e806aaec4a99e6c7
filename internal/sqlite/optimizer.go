package sqlite

import (
	"context"
	"log/slog"
	"time"

	"github.com/manosdvd/agency/internal/errors"
)

// Optimize runs PRAGMA optimize once. See https://www.sqlite.org/pragma.html#pragma_optimize.
func (db *Database) Optimize(ctx context.Context) error {
	start := time.Now()
	if _, err := db.ReadWrite.ExecContext(ctx, "PRAGMA optimize;"); err != nil {
		return errors.Wrap(err, "optimize database")
	}
	db.logger.LogAttrs(ctx, slog.LevelDebug, "optimized database", slog.Duration("duration", time.Since(start)))
	return nil
}

// StartDatabaseOptimizer runs Optimize once per interval until ctx is cancelled. It blocks, so run it in a
// goroutine.
func (db *Database) StartDatabaseOptimizer(ctx context.Context, interval time.Duration) {
	for {
		if err := db.Optimize(ctx); err != nil && ctx.Err() == nil {
			db.logger.LogAttrs(ctx, slog.LevelError, "failed to optimize database", errors.SlogError(err))
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(interval):
		}
	}
}
