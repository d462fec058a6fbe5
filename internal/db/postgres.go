package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPostgresPool connects to PostgreSQL with a short timeout and verifies
// the connection before handing the pool to a store.
func NewPostgresPool(ctx context.Context, uri string) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, uri)
	if err != nil {
		return nil, fmt.Errorf("[DB] Unable to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("[DB] Unable to ping database: %w", err)
	}

	slog.Info("[DB] Connected to PostgreSQL successfully")
	return pool, nil
}
