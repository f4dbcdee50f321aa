package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	connectAttempts = 3
	connectBackoff  = 2 * time.Second
)

type DB struct {
	Pool *pgxpool.Pool
}

// Connect opens a pgx pool and verifies it with a ping. The initial connection
// is retried up to three times with exponential backoff; query failures after
// startup are never retried.
func Connect(ctx context.Context, databaseURL string, logger *slog.Logger) (*DB, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}
	cfg.MaxConns = 10
	cfg.MinConns = 2
	cfg.MaxConnIdleTime = 5 * time.Minute
	cfg.ConnConfig.ConnectTimeout = 10 * time.Second

	var pool *pgxpool.Pool
	backoff := connectBackoff
	for attempt := 1; ; attempt++ {
		pool, err = tryConnect(ctx, cfg)
		if err == nil {
			return &DB{Pool: pool}, nil
		}
		if attempt == connectAttempts {
			return nil, fmt.Errorf("connect db after %d attempts: %w", connectAttempts, err)
		}

		logger.Warn("database connection failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
}

func tryConnect(ctx context.Context, cfg *pgxpool.Config) (*pgxpool.Pool, error) {
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctxPing); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return pool, nil
}

func (d *DB) Close() {
	if d != nil && d.Pool != nil {
		d.Pool.Close()
	}
}
