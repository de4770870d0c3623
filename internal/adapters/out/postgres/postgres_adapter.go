package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/suchimauz/booking-slots-resolver/internal/config"
	"github.com/suchimauz/booking-slots-resolver/internal/core/ports/out"
)

type PostgresAdapter struct {
	pool   *pgxpool.Pool
	logger out.LoggerPort
}

func NewPostgresAdapter(ctx context.Context, cfg *config.Config, logger out.LoggerPort) (*PostgresAdapter, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.Postgres.URL)
	if err != nil {
		logger.Error("postgres.config.parse_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}
	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Error("postgres.pool.init_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		logger.Error("postgres.ping_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	return &PostgresAdapter{
		pool:   pool,
		logger: logger,
	}, nil
}

func (a *PostgresAdapter) Close() {
	if a != nil && a.pool != nil {
		a.pool.Close()
	}
}
