// Package db loads generated datasets into PostgreSQL.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pgEdge/pgedge-fooddata/internal/logging"
	"github.com/pgEdge/pgedge-fooddata/pkg/version"
)

// Pool limits. A load copies one table at a time inside a single
// transaction, so one connection does the work and the rest are spare.
const (
	maxConns        = 4
	minConns        = 1
	maxConnLifetime = 30 * time.Minute
	maxConnIdleTime = 5 * time.Minute
)

// Connect opens a pool on connString and checks that the server answers.
// The pool limits above replace any pool_* settings in connString.
func Connect(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	config.MaxConns = maxConns
	config.MinConns = minConns
	config.MaxConnLifetime = maxConnLifetime
	config.MaxConnIdleTime = maxConnIdleTime

	params := config.ConnConfig.RuntimeParams
	if _, ok := params["application_name"]; !ok {
		params["application_name"] = version.Name
	}

	log := logging.Logger.With().
		Str("host", config.ConnConfig.Host).
		Str("database", config.ConnConfig.Database).
		Logger()
	log.Debug().Uint16("port", config.ConnConfig.Port).Msg("Connecting to database")

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info().Msg("Connected to database")
	return pool, nil
}
