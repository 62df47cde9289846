//-------------------------------------------------------------------------
//
// pgEdge Food Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pgEdge/pgedge-fooddata/internal/logging"
	"github.com/pgEdge/pgedge-fooddata/internal/tables"
)

// CopyTables loads every table with COPY inside one transaction. Tables are
// copied in the order given, so parents must come before children.
func CopyTables(ctx context.Context, pool *pgxpool.Pool, tbls []tables.Table) (int64, error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var total int64
	for _, t := range tbls {
		n, err := tx.CopyFrom(ctx, pgx.Identifier{t.Name}, t.SQLColumns(), pgx.CopyFromRows(t.Rows))
		if err != nil {
			return 0, fmt.Errorf("failed to copy %s: %w", t.Name, err)
		}
		if n != int64(len(t.Rows)) {
			return 0, fmt.Errorf("copied %d of %d rows into %s", n, len(t.Rows), t.Name)
		}
		total += n

		logging.Info().
			Str("table", t.Name).
			Int64("rows", n).
			Msg("Loaded table")
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}
	return total, nil
}

// CountRows returns the number of rows in a table.
func CountRows(ctx context.Context, pool *pgxpool.Pool, table string) (int64, error) {
	var n int64
	err := pool.QueryRow(ctx, "SELECT count(*) FROM "+pgx.Identifier{table}.Sanitize()).Scan(&n)
	return n, err
}
