//-------------------------------------------------------------------------
//
// pgEdge Food Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package testutil provides throwaway PostgreSQL databases for integration
// tests.
package testutil

import (
	"context"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pgEdge/pgedge-fooddata/internal/db"
)

const (
	// DefaultTestConnString is used when PGEDGE_TEST_CONN is not set.
	DefaultTestConnString = "postgres://postgres@localhost:5432/postgres"

	// TestDBPrefix is the prefix for test databases.
	TestDBPrefix = "fooddata_test_"
)

// PostgresAvailable returns the test connection string if a server answers
// on it, and "" otherwise.
func PostgresAvailable() string {
	connStr := os.Getenv("PGEDGE_TEST_CONN")
	if connStr == "" {
		connStr = DefaultTestConnString
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return ""
	}
	defer conn.Close(ctx)

	if err := conn.Ping(ctx); err != nil {
		return ""
	}
	return connStr
}

// SkipIfNoPostgres skips the test if PostgreSQL is not available.
func SkipIfNoPostgres(t *testing.T) string {
	connStr := PostgresAvailable()
	if connStr == "" {
		t.Skip("PostgreSQL not available, skipping integration test")
	}
	return connStr
}

// TestDBName returns a fresh database name for the named test.
func TestDBName(name string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
	return TestDBPrefix + strings.ToLower(name) + "_" + suffix
}

// WithDatabase returns connStr pointing at dbName instead of its own
// database. Other parameters are kept.
func WithDatabase(connStr, dbName string) (string, error) {
	u, err := url.Parse(connStr)
	if err != nil {
		return "", err
	}
	u.Path = "/" + dbName
	return u.String(), nil
}

// admin runs one statement against the base database.
func admin(ctx context.Context, baseConnStr, sql string) error {
	conn, err := pgx.Connect(ctx, baseConnStr)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	_, err = conn.Exec(ctx, sql)
	return err
}

// CreateTestPool creates a throwaway database and returns a pool connected
// to it through db.Connect. The database is dropped when the test ends,
// unless the test failed, in which case it is kept for diagnostics.
func CreateTestPool(t *testing.T, name string) *pgxpool.Pool {
	t.Helper()

	baseConnStr := SkipIfNoPostgres(t)
	dbName := TestDBName(name)
	ident := pgx.Identifier{dbName}.Sanitize()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := admin(ctx, baseConnStr, "CREATE DATABASE "+ident); err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	connStr, err := WithDatabase(baseConnStr, dbName)
	if err != nil {
		t.Fatalf("Failed to build test connection string: %v", err)
	}

	pool, err := db.Connect(ctx, connStr)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if t.Failed() {
			t.Logf("Test failed, keeping database %s for diagnostics", dbName)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := admin(ctx, baseConnStr, "DROP DATABASE IF EXISTS "+ident+" WITH (FORCE)"); err != nil {
			t.Logf("Warning: failed to drop test database %s: %v", dbName, err)
		}
	})

	return pool
}
