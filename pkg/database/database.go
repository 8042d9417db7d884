// Package database wraps a pgx connection pool and exposes the transaction
// scope used by all repositories. One transaction is owned by exactly one
// in-flight request; WithTx resolves to a definite commit or rollback in
// every path, including caller cancellation.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ghuser/stockroom/pkg/logger"
)

// Pool is the minimal surface repositories need from a Postgres pool.
// It is implemented by *pgxpool.Pool and pgxmock.PgxPoolIface.
type Pool interface {
	// Exec executes a SQL command and returns the command tag.
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	// Query executes a SELECT and returns a rows iterator.
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	// QueryRow executes a query expected to return at most one row.
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	// BeginTx starts a transaction with the provided options.
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	// Ping verifies the connection to the database is alive.
	Ping(ctx context.Context) error
	// Close shuts down the pool and frees resources.
	Close()
}

// Database wraps a Pool to satisfy repository constructors and allow testing.
type Database struct {
	pool Pool
	log  logger.Logger
}

// NewPool creates a connection pool for the given URL and verifies
// connectivity with a 5 s deadline.
func NewPool(ctx context.Context, url string, log logger.Logger) (*Database, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Database{pool: pool, log: log}, nil
}

// NewWithPool wraps an existing Pool. Used by tests with pgxmock.
func NewWithPool(pool Pool, log logger.Logger) *Database {
	return &Database{pool: pool, log: log}
}

// Pool returns the underlying pool for single-statement queries.
func (d *Database) Pool() Pool {
	return d.pool
}

// Ping checks the database connection health.
func (d *Database) Ping(ctx context.Context) error {
	if err := d.pool.Ping(ctx); err != nil {
		return fmt.Errorf("database ping: %w", err)
	}
	return nil
}

// Close shuts down the connection pool.
func (d *Database) Close() {
	d.pool.Close()
}

// WithTx runs fn inside a transaction: commit on nil return, rollback on any
// error. Exactly one outcome, never partial persistence. The deferred
// rollback uses a context detached from the caller's so a disconnect mid-fn
// still resolves the transaction instead of leaving it open.
func (d *Database) WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := d.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		// No-op (ErrTxClosed) after a successful commit.
		_ = tx.Rollback(context.WithoutCancel(ctx))
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
