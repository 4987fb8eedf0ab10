package postgres

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"leadbook/internal/ports"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrations returns the goose migration files for this dialect.
func Migrations() fs.FS {
	sub, err := fs.Sub(migrations, "migrations")
	if err != nil {
		panic(err)
	}
	return sub
}

type DB struct {
	queries
	Pool *pgxpool.Pool

	sqlOnce sync.Once
	sqlDB   *sql.DB
}

func Connect(ctx context.Context, url string) (*DB, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns = 10
	cfg.HealthCheckPeriod = 30 * time.Second
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return &DB{queries: queries{q: pool}, Pool: pool}, nil
}

func (db *DB) Close() error {
	var err error
	if db.sqlDB != nil {
		err = db.sqlDB.Close()
	}
	db.Pool.Close()
	return err
}

// SQL returns a database/sql handle sharing the pool, for goose. The handle
// is opened once and closed by Close.
func (db *DB) SQL() *sql.DB {
	db.sqlOnce.Do(func() { db.sqlDB = stdlib.OpenDBFromPool(db.Pool) })
	return db.sqlDB
}

func (db *DB) InTx(ctx context.Context, fn func(ports.Repositories) error) error {
	return db.withTx(ctx, pgx.TxOptions{}, fn)
}

// ReadTx pins fn to one REPEATABLE READ snapshot so counts and groupings
// computed from several queries agree.
func (db *DB) ReadTx(ctx context.Context, fn func(ports.Repositories) error) error {
	return db.withTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, fn)
}

func (db *DB) withTx(ctx context.Context, opts pgx.TxOptions, fn func(ports.Repositories) error) (err error) {
	tx, err := db.Pool.BeginTx(ctx, opts)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()
	return fn(queries{q: tx})
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// queries implements ports.Repositories.
type queries struct {
	q querier
}
