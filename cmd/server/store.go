package main

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	pg "leadbook/internal/adapters/postgres"
	"leadbook/internal/adapters/sqlite"
	"leadbook/internal/config"
	"leadbook/internal/migrate"
	"leadbook/internal/ports"
)

// Wire repositories to services (ports)
var (
	_ ports.Store = (*pg.DB)(nil)
	_ ports.Store = (*sqlite.DB)(nil)
)

// database is a record store that can also be migrated and closed.
type database interface {
	ports.Store
	SQL() *sql.DB
	Close() error
}

type opened struct {
	db         database
	dialect    goose.Dialect
	migrations fs.FS
}

func openStore(ctx context.Context, cfg config.Config) (*opened, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		db, err := pg.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("db connect error: %w", err)
		}
		return &opened{db: db, dialect: goose.DialectPostgres, migrations: pg.Migrations()}, nil
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("sqlite open error: %w", err)
		}
		return &opened{db: db, dialect: goose.DialectSQLite3, migrations: sqlite.Migrations()}, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func (o *opened) migrator(e *env) (*migrate.Runner, error) {
	return migrate.New(o.dialect, o.db.SQL(), o.migrations, e.log.WithField("component", "migrate"))
}
