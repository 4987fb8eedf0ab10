// Package sqlite implements the record store on SQLite for local runs and
// tests. Queries go through sqlx; the driver is modernc.org/sqlite (pure Go).
package sqlite

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

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

const memoryPath = ":memory:"

type DB struct {
	queries
	X *sqlx.DB
}

// Open opens (creating if needed) the database at path with busy_timeout and
// WAL applied to every pooled connection. ":memory:" yields a private
// in-memory database pinned to a single connection.
func Open(ctx context.Context, path string) (*DB, error) {
	dsn := "file:" + path + "?_pragma=busy_timeout(10000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	if path == memoryPath {
		dsn = memoryPath
	} else if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("sqlite: mkdir %s: %w", dir, err)
		}
	}
	x, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if path == memoryPath {
		// Every new connection would see a fresh, empty database.
		x.SetMaxOpenConns(1)
		x.SetConnMaxLifetime(0)
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := x.PingContext(ctx); err != nil {
		x.Close()
		return nil, err
	}
	return &DB{queries: queries{q: x}, X: x}, nil
}

func (db *DB) Close() error { return db.X.Close() }

// SQL exposes the underlying *sql.DB for migrations.
func (db *DB) SQL() *sql.DB { return db.X.DB }

func (db *DB) InTx(ctx context.Context, fn func(ports.Repositories) error) (err error) {
	tx, err := db.X.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()
	return fn(queries{q: tx})
}

// ReadTx runs fn inside a transaction that is always rolled back. SQLite
// transactions are serializable, so fn sees one snapshot.
func (db *DB) ReadTx(ctx context.Context, fn func(ports.Repositories) error) error {
	tx, err := db.X.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()
	return fn(queries{q: tx})
}

// queries implements ports.Repositories over either the pool or a transaction.
type queries struct {
	q sqlx.ExtContext
}

func nanos(t time.Time) int64 { return t.UTC().UnixNano() }

func fromNanos(n int64) time.Time { return time.Unix(0, n).UTC() }

// textTime stores a nullable timestamp as RFC 3339 text in UTC. Unlike
// nanoseconds it covers every year the JSON layer accepts.
type textTime struct {
	Time  time.Time
	Valid bool
}

func nullText(t *time.Time) textTime {
	if t == nil {
		return textTime{}
	}
	return textTime{Time: *t, Valid: true}
}

func (t textTime) ptr() *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func (t textTime) Value() (driver.Value, error) {
	if !t.Valid {
		return nil, nil
	}
	return t.Time.UTC().Format(time.RFC3339Nano), nil
}

func (t *textTime) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case nil:
		*t = textTime{}
		return nil
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("sqlite: cannot scan %T into timestamp", src)
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("sqlite: timestamp %q: %w", s, err)
	}
	*t = textTime{Time: parsed.UTC(), Valid: true}
	return nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
