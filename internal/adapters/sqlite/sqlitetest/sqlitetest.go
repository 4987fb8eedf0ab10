// Package sqlitetest opens migrated in-memory stores for tests.
package sqlitetest

import (
	"context"
	"io"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"

	"leadbook/internal/adapters/sqlite"
	"leadbook/internal/migrate"
)

// New returns an empty, fully migrated in-memory store closed at test cleanup.
func New(t testing.TB) *sqlite.DB {
	t.Helper()
	ctx := context.Background()
	db, err := sqlite.Open(ctx, ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	r, err := migrate.New(goose.DialectSQLite3, db.SQL(), sqlite.Migrations(), QuietLogger())
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Up(ctx); err != nil {
		t.Fatal(err)
	}
	return db
}

// QuietLogger discards everything.
func QuietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
