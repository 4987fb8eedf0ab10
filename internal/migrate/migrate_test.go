package migrate_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/pressly/goose/v3"

	"leadbook/internal/adapters/sqlite"
	"leadbook/internal/adapters/sqlite/sqlitetest"
	"leadbook/internal/migrate"
)

func TestUpStatusDown(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.Open(ctx, ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	r, err := migrate.New(goose.DialectSQLite3, db.SQL(), sqlite.Migrations(), sqlitetest.QuietLogger())
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Up(ctx); err != nil {
		t.Fatal(err)
	}
	// Running again is a no-op.
	if err := r.Up(ctx); err != nil {
		t.Fatalf("second up: %v", err)
	}

	var buf bytes.Buffer
	if err := r.Status(ctx, &buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"VERSION", "00001_leads.sql", "00002_users.sql"} {
		if !strings.Contains(out, want) {
			t.Fatalf("status output missing %q:\n%s", want, out)
		}
	}

	if err := r.Down(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := db.X.ExecContext(ctx, `SELECT 1 FROM users`); err == nil {
		t.Fatal("users table should be gone after down")
	}
	if _, err := db.X.ExecContext(ctx, `SELECT 1 FROM leads`); err != nil {
		t.Fatalf("leads table should survive one down step: %v", err)
	}
}
