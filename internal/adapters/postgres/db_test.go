package postgres

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

// pgxpool dials lazily, so no server is needed here.
func TestSQLHandleIsReused(t *testing.T) {
	pool, err := pgxpool.New(context.Background(), "postgres://leadbook@127.0.0.1:1/leadbook")
	if err != nil {
		t.Fatal(err)
	}
	db := &DB{queries: queries{q: pool}, Pool: pool}

	first := db.SQL()
	if first == nil || db.SQL() != first {
		t.Fatal("SQL should return the same handle on every call")
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := first.Ping(); err == nil {
		t.Fatal("handle should be closed with the store")
	}
}
