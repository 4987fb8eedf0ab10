package ports

import (
	"context"
	"time"

	"leadbook/internal/domain"
)

// LeadRepository stores lead records. Missing ids yield domain.ErrNotFound.
type LeadRepository interface {
	ListLeads(ctx context.Context) ([]domain.Lead, error)
	GetLead(ctx context.Context, id int64) (domain.Lead, error)
	InsertLead(ctx context.Context, in domain.LeadInput, now time.Time) (domain.Lead, error)
	// SaveLead overwrites every mutable column of an existing lead.
	SaveLead(ctx context.Context, lead domain.Lead) (domain.Lead, error)
	// DeleteLead reports whether a row was removed.
	DeleteLead(ctx context.Context, id int64) (bool, error)
	CountLeads(ctx context.Context) (int, error)
}

// NoteRepository stores immutable notes.
type NoteRepository interface {
	InsertNote(ctx context.Context, leadID int64, content string, now time.Time) (domain.Note, error)
	ListNotes(ctx context.Context, leadID int64) ([]domain.Note, error)
}

// ActivityRepository is the append-only activity trail.
type ActivityRepository interface {
	InsertActivity(ctx context.Context, a domain.Activity) (domain.Activity, error)
	ListActivities(ctx context.Context, leadID int64) ([]domain.Activity, error)
	ListRecentActivities(ctx context.Context, limit int) ([]domain.Activity, error)
}

// UserRepository backs the accounts service.
type UserRepository interface {
	InsertUser(ctx context.Context, u domain.User) (domain.User, error)
	GetUser(ctx context.Context, id int64) (domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)
}

// Repositories is the full set of record access methods, either bound to a
// connection pool or to a single transaction.
type Repositories interface {
	LeadRepository
	NoteRepository
	ActivityRepository
	UserRepository
}

// Store is the transactional record store.
type Store interface {
	Repositories
	// InTx runs fn in one read-write transaction. A non-nil error from fn rolls
	// everything back.
	InTx(ctx context.Context, fn func(Repositories) error) error
	// ReadTx runs fn against one consistent read-only snapshot.
	ReadTx(ctx context.Context, fn func(Repositories) error) error
}

// LeadCache is an optional read-through cache for single-lead lookups.
type LeadCache interface {
	GetLead(ctx context.Context, id int64) (lead domain.Lead, found bool, err error)
	SetLead(ctx context.Context, lead domain.Lead) error
	InvalidateLead(ctx context.Context, id int64) error
}
