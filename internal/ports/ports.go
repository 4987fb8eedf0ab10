package ports

import (
	"context"

	"leadbook/internal/domain"
)

// Leads owns the lead lifecycle.
type Leads interface {
	Create(ctx context.Context, in domain.LeadInput) (domain.Lead, error)
	Get(ctx context.Context, id int64) (domain.Lead, error)
	List(ctx context.Context) ([]domain.Lead, error)
	Update(ctx context.Context, id int64, patch domain.LeadPatch) (domain.Lead, error)
	Delete(ctx context.Context, id int64) error
}

// Notes appends free-text notes to leads.
type Notes interface {
	Create(ctx context.Context, leadID int64, content string) (domain.Note, error)
	List(ctx context.Context, leadID int64) ([]domain.Note, error)
}

// Activities reads the activity trail.
type Activities interface {
	List(ctx context.Context, leadID int64) ([]domain.Activity, error)
}

// Stats computes dashboard statistics.
type Stats interface {
	Get(ctx context.Context) (domain.DashboardStats, error)
}

// Accounts registers and authenticates users.
type Accounts interface {
	Register(ctx context.Context, username, password, name string) (domain.User, error)
	Authenticate(ctx context.Context, username, password string) (domain.User, error)
	Get(ctx context.Context, id int64) (domain.User, error)
}
