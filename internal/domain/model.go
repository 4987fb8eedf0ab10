package domain

import (
	"time"

	"github.com/oapi-codegen/nullable"
)

// Core domain models used internally. API types are generated from OpenAPI and
// sit in internal/api; the HTTP adapter converts between the two.

// Status is a free-form pipeline label. The constants below are the labels the
// product uses, but any non-empty string is stored as-is.
type Status string

const (
	StatusNew       Status = "New"
	StatusContacted Status = "Contacted"
	StatusQualified Status = "Qualified"
	StatusConverted Status = "Converted"
	StatusLost      Status = "Lost"
)

type Lead struct {
	ID           int64
	Name         string
	Email        string
	Source       string
	Status       Status
	FollowUpDate *time.Time
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// LeadInput carries the fields accepted when creating a lead.
type LeadInput struct {
	Name         string     `json:"name" validate:"notblank,max=200"`
	Email        string     `json:"email" validate:"required,email"`
	Source       string     `json:"source" validate:"notblank,max=100"`
	Status       Status     `json:"status" validate:"omitempty,notblank,max=50"`
	FollowUpDate *time.Time `json:"followUpDate"`
	Notes        *string    `json:"notes"`
}

// LeadPatch is a partial update. Nil pointers and unspecified nullables leave
// the stored value untouched; a null FollowUpDate or Notes clears it.
type LeadPatch struct {
	Name         *string                      `json:"name" validate:"omitempty,notblank,max=200"`
	Email        *string                      `json:"email" validate:"omitempty,email"`
	Source       *string                      `json:"source" validate:"omitempty,notblank,max=100"`
	Status       *Status                      `json:"status" validate:"omitempty,notblank,max=50"`
	FollowUpDate nullable.Nullable[time.Time] `json:"followUpDate"`
	Notes        nullable.Nullable[string]    `json:"notes"`
}

// Apply returns a copy of l with every field present in p written over it.
// UpdatedAt is left to the caller.
func (p LeadPatch) Apply(l Lead) Lead {
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.Email != nil {
		l.Email = *p.Email
	}
	if p.Source != nil {
		l.Source = *p.Source
	}
	if p.Status != nil {
		l.Status = *p.Status
	}
	if p.FollowUpDate.IsSpecified() {
		l.FollowUpDate = nil
		if v, err := p.FollowUpDate.Get(); err == nil {
			l.FollowUpDate = &v
		}
	}
	if p.Notes.IsSpecified() {
		l.Notes = nil
		if v, err := p.Notes.Get(); err == nil {
			l.Notes = &v
		}
	}
	return l
}

type Note struct {
	ID        int64
	LeadID    int64
	Content   string
	CreatedAt time.Time
}

type ActivityType string

const (
	ActivityCreated      ActivityType = "created"
	ActivityStatusChange ActivityType = "status_change"
	ActivityFollowUpSet  ActivityType = "follow_up_set"
	ActivityNoteAdded    ActivityType = "note_added"
)

// Activity is an append-only audit entry for a lead.
type Activity struct {
	ID          int64
	LeadID      int64
	Type        ActivityType
	Description string
	CreatedAt   time.Time
}

type StatusCount struct {
	Status Status
	Count  int
}

// DashboardStats is derived on every request and never persisted.
type DashboardStats struct {
	TotalLeads     int
	NewLeads       int
	ConvertedLeads int
	ConversionRate float64
	LeadsByStatus  []StatusCount
	RecentActivity []Activity
}

type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
}
