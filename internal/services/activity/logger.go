// Package activity maintains the append-only audit trail attached to leads.
package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"leadbook/internal/domain"
	"leadbook/internal/ports"
)

// RecentLimit is the number of entries shown on the dashboard feed.
const RecentLimit = 10

// Logger appends and lists activity entries. A Logger built with New writes
// through the pool; Bind returns one that writes inside a transaction.
type Logger struct {
	repo  ports.ActivityRepository
	clock func() time.Time
	log   logrus.FieldLogger
}

type Option func(*Logger)

// WithClock overrides time.Now, mainly for tests.
func WithClock(clock func() time.Time) Option { return func(l *Logger) { l.clock = clock } }

func WithLogger(log logrus.FieldLogger) Option { return func(l *Logger) { l.log = log } }

func New(repo ports.ActivityRepository, opts ...Option) *Logger {
	l := &Logger{repo: repo, clock: time.Now, log: logrus.StandardLogger()}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Bind returns a copy of l that appends through repo, typically a
// transaction-scoped repository.
func (l *Logger) Bind(repo ports.ActivityRepository) *Logger {
	cp := *l
	cp.repo = repo
	return &cp
}

// Append records one entry. There is no deduplication: every call persists a row.
func (l *Logger) Append(ctx context.Context, leadID int64, typ domain.ActivityType, description string) (domain.Activity, error) {
	a, err := l.repo.InsertActivity(ctx, domain.Activity{
		LeadID:      leadID,
		Type:        typ,
		Description: description,
		CreatedAt:   l.clock(),
	})
	if err != nil {
		return domain.Activity{}, fmt.Errorf("append %s activity for lead %d: %w", typ, leadID, err)
	}
	l.log.WithFields(logrus.Fields{"lead_id": leadID, "type": typ}).Debug("activity appended")
	return a, nil
}

// List returns a lead's entries, newest first.
func (l *Logger) List(ctx context.Context, leadID int64) ([]domain.Activity, error) {
	return l.repo.ListActivities(ctx, leadID)
}

// ListRecent returns up to limit entries across all leads, newest first.
func (l *Logger) ListRecent(ctx context.Context, limit int) ([]domain.Activity, error) {
	if limit <= 0 {
		return []domain.Activity{}, nil
	}
	return l.repo.ListRecentActivities(ctx, limit)
}
