package leads

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"leadbook/internal/domain"
	"leadbook/internal/ports"
	"leadbook/internal/services/activity"
)

type Service struct {
	store    ports.Store
	activity *activity.Logger
	cache    ports.LeadCache
	clock    func() time.Time
	log      logrus.FieldLogger
}

type Option func(*Service)

// WithCache enables the read-through lead cache.
func WithCache(c ports.LeadCache) Option { return func(s *Service) { s.cache = c } }

func WithClock(clock func() time.Time) Option { return func(s *Service) { s.clock = clock } }

func WithLogger(log logrus.FieldLogger) Option { return func(s *Service) { s.log = log } }

func New(store ports.Store, logger *activity.Logger, opts ...Option) *Service {
	s := &Service{store: store, activity: logger, clock: time.Now, log: logrus.StandardLogger()}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Create validates in, persists the lead with status New unless one is given,
// and appends the "created" activity in the same transaction.
func (s *Service) Create(ctx context.Context, in domain.LeadInput) (domain.Lead, error) {
	if err := domain.Validate(in); err != nil {
		return domain.Lead{}, err
	}
	if in.Status == "" {
		in.Status = domain.StatusNew
	}
	var lead domain.Lead
	err := s.store.InTx(ctx, func(r ports.Repositories) error {
		var err error
		lead, err = r.InsertLead(ctx, in, s.clock())
		if err != nil {
			return fmt.Errorf("insert lead: %w", err)
		}
		return s.appendAll(ctx, r, lead.ID, CreatedEntry(lead))
	})
	if err != nil {
		return domain.Lead{}, err
	}
	s.log.WithField("lead_id", lead.ID).Info("lead created")
	return lead, nil
}

// Get reads through the cache. A read that loads a row before a concurrent
// update commits can store the old copy after the update's invalidation; the
// cache TTL bounds that window, matching the last-write-wins update model.
func (s *Service) Get(ctx context.Context, id int64) (domain.Lead, error) {
	if s.cache != nil {
		lead, found, err := s.cache.GetLead(ctx, id)
		if err != nil {
			s.log.WithError(err).WithField("lead_id", id).Warn("lead cache read failed")
		} else if found {
			return lead, nil
		}
	}
	lead, err := s.store.GetLead(ctx, id)
	if err != nil {
		return domain.Lead{}, fmt.Errorf("lead %d: %w", id, err)
	}
	if s.cache != nil {
		if err := s.cache.SetLead(ctx, lead); err != nil {
			s.log.WithError(err).WithField("lead_id", id).Warn("lead cache write failed")
		}
	}
	return lead, nil
}

// List returns every lead, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Lead, error) {
	return s.store.ListLeads(ctx)
}

// Update applies the present fields of patch and appends whatever activities
// the trigger table yields for the pre-update record. updatedAt never moves
// backwards, even if the clock does.
func (s *Service) Update(ctx context.Context, id int64, patch domain.LeadPatch) (domain.Lead, error) {
	if err := domain.Validate(patch); err != nil {
		return domain.Lead{}, err
	}
	var updated domain.Lead
	var entries []Entry
	err := s.store.InTx(ctx, func(r ports.Repositories) error {
		before, err := r.GetLead(ctx, id)
		if err != nil {
			return fmt.Errorf("lead %d: %w", id, err)
		}
		next := patch.Apply(before)
		next.UpdatedAt = s.clock()
		if next.UpdatedAt.Before(before.UpdatedAt) {
			next.UpdatedAt = before.UpdatedAt
		}
		updated, err = r.SaveLead(ctx, next)
		if err != nil {
			return fmt.Errorf("save lead %d: %w", id, err)
		}
		entries = UpdateEntries(before, patch)
		return s.appendAll(ctx, r, id, entries...)
	})
	if err != nil {
		return domain.Lead{}, err
	}
	s.invalidate(ctx, id)
	s.log.WithFields(logrus.Fields{"lead_id": id, "activities": len(entries)}).Info("lead updated")
	return updated, nil
}

// Delete removes the lead. Deleting an unknown id is not an error. Notes and
// activities that reference the lead are kept.
func (s *Service) Delete(ctx context.Context, id int64) error {
	removed, err := s.store.DeleteLead(ctx, id)
	if err != nil {
		return fmt.Errorf("delete lead %d: %w", id, err)
	}
	s.invalidate(ctx, id)
	s.log.WithFields(logrus.Fields{"lead_id": id, "removed": removed}).Info("lead deleted")
	return nil
}

func (s *Service) appendAll(ctx context.Context, r ports.Repositories, leadID int64, entries ...Entry) error {
	logger := s.activity.Bind(r)
	for _, e := range entries {
		if _, err := logger.Append(ctx, leadID, e.Type, e.Description); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) invalidate(ctx context.Context, id int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateLead(ctx, id); err != nil {
		s.log.WithError(err).WithField("lead_id", id).Warn("lead cache invalidation failed")
	}
}
