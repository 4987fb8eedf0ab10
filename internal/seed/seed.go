// Package seed loads the demo account and sample leads into an empty store.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"leadbook/internal/domain"
	"leadbook/internal/ports"
)

const (
	AdminUsername = "admin"
	AdminPassword = "admin123"
	adminName     = "Admin User"
)

type sampleLead struct {
	in   domain.LeadInput
	due  time.Duration // relative to now; 0 means no follow-up
	note string
}

func samples() []sampleLead {
	return []sampleLead{
		{
			in: domain.LeadInput{
				Name:   "Sarah Johnson",
				Email:  "sarah@techcorp.com",
				Source: "Website",
				Status: domain.StatusNew,
				Notes:  ptr("Interested in the enterprise plan."),
			},
			due:  24 * time.Hour,
			note: "Initial call scheduled for next week.",
		},
		{
			in: domain.LeadInput{
				Name:   "Michael Chen",
				Email:  "m.chen@startup.io",
				Source: "LinkedIn",
				Status: domain.StatusContacted,
				Notes:  ptr("Needs a custom integration demo."),
			},
			due:  -24 * time.Hour,
			note: "Sent brochure via email.",
		},
		{
			in: domain.LeadInput{
				Name:   "Emma Davis",
				Email:  "emma.d@designstudio.net",
				Source: "Referral",
				Status: domain.StatusConverted,
				Notes:  ptr("Signed contract on Friday."),
			},
		},
	}
}

// Result reports what a run created.
type Result struct {
	AdminCreated bool
	Leads        int
	Notes        int
}

type Seeder struct {
	store    ports.Store
	leads    ports.Leads
	notes    ports.Notes
	accounts ports.Accounts
	clock    func() time.Time
	log      logrus.FieldLogger
}

func New(store ports.Store, leads ports.Leads, notes ports.Notes, accounts ports.Accounts, log logrus.FieldLogger) *Seeder {
	return &Seeder{store: store, leads: leads, notes: notes, accounts: accounts, clock: time.Now, log: log}
}

// Run creates the admin user when missing and the sample leads when the store
// holds no leads. It is safe to run repeatedly.
func (s *Seeder) Run(ctx context.Context) (Result, error) {
	var res Result
	_, err := s.store.GetUserByUsername(ctx, AdminUsername)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		if _, err := s.accounts.Register(ctx, AdminUsername, AdminPassword, adminName); err != nil {
			return res, fmt.Errorf("seed admin: %w", err)
		}
		res.AdminCreated = true
		s.log.WithField("username", AdminUsername).Info("seeded admin user")
	case err != nil:
		return res, fmt.Errorf("seed admin lookup: %w", err)
	}

	n, err := s.store.CountLeads(ctx)
	if err != nil {
		return res, fmt.Errorf("seed count leads: %w", err)
	}
	if n > 0 {
		return res, nil
	}
	now := s.clock()
	for _, sl := range samples() {
		in := sl.in
		if sl.due != 0 {
			due := now.Add(sl.due)
			in.FollowUpDate = &due
		}
		lead, err := s.leads.Create(ctx, in)
		if err != nil {
			return res, fmt.Errorf("seed lead %q: %w", in.Name, err)
		}
		res.Leads++
		if sl.note == "" {
			continue
		}
		if _, err := s.notes.Create(ctx, lead.ID, sl.note); err != nil {
			return res, fmt.Errorf("seed note for %q: %w", in.Name, err)
		}
		res.Notes++
	}
	s.log.WithFields(logrus.Fields{"leads": res.Leads, "notes": res.Notes}).Info("seeded sample leads")
	return res, nil
}

func ptr[T any](v T) *T { return &v }
