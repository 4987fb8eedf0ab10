package stats

import (
	"context"
	"fmt"
	"sort"

	"leadbook/internal/domain"
	"leadbook/internal/ports"
	"leadbook/internal/services/activity"
)

type Service struct {
	store  ports.Store
	recent int
}

func New(store ports.Store) *Service { return &Service{store: store, recent: activity.RecentLimit} }

// Get reads all leads and the recent activity feed from one snapshot and
// derives the dashboard figures. Nothing is cached between calls.
func (s *Service) Get(ctx context.Context) (domain.DashboardStats, error) {
	var out domain.DashboardStats
	err := s.store.ReadTx(ctx, func(r ports.Repositories) error {
		leads, err := r.ListLeads(ctx)
		if err != nil {
			return fmt.Errorf("list leads: %w", err)
		}
		recent, err := activity.New(r).ListRecent(ctx, s.recent)
		if err != nil {
			return fmt.Errorf("recent activity: %w", err)
		}
		out = Compute(leads, recent)
		return nil
	})
	return out, err
}

// Compute derives the dashboard figures from a snapshot. The conversion rate
// is an unrounded percentage and is 0 for an empty set. Status groups only
// cover labels present in leads, largest first, ties by label.
func Compute(leads []domain.Lead, recent []domain.Activity) domain.DashboardStats {
	st := domain.DashboardStats{
		TotalLeads:     len(leads),
		LeadsByStatus:  []domain.StatusCount{},
		RecentActivity: recent,
	}
	if st.RecentActivity == nil {
		st.RecentActivity = []domain.Activity{}
	}

	counts := make(map[domain.Status]int)
	for _, l := range leads {
		counts[l.Status]++
		switch l.Status {
		case domain.StatusNew:
			st.NewLeads++
		case domain.StatusConverted:
			st.ConvertedLeads++
		}
	}
	if st.TotalLeads > 0 {
		st.ConversionRate = float64(st.ConvertedLeads) / float64(st.TotalLeads) * 100
	}

	for status, n := range counts {
		st.LeadsByStatus = append(st.LeadsByStatus, domain.StatusCount{Status: status, Count: n})
	}
	sort.Slice(st.LeadsByStatus, func(i, j int) bool {
		a, b := st.LeadsByStatus[i], st.LeadsByStatus[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Status < b.Status
	})
	return st
}
