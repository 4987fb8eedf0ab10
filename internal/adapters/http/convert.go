package httpadapter

import (
	"time"

	"github.com/oapi-codegen/nullable"

	api "leadbook/internal/api"
	"leadbook/internal/domain"
)

func toLead(l domain.Lead) api.Lead {
	out := api.Lead{
		Id:           l.ID,
		Name:         l.Name,
		Email:        l.Email,
		Source:       l.Source,
		Status:       string(l.Status),
		FollowUpDate: nullable.NewNullNullable[time.Time](),
		Notes:        nullable.NewNullNullable[string](),
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
	if l.FollowUpDate != nil {
		out.FollowUpDate = nullable.NewNullableWithValue(*l.FollowUpDate)
	}
	if l.Notes != nil {
		out.Notes = nullable.NewNullableWithValue(*l.Notes)
	}
	return out
}

func fromCreateLead(b api.CreateLeadRequest) domain.LeadInput {
	in := domain.LeadInput{Name: b.Name, Email: b.Email, Source: b.Source}
	if b.Status != nil {
		in.Status = domain.Status(*b.Status)
	}
	if v, err := b.FollowUpDate.Get(); err == nil {
		in.FollowUpDate = &v
	}
	if v, err := b.Notes.Get(); err == nil {
		in.Notes = &v
	}
	return in
}

// fromUpdateLead keeps presence: absent fields stay nil/unspecified, explicit
// nulls stay null.
func fromUpdateLead(b api.UpdateLeadRequest) domain.LeadPatch {
	p := domain.LeadPatch{
		Name:         b.Name,
		Email:        b.Email,
		Source:       b.Source,
		FollowUpDate: b.FollowUpDate,
		Notes:        b.Notes,
	}
	if b.Status != nil {
		st := domain.Status(*b.Status)
		p.Status = &st
	}
	return p
}

func toNote(n domain.Note) api.Note {
	return api.Note{Id: n.ID, LeadId: n.LeadID, Content: n.Content, CreatedAt: n.CreatedAt}
}

func toActivity(a domain.Activity) api.Activity {
	return api.Activity{
		Id:          a.ID,
		LeadId:      a.LeadID,
		Type:        api.ActivityType(a.Type),
		Description: a.Description,
		CreatedAt:   a.CreatedAt,
	}
}

func toStats(st domain.DashboardStats) api.DashboardStats {
	out := api.DashboardStats{
		TotalLeads:     st.TotalLeads,
		NewLeads:       st.NewLeads,
		ConvertedLeads: st.ConvertedLeads,
		ConversionRate: st.ConversionRate,
		LeadsByStatus:  make([]api.StatusCount, 0, len(st.LeadsByStatus)),
		RecentActivity: make([]api.Activity, 0, len(st.RecentActivity)),
	}
	for _, c := range st.LeadsByStatus {
		out.LeadsByStatus = append(out.LeadsByStatus, api.StatusCount{Status: string(c.Status), Count: c.Count})
	}
	for _, a := range st.RecentActivity {
		out.RecentActivity = append(out.RecentActivity, toActivity(a))
	}
	return out
}

func toUser(u domain.User) api.User {
	return api.User{Id: u.ID, Username: u.Username, Name: u.Name, CreatedAt: u.CreatedAt}
}
