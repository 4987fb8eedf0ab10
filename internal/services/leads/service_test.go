package leads

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/oapi-codegen/nullable"

	"leadbook/internal/adapters/sqlite"
	"leadbook/internal/adapters/sqlite/sqlitetest"
	"leadbook/internal/domain"
	"leadbook/internal/services/activity"
)

type fixture struct {
	db    *sqlite.DB
	trail *activity.Logger
	svc   *Service
	now   time.Time
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	f := &fixture{db: sqlitetest.New(t), now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	log := sqlitetest.QuietLogger()
	clock := func() time.Time { return f.now }
	f.trail = activity.New(f.db, activity.WithClock(clock), activity.WithLogger(log))
	opts = append([]Option{WithClock(clock), WithLogger(log)}, opts...)
	f.svc = New(f.db, f.trail, opts...)
	return f
}

func (f *fixture) tick(d time.Duration) { f.now = f.now.Add(d) }

func (f *fixture) create(t *testing.T, in domain.LeadInput) domain.Lead {
	t.Helper()
	l, err := f.svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("create %q: %v", in.Name, err)
	}
	return l
}

func (f *fixture) activities(t *testing.T, leadID int64) []domain.Activity {
	t.Helper()
	acts, err := f.trail.List(context.Background(), leadID)
	if err != nil {
		t.Fatal(err)
	}
	return acts
}

func ada() domain.LeadInput {
	return domain.LeadInput{Name: "Ada Lovelace", Email: "ada@example.com", Source: "Website"}
}

func statusPtr(s domain.Status) *domain.Status { return &s }

func TestCreateDefaultsAndLogsOnce(t *testing.T) {
	f := newFixture(t)
	seen := map[int64]bool{}
	for i := 0; i < 3; i++ {
		l := f.create(t, ada())
		if seen[l.ID] {
			t.Fatalf("id %d reused", l.ID)
		}
		seen[l.ID] = true
		if l.Status != domain.StatusNew {
			t.Fatalf("status: got %q, want New", l.Status)
		}
		if !l.CreatedAt.Equal(f.now) || !l.UpdatedAt.Equal(f.now) {
			t.Fatalf("timestamps: %v %v", l.CreatedAt, l.UpdatedAt)
		}
		acts := f.activities(t, l.ID)
		if len(acts) != 1 || acts[0].Type != domain.ActivityCreated {
			t.Fatalf("activities: %+v", acts)
		}
		if acts[0].Description != "Lead created: Ada Lovelace" {
			t.Fatalf("description: %q", acts[0].Description)
		}
	}
}

func TestCreateKeepsExplicitStatus(t *testing.T) {
	f := newFixture(t)
	in := ada()
	in.Status = "Negotiating"
	if l := f.create(t, in); l.Status != "Negotiating" {
		t.Fatalf("status: got %q", l.Status)
	}
}

func TestCreateRejectsInvalidInputWithoutWriting(t *testing.T) {
	f := newFixture(t)
	in := ada()
	in.Email = "nope"
	_, err := f.svc.Create(context.Background(), in)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Field != "email" {
		t.Fatalf("got %v, want email validation error", err)
	}
	if n, _ := f.db.CountLeads(context.Background()); n != 0 {
		t.Fatalf("lead count: got %d, want 0", n)
	}
}

func TestUpdateStatusChangeScenario(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	l := f.create(t, ada())

	f.tick(time.Minute)
	got, err := f.svc.Update(ctx, l.ID, domain.LeadPatch{Status: statusPtr(domain.StatusContacted)})
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != domain.StatusContacted || !got.UpdatedAt.Equal(f.now) {
		t.Fatalf("updated lead: %+v", got)
	}

	f.tick(time.Minute)
	if _, err := f.svc.Update(ctx, l.ID, domain.LeadPatch{Status: statusPtr(domain.StatusContacted)}); err != nil {
		t.Fatal(err)
	}

	acts := f.activities(t, l.ID)
	if len(acts) != 2 {
		t.Fatalf("activities: got %d, want 2: %+v", len(acts), acts)
	}
	sc := acts[0]
	if sc.Type != domain.ActivityStatusChange {
		t.Fatalf("newest activity: got %q, want status_change", sc.Type)
	}
	if !strings.Contains(sc.Description, "New") || !strings.Contains(sc.Description, "Contacted") {
		t.Fatalf("description should name both statuses: %q", sc.Description)
	}
}

func TestUpdateFollowUpFiresEveryTime(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	due := time.Date(2025, 4, 15, 9, 30, 0, 0, time.UTC)
	in := ada()
	in.FollowUpDate = &due
	l := f.create(t, in)

	for i := 0; i < 2; i++ {
		patch := domain.LeadPatch{FollowUpDate: nullable.NewNullableWithValue(due)}
		if _, err := f.svc.Update(ctx, l.ID, patch); err != nil {
			t.Fatal(err)
		}
	}
	acts := f.activities(t, l.ID)
	var n int
	for _, a := range acts {
		if a.Type == domain.ActivityFollowUpSet {
			n++
			if a.Description != "Follow-up set for 2025-04-15" {
				t.Fatalf("description: %q", a.Description)
			}
		}
	}
	if n != 2 {
		t.Fatalf("follow_up_set count: got %d, want 2", n)
	}
}

func TestUpdatePresenceSemantics(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	due := time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)
	in := ada()
	in.FollowUpDate = &due
	note := "prefers email"
	in.Notes = &note
	l := f.create(t, in)

	name := "Ada King"
	got, err := f.svc.Update(ctx, l.ID, domain.LeadPatch{Name: &name, FollowUpDate: nullable.NewNullNullable[time.Time]()})
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != name || got.Email != l.Email || got.Source != l.Source {
		t.Fatalf("only name should change: %+v", got)
	}
	if got.FollowUpDate != nil {
		t.Fatalf("explicit null should clear follow-up: %v", got.FollowUpDate)
	}
	if got.Notes == nil || *got.Notes != note {
		t.Fatalf("absent notes should be kept: %v", got.Notes)
	}
	if acts := f.activities(t, l.ID); len(acts) != 1 {
		t.Fatalf("name change and clearing must not log: %+v", acts)
	}
}

func TestUpdatedAtNeverMovesBackwards(t *testing.T) {
	f := newFixture(t)
	l := f.create(t, ada())
	f.tick(-time.Hour)
	got, err := f.svc.Update(context.Background(), l.ID, domain.LeadPatch{Status: statusPtr(domain.StatusLost)})
	if err != nil {
		t.Fatal(err)
	}
	if got.UpdatedAt.Before(l.UpdatedAt) {
		t.Fatalf("updatedAt went backwards: %v < %v", got.UpdatedAt, l.UpdatedAt)
	}
}

func TestUpdateErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.Update(ctx, 404, domain.LeadPatch{Status: statusPtr(domain.StatusLost)})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("missing lead: got %v, want ErrNotFound", err)
	}

	l := f.create(t, ada())
	blank := "  "
	_, err = f.svc.Update(ctx, l.ID, domain.LeadPatch{Name: &blank, Status: statusPtr(domain.StatusLost)})
	if !domain.IsValidation(err) {
		t.Fatalf("blank name: got %v, want validation error", err)
	}
	stored, _ := f.db.GetLead(ctx, l.ID)
	if stored.Status != domain.StatusNew || stored.Name != l.Name {
		t.Fatalf("rejected patch must not write: %+v", stored)
	}
}

func TestDeleteIsIdempotentAndKeepsHistory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	l := f.create(t, ada())
	if _, err := f.db.InsertNote(ctx, l.ID, "first call", f.now); err != nil {
		t.Fatal(err)
	}

	if err := f.svc.Delete(ctx, l.ID); err != nil {
		t.Fatal(err)
	}
	if err := f.svc.Delete(ctx, l.ID); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if _, err := f.svc.Get(ctx, l.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("get after delete: got %v", err)
	}

	// No cascade: notes and activities outlive the lead.
	notes, err := f.db.ListNotes(ctx, l.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(notes) != 1 {
		t.Fatalf("orphaned notes: got %d, want 1", len(notes))
	}
	if acts := f.activities(t, l.ID); len(acts) != 1 {
		t.Fatalf("orphaned activities: got %d, want 1", len(acts))
	}
}

func TestListNewestFirst(t *testing.T) {
	f := newFixture(t)
	first := f.create(t, ada())
	f.tick(time.Second)
	second := f.create(t, ada())
	// Same timestamp: ties break by id.
	third := f.create(t, ada())

	got, err := f.svc.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	want := []int64{third.ID, second.ID, first.ID}
	if len(got) != len(want) {
		t.Fatalf("len: got %d, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: got id %d, want %d", i, got[i].ID, id)
		}
	}
}

func TestActivityFailureRollsBackMutation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	if _, err := f.db.X.ExecContext(ctx, `DROP TABLE activities`); err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.Create(ctx, ada()); err == nil {
		t.Fatal("create should fail when the activity cannot be written")
	}
	if n, _ := f.db.CountLeads(ctx); n != 0 {
		t.Fatalf("lead survived a failed activity append: count %d", n)
	}
}

type mapCache struct {
	leads       map[int64]domain.Lead
	invalidated []int64
}

func (c *mapCache) GetLead(_ context.Context, id int64) (domain.Lead, bool, error) {
	l, ok := c.leads[id]
	return l, ok, nil
}

func (c *mapCache) SetLead(_ context.Context, l domain.Lead) error {
	c.leads[l.ID] = l
	return nil
}

func (c *mapCache) InvalidateLead(_ context.Context, id int64) error {
	delete(c.leads, id)
	c.invalidated = append(c.invalidated, id)
	return nil
}

func TestGetReadsThroughCache(t *testing.T) {
	cache := &mapCache{leads: map[int64]domain.Lead{}}
	f := newFixture(t, WithCache(cache))
	ctx := context.Background()
	l := f.create(t, ada())

	if _, err := f.svc.Get(ctx, l.ID); err != nil {
		t.Fatal(err)
	}
	if _, ok := cache.leads[l.ID]; !ok {
		t.Fatal("get should populate the cache")
	}
	if _, err := f.svc.Update(ctx, l.ID, domain.LeadPatch{Status: statusPtr(domain.StatusQualified)}); err != nil {
		t.Fatal(err)
	}
	if _, ok := cache.leads[l.ID]; ok {
		t.Fatal("update should invalidate the cached lead")
	}
	got, err := f.svc.Get(ctx, l.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != domain.StatusQualified {
		t.Fatalf("stale read after update: %q", got.Status)
	}
	if err := f.svc.Delete(ctx, l.ID); err != nil {
		t.Fatal(err)
	}
	if _, ok := cache.leads[l.ID]; ok {
		t.Fatal("delete should invalidate the cached lead")
	}
}
