package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"leadbook/internal/adapters/sqlite/sqlitetest"
	api "leadbook/internal/api"
	"leadbook/internal/auth"
	"leadbook/internal/domain"
	"leadbook/internal/ports"
	"leadbook/internal/services/accounts"
	"leadbook/internal/services/activity"
	"leadbook/internal/services/leads"
	"leadbook/internal/services/notes"
	"leadbook/internal/services/stats"
)

var testSecret = []byte("http-test-secret-0123456789")

type testEnv struct {
	ts    *httptest.Server
	token string
}

func newTestEnv(t *testing.T, override ports.Leads) *testEnv {
	t.Helper()
	db := sqlitetest.New(t)
	log := sqlitetest.QuietLogger()
	trail := activity.New(db, activity.WithLogger(log))
	var leadSvc ports.Leads = leads.New(db, trail, leads.WithLogger(log))
	if override != nil {
		leadSvc = override
	}
	acc := accounts.New(db, accounts.WithCost(bcrypt.MinCost), accounts.WithLogger(log))
	tokens, err := auth.NewTokens(testSecret, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	srv := New(leadSvc, notes.New(db, trail, notes.WithLogger(log)), trail, stats.New(db), acc, tokens, log)
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)

	u, err := acc.Register(context.Background(), "tester", "secret1", "Test User")
	if err != nil {
		t.Fatal(err)
	}
	token, _, err := tokens.Issue(u.ID, u.Username, u.Name)
	if err != nil {
		t.Fatal(err)
	}
	return &testEnv{ts: ts, token: token}
}

func (e *testEnv) do(t *testing.T, method, path, body string, authed bool) (int, []byte) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, e.ts.URL+path, rd)
	if err != nil {
		t.Fatal(err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp.StatusCode, b
}

func decode[T any](t *testing.T, b []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		t.Fatalf("decode %s: %v", b, err)
	}
	return v
}

func TestHealthzIsPublic(t *testing.T) {
	e := newTestEnv(t, nil)
	code, body := e.do(t, http.MethodGet, "/healthz", "", false)
	if code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", code)
	}
	if got := decode[map[string]string](t, body)["status"]; got != "ok" {
		t.Fatalf("status field: got %q", got)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	e := newTestEnv(t, nil)
	cases := []struct {
		method, path, body string
	}{
		{http.MethodGet, "/api/leads", ""},
		{http.MethodPost, "/api/leads", "{not json"},
		{http.MethodGet, "/api/leads/1", ""},
		{http.MethodPatch, "/api/leads/1", `{"status":"Lost"}`},
		{http.MethodDelete, "/api/leads/1", ""},
		{http.MethodGet, "/api/leads/1/notes", ""},
		{http.MethodPost, "/api/leads/1/notes", `{"content":"x"}`},
		{http.MethodGet, "/api/leads/1/activities", ""},
		{http.MethodGet, "/api/dashboard/stats", ""},
		{http.MethodGet, "/api/user", ""},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			code, body := e.do(t, tc.method, tc.path, tc.body, false)
			if code != http.StatusUnauthorized {
				t.Fatalf("status: got %d, want 401", code)
			}
			if got := decode[api.Error](t, body).Message; got != "Unauthorized" {
				t.Fatalf("message: got %q", got)
			}
		})
	}
}

func TestInvalidTokenIsUnauthorized(t *testing.T) {
	e := newTestEnv(t, nil)
	e.token = "not-a-jwt"
	if code, _ := e.do(t, http.MethodGet, "/api/leads", "", true); code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want 401", code)
	}
}

func TestRegisterLoginCurrentUser(t *testing.T) {
	e := newTestEnv(t, nil)

	code, body := e.do(t, http.MethodPost, "/api/register", `{"username":"alice","password":"hunter22","name":"Alice"}`, false)
	if code != http.StatusCreated {
		t.Fatalf("register: got %d %s", code, body)
	}
	code, body = e.do(t, http.MethodPost, "/api/register", `{"username":"alice","password":"hunter22","name":"Alice"}`, false)
	if code != http.StatusBadRequest {
		t.Fatalf("duplicate register: got %d, want 400", code)
	}
	if f := decode[api.Error](t, body).Field; f == nil || *f != "username" {
		t.Fatalf("duplicate register field: got %v", f)
	}

	code, _ = e.do(t, http.MethodPost, "/api/login", `{"username":"alice","password":"wrong-pass"}`, false)
	if code != http.StatusUnauthorized {
		t.Fatalf("bad login: got %d, want 401", code)
	}
	code, body = e.do(t, http.MethodPost, "/api/login", `{"username":"alice","password":"hunter22"}`, false)
	if code != http.StatusOK {
		t.Fatalf("login: got %d %s", code, body)
	}
	login := decode[api.LoginResponse](t, body)
	if login.Token == "" || login.User.Username != "alice" {
		t.Fatalf("login response: %+v", login)
	}

	e.token = login.Token
	code, body = e.do(t, http.MethodGet, "/api/user", "", true)
	if code != http.StatusOK {
		t.Fatalf("current user: got %d %s", code, body)
	}
	if u := decode[api.User](t, body); u.Name != "Alice" {
		t.Fatalf("current user name: got %q", u.Name)
	}

	if code, _ = e.do(t, http.MethodPost, "/api/logout", "", false); code != http.StatusOK {
		t.Fatalf("logout: got %d", code)
	}
}

func TestLeadLifecycle(t *testing.T) {
	e := newTestEnv(t, nil)

	code, body := e.do(t, http.MethodPost, "/api/leads", `{"name":"Ada","email":"ada@example.com","source":"Website"}`, true)
	if code != http.StatusCreated {
		t.Fatalf("create: got %d %s", code, body)
	}
	created := decode[map[string]any](t, body)
	if created["status"] != "New" {
		t.Fatalf("default status: got %v", created["status"])
	}
	if v, ok := created["followUpDate"]; !ok || v != nil {
		t.Fatalf("followUpDate: got %v (present %v), want explicit null", v, ok)
	}
	id := int64(created["id"].(float64))
	path := "/api/leads/" + itoa(id)

	code, body = e.do(t, http.MethodPatch, path, `{"status":"Contacted","followUpDate":"2030-05-01T09:00:00Z"}`, true)
	if code != http.StatusOK {
		t.Fatalf("patch: got %d %s", code, body)
	}
	if l := decode[api.Lead](t, body); l.Status != "Contacted" || l.Name != "Ada" {
		t.Fatalf("patched lead: %+v", l)
	}

	code, body = e.do(t, http.MethodPost, path+"/notes", `{"content":"  called, left voicemail  "}`, true)
	if code != http.StatusCreated {
		t.Fatalf("note: got %d %s", code, body)
	}
	if n := decode[api.Note](t, body); n.Content != "called, left voicemail" || n.LeadId != id {
		t.Fatalf("note: %+v", n)
	}

	_, body = e.do(t, http.MethodGet, path+"/activities", "", true)
	acts := decode[[]api.Activity](t, body)
	wantTypes := []api.ActivityType{
		api.ActivityTypeNoteAdded,
		api.ActivityTypeFollowUpSet,
		api.ActivityTypeStatusChange,
		api.ActivityTypeCreated,
	}
	if len(acts) != len(wantTypes) {
		t.Fatalf("activities: got %d, want %d: %+v", len(acts), len(wantTypes), acts)
	}
	seen := map[api.ActivityType]bool{}
	for _, a := range acts {
		seen[a.Type] = true
	}
	for _, typ := range wantTypes {
		if !seen[typ] {
			t.Fatalf("missing activity %q in %+v", typ, acts)
		}
	}

	if code, _ = e.do(t, http.MethodDelete, path, "", true); code != http.StatusNoContent {
		t.Fatalf("delete: got %d, want 204", code)
	}
	code, body = e.do(t, http.MethodGet, path, "", true)
	if code != http.StatusNotFound {
		t.Fatalf("get after delete: got %d, want 404", code)
	}
	if msg := decode[api.Error](t, body).Message; msg != "Lead not found" {
		t.Fatalf("404 message: got %q", msg)
	}
	if code, _ = e.do(t, http.MethodDelete, path, "", true); code != http.StatusNoContent {
		t.Fatalf("second delete: got %d, want 204", code)
	}
	if code, _ = e.do(t, http.MethodPatch, path, `{"status":"Lost"}`, true); code != http.StatusNotFound {
		t.Fatalf("patch after delete: got %d, want 404", code)
	}
}

func TestPatchNullClearsFollowUp(t *testing.T) {
	e := newTestEnv(t, nil)
	_, body := e.do(t, http.MethodPost, "/api/leads",
		`{"name":"Bo","email":"bo@example.com","source":"Referral","followUpDate":"2030-01-02T00:00:00Z","notes":"warm"}`, true)
	created := decode[api.Lead](t, body)
	if !created.FollowUpDate.IsSpecified() || created.FollowUpDate.IsNull() {
		t.Fatalf("create should keep follow-up date: %+v", created)
	}

	code, body := e.do(t, http.MethodPatch, "/api/leads/"+itoa(created.Id), `{"followUpDate":null}`, true)
	if code != http.StatusOK {
		t.Fatalf("patch: got %d %s", code, body)
	}
	l := decode[api.Lead](t, body)
	if !l.FollowUpDate.IsNull() {
		t.Fatalf("followUpDate not cleared: %+v", l.FollowUpDate)
	}
	if notes, err := l.Notes.Get(); err != nil || notes != "warm" {
		t.Fatalf("notes should be untouched: %q %v", notes, err)
	}

	_, body = e.do(t, http.MethodGet, "/api/leads/"+itoa(created.Id)+"/activities", "", true)
	for _, a := range decode[[]api.Activity](t, body) {
		if a.Type == api.ActivityTypeFollowUpSet {
			t.Fatalf("clearing a follow-up must not log follow_up_set: %+v", a)
		}
	}
}

func TestFarFutureFollowUpMatchesActivity(t *testing.T) {
	e := newTestEnv(t, nil)
	code, body := e.do(t, http.MethodPost, "/api/leads",
		`{"name":"Cy","email":"cy@example.com","source":"Web","followUpDate":"3000-01-01T00:00:00Z"}`, true)
	if code != http.StatusCreated {
		t.Fatalf("create: got %d %s", code, body)
	}
	created := decode[api.Lead](t, body)
	want := time.Date(3000, 1, 1, 0, 0, 0, 0, time.UTC)
	if got, err := created.FollowUpDate.Get(); err != nil || !got.Equal(want) {
		t.Fatalf("create followUpDate: got %v %v, want %v", got, err, want)
	}

	path := "/api/leads/" + itoa(created.Id)
	code, body = e.do(t, http.MethodPatch, path, `{"followUpDate":"2500-06-01T00:00:00Z"}`, true)
	if code != http.StatusOK {
		t.Fatalf("patch: got %d %s", code, body)
	}
	want = time.Date(2500, 6, 1, 0, 0, 0, 0, time.UTC)
	if got, err := decode[api.Lead](t, body).FollowUpDate.Get(); err != nil || !got.Equal(want) {
		t.Fatalf("patch followUpDate: got %v %v, want %v", got, err, want)
	}

	_, body = e.do(t, http.MethodGet, path, "", true)
	if got, err := decode[api.Lead](t, body).FollowUpDate.Get(); err != nil || !got.Equal(want) {
		t.Fatalf("stored followUpDate: got %v %v, want %v", got, err, want)
	}
	_, body = e.do(t, http.MethodGet, path+"/activities", "", true)
	found := false
	for _, a := range decode[[]api.Activity](t, body) {
		if a.Type == api.ActivityTypeFollowUpSet && a.Description == "Follow-up set for 2500-06-01" {
			found = true
		}
	}
	if !found {
		t.Fatalf("no follow_up_set activity for 2500-06-01: %s", body)
	}
}

func TestCreateLeadValidation(t *testing.T) {
	e := newTestEnv(t, nil)
	cases := []struct {
		name, body, field string
	}{
		{"blank name", `{"name":"  ","email":"a@example.com","source":"Web"}`, "name"},
		{"missing email", `{"name":"A","source":"Web"}`, "email"},
		{"bad email", `{"name":"A","email":"nope","source":"Web"}`, "email"},
		{"missing source", `{"name":"A","email":"a@example.com"}`, "source"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, body := e.do(t, http.MethodPost, "/api/leads", tc.body, true)
			if code != http.StatusBadRequest {
				t.Fatalf("status: got %d, want 400", code)
			}
			if f := decode[api.Error](t, body).Field; f == nil || *f != tc.field {
				t.Fatalf("field: got %v, want %q", f, tc.field)
			}
		})
	}

	_, body := e.do(t, http.MethodGet, "/api/leads", "", true)
	if n := len(decode[[]api.Lead](t, body)); n != 0 {
		t.Fatalf("rejected creates must not persist: got %d leads", n)
	}
}

func TestMalformedRequestsAreBadRequest(t *testing.T) {
	e := newTestEnv(t, nil)
	if code, _ := e.do(t, http.MethodGet, "/api/leads/abc", "", true); code != http.StatusBadRequest {
		t.Fatalf("bad id: got %d, want 400", code)
	}
	if code, _ := e.do(t, http.MethodPost, "/api/leads", "{not json", true); code != http.StatusBadRequest {
		t.Fatalf("bad json: got %d, want 400", code)
	}
	if code, _ := e.do(t, http.MethodPost, "/api/leads/1/notes", `{"content":"   "}`, true); code != http.StatusBadRequest {
		t.Fatalf("blank note: got %d, want 400", code)
	}
}

func TestDashboardStats(t *testing.T) {
	e := newTestEnv(t, nil)
	_, body := e.do(t, http.MethodGet, "/api/dashboard/stats", "", true)
	empty := decode[map[string]any](t, body)
	if empty["conversionRate"] != float64(0) {
		t.Fatalf("empty conversion rate: %v", empty["conversionRate"])
	}
	if lbs, ok := empty["leadsByStatus"].([]any); !ok || len(lbs) != 0 {
		t.Fatalf("leadsByStatus must be an empty array: %v", empty["leadsByStatus"])
	}
	if ra, ok := empty["recentActivity"].([]any); !ok || len(ra) != 0 {
		t.Fatalf("recentActivity must be an empty array: %v", empty["recentActivity"])
	}

	e.do(t, http.MethodPost, "/api/leads", `{"name":"A","email":"a@example.com","source":"Web","status":"Converted"}`, true)
	e.do(t, http.MethodPost, "/api/leads", `{"name":"B","email":"b@example.com","source":"Web"}`, true)
	_, body = e.do(t, http.MethodGet, "/api/dashboard/stats", "", true)
	st := decode[api.DashboardStats](t, body)
	if st.TotalLeads != 2 || st.NewLeads != 1 || st.ConvertedLeads != 1 || st.ConversionRate != 50 {
		t.Fatalf("stats: %+v", st)
	}
	if len(st.RecentActivity) != 2 {
		t.Fatalf("recent activity: got %d, want 2", len(st.RecentActivity))
	}
}

type failingLeads struct{ ports.Leads }

func (failingLeads) List(context.Context) ([]domain.Lead, error) {
	return nil, errors.New("connection reset by peer")
}

func TestInternalErrorsAreOpaque(t *testing.T) {
	e := newTestEnv(t, failingLeads{})
	code, body := e.do(t, http.MethodGet, "/api/leads", "", true)
	if code != http.StatusInternalServerError {
		t.Fatalf("status: got %d, want 500", code)
	}
	if msg := decode[api.Error](t, body).Message; msg != "Internal server error" {
		t.Fatalf("message leaks cause: %q", msg)
	}
}

func itoa(id int64) string { return strconv.FormatInt(id, 10) }

func TestActivityTypesMatchWireEnum(t *testing.T) {
	for _, tc := range []struct {
		wire api.ActivityType
		kind domain.ActivityType
	}{
		{api.ActivityTypeCreated, domain.ActivityCreated},
		{api.ActivityTypeStatusChange, domain.ActivityStatusChange},
		{api.ActivityTypeFollowUpSet, domain.ActivityFollowUpSet},
		{api.ActivityTypeNoteAdded, domain.ActivityNoteAdded},
	} {
		if string(tc.wire) != string(tc.kind) {
			t.Errorf("wire %q does not match activity %q", tc.wire, tc.kind)
		}
	}
}
