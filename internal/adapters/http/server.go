package httpadapter

import (
	"context"
	"errors"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	api "leadbook/internal/api"
	"leadbook/internal/auth"
	"leadbook/internal/domain"
	"leadbook/internal/ports"
	"leadbook/internal/services/accounts"
)

const (
	msgLeadNotFound     = "Lead not found"
	msgUnauthorized     = "Unauthorized"
	msgBadCredentials   = "Invalid username or password"
	msgInternal         = "Internal server error"
	healthStatusHealthy = "ok"
)

// Server implements the generated StrictServerInterface.
type Server struct {
	leads      ports.Leads
	notes      ports.Notes
	activities ports.Activities
	stats      ports.Stats
	accounts   ports.Accounts
	tokens     *auth.Tokens
	log        logrus.FieldLogger
}

func New(leads ports.Leads, notes ports.Notes, activities ports.Activities, stats ports.Stats, accts ports.Accounts, tokens *auth.Tokens, log logrus.FieldLogger) *Server {
	return &Server{
		leads:      leads,
		notes:      notes,
		activities: activities,
		stats:      stats,
		accounts:   accts,
		tokens:     tokens,
		log:        log,
	}
}

// Routes returns a chi.Router mounting the generated handlers.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(accessLog(s.log))
	r.Use(middleware.Recoverer)
	r.Use(auth.Middleware(s.tokens))

	handler := api.NewStrictHandlerWithOptions(s, nil, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  s.requestError,
		ResponseErrorHandlerFunc: s.responseError,
	})
	api.HandlerWithOptions(handler, api.ChiServerOptions{
		BaseRouter:       r,
		Middlewares:      []api.MiddlewareFunc{requireBearer},
		ErrorHandlerFunc: s.requestError,
	})
	return r
}

// Strict handler methods

func (s *Server) GetHealthz(ctx context.Context, _ api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
	ok := healthStatusHealthy
	return api.GetHealthz200JSONResponse{Status: &ok}, nil
}

func (s *Server) Register(ctx context.Context, req api.RegisterRequestObject) (api.RegisterResponseObject, error) {
	u, err := s.accounts.Register(ctx, req.Body.Username, req.Body.Password, req.Body.Name)
	if ve := validationError(err); ve != nil {
		return api.Register400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(*ve)}, nil
	}
	if err != nil {
		return nil, err
	}
	return api.Register201JSONResponse(toUser(u)), nil
}

func (s *Server) Login(ctx context.Context, req api.LoginRequestObject) (api.LoginResponseObject, error) {
	u, err := s.accounts.Authenticate(ctx, req.Body.Username, req.Body.Password)
	if errors.Is(err, accounts.ErrInvalidCredentials) {
		return api.Login401JSONResponse{UnauthorizedJSONResponse: api.UnauthorizedJSONResponse{Message: msgBadCredentials}}, nil
	}
	if err != nil {
		return nil, err
	}
	token, exp, err := s.tokens.Issue(u.ID, u.Username, u.Name)
	if err != nil {
		return nil, err
	}
	return api.Login200JSONResponse{Token: token, ExpiresAt: exp, User: toUser(u)}, nil
}

// Logout has nothing to revoke; tokens expire on their own.
func (s *Server) Logout(ctx context.Context, _ api.LogoutRequestObject) (api.LogoutResponseObject, error) {
	return api.Logout200Response{}, nil
}

func (s *Server) GetCurrentUser(ctx context.Context, _ api.GetCurrentUserRequestObject) (api.GetCurrentUserResponseObject, error) {
	p, ok := auth.FromContext(ctx)
	if !ok {
		return api.GetCurrentUser401JSONResponse{UnauthorizedJSONResponse: unauthorized()}, nil
	}
	u, err := s.accounts.Get(ctx, p.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		// Valid token for a user that no longer exists.
		return api.GetCurrentUser401JSONResponse{UnauthorizedJSONResponse: unauthorized()}, nil
	}
	if err != nil {
		return nil, err
	}
	return api.GetCurrentUser200JSONResponse(toUser(u)), nil
}

func (s *Server) GetDashboardStats(ctx context.Context, _ api.GetDashboardStatsRequestObject) (api.GetDashboardStatsResponseObject, error) {
	st, err := s.stats.Get(ctx)
	if err != nil {
		return nil, err
	}
	return api.GetDashboardStats200JSONResponse(toStats(st)), nil
}

func (s *Server) ListLeads(ctx context.Context, _ api.ListLeadsRequestObject) (api.ListLeadsResponseObject, error) {
	leads, err := s.leads.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(api.ListLeads200JSONResponse, 0, len(leads))
	for _, l := range leads {
		out = append(out, toLead(l))
	}
	return out, nil
}

func (s *Server) CreateLead(ctx context.Context, req api.CreateLeadRequestObject) (api.CreateLeadResponseObject, error) {
	lead, err := s.leads.Create(ctx, fromCreateLead(*req.Body))
	if ve := validationError(err); ve != nil {
		return api.CreateLead400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(*ve)}, nil
	}
	if err != nil {
		return nil, err
	}
	return api.CreateLead201JSONResponse(toLead(lead)), nil
}

func (s *Server) GetLead(ctx context.Context, req api.GetLeadRequestObject) (api.GetLeadResponseObject, error) {
	lead, err := s.leads.Get(ctx, req.Id)
	if errors.Is(err, domain.ErrNotFound) {
		return api.GetLead404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse{Message: msgLeadNotFound}}, nil
	}
	if err != nil {
		return nil, err
	}
	return api.GetLead200JSONResponse(toLead(lead)), nil
}

func (s *Server) UpdateLead(ctx context.Context, req api.UpdateLeadRequestObject) (api.UpdateLeadResponseObject, error) {
	lead, err := s.leads.Update(ctx, req.Id, fromUpdateLead(*req.Body))
	if ve := validationError(err); ve != nil {
		return api.UpdateLead400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(*ve)}, nil
	}
	if errors.Is(err, domain.ErrNotFound) {
		return api.UpdateLead404JSONResponse{NotFoundJSONResponse: api.NotFoundJSONResponse{Message: msgLeadNotFound}}, nil
	}
	if err != nil {
		return nil, err
	}
	return api.UpdateLead200JSONResponse(toLead(lead)), nil
}

// DeleteLead answers 204 whether or not the lead existed.
func (s *Server) DeleteLead(ctx context.Context, req api.DeleteLeadRequestObject) (api.DeleteLeadResponseObject, error) {
	if err := s.leads.Delete(ctx, req.Id); err != nil {
		return nil, err
	}
	return api.DeleteLead204Response{}, nil
}

func (s *Server) ListNotes(ctx context.Context, req api.ListNotesRequestObject) (api.ListNotesResponseObject, error) {
	notes, err := s.notes.List(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	out := make(api.ListNotes200JSONResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, toNote(n))
	}
	return out, nil
}

func (s *Server) CreateNote(ctx context.Context, req api.CreateNoteRequestObject) (api.CreateNoteResponseObject, error) {
	note, err := s.notes.Create(ctx, req.Id, req.Body.Content)
	if ve := validationError(err); ve != nil {
		return api.CreateNote400JSONResponse{BadRequestJSONResponse: api.BadRequestJSONResponse(*ve)}, nil
	}
	if err != nil {
		return nil, err
	}
	return api.CreateNote201JSONResponse(toNote(note)), nil
}

func (s *Server) ListActivities(ctx context.Context, req api.ListActivitiesRequestObject) (api.ListActivitiesResponseObject, error) {
	acts, err := s.activities.List(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	out := make(api.ListActivities200JSONResponse, 0, len(acts))
	for _, a := range acts {
		out = append(out, toActivity(a))
	}
	return out, nil
}

func unauthorized() api.UnauthorizedJSONResponse {
	return api.UnauthorizedJSONResponse{Message: msgUnauthorized}
}

// validationError converts a *domain.ValidationError anywhere in err's chain
// into the wire error body.
func validationError(err error) *api.Error {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		return nil
	}
	out := &api.Error{Message: ve.Message}
	if ve.Field != "" {
		f := ve.Field
		out.Field = &f
	}
	return out
}
