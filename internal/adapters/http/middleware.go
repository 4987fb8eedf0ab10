package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	api "leadbook/internal/api"
	"leadbook/internal/auth"
)

// requireBearer rejects operations that declare the bearerAuth scheme when
// no principal was attached. It runs before the request body is decoded.
func requireBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Context().Value(api.BearerAuthScopes) != nil {
			if _, ok := auth.FromContext(r.Context()); !ok {
				writeError(w, http.StatusUnauthorized, api.Error{Message: msgUnauthorized})
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func accessLog(log logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.WithFields(logrus.Fields{
				"request_id": middleware.GetReqID(r.Context()),
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     ww.Status(),
				"bytes":      ww.BytesWritten(),
				"duration":   time.Since(start),
			}).Info("request")
		})
	}
}

// requestError handles malformed path parameters and bodies.
func (s *Server) requestError(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, http.StatusBadRequest, api.Error{Message: err.Error()})
}

// responseError handles errors the handlers did not map to a typed response.
// The cause is logged and never returned to the caller.
func (s *Server) responseError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.WithError(err).WithFields(logrus.Fields{
		"request_id": middleware.GetReqID(r.Context()),
		"method":     r.Method,
		"path":       r.URL.Path,
	}).Error("request failed")
	writeError(w, http.StatusInternalServerError, api.Error{Message: msgInternal})
}

func writeError(w http.ResponseWriter, code int, body api.Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
