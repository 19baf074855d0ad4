// Package server exposes the profile facade as a JSON API.
//
// Every response body is either {"data": ...} or
// {"error": {"code": ..., "message": ...}}. Error codes map to HTTP status:
//
//	INVALID_INPUT  400
//	NOT_FOUND      404
//	RATE_LIMITED   429
//	NETWORK_ERROR  502
//	TIMEOUT        504
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	apperrors "github.com/matzehuels/ghinsight/pkg/errors"
	"github.com/matzehuels/ghinsight/pkg/profile"
)

const shutdownTimeout = 5 * time.Second

// Server routes API requests to a profile.Service.
type Server struct {
	svc    *profile.Service
	logger *log.Logger
	router chi.Router
}

// New creates a server backed by svc. A nil logger falls back to
// log.Default().
func New(svc *profile.Service, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{svc: svc, logger: logger}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/search", s.handleSearch)
		r.Route("/users/{login}", func(r chi.Router) {
			r.Get("/", s.handleUser)
			r.Get("/repos", s.handleRepos)
			r.Get("/events", s.handleEvents)
			r.Get("/languages", s.handleLanguages)
			r.Get("/analytics", s.handleAnalytics)
			r.Get("/profile", s.handleProfile)
		})
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleUser(w http.ResponseWriter, r *http.Request) {
	writeResult(w, s.svc.GetUser(r.Context(), chi.URLParam(r, "login")))
}

func (s *Server) handleRepos(w http.ResponseWriter, r *http.Request) {
	writeResult(w, s.svc.GetRepos(r.Context(), chi.URLParam(r, "login")))
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	pageSize := 0
	if v := r.URL.Query().Get("per_page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			writeError(w, http.StatusBadRequest, apperrors.ErrCodeInvalidInput, "per_page must be between 1 and 100")
			return
		}
		pageSize = n
	}
	writeResult(w, s.svc.GetUserEvents(r.Context(), chi.URLParam(r, "login"), pageSize))
}

func (s *Server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	writeResult(w, s.svc.GetLanguageBreakdown(r.Context(), chi.URLParam(r, "login")))
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	writeResult(w, s.svc.LoadAnalytics(r.Context(), chi.URLParam(r, "login")))
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	writeResult(w, s.svc.LoadProfile(r.Context(), chi.URLParam(r, "login")))
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	writeResult(w, s.svc.SearchUsers(r.Context(), r.URL.Query().Get("q")))
}

// =============================================================================
// Responses
// =============================================================================

type dataResponse struct {
	Data any `json:"data"`
}

type errorBody struct {
	Code    apperrors.Code `json:"code"`
	Message string         `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

// StatusFor maps an error code to its HTTP status.
func StatusFor(code apperrors.Code) int {
	switch code {
	case apperrors.ErrCodeInvalidInput:
		return http.StatusBadRequest
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case apperrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case apperrors.ErrCodeNetwork:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeResult[T any](w http.ResponseWriter, res profile.Result[T]) {
	if !res.OK() {
		writeError(w, StatusFor(res.Code()), res.Code(), res.Message())
		return
	}
	writeJSON(w, http.StatusOK, dataResponse{Data: res.Data})
}

func writeError(w http.ResponseWriter, status int, code apperrors.Code, message string) {
	writeJSON(w, status, errorResponse{Error: errorBody{Code: code, Message: message}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
