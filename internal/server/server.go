// Package server exposes the platform over HTTP: session auth, admin
// user management, the skill catalog, and freshly generated question
// banks.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/ism7788/math-practice/internal/auth"
	"github.com/ism7788/math-practice/internal/itemgen"
	"github.com/ism7788/math-practice/internal/store"
)

// Server wires handlers to their dependencies.
type Server struct {
	cfg    Config
	log    *zap.Logger
	store  *store.Store
	tokens *auth.Tokens
	banks  *itemgen.Registry
}

// New assembles a Server.
func New(cfg Config, log *zap.Logger, st *store.Store, tokens *auth.Tokens, banks *itemgen.Registry) *Server {
	return &Server{cfg: cfg, log: log, store: st, tokens: tokens, banks: banks}
}

// Handler builds the full route tree with CORS and request logging.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	api.HandleFunc("/auth/sign-in", s.handleSignIn).Methods(http.MethodPost)
	api.HandleFunc("/auth/sign-out", s.handleSignOut).Methods(http.MethodPost)
	api.HandleFunc("/auth/me", s.handleMe).Methods(http.MethodGet)

	api.HandleFunc("/admin/create-user", s.handleCreateUser).Methods(http.MethodPost)
	api.HandleFunc("/admin/reset-password", s.handleResetPassword).Methods(http.MethodPost)

	api.HandleFunc("/skills", s.handleSkills).Methods(http.MethodGet)
	api.HandleFunc("/skills/{id}/bank", s.handleBank).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins:   s.cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowCredentials: true,
	})
	return s.logRequests(c.Handler(r))
}

// ListenAndServe runs the server until it fails.
func (s *Server) ListenAndServe() error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.log.Info("listening", zap.String("addr", s.cfg.Addr))
	return srv.ListenAndServe()
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(sw, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", sw.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func (s *Server) respond(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error("encode response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, msg string) {
	s.respond(w, status, map[string]string{"error": msg})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.respond(w, http.StatusOK, map[string]string{"status": "ok"})
}
