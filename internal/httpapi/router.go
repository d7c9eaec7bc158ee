// Package httpapi exposes the list and auth services over a JSON HTTP API.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/satno7/superlists/internal/auth"
	"github.com/satno7/superlists/internal/middleware"
	"github.com/satno7/superlists/internal/service"
)

// Server bundles the handlers with their collaborators.
type Server struct {
	lists *service.ListService
	auth  *service.AuthService
	jwt   *auth.JWTManager
}

// NewServer creates a Server.
func NewServer(lists *service.ListService, authSvc *service.AuthService, jwt *auth.JWTManager) *Server {
	return &Server{lists: lists, auth: authSvc, jwt: jwt}
}

// Router builds the chi router with middleware and all routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Metrics())
	r.Use(middleware.OptionalAuth(s.jwt))
	r.Use(middleware.Logging())

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/lists", s.handleCreateList)
		r.Get("/lists/{listID}", s.handleGetList)
		r.Delete("/lists/{listID}", s.handleDeleteList)
		r.Post("/lists/{listID}/items", s.handleAddItem)
		r.Post("/lists/{listID}/share", s.handleShare)

		r.With(middleware.RequireAuth(s.jwt)).Get("/my-lists", s.handleMyLists)

		r.Post("/auth/email", s.handleSendLoginEmail)
		r.Get("/auth/login", s.handleLogin)
	})

	return r
}
