package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"group-trip-planner/internal/api/handlers"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root; handlers stay
// unaware of concrete adapters.
func NewRouter(logger *slog.Logger, planHandler *handlers.PlanHandler, optionsHandler *handlers.OptionsHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/health", handlers.Health(logger))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/plans", func(r chi.Router) {
		r.Post("/", planHandler.Build)
		r.Get("/{eventID}", planHandler.Get)
	})
	r.Get("/options", optionsHandler.List)

	return r
}
