package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MasonSBrown/NeXtSRGAN/internal/config"
)

// NewRouter creates a new HTTP router with all API endpoints.
func NewRouter(configPath string, configHasher *config.ConfigHasher) http.Handler {
	r := chi.NewRouter()

	// Apply middleware
	r.Use(Recovery)
	r.Use(Logger)
	r.Use(CORS)
	r.Use(BodyContentType)

	// Create handler
	h := NewHandler(configPath, configHasher)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Configuration endpoints
		r.Get("/config", h.GetConfig)
		r.Get("/config/yaml", h.GetConfigYAML)
		r.Post("/validate", h.ValidateDocument)

		// Schedule endpoint
		r.Get("/schedule", h.GetSchedule)

		// Artifacts endpoint
		r.Get("/artifacts", h.GetArtifacts)

		// Status endpoint
		r.Get("/status", h.GetStatus)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
