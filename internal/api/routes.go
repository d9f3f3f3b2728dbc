package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// SetupRoutes configures all API routes.
func SetupRoutes(h *Handlers) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)

	// CORS - allow credentials for the site access cookie
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://www.theestifanos.com", "https://theestifanos.com", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check (no auth required)
	r.Get("/health", h.HealthCheck)

	// Front-door login (no auth required)
	r.Post("/auth/site-login", h.SiteLogin)

	r.Route("/api", func(r chi.Router) {
		// Guest-facing RSVP endpoints sit behind the site access cookie.
		r.Group(func(r chi.Router) {
			r.Use(h.SiteGate)
			r.Post("/rsvp/search", h.SearchParty)
			r.Post("/rsvp/submit", h.SubmitRSVP)
		})

		// Operator endpoints require the admin token.
		r.Group(func(r chi.Router) {
			r.Use(h.AdminGate)
			r.Get("/campaigns", h.ListCampaigns)
			r.Post("/notify", h.DispatchNotification)
		})
	})

	return r
}
