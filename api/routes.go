package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupAPIRoutes mounts the JSON API. Reads of public content are open, every
// mutation of site content requires an admin token.
func setupAPIRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Route("/api", func(r chi.Router) {
		r.NotFound(handlers.staticHandler.apiNotFound())

		r.Post("/auth/setup", handlers.authHandler.setup())
		r.Post("/auth/login", handlers.authHandler.login())

		r.Get("/health", handlers.healthHandler.health())

		// Public routes
		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/projects/{id}", handlers.projectHandler.getProject())
		r.Post("/inquiries", handlers.inquiryHandler.createInquiry())
		r.Get("/profile", handlers.profileHandler.getProfile())

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.authenticate)

			r.Post("/projects", handlers.projectHandler.createProject())
			r.Put("/projects/{id}", handlers.projectHandler.updateProject())
			r.Delete("/projects/{id}", handlers.projectHandler.deleteProject())

			r.Get("/inquiries", handlers.inquiryHandler.getAllInquiries())
			r.Patch("/inquiries/{id}", handlers.inquiryHandler.updateInquiry())
			r.Delete("/inquiries/{id}", handlers.inquiryHandler.deleteInquiry())

			r.Put("/profile", handlers.profileHandler.upsertProfile())
		})
	})
}

// setupSupportRoutes mounts the metrics endpoint and the frontend catch-all.
func setupSupportRoutes(r chi.Router, handlers *routeHandlers) {
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/*", handlers.staticHandler.serveSPA())
}
