package api

import (
	"time"

	"github.com/rpupo63/portfolio-site-backend/config"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(deps Dependencies, c map[string]string, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		authHandler:    newAuthHandler(deps.Auth, config.GetBool(c, "ALLOW_ADMIN_SETUP", true)),
		projectHandler: newProjectHandler(deps.Projects),
		inquiryHandler: newInquiryHandler(deps.Inquiries, deps.Notifier),
		profileHandler: newProfileHandler(deps.Profile),
		healthHandler:  newHealthHandler(deps.DB, startupTime),
		staticHandler:  newStaticHandler(config.GetString(c, "STATIC_DIR", "dist")),
	}
}
