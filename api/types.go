package api

import (
	"context"

	"github.com/google/uuid"

	"github.com/rpupo63/portfolio-site-backend/models"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler    authHandler
	projectHandler projectHandler
	inquiryHandler inquiryHandler
	profileHandler profileHandler
	healthHandler  healthHandler
	staticHandler  staticHandler
}

// Dependencies are the collaborators the HTTP layer is built from. Every field
// except DB is required.
type Dependencies struct {
	Projects  ProjectStore
	Inquiries InquiryStore
	Profile   ProfileStore
	Auth      Authenticator
	Notifier  Notifier
	DB        Pinger
}

type ProjectStore interface {
	FindAll(ctx context.Context) ([]*models.Project, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	Add(ctx context.Context, project *models.Project) error
	// Update merges patch into the stored project atomically and returns the result.
	Update(ctx context.Context, id uuid.UUID, patch models.ProjectPatch) (*models.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type InquiryStore interface {
	FindAll(ctx context.Context) ([]*models.Inquiry, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Inquiry, error)
	Add(ctx context.Context, inquiry *models.Inquiry) error
	Update(ctx context.Context, id uuid.UUID, patch models.InquiryPatch) (*models.Inquiry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProfileStore holds the single profile record. FindFirst returns an
// errs.ErrNotFound error until the first Upsert.
type ProfileStore interface {
	FindFirst(ctx context.Context) (*models.Profile, error)
	Upsert(ctx context.Context, patch models.ProfilePatch) (*models.Profile, error)
}

type Authenticator interface {
	Setup(ctx context.Context, username, password string) (*models.Admin, error)
	Login(ctx context.Context, username, password string) (string, error)
	Verify(token string) (string, error)
}

// Notifier must not block the caller.
type Notifier interface {
	Notify(inquiry models.Inquiry)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"title"`
	Details string `json:"details,omitempty" example:"Additional error details"`
	Cause   string `json:"cause,omitempty" example:"Underlying error cause"`
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	Message string `json:"message,omitempty"`
}

type successResponse struct {
	Success bool `json:"success"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type healthResponse struct {
	Status   string  `json:"status"`
	Uptime   float64 `json:"uptime"`
	Database string  `json:"database,omitempty"`
}
