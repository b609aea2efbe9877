package services

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/metrics"
	"github.com/rpupo63/portfolio-site-backend/models"
)

const DefaultBcryptCost = 10

// AdminStore persists admin credentials. FindByUsername must return an error
// matching errs.ErrNotFound when the username is unknown.
type AdminStore interface {
	FindByUsername(ctx context.Context, username string) (*models.Admin, error)
	Add(ctx context.Context, admin *models.Admin) error
	Replace(ctx context.Context, admin *models.Admin) error
}

// AuthService owns credential setup, login and token verification.
type AuthService struct {
	admins AdminStore
	tokens *TokenService
	cost   int
}

func NewAuthService(admins AdminStore, tokens *TokenService, cost int) *AuthService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &AuthService{
		admins: admins,
		tokens: tokens,
		cost:   cost,
	}
}

// Setup creates a credential for a new username. It does not limit how many
// different usernames may be set up; callers gate the operation.
func (s *AuthService) Setup(ctx context.Context, username, password string) (*models.Admin, error) {
	admin, err := s.newAdmin(username, password)
	if err != nil {
		return nil, err
	}

	existing, err := s.admins.FindByUsername(ctx, admin.Username)
	if err == nil && existing != nil {
		return nil, errs.NewAlreadyExists("admin")
	}
	if err != nil && !errs.IsNotFound(err) {
		return nil, fmt.Errorf("check admin existence: %w", err)
	}

	if err := s.admins.Add(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// Login returns a signed token. Unknown usernames and wrong passwords fail with
// the same errs.ErrInvalidCredentials error.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	admin, err := s.admins.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errs.IsNotFound(err) {
			metrics.IncrementLoginAttempt("failed")
			return "", errs.NewInvalidCredentialsError()
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		metrics.IncrementLoginAttempt("failed")
		return "", errs.NewInvalidCredentialsError()
	}

	token, err := s.tokens.Issue(admin.ID.String())
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	metrics.IncrementLoginAttempt("success")
	return token, nil
}

// Verify checks a bearer token and returns the admin id it was issued for.
func (s *AuthService) Verify(token string) (string, error) {
	if token == "" {
		return "", errs.NewMissingTokenError()
	}

	adminID, err := s.tokens.Parse(token)
	if err != nil {
		return "", errs.NewInvalidTokenError(err)
	}
	return adminID, nil
}

// Reset removes every stored credential and leaves username as the only admin.
func (s *AuthService) Reset(ctx context.Context, username, password string) (*models.Admin, error) {
	admin, err := s.newAdmin(username, password)
	if err != nil {
		return nil, err
	}

	if err := s.admins.Replace(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *AuthService) newAdmin(username, password string) (*models.Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errs.NewMissingRequiredFieldError("username")
	}
	if password == "" {
		return nil, errs.NewMissingRequiredFieldError("password")
	}
	if len(password) > 72 {
		return nil, errs.NewInvalidFieldError("password", "must be at most 72 bytes")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return &models.Admin{
		Username:     username,
		PasswordHash: string(hash),
	}, nil
}
