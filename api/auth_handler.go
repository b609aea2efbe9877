package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/errs"
)

type authHandler struct {
	responder    Responder
	logger       zerolog.Logger
	auth         Authenticator
	setupEnabled bool
}

func newAuthHandler(auth Authenticator, setupEnabled bool) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		auth:         auth,
		setupEnabled: setupEnabled,
	}
}

// setup creates the admin credential
// @Summary Create admin
// @Tags Auth
// @Accept json
// @Produce plain
// @Param credentials body credentialsRequest true "Admin credentials"
// @Success 200 {string} string "Admin created successfully"
// @Failure 400 {string} string "Admin already exists"
// @Failure 403 {object} ErrorResponse "Setup disabled"
// @Router /api/auth/setup [post]
func (h authHandler) setup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.setupEnabled {
			h.responder.WriteError(w, errs.NewForbiddenError("admin setup is disabled"))
			return
		}

		var req credentialsRequest
		if err := decodeJSON(w, r, "credentials", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		admin, err := h.auth.Setup(r.Context(), req.Username, req.Password)
		if err != nil {
			if errs.IsConflict(err) {
				h.responder.WriteText(w, http.StatusBadRequest, "Admin already exists")
				return
			}
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Str("username", admin.Username).Msg("Admin created")
		h.responder.WriteText(w, http.StatusOK, "Admin created successfully")
	}
}

// login exchanges credentials for a bearer token
// @Summary Admin login
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body credentialsRequest true "Admin credentials"
// @Success 200 {object} loginResponse
// @Failure 400 {object} loginResponse "Invalid credentials"
// @Router /api/auth/login [post]
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := decodeJSON(w, r, "credentials", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		token, err := h.auth.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			if errs.IsInvalidCredentialsError(err) {
				h.responder.WriteJSONStatus(w, http.StatusBadRequest, loginResponse{
					Success: false,
					Message: "Invalid credentials",
				})
				return
			}
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, loginResponse{Success: true, Token: token})
	}
}
