package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
)

type profileHandler struct {
	responder Responder
	logger    zerolog.Logger
	profile   ProfileStore
}

func newProfileHandler(profile ProfileStore) profileHandler {
	logger := log.With().Str("handlerName", "profileHandler").Logger()

	return profileHandler{
		responder: NewResponder(logger),
		logger:    logger,
		profile:   profile,
	}
}

// getProfile returns the stored profile, or the built-in default when none was saved
// @Summary Get profile
// @Tags Profile
// @Produce json
// @Success 200 {object} models.Profile
// @Failure 500 {object} ErrorResponse
// @Router /api/profile [get]
func (h profileHandler) getProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := h.profile.FindFirst(r.Context())
		if err != nil {
			if errs.IsNotFound(err) {
				h.responder.WriteJSON(w, models.DefaultProfile())
				return
			}
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, profile)
	}
}

// upsertProfile merges the supplied fields into the profile, creating it on first save
// @Summary Update profile
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body models.ProfilePatch true "Fields to change"
// @Success 200 {object} models.Profile
// @Failure 400 {object} ErrorResponse
// @Router /api/profile [put]
func (h profileHandler) upsertProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch models.ProfilePatch
		if err := decodeJSON(w, r, "profile", &patch); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		profile, err := h.profile.Upsert(r.Context(), patch)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, profile)
	}
}
