package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/models"
)

type inquiryHandler struct {
	responder Responder
	logger    zerolog.Logger
	inquiries InquiryStore
	notifier  Notifier
}

func newInquiryHandler(inquiries InquiryStore, notifier Notifier) inquiryHandler {
	logger := log.With().Str("handlerName", "inquiryHandler").Logger()

	return inquiryHandler{
		responder: NewResponder(logger),
		logger:    logger,
		inquiries: inquiries,
		notifier:  notifier,
	}
}

// getAllInquiries lists inquiries, newest first
// @Summary Get all inquiries
// @Tags Inquiries
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Inquiry
// @Failure 500 {object} ErrorResponse
// @Router /api/inquiries [get]
func (h inquiryHandler) getAllInquiries() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		inquiries, err := h.inquiries.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, inquiries)
	}
}

// createInquiry stores a contact form submission and notifies the site owner
// @Summary Submit inquiry
// @Tags Inquiries
// @Accept json
// @Produce json
// @Param inquiry body models.InquiryPatch true "Inquiry"
// @Success 200 {object} successResponse
// @Failure 400 {object} ErrorResponse "Invalid inquiry"
// @Router /api/inquiries [post]
func (h inquiryHandler) createInquiry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch models.InquiryPatch
		if err := decodeJSON(w, r, "inquiry", &patch); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		inquiry, err := models.NewInquiry(patch)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.inquiries.Add(r.Context(), inquiry); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.notifier.Notify(*inquiry)

		h.logger.Info().Str("inquiryID", inquiry.ID.String()).Msg("Inquiry received")
		h.responder.WriteJSON(w, successResponse{Success: true})
	}
}

// updateInquiry merges the supplied fields, usually just status
// @Summary Update inquiry
// @Tags Inquiries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Inquiry ID" format(uuid)
// @Param inquiry body models.InquiryPatch true "Fields to change"
// @Success 200 {object} models.Inquiry
// @Failure 400 {object} ErrorResponse "Invalid inquiry data"
// @Failure 404 {object} ErrorResponse "Inquiry not found"
// @Router /api/inquiries/{id} [patch]
func (h inquiryHandler) updateInquiry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		inquiryID, err := idParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var patch models.InquiryPatch
		if err := decodeJSON(w, r, "inquiry", &patch); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		inquiry, err := h.inquiries.Update(r.Context(), inquiryID, patch)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		adminID, _ := ctxGetAdminID(r.Context())
		h.logger.Info().Str("adminID", adminID).Str("inquiryID", inquiry.ID.String()).Str("status", inquiry.Status).Msg("Inquiry updated")
		h.responder.WriteJSON(w, inquiry)
	}
}

// deleteInquiry deletes an inquiry by ID
// @Summary Delete inquiry
// @Tags Inquiries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Inquiry ID" format(uuid)
// @Success 200 {object} messageResponse
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Router /api/inquiries/{id} [delete]
func (h inquiryHandler) deleteInquiry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		inquiryID, err := idParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.inquiries.Delete(r.Context(), inquiryID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, messageResponse{Message: "Inquiry deleted"})
	}
}
