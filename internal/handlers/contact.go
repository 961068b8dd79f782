package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/estatehub/api/internal/contact"
)

// ContactService delivers one contact-form submission.
type ContactService interface {
	Deliver(ctx context.Context, sub contact.Submission) error
}

// ContactHandler serves the contact-form relay endpoint.
type ContactHandler struct {
	svc ContactService
	log *slog.Logger
}

// NewContactHandler creates the contact endpoint handler.
func NewContactHandler(svc ContactService, log *slog.Logger) *ContactHandler {
	return &ContactHandler{svc: svc, log: log}
}

// Send handles POST /send-contact-email.
func (h *ContactHandler) Send(w http.ResponseWriter, r *http.Request) {
	var sub contact.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	err := h.svc.Deliver(r.Context(), sub)
	if err == nil {
		respondJSON(w, http.StatusOK, map[string]bool{"success": true})
		return
	}

	var sendErr *contact.InternalSendError
	switch {
	case errors.Is(err, contact.ErrMissingFields):
		respondError(w, http.StatusBadRequest, "Missing required fields.")
	case errors.Is(err, contact.ErrConfigIncomplete):
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "Server email configuration is incomplete.",
			"hint":  "Set RESEND_API_KEY and CONTACT_RECIPIENT_EMAIL.",
		})
	case errors.As(err, &sendErr):
		respondJSON(w, http.StatusBadGateway, map[string]string{
			"error":  "Failed to send internal email.",
			"resend": sendErr.ProviderResponse(),
		})
	default:
		h.log.ErrorContext(r.Context(), "contact submission failed", slog.String("error", err.Error()))
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
	}
}
