package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/estatehub/api/pkg/storage"
)

// MediaHandler serves listing-photo uploads and deletions.
type MediaHandler struct {
	store storage.Storage
	log   *slog.Logger
}

// NewMediaHandler creates the media endpoints handler.
func NewMediaHandler(store storage.Storage, log *slog.Logger) *MediaHandler {
	return &MediaHandler{store: store, log: log}
}

// Upload handles POST /media. Expects a multipart form with a "file" part.
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Missing file.")
		return
	}
	defer file.Close()

	info, err := h.store.Upload(r.Context(), file, header.Size, header.Header.Get("Content-Type"))
	switch {
	case err == nil:
		respondJSON(w, http.StatusCreated, info)
	case errors.Is(err, storage.ErrUnsupportedContentType):
		respondError(w, http.StatusBadRequest, "Unsupported file type.")
	case errors.Is(err, storage.ErrObjectTooLarge):
		respondError(w, http.StatusBadRequest, "File exceeds the maximum upload size.")
	default:
		h.log.ErrorContext(r.Context(), "media upload failed", slog.String("error", err.Error()))
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
	}
}

// Delete handles DELETE /media/{key...}.
func (h *MediaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "*")
	if key == "" {
		respondError(w, http.StatusBadRequest, "Missing object key.")
		return
	}

	if err := h.store.Delete(r.Context(), key); err != nil {
		h.log.ErrorContext(r.Context(), "media delete failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
