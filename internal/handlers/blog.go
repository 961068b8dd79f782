package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/estatehub/api/internal/catalog"
)

// BlogHandler serves the blog post endpoints.
type BlogHandler struct {
	store CatalogStore
	log   *slog.Logger
}

// NewBlogHandler creates the blog endpoints handler.
func NewBlogHandler(store CatalogStore, log *slog.Logger) *BlogHandler {
	return &BlogHandler{store: store, log: log}
}

// List handles GET /blog-posts.
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.store.ListBlogPosts(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		h.log.ErrorContext(r.Context(), "list blog posts failed", slog.String("error", err.Error()))
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}
	respondJSON(w, http.StatusOK, posts)
}

// Get handles GET /blog-posts/{id}.
func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid id.")
		return
	}

	post, err := h.store.GetBlogPost(r.Context(), id)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, post)
}

// Create handles POST /blog-posts.
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in catalog.BlogPostInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	post, err := h.store.CreateBlogPost(r.Context(), in)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, post)
}

// Update handles PATCH /blog-posts/{id}.
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid id.")
		return
	}

	var upd catalog.BlogPostUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	post, err := h.store.UpdateBlogPost(r.Context(), id, upd)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, post)
}

// Delete handles DELETE /blog-posts/{id}.
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid id.")
		return
	}

	if err := h.store.DeleteBlogPost(r.Context(), id); err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *BlogHandler) respondStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		respondError(w, http.StatusNotFound, "Record not found.")
	case errors.Is(err, catalog.ErrInvalidInput), errors.Is(err, catalog.ErrNoFields):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		h.log.ErrorContext(r.Context(), "catalog query failed", slog.String("error", err.Error()))
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
	}
}
