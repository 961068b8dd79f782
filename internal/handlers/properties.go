package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/estatehub/api/internal/catalog"
)

// CatalogStore is the persistence surface the catalog endpoints use.
type CatalogStore interface {
	ListProperties(ctx context.Context, filter catalog.PropertyFilter) ([]catalog.Property, error)
	GetProperty(ctx context.Context, id uuid.UUID) (*catalog.Property, error)
	CreateProperty(ctx context.Context, in catalog.PropertyInput) (*catalog.Property, error)
	UpdateProperty(ctx context.Context, id uuid.UUID, upd catalog.PropertyUpdate) (*catalog.Property, error)
	DeleteProperty(ctx context.Context, id uuid.UUID) error

	ListBlogPosts(ctx context.Context, category string) ([]catalog.BlogPost, error)
	GetBlogPost(ctx context.Context, id uuid.UUID) (*catalog.BlogPost, error)
	CreateBlogPost(ctx context.Context, in catalog.BlogPostInput) (*catalog.BlogPost, error)
	UpdateBlogPost(ctx context.Context, id uuid.UUID, upd catalog.BlogPostUpdate) (*catalog.BlogPost, error)
	DeleteBlogPost(ctx context.Context, id uuid.UUID) error
}

// PropertiesHandler serves the property listing endpoints.
type PropertiesHandler struct {
	store CatalogStore
	log   *slog.Logger
}

// NewPropertiesHandler creates the property endpoints handler.
func NewPropertiesHandler(store CatalogStore, log *slog.Logger) *PropertiesHandler {
	return &PropertiesHandler{store: store, log: log}
}

// parsePropertyFilter maps the listing query parameters onto a filter.
func parsePropertyFilter(q url.Values) (catalog.PropertyFilter, error) {
	filter := catalog.PropertyFilter{
		Status:       q.Get("status"),
		PropertyType: q.Get("property_type"),
	}

	if v := q.Get("min_price"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return filter, errors.New("min_price")
		}
		filter.MinPrice = &n
	}
	if v := q.Get("max_price"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return filter, errors.New("max_price")
		}
		filter.MaxPrice = &n
	}
	if v := q.Get("beds"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return filter, errors.New("beds")
		}
		filter.Beds = &n
	}
	if v := q.Get("baths"); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filter, errors.New("baths")
		}
		filter.Baths = &n
	}

	return filter, nil
}

func pathID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	return id, err == nil
}

// List handles GET /properties.
func (h *PropertiesHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parsePropertyFilter(r.URL.Query())
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid query parameter: "+err.Error())
		return
	}

	properties, err := h.store.ListProperties(r.Context(), filter)
	if err != nil {
		h.log.ErrorContext(r.Context(), "list properties failed", slog.String("error", err.Error()))
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}
	respondJSON(w, http.StatusOK, properties)
}

// Get handles GET /properties/{id}.
func (h *PropertiesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid id.")
		return
	}

	property, err := h.store.GetProperty(r.Context(), id)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, property)
}

// Create handles POST /properties.
func (h *PropertiesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in catalog.PropertyInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	property, err := h.store.CreateProperty(r.Context(), in)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, property)
}

// Update handles PATCH /properties/{id}.
func (h *PropertiesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid id.")
		return
	}

	var upd catalog.PropertyUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	property, err := h.store.UpdateProperty(r.Context(), id, upd)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, property)
}

// Delete handles DELETE /properties/{id}.
func (h *PropertiesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid id.")
		return
	}

	if err := h.store.DeleteProperty(r.Context(), id); err != nil {
		h.respondStoreError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// respondStoreError maps catalog errors onto the HTTP taxonomy.
func (h *PropertiesHandler) respondStoreError(w http.ResponseWriter, r *http.Request, err error) {
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
