package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/estatehub/api/internal/reviews"
	"github.com/estatehub/api/pkg/cache"
)

const reviewsCacheKey = "google-reviews"

// ReviewService fetches the review summary from the upstream provider.
type ReviewService interface {
	Fetch(ctx context.Context) (*reviews.Summary, error)
	CacheTTL() time.Duration
}

// ReviewsHandler serves the review fetch endpoint.
type ReviewsHandler struct {
	svc   ReviewService
	cache cache.Cache[*reviews.Summary]
	log   *slog.Logger
}

// NewReviewsHandler creates the reviews endpoint handler. The cache is
// optional; with a nil cache or a zero TTL every request re-queries the
// upstream.
func NewReviewsHandler(svc ReviewService, c cache.Cache[*reviews.Summary], log *slog.Logger) *ReviewsHandler {
	return &ReviewsHandler{svc: svc, cache: c, log: log}
}

// Fetch handles GET and POST /fetch-google-reviews.
func (h *ReviewsHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	summary, err := h.fetch(r.Context())
	if err != nil {
		h.respondFetchError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

func (h *ReviewsHandler) fetch(ctx context.Context) (*reviews.Summary, error) {
	ttl := h.svc.CacheTTL()
	if h.cache == nil || ttl <= 0 {
		return h.svc.Fetch(ctx)
	}

	return cache.GetOrSet(ctx, h.cache, reviewsCacheKey, func(ctx context.Context) (*reviews.Summary, time.Duration, error) {
		summary, err := h.svc.Fetch(ctx)
		return summary, ttl, err
	})
}

func (h *ReviewsHandler) respondFetchError(w http.ResponseWriter, r *http.Request, err error) {
	var upstreamErr *reviews.UpstreamError
	switch {
	case errors.Is(err, reviews.ErrAPIKeyMissing):
		respondError(w, http.StatusInternalServerError, "API key not configured")
	case errors.Is(err, reviews.ErrPlaceNotFound):
		respondError(w, http.StatusNotFound, "Place not found")
	case errors.As(err, &upstreamErr):
		// The body carries the upstream status string alone; the
		// provider's error_message goes to the log, not the client.
		h.log.WarnContext(r.Context(), "review fetch rejected upstream",
			slog.String("status", upstreamErr.Status),
			slog.String("message", upstreamErr.Message),
		)
		respondError(w, http.StatusBadRequest, upstreamErr.Status)
	default:
		h.log.ErrorContext(r.Context(), "review fetch failed", slog.String("error", err.Error()))
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
	}
}
