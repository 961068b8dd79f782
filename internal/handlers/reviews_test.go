package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/estatehub/api/internal/handlers"
	"github.com/estatehub/api/internal/reviews"
	"github.com/estatehub/api/pkg/cache"
)

type fakeReviews struct {
	summary *reviews.Summary
	err     error
	ttl     time.Duration
	calls   atomic.Int64
}

func (f *fakeReviews) Fetch(context.Context) (*reviews.Summary, error) {
	f.calls.Add(1)
	return f.summary, f.err
}

func (f *fakeReviews) CacheTTL() time.Duration {
	return f.ttl
}

func testSummary() *reviews.Summary {
	rating := 4.8
	name := "EstateHub Properties"
	return &reviews.Summary{
		Reviews: []reviews.Review{
			{ID: 1700000001, Author: "Alice", Rating: 5, Text: "Great agency", Date: "a week ago"},
		},
		TotalRating:  &rating,
		TotalReviews: 127,
		Name:         &name,
	}
}

func fetchReviews(h *handlers.ReviewsHandler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/fetch-google-reviews", nil)
	rec := httptest.NewRecorder()
	h.Fetch(rec, req)
	return rec
}

func TestReviewsFetch(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		h := handlers.NewReviewsHandler(&fakeReviews{summary: testSummary()}, nil, discardLogger())

		rec := fetchReviews(h)
		require.Equal(t, http.StatusOK, rec.Code)

		var summary reviews.Summary
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
		require.Len(t, summary.Reviews, 1)
		require.Equal(t, "Alice", summary.Reviews[0].Author)
		require.Equal(t, 127, summary.TotalReviews)
	})

	t.Run("nullable fields serialize as null", func(t *testing.T) {
		t.Parallel()

		h := handlers.NewReviewsHandler(&fakeReviews{summary: &reviews.Summary{Reviews: []reviews.Review{}}}, nil, discardLogger())

		rec := fetchReviews(h)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		require.Contains(t, body, "totalRating")
		require.Nil(t, body["totalRating"])
		require.Nil(t, body["name"])
		require.Equal(t, float64(0), body["totalReviews"])
	})

	t.Run("missing API key", func(t *testing.T) {
		t.Parallel()

		h := handlers.NewReviewsHandler(&fakeReviews{err: reviews.ErrAPIKeyMissing}, nil, discardLogger())

		rec := fetchReviews(h)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Equal(t, "API key not configured", decodeBody(t, rec)["error"])
	})

	t.Run("place not found", func(t *testing.T) {
		t.Parallel()

		h := handlers.NewReviewsHandler(&fakeReviews{err: reviews.ErrPlaceNotFound}, nil, discardLogger())

		rec := fetchReviews(h)
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Equal(t, "Place not found", decodeBody(t, rec)["error"])
	})

	t.Run("upstream rejection carries the status string alone", func(t *testing.T) {
		t.Parallel()

		h := handlers.NewReviewsHandler(&fakeReviews{
			err: &reviews.UpstreamError{Status: "OVER_QUERY_LIMIT", Message: "quota exceeded"},
		}, nil, discardLogger())

		rec := fetchReviews(h)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		body := decodeBody(t, rec)
		require.Equal(t, map[string]any{"error": "OVER_QUERY_LIMIT"}, body)
	})

	t.Run("non-OK details status is a 400, not a 404", func(t *testing.T) {
		t.Parallel()

		h := handlers.NewReviewsHandler(&fakeReviews{
			err: &reviews.UpstreamError{Status: "NOT_FOUND"},
		}, nil, discardLogger())

		rec := fetchReviews(h)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "NOT_FOUND", decodeBody(t, rec)["error"])
	})

	t.Run("zero TTL re-queries upstream on every request", func(t *testing.T) {
		t.Parallel()

		svc := &fakeReviews{summary: testSummary()}
		c := cache.NewMemory[*reviews.Summary]()
		defer c.Close()

		h := handlers.NewReviewsHandler(svc, c, discardLogger())
		fetchReviews(h)
		fetchReviews(h)
		require.Equal(t, int64(2), svc.calls.Load())
	})

	// The two singleflight-backed subtests share a cache key, so they run
	// sequentially to keep in-flight calls from deduplicating across tests.
	t.Run("positive TTL serves the second request from cache", func(t *testing.T) {
		svc := &fakeReviews{summary: testSummary(), ttl: time.Minute}
		c := cache.NewMemory[*reviews.Summary]()
		defer c.Close()

		h := handlers.NewReviewsHandler(svc, c, discardLogger())
		fetchReviews(h)
		rec := fetchReviews(h)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, int64(1), svc.calls.Load())
	})

	t.Run("errors are not cached", func(t *testing.T) {
		svc := &fakeReviews{err: reviews.ErrPlaceNotFound, ttl: time.Minute}
		c := cache.NewMemory[*reviews.Summary]()
		defer c.Close()

		h := handlers.NewReviewsHandler(svc, c, discardLogger())
		fetchReviews(h)
		fetchReviews(h)
		require.Equal(t, int64(2), svc.calls.Load())
	})
}
