package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/estatehub/api/middlewares"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	t.Run("generates id when absent", func(t *testing.T) {
		t.Parallel()

		var got string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := middlewares.RequestIDFromContext(r.Context())
			require.True(t, ok)
			got = id
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		middlewares.RequestID(next).ServeHTTP(rec, req)

		require.NotEmpty(t, got)
		_, err := uuid.Parse(got)
		require.NoError(t, err)
		require.Equal(t, got, rec.Header().Get(middlewares.RequestIDHeader))
	})

	t.Run("propagates incoming id", func(t *testing.T) {
		t.Parallel()

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, _ := middlewares.RequestIDFromContext(r.Context())
			require.Equal(t, "client-id-42", id)
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middlewares.RequestIDHeader, "client-id-42")
		rec := httptest.NewRecorder()

		middlewares.RequestID(next).ServeHTTP(rec, req)

		require.Equal(t, "client-id-42", rec.Header().Get(middlewares.RequestIDHeader))
	})
}
