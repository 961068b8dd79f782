package middlewares_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/estatehub/api/middlewares"
	"github.com/estatehub/api/pkg/jwt"
)

func TestRequireAuth(t *testing.T) {
	t.Parallel()

	svc, err := jwt.New("test-secret", time.Hour)
	require.NoError(t, err)

	protected := middlewares.RequireAuth(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sub, ok := middlewares.AuthSubjectFromContext(r.Context())
		require.True(t, ok)
		_, _ = w.Write([]byte(sub))
	}))

	t.Run("valid token passes", func(t *testing.T) {
		t.Parallel()

		token, err := svc.Sign("owner@estatehub.example")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/properties", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "owner@estatehub.example", rec.Body.String())
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/properties", nil)
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "missing authentication token", body["error"])
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		t.Parallel()

		shortLived, err := jwt.New("test-secret", time.Millisecond)
		require.NoError(t, err)
		token, err := shortLived.Sign("owner@estatehub.example")
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)

		req := httptest.NewRequest(http.MethodPost, "/properties", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "token expired", body["error"])
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/properties", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
