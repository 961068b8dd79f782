package handlers_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/estatehub/api/internal/auth"
	"github.com/estatehub/api/internal/handlers"
	"github.com/estatehub/api/pkg/health"
	"github.com/estatehub/api/pkg/jwt"
	"github.com/estatehub/api/pkg/storage"
)

type fakeAuth struct{}

func (fakeAuth) Login(_ context.Context, email, password string) (string, error) {
	if email == "owner@estatehub.example" && password == "correct horse" {
		return "fake-token", nil
	}
	return "", auth.ErrInvalidCredentials
}

type fakeStorage struct {
	deletedKey string
}

func (f *fakeStorage) Upload(_ context.Context, _ io.Reader, size int64, contentType string) (*storage.FileInfo, error) {
	return &storage.FileInfo{
		Key:         "2026/08/test.jpg",
		URL:         "https://cdn.estatehub.example/2026/08/test.jpg",
		ContentType: contentType,
		Size:        size,
	}, nil
}

func (f *fakeStorage) Delete(_ context.Context, key string) error {
	f.deletedKey = key
	return nil
}

func newTestRouter(t *testing.T) (http.Handler, *jwt.Service, *fakeStorage) {
	t.Helper()

	tokens, err := jwt.New("test-secret", time.Hour)
	require.NoError(t, err)

	media := &fakeStorage{}
	router := handlers.NewRouter(handlers.Deps{
		Log:            discardLogger(),
		Contact:        &fakeContact{},
		Reviews:        &fakeReviews{summary: testSummary()},
		Catalog:        &fakeCatalog{},
		Media:          media,
		Auth:           fakeAuth{},
		Tokens:         tokens,
		Health:         health.Checks{},
		RequestTimeout: 5 * time.Second,
	})
	return router, tokens, media
}

func TestRouter(t *testing.T) {
	t.Parallel()

	t.Run("preflight answered before business logic", func(t *testing.T) {
		t.Parallel()

		router, _, _ := newTestRouter(t)

		req := httptest.NewRequest(http.MethodOptions, "/send-contact-email", nil)
		req.Header.Set("Origin", "https://estatehub.example")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Empty(t, rec.Body.String())
		require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		require.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Methods"))
	})

	t.Run("wrong method on the contact endpoint", func(t *testing.T) {
		t.Parallel()

		router, _, _ := newTestRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/send-contact-email", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})

	t.Run("reviews served on GET and POST", func(t *testing.T) {
		t.Parallel()

		router, _, _ := newTestRouter(t)

		for _, method := range []string{http.MethodGet, http.MethodPost} {
			req := httptest.NewRequest(method, "/fetch-google-reviews", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			require.Equal(t, http.StatusOK, rec.Code)
		}
	})

	t.Run("writes require a bearer token", func(t *testing.T) {
		t.Parallel()

		router, tokens, _ := newTestRouter(t)
		body := `{"title":"Loft","location":"Springfield","status":"For Sale"}`

		req := httptest.NewRequest(http.MethodPost, "/properties", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)

		token, err := tokens.Sign("owner@estatehub.example")
		require.NoError(t, err)

		req = httptest.NewRequest(http.MethodDelete, "/properties/"+uuid.NewString(), nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("public reads need no token", func(t *testing.T) {
		t.Parallel()

		router, _, _ := newTestRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/properties/"+uuid.NewString(), nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Equal(t, "Record not found.", decodeBody(t, rec)["error"])
	})

	t.Run("media delete passes the nested object key", func(t *testing.T) {
		t.Parallel()

		router, tokens, media := newTestRouter(t)
		token, err := tokens.Sign("owner@estatehub.example")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodDelete, "/media/2026/08/abc.jpg", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "2026/08/abc.jpg", media.deletedKey)
	})

	t.Run("login issues a token", func(t *testing.T) {
		t.Parallel()

		router, _, _ := newTestRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"owner@estatehub.example","password":"correct horse"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "fake-token", decodeBody(t, rec)["token"])
	})

	t.Run("liveness probe", func(t *testing.T) {
		t.Parallel()

		router, _, _ := newTestRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	})
}
