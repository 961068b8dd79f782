package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/estatehub/api/internal/reviews"
	"github.com/estatehub/api/middlewares"
	"github.com/estatehub/api/pkg/cache"
	"github.com/estatehub/api/pkg/health"
	"github.com/estatehub/api/pkg/jwt"
	"github.com/estatehub/api/pkg/storage"
)

// Deps collects everything the router needs. ReviewsCache is optional.
type Deps struct {
	Log          *slog.Logger
	Contact      ContactService
	Reviews      ReviewService
	ReviewsCache cache.Cache[*reviews.Summary]
	Catalog      CatalogStore
	Media        storage.Storage
	Auth         AuthService
	Tokens       *jwt.Service
	Health       health.Checks

	// RequestTimeout bounds every request server-side. Zero disables
	// the timeout middleware.
	RequestTimeout time.Duration
}

// NewRouter assembles the full HTTP surface.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middlewares.RequestID)
	r.Use(middlewares.Recover(deps.Log))
	r.Use(middlewares.CORS())
	if deps.RequestTimeout > 0 {
		r.Use(middlewares.Timeout(deps.RequestTimeout))
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusNotFound, "Not found.")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed.")
	})

	contactHandler := NewContactHandler(deps.Contact, deps.Log)
	r.Post("/send-contact-email", contactHandler.Send)

	reviewsHandler := NewReviewsHandler(deps.Reviews, deps.ReviewsCache, deps.Log)
	r.Get("/fetch-google-reviews", reviewsHandler.Fetch)
	r.Post("/fetch-google-reviews", reviewsHandler.Fetch)

	requireAuth := middlewares.RequireAuth(deps.Tokens)

	properties := NewPropertiesHandler(deps.Catalog, deps.Log)
	r.Route("/properties", func(r chi.Router) {
		r.Get("/", properties.List)
		r.Get("/{id}", properties.Get)
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", properties.Create)
			r.Patch("/{id}", properties.Update)
			r.Delete("/{id}", properties.Delete)
		})
	})

	blog := NewBlogHandler(deps.Catalog, deps.Log)
	r.Route("/blog-posts", func(r chi.Router) {
		r.Get("/", blog.List)
		r.Get("/{id}", blog.Get)
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", blog.Create)
			r.Patch("/{id}", blog.Update)
			r.Delete("/{id}", blog.Delete)
		})
	})

	media := NewMediaHandler(deps.Media, deps.Log)
	r.Route("/media", func(r chi.Router) {
		r.Use(requireAuth)
		r.Post("/", media.Upload)
		r.Delete("/*", media.Delete)
	})

	authHandler := NewAuthHandler(deps.Auth, deps.Log)
	r.Post("/auth/login", authHandler.Login)

	r.Get("/health/live", health.LivenessHandler())
	r.Get("/health/ready", health.ReadinessHandler(deps.Health, health.WithLogger(deps.Log)))

	return r
}
