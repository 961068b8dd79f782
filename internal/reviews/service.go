package reviews

import (
	"context"
	"time"
)

// maxReviews caps how many reviews the summary exposes.
const maxReviews = 3

// Config holds the review fetch configuration. When PlaceID is empty the
// service falls back to a text search for BusinessQuery.
type Config struct {
	APIKey        string        `env:"GOOGLE_PLACES_API_KEY"`
	PlaceID       string        `env:"GOOGLE_PLACE_ID"`
	BusinessQuery string        `env:"GOOGLE_BUSINESS_QUERY" envDefault:"EstateHub Properties"`
	CacheTTL      time.Duration `env:"REVIEWS_CACHE_TTL" envDefault:"0s"`
}

// Review is one customer review in the public response shape.
type Review struct {
	ID     int64   `json:"id"`
	Author string  `json:"author"`
	Rating float64 `json:"rating"`
	Text   string  `json:"text"`
	Date   string  `json:"date"`
}

// Summary is the public review payload. TotalRating and Name are
// pointers so an upstream omission serializes as null rather than a
// fabricated zero.
type Summary struct {
	Reviews      []Review `json:"reviews"`
	TotalRating  *float64 `json:"totalRating"`
	TotalReviews int      `json:"totalReviews"`
	Name         *string  `json:"name"`
}

// Service fetches and shapes review data from the Places API.
type Service struct {
	client   *PlacesClient
	resolver PlaceResolver
	cfg      Config
}

// NewService builds the review service from configuration. A configured
// place ID skips the text-search resolution step entirely.
func NewService(cfg Config, opts ...PlacesOption) *Service {
	client := NewPlacesClient(cfg.APIKey, opts...)

	var resolver PlaceResolver
	if cfg.PlaceID != "" {
		resolver = FixedID(cfg.PlaceID)
	} else {
		resolver = TextSearch{Client: client, Query: cfg.BusinessQuery}
	}

	return &Service{
		client:   client,
		resolver: resolver,
		cfg:      cfg,
	}
}

// CacheTTL reports the configured caching window. Zero disables caching
// so every call re-queries the upstream.
func (s *Service) CacheTTL() time.Duration {
	return s.cfg.CacheTTL
}

// Fetch resolves the place and returns its review summary.
func (s *Service) Fetch(ctx context.Context) (*Summary, error) {
	if s.cfg.APIKey == "" {
		return nil, ErrAPIKeyMissing
	}

	placeID, err := s.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	details, err := s.client.Details(ctx, placeID)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Reviews:      make([]Review, 0, maxReviews),
		TotalRating:  details.Rating,
		TotalReviews: details.UserRatingsTotal,
	}
	if details.Name != "" {
		summary.Name = &details.Name
	}

	for _, r := range details.Reviews {
		if len(summary.Reviews) == maxReviews {
			break
		}
		summary.Reviews = append(summary.Reviews, Review{
			ID:     r.Time,
			Author: r.AuthorName,
			Rating: r.Rating,
			Text:   r.Text,
			Date:   r.RelativeTimeDescription,
		})
	}

	return summary, nil
}
