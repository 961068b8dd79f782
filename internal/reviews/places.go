package reviews

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/place"

// statusOK is the Places API success status. On a details call any other
// status, NOT_FOUND and ZERO_RESULTS included, is surfaced verbatim as an
// UpstreamError; only the text-search resolution step maps an empty
// result to ErrPlaceNotFound.
const statusOK = "OK"

type PlacesReview struct {
	AuthorName              string  `json:"author_name"`
	Rating                  float64 `json:"rating"`
	Text                    string  `json:"text"`
	Time                    int64   `json:"time"`
	RelativeTimeDescription string  `json:"relative_time_description"`
}

type PlaceDetails struct {
	Name             string         `json:"name"`
	Rating           *float64       `json:"rating"`
	UserRatingsTotal int            `json:"user_ratings_total"`
	Reviews          []PlacesReview `json:"reviews"`
}

type detailsResponse struct {
	Status       string       `json:"status"`
	ErrorMessage string       `json:"error_message"`
	Result       PlaceDetails `json:"result"`
}

type textSearchResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		PlaceID string `json:"place_id"`
	} `json:"results"`
}

// PlacesClient is a minimal typed client for the Places Web Service.
type PlacesClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// PlacesOption configures the client.
type PlacesOption func(*PlacesClient)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) PlacesOption {
	return func(pc *PlacesClient) {
		pc.httpClient = c
	}
}

// WithBaseURL overrides the API base URL. Used in tests.
func WithBaseURL(u string) PlacesOption {
	return func(pc *PlacesClient) {
		pc.baseURL = u
	}
}

// NewPlacesClient creates a Places API client.
func NewPlacesClient(apiKey string, opts ...PlacesOption) *PlacesClient {
	pc := &PlacesClient{
		httpClient: http.DefaultClient,
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
	}
	for _, opt := range opts {
		opt(pc)
	}
	return pc
}

// Details fetches name, rating, total rating count, and reviews for a place.
func (pc *PlacesClient) Details(ctx context.Context, placeID string) (*PlaceDetails, error) {
	query := url.Values{
		"place_id": {placeID},
		"fields":   {"name,rating,user_ratings_total,reviews"},
		"key":      {pc.apiKey},
	}

	var resp detailsResponse
	if err := pc.get(ctx, "/details/json", query, &resp); err != nil {
		return nil, err
	}

	if resp.Status != statusOK {
		return nil, &UpstreamError{Status: resp.Status, Message: resp.ErrorMessage}
	}
	return &resp.Result, nil
}

// FindPlaceID runs a text search and returns the first matching place ID.
func (pc *PlacesClient) FindPlaceID(ctx context.Context, businessQuery string) (string, error) {
	query := url.Values{
		"query": {businessQuery},
		"key":   {pc.apiKey},
	}

	var resp textSearchResponse
	if err := pc.get(ctx, "/textsearch/json", query, &resp); err != nil {
		return "", err
	}

	switch resp.Status {
	case statusOK:
		if len(resp.Results) == 0 || resp.Results[0].PlaceID == "" {
			return "", ErrPlaceNotFound
		}
		return resp.Results[0].PlaceID, nil
	case "ZERO_RESULTS":
		return "", ErrPlaceNotFound
	default:
		return "", &UpstreamError{Status: resp.Status, Message: resp.ErrorMessage}
	}
}

func (pc *PlacesClient) get(ctx context.Context, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pc.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("reviews: build request: %w", err)
	}

	resp, err := pc.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("reviews: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &UpstreamError{Status: resp.Status}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &UpstreamError{Status: "INVALID_RESPONSE", Message: err.Error()}
	}

	return nil
}
