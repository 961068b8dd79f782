package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/estatehub/api/pkg/sanitizer"
)

// Property statuses accepted by the listing lifecycle.
const (
	StatusForSale = "For Sale"
	StatusForRent = "For Rent"
	StatusSold    = "Sold"
	StatusRented  = "Rented"
)

var validStatuses = map[string]struct{}{
	StatusForSale: {},
	StatusForRent: {},
	StatusSold:    {},
	StatusRented:  {},
}

// Property is a single listing as served to the site.
type Property struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Price        int64     `json:"price"`
	Location     string    `json:"location"`
	Beds         int       `json:"beds"`
	Baths        float64   `json:"baths"`
	Sqft         int       `json:"sqft"`
	Status       string    `json:"status"`
	Description  string    `json:"description"`
	PropertyType string    `json:"property_type"`
	ImageURL     string    `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
}

// PropertyInput is the payload for creating a listing.
type PropertyInput struct {
	Title        string  `json:"title"`
	Price        int64   `json:"price"`
	Location     string  `json:"location"`
	Beds         int     `json:"beds"`
	Baths        float64 `json:"baths"`
	Sqft         int     `json:"sqft"`
	Status       string  `json:"status"`
	Description  string  `json:"description"`
	PropertyType string  `json:"property_type"`
	ImageURL     string  `json:"image_url"`
}

// Validate checks required fields and the status vocabulary.
func (in PropertyInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Location) == "" {
		return fmt.Errorf("%w: location is required", ErrInvalidInput)
	}
	if in.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if _, ok := validStatuses[in.Status]; !ok {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, in.Status)
	}
	return nil
}

// PropertyUpdate is a partial update; nil fields are left untouched.
type PropertyUpdate struct {
	Title        *string  `json:"title"`
	Price        *int64   `json:"price"`
	Location     *string  `json:"location"`
	Beds         *int     `json:"beds"`
	Baths        *float64 `json:"baths"`
	Sqft         *int     `json:"sqft"`
	Status       *string  `json:"status"`
	Description  *string  `json:"description"`
	PropertyType *string  `json:"property_type"`
	ImageURL     *string  `json:"image_url"`
}

// Validate checks the populated fields only.
func (u PropertyUpdate) Validate() error {
	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		return fmt.Errorf("%w: title must not be empty", ErrInvalidInput)
	}
	if u.Price != nil && *u.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if u.Status != nil {
		if _, ok := validStatuses[*u.Status]; !ok {
			return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *u.Status)
		}
	}
	return nil
}

// BlogPost is one article as served to the site. Content is stored as
// sanitized HTML.
type BlogPost struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	Category  string    `json:"category"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

// BlogPostInput is the payload for creating an article.
type BlogPostInput struct {
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Author   string `json:"author"`
	Category string `json:"category"`
	ImageURL string `json:"image_url"`
}

// Validate checks required fields.
func (in BlogPostInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Content) == "" {
		return fmt.Errorf("%w: content is required", ErrInvalidInput)
	}
	return nil
}

// sanitized scrubs the rich-text fields. Author-supplied HTML goes
// through the content policy; the excerpt is plain text.
func (in BlogPostInput) sanitized() BlogPostInput {
	in.Content = sanitizer.SanitizeHTML(in.Content)
	in.Excerpt = sanitizer.StripHTML(in.Excerpt)
	return in
}

// BlogPostUpdate is a partial update; nil fields are left untouched.
type BlogPostUpdate struct {
	Title    *string `json:"title"`
	Excerpt  *string `json:"excerpt"`
	Content  *string `json:"content"`
	Author   *string `json:"author"`
	Category *string `json:"category"`
	ImageURL *string `json:"image_url"`
}

// Validate checks the populated fields only.
func (u BlogPostUpdate) Validate() error {
	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		return fmt.Errorf("%w: title must not be empty", ErrInvalidInput)
	}
	if u.Content != nil && strings.TrimSpace(*u.Content) == "" {
		return fmt.Errorf("%w: content must not be empty", ErrInvalidInput)
	}
	return nil
}

func (u BlogPostUpdate) sanitized() BlogPostUpdate {
	if u.Content != nil {
		clean := sanitizer.SanitizeHTML(*u.Content)
		u.Content = &clean
	}
	if u.Excerpt != nil {
		plain := sanitizer.StripHTML(*u.Excerpt)
		u.Excerpt = &plain
	}
	return u
}
