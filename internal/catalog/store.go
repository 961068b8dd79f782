package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the slice of pgx used by the store. Satisfied by *pgxpool.Pool
// and pgx.Tx alike.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store persists properties and blog posts.
type Store struct {
	db DBTX
}

// NewStore creates a catalog store backed by the given database handle.
func NewStore(db DBTX) *Store {
	return &Store{db: db}
}

const propertyColumns = "id, title, price, location, beds, baths, sqft, status, description, property_type, image_url, created_at"

func scanProperty(row pgx.Row) (*Property, error) {
	var p Property
	err := row.Scan(
		&p.ID, &p.Title, &p.Price, &p.Location, &p.Beds, &p.Baths, &p.Sqft,
		&p.Status, &p.Description, &p.PropertyType, &p.ImageURL, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("catalog: scan property: %w", err)
	}
	return &p, nil
}

// ListProperties returns listings matching the filter, newest first.
func (s *Store) ListProperties(ctx context.Context, filter PropertyFilter) ([]Property, error) {
	where, args := filter.whereClause()
	query := "SELECT " + propertyColumns + " FROM properties" + where + " ORDER BY created_at DESC"

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("catalog: list properties: %w", err)
	}
	defer rows.Close()

	properties := make([]Property, 0)
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog: list properties: %w", err)
	}
	return properties, nil
}

// GetProperty returns a single listing by ID.
func (s *Store) GetProperty(ctx context.Context, id uuid.UUID) (*Property, error) {
	row := s.db.QueryRow(ctx, "SELECT "+propertyColumns+" FROM properties WHERE id = $1", id)
	return scanProperty(row)
}

// CreateProperty validates and inserts a new listing.
func (s *Store) CreateProperty(ctx context.Context, in PropertyInput) (*Property, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	row := s.db.QueryRow(ctx, `
		INSERT INTO properties (title, price, location, beds, baths, sqft, status, description, property_type, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+propertyColumns,
		in.Title, in.Price, in.Location, in.Beds, in.Baths, in.Sqft,
		in.Status, in.Description, in.PropertyType, in.ImageURL,
	)
	return scanProperty(row)
}

// UpdateProperty applies a partial update and returns the updated listing.
func (s *Store) UpdateProperty(ctx context.Context, id uuid.UUID, upd PropertyUpdate) (*Property, error) {
	if err := upd.Validate(); err != nil {
		return nil, err
	}

	var (
		sets []string
		args []any
	)
	set := func(column string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Title != nil {
		set("title", *upd.Title)
	}
	if upd.Price != nil {
		set("price", *upd.Price)
	}
	if upd.Location != nil {
		set("location", *upd.Location)
	}
	if upd.Beds != nil {
		set("beds", *upd.Beds)
	}
	if upd.Baths != nil {
		set("baths", *upd.Baths)
	}
	if upd.Sqft != nil {
		set("sqft", *upd.Sqft)
	}
	if upd.Status != nil {
		set("status", *upd.Status)
	}
	if upd.Description != nil {
		set("description", *upd.Description)
	}
	if upd.PropertyType != nil {
		set("property_type", *upd.PropertyType)
	}
	if upd.ImageURL != nil {
		set("image_url", *upd.ImageURL)
	}

	if len(sets) == 0 {
		return nil, ErrNoFields
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE properties SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), propertyColumns,
	)
	return scanProperty(s.db.QueryRow(ctx, query, args...))
}

// DeleteProperty removes a listing by ID.
func (s *Store) DeleteProperty(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, "DELETE FROM properties WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("catalog: delete property: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
