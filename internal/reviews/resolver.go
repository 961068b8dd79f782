package reviews

import "context"

// PlaceResolver turns configuration into a concrete Places place ID.
type PlaceResolver interface {
	Resolve(ctx context.Context) (string, error)
}

// FixedID resolves to a preconfigured place ID without any network call.
type FixedID string

func (id FixedID) Resolve(context.Context) (string, error) {
	if id == "" {
		return "", ErrPlaceNotFound
	}
	return string(id), nil
}

// TextSearch resolves the place ID by searching for the business name.
type TextSearch struct {
	Client *PlacesClient
	Query  string
}

func (ts TextSearch) Resolve(ctx context.Context) (string, error) {
	return ts.Client.FindPlaceID(ctx, ts.Query)
}
