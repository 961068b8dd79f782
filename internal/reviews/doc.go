// Package reviews fetches customer reviews from the Google Places API.
//
// Each fetch resolves a place ID (fixed configuration or a text search
// by business name), requests the place details, and maps at most three
// reviews into the public summary shape. Results are not persisted;
// optional short-lived caching happens at the transport layer.
package reviews
