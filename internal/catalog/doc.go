// Package catalog persists the property listings and blog posts that
// the public site renders. Reads are open; writes happen through the
// authenticated owner endpoints.
package catalog
