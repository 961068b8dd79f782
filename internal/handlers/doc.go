// Package handlers exposes the HTTP surface of the service: the
// contact-email relay, the Google-reviews fetch, the property and blog
// catalog, media uploads, owner login, and health probes.
package handlers
