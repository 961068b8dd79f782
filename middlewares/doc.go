// Package middlewares contains the HTTP middleware stack: CORS with
// immediate preflight handling, request IDs, panic recovery, a
// request-scoped timeout, and bearer-token auth for the owner portal.
package middlewares
