// Package health exposes liveness and readiness endpoints.
//
// Liveness always reports OK while the process runs; readiness fans out
// to registered dependency checks (Postgres, Redis) in parallel and
// aggregates the result.
package health
