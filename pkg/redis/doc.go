// Package redis opens and manages the Redis client used for the
// review-cache backend. Connection establishment retries with backoff,
// and Healthcheck/Shutdown closures plug into the health endpoints and
// the server's shutdown hooks.
package redis
