// Package cache provides a generic key-value cache with TTL support.
//
// Two backends are available: an in-memory map with a background janitor
// for single-instance deployments, and a Redis-backed cache for shared
// state. GetOrSet wraps either backend with singleflight so concurrent
// misses for the same key compute the value only once.
package cache
