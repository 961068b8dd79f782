// Package db manages the PostgreSQL connection pool and schema migrations.
//
// Connect establishes a pgx pool with retry and exponential backoff so the
// service survives databases that come up slower than the app container.
// Migrate applies embedded goose migrations through the pgx stdlib bridge.
package db
