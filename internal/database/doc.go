// Package database opens the PostgreSQL pool backing the shared price cache.
//
// The pool is only needed when cache.backend is "postgres"; the in-memory
// backend keeps prices per process.
package database
