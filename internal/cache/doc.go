// Package cache stores resolved price quotes with an expiry.
//
// Store is the byte-level backend contract. Memory keeps entries in process;
// Postgres keeps them in a price_cache table so several processes share one
// cache. Prices layers quote encoding and scope-based keys on top of any
// Store and never returns backend errors to callers: failures are logged and
// read as misses.
package cache
