// Package warmer keeps the price cache hot.
//
// On every tick the Warmer re-resolves a watch list of types in each
// configured market through a pipeline that bypasses cached quotes, then
// purges expired cache entries. Markets are warmed concurrently up to a
// configured limit.
package warmer
