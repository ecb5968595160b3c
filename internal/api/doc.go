// Package api provides HTTP clients for the market price providers.
//
// Two providers are supported:
//   - marketstat: per-type buy/sell/all statistics as XML, scoped to one
//     solar system or a set of regions
//   - item_prices2.json: single buy and sell prices per type as JSON
//
// Both share one Client with retry, rate limiting and a User-Agent.
package api
