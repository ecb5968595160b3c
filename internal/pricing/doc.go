// Package pricing resolves market quotes for catalog types.
//
// A Pipeline runs resolver stages in a fixed order. Each stage only sees the
// types earlier stages left unresolved, so the resolved set grows
// monotonically. The standard order is:
//
//  1. NonMarket: types that cannot be traded are worth zero
//  2. Cached: quotes still valid in the cache
//  3. Componentized: types priced from their bill of materials
//  4. Provider stages, in configured order
//
// Stages never fail. A provider batch that errors or times out is logged and
// resolves nothing.
package pricing
