// Package catalog holds the read-only type catalog loaded from the static
// data export.
//
// Names are matched after normalization only: Unicode NFC, case folding,
// surrounding whitespace, a trailing "*" (modified items in some exports) and
// a trailing "(original)" marker are ignored. There is no fuzzy matching.
package catalog
