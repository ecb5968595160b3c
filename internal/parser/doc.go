// Package parser turns pasted game client text into catalog items.
//
// A Dispatcher runs an ordered list of format parsers over the input. Each
// parser either claims lines it understands or leaves them in the residual
// for the next pass. The heuristic parser runs last and tries several
// delimiter and column layouts per line.
//
// Parsing is deterministic, single-threaded and reads nothing but the
// catalog.
package parser
