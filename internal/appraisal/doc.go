// Package appraisal turns a paste into a priced Appraisal.
//
// Appraise parses the paste, merges items by type, prices everything through
// a pricing resolver and sums the totals. Items without a quote stay on the
// appraisal unpriced and add nothing to value totals. Blueprint copies are
// never looked up and are worth zero.
package appraisal
