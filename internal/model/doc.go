// Package model defines shared data types used across the appraisal core.
//
// Conventions:
//   - Type IDs: int64, as published in the static data export
//   - Quantities: int64 units (0 is valid for destroyed blueprint copies)
//   - Prices: float64 ISK per unit
//   - Volumes: float64 m3 per unit
package model
