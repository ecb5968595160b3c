package model

import (
	"time"

	"github.com/google/uuid"
)

// LineItem is a merged, priced entry of an appraisal.
type LineItem struct {
	TypeID   int64   `json:"typeID"`
	Name     string  `json:"typeName"`
	GroupID  int64   `json:"groupID"`
	Market   bool    `json:"market"`
	Volume   float64 `json:"volume"`
	Quantity int64   `json:"count"`
	Fitted   int64   `json:"fitted_count"` // part of Quantity carrying TagFitted
	Tags     Tags    `json:"tags"`
	Priced   bool    `json:"priced"`
	Quote    Quote   `json:"prices"`
	Totals   Totals  `json:"totals"`
}

// RepresentativeValue is the larger of the sell and buy totals.
func (li LineItem) RepresentativeValue() float64 {
	return max(li.Totals.Sell, li.Totals.Buy)
}

// Totals aggregates value and volume.
type Totals struct {
	Sell   float64 `json:"sell"`
	Buy    float64 `json:"buy"`
	All    float64 `json:"all"`
	Volume float64 `json:"volume"`
}

// Appraisal is the result of one submission. It is not modified after creation.
type Appraisal struct {
	ID              uuid.UUID       `json:"id"`
	Created         time.Time       `json:"created"`
	Raw             string          `json:"raw"`
	Kind            string          `json:"kind"`
	Passes          []Pass          `json:"passes"`
	Unrecognized    []string        `json:"bad_lines"`
	BlueprintCopies int             `json:"blueprint_copies"`
	Prices          map[int64]Quote `json:"prices"`
	Market          Scope           `json:"market"`
	Items           []LineItem      `json:"items"`
	Totals          Totals          `json:"totals"`
}
