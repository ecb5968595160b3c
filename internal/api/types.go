package api

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strconv"
)

// MarketStatResponse from GET /marketstat
type MarketStatResponse struct {
	XMLName xml.Name         `xml:"evec_api"`
	Types   []MarketStatType `xml:"marketstat>type"`
}

// MarketStatType holds the statistics of one type.
type MarketStatType struct {
	ID   int64          `xml:"id,attr"`
	Buy  MarketStatSide `xml:"buy"`
	Sell MarketStatSide `xml:"sell"`
	All  MarketStatSide `xml:"all"`
}

// MarketStatSide holds order statistics for one side of the market.
type MarketStatSide struct {
	Volume     float64 `xml:"volume"`
	Avg        float64 `xml:"avg"`
	Max        float64 `xml:"max"`
	Min        float64 `xml:"min"`
	StdDev     float64 `xml:"stddev"`
	Median     float64 `xml:"median"`
	Percentile float64 `xml:"percentile"`
}

// ItemPricesResponse from GET /item_prices2.json
type ItemPricesResponse struct {
	EMD struct {
		Result []struct {
			Row ItemPriceRow `json:"row"`
		} `json:"result"`
	} `json:"emd"`
}

// Rows returns the price rows of the response.
func (r *ItemPricesResponse) Rows() []ItemPriceRow {
	rows := make([]ItemPriceRow, 0, len(r.EMD.Result))
	for _, res := range r.EMD.Result {
		rows = append(rows, res.Row)
	}
	return rows
}

// Sides of an item price row.
const (
	SideSell = "s"
	SideBuy  = "b"
)

// ItemPriceRow is one price for a (type, side) pair.
type ItemPriceRow struct {
	TypeID        Number `json:"typeID"`
	BuySell       string `json:"buysell"`
	Price         Number `json:"price"`
	SolarSystemID Number `json:"solarsystemID,omitempty"`
	Updated       string `json:"updated,omitempty"`
}

// Number is a numeric field the provider sends either as a JSON number or
// as a quoted string.
type Number string

// UnmarshalJSON accepts both 5.1 and "5.1".
func (n *Number) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Number(s)
		return nil
	}
	*n = Number(data)
	return nil
}

// Float64 parses the number.
func (n Number) Float64() (float64, error) {
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		return 0, fmt.Errorf("parse number %q: %w", string(n), err)
	}
	return f, nil
}

// Int64 parses the number as an integer.
func (n Number) Int64() (int64, error) {
	i, err := strconv.ParseInt(string(n), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse integer %q: %w", string(n), err)
	}
	return i, nil
}
