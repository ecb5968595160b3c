package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// MarketStatOptions selects the types and market area of a marketstat
// request. SystemID takes precedence over RegionLimit.
type MarketStatOptions struct {
	TypeIDs     []int64
	SystemID    int64
	RegionLimit []int64
}

// GetMarketStat fetches order statistics for a batch of types.
func (c *Client) GetMarketStat(ctx context.Context, opts MarketStatOptions) (*MarketStatResponse, error) {
	query := url.Values{}

	for _, id := range opts.TypeIDs {
		query.Add("typeid", strconv.FormatInt(id, 10))
	}
	if opts.SystemID > 0 {
		query.Set("usesystem", strconv.FormatInt(opts.SystemID, 10))
	} else {
		for _, region := range opts.RegionLimit {
			query.Add("regionlimit", strconv.FormatInt(region, 10))
		}
	}

	var resp MarketStatResponse
	if err := c.getXML(ctx, "/marketstat", query, &resp); err != nil {
		return nil, fmt.Errorf("get marketstat: %w", err)
	}

	return &resp, nil
}
