package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ItemPricesOptions selects the types and market area of an item prices
// request. A zero SystemID asks for prices across all systems.
type ItemPricesOptions struct {
	TypeIDs  []int64
	SystemID int64

	// CharName identifies the caller to the provider.
	CharName string
}

// GetItemPrices fetches buy and sell prices for a batch of types.
func (c *Client) GetItemPrices(ctx context.Context, opts ItemPricesOptions) (*ItemPricesResponse, error) {
	ids := make([]string, len(opts.TypeIDs))
	for i, id := range opts.TypeIDs {
		ids[i] = strconv.FormatInt(id, 10)
	}

	query := url.Values{}
	query.Set("type_ids", strings.Join(ids, ","))
	query.Set("buysell", "a")
	if opts.SystemID > 0 {
		query.Set("solarsystem_ids", strconv.FormatInt(opts.SystemID, 10))
	}
	if opts.CharName != "" {
		query.Set("char_name", opts.CharName)
	}

	var resp ItemPricesResponse
	if err := c.getJSON(ctx, "/item_prices2.json", query, &resp); err != nil {
		return nil, fmt.Errorf("get item prices: %w", err)
	}

	return &resp, nil
}
