package pricing

import (
	"context"
	"log/slog"

	"github.com/rickgao/eve-appraisal/internal/cache"
	"github.com/rickgao/eve-appraisal/internal/model"
)

// NonMarket resolves types that cannot be traded to a zero quote.
type NonMarket struct {
	cat    Catalog
	prices *cache.Prices
}

// NewNonMarket creates a NonMarket stage. prices may be nil.
func NewNonMarket(cat Catalog, prices *cache.Prices) *NonMarket {
	return &NonMarket{cat: cat, prices: prices}
}

func (s *NonMarket) Name() string { return "non_market" }

func (s *NonMarket) Resolve(ctx context.Context, scope model.Scope, ids []int64) map[int64]model.Quote {
	found := make(map[int64]model.Quote)
	for _, id := range ids {
		if e, ok := s.cat.ByID(id); ok && !e.Market {
			found[id] = model.ZeroQuote()
		}
	}
	if s.prices != nil {
		s.prices.SetMany(ctx, scope, found)
	}
	return found
}

// Cached resolves types from the price cache.
type Cached struct {
	prices *cache.Prices
}

// NewCached creates a Cached stage.
func NewCached(prices *cache.Prices) *Cached {
	return &Cached{prices: prices}
}

func (s *Cached) Name() string { return "cache" }

func (s *Cached) Resolve(ctx context.Context, scope model.Scope, ids []int64) map[int64]model.Quote {
	if s.prices == nil {
		return nil
	}
	return s.prices.GetMany(ctx, scope, ids)
}

// Componentized prices types that have a bill of materials as the sum of
// their components. A type resolves only if every component does.
type Componentized struct {
	cat        Catalog
	components Resolver
	prices     *cache.Prices
	logger     *slog.Logger
}

// NewComponentized creates a Componentized stage. components must not
// contain a Componentized stage.
func NewComponentized(cat Catalog, components Resolver, prices *cache.Prices, logger *slog.Logger) *Componentized {
	if logger == nil {
		logger = slog.Default()
	}
	return &Componentized{
		cat:        cat,
		components: components,
		prices:     prices,
		logger:     logger,
	}
}

func (s *Componentized) Name() string { return "componentized" }

func (s *Componentized) Resolve(ctx context.Context, scope model.Scope, ids []int64) map[int64]model.Quote {
	var parents []model.CatalogEntry
	var componentIDs []int64
	for _, id := range ids {
		e, ok := s.cat.ByID(id)
		if !ok || !e.HasComponents() {
			continue
		}
		parents = append(parents, e)
		for _, c := range e.Components {
			componentIDs = append(componentIDs, c.TypeID)
		}
	}
	if len(parents) == 0 {
		return nil
	}

	componentQuotes := s.components.Resolve(ctx, scope, componentIDs)

	found := make(map[int64]model.Quote, len(parents))
	for _, parent := range parents {
		q, ok := sumComponents(parent.Components, componentQuotes)
		if !ok {
			s.logger.Debug("components incomplete",
				"type_id", parent.TypeID,
				"components", len(parent.Components),
			)
			continue
		}
		found[parent.TypeID] = q
	}

	if s.prices != nil {
		s.prices.SetMany(ctx, scope, found)
	}
	return found
}

func sumComponents(components []model.ComponentRequirement, quotes map[int64]model.Quote) (model.Quote, bool) {
	var total model.Quote
	for _, c := range components {
		q, ok := quotes[c.TypeID]
		if !ok {
			return model.Quote{}, false
		}
		total = total.AddScaled(q, float64(c.Quantity))
	}
	return total, true
}
