package pricing

import (
	"context"
	"log/slog"

	"github.com/rickgao/eve-appraisal/internal/cache"
	"github.com/rickgao/eve-appraisal/internal/model"
)

// Resolver prices some or all of the requested types.
type Resolver interface {
	// Name identifies the resolver in logs.
	Name() string

	// Resolve returns quotes for the types it could price. Types it could
	// not price are absent from the result.
	Resolve(ctx context.Context, scope model.Scope, ids []int64) map[int64]model.Quote
}

// Catalog looks up types by ID.
type Catalog interface {
	ByID(typeID int64) (model.CatalogEntry, bool)
}

// Pipeline runs stages in order over the still-unresolved types.
type Pipeline struct {
	name   string
	stages []Resolver
	logger *slog.Logger
}

// NewPipeline creates a pipeline over stages.
func NewPipeline(name string, logger *slog.Logger, stages ...Resolver) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		name:   name,
		stages: stages,
		logger: logger,
	}
}

// NewDefault builds the standard pipeline. Componentized types are priced
// through a nested pipeline of the same stages minus the componentized one.
func NewDefault(cat Catalog, prices *cache.Prices, logger *slog.Logger, providers ...Resolver) *Pipeline {
	nonMarket := NewNonMarket(cat, prices)
	cached := NewCached(prices)

	componentStages := append([]Resolver{nonMarket, cached}, providers...)
	components := NewPipeline("components", logger, componentStages...)

	stages := append([]Resolver{nonMarket, cached, NewComponentized(cat, components, prices, logger)}, providers...)
	return NewPipeline("prices", logger, stages...)
}

// NewRefresh builds a pipeline that skips cached quotes, so every market type
// is fetched again and the cache rewritten. Used to keep the cache warm.
func NewRefresh(cat Catalog, prices *cache.Prices, logger *slog.Logger, providers ...Resolver) *Pipeline {
	nonMarket := NewNonMarket(cat, prices)
	components := NewPipeline("refresh_components", logger, append([]Resolver{nonMarket}, providers...)...)

	stages := append([]Resolver{nonMarket, NewComponentized(cat, components, prices, logger)}, providers...)
	return NewPipeline("refresh", logger, stages...)
}

func (p *Pipeline) Name() string { return p.name }

// Resolve prices ids. Duplicate IDs are resolved once.
func (p *Pipeline) Resolve(ctx context.Context, scope model.Scope, ids []int64) map[int64]model.Quote {
	resolved := make(map[int64]model.Quote)
	remaining := dedupe(ids)

	for _, stage := range p.stages {
		if len(remaining) == 0 {
			break
		}

		found := stage.Resolve(ctx, scope, remaining)

		next := make([]int64, 0, len(remaining))
		for _, id := range remaining {
			if q, ok := found[id]; ok {
				resolved[id] = q
				continue
			}
			next = append(next, id)
		}

		p.logger.Debug("price stage finished",
			"pipeline", p.name,
			"stage", stage.Name(),
			"scope", scope.String(),
			"found", len(remaining)-len(next),
			"remaining", len(next),
		)
		remaining = next
	}

	return resolved
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
