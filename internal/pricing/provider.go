package pricing

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rickgao/eve-appraisal/internal/api"
	"github.com/rickgao/eve-appraisal/internal/cache"
	"github.com/rickgao/eve-appraisal/internal/model"
)

// Batch sizes accepted by the providers.
const (
	MarketStatBatchSize = 100
	ItemPricesBatchSize = 200
)

// FetchFunc prices one batch of types from a remote provider.
type FetchFunc func(ctx context.Context, scope model.Scope, ids []int64) (map[int64]model.Quote, error)

// ProviderConfig controls how a provider stage issues requests.
type ProviderConfig struct {
	BatchSize   int
	Concurrency int
	// Timeout bounds one request attempt. A batch may spend up to
	// Retries+1 attempts before it is abandoned.
	Timeout time.Duration
	Retries int
}

// BatchBudget returns the deadline applied to a whole batch, or zero when
// batches are unbounded.
func (c ProviderConfig) BatchBudget() time.Duration {
	if c.Timeout <= 0 {
		return 0
	}
	return c.Timeout * time.Duration(max(c.Retries, 0)+1)
}

// DefaultProviderConfig returns defaults for a provider with the given batch
// size.
func DefaultProviderConfig(batchSize int) ProviderConfig {
	return ProviderConfig{
		BatchSize:   batchSize,
		Concurrency: 4,
		Timeout:     30 * time.Second,
	}
}

// Provider is a stage backed by a remote price source. Batches are fetched
// in parallel; a failed batch resolves nothing and does not affect others.
type Provider struct {
	name   string
	cfg    ProviderConfig
	fetch  FetchFunc
	prices *cache.Prices
	logger *slog.Logger
}

// NewProvider creates a provider stage. prices may be nil.
func NewProvider(name string, cfg ProviderConfig, fetch FetchFunc, prices *cache.Prices, logger *slog.Logger) *Provider {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = MarketStatBatchSize
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Provider{
		name:   name,
		cfg:    cfg,
		fetch:  fetch,
		prices: prices,
		logger: logger,
	}
}

// NewMarketStat creates the marketstat provider stage.
func NewMarketStat(client *api.Client, cfg ProviderConfig, prices *cache.Prices, logger *slog.Logger) *Provider {
	if cfg.BatchSize <= 0 || cfg.BatchSize > MarketStatBatchSize {
		cfg.BatchSize = MarketStatBatchSize
	}
	fetch := func(ctx context.Context, scope model.Scope, ids []int64) (map[int64]model.Quote, error) {
		opts := api.MarketStatOptions{TypeIDs: ids}
		if scope.IsAggregate() {
			opts.RegionLimit = model.TradeHubRegions
		} else {
			opts.SystemID = scope.SystemID
		}

		resp, err := client.GetMarketStat(ctx, opts)
		if err != nil {
			return nil, err
		}
		return resp.QuotesByType(scope.IsAggregate()), nil
	}
	return NewProvider("marketstat", cfg, fetch, prices, logger)
}

// NewItemPrices creates the item prices provider stage. charName is sent as
// the caller identity when set.
func NewItemPrices(client *api.Client, cfg ProviderConfig, charName string, prices *cache.Prices, logger *slog.Logger) *Provider {
	if cfg.BatchSize <= 0 || cfg.BatchSize > ItemPricesBatchSize {
		cfg.BatchSize = ItemPricesBatchSize
	}
	fetch := func(ctx context.Context, scope model.Scope, ids []int64) (map[int64]model.Quote, error) {
		opts := api.ItemPricesOptions{TypeIDs: ids, CharName: charName}
		if !scope.IsAggregate() {
			opts.SystemID = scope.SystemID
		}

		resp, err := client.GetItemPrices(ctx, opts)
		if err != nil {
			return nil, err
		}
		return resp.QuotesByType(), nil
	}
	return NewProvider("item_prices", cfg, fetch, prices, logger)
}

func (p *Provider) Name() string { return p.name }

func (p *Provider) Resolve(ctx context.Context, scope model.Scope, ids []int64) map[int64]model.Quote {
	var (
		mu    sync.Mutex
		found = make(map[int64]model.Quote)
	)

	var g errgroup.Group
	g.SetLimit(p.cfg.Concurrency)

	for _, batch := range chunk(ids, p.cfg.BatchSize) {
		g.Go(func() error {
			quotes := p.fetchBatch(ctx, scope, batch)
			if len(quotes) == 0 {
				return nil
			}

			if p.prices != nil {
				p.prices.SetMany(ctx, scope, quotes)
			}

			mu.Lock()
			for id, q := range quotes {
				found[id] = q
			}
			mu.Unlock()
			return nil
		})
	}

	// Batches never return errors.
	_ = g.Wait()

	return found
}

// fetchBatch fetches one batch under the batch budget and keeps only the
// requested types.
func (p *Provider) fetchBatch(ctx context.Context, scope model.Scope, batch []int64) map[int64]model.Quote {
	if budget := p.cfg.BatchBudget(); budget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, budget)
		defer cancel()
	}

	start := time.Now()
	quotes, err := p.fetch(ctx, scope, batch)
	if err != nil {
		p.logger.Warn("price batch failed",
			"provider", p.name,
			"scope", scope.String(),
			"size", len(batch),
			"error", err,
		)
		return nil
	}

	requested := make(map[int64]struct{}, len(batch))
	for _, id := range batch {
		requested[id] = struct{}{}
	}
	for id := range quotes {
		if _, ok := requested[id]; !ok {
			delete(quotes, id)
		}
	}

	p.logger.Debug("price batch fetched",
		"provider", p.name,
		"size", len(batch),
		"found", len(quotes),
		"duration", time.Since(start),
	)
	return quotes
}

func chunk(ids []int64, size int) [][]int64 {
	var batches [][]int64
	for len(ids) > 0 {
		n := min(size, len(ids))
		batches = append(batches, ids[:n:n])
		ids = ids[n:]
	}
	return batches
}
