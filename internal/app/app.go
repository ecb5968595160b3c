package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rickgao/eve-appraisal/internal/api"
	"github.com/rickgao/eve-appraisal/internal/appraisal"
	"github.com/rickgao/eve-appraisal/internal/cache"
	"github.com/rickgao/eve-appraisal/internal/catalog"
	"github.com/rickgao/eve-appraisal/internal/config"
	"github.com/rickgao/eve-appraisal/internal/database"
	"github.com/rickgao/eve-appraisal/internal/model"
	"github.com/rickgao/eve-appraisal/internal/parser"
	"github.com/rickgao/eve-appraisal/internal/pricing"
	"github.com/rickgao/eve-appraisal/internal/version"
)

// retryBackoff is the base delay between provider retries.
const retryBackoff = time.Second

// App holds the wired components.
type App struct {
	Catalog   *catalog.Catalog
	Store     cache.Store
	Prices    *cache.Prices
	Providers []pricing.Resolver
	Pipeline  *pricing.Pipeline
	Refresh   *pricing.Pipeline
	Appraiser *appraisal.Appraiser

	pool *pgxpool.Pool
}

// New loads the catalog from cfg.Catalog.Path and wires everything else.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	logger.Info("catalog loaded", "path", cfg.Catalog.Path, "types", cat.Len())

	return NewWithCatalog(ctx, cfg, cat, logger)
}

// NewWithCatalog wires the service around an already loaded catalog.
func NewWithCatalog(ctx context.Context, cfg *config.Config, cat *catalog.Catalog, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	a := &App{Catalog: cat}

	store, pool, err := openStore(ctx, cfg.Cache, logger)
	if err != nil {
		return nil, err
	}
	a.Store = store
	a.pool = pool
	a.Prices = cache.NewPrices(store, cfg.Cache.TTL, logger)

	a.Providers = newProviders(cfg.Providers, a.Prices, logger)

	a.Pipeline = pricing.NewDefault(cat, a.Prices, logger, a.Providers...)
	a.Refresh = pricing.NewRefresh(cat, a.Prices, logger, a.Providers...)

	dispatcher := parser.NewDispatcher(cat,
		parser.WithMaxIterations(cfg.Parser.MaxIterations),
		parser.WithLogger(logger),
	)
	a.Appraiser = appraisal.New(cat, dispatcher, a.Pipeline, appraisal.WithLogger(logger))

	return a, nil
}

// Ping checks the cache database, if any.
func (a *App) Ping(ctx context.Context) error {
	if a.pool == nil {
		return nil
	}
	return a.pool.Ping(ctx)
}

// Close releases the cache database pool.
func (a *App) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
}

func openStore(ctx context.Context, cfg config.CacheConfig, logger *slog.Logger) (cache.Store, *pgxpool.Pool, error) {
	if cfg.Backend != config.CachePostgres {
		return cache.NewMemory(), nil, nil
	}

	logger.Info("connecting to cache database",
		"host", cfg.Postgres.Host,
		"port", cfg.Postgres.Port,
		"database", cfg.Postgres.Name,
	)

	pool, err := database.Connect(ctx, cfg.Postgres)
	if err != nil {
		return nil, nil, fmt.Errorf("connect cache database: %w", err)
	}

	store := cache.NewPostgres(pool)
	if err := store.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("ensure cache schema: %w", err)
	}

	return store, pool, nil
}

func newProviders(cfg config.ProvidersConfig, prices *cache.Prices, logger *slog.Logger) []pricing.Resolver {
	var providers []pricing.Resolver

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = version.UserAgent()
	}

	if p := cfg.MarketStat; p.IsEnabled() {
		client := newClient(p, userAgent, logger)
		providers = append(providers, pricing.NewMarketStat(client, providerConfig(p), prices, logger))
	}
	if p := cfg.ItemPrices; p.IsEnabled() {
		client := newClient(p, userAgent, logger)
		providers = append(providers, pricing.NewItemPrices(client, providerConfig(p), p.CharName, prices, logger))
	}

	return providers
}

func newClient(p config.ProviderConfig, userAgent string, logger *slog.Logger) *api.Client {
	return api.NewClient(
		p.BaseURL,
		userAgent,
		api.WithLogger(logger),
		api.WithTimeout(p.Timeout),
		api.WithRetries(p.MaxRetries, retryBackoff),
		api.WithRateLimit(p.RateLimit, p.Concurrency),
	)
}

func providerConfig(p config.ProviderConfig) pricing.ProviderConfig {
	return pricing.ProviderConfig{
		BatchSize:   p.BatchSize,
		Concurrency: p.Concurrency,
		Timeout:     p.Timeout,
		Retries:     p.MaxRetries,
	}
}

// Scopes resolves configured system IDs to markets, skipping unknown ones.
func Scopes(ids []int64) []model.Scope {
	scopes := make([]model.Scope, 0, len(ids))
	for _, id := range ids {
		if s, ok := model.LookupScope(id); ok {
			scopes = append(scopes, s)
		}
	}
	return scopes
}
