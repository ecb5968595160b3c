package config

import (
	"time"

	"github.com/rickgao/eve-appraisal/internal/model"
)

// Default values for optional configuration fields.
const (
	DefaultCatalogPath      = "data/types.json"
	DefaultMarketStatURL    = "https://api.eve-central.com/api"
	DefaultItemPricesURL    = "https://api.eve-marketdata.com/api"
	DefaultProviderTimeout  = 30 * time.Second
	DefaultMaxRetries       = 3
	DefaultMarketStatBatch  = 100
	DefaultItemPricesBatch  = 200
	DefaultProviderParallel = 4
	DefaultCacheBackend     = CacheMemory
	DefaultCacheTTL         = 10 * time.Hour
	DefaultDBPort           = 5432
	DefaultDBSSLMode        = "prefer"
	DefaultMaxConns         = 10
	DefaultMinConns         = 2
	DefaultMaxIterations    = 10
	DefaultWarmInterval     = 30 * time.Minute
	DefaultWarmConcurrency  = 2
	DefaultWarmTimeout      = 2 * time.Minute
	DefaultHealthPort       = 8080
	DefaultHealthPath       = "/health"
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
)

// DefaultMarket is Jita.
const DefaultMarket int64 = 30000142

func (c *Config) applyDefaults() {
	if c.Catalog.Path == "" {
		c.Catalog.Path = DefaultCatalogPath
	}

	// Markets defaults
	if c.Market.Default == 0 {
		c.Market.Default = DefaultMarket
	}
	if len(c.Markets) == 0 {
		c.Markets = make([]int64, 0, len(model.Markets))
		for _, m := range model.Markets {
			c.Markets = append(c.Markets, m.SystemID)
		}
	}

	// Provider defaults
	if c.Providers.MarketStat.BaseURL == "" {
		c.Providers.MarketStat.BaseURL = DefaultMarketStatURL
	}
	if c.Providers.MarketStat.BatchSize == 0 {
		c.Providers.MarketStat.BatchSize = DefaultMarketStatBatch
	}
	applyProviderDefaults(&c.Providers.MarketStat)
	if c.Providers.ItemPrices.BaseURL == "" {
		c.Providers.ItemPrices.BaseURL = DefaultItemPricesURL
	}
	if c.Providers.ItemPrices.BatchSize == 0 {
		c.Providers.ItemPrices.BatchSize = DefaultItemPricesBatch
	}
	applyProviderDefaults(&c.Providers.ItemPrices)

	// Cache defaults
	if c.Cache.Backend == "" {
		c.Cache.Backend = DefaultCacheBackend
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = DefaultCacheTTL
	}
	applyDBDefaults(&c.Cache.Postgres)

	if c.Parser.MaxIterations == 0 {
		c.Parser.MaxIterations = DefaultMaxIterations
	}

	// Warmer defaults
	if c.Warmer.Interval == 0 {
		c.Warmer.Interval = DefaultWarmInterval
	}
	if len(c.Warmer.Markets) == 0 {
		c.Warmer.Markets = []int64{c.Market.Default}
	}
	if c.Warmer.Concurrency == 0 {
		c.Warmer.Concurrency = DefaultWarmConcurrency
	}
	if c.Warmer.Timeout == 0 {
		c.Warmer.Timeout = DefaultWarmTimeout
	}

	if c.Health.Port == 0 {
		c.Health.Port = DefaultHealthPort
	}
	if c.Health.Path == "" {
		c.Health.Path = DefaultHealthPath
	}

	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
}

func applyProviderDefaults(p *ProviderConfig) {
	if p.Timeout == 0 {
		p.Timeout = DefaultProviderTimeout
	}
	if p.MaxRetries == 0 {
		p.MaxRetries = DefaultMaxRetries
	}
	if p.Concurrency == 0 {
		p.Concurrency = DefaultProviderParallel
	}
}

func applyDBDefaults(db *DBConfig) {
	if db.Port == 0 {
		db.Port = DefaultDBPort
	}
	if db.SSLMode == "" {
		db.SSLMode = DefaultDBSSLMode
	}
	if db.MaxConns == 0 {
		db.MaxConns = DefaultMaxConns
	}
	if db.MinConns == 0 {
		db.MinConns = DefaultMinConns
	}
}
