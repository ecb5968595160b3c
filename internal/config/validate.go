package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rickgao/eve-appraisal/internal/model"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.Catalog.Path == "" {
		return errors.New("catalog.path is required")
	}

	for _, id := range c.Markets {
		if _, ok := model.LookupScope(id); !ok {
			return fmt.Errorf("markets: unknown market %d", id)
		}
	}
	if !slices.Contains(c.Markets, c.Market.Default) {
		return fmt.Errorf("market.default (%d) is not in markets", c.Market.Default)
	}

	if err := c.Providers.MarketStat.validate("providers.marketstat", DefaultMarketStatBatch); err != nil {
		return err
	}
	if err := c.Providers.ItemPrices.validate("providers.itemprices", DefaultItemPricesBatch); err != nil {
		return err
	}

	switch c.Cache.Backend {
	case CacheMemory:
	case CachePostgres:
		if err := c.Cache.Postgres.validate("cache.postgres"); err != nil {
			return err
		}
	default:
		return fmt.Errorf("cache.backend must be %q or %q, got %q", CacheMemory, CachePostgres, c.Cache.Backend)
	}
	if c.Cache.TTL < 0 {
		return errors.New("cache.ttl must be >= 0")
	}

	if c.Parser.MaxIterations < 1 {
		return errors.New("parser.max_iterations must be >= 1")
	}

	if c.Warmer.Interval <= 0 {
		return errors.New("warmer.interval must be > 0")
	}
	if c.Warmer.Concurrency < 1 {
		return errors.New("warmer.concurrency must be >= 1")
	}
	for _, id := range c.Warmer.Markets {
		if !slices.Contains(c.Markets, id) {
			return fmt.Errorf("warmer.markets: market %d is not in markets", id)
		}
	}

	if c.Health.Port < 1 || c.Health.Port > 65535 {
		return fmt.Errorf("health.port must be between 1 and 65535, got %d", c.Health.Port)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}

	return nil
}

func (p *ProviderConfig) validate(prefix string, maxBatch int) error {
	if !p.IsEnabled() {
		return nil
	}
	if p.BaseURL == "" {
		return fmt.Errorf("%s.base_url is required", prefix)
	}
	if p.BatchSize < 1 || p.BatchSize > maxBatch {
		return fmt.Errorf("%s.batch_size must be between 1 and %d, got %d", prefix, maxBatch, p.BatchSize)
	}
	if p.Concurrency < 1 {
		return fmt.Errorf("%s.concurrency must be >= 1", prefix)
	}
	if p.Timeout <= 0 {
		return fmt.Errorf("%s.timeout must be > 0, got %v", prefix, p.Timeout)
	}
	if p.MaxRetries < 0 {
		return fmt.Errorf("%s.max_retries must be >= 0", prefix)
	}
	if p.RateLimit < 0 {
		return fmt.Errorf("%s.rate_limit must be >= 0", prefix)
	}
	return nil
}

func (db *DBConfig) validate(prefix string) error {
	if db.Host == "" {
		return fmt.Errorf("%s.host is required", prefix)
	}
	if db.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if db.User == "" {
		return fmt.Errorf("%s.user is required", prefix)
	}
	if db.Password == "" {
		return fmt.Errorf("%s.password is required", prefix)
	}
	if db.MaxConns < 1 {
		return fmt.Errorf("%s.max_conns must be >= 1", prefix)
	}
	if db.MinConns < 0 {
		return fmt.Errorf("%s.min_conns must be >= 0", prefix)
	}
	if db.MinConns > db.MaxConns {
		return fmt.Errorf("%s.min_conns (%d) cannot exceed max_conns (%d)", prefix, db.MinConns, db.MaxConns)
	}
	return nil
}
