package config

import "time"

// Config is the configuration shared by the appraise and warmer binaries.
type Config struct {
	Catalog   CatalogConfig   `yaml:"catalog"`
	Market    MarketConfig    `yaml:"market"`
	Markets   []int64         `yaml:"markets"`
	Providers ProvidersConfig `yaml:"providers"`
	Cache     CacheConfig     `yaml:"cache"`
	Parser    ParserConfig    `yaml:"parser"`
	Warmer    WarmerConfig    `yaml:"warmer"`
	Health    HealthConfig    `yaml:"health"`
	Log       LogConfig       `yaml:"log"`
}

// CatalogConfig locates the type catalog dataset.
type CatalogConfig struct {
	Path string `yaml:"path"`
}

// MarketConfig holds the scope used when the caller names none.
type MarketConfig struct {
	Default int64 `yaml:"default"` // system ID, -1 for trade hub regions
}

// ProvidersConfig configures both remote price sources.
type ProvidersConfig struct {
	UserAgent  string         `yaml:"user_agent"` // empty selects version.UserAgent()
	MarketStat ProviderConfig `yaml:"marketstat"`
	ItemPrices ProviderConfig `yaml:"itemprices"`
}

// ProviderConfig configures one remote price source.
type ProviderConfig struct {
	Enabled     *bool         `yaml:"enabled"`
	BaseURL     string        `yaml:"base_url"`
	Timeout     time.Duration `yaml:"timeout"`
	MaxRetries  int           `yaml:"max_retries"`
	BatchSize   int           `yaml:"batch_size"`
	Concurrency int           `yaml:"concurrency"`
	RateLimit   float64       `yaml:"rate_limit"` // requests per second, 0 = unlimited
	CharName    string        `yaml:"char_name"`
}

// IsEnabled reports whether the provider takes part in pricing. Providers
// are enabled unless explicitly turned off.
func (p ProviderConfig) IsEnabled() bool {
	return p.Enabled == nil || *p.Enabled
}

// Cache backends.
const (
	CacheMemory   = "memory"
	CachePostgres = "postgres"
)

// CacheConfig selects and configures the price cache.
type CacheConfig struct {
	Backend  string        `yaml:"backend"`
	TTL      time.Duration `yaml:"ttl"`
	Postgres DBConfig      `yaml:"postgres"`
}

// DBConfig holds database connection settings.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// ParserConfig tunes the parse dispatcher.
type ParserConfig struct {
	MaxIterations int `yaml:"max_iterations"`
}

// WarmerConfig configures the background cache warmer.
type WarmerConfig struct {
	Interval    time.Duration `yaml:"interval"`
	TypeIDs     []int64       `yaml:"type_ids"`
	Markets     []int64       `yaml:"markets"`
	Concurrency int           `yaml:"concurrency"`
	Timeout     time.Duration `yaml:"timeout"`
}

// HealthConfig configures the health endpoint.
type HealthConfig struct {
	Port int    `yaml:"port"`
	Path string `yaml:"path"`
}

// LogConfig configures the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}
