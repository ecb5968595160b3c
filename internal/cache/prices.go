package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/rickgao/eve-appraisal/internal/model"
)

// DefaultTTL is how long a resolved quote stays valid.
const DefaultTTL = 10 * time.Hour

// Prices caches quotes per scope and type.
type Prices struct {
	store  Store
	ttl    time.Duration
	logger *slog.Logger
}

// NewPrices wraps store. A non-positive ttl selects DefaultTTL.
func NewPrices(store Store, ttl time.Duration, logger *slog.Logger) *Prices {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Prices{
		store:  store,
		ttl:    ttl,
		logger: logger,
	}
}

// TTL returns the expiry applied to writes.
func (p *Prices) TTL() time.Duration {
	return p.ttl
}

// Get returns the cached quote for typeID in scope.
func (p *Prices) Get(ctx context.Context, scope model.Scope, typeID int64) (model.Quote, bool) {
	key := scope.CacheKey(typeID)

	raw, ok, err := p.store.Get(ctx, key)
	if err != nil {
		p.logger.Warn("cache get failed", "key", key, "error", err)
		return model.Quote{}, false
	}
	if !ok {
		return model.Quote{}, false
	}

	var q model.Quote
	if err := json.Unmarshal(raw, &q); err != nil {
		p.logger.Warn("cache entry corrupt", "key", key, "error", err)
		return model.Quote{}, false
	}
	return q, true
}

// GetMany returns the cached quotes found for ids.
func (p *Prices) GetMany(ctx context.Context, scope model.Scope, ids []int64) map[int64]model.Quote {
	found := make(map[int64]model.Quote)
	for _, id := range ids {
		if q, ok := p.Get(ctx, scope, id); ok {
			found[id] = q
		}
	}
	return found
}

// Set caches one quote.
func (p *Prices) Set(ctx context.Context, scope model.Scope, typeID int64, q model.Quote) {
	p.SetMany(ctx, scope, map[int64]model.Quote{typeID: q})
}

// SetMany caches quotes, in one round trip when the store supports it.
func (p *Prices) SetMany(ctx context.Context, scope model.Scope, quotes map[int64]model.Quote) {
	if len(quotes) == 0 {
		return
	}

	entries := make(map[string][]byte, len(quotes))
	for id, q := range quotes {
		raw, err := json.Marshal(q)
		if err != nil {
			p.logger.Warn("cache encode failed", "type_id", id, "error", err)
			continue
		}
		entries[scope.CacheKey(id)] = raw
	}

	if ms, ok := p.store.(MultiSetter); ok {
		if err := ms.SetMulti(ctx, entries, p.ttl); err != nil {
			p.logger.Warn("cache set failed", "entries", len(entries), "error", err)
		}
		return
	}

	for key, raw := range entries {
		if err := p.store.Set(ctx, key, raw, p.ttl); err != nil {
			p.logger.Warn("cache set failed", "key", key, "error", err)
		}
	}
}

// Purge drops expired entries when the store supports it.
func (p *Prices) Purge(ctx context.Context) (int64, error) {
	pg, ok := p.store.(Purger)
	if !ok {
		return 0, nil
	}
	return pg.Purge(ctx)
}
