package warmer

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rickgao/eve-appraisal/internal/model"
	"github.com/rickgao/eve-appraisal/internal/pricing"
)

// Purger removes expired cache entries.
type Purger interface {
	Purge(ctx context.Context) (int64, error)
}

// Config holds warmer configuration.
type Config struct {
	Interval    time.Duration // Warm interval (default: 30m)
	Concurrency int           // Markets warmed at once (default: 2)
	Timeout     time.Duration // Per-market timeout (default: 2m)
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Interval:    30 * time.Minute,
		Concurrency: 2,
		Timeout:     2 * time.Minute,
	}
}

// Stats summarizes warmer activity since start.
type Stats struct {
	Cycles   int64     `json:"cycles"`
	Resolved int64     `json:"resolved"`
	Missing  int64     `json:"missing"`
	Purged   int64     `json:"purged"`
	LastRun  time.Time `json:"last_run,omitempty"`
}

// Warmer periodically re-prices a watch list of types.
type Warmer struct {
	cfg      Config
	resolver pricing.Resolver
	purger   Purger
	markets  []model.Scope
	typeIDs  []int64
	logger   *slog.Logger

	cycles   atomic.Int64
	resolved atomic.Int64
	missing  atomic.Int64
	purged   atomic.Int64
	lastRun  atomic.Int64 // unix nanos

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a Warmer. purger may be nil.
func New(cfg Config, resolver pricing.Resolver, purger Purger, markets []model.Scope, typeIDs []int64, logger *slog.Logger) *Warmer {
	def := DefaultConfig()
	if cfg.Interval <= 0 {
		cfg.Interval = def.Interval
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = def.Concurrency
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	ids := slices.Clone(typeIDs)
	slices.Sort(ids)
	return &Warmer{
		cfg:      cfg,
		resolver: resolver,
		purger:   purger,
		markets:  markets,
		typeIDs:  slices.Compact(ids),
		logger:   logger,
	}
}

// Start begins the warm loop.
func (w *Warmer) Start(ctx context.Context) error {
	w.ctx, w.cancel = context.WithCancel(ctx)

	w.wg.Add(1)
	go w.run()

	w.logger.Info("cache warmer started",
		"interval", w.cfg.Interval,
		"concurrency", w.cfg.Concurrency,
		"markets", len(w.markets),
		"types", len(w.typeIDs),
	)

	return nil
}

// Stop gracefully shuts down the warmer.
func (w *Warmer) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.cancel()
	}

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		w.logger.Info("cache warmer stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stats returns a snapshot of the counters.
func (w *Warmer) Stats() Stats {
	s := Stats{
		Cycles:   w.cycles.Load(),
		Resolved: w.resolved.Load(),
		Missing:  w.missing.Load(),
		Purged:   w.purged.Load(),
	}
	if ns := w.lastRun.Load(); ns != 0 {
		s.LastRun = time.Unix(0, ns)
	}
	return s
}

func (w *Warmer) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.cfg.Interval)
	defer ticker.Stop()

	// Warm immediately on start.
	w.warmAll()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			w.warmAll()
		}
	}
}

// warmAll re-prices the watch list in every market, then purges.
func (w *Warmer) warmAll() {
	start := time.Now()

	if len(w.typeIDs) == 0 || len(w.markets) == 0 {
		w.logger.Debug("nothing to warm")
	} else {
		sem := make(chan struct{}, w.cfg.Concurrency)
		var wg sync.WaitGroup

		for _, scope := range w.markets {
			wg.Add(1)
			go func() {
				defer wg.Done()

				select {
				case sem <- struct{}{}:
					defer func() { <-sem }()
				case <-w.ctx.Done():
					return
				}

				w.warmMarket(scope)
			}()
		}

		wg.Wait()
	}

	w.purge()

	w.cycles.Add(1)
	w.lastRun.Store(time.Now().UnixNano())

	w.logger.Info("warm cycle complete",
		"markets", len(w.markets),
		"types", len(w.typeIDs),
		"duration", time.Since(start),
	)
}

func (w *Warmer) warmMarket(scope model.Scope) {
	ctx, cancel := context.WithTimeout(w.ctx, w.cfg.Timeout)
	defer cancel()

	found := w.resolver.Resolve(ctx, scope, w.typeIDs)

	missing := len(w.typeIDs) - len(found)
	w.resolved.Add(int64(len(found)))
	w.missing.Add(int64(missing))

	if missing > 0 {
		w.logger.Warn("types left unpriced",
			"scope", scope.String(),
			"missing", missing,
		)
	}
}

func (w *Warmer) purge() {
	if w.purger == nil || w.ctx.Err() != nil {
		return
	}

	ctx, cancel := context.WithTimeout(w.ctx, w.cfg.Timeout)
	defer cancel()

	n, err := w.purger.Purge(ctx)
	if err != nil {
		w.logger.Warn("failed to purge cache", "err", err)
		return
	}
	w.purged.Add(n)
}
