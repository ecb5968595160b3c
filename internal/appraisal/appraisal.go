package appraisal

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/rickgao/eve-appraisal/internal/model"
	"github.com/rickgao/eve-appraisal/internal/parser"
	"github.com/rickgao/eve-appraisal/internal/pricing"
)

// ErrUnknownMarket is returned for scopes outside model.Markets.
var ErrUnknownMarket = errors.New("unknown market")

// Parser parses a paste.
type Parser interface {
	Parse(raw string) (*parser.Parsed, error)
}

// Appraiser produces appraisals.
type Appraiser struct {
	cat    pricing.Catalog
	parser Parser
	prices pricing.Resolver
	logger *slog.Logger

	now   func() time.Time
	newID func() uuid.UUID
}

// Option configures an Appraiser.
type Option func(*Appraiser)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Appraiser) {
		a.logger = logger
	}
}

// WithClock sets the time source for Appraisal.Created.
func WithClock(now func() time.Time) Option {
	return func(a *Appraiser) {
		a.now = now
	}
}

// New creates an Appraiser.
func New(cat pricing.Catalog, p Parser, prices pricing.Resolver, opts ...Option) *Appraiser {
	a := &Appraiser{
		cat:    cat,
		parser: p,
		prices: prices,
		now:    time.Now,
		newID:  uuid.New,
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.logger == nil {
		a.logger = slog.Default()
	}

	return a
}

// Appraise parses raw and prices it in the given market. It returns
// parser.ErrUnparsable when nothing in raw was recognized.
func (a *Appraiser) Appraise(ctx context.Context, raw string, market model.Scope) (*model.Appraisal, error) {
	scope, ok := model.LookupScope(market.SystemID)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMarket, market.SystemID)
	}

	parsed, err := a.parser.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	var ids []int64
	for _, item := range parsed.Items {
		if !item.Tags.Has(model.TagBlueprintCopy) {
			ids = append(ids, item.TypeID)
		}
	}
	quotes := a.prices.Resolve(ctx, scope, ids)

	fitted := fittedCounts(parsed.Passes)

	appraisal := &model.Appraisal{
		ID:           a.newID(),
		Created:      a.now().UTC(),
		Raw:          raw,
		Kind:         parsed.Kind,
		Passes:       parsed.Passes,
		Unrecognized: parsed.Unrecognized,
		Prices:       quotes,
		Market:       scope,
		Items:        make([]model.LineItem, 0, len(parsed.Items)),
	}

	for _, item := range parsed.Items {
		li := a.lineItem(item, quotes)
		li.Fitted = fitted[parser.KeyOf(item)]

		if item.Tags.Has(model.TagBlueprintCopy) {
			appraisal.BlueprintCopies += int(item.Quantity)
		}

		appraisal.Totals.Sell += li.Totals.Sell
		appraisal.Totals.Buy += li.Totals.Buy
		appraisal.Totals.All += li.Totals.All
		appraisal.Totals.Volume += li.Totals.Volume
		appraisal.Items = append(appraisal.Items, li)
	}

	sortItems(appraisal.Items)

	a.logger.Info("appraisal created",
		"id", appraisal.ID,
		"kind", appraisal.Kind,
		"market", scope.String(),
		"items", len(appraisal.Items),
		"unrecognized", len(appraisal.Unrecognized),
		"sell", appraisal.Totals.Sell,
		"buy", appraisal.Totals.Buy,
	)

	return appraisal, nil
}

func (a *Appraiser) lineItem(item model.ParsedItem, quotes map[int64]model.Quote) model.LineItem {
	li := model.LineItem{
		TypeID:   item.TypeID,
		Name:     item.Name,
		Quantity: item.Quantity,
		Tags:     item.Tags,
	}

	if e, ok := a.cat.ByID(item.TypeID); ok {
		li.GroupID = e.GroupID
		li.Market = e.Market
		li.Volume = e.Volume
	}

	n := float64(item.Quantity)
	li.Totals.Volume = li.Volume * n

	if item.Tags.Has(model.TagBlueprintCopy) {
		li.Priced = true
		li.Quote = model.ZeroQuote()
		return li
	}

	q, ok := quotes[item.TypeID]
	if !ok {
		return li
	}

	li.Priced = true
	li.Quote = q
	li.Totals.Sell = q.Sell.Price * n
	li.Totals.Buy = q.Buy.Price * n
	li.Totals.All = q.All.Price * n
	return li
}

// fittedCounts sums, per merged item, the quantity parsed with the fitted tag.
func fittedCounts(passes []model.Pass) map[parser.ItemKey]int64 {
	counts := make(map[parser.ItemKey]int64)
	for _, pass := range passes {
		for _, item := range pass.Items {
			if item.Tags.Has(model.TagFitted) {
				counts[parser.KeyOf(item)] += item.Quantity
			}
		}
	}
	return counts
}

// sortItems orders line items by value, highest first, then by name.
func sortItems(items []model.LineItem) {
	slices.SortStableFunc(items, func(x, y model.LineItem) int {
		if c := cmp.Compare(y.RepresentativeValue(), x.RepresentativeValue()); c != 0 {
			return c
		}
		return cmp.Compare(x.Name, y.Name)
	})
}
