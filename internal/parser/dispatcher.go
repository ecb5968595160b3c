package parser

import (
	"errors"
	"log/slog"

	"github.com/rickgao/eve-appraisal/internal/model"
)

// DefaultMaxIterations bounds the number of passes over a single paste.
const DefaultMaxIterations = 10

// ErrUnparsable is returned when no parser recognized any line.
var ErrUnparsable = errors.New("no valid items found")

// Parsed is the outcome of running the dispatcher over a paste.
type Parsed struct {
	// Kind is the format that contributed the most items.
	Kind string `json:"kind"`

	Passes []model.Pass `json:"passes"`

	// Items merges every pass by type.
	Items []model.ParsedItem `json:"items"`

	// Unrecognized holds the lines no parser claimed, in input order.
	Unrecognized []string `json:"unrecognized"`
}

// Dispatcher runs format parsers over a paste until the input is consumed
// or nothing more can be recognized.
type Dispatcher struct {
	parsers       []Parser
	maxIterations int
	logger        *slog.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithParsers replaces the default parser order.
func WithParsers(parsers ...Parser) Option {
	return func(d *Dispatcher) {
		d.parsers = parsers
	}
}

// WithMaxIterations sets the pass limit.
func WithMaxIterations(n int) Option {
	return func(d *Dispatcher) {
		if n > 0 {
			d.maxIterations = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// DefaultParsers returns the standard parsers, most specific first.
func DefaultParsers(cat Catalog) []Parser {
	return []Parser{
		NewBillOfMaterialsParser(cat),
		NewKillmailParser(cat),
		NewLootHistoryParser(cat),
		NewSurveyScannerParser(cat),
		NewPIParser(cat),
		NewDScanParser(cat),
		NewChatParser(cat),
		NewEFTParser(cat),
		NewFittingParser(cat),
		NewWalletParser(cat),
		NewContractParser(cat),
		NewAssetsParser(cat),
		NewViewContentsParser(cat),
		NewListingParser(cat),
		NewHeuristicParser(cat),
	}
}

// NewDispatcher creates a Dispatcher using the default parsers.
func NewDispatcher(cat Catalog, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		parsers:       DefaultParsers(cat),
		maxIterations: DefaultMaxIterations,
	}

	for _, opt := range opts {
		opt(d)
	}

	if d.logger == nil {
		d.logger = slog.Default()
	}

	return d
}

// Parse splits raw into lines and repeatedly hands the remainder to the
// first parser that recognizes any of it.
//
// A parser that recognizes lines but yields no items is removed along with
// every parser before it for the rest of the run.
func (d *Dispatcher) Parse(raw string) (*Parsed, error) {
	lines := splitLines(raw)
	parsers := d.parsers
	var passes []model.Pass

	for i := 0; i < d.maxIterations && len(lines) > 0; i++ {
		idx, res := firstMatch(parsers, lines)
		if idx < 0 {
			break
		}

		kind := parsers[idx].Kind()
		if len(res.Items) == 0 {
			d.logger.Debug("parser matched without items",
				"kind", kind,
				"matched", res.Matched,
			)
			parsers = parsers[idx+1:]
			continue
		}

		d.logger.Debug("parse pass",
			"kind", kind,
			"items", len(res.Items),
			"residual", len(res.Residual),
		)
		passes = append(passes, model.Pass{Kind: kind, Items: res.Items})
		lines = res.Residual
	}

	parsed := &Parsed{
		Kind:         representativeKind(passes),
		Passes:       passes,
		Items:        MergeItems(passes),
		Unrecognized: lines,
	}

	if len(passes) == 0 {
		return parsed, ErrUnparsable
	}
	return parsed, nil
}

func firstMatch(parsers []Parser, lines []string) (int, Result) {
	for i, p := range parsers {
		res := p.Parse(lines)
		if res.Matched > 0 {
			return i, res
		}
	}
	return -1, Result{}
}

// representativeKind picks the kind with the most items. Ties go to the
// kind seen first.
func representativeKind(passes []model.Pass) string {
	counts := make(map[string]int)
	var order []string
	for _, pass := range passes {
		if _, ok := counts[pass.Kind]; !ok {
			order = append(order, pass.Kind)
		}
		counts[pass.Kind] += len(pass.Items)
	}

	best := ""
	for _, kind := range order {
		if best == "" || counts[kind] > counts[best] {
			best = kind
		}
	}
	return best
}
