package parser

import (
	"strings"

	"github.com/rickgao/eve-appraisal/internal/model"
)

type slot int

const (
	slotIgnore slot = iota
	slotName
	slotQuantity
)

// heuristicTemplates are column layouts tried in order against each line's
// tokens.
var heuristicTemplates = [][]slot{
	{slotName, slotQuantity},
	{slotIgnore, slotName, slotIgnore, slotQuantity},
	{slotQuantity, slotIgnore, slotName},
	{slotQuantity, slotName},
	{slotIgnore, slotName},
	{slotName},
}

// HeuristicParser is the parser of last resort. Every line is tokenized on
// its own, so a paste mixing delimiters is fine. Names are validated against
// the catalog instead of a grammar.
type HeuristicParser struct {
	cat Catalog
}

// NewHeuristicParser creates a HeuristicParser.
func NewHeuristicParser(cat Catalog) *HeuristicParser {
	return &HeuristicParser{cat: cat}
}

func (p *HeuristicParser) Kind() string { return KindHeuristic }

func (p *HeuristicParser) Parse(lines []string) Result {
	var res Result
	for _, line := range lines {
		item, ok := p.parseLine(line)
		if !ok {
			res.Residual = append(res.Residual, line)
			continue
		}
		res.Matched++
		res.Items = append(res.Items, item)
	}
	return res
}

func (p *HeuristicParser) parseLine(line string) (model.ParsedItem, bool) {
	tokens := heuristicTokens(line)

	for _, tmpl := range heuristicTemplates {
		if item, ok := p.applyTemplate(tmpl, tokens); ok {
			return item, true
		}
	}

	// Grow the name one word at a time.
	words := strings.Fields(line)
	for i := range words {
		words[i] = strings.Trim(words[i], ",")
	}
	for n := 1; n <= len(words); n++ {
		if e, tags, ok := resolve(p.cat, strings.Join(words[:n], " ")); ok {
			return newItem(e, 1, tags), true
		}
	}

	return model.ParsedItem{}, false
}

func (p *HeuristicParser) applyTemplate(tmpl []slot, tokens []string) (model.ParsedItem, bool) {
	if len(tmpl) > len(tokens) {
		return model.ParsedItem{}, false
	}

	var (
		entry    model.CatalogEntry
		tags     model.Tags
		named    bool
		quantity int64 = 1
	)
	for i, s := range tmpl {
		switch s {
		case slotName:
			e, t, ok := resolve(p.cat, tokens[i])
			if !ok {
				return model.ParsedItem{}, false
			}
			entry, tags, named = e, t, true
		case slotQuantity:
			n, ok := ParseQuantity(tokens[i])
			if !ok {
				return model.ParsedItem{}, false
			}
			quantity = n
		}
	}
	if !named {
		return model.ParsedItem{}, false
	}
	return newItem(entry, quantity, tags), true
}

// heuristicTokens splits on tabs, then on runs of two or more spaces, then
// on single spaces, stopping at the first split that yields several tokens.
func heuristicTokens(line string) []string {
	parts := strings.Split(line, "\t")
	for i := range parts {
		parts[i] = strings.Trim(parts[i], ", ")
	}
	if len(parts) > 1 {
		return parts
	}

	parts = nonEmpty(strings.Split(line, "  "), ",\t ")
	if len(parts) > 1 {
		return parts
	}

	return nonEmpty(strings.Split(line, " "), ",")
}

func nonEmpty(parts []string, cutset string) []string {
	out := parts[:0]
	for _, part := range parts {
		part = strings.Trim(part, cutset)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
