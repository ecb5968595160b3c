package parser

import (
	"strings"
	"unicode"

	"github.com/rickgao/eve-appraisal/internal/model"
)

// ListingParser handles plain item lists such as cargo scans:
//
//	Cargo Scanner II
//	2 Cargo Scanner II
//	2x Cargo Scanner II
//	Hornet x5
type ListingParser struct {
	cat Catalog
}

// NewListingParser creates a ListingParser.
func NewListingParser(cat Catalog) *ListingParser {
	return &ListingParser{cat: cat}
}

func (p *ListingParser) Kind() string { return KindListing }

func (p *ListingParser) Parse(lines []string) Result {
	var res Result
	for _, line := range lines {
		item, ok := parseListingLine(p.cat, line)
		if !ok {
			res.Residual = append(res.Residual, line)
			continue
		}
		res.Items = append(res.Items, item)
		res.Matched++
	}
	return res
}

// parseListingLine reads "name", "N name", "Nx name" or "name xN".
func parseListingLine(cat Catalog, line string) (model.ParsedItem, bool) {
	line = strings.TrimSpace(line)
	if strings.ContainsRune(line, '\t') {
		return model.ParsedItem{}, false
	}

	if e, tags, ok := resolve(cat, line); ok {
		return newItem(e, 1, tags), true
	}

	// Leading quantity.
	if i := strings.IndexFunc(line, unicode.IsSpace); i > 0 {
		if n, ok := ParseQuantity(line[:i]); ok {
			if e, tags, ok := resolve(cat, line[i+1:]); ok {
				return newItem(e, n, tags), true
			}
		}
	}

	// Trailing multiplier.
	if i := strings.LastIndex(strings.ToLower(line), " x"); i > 0 {
		if n, ok := ParseQuantity(line[i+2:]); ok {
			if e, tags, ok := resolve(cat, line[:i]); ok {
				return newItem(e, n, tags), true
			}
		}
	}

	return model.ParsedItem{}, false
}
