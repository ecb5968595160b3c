package parser

import (
	"strings"

	"github.com/rickgao/eve-appraisal/internal/model"
)

// fittingSlots maps the location column of a fitting window export to
// whether items there are fitted.
var fittingSlots = map[string]bool{
	"high power":   true,
	"medium power": true,
	"low power":    true,
	"rig slot":     true,
	"sub system":   true,
	"subsystem":    true,
	"drone bay":    false,
	"fighter bay":  false,
	"cargo hold":   false,
	"charge":       false,
}

// FittingParser handles the fitting window's item export:
//
//	Gyrostabilizer II	1	Low power
//	Hobgoblin II	5	Drone Bay
type FittingParser struct {
	cat Catalog
}

// NewFittingParser creates a FittingParser.
func NewFittingParser(cat Catalog) *FittingParser {
	return &FittingParser{cat: cat}
}

func (p *FittingParser) Kind() string { return KindFitting }

func (p *FittingParser) Parse(lines []string) Result {
	var res Result
	for _, line := range lines {
		fields := splitTabs(line)
		if len(fields) != 3 {
			res.Residual = append(res.Residual, line)
			continue
		}
		fitted, known := fittingSlots[strings.ToLower(fields[2])]
		if !known {
			res.Residual = append(res.Residual, line)
			continue
		}
		quantity, ok := ParseQuantity(fields[1])
		if !ok {
			res.Residual = append(res.Residual, line)
			continue
		}

		res.Matched++
		e, tags, ok := resolve(p.cat, fields[0])
		if !ok {
			res.Residual = append(res.Residual, line)
			continue
		}
		if fitted {
			tags |= model.TagFitted
		}
		res.Items = append(res.Items, newItem(e, quantity, tags))
	}
	return res
}
