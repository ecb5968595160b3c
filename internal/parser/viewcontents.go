package parser

import (
	"strings"

	"github.com/rickgao/eve-appraisal/internal/model"
)

// ViewContentsParser handles container and ship "view contents" windows:
//
//	Tritanium	Mineral	Cargo Hold	100
//	Gyrostabilizer II	Gyrostabilizer	Low Slot	1
//	Hobgoblin II	Combat Drone	5
//
// Items in a slot location are fitted.
type ViewContentsParser struct {
	cat Catalog
}

// NewViewContentsParser creates a ViewContentsParser.
func NewViewContentsParser(cat Catalog) *ViewContentsParser {
	return &ViewContentsParser{cat: cat}
}

func (p *ViewContentsParser) Kind() string { return KindViewContents }

func (p *ViewContentsParser) Parse(lines []string) Result {
	var res Result
	for _, line := range lines {
		fields := splitTabs(line)
		if len(fields) < 3 || len(fields) > 4 || fields[1] == "" {
			res.Residual = append(res.Residual, line)
			continue
		}
		if _, numeric := ParseQuantity(fields[1]); numeric {
			res.Residual = append(res.Residual, line)
			continue
		}
		quantity, ok := ParseQuantity(fields[len(fields)-1])
		if !ok {
			res.Residual = append(res.Residual, line)
			continue
		}

		var tags model.Tags
		if len(fields) == 4 && strings.HasSuffix(strings.ToLower(fields[2]), "slot") {
			tags = model.TagFitted
		}

		res.Matched++
		e, nameTags, ok := resolve(p.cat, fields[0])
		if !ok {
			res.Residual = append(res.Residual, line)
			continue
		}
		res.Items = append(res.Items, newItem(e, quantity, tags|nameTags))
	}
	return res
}
