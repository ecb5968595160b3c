package parser

import (
	"strings"

	"github.com/rickgao/eve-appraisal/internal/model"
)

// ContractParser handles contract item tables:
//
//	Rifter	1	Frigate	Fitted
//	Rifter Blueprint	1	Blueprint	Blueprint Copy
//	Tritanium	5,000	Mineral
type ContractParser struct {
	cat Catalog
}

// NewContractParser creates a ContractParser.
func NewContractParser(cat Catalog) *ContractParser {
	return &ContractParser{cat: cat}
}

func (p *ContractParser) Kind() string { return KindContract }

func (p *ContractParser) Parse(lines []string) Result {
	var res Result
	for _, line := range lines {
		fields := splitTabs(line)
		quantity, tags, ok := contractShape(fields)
		if !ok {
			res.Residual = append(res.Residual, line)
			continue
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

// contractShape checks the column layout and reads quantity and details.
func contractShape(fields []string) (int64, model.Tags, bool) {
	if len(fields) < 3 || len(fields) > 4 {
		return 0, 0, false
	}

	quantity, ok := ParseQuantity(fields[1])
	if !ok {
		return 0, 0, false
	}
	if fields[2] == "" {
		return 0, 0, false
	}
	if _, numeric := ParseQuantity(fields[2]); numeric {
		return 0, 0, false
	}

	var tags model.Tags
	if len(fields) == 4 {
		switch strings.ToLower(fields[3]) {
		case "":
		case "fitted":
			tags = model.TagFitted
		case "blueprint copy":
			tags = model.TagBlueprintCopy
		default:
			return 0, 0, false
		}
	}

	return quantity, tags, true
}
