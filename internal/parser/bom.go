package parser

import "strings"

// BillOfMaterialsParser handles material tables copied from the industry
// window. Rows are only read after the header row:
//
//	Item	You have	Required	...
//	Tritanium	1,000	2,500
//
// The quantity is what the pilot has; when that column is blank the
// required quantity is used.
type BillOfMaterialsParser struct {
	cat Catalog
}

// NewBillOfMaterialsParser creates a BillOfMaterialsParser.
func NewBillOfMaterialsParser(cat Catalog) *BillOfMaterialsParser {
	return &BillOfMaterialsParser{cat: cat}
}

func (p *BillOfMaterialsParser) Kind() string { return KindBillOfMaterials }

func (p *BillOfMaterialsParser) Parse(lines []string) Result {
	var res Result
	inTable := false

	for _, line := range lines {
		fields := splitTabs(line)
		if isBOMHeader(fields) {
			inTable = true
			res.Matched++
			continue
		}
		if !inTable || len(fields) < 3 {
			res.Residual = append(res.Residual, line)
			continue
		}

		quantity, ok := ParseQuantity(fields[1])
		if !ok && fields[1] == "" {
			quantity, ok = ParseQuantity(fields[2])
		}
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
		res.Items = append(res.Items, newItem(e, quantity, tags))
	}
	return res
}

func isBOMHeader(fields []string) bool {
	if len(fields) < 3 {
		return false
	}
	switch strings.ToLower(fields[0]) {
	case "item", "material", "name":
	default:
		return false
	}
	return strings.ToLower(fields[1]) == "you have"
}
