package parser

// AssetsParser handles tab-separated inventory and asset exports:
//
//	Tritanium	1,000	Mineral	Material		10.00 m3
//	Rifter		Frigate	Ship
//
// Stacks of one have an empty quantity column.
type AssetsParser struct {
	cat Catalog
}

// NewAssetsParser creates an AssetsParser.
func NewAssetsParser(cat Catalog) *AssetsParser {
	return &AssetsParser{cat: cat}
}

func (p *AssetsParser) Kind() string { return KindAssets }

func (p *AssetsParser) Parse(lines []string) Result {
	var res Result
	for _, line := range lines {
		fields := splitTabs(line)
		if len(fields) < 2 {
			res.Residual = append(res.Residual, line)
			continue
		}

		quantity := int64(1)
		if fields[1] != "" {
			n, ok := ParseQuantity(fields[1])
			if !ok {
				res.Residual = append(res.Residual, line)
				continue
			}
			quantity = n
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
