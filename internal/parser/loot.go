package parser

import "regexp"

var lootPattern = regexp.MustCompile(`(?i)^\d{1,2}:\d{2}(?::\d{2})?\s+(.+?)\s+has looted\s+([\d,.']+)\s*x\s+(.+)$`)

// LootHistoryParser handles fleet loot history:
//
//	12:00:00 Some Pilot has looted 5 x Tritanium
type LootHistoryParser struct {
	cat Catalog
}

// NewLootHistoryParser creates a LootHistoryParser.
func NewLootHistoryParser(cat Catalog) *LootHistoryParser {
	return &LootHistoryParser{cat: cat}
}

func (p *LootHistoryParser) Kind() string { return KindLootHistory }

func (p *LootHistoryParser) Parse(lines []string) Result {
	var res Result
	for _, line := range lines {
		m := lootPattern.FindStringSubmatch(line)
		if m == nil {
			res.Residual = append(res.Residual, line)
			continue
		}
		quantity, ok := ParseQuantity(m[2])
		if !ok {
			res.Residual = append(res.Residual, line)
			continue
		}

		res.Matched++
		e, tags, ok := resolve(p.cat, m[3])
		if !ok {
			res.Residual = append(res.Residual, line)
			continue
		}
		res.Items = append(res.Items, newItem(e, quantity, tags))
	}
	return res
}
