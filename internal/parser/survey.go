package parser

// SurveyScannerParser handles survey scanner results:
//
//	Pyerite	12,345	15 km
//
// Only rows naming a known ore are claimed, so directional scans with a
// numeric name column still fall through.
type SurveyScannerParser struct {
	cat Catalog
}

// NewSurveyScannerParser creates a SurveyScannerParser.
func NewSurveyScannerParser(cat Catalog) *SurveyScannerParser {
	return &SurveyScannerParser{cat: cat}
}

func (p *SurveyScannerParser) Kind() string { return KindSurveyScanner }

func (p *SurveyScannerParser) Parse(lines []string) Result {
	var res Result
	for _, line := range lines {
		fields := splitTabs(line)
		if len(fields) != 3 || !distancePattern.MatchString(fields[2]) {
			res.Residual = append(res.Residual, line)
			continue
		}
		quantity, ok := ParseQuantity(fields[1])
		if !ok {
			res.Residual = append(res.Residual, line)
			continue
		}
		e, tags, ok := resolve(p.cat, fields[0])
		if !ok {
			res.Residual = append(res.Residual, line)
			continue
		}

		res.Matched++
		res.Items = append(res.Items, newItem(e, quantity, tags))
	}
	return res
}
