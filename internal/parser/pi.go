package parser

import "regexp"

var volumePattern = regexp.MustCompile(`(?i)^[\d,.]+\s*m3$`)

// PIParser handles planetary interaction storage and route listings:
//
//	100	Toxic Metals
//	2,000	Water	760.00 m3
//	12	Robotics	1.00 m3	12.00 m3
//
// A leading empty column is ignored. Only rows naming a known commodity are
// claimed.
type PIParser struct {
	cat Catalog
}

// NewPIParser creates a PIParser.
func NewPIParser(cat Catalog) *PIParser {
	return &PIParser{cat: cat}
}

func (p *PIParser) Kind() string { return KindPI }

func (p *PIParser) Parse(lines []string) Result {
	var res Result
	for _, line := range lines {
		fields := splitTabs(line)
		if len(fields) > 0 && fields[0] == "" {
			fields = fields[1:]
		}
		if len(fields) < 2 || len(fields) > 4 || !allVolumes(fields[2:]) {
			res.Residual = append(res.Residual, line)
			continue
		}
		quantity, ok := ParseQuantity(fields[0])
		if !ok {
			res.Residual = append(res.Residual, line)
			continue
		}
		e, tags, ok := resolve(p.cat, fields[1])
		if !ok {
			res.Residual = append(res.Residual, line)
			continue
		}

		res.Matched++
		res.Items = append(res.Items, newItem(e, quantity, tags))
	}
	return res
}

func allVolumes(fields []string) bool {
	for _, f := range fields {
		if !volumePattern.MatchString(f) {
			return false
		}
	}
	return true
}
