package parser

import (
	"regexp"
	"strconv"
)

// distancePattern matches the distance column of a directional scan.
var distancePattern = regexp.MustCompile(`(?i)^(-|[\d,.\s]+\s*(m|km|au))$`)

// DScanParser handles directional scan results:
//
//	12345	Some Pilot's Rifter	Rifter	1,234 km
//	Some Pilot's Rifter	Rifter	1,234 km
//
// The type column is the item; the name column is ignored.
type DScanParser struct {
	cat Catalog
}

// NewDScanParser creates a DScanParser.
func NewDScanParser(cat Catalog) *DScanParser {
	return &DScanParser{cat: cat}
}

func (p *DScanParser) Kind() string { return KindDScan }

func (p *DScanParser) Parse(lines []string) Result {
	var res Result
	for _, line := range lines {
		typeName, ok := dscanType(splitTabs(line))
		if !ok {
			res.Residual = append(res.Residual, line)
			continue
		}

		res.Matched++
		e, tags, ok := resolve(p.cat, typeName)
		if !ok {
			res.Residual = append(res.Residual, line)
			continue
		}
		res.Items = append(res.Items, newItem(e, 1, tags))
	}
	return res
}

// dscanType returns the type column if fields have a directional scan layout.
func dscanType(fields []string) (string, bool) {
	switch len(fields) {
	case 4:
		if _, err := strconv.ParseInt(fields[0], 10, 64); err != nil {
			return "", false
		}
		return fields[2], fields[2] != ""
	case 3:
		if !distancePattern.MatchString(fields[2]) {
			return "", false
		}
		return fields[1], fields[1] != ""
	}
	return "", false
}
