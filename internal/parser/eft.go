package parser

import (
	"regexp"
	"strings"

	"github.com/rickgao/eve-appraisal/internal/model"
)

var (
	eftHeaderPattern    = regexp.MustCompile(`^\[([^,\]]+),([^\]]*)\]$`)
	eftEmptySlotPattern = regexp.MustCompile(`(?i)^\[empty .+ slot\]$`)
	eftStackPattern     = regexp.MustCompile(`(?i)^(.+?)\s+x\s*(\d[\d,.]*)$`)
)

const eftOfflineSuffix = "/offline"

// EFTParser handles fittings in EFT format:
//
//	[Rifter, My Rifter]
//	Gyrostabilizer II
//	[Empty Med slot]
//	200mm AutoCannon II, Republic Fleet EMP S
//	Hobgoblin II x5
//
// Modules are tagged fitted. Charges and stacked drones or cargo are not.
// Lines before the first header are left alone.
type EFTParser struct {
	cat Catalog
}

// NewEFTParser creates an EFTParser.
func NewEFTParser(cat Catalog) *EFTParser {
	return &EFTParser{cat: cat}
}

func (p *EFTParser) Kind() string { return KindEFT }

func (p *EFTParser) Parse(lines []string) Result {
	var res Result
	inFit := false
	stacked := false

	for _, line := range lines {
		if m := eftHeaderPattern.FindStringSubmatch(line); m != nil {
			inFit, stacked = true, false
			res.Matched++
			if e, tags, ok := resolve(p.cat, m[1]); ok {
				res.Items = append(res.Items, newItem(e, 1, tags))
			}
			continue
		}
		if !inFit {
			res.Residual = append(res.Residual, line)
			continue
		}
		if eftEmptySlotPattern.MatchString(line) {
			res.Matched++
			continue
		}

		items, stack, ok := p.parseFitLine(line)
		// The fit ends at the first foreign line, or at a module line once
		// the drone and cargo stacks have started.
		if !ok || (stacked && !stack) {
			inFit = false
			res.Residual = append(res.Residual, line)
			continue
		}
		stacked = stacked || stack
		res.Matched++
		res.Items = append(res.Items, items...)
	}
	return res
}

// parseFitLine reads a module, module with charge, or stacked item line.
// stack reports an "xN" line.
func (p *EFTParser) parseFitLine(line string) (items []model.ParsedItem, stack, ok bool) {
	line = strings.TrimSpace(line)
	if strings.HasSuffix(strings.ToLower(line), eftOfflineSuffix) {
		line = strings.TrimSpace(line[:len(line)-len(eftOfflineSuffix)])
	}

	if e, tags, ok := resolve(p.cat, line); ok {
		return []model.ParsedItem{newItem(e, 1, tags|model.TagFitted)}, false, true
	}

	if m := eftStackPattern.FindStringSubmatch(line); m != nil {
		if n, ok := ParseQuantity(m[2]); ok {
			if e, tags, ok := resolve(p.cat, m[1]); ok {
				return []model.ParsedItem{newItem(e, n, tags)}, true, true
			}
		}
	}

	module, charge, found := strings.Cut(line, ",")
	if !found {
		return nil, false, false
	}
	e, tags, ok := resolve(p.cat, module)
	if !ok {
		return nil, false, false
	}
	items = []model.ParsedItem{newItem(e, 1, tags|model.TagFitted)}
	if ce, ctags, ok := resolve(p.cat, charge); ok {
		items = append(items, newItem(ce, 1, ctags))
	}
	return items, false, true
}
