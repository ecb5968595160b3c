package parser

import (
	"regexp"
	"strings"

	"github.com/rickgao/eve-appraisal/internal/model"
)

var (
	killmailDatePattern  = regexp.MustCompile(`^\d{4}\.\d{2}\.\d{2} \d{2}:\d{2}(:\d{2})?$`)
	killmailFieldPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z ]*:(\s.*)?$`)
)

type killmailSection int

const (
	sectionHeader killmailSection = iota
	sectionInvolved
	sectionDestroyed
	sectionDropped
)

// KillmailParser handles killmails copied from the client:
//
//	2013.07.09 23:54:00
//
//	Victim: Some Pilot
//	Destroyed: Rifter
//	...
//	Destroyed items:
//
//	Small Shield Extender I, Qty: 2
//	Warrior II, Qty: 3 (Drone Bay)
//
//	Dropped items:
//
//	Gyrostabilizer II
//
// The victim's ship is tagged destroyed. Item rows without a location are
// fitted modules.
type KillmailParser struct {
	cat Catalog
}

// NewKillmailParser creates a KillmailParser.
func NewKillmailParser(cat Catalog) *KillmailParser {
	return &KillmailParser{cat: cat}
}

func (p *KillmailParser) Kind() string { return KindKillmail }

func (p *KillmailParser) Parse(lines []string) Result {
	if !hasVictim(lines) {
		return noMatch(lines)
	}

	var res Result
	section := sectionHeader

	for _, line := range lines {
		lower := strings.ToLower(line)

		switch lower {
		case "involved parties:":
			section = sectionInvolved
			res.Matched++
			continue
		case "destroyed items:":
			section = sectionDestroyed
			res.Matched++
			continue
		case "dropped items:":
			section = sectionDropped
			res.Matched++
			continue
		}

		if killmailDatePattern.MatchString(line) {
			res.Matched++
			continue
		}

		switch section {
		case sectionHeader, sectionInvolved:
			if !killmailFieldPattern.MatchString(line) {
				res.Residual = append(res.Residual, line)
				continue
			}
			res.Matched++
			if section == sectionHeader && strings.HasPrefix(lower, "destroyed:") {
				if e, tags, ok := resolve(p.cat, line[len("destroyed:"):]); ok {
					res.Items = append(res.Items, newItem(e, 1, tags|model.TagDestroyed))
				}
			}

		case sectionDestroyed, sectionDropped:
			tag := model.TagDestroyed
			if section == sectionDropped {
				tag = model.TagDropped
			}
			item, ok := p.parseItemLine(line)
			if !ok {
				res.Residual = append(res.Residual, line)
				continue
			}
			item.Tags |= tag
			res.Matched++
			res.Items = append(res.Items, item)
		}
	}

	return res
}

// parseItemLine reads "Name[, Qty: N][ (Location)]".
func (p *KillmailParser) parseItemLine(line string) (model.ParsedItem, bool) {
	name := strings.TrimSpace(line)
	fitted := true

	if strings.HasSuffix(name, ")") {
		if i := strings.LastIndex(name, "("); i > 0 {
			location := strings.ToLower(strings.TrimSpace(name[i+1 : len(name)-1]))
			if location != "copy" {
				name = strings.TrimSpace(name[:i])
				fitted = false
			}
		}
	}

	quantity := int64(1)
	if i := strings.LastIndex(strings.ToLower(name), ", qty:"); i >= 0 {
		n, ok := ParseQuantity(name[i+len(", qty:"):])
		if !ok {
			return model.ParsedItem{}, false
		}
		quantity = n
		name = name[:i]
	}

	e, tags, ok := resolve(p.cat, name)
	if !ok {
		return model.ParsedItem{}, false
	}
	if fitted && !tags.Has(model.TagBlueprintCopy) {
		tags |= model.TagFitted
	}
	return newItem(e, quantity, tags), true
}

func hasVictim(lines []string) bool {
	for _, line := range lines {
		if strings.HasPrefix(strings.ToLower(line), "victim:") {
			return true
		}
	}
	return false
}
