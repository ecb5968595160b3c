package parser

import (
	"regexp"
	"strings"
)

var (
	chatLinePattern = regexp.MustCompile(`^\[\s*\d{4}\.\d{2}\.\d{2}\s+\d{2}:\d{2}:\d{2}\s*\]\s*([^>]+?)\s*>\s*(.*)$`)

	chatHeaderPrefixes = []string{
		"channel id:",
		"channel name:",
		"listener:",
		"session started:",
	}
)

// ChatParser handles chat channel logs. Each message is read as a plain
// listing line, so linked items and "3x Name" style messages are found:
//
//	[ 2014.01.01 12:00:00 ] Some Pilot > 3x Hobgoblin II
//
// Messages without items are still claimed as chat.
type ChatParser struct {
	cat Catalog
}

// NewChatParser creates a ChatParser.
func NewChatParser(cat Catalog) *ChatParser {
	return &ChatParser{cat: cat}
}

func (p *ChatParser) Kind() string { return KindChat }

func (p *ChatParser) Parse(lines []string) Result {
	var res Result
	var headers []string

	for _, line := range lines {
		m := chatLinePattern.FindStringSubmatch(line)
		if m == nil {
			if isChatHeader(line) {
				headers = append(headers, line)
				continue
			}
			res.Residual = append(res.Residual, line)
			continue
		}

		res.Matched++
		if item, ok := parseListingLine(p.cat, m[2]); ok {
			res.Items = append(res.Items, item)
		}
	}

	// Log headers only belong to chat when there was chat.
	if res.Matched == 0 {
		return noMatch(lines)
	}
	res.Matched += len(headers)
	return res
}

func isChatHeader(line string) bool {
	if strings.Trim(line, "-") == "" {
		return true
	}
	lower := strings.ToLower(line)
	for _, prefix := range chatHeaderPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}
