package parser

import (
	"strconv"
	"strings"
)

// ParseQuantity converts a quantity token to an integer. Thousands
// separators, decimal points used as grouping, "x" multiplier markers and
// whitespace are removed first. "1,000", "1.000", "2x" and "x2" all parse.
func ParseQuantity(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "xX")

	s = strings.Map(func(r rune) rune {
		switch r {
		case ',', '.', ' ', '\'', '\u00a0', '\u202f':
			return -1
		}
		return r
	}, s)

	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
