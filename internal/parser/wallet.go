package parser

import "regexp"

var walletDatePattern = regexp.MustCompile(`^\d{4}\.\d{2}\.\d{2} \d{2}:\d{2}(:\d{2})?$`)

// WalletParser handles wallet transaction and journal exports:
//
//	2013.05.15 14:09	2	Tritanium	5.00 ISK	-10.00 ISK	Seller	Jita IV - Moon 4
//	2013.05.15 14:09	Market Transaction	-10.00 ISK	1,000.00 ISK	...
//
// Journal rows carry no item and are claimed without producing one.
type WalletParser struct {
	cat Catalog
}

// NewWalletParser creates a WalletParser.
func NewWalletParser(cat Catalog) *WalletParser {
	return &WalletParser{cat: cat}
}

func (p *WalletParser) Kind() string { return KindWallet }

func (p *WalletParser) Parse(lines []string) Result {
	var res Result
	for _, line := range lines {
		fields := splitTabs(line)
		if len(fields) < 3 || !walletDatePattern.MatchString(fields[0]) {
			res.Residual = append(res.Residual, line)
			continue
		}

		res.Matched++
		quantity, isTransaction := ParseQuantity(fields[1])
		if !isTransaction || len(fields) < 4 {
			// Journal entry.
			continue
		}

		e, tags, ok := resolve(p.cat, fields[2])
		if !ok {
			res.Residual = append(res.Residual, line)
			continue
		}
		res.Items = append(res.Items, newItem(e, quantity, tags))
	}
	return res
}
