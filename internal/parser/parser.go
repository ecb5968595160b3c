package parser

import (
	"strings"

	"github.com/rickgao/eve-appraisal/internal/model"
)

// Format labels.
const (
	KindBillOfMaterials = "bill_of_materials"
	KindKillmail        = "killmail"
	KindLootHistory     = "loot_history"
	KindSurveyScanner   = "survey_scanner"
	KindPI              = "pi"
	KindDScan           = "dscan"
	KindChat            = "chat"
	KindEFT             = "eft"
	KindFitting         = "fitting"
	KindWallet          = "wallet"
	KindContract        = "contract"
	KindAssets          = "assets"
	KindViewContents    = "view_contents"
	KindListing         = "listing"
	KindHeuristic       = "heuristic"
)

// Catalog resolves item names.
type Catalog interface {
	Lookup(name string) (model.CatalogEntry, bool)
}

// Parser recognizes one paste format.
type Parser interface {
	// Kind is the format label recorded for passes this parser wins.
	Kind() string

	// Parse claims the lines it understands. Lines it does not claim are
	// returned in Result.Residual in their original order.
	Parse(lines []string) Result
}

// Result is the outcome of one parser over a block of lines.
type Result struct {
	// Items are the catalog-valid records extracted.
	Items []model.ParsedItem

	// Matched counts lines that fit the format's shape, whether or not
	// their names resolved.
	Matched int

	// Residual holds the unclaimed lines.
	Residual []string
}

// noMatch returns a Result that claims nothing.
func noMatch(lines []string) Result {
	return Result{Residual: lines}
}

// copySuffix marks blueprint copies in several exports.
const copySuffix = "(copy)"

// resolve looks up a name, falling back to the name without a "(Copy)"
// suffix, in which case the item is a blueprint copy.
func resolve(cat Catalog, name string) (model.CatalogEntry, model.Tags, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.CatalogEntry{}, 0, false
	}
	if e, ok := cat.Lookup(name); ok {
		return e, 0, true
	}

	lower := strings.ToLower(name)
	if strings.HasSuffix(lower, copySuffix) {
		base := lower[:len(lower)-len(copySuffix)]
		if e, ok := cat.Lookup(base); ok {
			return e, model.TagBlueprintCopy, true
		}
	}
	return model.CatalogEntry{}, 0, false
}

func newItem(e model.CatalogEntry, quantity int64, tags model.Tags) model.ParsedItem {
	return model.ParsedItem{
		TypeID:   e.TypeID,
		Name:     e.Name,
		Quantity: quantity,
		Tags:     tags,
	}
}

// splitLines breaks raw input into trimmed, non-empty lines.
func splitLines(raw string) []string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// splitTabs splits a line into trimmed tab-separated fields.
func splitTabs(line string) []string {
	fields := strings.Split(line, "\t")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}

// ItemKey identifies items that are merged together. Blueprint copies are
// kept apart from originals of the same type since they are never priced.
type ItemKey struct {
	TypeID int64
	Copy   bool
}

// KeyOf returns the merge key of an item.
func KeyOf(item model.ParsedItem) ItemKey {
	return ItemKey{TypeID: item.TypeID, Copy: item.Tags.Has(model.TagBlueprintCopy)}
}

// MergeItems sums quantities of items sharing a key across all passes. Tags
// are unioned, except TagFitted, which is kept only when every merged line
// was fitted. Output order is first appearance.
func MergeItems(passes []model.Pass) []model.ParsedItem {
	var merged []model.ParsedItem
	index := make(map[ItemKey]int)

	for _, pass := range passes {
		for _, item := range pass.Items {
			key := KeyOf(item)
			if i, ok := index[key]; ok {
				merged[i].Quantity += item.Quantity
				fitted := merged[i].Tags & item.Tags & model.TagFitted
				merged[i].Tags = (merged[i].Tags|item.Tags)&^model.TagFitted | fitted
				continue
			}
			index[key] = len(merged)
			merged = append(merged, item)
		}
	}

	return merged
}
