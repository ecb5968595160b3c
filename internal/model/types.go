package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// -----------------------------------------------------------------------------
// Catalog Types
// -----------------------------------------------------------------------------

// CatalogEntry describes one item type from the static data export.
type CatalogEntry struct {
	TypeID     int64                  `json:"typeID"`
	GroupID    int64                  `json:"groupID"`
	Name       string                 `json:"typeName"`
	Volume     float64                `json:"volume"`     // m3 per unit, 0 when absent
	Market     bool                   `json:"market"`     // false for items that never trade
	Components []ComponentRequirement `json:"components"` // set only for componentized hulls
}

// ComponentRequirement is one line of an item's bill of materials.
type ComponentRequirement struct {
	TypeID   int64 `json:"materialTypeID"`
	Quantity int64 `json:"quantity"`
}

// HasComponents reports whether the entry is valued through its bill of materials.
func (e CatalogEntry) HasComponents() bool {
	return len(e.Components) > 0
}

// -----------------------------------------------------------------------------
// Parse Types
// -----------------------------------------------------------------------------

// Tags is the set of markers a parser attaches to an item.
type Tags uint8

const (
	TagFitted Tags = 1 << iota
	TagDropped
	TagDestroyed
	TagBlueprintCopy
)

var tagNames = []struct {
	tag  Tags
	name string
}{
	{TagFitted, "fitted"},
	{TagDropped, "dropped"},
	{TagDestroyed, "destroyed"},
	{TagBlueprintCopy, "blueprint_copy"},
}

// Has reports whether every tag in t2 is set.
func (t Tags) Has(t2 Tags) bool {
	return t&t2 == t2
}

// Names returns the tag names in a fixed order.
func (t Tags) Names() []string {
	names := make([]string, 0, len(tagNames))
	for _, tn := range tagNames {
		if t.Has(tn.tag) {
			names = append(names, tn.name)
		}
	}
	return names
}

func (t Tags) String() string {
	return strings.Join(t.Names(), ",")
}

// MarshalJSON encodes the set as a list of names.
func (t Tags) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Names())
}

// UnmarshalJSON decodes a list of tag names.
func (t *Tags) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}

	var out Tags
	for _, name := range names {
		found := false
		for _, tn := range tagNames {
			if tn.name == name {
				out |= tn.tag
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("unknown tag %q", name)
		}
	}
	*t = out
	return nil
}

// ParsedItem is one recognized (type, quantity, tags) record.
type ParsedItem struct {
	TypeID   int64  `json:"typeID"`
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
	Tags     Tags   `json:"tags"`
}

// Pass records the items one parser extracted during one dispatcher iteration.
type Pass struct {
	Kind  string       `json:"kind"`
	Items []ParsedItem `json:"items"`
}
