package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/rickgao/eve-appraisal/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// ErrEmpty is returned when a dataset contains no entries.
var ErrEmpty = errors.New("catalog is empty")

// Catalog is an immutable name and ID index over catalog entries.
// It is safe for concurrent use.
type Catalog struct {
	byName map[string]*model.CatalogEntry
	byID   map[int64]*model.CatalogEntry
}

// New builds a catalog from a copy of entries. When two entries normalize to
// the same name, the first one wins.
func New(entries []model.CatalogEntry) *Catalog {
	entries = slices.Clone(entries)
	for i := range entries {
		entries[i].Components = slices.Clone(entries[i].Components)
	}

	c := &Catalog{
		byName: make(map[string]*model.CatalogEntry, len(entries)),
		byID:   make(map[int64]*model.CatalogEntry, len(entries)),
	}

	for i := range entries {
		e := &entries[i]
		if _, ok := c.byID[e.TypeID]; !ok {
			c.byID[e.TypeID] = e
		}
		key := Normalize(e.Name)
		if key == "" {
			continue
		}
		if _, ok := c.byName[key]; !ok {
			c.byName[key] = e
		}
	}

	return c
}

// Load reads a JSON array of entries from path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var entries []model.CatalogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse catalog json: %w", err)
	}
	if len(entries) == 0 {
		return nil, ErrEmpty
	}

	for i, e := range entries {
		if e.Volume < 0 {
			return nil, fmt.Errorf("entry %d (%s): negative volume %v", i, e.Name, e.Volume)
		}
	}

	return New(entries), nil
}

// Lookup finds an entry by name.
func (c *Catalog) Lookup(name string) (model.CatalogEntry, bool) {
	key := Normalize(name)
	if key == "" {
		return model.CatalogEntry{}, false
	}
	e, ok := c.byName[key]
	if !ok {
		return model.CatalogEntry{}, false
	}
	return clone(e), true
}

// ByID finds an entry by type ID.
func (c *Catalog) ByID(typeID int64) (model.CatalogEntry, bool) {
	e, ok := c.byID[typeID]
	if !ok {
		return model.CatalogEntry{}, false
	}
	return clone(e), true
}

// clone returns a copy of e that shares no memory with the catalog.
func clone(e *model.CatalogEntry) model.CatalogEntry {
	out := *e
	out.Components = slices.Clone(e.Components)
	return out
}

// Len returns the number of entries indexed by ID.
func (c *Catalog) Len() int {
	return len(c.byID)
}

// Normalize returns the lookup key for a name.
func Normalize(name string) string {
	// A Caser keeps state between calls, so each call gets its own.
	s := cases.Fold().String(norm.NFC.String(name))
	s = strings.TrimSpace(s)

	for {
		prev := s
		s = strings.TrimSpace(strings.TrimSuffix(s, "*"))
		s = strings.TrimSpace(strings.TrimSuffix(s, "(original)"))
		if s == prev {
			return s
		}
	}
}
