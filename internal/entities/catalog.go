// Package entities holds the save document and item catalog types the editor works on.
package entities

import "sort"

// CatalogKind names one of the two reference tables
type CatalogKind string

// Catalog kinds
const (
	CatalogItems CatalogKind = "items"
	CatalogRunes CatalogKind = "runes"
)

// CatalogKinds returns every catalog kind in load order
func CatalogKinds() []CatalogKind {
	return []CatalogKind{CatalogItems, CatalogRunes}
}

// CatalogEntry is one row of items.json or runes.json.
// GUID and ItemData together identify the item type inside the game;
// ItemData is carried through untouched.
type CatalogEntry struct {
	Name     string `json:"name"`
	GUID     string `json:"GUID"`
	ItemData any    `json:"ItemData"`
	Max      int    `json:"max"`
}

// Catalog is an immutable name lookup over one reference table.
// An unavailable catalog is empty and disables the slots that depend on it.
type Catalog struct {
	Kind      CatalogKind
	Available bool

	entries []*CatalogEntry
	byName  map[string]*CatalogEntry
	names   []string
}

// NewCatalog indexes entries by name. A repeated name keeps its first
// position in iteration order and takes the later entry's values.
func NewCatalog(kind CatalogKind, entries []CatalogEntry) *Catalog {
	c := &Catalog{
		Kind:      kind,
		Available: true,
		byName:    make(map[string]*CatalogEntry, len(entries)),
	}

	for i := range entries {
		entry := entries[i]
		if existing, ok := c.byName[entry.Name]; ok {
			*existing = entry
			continue
		}
		stored := &entry
		c.byName[entry.Name] = stored
		c.entries = append(c.entries, stored)
		c.names = append(c.names, entry.Name)
	}
	sort.Strings(c.names)

	return c
}

// UnavailableCatalog returns the empty catalog used after a failed load
func UnavailableCatalog(kind CatalogKind) *Catalog {
	return &Catalog{
		Kind:   kind,
		byName: map[string]*CatalogEntry{},
	}
}

// Lookup finds an entry by its exact name
func (c *Catalog) Lookup(name string) (CatalogEntry, bool) {
	entry, ok := c.byName[name]
	if !ok {
		return CatalogEntry{}, false
	}
	return *entry, true
}

// FindByGUID returns the first entry, in catalog order, with the given GUID
func (c *Catalog) FindByGUID(guid string) (CatalogEntry, bool) {
	for _, entry := range c.entries {
		if entry.GUID == guid {
			return *entry, true
		}
	}
	return CatalogEntry{}, false
}

// Names returns the entry names in ascending order
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Entries returns the entries in catalog order
func (c *Catalog) Entries() []CatalogEntry {
	out := make([]CatalogEntry, len(c.entries))
	for i, entry := range c.entries {
		out[i] = *entry
	}
	return out
}

// Len returns the number of distinct names
func (c *Catalog) Len() int {
	return len(c.entries)
}

// DefaultMax is the stepper bound for a slot with nothing selected: the max
// of the first name in display order, or 0 for an empty catalog.
func (c *Catalog) DefaultMax() int {
	if len(c.names) == 0 {
		return 0
	}
	return c.byName[c.names[0]].Max
}
