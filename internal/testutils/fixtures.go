package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dragonwilds-editor/internal/entities"
)

// Fixture GUIDs
const (
	GUIDHealthPotion = "g1"
	GUIDIronBar      = "g-iron"
	GUIDAirRune      = "g-air"
	GUIDFireRune     = "g-fire"

	// TestCharacterName is the char_name of SaveJSON
	TestCharacterName = "Aria Stoneheart"
)

// ItemsJSON is a small items.json
const ItemsJSON = `[
  {"name": "Health Potion", "GUID": "g1", "ItemData": "d1", "max": 99},
  {"name": "Iron Bar", "GUID": "g-iron", "ItemData": {"Tier": 2}, "max": 50},
  {"name": "Bronze Axe", "GUID": "g-axe", "ItemData": "d-axe", "max": 1}
]`

// RunesJSON is a small runes.json
const RunesJSON = `[
  {"name": "Air Rune", "GUID": "g-air", "ItemData": "d-air", "max": 500},
  {"name": "Fire Rune", "GUID": "g-fire", "ItemData": "d-fire", "max": 250}
]`

// SaveJSON is a character save with skills and a few occupied slots.
// Slot 9 holds a GUID no catalog knows about.
const SaveJSON = `{
    "meta_data": {"char_name": "Aria Stoneheart", "save_version": 12},
    "Skills": {
        "Skills": [
            {"Id": "4pefO9kAAAA", "Xp": 1500},
            {"Id": "Wf3i7HaXXXX", "Xp": 0},
            {"Id": "mysterySkill", "Xp": 42},
            {"Id": "jqX0Gh6-mine"}
        ]
    },
    "Inventory": {
        "0": {"GUID": "g1", "ItemData": "d1", "Count": 5},
        "9": {"GUID": "g-retired", "ItemData": "old", "Count": 7},
        "32": {"GUID": "g-fire", "ItemData": "d-fire", "Count": 100}
    },
    "Position": {"X": 10.25, "Y": -3, "Z": 1e2}
}`

// ItemEntries returns ItemsJSON as entries
func ItemEntries() []entities.CatalogEntry {
	return []entities.CatalogEntry{
		{Name: "Health Potion", GUID: GUIDHealthPotion, ItemData: "d1", Max: 99},
		{Name: "Iron Bar", GUID: GUIDIronBar, ItemData: map[string]any{"Tier": 2}, Max: 50},
		{Name: "Bronze Axe", GUID: "g-axe", ItemData: "d-axe", Max: 1},
	}
}

// RuneEntries returns RunesJSON as entries
func RuneEntries() []entities.CatalogEntry {
	return []entities.CatalogEntry{
		{Name: "Air Rune", GUID: GUIDAirRune, ItemData: "d-air", Max: 500},
		{Name: "Fire Rune", GUID: GUIDFireRune, ItemData: "d-fire", Max: 250},
	}
}

// ItemCatalog builds an available items catalog from ItemEntries
func ItemCatalog() *entities.Catalog {
	return entities.NewCatalog(entities.CatalogItems, ItemEntries())
}

// RuneCatalog builds an available runes catalog from RuneEntries
func RuneCatalog() *entities.Catalog {
	return entities.NewCatalog(entities.CatalogRunes, RuneEntries())
}

// TestDocument decodes SaveJSON
func TestDocument(t *testing.T) *entities.Document {
	t.Helper()
	doc, err := entities.DecodeDocument([]byte(SaveJSON))
	require.NoError(t, err)
	return doc
}

// WriteFile writes content to name inside a fresh temp dir and returns the path
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
