package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dragonwilds-editor/internal/entities"
)

func TestNewCatalog(t *testing.T) {
	catalog := entities.NewCatalog(entities.CatalogItems, []entities.CatalogEntry{
		{Name: "Iron Bar", GUID: "g-iron", ItemData: "d-iron", Max: 50},
		{Name: "Health Potion", GUID: "g1", ItemData: "d1", Max: 99},
		{Name: "Bread", GUID: "g-shared", ItemData: "d-bread", Max: 10},
		{Name: "Apple", GUID: "g-shared", ItemData: "d-apple", Max: 20},
		{Name: "Iron Bar", GUID: "g-iron2", ItemData: "d-iron2", Max: 60},
	})

	assert.True(t, catalog.Available)
	assert.Equal(t, 4, catalog.Len())
	assert.Equal(t, []string{"Apple", "Bread", "Health Potion", "Iron Bar"}, catalog.Names())
	assert.Equal(t, 20, catalog.DefaultMax())

	entry, ok := catalog.Lookup("Health Potion")
	require.True(t, ok)
	assert.Equal(t, "g1", entry.GUID)

	_, ok = catalog.Lookup("health potion")
	assert.False(t, ok, "names are case-sensitive")

	t.Run("duplicate name takes later values but keeps first position", func(t *testing.T) {
		entry, ok := catalog.Lookup("Iron Bar")
		require.True(t, ok)
		assert.Equal(t, 60, entry.Max)
		assert.Equal(t, "Iron Bar", catalog.Entries()[0].Name)
	})

	t.Run("reverse lookup returns first match in catalog order", func(t *testing.T) {
		entry, ok := catalog.FindByGUID("g-shared")
		require.True(t, ok)
		assert.Equal(t, "Bread", entry.Name)

		_, ok = catalog.FindByGUID("g-iron")
		assert.False(t, ok)
	})
}

func TestUnavailableCatalog(t *testing.T) {
	catalog := entities.UnavailableCatalog(entities.CatalogRunes)

	assert.False(t, catalog.Available)
	assert.Equal(t, entities.CatalogRunes, catalog.Kind)
	assert.Empty(t, catalog.Names())
	assert.Equal(t, 0, catalog.DefaultMax())

	_, ok := catalog.Lookup("Air Rune")
	assert.False(t, ok)
}

func TestSlotRanges(t *testing.T) {
	testCases := []struct {
		slot    int
		tab     string
		found   bool
		catalog entities.CatalogKind
	}{
		{slot: 0, tab: "Hotbar", found: true, catalog: entities.CatalogItems},
		{slot: 7, tab: "Hotbar", found: true, catalog: entities.CatalogItems},
		{slot: 8, tab: "Backpack", found: true, catalog: entities.CatalogItems},
		{slot: 31, tab: "Backpack", found: true, catalog: entities.CatalogItems},
		{slot: 32, tab: "Runes", found: true, catalog: entities.CatalogRunes},
		{slot: 55, tab: "Runes", found: true, catalog: entities.CatalogRunes},
		{slot: 56, found: false, catalog: entities.CatalogItems},
		{slot: -1, found: false, catalog: entities.CatalogItems},
	}

	for _, tc := range testCases {
		t.Run(entities.SlotKey(tc.slot), func(t *testing.T) {
			r, ok := entities.RangeForSlot(tc.slot)
			assert.Equal(t, tc.found, ok)
			assert.Equal(t, tc.tab, r.Name)
			assert.Equal(t, tc.catalog, entities.CatalogForSlot(tc.slot))
		})
	}

	assert.Len(t, entities.Hotbar.Slots(), 8)
	assert.Len(t, entities.Backpack.Slots(), 24)
	assert.Len(t, entities.Runes.Slots(), 24)
}

func TestSkillLabel(t *testing.T) {
	testCases := []struct {
		id       string
		index    int
		expected string
	}{
		{id: "Wf3i7HaXXXX", index: 0, expected: "Artisan"},
		{id: "4zYUGF5", index: 3, expected: "Woodcutting"},
		{id: "NOqC-z-abc", index: 1, expected: "Runecrafting"},
		{id: "nothing-known", index: 4, expected: "Skill 5"},
		{id: "", index: 0, expected: "Skill 1"},
		{id: "wf3i7Ha", index: 2, expected: "Skill 3"},
	}

	for _, tc := range testCases {
		t.Run(tc.id, func(t *testing.T) {
			assert.Equal(t, tc.expected, entities.SkillLabel(tc.id, tc.index))
		})
	}
}
