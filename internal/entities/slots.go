package entities

import "strconv"

// SlotRange is a fixed, half-open range of inventory slot numbers
type SlotRange struct {
	Name    string
	Start   int
	End     int
	Catalog CatalogKind
}

// Inventory tabs
var (
	Hotbar   = SlotRange{Name: "Hotbar", Start: 0, End: 8, Catalog: CatalogItems}
	Backpack = SlotRange{Name: "Backpack", Start: 8, End: 32, Catalog: CatalogItems}
	Runes    = SlotRange{Name: "Runes", Start: 32, End: 56, Catalog: CatalogRunes}
)

// SlotRanges returns the inventory tabs in display order
func SlotRanges() []SlotRange {
	return []SlotRange{Hotbar, Backpack, Runes}
}

// Contains reports whether slot falls inside the range
func (r SlotRange) Contains(slot int) bool {
	return slot >= r.Start && slot < r.End
}

// Slots lists every slot number in the range
func (r SlotRange) Slots() []int {
	slots := make([]int, 0, r.End-r.Start)
	for s := r.Start; s < r.End; s++ {
		slots = append(slots, s)
	}
	return slots
}

// RangeForSlot finds the tab a slot belongs to
func RangeForSlot(slot int) (SlotRange, bool) {
	for _, r := range SlotRanges() {
		if r.Contains(slot) {
			return r, true
		}
	}
	return SlotRange{}, false
}

// CatalogForSlot picks the catalog used to resolve names for a slot.
// Only rune slots use the rune catalog; every other slot uses items.
func CatalogForSlot(slot int) CatalogKind {
	if Runes.Contains(slot) {
		return CatalogRunes
	}
	return CatalogItems
}

// SlotKey is the Inventory map key for a slot
func SlotKey(slot int) string {
	return strconv.Itoa(slot)
}
