package editor

import (
	"github.com/KirkDiggler/dragonwilds-editor/internal/entities"
)

// Event types published on the session's bus
const (
	EventDocumentOpened = "editor.document.opened"
	EventDocumentSaved  = "editor.document.saved"
	EventSkillXPChanged = "editor.skill.xp_changed"
	EventSlotChanged    = "editor.inventory.slot_changed"
	EventSlotCleared    = "editor.inventory.slot_cleared"
)

// OpenOutput describes a freshly opened save
type OpenOutput struct {
	Path          string
	CharacterName string
	Skills        int
	Slots         int
}

// SaveOutput describes a completed save
type SaveOutput struct {
	Path         string
	BytesWritten int
}

// SlotRow is the editing state behind one inventory row. The UI keeps one
// per visible slot and passes it back on every action.
type SlotRow struct {
	Slot  int
	Range entities.SlotRange

	// Selected is the catalog name shown for the slot, empty for none
	Selected string
	// Count is the value in the count stepper
	Count int
	// Bound is the stepper's upper limit
	Bound int
	// Enabled is false when the slot's catalog failed to load
	Enabled bool
	// Stored reports whether the document currently has an entry for the slot
	Stored bool
}

// Unresolved reports a stored entry whose GUID matched no catalog name
func (r *SlotRow) Unresolved() bool {
	return r.Stored && r.Selected == ""
}

// CatalogLoadResult holds both catalogs and any warnings from loading them
type CatalogLoadResult struct {
	Items    *entities.Catalog
	Runes    *entities.Catalog
	Warnings []string
}
