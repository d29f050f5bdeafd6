package editor

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/dragonwilds-editor/internal/entities"
	"github.com/KirkDiggler/dragonwilds-editor/internal/errors"
)

// Bind writes the stored entry for slot from the catalog entry called name.
// An empty name removes the slot. A name the slot's catalog does not know
// leaves the document unchanged. count is stored as given.
func (s *Session) Bind(ctx context.Context, slot int, name string, count int) error {
	if err := s.requireDocument(); err != nil {
		return err
	}

	if name == "" {
		if s.doc.DeleteInventoryEntry(slot) {
			slog.DebugContext(ctx, "inventory slot cleared", "slot", slot)
			s.publish(ctx, EventSlotCleared, &entities.SlotRef{Slot: slot})
		}
		return nil
	}

	entry, ok := s.catalogFor(slot).Lookup(name)
	if !ok {
		return nil
	}

	s.doc.SetInventoryEntry(slot, entities.InventoryEntry{
		GUID:     entry.GUID,
		ItemData: entry.ItemData,
		Count:    count,
	})

	slog.DebugContext(ctx, "inventory slot bound",
		"slot", slot,
		"item", name,
		"count", count)

	s.publish(ctx, EventSlotChanged, &entities.SlotRef{Slot: slot})
	return nil
}

// SlotRows builds the editing state for every slot in r from the open
// document. Stored entries whose GUID no catalog entry carries are shown
// with no selection and left as they are in the document.
func (s *Session) SlotRows(r entities.SlotRange) []*SlotRow {
	rows := make([]*SlotRow, 0, r.End-r.Start)
	for _, slot := range r.Slots() {
		rows = append(rows, s.slotRow(r, slot))
	}
	return rows
}

// SlotRow builds the editing state for a single slot
func (s *Session) SlotRow(slot int) (*SlotRow, error) {
	r, ok := entities.RangeForSlot(slot)
	if !ok {
		return nil, errors.OutOfRangef("slot %d is outside every inventory tab", slot)
	}
	return s.slotRow(r, slot), nil
}

func (s *Session) slotRow(r entities.SlotRange, slot int) *SlotRow {
	c := s.catalogFor(slot)
	row := &SlotRow{
		Slot:    slot,
		Range:   r,
		Bound:   c.DefaultMax(),
		Enabled: c.Available,
	}

	if s.doc == nil {
		return row
	}

	stored, ok := s.doc.InventoryEntry(slot)
	if !ok {
		return row
	}
	row.Stored = true
	row.Count = stored.Count

	if !c.Available {
		return row
	}
	if entry, found := c.FindByGUID(stored.GUID); found {
		row.Selected = entry.Name
		row.Bound = entry.Max
	}

	return row
}

// SelectItem picks a catalog name for the row, pulling the count down to
// the new bound when needed, and binds the slot.
func (s *Session) SelectItem(ctx context.Context, row *SlotRow, name string) error {
	if err := s.requireEditable(row); err != nil {
		return err
	}

	row.Bound = 0
	if entry, ok := s.catalogFor(row.Slot).Lookup(name); ok {
		row.Bound = entry.Max
	}
	if row.Count > row.Bound {
		row.Count = row.Bound
	}
	row.Selected = name

	return s.bindRow(ctx, row)
}

// SetCount changes the row's count, clamped to [0, Bound], and binds the
// slot with the current selection. With nothing selected this clears the
// slot.
func (s *Session) SetCount(ctx context.Context, row *SlotRow, count int) error {
	if err := s.requireEditable(row); err != nil {
		return err
	}

	row.Count = clamp(count, 0, row.Bound)
	return s.bindRow(ctx, row)
}

// SetMax fills the slot to the selected item's max. Without a resolvable
// selection nothing happens.
func (s *Session) SetMax(ctx context.Context, row *SlotRow) error {
	if err := s.requireEditable(row); err != nil {
		return err
	}

	entry, ok := s.catalogFor(row.Slot).Lookup(row.Selected)
	if row.Selected == "" || !ok {
		return nil
	}

	row.Bound = entry.Max
	row.Count = entry.Max
	return s.bindRow(ctx, row)
}

// ClearSlot drops the selection and removes the stored entry
func (s *Session) ClearSlot(ctx context.Context, row *SlotRow) error {
	if err := s.requireEditable(row); err != nil {
		return err
	}

	row.Selected = ""
	return s.bindRow(ctx, row)
}

func (s *Session) bindRow(ctx context.Context, row *SlotRow) error {
	if err := s.Bind(ctx, row.Slot, row.Selected, row.Count); err != nil {
		return err
	}
	_, row.Stored = s.doc.InventoryEntry(row.Slot)
	return nil
}

func (s *Session) requireEditable(row *SlotRow) error {
	if err := s.requireDocument(); err != nil {
		return err
	}
	if row == nil {
		return errors.InvalidArgument("slot row is required")
	}
	if !row.Enabled {
		return errors.FailedPreconditionf("%s catalog is unavailable", entities.CatalogForSlot(row.Slot)).
			WithMeta("slot", row.Slot)
	}
	return nil
}

func (s *Session) catalogFor(slot int) *entities.Catalog {
	return s.catalogs[entities.CatalogForSlot(slot)]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
