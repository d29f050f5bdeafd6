package ui

import (
	"context"
	"log/slog"

	"github.com/rivo/tview"

	"github.com/KirkDiggler/dragonwilds-editor/internal/orchestrators/editor"
)

type skillEdit func(ctx context.Context, index int) (int64, error)

type slotEdit func(ctx context.Context, row *editor.SlotRow) error

func (ui *UI) openPath(path string) {
	output, err := ui.session.Open(ui.ctx, path)
	if err != nil {
		slog.ErrorContext(ui.ctx, "failed to open save", "path", path, "error", err)
		ui.setError(err)
		return
	}

	slog.InfoContext(ui.ctx, "save opened",
		"path", output.Path,
		"character", output.CharacterName)
	ui.setMessage("Loaded: " + tview.Escape(output.Path))
}

func (ui *UI) save() {
	output, err := ui.session.Save(ui.ctx)
	if err != nil {
		slog.ErrorContext(ui.ctx, "failed to save", "path", ui.session.Path(), "error", err)
		ui.setError(err)
		return
	}

	slog.InfoContext(ui.ctx, "save written",
		"path", output.Path,
		"bytes", output.BytesWritten)
	ui.setMessage("Wrote back to: " + tview.Escape(output.Path))
}

// selectedSkill returns the skill index under the cursor, -1 for none
func (ui *UI) selectedSkill() int {
	row, _ := ui.skills.GetSelection()
	index := row - 1
	if index < 0 || index >= len(ui.session.Skills()) {
		return -1
	}
	return index
}

// selectedSlot returns the slot row under the cursor in the active tab
func (ui *UI) selectedSlot() *editor.SlotRow {
	row, _ := ui.tabs[ui.activeTab].GetSelection()
	rows := ui.rows[ui.activeTab]
	index := row - 1
	if index < 0 || index >= len(rows) {
		return nil
	}
	return rows[index]
}

func (ui *UI) editSkill(edit skillEdit) {
	index := ui.selectedSkill()
	if index < 0 {
		return
	}
	if _, err := edit(ui.ctx, index); err != nil {
		ui.setError(err)
		return
	}
	ui.setMessage(ready)
}

func (ui *UI) setSkillXP(value int64) {
	index := ui.selectedSkill()
	if index < 0 {
		return
	}
	if _, err := ui.session.SetXP(ui.ctx, index, value); err != nil {
		ui.setError(err)
		return
	}
	ui.setMessage(ready)
}

func (ui *UI) editSlot(edit slotEdit) {
	row := ui.selectedSlot()
	if row == nil {
		return
	}
	if err := edit(ui.ctx, row); err != nil {
		ui.setError(err)
		return
	}
	ui.setMessage(ready)
}

func (ui *UI) stepCount(delta int) {
	ui.editSlot(func(ctx context.Context, row *editor.SlotRow) error {
		return ui.session.SetCount(ctx, row, row.Count+delta)
	})
}

func (ui *UI) setSlotCount(count int) {
	ui.editSlot(func(ctx context.Context, row *editor.SlotRow) error {
		return ui.session.SetCount(ctx, row, count)
	})
}

func (ui *UI) selectItem(name string) {
	ui.editSlot(func(ctx context.Context, row *editor.SlotRow) error {
		if name == "" {
			return ui.session.ClearSlot(ctx, row)
		}
		return ui.session.SelectItem(ctx, row, name)
	})
}
