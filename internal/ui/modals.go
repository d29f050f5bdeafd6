package ui

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/KirkDiggler/dragonwilds-editor/internal/repositories/savefile"
)

const (
	modalOpen   = "open"
	modalItem   = "item"
	modalCount  = "count"
	modalXP     = "xp"
	openListMax = 16
)

// centered wraps p in a fixed-size box in the middle of the screen
func centered(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexColumn).
			AddItem(nil, 0, 1, false).
			AddItem(p, width, 0, true).
			AddItem(nil, 0, 1, false), height, 0, true).
		AddItem(nil, 0, 1, false)
}

func (ui *UI) showModal(name string, p tview.Primitive, width, height int, focus tview.Primitive) {
	ui.returnFocus = ui.app.GetFocus()
	ui.modalVisible = true
	ui.modalName = name
	ui.pages.AddAndSwitchToPage(name, centered(p, width, height), true)
	ui.app.SetFocus(focus)
}

func (ui *UI) closeModal() {
	if !ui.modalVisible {
		return
	}
	if ui.modalName != "" {
		ui.pages.RemovePage(ui.modalName)
	}
	ui.modalVisible = false
	ui.modalName = ""
	ui.pages.SwitchToPage(pageMain)
	if ui.returnFocus != nil {
		ui.app.SetFocus(ui.returnFocus)
	}
}

// openFileDialog lists the saves in the save directory above a path field.
// Choosing a file or submitting a path opens it.
func (ui *UI) openFileDialog() {
	files := tview.NewList().ShowSecondaryText(false)
	files.SetBorder(true).SetTitle(" Saves ")

	path := tview.NewInputField().SetLabel(" Path ").SetFieldWidth(0)
	path.SetText(ui.saveDir)

	if ui.saveDir != "" {
		output, err := ui.saveRepo.List(ui.ctx, savefile.ListInput{Dir: ui.saveDir})
		if err != nil {
			ui.setError(err)
		} else {
			for _, p := range output.Paths {
				files.AddItem(tview.Escape(filepath.Base(p)), "", 0, func() {
					ui.closeModal()
					ui.openPath(p)
				})
			}
		}
	}

	form := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(files, 0, 1, files.GetItemCount() > 0).
		AddItem(path, 1, 0, files.GetItemCount() == 0)
	form.SetBorder(true).SetTitle(" Open save ")

	path.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter:
			target := strings.TrimSpace(path.GetText())
			if target == "" {
				return
			}
			ui.closeModal()
			ui.openPath(target)
		case tcell.KeyTab, tcell.KeyBacktab:
			if files.GetItemCount() > 0 {
				ui.app.SetFocus(files)
			}
		}
	})
	files.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		if ev.Key() == tcell.KeyTab || ev.Key() == tcell.KeyBacktab {
			ui.app.SetFocus(path)
			return nil
		}
		return ev
	})

	height := files.GetItemCount() + 5
	if height > openListMax+5 {
		height = openListMax + 5
	}

	var focus tview.Primitive = path
	if files.GetItemCount() > 0 {
		focus = files
	}
	ui.showModal(modalOpen, form, 72, height, focus)
}

// openItemChooser lists the catalog names for the selected slot
func (ui *UI) openItemChooser() {
	row := ui.selectedSlot()
	if row == nil {
		return
	}
	if !ui.session.Loaded() || !row.Enabled {
		// the session rejects the edit and the status line shows why
		ui.selectItem("")
		return
	}

	names := ui.session.Catalog(row.Range.Catalog).Names()

	list := tview.NewList().ShowSecondaryText(false)
	list.SetBorder(true).SetTitle(" " + row.Range.Name + " slot " + strconv.Itoa(row.Slot) + " ")
	list.AddItem(noSelection, "", 0, func() {
		ui.closeModal()
		ui.selectItem("")
	})

	current := 0
	for i, name := range names {
		if name == row.Selected {
			current = i + 1
		}
		list.AddItem(tview.Escape(name), "", 0, func() {
			ui.closeModal()
			ui.selectItem(name)
		})
	}
	list.SetCurrentItem(current)
	list.SetDoneFunc(ui.closeModal)

	height := len(names) + 3
	if height > 20 {
		height = 20
	}
	ui.showModal(modalItem, list, 48, height, list)
}

// openCountInput asks for a count for the selected slot
func (ui *UI) openCountInput() {
	row := ui.selectedSlot()
	if row == nil {
		return
	}

	input := tview.NewInputField().
		SetLabel(" Count ").
		SetFieldWidth(12).
		SetAcceptanceFunc(tview.InputFieldInteger)
	input.SetText(strconv.Itoa(row.Count))
	input.SetBorder(true).SetTitle(" 0 - " + strconv.Itoa(row.Bound) + " ")

	input.SetDoneFunc(func(key tcell.Key) {
		if key != tcell.KeyEnter {
			ui.closeModal()
			return
		}
		count, err := strconv.Atoi(strings.TrimSpace(input.GetText()))
		ui.closeModal()
		if err != nil {
			return
		}
		ui.setSlotCount(count)
	})

	ui.showModal(modalCount, input, 32, 3, input)
}

// openXPInput asks for an exact Xp value for the selected skill
func (ui *UI) openXPInput() {
	index := ui.selectedSkill()
	if index < 0 {
		return
	}
	skill := ui.session.Skills()[index]

	input := tview.NewInputField().
		SetLabel(" Xp ").
		SetFieldWidth(16).
		SetAcceptanceFunc(tview.InputFieldInteger)
	input.SetText(strconv.FormatInt(skill.XP, 10))
	input.SetBorder(true).SetTitle(" " + tview.Escape(skill.Label()) + " ")

	input.SetDoneFunc(func(key tcell.Key) {
		if key != tcell.KeyEnter {
			ui.closeModal()
			return
		}
		value, err := strconv.ParseInt(strings.TrimSpace(input.GetText()), 10, 64)
		ui.closeModal()
		if err != nil {
			return
		}
		ui.setSkillXP(value)
	})

	ui.showModal(modalXP, input, 36, 3, input)
}
