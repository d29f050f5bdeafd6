// Package ui is the terminal front end of the editor
package ui

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/KirkDiggler/dragonwilds-editor/internal/entities"
	"github.com/KirkDiggler/dragonwilds-editor/internal/errors"
	"github.com/KirkDiggler/dragonwilds-editor/internal/orchestrators/editor"
	"github.com/KirkDiggler/dragonwilds-editor/internal/repositories/savefile"
)

const helpText = " [black:gold]o[-:-] open  [black:gold]ctrl+s[-:-] save  [black:gold]q[-:-] quit  [black:gold]tab[-:-] focus  [black:gold]1/2/3 [[ ][-:-] tabs  [black:gold]enter[-:-] edit  [black:gold]5 + r[-:-] skill  [black:gold]+ - m x c[-:-] slot "

const (
	pageMain = "main"
	ready    = "Ready."
)

// Config holds what the UI needs to run
type Config struct {
	Session  *editor.Session
	SaveRepo savefile.Repository
	SaveDir  string
	// Warnings are shown once at startup
	Warnings []string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Session == nil {
		vb.RequiredField("Session")
	}
	if c.SaveRepo == nil {
		vb.RequiredField("SaveRepo")
	}

	return vb.Build()
}

// UI is the tview application around one editing session
type UI struct {
	ctx      context.Context
	session  *editor.Session
	saveRepo savefile.Repository
	saveDir  string

	app       *tview.Application
	pages     *tview.Pages
	header    *tview.TextView
	skills    *tview.Table
	slotPages *tview.Pages
	tabs      []*tview.Table
	status    *tview.TextView

	ranges    []entities.SlotRange
	rows      [][]*editor.SlotRow
	activeTab int

	message      string
	modalVisible bool
	modalName    string
	returnFocus  tview.Primitive
}

// New builds the UI. Nothing is drawn until Run.
func New(ctx context.Context, cfg *Config) (*UI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ui := &UI{
		ctx:      ctx,
		session:  cfg.Session,
		saveRepo: cfg.SaveRepo,
		saveDir:  cfg.SaveDir,
		app:      tview.NewApplication(),
		ranges:   entities.SlotRanges(),
		message:  ready,
	}
	ui.rows = make([][]*editor.SlotRow, len(ui.ranges))
	if len(cfg.Warnings) > 0 {
		ui.message = WarningText(cfg.Warnings[0])
		for _, w := range cfg.Warnings[1:] {
			ui.message += " " + WarningText(w)
		}
	}

	ui.build()
	ui.subscribe()
	ui.refreshAll()

	return ui, nil
}

// Run opens path when it is not empty, then blocks until the user quits
func (ui *UI) Run(path string) error {
	if path != "" {
		ui.openPath(path)
	}
	return ui.app.SetRoot(ui.pages, true).Run()
}

func (ui *UI) build() {
	ui.header = tview.NewTextView().SetDynamicColors(true)
	ui.header.SetBorder(true).SetTitle(" Dragonwilds save editor ")

	ui.skills = tview.NewTable().SetSelectable(true, false).SetFixed(1, 0)
	ui.skills.SetBorder(true).SetTitle(" Skills ")
	ui.skills.SetSelectedFunc(func(int, int) {
		ui.openXPInput()
	})
	ui.skills.SetInputCapture(ui.handleSkillKeys)

	ui.slotPages = tview.NewPages()
	for i, r := range ui.ranges {
		table := tview.NewTable().SetSelectable(true, false).SetFixed(1, 0)
		table.SetBorder(true).SetTitle(TabTitle(i, r))
		table.SetSelectedFunc(func(int, int) {
			ui.openItemChooser()
		})
		table.SetInputCapture(ui.handleSlotKeys)
		ui.tabs = append(ui.tabs, table)
		ui.slotPages.AddPage(r.Name, table, true, i == 0)
	}

	mainRow := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(ui.skills, 0, 1, true).
		AddItem(ui.slotPages, 0, 2, false)

	ui.status = tview.NewTextView().SetDynamicColors(true)
	ui.status.SetBackgroundColor(tcell.ColorBlack)

	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(ui.header, 3, 0, false).
		AddItem(mainRow, 0, 1, true).
		AddItem(ui.status, 2, 0, false)

	ui.pages = tview.NewPages().AddPage(pageMain, root, true, true)
	ui.app.SetFocus(ui.skills)
	ui.app.SetInputCapture(ui.handleGlobalKeys)
}

// subscribe keeps the tables in step with edits made through the session
func (ui *UI) subscribe() {
	ui.session.Subscribe(editor.EventDocumentOpened, func(context.Context, events.Event) error {
		ui.refreshAll()
		return nil
	})
	ui.session.Subscribe(editor.EventSkillXPChanged, func(context.Context, events.Event) error {
		ui.refreshSkills()
		return nil
	})
	refreshSlots := func(context.Context, events.Event) error {
		ui.refreshSlots()
		return nil
	}
	ui.session.Subscribe(editor.EventSlotChanged, refreshSlots)
	ui.session.Subscribe(editor.EventSlotCleared, refreshSlots)
}

func (ui *UI) handleGlobalKeys(ev *tcell.EventKey) *tcell.EventKey {
	if ui.modalVisible {
		if ev.Key() == tcell.KeyEscape {
			ui.closeModal()
			return nil
		}
		return ev
	}
	if _, isInput := ui.app.GetFocus().(*tview.InputField); isInput {
		return ev
	}

	switch ev.Key() {
	case tcell.KeyCtrlC:
		ui.app.Stop()
		return nil
	case tcell.KeyCtrlS:
		ui.save()
		return nil
	case tcell.KeyTAB, tcell.KeyBacktab:
		ui.toggleFocus()
		return nil
	}

	switch ev.Rune() {
	case 'q':
		ui.app.Stop()
		return nil
	case 'o':
		ui.openFileDialog()
		return nil
	case '1', '2', '3':
		ui.switchTab(int(ev.Rune() - '1'))
		return nil
	case '[':
		ui.switchTab(ui.activeTab - 1)
		return nil
	case ']':
		ui.switchTab(ui.activeTab + 1)
		return nil
	}
	return ev
}

func (ui *UI) handleSkillKeys(ev *tcell.EventKey) *tcell.EventKey {
	if ev.Key() != tcell.KeyRune {
		return ev
	}
	switch ev.Rune() {
	case '5':
		ui.editSkill(ui.session.Level50)
		return nil
	case '+':
		ui.editSkill(ui.session.Boost)
		return nil
	case 'r':
		ui.editSkill(ui.session.ResetXP)
		return nil
	}
	return ev
}

func (ui *UI) handleSlotKeys(ev *tcell.EventKey) *tcell.EventKey {
	if ev.Key() != tcell.KeyRune {
		return ev
	}
	switch ev.Rune() {
	case '+':
		ui.stepCount(1)
		return nil
	case '-':
		ui.stepCount(-1)
		return nil
	case 'm':
		ui.editSlot(ui.session.SetMax)
		return nil
	case 'x':
		ui.editSlot(ui.session.ClearSlot)
		return nil
	case 'c':
		ui.openCountInput()
		return nil
	}
	return ev
}

func (ui *UI) toggleFocus() {
	if ui.app.GetFocus() == ui.skills {
		ui.app.SetFocus(ui.tabs[ui.activeTab])
		return
	}
	ui.app.SetFocus(ui.skills)
}

func (ui *UI) switchTab(index int) {
	if index < 0 || index >= len(ui.tabs) {
		return
	}
	ui.activeTab = index
	ui.slotPages.SwitchToPage(ui.ranges[index].Name)
	ui.app.SetFocus(ui.tabs[index])
}

func (ui *UI) refreshAll() {
	ui.header.SetText(tview.Escape(HeaderText(ui.session.CharacterName(), ui.session.Loaded())))
	ui.refreshSkills()
	ui.refreshSlots()
	ui.refreshStatus()
}

func (ui *UI) refreshSkills() {
	selected, _ := ui.skills.GetSelection()

	ui.skills.Clear()
	ui.skills.SetCell(0, 0, headerCell("Skill"))
	ui.skills.SetCell(0, 1, headerCell("Xp"))
	for i, skill := range ui.session.Skills() {
		label, xp := SkillCells(skill)
		ui.skills.SetCell(i+1, 0, tview.NewTableCell(tview.Escape(label)).SetExpansion(1))
		ui.skills.SetCell(i+1, 1, tview.NewTableCell(xp).SetAlign(tview.AlignRight))
	}

	ui.skills.Select(clampRow(selected, ui.skills.GetRowCount()), 0)
}

func (ui *UI) refreshSlots() {
	for i, r := range ui.ranges {
		table := ui.tabs[i]
		selected, _ := table.GetSelection()

		ui.rows[i] = ui.session.SlotRows(r)

		table.Clear()
		table.SetCell(0, 0, headerCell("Slot"))
		table.SetCell(0, 1, headerCell("Item"))
		table.SetCell(0, 2, headerCell("Count"))
		table.SetCell(0, 3, headerCell("Max"))
		for j, row := range ui.rows[i] {
			color := tcell.ColorWhite
			if !row.Enabled {
				color = tcell.ColorGray
			}
			table.SetCell(j+1, 0, tview.NewTableCell(fmt.Sprintf("%d", row.Slot)).SetTextColor(color))
			table.SetCell(j+1, 1, tview.NewTableCell(tview.Escape(ItemCell(row))).SetTextColor(color).SetExpansion(1))
			table.SetCell(j+1, 2, tview.NewTableCell(CountCell(row)).SetTextColor(color).SetAlign(tview.AlignRight))
			table.SetCell(j+1, 3, tview.NewTableCell(fmt.Sprintf("%d", row.Bound)).SetTextColor(color).SetAlign(tview.AlignRight))
		}

		table.Select(clampRow(selected, table.GetRowCount()), 0)
	}
}

func (ui *UI) refreshStatus() {
	msg := ui.message
	if msg == "" {
		msg = ready
	}
	ui.status.SetText(msg + "\n" + helpText)
}

func (ui *UI) setMessage(msg string) {
	ui.message = msg
	ui.refreshStatus()
}

func (ui *UI) setError(err error) {
	ui.setMessage(ErrorText(err))
}

func headerCell(text string) *tview.TableCell {
	return tview.NewTableCell(text).
		SetTextColor(tcell.ColorGold).
		SetSelectable(false)
}

// clampRow keeps a selection on a data row below the header
func clampRow(row, count int) int {
	if count <= 1 {
		return 0
	}
	if row < 1 {
		return 1
	}
	if row >= count {
		return count - 1
	}
	return row
}
