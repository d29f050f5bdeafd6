package ui

import (
	"fmt"
	"strconv"

	"github.com/rivo/tview"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/KirkDiggler/dragonwilds-editor/internal/entities"
	"github.com/KirkDiggler/dragonwilds-editor/internal/errors"
	"github.com/KirkDiggler/dragonwilds-editor/internal/orchestrators/editor"
)

const (
	noFileLoaded   = "No file loaded"
	noSelection    = "(none)"
	unknownItem    = "(unknown item)"
	catalogMissing = "(catalog unavailable)"
)

var printer = message.NewPrinter(language.English)

// FormatXP renders an experience total with thousands separators
func FormatXP(xp int64) string {
	return printer.Sprintf("%d", xp)
}

// HeaderText is the top bar line
func HeaderText(name string, loaded bool) string {
	if !loaded {
		return noFileLoaded
	}
	return "Chosen character: " + name
}

// ItemCell is the text of a slot row's item column
func ItemCell(row *editor.SlotRow) string {
	switch {
	case !row.Enabled:
		return catalogMissing
	case row.Unresolved():
		return unknownItem
	case row.Selected == "":
		return noSelection
	default:
		return row.Selected
	}
}

// CountCell is the text of a slot row's count column
func CountCell(row *editor.SlotRow) string {
	if !row.Stored {
		return "-"
	}
	return strconv.Itoa(row.Count)
}

// SkillCells returns the label and xp columns for a skill
func SkillCells(skill entities.Skill) (string, string) {
	return skill.Label(), FormatXP(skill.XP)
}

// ErrorText renders err for the status line
func ErrorText(err error) string {
	return fmt.Sprintf("[red]%s[-]", tview.Escape(errors.UserMessage(err)))
}

// WarningText renders a warning for the status line
func WarningText(msg string) string {
	return fmt.Sprintf("[yellow]%s[-]", tview.Escape(msg))
}

// TabTitle is the border title of an inventory tab
func TabTitle(index int, r entities.SlotRange) string {
	return fmt.Sprintf(" [%d]-%s (%d-%d) ", index+1, r.Name, r.Start, r.End-1)
}
