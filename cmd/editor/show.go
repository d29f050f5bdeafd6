package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dragonwilds-editor/internal/entities"
	"github.com/KirkDiggler/dragonwilds-editor/internal/orchestrators/editor"
	"github.com/KirkDiggler/dragonwilds-editor/internal/ui"
)

func newShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <save.json>",
		Short: "Print a character's skills and inventory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			d, err := newDeps(ctx, opts.cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer d.close()

			if _, err := d.session.Open(ctx, args[0]); err != nil {
				return err
			}

			printSession(cmd.OutOrStdout(), d.session)
			return nil
		},
	}
}

func printSession(out io.Writer, s *editor.Session) {
	fmt.Fprintf(out, "%s\n\n", ui.HeaderText(s.CharacterName(), s.Loaded()))

	fmt.Fprintln(out, "Skills:")
	for _, skill := range s.Skills() {
		label, xp := ui.SkillCells(skill)
		fmt.Fprintf(out, "  [%d] %-14s %15s\n", skill.Index, label, xp)
	}

	for _, r := range entities.SlotRanges() {
		fmt.Fprintf(out, "\n%s:\n", r.Name)
		empty := true
		for _, row := range s.SlotRows(r) {
			if !row.Stored {
				continue
			}
			empty = false
			fmt.Fprintf(out, "  %2d  %-28s %6d / %d\n", row.Slot, ui.ItemCell(row), row.Count, row.Bound)
		}
		if empty {
			fmt.Fprintln(out, "  (empty)")
		}
	}
}
