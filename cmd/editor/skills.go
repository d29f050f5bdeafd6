package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dragonwilds-editor/internal/orchestrators/editor"
	"github.com/KirkDiggler/dragonwilds-editor/internal/ui"
)

func newSkillsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skills",
		Short: "Edit skill experience",
	}

	cmd.AddCommand(newSkillValueCmd(opts, "set-xp", "Set a skill's experience", func(s *editor.Session) func(context.Context, int, int64) (int64, error) {
		return s.SetXP
	}))
	cmd.AddCommand(newSkillValueCmd(opts, "add-xp", "Add experience to a skill", func(s *editor.Session) func(context.Context, int, int64) (int64, error) {
		return s.AddXP
	}))
	cmd.AddCommand(newSkillActionCmd(opts, "level50", "Set a skill to level 50", func(s *editor.Session) func(context.Context, int) (int64, error) {
		return s.Level50
	}))
	cmd.AddCommand(newSkillActionCmd(opts, "boost", "Add 100,000,000 experience to a skill", func(s *editor.Session) func(context.Context, int) (int64, error) {
		return s.Boost
	}))
	cmd.AddCommand(newSkillActionCmd(opts, "reset", "Reset a skill's experience to zero", func(s *editor.Session) func(context.Context, int) (int64, error) {
		return s.ResetXP
	}))

	return cmd
}

func newSkillValueCmd(opts *rootOptions, use, short string, pick func(*editor.Session) func(context.Context, int, int64) (int64, error)) *cobra.Command {
	var (
		index int
		value int64
	)

	cmd := &cobra.Command{
		Use:   use + " <save.json>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editFile(cmd, opts, args[0], func(ctx context.Context, s *editor.Session) error {
				xp, err := pick(s)(ctx, index, value)
				if err != nil {
					return err
				}
				printSkill(cmd, s, index, xp)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&index, "index", 0, "skill position in the save")
	cmd.Flags().Int64Var(&value, "value", 0, "experience value")
	_ = cmd.MarkFlagRequired("index")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newSkillActionCmd(opts *rootOptions, use, short string, pick func(*editor.Session) func(context.Context, int) (int64, error)) *cobra.Command {
	var index int

	cmd := &cobra.Command{
		Use:   use + " <save.json>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editFile(cmd, opts, args[0], func(ctx context.Context, s *editor.Session) error {
				xp, err := pick(s)(ctx, index)
				if err != nil {
					return err
				}
				printSkill(cmd, s, index, xp)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&index, "index", 0, "skill position in the save")
	_ = cmd.MarkFlagRequired("index")

	return cmd
}

func printSkill(cmd *cobra.Command, s *editor.Session, index int, xp int64) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s xp\n", s.Skills()[index].Label(), ui.FormatXP(xp))
}
