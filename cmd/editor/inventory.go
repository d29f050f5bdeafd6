package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dragonwilds-editor/internal/errors"
	"github.com/KirkDiggler/dragonwilds-editor/internal/orchestrators/editor"
	"github.com/KirkDiggler/dragonwilds-editor/internal/ui"
)

func newInventoryCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Edit hotbar, backpack and rune slots",
		Long: `Edit inventory slots. Slots 0-7 are the hotbar, 8-31 the backpack and
32-55 the runes; rune slots take names from the runes catalog, every other
slot from the items catalog.`,
	}

	cmd.AddCommand(newInventorySetCmd(opts))
	cmd.AddCommand(newInventoryMaxCmd(opts))
	cmd.AddCommand(newInventoryClearCmd(opts))

	return cmd
}

// slotRow resolves the editing state for slot and, when item is given,
// checks that the slot's catalog knows it
func slotRow(s *editor.Session, slot int, item string) (*editor.SlotRow, error) {
	row, err := s.SlotRow(slot)
	if err != nil {
		return nil, err
	}
	if item == "" {
		return row, nil
	}

	c := s.Catalog(row.Range.Catalog)
	if !c.Available {
		return nil, errors.FailedPreconditionf("%s catalog is unavailable", row.Range.Catalog)
	}
	if _, ok := c.Lookup(item); !ok {
		return nil, errors.NotFoundf("%q is not in the %s catalog", item, row.Range.Catalog).
			WithMeta("slot", slot)
	}
	return row, nil
}

func printSlot(cmd *cobra.Command, row *editor.SlotRow) {
	fmt.Fprintf(cmd.OutOrStdout(), "Slot %d: %s x%d\n", row.Slot, ui.ItemCell(row), row.Count)
}

func newInventorySetCmd(opts *rootOptions) *cobra.Command {
	var (
		slot  int
		item  string
		count int
	)

	cmd := &cobra.Command{
		Use:   "set <save.json>",
		Short: "Put an item in a slot",
		Long:  `Put an item in a slot. The count is clamped to the item's stack size.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editFile(cmd, opts, args[0], func(ctx context.Context, s *editor.Session) error {
				row, err := slotRow(s, slot, item)
				if err != nil {
					return err
				}
				if err := s.SelectItem(ctx, row, item); err != nil {
					return err
				}
				if err := s.SetCount(ctx, row, count); err != nil {
					return err
				}
				printSlot(cmd, row)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&slot, "slot", 0, "slot number")
	cmd.Flags().StringVar(&item, "item", "", "catalog name")
	cmd.Flags().IntVar(&count, "count", 0, "stack size")
	_ = cmd.MarkFlagRequired("slot")
	_ = cmd.MarkFlagRequired("item")

	return cmd
}

func newInventoryMaxCmd(opts *rootOptions) *cobra.Command {
	var (
		slot int
		item string
	)

	cmd := &cobra.Command{
		Use:   "max <save.json>",
		Short: "Fill a slot with a full stack of an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editFile(cmd, opts, args[0], func(ctx context.Context, s *editor.Session) error {
				row, err := slotRow(s, slot, item)
				if err != nil {
					return err
				}
				if err := s.SelectItem(ctx, row, item); err != nil {
					return err
				}
				if err := s.SetMax(ctx, row); err != nil {
					return err
				}
				printSlot(cmd, row)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&slot, "slot", 0, "slot number")
	cmd.Flags().StringVar(&item, "item", "", "catalog name")
	_ = cmd.MarkFlagRequired("slot")
	_ = cmd.MarkFlagRequired("item")

	return cmd
}

func newInventoryClearCmd(opts *rootOptions) *cobra.Command {
	var slot int

	cmd := &cobra.Command{
		Use:   "clear <save.json>",
		Short: "Empty a slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editFile(cmd, opts, args[0], func(ctx context.Context, s *editor.Session) error {
				row, err := slotRow(s, slot, "")
				if err != nil {
					return err
				}
				if err := s.ClearSlot(ctx, row); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Slot %d cleared\n", row.Slot)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&slot, "slot", 0, "slot number")
	_ = cmd.MarkFlagRequired("slot")

	return cmd
}
