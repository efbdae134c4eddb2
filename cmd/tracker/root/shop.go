package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukerupert/togethertracker/internal/tracker"
	"github.com/dukerupert/togethertracker/internal/ui"
)

func newShopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "shop",
		Short:             "Manage the household shopping list",
		PersistentPreRunE: withSession,
	}
	cmd.AddCommand(newShopAddCmd(), newShopListCmd(), newShopCheckCmd(), newShopUrgentCmd(), newShopRmCmd())
	return cmd
}

func newShopAddCmd() *cobra.Command {
	var in tracker.NewShoppingItem

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Name = args[0]
			it, err := app.AddShoppingItem(in)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("%s %s added to %s (%s)", ui.IconCart, it.Name, it.Category, ui.ShortID(it.ID))))
			return nil
		},
	}

	cmd.Flags().IntVarP(&in.Quantity, "qty", "q", 1, "Quantity")
	cmd.Flags().StringVarP(&in.Unit, "unit", "u", "", "Unit (e.g. kg, l)")
	cmd.Flags().BoolVar(&in.Urgent, "urgent", false, "Mark as urgent")
	cmd.Flags().StringVar(&in.Notes, "notes", "", "Notes")

	return cmd
}

func newShopListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show the shopping list",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			items := app.ShoppingItems()
			if len(items) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("The list is empty."))
				return nil
			}
			for _, it := range items {
				box := "[ ]"
				if it.Completed {
					box = "[x]"
				}
				name := it.Name
				if it.Quantity > 1 || it.Unit != "" {
					name = fmt.Sprintf("%s (%d%s)", name, it.Quantity, it.Unit)
				}
				switch {
				case it.Completed:
					name = ui.Muted.Render(name)
				case it.Urgent:
					name = ui.IconUrgent + " " + ui.Warn.Render(name)
				}
				fmt.Fprintf(out, "%s %s  %s  %s\n", box, ui.Muted.Render(ui.ShortID(it.ID)), name, ui.Muted.Render(it.Category))
			}
			return nil
		},
	}
}

func newShopCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <id>",
		Short: "Tick an item off, or untick it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveShoppingItem(args[0])
			if err != nil {
				return err
			}
			it, err := app.ToggleShoppingItem(id)
			if err != nil {
				return err
			}
			state := "still needed"
			if it.Completed {
				state = "bought"
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue(it.Name, state))
			return nil
		},
	}
}

func newShopUrgentCmd() *cobra.Command {
	var off bool

	cmd := &cobra.Command{
		Use:   "urgent <id>",
		Short: "Mark an item urgent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveShoppingItem(args[0])
			if err != nil {
				return err
			}
			it, err := app.MarkUrgent(id, !off)
			if err != nil {
				return err
			}
			state := "not urgent"
			if it.Urgent {
				state = "urgent"
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue(it.Name, state))
			return nil
		},
	}

	cmd.Flags().BoolVar(&off, "off", false, "Clear the urgent flag instead")

	return cmd
}

func newShopRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Remove an item",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveShoppingItem(args[0])
			if err != nil {
				return err
			}
			if err := app.RemoveShoppingItem(id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Item removed."))
			return nil
		},
	}
}
