package root

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dukerupert/togethertracker/internal/model"
	"github.com/dukerupert/togethertracker/internal/reward"
	"github.com/dukerupert/togethertracker/internal/ui"
)

func newRewardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "reward",
		Short:             "Browse, add and redeem rewards",
		PersistentPreRunE: withSession,
	}
	cmd.AddCommand(newRewardListCmd(), newRewardAddCmd(), newRewardRedeemCmd())
	return cmd
}

func newRewardListCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List rewards you can redeem",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := parseCategory(category)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if m := app.CurrentMember(); m != nil {
				fmt.Fprintln(out, ui.LabelValue("Your balance", ui.Points(m.Points)))
			}
			entries := app.Rewards(filter)
			if len(entries) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No rewards in this category."))
			}
			for _, e := range entries {
				cost := ui.Points(e.PointsRequired)
				if !e.Affordable {
					cost = ui.Muted.Render(fmt.Sprintf("%d pts", e.PointsRequired))
				}
				fmt.Fprintf(out, "%s  %s %s  %s  %s\n", ui.Muted.Render(ui.ShortID(e.ID)), e.Icon, e.Name, cost, ui.Muted.Render(e.Description))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", reward.CategoryAll, "Filter (all|treats|privileges|experiences|items)")

	return cmd
}

func newRewardAddCmd() *cobra.Command {
	var r model.Reward

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a reward to the household catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r.Name = args[0]
			r.Category = strings.ToLower(strings.TrimSpace(r.Category))
			added, err := app.AddReward(r)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("%s %s added (%s)", ui.IconGift, added.Name, ui.ShortID(added.ID))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&r.Description, "desc", "d", "", "Description")
	cmd.Flags().IntVar(&r.PointsRequired, "points", 50, "Points required")
	cmd.Flags().StringVar(&r.Icon, "icon", "🎁", "Icon")
	cmd.Flags().StringVarP(&r.Category, "category", "c", reward.CategoryItems, "Category (treats|privileges|experiences|items)")

	return cmd
}

func newRewardRedeemCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "redeem <id|name>",
		Short: "Spend your points on a reward",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveReward(args[0])
			if err != nil {
				return err
			}
			m, err := app.Redeem(id)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printNotices(out)
			fmt.Fprintln(out, ui.LabelValue("Balance", ui.Points(m.Points)))
			return nil
		},
	}
}

// parseCategory accepts a category filter in any case.
func parseCategory(s string) (string, error) {
	category := strings.ToLower(strings.TrimSpace(s))
	if !reward.ValidCategory(category) {
		return "", fmt.Errorf("unknown category %q (want one of %v)", s, reward.Categories)
	}
	return category, nil
}
