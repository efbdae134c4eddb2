package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukerupert/togethertracker/internal/ui"
)

func newMemberCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "member",
		Short:             "List household members, switch the active one, share the invite code",
		PersistentPreRunE: withSession,
	}
	cmd.AddCommand(newMemberListCmd(), newMemberSwitchCmd(), newMemberInviteCmd())
	return cmd
}

func newMemberListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List members",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			cur := app.CurrentMember()
			for _, m := range app.Members() {
				marker := "  "
				if cur != nil && cur.ID == m.ID {
					marker = ui.IconStar
				}
				fmt.Fprintf(out, "%s %s  %s  %s  %s %d  %s\n", marker, ui.Muted.Render(ui.ShortID(m.ID)), ui.MemberName(m),
					ui.Muted.Render(string(m.Role)), ui.IconFire, m.Streak, ui.Points(m.Points))
			}
			return nil
		},
	}
}

func newMemberSwitchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "switch <name|id>",
		Short: "Act as another household member on this device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := resolveMember(args[0])
			if err != nil {
				return err
			}
			m, err := app.SwitchMember(target.ID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Active member", ui.MemberName(m)))
			return nil
		},
	}
}

func newMemberInviteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "invite",
		Short: "Show the code others use to join this household",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := app.CopyInviteCode()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Panel.Render(ui.Title.Render(code)))
			printNotices(out)
			return nil
		},
	}
}
