package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukerupert/togethertracker/internal/tracker"
	"github.com/dukerupert/togethertracker/internal/ui"
)

func newSignUpCmd() *cobra.Command {
	var req tracker.SignUpRequest

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and a household, or join one with an invite code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			acct, h, err := app.SignUp(req)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconHouse, "Welcome to "+h.Name))
			fmt.Fprintln(out, ui.LabelValue("Signed in as", acct.Email))
			if m := app.CurrentMember(); m != nil {
				fmt.Fprintln(out, ui.LabelValue("Member", ui.MemberName(*m)+" ("+string(m.Role)+")"))
			}
			fmt.Fprintln(out, ui.LabelValue("Invite code", h.InviteCode))
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Email, "email", "e", "", "Account email")
	cmd.Flags().StringVarP(&req.Password, "password", "p", "", "Account password")
	cmd.Flags().StringVarP(&req.HouseholdName, "household", "n", "", "Name of a new household (include \"demo\" for sample members)")
	cmd.Flags().StringVarP(&req.InviteCode, "invite", "i", "", "Invite code of an existing household")

	return cmd
}

func newSignInCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "signin",
		Short: "Sign in to an existing account on this device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			acct, h, err := app.SignIn(email, password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("%s Signed in as %s (%s)", ui.IconDone, acct.Email, h.Name)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "Account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password")

	return cmd
}

func newSignOutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "signout",
		Short: "Sign out on this device (the account is kept)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.SignOut()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Signed out."))
			return nil
		},
	}
}
