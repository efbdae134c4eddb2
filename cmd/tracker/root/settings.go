package root

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dukerupert/togethertracker/internal/model"
	"github.com/dukerupert/togethertracker/internal/ui"
)

func newSettingsCmd() *cobra.Command {
	var theme, mode, leaderboard string

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change display and household settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.DisplaySettings()
			if theme != "" {
				s.ThemeColor = model.ThemeColor(strings.ToLower(theme))
			}
			switch strings.ToLower(mode) {
			case "":
			case "dark":
				s.Dark = true
			case "light":
				s.Dark = false
			default:
				return fmt.Errorf("unknown mode %q (want dark or light)", mode)
			}
			if err := app.SetDisplaySettings(s); err != nil {
				return err
			}
			ui.ApplyTheme(s)

			if leaderboard != "" {
				var enabled bool
				switch strings.ToLower(leaderboard) {
				case "on":
					enabled = true
				case "off":
				default:
					return fmt.Errorf("unknown leaderboard setting %q (want on or off)", leaderboard)
				}
				if err := requireSession(); err != nil {
					return err
				}
				if err := app.SetLeaderboard(enabled); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			modeName := "light"
			if s.Dark {
				modeName = "dark"
			}
			fmt.Fprintln(out, ui.LabelValue("Theme", s.ThemeColor))
			fmt.Fprintln(out, ui.LabelValue("Mode", modeName))
			if h := app.Household(); h != nil {
				state := "off"
				if h.Settings.LeaderboardEnabled {
					state = "on"
				}
				fmt.Fprintln(out, ui.LabelValue("Leaderboard", state))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&theme, "theme", "", "Accent color (purple|blue|green|orange|pink)")
	cmd.Flags().StringVar(&mode, "mode", "", "dark or light")
	cmd.Flags().StringVar(&leaderboard, "leaderboard", "", "Household leaderboard (on|off)")

	return cmd
}
