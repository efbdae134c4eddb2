package root

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dukerupert/togethertracker/internal/model"
	"github.com/dukerupert/togethertracker/internal/ui"
)

func newDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "dashboard",
		Aliases:           []string{"status"},
		Short:             "Show today's tasks, household stats and the leaderboard",
		Args:              cobra.NoArgs,
		PersistentPreRunE: withSession,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			h := app.Household()
			s := app.Stats()

			fmt.Fprintln(out, ui.Heading(ui.IconHouse, h.Name))
			if m := app.CurrentMember(); m != nil {
				fmt.Fprintln(out, ui.LabelValue("You", fmt.Sprintf("%s  %s  %s %d", ui.MemberName(*m), ui.Points(m.Points), ui.IconFire, m.Streak)))
			}

			stats := strings.Join([]string{
				ui.LabelValue("Due today", s.TodayOpen),
				ui.LabelValue("Completed", fmt.Sprintf("%d%%", s.CompletionRate)),
				ui.LabelValue("Family points", s.TotalPoints),
				ui.LabelValue("Best streak", s.LongestStreak),
			}, "\n")
			fmt.Fprintln(out, ui.Panel.Render(stats))

			fmt.Fprintln(out, ui.H2.Render(ui.IconTask+" Today"))
			today := app.Board(app.TodayTasks())
			if len(today) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("  Nothing due today."))
			}
			for _, t := range today {
				fmt.Fprintf(out, "  %s  %s  %s  %s\n", ui.StatusText(string(t.Status)), t.Title, ui.Muted.Render(t.MemberIcon+" "+t.MemberName), ui.Points(t.Points))
			}

			if upcoming := app.UpcomingTasks(); len(upcoming) > 0 {
				fmt.Fprintln(out, ui.H2.Render("Upcoming"))
				for _, t := range upcoming {
					fmt.Fprintf(out, "  %s  %s\n", ui.Muted.Render(t.DueAt.Local().Format("Mon Jan 2 15:04")), t.Title)
				}
			}

			if len(s.Top) > 0 {
				fmt.Fprintln(out, ui.H2.Render(ui.IconStar+" Top performers"))
				fmt.Fprint(out, renderTop(s.Top))
			}

			if h.Settings.LeaderboardEnabled {
				fmt.Fprintln(out, ui.H2.Render(ui.IconTrophy+" Leaderboard"))
				for i, e := range s.Leaderboard {
					fmt.Fprintf(out, "  %d. %s  %s  %s\n", i+1, ui.MemberName(e.Member), ui.Points(e.Member.Points), ui.Muted.Render(fmt.Sprintf("%d done", e.Completed)))
				}
			}
			return nil
		},
	}
}

var medals = []string{"🥇", "🥈", "🥉"}

// renderTop lists members by rank, medals for the first three.
func renderTop(top []model.Member) string {
	var b strings.Builder
	for i, m := range top {
		rank := fmt.Sprintf("%d.", i+1)
		if i < len(medals) {
			rank = medals[i]
		}
		fmt.Fprintf(&b, "  %s %s  %s\n", rank, ui.MemberName(m), ui.Points(m.Points))
	}
	return b.String()
}
