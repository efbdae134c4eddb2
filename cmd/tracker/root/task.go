package root

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dukerupert/togethertracker/internal/model"
	"github.com/dukerupert/togethertracker/internal/recurrence"
	"github.com/dukerupert/togethertracker/internal/task"
	"github.com/dukerupert/togethertracker/internal/tracker"
	"github.com/dukerupert/togethertracker/internal/ui"
)

func newTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "task",
		Short:             "Create, list, complete and delete tasks",
		PersistentPreRunE: withSession,
	}
	cmd.AddCommand(newTaskAddCmd(), newTaskListCmd(), newTaskDoneCmd(), newTaskRmCmd())
	return cmd
}

func newTaskAddCmd() *cobra.Command {
	var in tracker.NewTask
	var priority, assignee, due, repeat string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Title = args[0]
			in.Priority = model.Priority(strings.ToLower(priority))

			if assignee == "" {
				m := app.CurrentMember()
				if m == nil {
					return tracker.ErrNoActiveMember
				}
				in.AssigneeID = m.ID
			} else {
				m, err := resolveMember(assignee)
				if err != nil {
					return err
				}
				in.AssigneeID = m.ID
			}

			if due != "" {
				t, err := parseDue(due)
				if err != nil {
					return err
				}
				in.DueAt = t
			}
			kind, err := recurrence.ParseKind(repeat)
			if err != nil {
				return err
			}
			anchor := in.DueAt
			if anchor.IsZero() {
				anchor = time.Now()
			}
			in.Recurrence = recurrence.Anchored(kind, anchor)

			t, err := app.CreateTask(in)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printNotices(out)
			fmt.Fprintln(out, ui.LabelValue("id", ui.ShortID(t.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&in.Description, "desc", "d", "", "Description")
	cmd.Flags().StringVarP(&priority, "priority", "p", "medium", "Priority (high|medium|low)")
	cmd.Flags().StringVarP(&assignee, "assign", "a", "", "Member name or id (default: you)")
	cmd.Flags().IntVarP(&in.EstimatedMinutes, "minutes", "m", 30, "Estimated minutes")
	cmd.Flags().IntVar(&in.Points, "points", 10, "Points earned on completion")
	cmd.Flags().StringVarP(&in.Category, "category", "c", "general", "Category")
	cmd.Flags().StringVar(&due, "due", "", "Due date (2006-01-02, 2006-01-02T15:04 or RFC 3339; default now)")
	cmd.Flags().StringVarP(&repeat, "repeat", "r", "none", "Repeat (none|daily|weekly|monthly)")

	return cmd
}

func parseDue(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid due date %q", s)
}

func newTaskListCmd() *cobra.Command {
	var done, open, mine bool
	var member string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks := app.Tasks()
			switch {
			case done:
				tasks = app.TasksByStatus(true)
			case open:
				tasks = app.TasksByStatus(false)
			}
			if mine {
				if m := app.CurrentMember(); m != nil {
					member = m.ID
				}
			}
			if member != "" {
				m, err := resolveMember(member)
				if err != nil {
					return err
				}
				tasks = task.AssignedTo(tasks, m.ID)
			}

			out := cmd.OutOrStdout()
			if len(tasks) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No tasks."))
				return nil
			}
			for _, t := range app.Board(tasks) {
				line := fmt.Sprintf("%s  %-11s %s  %s  %s  %s",
					ui.Muted.Render(ui.ShortID(t.ID)),
					ui.StatusText(string(t.Status)),
					ui.PriorityText(t.Priority),
					t.Title,
					ui.Muted.Render(t.MemberIcon+" "+t.MemberName),
					ui.Points(t.Points),
				)
				if t.NextDue != nil {
					line += "  " + ui.Muted.Render(ui.IconLoop+" "+t.NextDue.Local().Format("Jan 2"))
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&done, "done", false, "Only completed tasks")
	cmd.Flags().BoolVar(&open, "open", false, "Only open tasks")
	cmd.Flags().BoolVar(&mine, "mine", false, "Only tasks assigned to you")
	cmd.Flags().StringVar(&member, "member", "", "Only tasks assigned to this member")

	return cmd
}

func newTaskDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Complete a task and credit its points",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTask(args[0])
			if err != nil {
				return err
			}
			m, err := app.CompleteTask(id)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printNotices(out)
			fmt.Fprintln(out, ui.LabelValue(m.DisplayName, fmt.Sprintf("%s  %s %d", ui.Points(m.Points), ui.IconFire, m.Streak)))
			return nil
		},
	}
}

func newTaskRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTask(args[0])
			if err != nil {
				return err
			}
			if err := app.DeleteTask(id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Task deleted."))
			return nil
		},
	}
}
