package tracker

import (
	"time"

	"github.com/dukerupert/togethertracker/internal/model"
	"github.com/dukerupert/togethertracker/internal/recurrence"
)

var demoRoster = []struct {
	name, avatar, color string
	role                model.Role
	points, streak      int
}{
	{"Mom", "👩", "#EC4899", model.RoleGuardian, 120, 5},
	{"Alex", "👦", "#3B82F6", model.RoleDependent, 85, 3},
	{"Emma", "👧", "#10B981", model.RoleDependent, 95, 7},
}

func (a *App) demoMembers(householdID string) []model.Member {
	now := a.now()
	members := make([]model.Member, 0, len(demoRoster))
	for _, d := range demoRoster {
		members = append(members, model.Member{
			ID:          a.newID(),
			HouseholdID: householdID,
			Role:        d.role,
			DisplayName: d.name,
			Avatar:      d.avatar,
			Color:       d.color,
			Points:      d.points,
			Streak:      d.streak,
			JoinedAt:    now,
		})
	}
	return members
}

// welcomeTasks seeds a fresh household. assignees is never empty; later
// tasks go to later assignees when there are enough of them.
func (a *App) welcomeTasks(householdID, createdBy string, assignees []string) []model.Task {
	now := a.now()
	pick := func(i int) string {
		return assignees[min(i, len(assignees)-1)]
	}
	seeds := []struct {
		title, description, category string
		priority                     model.Priority
		minutes, points              int
		rule                         recurrence.Kind
		assignee                     string
		due                          time.Time
	}{
		{"Welcome to TogetherTracker!", "Complete this task to earn your first points", "general",
			model.PriorityMedium, 5, 10, recurrence.None, pick(0), now},
		{"Clean your room", "Make your bed and organize your desk", "cleaning",
			model.PriorityHigh, 20, 15, recurrence.Daily, pick(2), now},
		{"Take out the trash", "Empty all bins and take to the curb", "chores",
			model.PriorityMedium, 10, 10, recurrence.Weekly, pick(3), now.Add(24 * time.Hour)},
	}

	tasks := make([]model.Task, 0, len(seeds))
	for _, s := range seeds {
		tasks = append(tasks, model.Task{
			ID:               a.newID(),
			HouseholdID:      householdID,
			Title:            s.title,
			Description:      s.description,
			Priority:         s.priority,
			Status:           model.TaskPending,
			AssignedTo:       s.assignee,
			CreatedBy:        createdBy,
			DueAt:            s.due,
			EstimatedMinutes: s.minutes,
			Points:           s.points,
			Category:         s.category,
			Recurrence:       recurrence.Anchored(s.rule, s.due),
			CreatedAt:        now,
		})
	}
	return tasks
}
