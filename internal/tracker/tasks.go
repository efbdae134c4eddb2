package tracker

import (
	"fmt"
	"strings"
	"time"

	"github.com/dukerupert/togethertracker/internal/ledger"
	"github.com/dukerupert/togethertracker/internal/model"
	"github.com/dukerupert/togethertracker/internal/notify"
	"github.com/dukerupert/togethertracker/internal/recurrence"
	"github.com/dukerupert/togethertracker/internal/task"
)

const (
	defaultCategory = "general"
	defaultMinutes  = 30
	defaultPoints   = 10
)

// NewTask describes a task to create. Title and AssigneeID are required.
// A zero DueAt means now; a zero Recurrence means the task does not repeat.
type NewTask struct {
	Title            string
	Description      string
	Priority         model.Priority
	AssigneeID       string
	EstimatedMinutes int
	Points           int
	Category         string
	DueAt            time.Time
	Recurrence       recurrence.Rule
}

func (a *App) CreateTask(in NewTask) (model.Task, error) {
	if err := a.requireHousehold(); err != nil {
		return model.Task{}, err
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return model.Task{}, missing("title")
	}
	if in.AssigneeID == "" {
		return model.Task{}, missing("assignee")
	}
	if a.memberIndex(in.AssigneeID) < 0 {
		return model.Task{}, ErrMemberNotFound
	}

	switch in.Priority {
	case "":
		in.Priority = model.PriorityMedium
	case model.PriorityHigh, model.PriorityMedium, model.PriorityLow:
	default:
		return model.Task{}, &ValidationError{Field: "priority", Message: fmt.Sprintf("unknown priority %q", in.Priority)}
	}
	if err := in.Recurrence.Validate(); err != nil {
		return model.Task{}, &ValidationError{Field: "recurrence", Message: err.Error()}
	}
	if in.Recurrence.Kind == "" {
		in.Recurrence = recurrence.Once()
	}
	if in.Category == "" {
		in.Category = defaultCategory
	}
	if in.EstimatedMinutes <= 0 {
		in.EstimatedMinutes = defaultMinutes
	}
	if in.Points < 0 {
		in.Points = 0
	}

	now := a.now()
	if in.DueAt.IsZero() {
		in.DueAt = now
	}
	t := model.Task{
		ID:               a.newID(),
		HouseholdID:      a.household.ID,
		Title:            title,
		Description:      strings.TrimSpace(in.Description),
		Priority:         in.Priority,
		Status:           model.TaskPending,
		AssignedTo:       in.AssigneeID,
		CreatedBy:        a.currentID,
		DueAt:            in.DueAt,
		EstimatedMinutes: in.EstimatedMinutes,
		Points:           in.Points,
		Category:         in.Category,
		Recurrence:       in.Recurrence,
		CreatedAt:        now,
	}
	a.taskList = append(a.taskList, t)
	a.saveTasks()

	a.notify("task", "created", t.ID, "✅ Task created successfully!", notify.DefaultTTL)
	return t, nil
}

// CompleteTask marks the task completed and credits its points to the
// assignee. It returns the credited member.
func (a *App) CompleteTask(id string) (model.Member, error) {
	if err := a.requireHousehold(); err != nil {
		return model.Member{}, err
	}
	i := a.taskIndex(id)
	if i < 0 {
		return model.Member{}, ErrTaskNotFound
	}
	t := &a.taskList[i]
	if t.Status == model.TaskCompleted && !a.allowRecompletion {
		return model.Member{}, ErrAlreadyCompleted
	}

	now := a.now()
	t.Status = model.TaskCompleted
	t.CompletedAt = &now
	a.saveTasks()

	m, err := ledger.Credit(a.memberList, t.AssignedTo, t.Points)
	if err != nil {
		a.logger.Warn("completed task has no assignee to credit", "task", t.ID, "assignee", t.AssignedTo)
		return model.Member{}, fmt.Errorf("credit points: %w", err)
	}
	a.saveMembers()

	a.notify("task", "completed", t.ID, fmt.Sprintf("🎉 %s earned %d points!", m.DisplayName, t.Points), notify.DefaultTTL)
	return m, nil
}

func (a *App) DeleteTask(id string) error {
	if err := a.requireHousehold(); err != nil {
		return err
	}
	i := a.taskIndex(id)
	if i < 0 {
		return ErrTaskNotFound
	}
	a.taskList = append(a.taskList[:i], a.taskList[i+1:]...)
	a.saveTasks()
	return nil
}

func (a *App) taskIndex(id string) int {
	for i := range a.taskList {
		if a.taskList[i].ID == id {
			return i
		}
	}
	return -1
}

// Tasks returns every task in insertion order.
func (a *App) Tasks() []model.Task {
	return append([]model.Task(nil), a.taskList...)
}

// TodayTasks returns tasks due on the current calendar day.
func (a *App) TodayTasks() []model.Task {
	return task.DueToday(a.taskList, a.now())
}

// UpcomingTasks returns up to five open tasks due after now.
func (a *App) UpcomingTasks() []model.Task {
	return task.Upcoming(a.taskList, a.now(), task.UpcomingLimit)
}

func (a *App) TasksByStatus(completed bool) []model.Task {
	return task.ByCompletion(a.taskList, completed)
}

func (a *App) TasksFor(memberID string) []model.Task {
	return task.AssignedTo(a.taskList, memberID)
}

// DueStatus reports whether t is pending, overdue or done, and when it next
// recurs.
func (a *App) DueStatus(t model.Task) (task.Status, *time.Time) {
	return task.ComputeStatus(t, a.now())
}

// Board annotates tasks with their due status and assignee.
func (a *App) Board(tasks []model.Task) []task.WithStatus {
	return task.Annotate(tasks, a.memberList, a.now())
}
