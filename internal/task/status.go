package task

import (
	"time"

	"github.com/dukerupert/togethertracker/internal/model"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusOverdue    Status = "overdue"
)

// maxRollForward bounds the search for the next occurrence of a recurring
// task whose due date lies far in the past.
const maxRollForward = 1000

type WithStatus struct {
	model.Task
	Status     Status
	NextDue    *time.Time
	MemberName string
	MemberIcon string
}

// ComputeStatus derives the display status of a task and, for recurring
// tasks, the next due date after now. A task is overdue when it is still open
// and its due day is before today.
func ComputeStatus(t model.Task, now time.Time) (Status, *time.Time) {
	var next *time.Time
	if t.Recurrence.Repeats() {
		n := t.Recurrence.Next(t.DueAt)
		for i := 0; i < maxRollForward && !n.After(now); i++ {
			n = t.Recurrence.Next(n)
		}
		next = &n
	}

	switch t.Status {
	case model.TaskCompleted:
		return StatusCompleted, next
	case model.TaskCancelled:
		return StatusCancelled, next
	}

	if startOfDay(t.DueAt.In(now.Location())).Before(startOfDay(now)) {
		return StatusOverdue, next
	}
	if t.Status == model.TaskInProgress {
		return StatusInProgress, next
	}
	return StatusPending, next
}

// Annotate computes the status of every task and attaches assignee details.
func Annotate(tasks []model.Task, members []model.Member, now time.Time) []WithStatus {
	byID := make(map[string]model.Member, len(members))
	for _, m := range members {
		byID[m.ID] = m
	}

	out := make([]WithStatus, 0, len(tasks))
	for _, t := range tasks {
		status, next := ComputeStatus(t, now)
		ws := WithStatus{Task: t, Status: status, NextDue: next}
		if m, ok := byID[t.AssignedTo]; ok {
			ws.MemberName = m.DisplayName
			ws.MemberIcon = m.Avatar
		}
		out = append(out, ws)
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
