package task

import (
	"time"

	"github.com/dukerupert/togethertracker/internal/model"
)

// UpcomingLimit caps the upcoming list.
const UpcomingLimit = 5

// SameDay reports whether a and b fall on the same calendar day in b's
// location.
func SameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DueToday returns tasks due on now's calendar day, whatever their status.
func DueToday(tasks []model.Task, now time.Time) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		if SameDay(t.DueAt, now) {
			out = append(out, t)
		}
	}
	return out
}

// Upcoming returns up to limit tasks due strictly after now that are not
// completed, in insertion order.
func Upcoming(tasks []model.Task, now time.Time, limit int) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		if len(out) == limit {
			break
		}
		if t.DueAt.After(now) && t.Status != model.TaskCompleted {
			out = append(out, t)
		}
	}
	return out
}

// ByCompletion splits the board: completed tasks when completed is true,
// every other status otherwise.
func ByCompletion(tasks []model.Task, completed bool) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		if (t.Status == model.TaskCompleted) == completed {
			out = append(out, t)
		}
	}
	return out
}

func AssignedTo(tasks []model.Task, memberID string) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		if t.AssignedTo == memberID {
			out = append(out, t)
		}
	}
	return out
}

// CountByStatus counts tasks with the given stored status.
func CountByStatus(tasks []model.Task, status model.TaskStatus) int {
	n := 0
	for _, t := range tasks {
		if t.Status == status {
			n++
		}
	}
	return n
}
