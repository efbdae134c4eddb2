package tracker

import (
	"math"
	"sort"

	"github.com/dukerupert/togethertracker/internal/model"
	"github.com/dukerupert/togethertracker/internal/task"
)

const topMembers = 3

type LeaderboardEntry struct {
	Member    model.Member
	Completed int
}

// Stats summarizes the household for the dashboard.
type Stats struct {
	TodayOpen      int
	CompletionRate int // percent, rounded
	TotalPoints    int
	LongestStreak  int
	Top            []model.Member
	Leaderboard    []LeaderboardEntry
}

func (a *App) Stats() Stats {
	var s Stats
	for _, t := range task.DueToday(a.taskList, a.now()) {
		if t.Status != model.TaskCompleted {
			s.TodayOpen++
		}
	}
	if n := len(a.taskList); n > 0 {
		done := task.CountByStatus(a.taskList, model.TaskCompleted)
		s.CompletionRate = int(math.Round(float64(done) / float64(n) * 100))
	}

	ranked := a.Members()
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Points > ranked[j].Points })
	for _, m := range ranked {
		s.TotalPoints += m.Points
		s.LongestStreak = max(s.LongestStreak, m.Streak)
		s.Leaderboard = append(s.Leaderboard, LeaderboardEntry{
			Member:    m,
			Completed: len(task.ByCompletion(task.AssignedTo(a.taskList, m.ID), true)),
		})
	}
	s.Top = ranked[:min(topMembers, len(ranked))]
	return s
}
