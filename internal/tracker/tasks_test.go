package tracker

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dukerupert/togethertracker/internal/model"
	"github.com/dukerupert/togethertracker/internal/recurrence"
	"github.com/dukerupert/togethertracker/internal/store"
	"github.com/dukerupert/togethertracker/internal/task"
)

// clearTasks removes the welcome tasks so tests start from an empty board.
func clearTasks(t *testing.T, app *App) {
	t.Helper()
	for _, tk := range app.Tasks() {
		if err := app.DeleteTask(tk.ID); err != nil {
			t.Fatalf("delete %s: %v", tk.ID, err)
		}
	}
}

func TestCreateTaskDefaults(t *testing.T) {
	env := newTestEnv(t)
	app := env.open(Options{})
	signUp(t, app, "dana@example.com", "Smith")
	me := app.CurrentMember()

	tk, err := app.CreateTask(NewTask{Title: "  Water plants ", AssigneeID: me.ID, Points: 5})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if tk.Title != "Water plants" {
		t.Errorf("title = %q", tk.Title)
	}
	if tk.Priority != model.PriorityMedium {
		t.Errorf("priority = %q, want medium", tk.Priority)
	}
	if tk.Category != "general" {
		t.Errorf("category = %q, want general", tk.Category)
	}
	if tk.EstimatedMinutes != 30 {
		t.Errorf("estimated minutes = %d, want 30", tk.EstimatedMinutes)
	}
	if tk.Status != model.TaskPending {
		t.Errorf("status = %q, want pending", tk.Status)
	}
	if !tk.DueAt.Equal(env.now) {
		t.Errorf("due = %v, want %v", tk.DueAt, env.now)
	}
	if tk.Recurrence != recurrence.Once() {
		t.Errorf("recurrence = %+v, want none", tk.Recurrence)
	}
	if tk.CreatedBy != me.ID {
		t.Errorf("created by = %q, want %q", tk.CreatedBy, me.ID)
	}

	stored := store.NewTaskStore(env.kv).List(tk.HouseholdID)
	if len(stored) != 4 {
		t.Fatalf("stored tasks = %d, want 4", len(stored))
	}
	if stored[3].ID != tk.ID {
		t.Errorf("last stored task = %q, want %q", stored[3].ID, tk.ID)
	}
}

func TestCreateTaskRejectsIncompleteInput(t *testing.T) {
	env := newTestEnv(t)
	app := env.open(Options{})
	signUp(t, app, "dana@example.com", "Smith")
	me := app.CurrentMember().ID

	tests := []struct {
		name string
		in   NewTask
		want error
	}{
		{"no title", NewTask{AssigneeID: me}, ErrMissingField},
		{"blank title", NewTask{Title: "   ", AssigneeID: me}, ErrMissingField},
		{"no assignee", NewTask{Title: "Dishes"}, ErrMissingField},
		{"unknown assignee", NewTask{Title: "Dishes", AssigneeID: "stranger"}, ErrMemberNotFound},
	}
	for _, tt := range tests {
		if _, err := app.CreateTask(tt.in); !errors.Is(err, tt.want) {
			t.Errorf("%s: err = %v, want %v", tt.name, err, tt.want)
		}
	}

	var verr *ValidationError
	if _, err := app.CreateTask(NewTask{Title: "Dishes", AssigneeID: me, Priority: "urgent"}); !errors.As(err, &verr) {
		t.Errorf("bad priority: err = %v, want ValidationError", err)
	}
	if _, err := app.CreateTask(NewTask{Title: "Dishes", AssigneeID: me, Recurrence: recurrence.EveryMonthOn(40)}); !errors.As(err, &verr) {
		t.Errorf("bad recurrence: err = %v, want ValidationError", err)
	}

	if n := len(app.Tasks()); n != 3 {
		t.Errorf("rejected creates changed the task list: %d tasks", n)
	}
}

func TestCompleteTaskCreditsAssignee(t *testing.T) {
	env := newTestEnv(t)
	app := env.open(Options{})
	signUp(t, app, "dana@example.com", "Demo")
	alex := memberNamed(t, app, "Alex")

	// Long overdue tasks earn the same as anything else.
	tk, err := app.CreateTask(NewTask{
		Title:      "Fold laundry",
		AssigneeID: alex.ID,
		Points:     25,
		DueAt:      env.now.AddDate(-1, 0, 0),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	m, err := app.CompleteTask(tk.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if m.Points != alex.Points+25 || m.Streak != alex.Streak+1 {
		t.Errorf("after completion points=%d streak=%d, want %d/%d", m.Points, m.Streak, alex.Points+25, alex.Streak+1)
	}

	done := app.Tasks()[len(app.Tasks())-1]
	if done.Status != model.TaskCompleted {
		t.Errorf("status = %q, want completed", done.Status)
	}
	if done.CompletedAt == nil || !done.CompletedAt.Equal(env.now) {
		t.Errorf("completed at = %v, want %v", done.CompletedAt, env.now)
	}

	stored := store.NewMemberStore(env.kv).List(alex.HouseholdID)
	for _, sm := range stored {
		if sm.ID == alex.ID && sm.Points != alex.Points+25 {
			t.Errorf("stored points = %d, want %d", sm.Points, alex.Points+25)
		}
	}
}

func TestCompleteTaskUpdatesActiveMember(t *testing.T) {
	env := newTestEnv(t)
	app := env.open(Options{})
	signUp(t, app, "dana@example.com", "Smith")

	welcome := app.Tasks()[0]
	if _, err := app.CompleteTask(welcome.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if cur := app.CurrentMember(); cur.Points != welcome.Points || cur.Streak != 1 {
		t.Errorf("active member points=%d streak=%d, want %d/1", cur.Points, cur.Streak, welcome.Points)
	}
}

func TestCompleteTaskTwiceIsGuarded(t *testing.T) {
	env := newTestEnv(t)
	app := env.open(Options{})
	signUp(t, app, "dana@example.com", "Smith")
	welcome := app.Tasks()[0]

	if _, err := app.CompleteTask(welcome.ID); err != nil {
		t.Fatalf("first complete: %v", err)
	}
	if _, err := app.CompleteTask(welcome.ID); !errors.Is(err, ErrAlreadyCompleted) {
		t.Fatalf("second complete: err = %v, want ErrAlreadyCompleted", err)
	}
	if cur := app.CurrentMember(); cur.Points != 10 || cur.Streak != 1 {
		t.Errorf("points=%d streak=%d, want 10/1", cur.Points, cur.Streak)
	}
}

func TestCompleteTaskTwiceLegacyDoubleCredits(t *testing.T) {
	env := newTestEnv(t)
	app := env.open(Options{AllowRecompletion: true})
	signUp(t, app, "dana@example.com", "Smith")
	welcome := app.Tasks()[0]

	for i := 0; i < 2; i++ {
		if _, err := app.CompleteTask(welcome.ID); err != nil {
			t.Fatalf("complete #%d: %v", i+1, err)
		}
	}
	if cur := app.CurrentMember(); cur.Points != 20 || cur.Streak != 2 {
		t.Errorf("points=%d streak=%d, want 20/2", cur.Points, cur.Streak)
	}
}

func TestCompleteUnknownTask(t *testing.T) {
	env := newTestEnv(t)
	app := env.open(Options{})
	signUp(t, app, "dana@example.com", "Smith")

	if _, err := app.CompleteTask("missing"); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("err = %v, want ErrTaskNotFound", err)
	}
	if cur := app.CurrentMember(); cur.Points != 0 || cur.Streak != 0 {
		t.Errorf("unknown task changed member: %+v", cur)
	}
}

func TestDeleteTask(t *testing.T) {
	env := newTestEnv(t)
	app := env.open(Options{})
	_, h := signUp(t, app, "dana@example.com", "Smith")
	victim := app.Tasks()[1]

	if err := app.DeleteTask(victim.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := app.DeleteTask(victim.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("second delete: err = %v, want ErrTaskNotFound", err)
	}
	stored := store.NewTaskStore(env.kv).List(h.ID)
	if len(stored) != 2 {
		t.Fatalf("expected 2 stored tasks, got %d", len(stored))
	}
	for _, tk := range stored {
		if tk.ID == victim.ID {
			t.Error("deleted task still stored")
		}
	}
}

func TestTodayTasks(t *testing.T) {
	env := newTestEnv(t)
	app := env.open(Options{})
	signUp(t, app, "dana@example.com", "Smith")

	// Two welcome tasks are due now, the trash run tomorrow.
	today := app.TodayTasks()
	if len(today) != 2 {
		t.Fatalf("expected 2 tasks today, got %d", len(today))
	}
	for _, tk := range today {
		if tk.Title == "Take out the trash" {
			t.Error("tomorrow's task listed today")
		}
	}
}

func TestUpcomingTasks(t *testing.T) {
	env := newTestEnv(t)
	app := env.open(Options{})
	signUp(t, app, "dana@example.com", "Smith")
	clearTasks(t, app)
	me := app.CurrentMember().ID

	create := func(title string, due time.Time) model.Task {
		t.Helper()
		tk, err := app.CreateTask(NewTask{Title: title, AssigneeID: me, DueAt: due})
		if err != nil {
			t.Fatalf("create %s: %v", title, err)
		}
		return tk
	}

	create("due now", env.now)
	done := create("finished", env.now.Add(time.Hour))
	if _, err := app.CompleteTask(done.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	var future []model.Task
	for _, h := range []int{7, 3, 5, 1, 6, 2, 4} {
		future = append(future, create(fmt.Sprintf("in %dh", h), env.now.Add(time.Duration(h)*time.Hour)))
	}

	got := app.UpcomingTasks()
	if len(got) != task.UpcomingLimit {
		t.Fatalf("expected %d upcoming, got %d", task.UpcomingLimit, len(got))
	}
	for i, tk := range got {
		if tk.ID != future[i].ID {
			t.Errorf("upcoming[%d] = %q, want %q", i, tk.Title, future[i].Title)
		}
	}
}

func TestTaskQueries(t *testing.T) {
	env := newTestEnv(t)
	app := env.open(Options{})
	signUp(t, app, "dana@example.com", "Demo")
	alex := memberNamed(t, app, "Alex")

	alexTasks := app.TasksFor(alex.ID)
	if len(alexTasks) != 1 || alexTasks[0].Title != "Clean your room" {
		t.Fatalf("alex tasks = %+v", alexTasks)
	}
	if _, err := app.CompleteTask(alexTasks[0].ID); err != nil {
		t.Fatalf("complete: %v", err)
	}

	if n := len(app.TasksByStatus(true)); n != 1 {
		t.Errorf("completed = %d, want 1", n)
	}
	if n := len(app.TasksByStatus(false)); n != 2 {
		t.Errorf("open = %d, want 2", n)
	}

	board := app.Board(app.Tasks())
	if board[1].MemberName != "Alex" || board[1].Status != task.StatusCompleted {
		t.Errorf("board[1] = %s/%s", board[1].MemberName, board[1].Status)
	}
	if board[1].NextDue == nil {
		t.Error("daily task should report its next occurrence")
	}

	env.now = env.now.AddDate(0, 0, 3)
	if status, _ := app.DueStatus(app.Tasks()[0]); status != task.StatusOverdue {
		t.Errorf("welcome task status three days later = %q, want overdue", status)
	}
}

func TestRedeem(t *testing.T) {
	env := newTestEnv(t)
	app := env.open(Options{})
	signUp(t, app, "dana@example.com", "Demo")
	alex := memberNamed(t, app, "Alex")
	if _, err := app.SwitchMember(alex.ID); err != nil {
		t.Fatalf("switch: %v", err)
	}

	movie := rewardNamed(t, app, "Movie Night")
	if _, err := app.Redeem(movie.ID); !errors.Is(err, ErrInsufficientPoints) {
		t.Fatalf("redeem 100 with 85: err = %v, want ErrInsufficientPoints", err)
	}
	if cur := app.CurrentMember(); cur.Points != 85 {
		t.Errorf("balance after refused redemption = %d, want 85", cur.Points)
	}

	iceCream := rewardNamed(t, app, "Ice Cream")
	m, err := app.Redeem(iceCream.ID)
	if err != nil {
		t.Fatalf("redeem: %v", err)
	}
	if m.Points != 35 || m.Streak != 3 {
		t.Errorf("after redemption points=%d streak=%d, want 35/3", m.Points, m.Streak)
	}
	if cur := app.CurrentMember(); cur.Points != 35 {
		t.Errorf("active member balance = %d, want 35", cur.Points)
	}
	if n := len(app.Rewards("all")); n != 4 {
		t.Errorf("redeemed reward should stay in catalog, got %d rewards", n)
	}

	if _, err := app.Redeem("missing"); !errors.Is(err, ErrRewardNotFound) {
		t.Errorf("unknown reward: err = %v, want ErrRewardNotFound", err)
	}

	app.currentID = ""
	if _, err := app.Redeem(iceCream.ID); !errors.Is(err, ErrNoActiveMember) {
		t.Errorf("no member: err = %v, want ErrNoActiveMember", err)
	}
}

func TestRewardsCatalog(t *testing.T) {
	env := newTestEnv(t)
	app := env.open(Options{})
	signUp(t, app, "dana@example.com", "Demo")
	if _, err := app.SwitchMember(memberNamed(t, app, "Alex").ID); err != nil {
		t.Fatalf("switch: %v", err)
	}

	privileges := app.Rewards("privileges")
	if len(privileges) != 2 {
		t.Fatalf("privileges = %d, want 2", len(privileges))
	}
	for _, e := range privileges {
		if want := e.PointsRequired <= 85; e.Affordable != want {
			t.Errorf("%s affordable = %v, want %v", e.Name, e.Affordable, want)
		}
	}
	if n := len(app.Rewards("items")); n != 0 {
		t.Errorf("items = %d, want 0", n)
	}

	r, err := app.AddReward(model.Reward{Name: "New book", PointsRequired: 200})
	if err != nil {
		t.Fatalf("add reward: %v", err)
	}
	if r.Category != "items" || !r.Available {
		t.Errorf("custom reward = %+v", r)
	}
	if n := len(app.Rewards("items")); n != 1 {
		t.Errorf("items after add = %d, want 1", n)
	}
	var verr *ValidationError
	if _, err := app.AddReward(model.Reward{Name: "Pony", Category: "livestock"}); !errors.As(err, &verr) {
		t.Errorf("bad category: err = %v, want ValidationError", err)
	}
}

func TestShoppingList(t *testing.T) {
	env := newTestEnv(t)
	app := env.open(Options{})
	_, h := signUp(t, app, "dana@example.com", "Smith")

	milk, err := app.AddShoppingItem(NewShoppingItem{Name: "Milk"})
	if err != nil {
		t.Fatalf("add milk: %v", err)
	}
	if milk.Category != "dairy" || milk.Quantity != 1 {
		t.Errorf("milk = %+v", milk)
	}
	if _, err := app.AddShoppingItem(NewShoppingItem{Name: "  "}); !errors.Is(err, ErrMissingField) {
		t.Errorf("blank name: err = %v, want ErrMissingField", err)
	}
	towels, err := app.AddShoppingItem(NewShoppingItem{Name: "Paper towels", Quantity: 2})
	if err != nil {
		t.Fatalf("add towels: %v", err)
	}
	if _, err := app.MarkUrgent(towels.ID, true); err != nil {
		t.Fatalf("mark urgent: %v", err)
	}
	cereal, err := app.AddShoppingItem(NewShoppingItem{Name: "Cereal"})
	if err != nil {
		t.Fatalf("add cereal: %v", err)
	}

	toggled, err := app.ToggleShoppingItem(milk.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !toggled.Completed {
		t.Error("expected milk completed")
	}

	items := app.ShoppingItems()
	order := []string{towels.ID, cereal.ID, milk.ID}
	for i, id := range order {
		if items[i].ID != id {
			t.Errorf("items[%d] = %q, want %q", i, items[i].Name, id)
		}
	}

	if err := app.RemoveShoppingItem(cereal.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := app.RemoveShoppingItem(cereal.ID); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("second remove: err = %v, want ErrItemNotFound", err)
	}
	if _, err := app.ToggleShoppingItem("missing"); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("toggle missing: err = %v, want ErrItemNotFound", err)
	}
	if n := len(store.NewShoppingStore(env.kv).List(h.ID)); n != 2 {
		t.Errorf("stored items = %d, want 2", n)
	}
}

func TestStats(t *testing.T) {
	env := newTestEnv(t)
	app := env.open(Options{})
	signUp(t, app, "dana@example.com", "Demo")

	if _, err := app.CompleteTask(app.Tasks()[0].ID); err != nil {
		t.Fatalf("complete: %v", err)
	}

	s := app.Stats()
	if s.TodayOpen != 1 {
		t.Errorf("today open = %d, want 1", s.TodayOpen)
	}
	if s.CompletionRate != 33 {
		t.Errorf("completion rate = %d, want 33", s.CompletionRate)
	}
	if s.TotalPoints != 120+85+95+10 {
		t.Errorf("total points = %d, want 310", s.TotalPoints)
	}
	if s.LongestStreak != 7 {
		t.Errorf("longest streak = %d, want 7", s.LongestStreak)
	}

	wantTop := []string{"Mom", "Emma", "Alex"}
	if len(s.Top) != len(wantTop) {
		t.Fatalf("top = %d members, want 3", len(s.Top))
	}
	for i, name := range wantTop {
		if s.Top[i].DisplayName != name {
			t.Errorf("top[%d] = %q, want %q", i, s.Top[i].DisplayName, name)
		}
	}

	last := s.Leaderboard[len(s.Leaderboard)-1]
	if last.Member.DisplayName != "dana" || last.Completed != 1 {
		t.Errorf("last leaderboard entry = %s with %d done", last.Member.DisplayName, last.Completed)
	}
}

func TestStatsEmptyHousehold(t *testing.T) {
	env := newTestEnv(t)
	app := env.open(Options{})

	s := app.Stats()
	if s.CompletionRate != 0 || len(s.Top) != 0 || len(s.Leaderboard) != 0 {
		t.Errorf("signed-out stats = %+v", s)
	}
}

func TestNotices(t *testing.T) {
	env := newTestEnv(t)
	app := env.open(Options{})
	_, h := signUp(t, app, "dana@example.com", "Smith")
	sub := app.Hub().Subscribe()

	if _, err := app.CompleteTask(app.Tasks()[0].ID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	code, err := app.CopyInviteCode()
	if err != nil {
		t.Fatalf("copy: %v", err)
	}
	if code != h.InviteCode {
		t.Errorf("code = %q, want %q", code, h.InviteCode)
	}

	msg := <-sub.C
	if msg.Text != "🎉 dana earned 10 points!" {
		t.Errorf("completion notice = %q", msg.Text)
	}

	texts := func() []string {
		var out []string
		for _, n := range app.Notices() {
			out = append(out, n.Text)
		}
		return out
	}
	if got := texts(); len(got) != 2 || got[1] != "📋 Invite code copied!" {
		t.Fatalf("notices = %q", got)
	}

	env.now = env.now.Add(2 * time.Second)
	if got := texts(); len(got) != 1 || got[0] != "🎉 dana earned 10 points!" {
		t.Errorf("after 2s notices = %q", got)
	}
	env.now = env.now.Add(time.Second)
	if got := texts(); len(got) != 0 {
		t.Errorf("after 3s notices = %q", got)
	}
}

func TestOperationsRequireSignIn(t *testing.T) {
	env := newTestEnv(t)
	app := env.open(Options{})

	if _, err := app.CreateTask(NewTask{Title: "x", AssigneeID: "y"}); !errors.Is(err, ErrNotSignedIn) {
		t.Errorf("create: err = %v", err)
	}
	if _, err := app.CompleteTask("x"); !errors.Is(err, ErrNotSignedIn) {
		t.Errorf("complete: err = %v", err)
	}
	if _, err := app.Redeem("x"); !errors.Is(err, ErrNotSignedIn) {
		t.Errorf("redeem: err = %v", err)
	}
	if _, err := app.AddShoppingItem(NewShoppingItem{Name: "x"}); !errors.Is(err, ErrNotSignedIn) {
		t.Errorf("shopping: err = %v", err)
	}
	if _, err := app.CopyInviteCode(); !errors.Is(err, ErrNotSignedIn) {
		t.Errorf("invite: err = %v", err)
	}
}
