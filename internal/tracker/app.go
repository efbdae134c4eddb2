package tracker

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dukerupert/togethertracker/internal/kv"
	"github.com/dukerupert/togethertracker/internal/model"
	"github.com/dukerupert/togethertracker/internal/notify"
	"github.com/dukerupert/togethertracker/internal/store"
)

type Options struct {
	Logger *slog.Logger
	// Now defaults to time.Now.
	Now func() time.Time
	// Intn returns a value in [0, n). Defaults to math/rand/v2.IntN.
	Intn func(n int) int
	// NewID defaults to random UUIDs.
	NewID func() string
	// Hub receives notices. A hub is created when nil.
	Hub *notify.Hub
	// AllowRecompletion lets a completed task be completed again, crediting
	// its points each time.
	AllowRecompletion bool
	// BcryptCost defaults to bcrypt.DefaultCost.
	BcryptCost int
}

// App owns the signed-in household's state. Every mutating method writes the
// collections it changed before returning. App is not safe for concurrent use.
type App struct {
	accounts   *store.AccountStore
	households *store.HouseholdStore
	members    *store.MemberStore
	tasks      *store.TaskStore
	shopping   *store.ShoppingStore
	rewards    *store.RewardStore
	settings   *store.SettingsStore

	hub               *notify.Hub
	logger            *slog.Logger
	now               func() time.Time
	intn              func(int) int
	newID             func() string
	allowRecompletion bool
	bcryptCost        int

	account      *model.Account
	household    *model.Household
	memberList   []model.Member
	currentID    string
	taskList     []model.Task
	shoppingList []model.ShoppingItem
	rewardList   []model.Reward
}

func New(s *kv.Store, opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Intn == nil {
		opts.Intn = rand.IntN
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	if opts.Hub == nil {
		opts.Hub = notify.NewHub(opts.Logger, opts.Now)
	}
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	return &App{
		accounts:          store.NewAccountStore(s),
		households:        store.NewHouseholdStore(s),
		members:           store.NewMemberStore(s),
		tasks:             store.NewTaskStore(s),
		shopping:          store.NewShoppingStore(s),
		rewards:           store.NewRewardStore(s),
		settings:          store.NewSettingsStore(s),
		hub:               opts.Hub,
		logger:            opts.Logger,
		now:               opts.Now,
		intn:              opts.Intn,
		newID:             opts.NewID,
		allowRecompletion: opts.AllowRecompletion,
		bcryptCost:        opts.BcryptCost,
	}
}

func (a *App) Hub() *notify.Hub { return a.hub }

// Notices returns the notices that have not yet expired.
func (a *App) Notices() []notify.Message { return a.hub.Active() }

func (a *App) notify(entity, action, id, text string, ttl time.Duration) {
	a.hub.Publish(notify.NewMessage(entity, action, id, text), ttl)
}

// Account returns the signed-in account, or nil.
func (a *App) Account() *model.Account {
	if a.account == nil {
		return nil
	}
	acct := *a.account
	return &acct
}

// Household returns the signed-in household, or nil.
func (a *App) Household() *model.Household {
	if a.household == nil {
		return nil
	}
	h := *a.household
	return &h
}

func (a *App) Members() []model.Member {
	return append([]model.Member(nil), a.memberList...)
}

// CurrentMember returns the active member, or nil when none is selected.
func (a *App) CurrentMember() *model.Member {
	if i := a.memberIndex(a.currentID); i >= 0 {
		m := a.memberList[i]
		return &m
	}
	return nil
}

func (a *App) memberIndex(id string) int {
	if id == "" {
		return -1
	}
	for i := range a.memberList {
		if a.memberList[i].ID == id {
			return i
		}
	}
	return -1
}

func (a *App) requireHousehold() error {
	if a.household == nil {
		return ErrNotSignedIn
	}
	return nil
}

// load replaces in-memory state with the household's stored collections and
// picks the active member: preferred if it belongs to the household, else the
// account's own member, else the first member.
func (a *App) load(acct model.Account, h model.Household, preferred string) {
	a.account = &acct
	a.household = &h
	a.memberList = a.members.List(h.ID)
	a.taskList = a.tasks.List(h.ID)
	a.shoppingList = a.shopping.List(h.ID)
	a.rewardList = a.rewards.List(h.ID)

	a.currentID = ""
	if a.memberIndex(preferred) >= 0 {
		a.currentID = preferred
		return
	}
	for _, m := range a.memberList {
		if m.AccountID == acct.ID {
			a.currentID = m.ID
			return
		}
	}
	if len(a.memberList) > 0 {
		a.currentID = a.memberList[0].ID
	}
}

func (a *App) reset() {
	a.account = nil
	a.household = nil
	a.memberList = nil
	a.currentID = ""
	a.taskList = nil
	a.shoppingList = nil
	a.rewardList = nil
}

func (a *App) saveMembers()  { a.members.Save(a.household.ID, a.memberList) }
func (a *App) saveTasks()    { a.tasks.Save(a.household.ID, a.taskList) }
func (a *App) saveShopping() { a.shopping.Save(a.household.ID, a.shoppingList) }
func (a *App) saveRewards()  { a.rewards.Save(a.household.ID, a.rewardList) }
