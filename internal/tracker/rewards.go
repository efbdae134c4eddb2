package tracker

import (
	"fmt"

	"github.com/dukerupert/togethertracker/internal/ledger"
	"github.com/dukerupert/togethertracker/internal/model"
	"github.com/dukerupert/togethertracker/internal/notify"
	"github.com/dukerupert/togethertracker/internal/reward"
)

// Rewards lists the catalog filtered by category, with affordability for the
// active member.
func (a *App) Rewards(category string) []reward.Entry {
	balance := 0
	if m := a.CurrentMember(); m != nil {
		balance = m.Points
	}
	return reward.Catalog(a.rewardList, balance, category)
}

// Redeem spends the active member's points on a reward. The reward stays in
// the catalog.
func (a *App) Redeem(rewardID string) (model.Member, error) {
	if err := a.requireHousehold(); err != nil {
		return model.Member{}, err
	}
	r := a.findReward(rewardID)
	if r == nil {
		return model.Member{}, ErrRewardNotFound
	}
	if a.currentID == "" {
		return model.Member{}, ErrNoActiveMember
	}

	m, err := ledger.Debit(a.memberList, a.currentID, r.PointsRequired)
	if err != nil {
		return m, fmt.Errorf("redeem %s: %w", r.Name, err)
	}
	a.saveMembers()

	a.notify("reward", "redeemed", r.ID, fmt.Sprintf("🎁 %s redeemed!", r.Name), notify.DefaultTTL)
	a.logger.Info("reward redeemed", "reward", r.ID, "member", m.ID, "balance", m.Points)
	return m, nil
}

func (a *App) findReward(id string) *model.Reward {
	for i := range a.rewardList {
		if a.rewardList[i].ID == id {
			return &a.rewardList[i]
		}
	}
	return nil
}

// AddReward puts a custom reward in the household catalog.
func (a *App) AddReward(r model.Reward) (model.Reward, error) {
	if err := a.requireHousehold(); err != nil {
		return model.Reward{}, err
	}
	if r.Name == "" {
		return model.Reward{}, missing("name")
	}
	if r.Category == "" || r.Category == reward.CategoryAll {
		r.Category = reward.CategoryItems
	}
	if !reward.ValidCategory(r.Category) {
		return model.Reward{}, &ValidationError{Field: "category", Message: fmt.Sprintf("unknown reward category %q", r.Category)}
	}
	if r.PointsRequired < 0 {
		return model.Reward{}, &ValidationError{Field: "points", Message: "points required cannot be negative"}
	}
	r.ID = a.newID()
	r.HouseholdID = a.household.ID
	r.CreatedBy = a.currentID
	r.Available = true
	a.rewardList = append(a.rewardList, r)
	a.saveRewards()
	return r, nil
}
