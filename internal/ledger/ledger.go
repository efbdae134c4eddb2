// Package ledger applies point credits and debits to household members.
// Balances are running counters; no transaction log is kept.
package ledger

import (
	"errors"

	"github.com/dukerupert/togethertracker/internal/model"
)

var (
	ErrMemberNotFound     = errors.New("member not found")
	ErrInsufficientPoints = errors.New("insufficient points")
)

func find(members []model.Member, id string) int {
	for i := range members {
		if members[i].ID == id {
			return i
		}
	}
	return -1
}

// Credit adds points to the member and advances their streak by one. The
// streak does not look at dates: every completion counts.
func Credit(members []model.Member, memberID string, points int) (model.Member, error) {
	i := find(members, memberID)
	if i < 0 {
		return model.Member{}, ErrMemberNotFound
	}
	members[i].Points += points
	members[i].Streak++
	return members[i], nil
}

// Debit subtracts cost from the member's balance. The members slice is left
// untouched when the balance is short.
func Debit(members []model.Member, memberID string, cost int) (model.Member, error) {
	i := find(members, memberID)
	if i < 0 {
		return model.Member{}, ErrMemberNotFound
	}
	if members[i].Points < cost {
		return members[i], ErrInsufficientPoints
	}
	members[i].Points -= cost
	return members[i], nil
}
