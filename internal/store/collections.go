package store

import (
	"github.com/dukerupert/togethertracker/internal/kv"
	"github.com/dukerupert/togethertracker/internal/model"
)

// collection is a per-household list stored whole under one key.
type collection[T any] struct {
	kv     *kv.Store
	prefix string
}

// List returns nil when the collection is absent or cannot be decoded.
func (c collection[T]) List(householdID string) []T {
	var items []T
	if !c.kv.Get(householdKey(c.prefix, householdID), &items) {
		return nil
	}
	return items
}

func (c collection[T]) Save(householdID string, items []T) {
	if items == nil {
		items = []T{}
	}
	c.kv.Set(householdKey(c.prefix, householdID), items)
}

type MemberStore struct {
	collection[model.Member]
}

func NewMemberStore(s *kv.Store) *MemberStore {
	return &MemberStore{collection[model.Member]{kv: s, prefix: prefixMembers}}
}

type TaskStore struct {
	collection[model.Task]
}

func NewTaskStore(s *kv.Store) *TaskStore {
	return &TaskStore{collection[model.Task]{kv: s, prefix: prefixTasks}}
}

type ShoppingStore struct {
	collection[model.ShoppingItem]
}

func NewShoppingStore(s *kv.Store) *ShoppingStore {
	return &ShoppingStore{collection[model.ShoppingItem]{kv: s, prefix: prefixShopping}}
}

type RewardStore struct {
	collection[model.Reward]
}

func NewRewardStore(s *kv.Store) *RewardStore {
	return &RewardStore{collection[model.Reward]{kv: s, prefix: prefixRewards}}
}
