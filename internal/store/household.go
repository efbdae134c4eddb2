package store

import (
	"github.com/dukerupert/togethertracker/internal/kv"
	"github.com/dukerupert/togethertracker/internal/model"
)

// HouseholdStore holds every household ever created on this device in a
// single collection.
type HouseholdStore struct {
	kv *kv.Store
}

func NewHouseholdStore(s *kv.Store) *HouseholdStore {
	return &HouseholdStore{kv: s}
}

func (s *HouseholdStore) List() []model.Household {
	var households []model.Household
	s.kv.Get(keyHouseholds, &households)
	return households
}

func (s *HouseholdStore) GetByID(id string) *model.Household {
	for _, h := range s.List() {
		if h.ID == id {
			return &h
		}
	}
	return nil
}

func (s *HouseholdStore) GetByInviteCode(code string) *model.Household {
	if code == "" {
		return nil
	}
	for _, h := range s.List() {
		if h.InviteCode == code {
			return &h
		}
	}
	return nil
}

func (s *HouseholdStore) Create(h model.Household) {
	s.kv.Set(keyHouseholds, append(s.List(), h))
}

// Update replaces the stored household with the same ID. Unknown IDs are
// ignored.
func (s *HouseholdStore) Update(h model.Household) {
	households := s.List()
	for i := range households {
		if households[i].ID == h.ID {
			households[i] = h
			s.kv.Set(keyHouseholds, households)
			return
		}
	}
}
