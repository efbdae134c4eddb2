package store

import (
	"strings"

	"github.com/dukerupert/togethertracker/internal/kv"
	"github.com/dukerupert/togethertracker/internal/model"
)

// AccountStore keeps every account created on this device plus the
// singleton record of the signed-in account.
type AccountStore struct {
	kv *kv.Store
}

func NewAccountStore(s *kv.Store) *AccountStore {
	return &AccountStore{kv: s}
}

func (s *AccountStore) List() []model.Account {
	var accounts []model.Account
	s.kv.Get(keyAccounts, &accounts)
	return accounts
}

// GetByEmail matches case-insensitively. It returns nil when no account has
// the email.
func (s *AccountStore) GetByEmail(email string) *model.Account {
	email = strings.TrimSpace(email)
	for _, a := range s.List() {
		if strings.EqualFold(a.Email, email) {
			return &a
		}
	}
	return nil
}

// Save inserts the account or replaces the stored record with the same ID.
func (s *AccountStore) Save(a model.Account) {
	accounts := s.List()
	for i := range accounts {
		if accounts[i].ID == a.ID {
			accounts[i] = a
			s.kv.Set(keyAccounts, accounts)
			return
		}
	}
	s.kv.Set(keyAccounts, append(accounts, a))
}

// Current returns the signed-in account, or nil.
func (s *AccountStore) Current() *model.Account {
	var a model.Account
	if !s.kv.Get(keyCurrentAccount, &a) {
		return nil
	}
	return &a
}

func (s *AccountStore) SetCurrent(a model.Account) {
	s.kv.Set(keyCurrentAccount, a)
}

// ActiveMember returns the member id selected on this device, or "".
func (s *AccountStore) ActiveMember() string {
	var id string
	s.kv.Get(keyActiveMember, &id)
	return id
}

func (s *AccountStore) SetActiveMember(id string) {
	s.kv.Set(keyActiveMember, id)
}

// ClearSession signs the device out. Stored accounts are kept.
func (s *AccountStore) ClearSession() {
	s.kv.Remove(keyCurrentAccount)
	s.kv.Remove(keyActiveMember)
}
