package tracker

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/dukerupert/togethertracker/internal/model"
	"github.com/dukerupert/togethertracker/internal/notify"
	"github.com/dukerupert/togethertracker/internal/reward"
)

const (
	inviteCodeLength   = 6
	inviteCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	maxInviteAttempts  = 20

	defaultMemberColor = "#8B5CF6"
)

var avatars = []string{"👨", "👩", "👦", "👧", "👶", "🧑", "👨‍🦱", "👩‍🦰", "🧔", "👱"}

// SignUpRequest creates a new household when InviteCode is empty, otherwise
// joins the household holding that code.
type SignUpRequest struct {
	Email         string
	Password      string
	HouseholdName string
	InviteCode    string
}

func (a *App) SignUp(req SignUpRequest) (model.Account, model.Household, error) {
	email := strings.TrimSpace(req.Email)
	name := strings.TrimSpace(req.HouseholdName)
	code := strings.ToUpper(strings.TrimSpace(req.InviteCode))

	switch {
	case email == "":
		return model.Account{}, model.Household{}, &ValidationError{Field: "email", Message: "email is required"}
	case req.Password == "":
		return model.Account{}, model.Household{}, &ValidationError{Field: "password", Message: "password is required"}
	case name == "" && code == "":
		return model.Account{}, model.Household{}, &ValidationError{Field: "household", Message: "household name or invite code is required"}
	}
	if a.accounts.GetByEmail(email) != nil {
		return model.Account{}, model.Household{}, &ValidationError{Field: "email", Message: "an account with that email already exists"}
	}

	var household model.Household
	fresh := code == ""
	if fresh {
		inviteCode, err := a.newInviteCode()
		if err != nil {
			return model.Account{}, model.Household{}, err
		}
		household = model.Household{
			ID:         a.newID(),
			Name:       name,
			InviteCode: inviteCode,
			Settings:   model.HouseholdSettings{LeaderboardEnabled: true},
			CreatedAt:  a.now(),
		}
	} else {
		h := a.households.GetByInviteCode(code)
		if h == nil {
			return model.Account{}, model.Household{}, &NotFoundError{Kind: "invite code", Key: code}
		}
		household = *h
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.bcryptCost)
	if err != nil {
		return model.Account{}, model.Household{}, fmt.Errorf("hash password: %w", err)
	}

	now := a.now()
	account := model.Account{
		ID:           a.newID(),
		Email:        email,
		PasswordHash: string(hash),
		HouseholdID:  household.ID,
		CreatedAt:    now,
	}

	members := a.members.List(household.ID)
	role := model.RoleDependent
	if len(members) == 0 {
		role = model.RoleGuardian
	}
	member := model.Member{
		ID:          a.newID(),
		HouseholdID: household.ID,
		AccountID:   account.ID,
		Role:        role,
		DisplayName: displayName(email),
		Avatar:      avatars[a.intn(len(avatars))],
		Color:       defaultMemberColor,
		JoinedAt:    now,
	}
	members = append(members, member)

	if fresh {
		a.households.Create(household)

		assignees := []string{member.ID}
		if isDemo(name) {
			demo := a.demoMembers(household.ID)
			members = append(members, demo...)
			for _, m := range demo {
				assignees = append(assignees, m.ID)
			}
		}
		a.tasks.Save(household.ID, a.welcomeTasks(household.ID, member.ID, assignees))
		a.rewards.Save(household.ID, reward.Defaults(household.ID, member.ID, a.newID))
	}
	a.members.Save(household.ID, members)
	a.accounts.Save(account)
	a.accounts.SetCurrent(account)
	a.accounts.SetActiveMember(member.ID)

	a.load(account, household, member.ID)
	a.logger.Info("signed up", "account", account.ID, "household", household.ID, "role", role, "joined", !fresh)
	return account, household, nil
}

func (a *App) SignIn(email, password string) (model.Account, model.Household, error) {
	acct := a.accounts.GetByEmail(email)
	if acct == nil {
		return model.Account{}, model.Household{}, &AuthError{Email: email}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		return model.Account{}, model.Household{}, &AuthError{Email: email}
	}
	h := a.households.GetByID(acct.HouseholdID)
	if h == nil {
		return model.Account{}, model.Household{}, &NotFoundError{Kind: "household", Key: acct.HouseholdID}
	}

	a.load(*acct, *h, "")
	a.accounts.SetCurrent(*acct)
	a.accounts.SetActiveMember(a.currentID)
	a.logger.Info("signed in", "account", acct.ID, "household", h.ID)
	return *acct, *h, nil
}

// SignOut ends the session on this device. The account record is kept so the
// same email can sign in again.
func (a *App) SignOut() {
	a.accounts.ClearSession()
	a.reset()
}

// Restore resumes the stored session. It reports false when nobody is
// signed in or the session's household no longer exists.
func (a *App) Restore() bool {
	acct := a.accounts.Current()
	if acct == nil {
		return false
	}
	h := a.households.GetByID(acct.HouseholdID)
	if h == nil {
		a.logger.Warn("session household missing", "account", acct.ID, "household", acct.HouseholdID)
		return false
	}
	a.load(*acct, *h, a.accounts.ActiveMember())
	return true
}

// SwitchMember makes another member of the household the active one.
func (a *App) SwitchMember(memberID string) (model.Member, error) {
	if err := a.requireHousehold(); err != nil {
		return model.Member{}, err
	}
	i := a.memberIndex(memberID)
	if i < 0 {
		return model.Member{}, ErrMemberNotFound
	}
	a.currentID = memberID
	a.accounts.SetActiveMember(memberID)
	return a.memberList[i], nil
}

// CopyInviteCode returns the household's invite code and shows the short
// "copied" notice.
func (a *App) CopyInviteCode() (string, error) {
	if err := a.requireHousehold(); err != nil {
		return "", err
	}
	a.notify("household", "invite_copied", a.household.ID, "📋 Invite code copied!", notify.ShortTTL)
	return a.household.InviteCode, nil
}

func (a *App) newInviteCode() (string, error) {
	for range maxInviteAttempts {
		var b strings.Builder
		for range inviteCodeLength {
			b.WriteByte(inviteCodeAlphabet[a.intn(len(inviteCodeAlphabet))])
		}
		code := b.String()
		if a.households.GetByInviteCode(code) == nil {
			return code, nil
		}
		a.logger.Debug("invite code collision", "code", code)
	}
	return "", fmt.Errorf("generate invite code: no free code after %d attempts", maxInviteAttempts)
}

func displayName(email string) string {
	if local, _, ok := strings.Cut(email, "@"); ok && local != "" {
		return local
	}
	return email
}

func isDemo(householdName string) bool {
	return strings.Contains(strings.ToLower(householdName), "demo")
}
