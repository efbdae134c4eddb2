package model

import "time"

type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	HouseholdID  string    `json:"household_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// HouseholdSettings holds per-household preferences.
type HouseholdSettings struct {
	LeaderboardEnabled bool `json:"leaderboard_enabled"`
}

type Household struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	InviteCode string            `json:"invite_code"`
	Settings   HouseholdSettings `json:"settings"`
	CreatedAt  time.Time         `json:"created_at"`
}

type Role string

const (
	RoleGuardian  Role = "guardian"
	RoleDependent Role = "dependent"
)

type Member struct {
	ID          string    `json:"id"`
	HouseholdID string    `json:"household_id"`
	AccountID   string    `json:"account_id"`
	Role        Role      `json:"role"`
	DisplayName string    `json:"display_name"`
	Avatar      string    `json:"avatar"`
	Color       string    `json:"color"`
	Points      int       `json:"points"`
	Streak      int       `json:"streak"`
	JoinedAt    time.Time `json:"joined_at"`
}
