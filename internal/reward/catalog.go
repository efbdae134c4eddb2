package reward

import (
	"strings"

	"github.com/dukerupert/togethertracker/internal/model"
)

const (
	CategoryAll         = "all"
	CategoryTreats      = "treats"
	CategoryPrivileges  = "privileges"
	CategoryExperiences = "experiences"
	CategoryItems       = "items"
)

// Categories is the fixed filter set, "all" first.
var Categories = []string{CategoryAll, CategoryTreats, CategoryPrivileges, CategoryExperiences, CategoryItems}

var defaults = []struct {
	name, description, icon, category string
	points                            int
}{
	{"Ice Cream", "Your favorite flavor!", "🍦", CategoryTreats, 50},
	{"Movie Night", "Choose the family movie", "🎬", CategoryExperiences, 100},
	{"Extra Screen Time", "30 minutes extra", "📱", CategoryPrivileges, 30},
	{"Stay Up Late", "30 minutes past bedtime", "🌙", CategoryPrivileges, 75},
}

// Defaults returns the four rewards every new household starts with.
func Defaults(householdID, createdBy string, newID func() string) []model.Reward {
	rewards := make([]model.Reward, 0, len(defaults))
	for _, d := range defaults {
		rewards = append(rewards, model.Reward{
			ID:             newID(),
			HouseholdID:    householdID,
			Name:           d.name,
			Description:    d.description,
			PointsRequired: d.points,
			Icon:           d.icon,
			Category:       d.category,
			CreatedBy:      createdBy,
			Available:      true,
		})
	}
	return rewards
}

func Affordable(balance int, r model.Reward) bool {
	return balance >= r.PointsRequired
}

// Entry is a catalog row as shown to a specific member.
type Entry struct {
	model.Reward
	Affordable bool
}

// Catalog filters rewards by category ("all" or "" keeps everything) and
// marks which ones the balance covers. Catalog order is preserved.
func Catalog(rewards []model.Reward, balance int, category string) []Entry {
	category = strings.ToLower(strings.TrimSpace(category))
	var entries []Entry
	for _, r := range rewards {
		if category != "" && category != CategoryAll && r.Category != category {
			continue
		}
		entries = append(entries, Entry{Reward: r, Affordable: Affordable(balance, r)})
	}
	return entries
}

func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
