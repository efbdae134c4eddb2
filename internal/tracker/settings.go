package tracker

import (
	"fmt"

	"github.com/dukerupert/togethertracker/internal/model"
)

// DisplaySettings are stored per device and survive sign-out.
func (a *App) DisplaySettings() model.DisplaySettings {
	return a.settings.Get()
}

func (a *App) SetDisplaySettings(s model.DisplaySettings) error {
	if !s.ThemeColor.Valid() {
		return &ValidationError{Field: "theme_color", Message: fmt.Sprintf("unknown theme color %q", s.ThemeColor)}
	}
	a.settings.Set(s)
	return nil
}

// SetLeaderboard turns the household leaderboard on or off.
func (a *App) SetLeaderboard(enabled bool) error {
	if err := a.requireHousehold(); err != nil {
		return err
	}
	a.household.Settings.LeaderboardEnabled = enabled
	a.households.Update(*a.household)
	return nil
}
