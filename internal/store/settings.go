package store

import (
	"github.com/dukerupert/togethertracker/internal/kv"
	"github.com/dukerupert/togethertracker/internal/model"
)

type SettingsStore struct {
	kv *kv.Store
}

func NewSettingsStore(s *kv.Store) *SettingsStore {
	return &SettingsStore{kv: s}
}

// settingsRecord tells an absent dark flag apart from false.
type settingsRecord struct {
	Dark       *bool            `json:"dark"`
	ThemeColor model.ThemeColor `json:"theme_color"`
}

// Get returns the stored display settings, filling unset or invalid fields
// with defaults.
func (s *SettingsStore) Get() model.DisplaySettings {
	settings := model.DefaultDisplaySettings()
	var rec settingsRecord
	if !s.kv.Get(keySettings, &rec) {
		return settings
	}
	if rec.Dark != nil {
		settings.Dark = *rec.Dark
	}
	if rec.ThemeColor.Valid() {
		settings.ThemeColor = rec.ThemeColor
	}
	return settings
}

func (s *SettingsStore) Set(settings model.DisplaySettings) {
	s.kv.Set(keySettings, settings)
}
