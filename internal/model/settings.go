package model

type ThemeColor string

const (
	ThemePurple ThemeColor = "purple"
	ThemeBlue   ThemeColor = "blue"
	ThemeGreen  ThemeColor = "green"
	ThemeOrange ThemeColor = "orange"
	ThemePink   ThemeColor = "pink"
)

var ThemeColors = []ThemeColor{ThemePurple, ThemeBlue, ThemeGreen, ThemeOrange, ThemePink}

// DisplaySettings are device-wide, not per household.
type DisplaySettings struct {
	Dark       bool       `json:"dark"`
	ThemeColor ThemeColor `json:"theme_color"`
}

func DefaultDisplaySettings() DisplaySettings {
	return DisplaySettings{Dark: true, ThemeColor: ThemePurple}
}

func (c ThemeColor) Valid() bool {
	for _, t := range ThemeColors {
		if c == t {
			return true
		}
	}
	return false
}
