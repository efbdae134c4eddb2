package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dukerupert/togethertracker/internal/model"
)

const (
	IconHouse   = "🏠"
	IconTask    = "📋"
	IconDone    = "✅"
	IconStar    = "⭐"
	IconFire    = "🔥"
	IconTrophy  = "🏆"
	IconGift    = "🎁"
	IconCart    = "🛒"
	IconUrgent  = "❗"
	IconLoop    = "🔁"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconSparkle = "✨"
)

var (
	cGood  = lipgloss.Color("42")  // green
	cWarn  = lipgloss.Color("214") // orange
	cBad   = lipgloss.Color("196") // red
	cMuted = lipgloss.Color("244") // gray
	cGold  = lipgloss.Color("220") // gold
)

// accents maps the household theme colors onto terminal colors.
var accents = map[model.ThemeColor]lipgloss.Color{
	model.ThemePurple: lipgloss.Color("#8B5CF6"),
	model.ThemeBlue:   lipgloss.Color("#3B82F6"),
	model.ThemeGreen:  lipgloss.Color("#10B981"),
	model.ThemeOrange: lipgloss.Color("#F97316"),
	model.ThemePink:   lipgloss.Color("#EC4899"),
}

var (
	Title = lipgloss.NewStyle().Bold(true)
	H2    = lipgloss.NewStyle().Bold(true)
	Key   = lipgloss.NewStyle().Bold(true)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
)

// ApplyTheme recolors the heading styles with the chosen accent.
func ApplyTheme(s model.DisplaySettings) {
	accent, ok := accents[s.ThemeColor]
	if !ok {
		accent = accents[model.ThemePurple]
	}
	Title = Title.Foreground(accent)
	H2 = H2.Foreground(accent)
	Key = Key.Foreground(accent)
	Panel = Panel.BorderForeground(accent)
	if !s.Dark {
		Muted = Muted.Foreground(lipgloss.Color("240"))
	}
}

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

func StatusText(status string) string {
	switch status {
	case "completed":
		return Good.Render("done")
	case "overdue":
		return Bad.Render("overdue")
	case "in_progress":
		return H2.Render("in progress")
	case "pending":
		return Warn.Render("pending")
	default:
		return Muted.Render(status)
	}
}

func PriorityText(p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return Bad.Render("high")
	case model.PriorityLow:
		return Muted.Render("low")
	default:
		return Warn.Render("medium")
	}
}

// MemberName renders a member in their own color with their avatar.
func MemberName(m model.Member) string {
	style := lipgloss.NewStyle().Bold(true)
	if m.Color != "" {
		style = style.Foreground(lipgloss.Color(m.Color))
	}
	return m.Avatar + " " + style.Render(m.DisplayName)
}

func Points(n int) string {
	return Gold.Render(fmt.Sprintf("%d pts", n))
}

// ShortID trims a UUID for display. Commands accept any unique prefix.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
