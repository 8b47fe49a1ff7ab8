package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"shadowquest/internal/engine"
)

// shadowquest theme (CLI + TUI).

const (
	IconQuest   = "🗺️"
	IconSparkle = "✨"
	IconPlus    = "➕"
	IconDone    = "✅"
	IconFailed  = "✖"
	IconTrophy  = "🏆"
	IconBolt    = "⚡"
	IconFire    = "🔥"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconTrash   = "🗑️"
	IconScroll  = "📜"
	IconChart   = "📊"
	IconEye     = "👁️"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	BadgeRankUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("RANK UP")
)

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

// TierStyle colors text with a tier's display color.
func TierStyle(tierIndex int) lipgloss.Style {
	t := engine.Tiers[clampTier(tierIndex)]
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Color))
}

// TierLabel renders "<badge> <name>" in the tier's color.
func TierLabel(tierIndex int) string {
	t := engine.Tiers[clampTier(tierIndex)]
	return TierStyle(tierIndex).Render(t.Badge + " " + t.Name)
}

func StatusText(status engine.QuestStatus) string {
	switch status {
	case engine.QuestCompleted:
		return Good.Render("done")
	case engine.QuestFailed:
		return Bad.Render("failed")
	default:
		return Warn.Render("active")
	}
}

func StatusIcon(status engine.QuestStatus) string {
	switch status {
	case engine.QuestCompleted:
		return IconDone
	case engine.QuestFailed:
		return IconFailed
	default:
		return IconQuest
	}
}

// DifficultyText renders a difficulty with its base EXP.
func DifficultyText(d engine.Difficulty) string {
	style := Muted
	switch d {
	case engine.DifficultyHard:
		style = Warn
	case engine.DifficultyLegendary:
		style = Gold
	}
	return style.Render(fmt.Sprintf("%s %d", d, engine.BaseExp(d)))
}

// ProgressBar renders a fraction in [0,1] as a fixed-width bar.
func ProgressBar(fraction float64, width int) string {
	if width <= 3 {
		width = 3
	}
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction * float64(width))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// SignedExp renders +N / -N EXP in good/bad colors.
func SignedExp(n int) string {
	switch {
	case n > 0:
		return Good.Render(fmt.Sprintf("+%d EXP", n))
	case n < 0:
		return Bad.Render(fmt.Sprintf("%d EXP", n))
	default:
		return Muted.Render("±0 EXP")
	}
}

func clampTier(i int) int {
	if i < 0 {
		return 0
	}
	if i > engine.MaxTierIndex {
		return engine.MaxTierIndex
	}
	return i
}
