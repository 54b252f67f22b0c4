package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/osse101/SoloLeveler_Go/internal/domain"
	"github.com/osse101/SoloLeveler_Go/internal/view"
)

const (
	IconSparkle = "✦"
	IconDone    = "✔"
	IconWarn    = "⚠"
	IconRank    = "⬆"
	IconDemote  = "⬇"
	IconCursor  = "›"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("99")  // violet
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	headingStyle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	mutedStyle    = lipgloss.NewStyle().Foreground(cMuted)
	goodStyle     = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	warnStyle     = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	badStyle      = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	goldStyle     = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	emptyStyle    = lipgloss.NewStyle().Italic(true).Foreground(cMuted)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)
	flashStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(cGood)

	panelStyle = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	glowPanel  = panelStyle.BorderForeground(cAccent).BorderStyle(lipgloss.DoubleBorder())

	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(cMuted)
	activeTabStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(cGold).Underline(true)

	toastStyles = map[domain.NotificationLevel]lipgloss.Style{
		domain.NotifySuccess: goodStyle,
		domain.NotifyError:   badStyle,
		domain.NotifyInfo:    headingStyle,
	}
)

func elementStyle(s view.Style) lipgloss.Style {
	switch s {
	case view.StyleMuted:
		return mutedStyle
	case view.StyleSuccess:
		return goodStyle
	case view.StyleWarning:
		return warnStyle
	case view.StyleHighlight:
		return goldStyle
	}
	return lipgloss.NewStyle()
}

func statusMarker(s domain.SliceStatus) string {
	switch s {
	case domain.StatusLoading:
		return mutedStyle.Render(" …")
	case domain.StatusLoadError:
		return badStyle.Render(" " + IconWarn + " stale")
	}
	return ""
}
