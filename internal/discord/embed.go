package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/SoloLeveler_Go/internal/countdown"
	"github.com/osse101/SoloLeveler_Go/internal/domain"
	"github.com/osse101/SoloLeveler_Go/internal/view"
)

// Discord limits
const (
	maxDescriptionLen = 4096
	maxButtonLabelLen = 80
	maxButtonsPerRow  = 5
	maxRows           = 5
	embedBarWidth     = 12
)

var sliceColors = map[domain.SliceKind]int{
	domain.SlicePlayer:         ColorPlayer,
	domain.SliceTasks:          ColorTasks,
	domain.SliceQuests:         ColorQuests,
	domain.SlicePersonalQuests: ColorQuests,
	domain.SliceInventory:      ColorInventory,
	domain.SliceShop:           ColorShop,
	domain.SliceAchievements:   ColorAchievement,
	domain.SliceLeaderboard:    ColorLeaderboard,
}

// regionEmbed renders a view region as an embed
func regionEmbed(r view.Region, timer countdown.View) *discordgo.MessageEmbed {
	var lines []string
	for _, e := range r.Elements {
		lines = append(lines, elementLines(e, 0)...)
	}
	description := truncate(strings.Join(lines, "\n"), maxDescriptionLen)

	title := r.Title
	if r.Status == domain.StatusLoadError {
		title += " ⚠️ (stale)"
	}
	return createEmbed(title, description, sliceColors[r.Slice], fmt.Sprintf(FooterCountdown, timer.Text))
}

func elementLines(e view.Element, depth int) []string {
	indent := strings.Repeat("  ", depth)
	var line string
	switch e.Kind {
	case view.KindHeading:
		line = "**" + e.Text + "**"
	case view.KindProgress:
		line = fmt.Sprintf("%s `%s` %d%%", e.Text, view.Bar(e.Value, embedBarWidth), int(e.Value*100))
		if e.Detail != "" {
			line += " · " + e.Detail
		}
	case view.KindItem:
		mark := "•"
		if e.Style == view.StyleSuccess {
			mark = "✅"
		}
		line = fmt.Sprintf("%s **%s**", mark, e.Text)
		if e.Detail != "" {
			line += " · " + e.Detail
		}
	case view.KindStat:
		line = fmt.Sprintf("**%s:** %s", e.Text, e.Detail)
	case view.KindBadge:
		line = "🏅 " + e.Text
	case view.KindEmpty:
		line = "*" + e.Text + "*"
	default:
		line = e.Text
		if e.Detail != "" {
			line += " · " + e.Detail
		}
	}
	if e.Style == view.StyleWarning {
		line = "⚠️ " + line
	}

	lines := []string{indent + line}
	for _, c := range e.Children {
		lines = append(lines, elementLines(c, depth+1)...)
	}
	return lines
}

// screenEmbeds renders every region of a screen
func screenEmbeds(regions []view.Region, timer countdown.View) []*discordgo.MessageEmbed {
	embeds := make([]*discordgo.MessageEmbed, 0, len(regions))
	for _, r := range regions {
		embeds = append(embeds, regionEmbed(r, timer))
	}
	return embeds
}

// actionButtons lays out the regions' affordances as button rows. Button
// ids are action keys. Adding a personal quest needs text input, so it
// stays a slash command. Anything past Discord's 25-button limit is dropped.
func actionButtons(regions []view.Region) []discordgo.MessageComponent {
	var buttons []discordgo.MessageComponent
	var walk func([]view.Element)
	walk = func(elems []view.Element) {
		for _, e := range elems {
			for _, a := range e.Actions {
				if a.Kind == view.ActionAddPersonalQuest {
					continue
				}
				buttons = append(buttons, actionButton(a, e.Text))
			}
			walk(e.Children)
		}
	}
	for _, r := range regions {
		walk(r.Elements)
	}

	var rows []discordgo.MessageComponent
	for start := 0; start < len(buttons) && len(rows) < maxRows; start += maxButtonsPerRow {
		end := start + maxButtonsPerRow
		if end > len(buttons) {
			end = len(buttons)
		}
		rows = append(rows, discordgo.ActionsRow{Components: buttons[start:end]})
	}
	return rows
}

func actionButton(a view.Action, subject string) discordgo.Button {
	label := a.Label
	if subject != "" {
		label = a.Label + " " + subject
	}
	label = truncate(label, maxButtonLabelLen)

	style := discordgo.PrimaryButton
	switch a.Kind {
	case view.ActionDeletePersonalQuest:
		style = discordgo.DangerButton
	case view.ActionCompleteTask, view.ActionCompleteQuest, view.ActionCompletePersonalQuest, view.ActionClaimAchievement:
		style = discordgo.SuccessButton
	}
	return discordgo.Button{
		Label:    label,
		Style:    style,
		CustomID: a.Key(),
		Disabled: a.Disabled,
	}
}

// truncate cuts s to at most n runes, marking the cut
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
