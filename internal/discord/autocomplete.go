package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/SoloLeveler_Go/internal/mirror"
)

// maxChoices is Discord's autocomplete limit
const maxChoices = 25

// HandleAutocomplete answers option autocompletion from the mirror. It
// never reaches the server: Discord wants an answer within 3 seconds.
func HandleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
	data := i.ApplicationCommandData()
	query := ""
	for _, opt := range data.Options {
		if opt.Focused {
			query = strings.ToLower(fmt.Sprint(opt.Value))
			break
		}
	}

	choices := autocompleteChoices(data.Name, query, b.Sync.Snapshot())
	if choices == nil {
		slog.Warn("Unhandled autocomplete command", "command", data.Name)
		choices = []*discordgo.ApplicationCommandOptionChoice{}
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: choices,
		},
	}); err != nil {
		slog.Error("Failed to respond to autocomplete", "error", err)
	}
}

// autocompleteChoices returns nil for commands without autocompletion
func autocompleteChoices(command, query string, snap mirror.Snapshot) []*discordgo.ApplicationCommandOptionChoice {
	choices := []*discordgo.ApplicationCommandOptionChoice{}
	add := func(name string, value interface{}) {
		if len(choices) >= maxChoices {
			return
		}
		if query == "" || strings.Contains(strings.ToLower(name), query) {
			choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: truncate(name, 100), Value: value})
		}
	}

	switch command {
	case cmdCompleteTask:
		if snap.Tasks != nil {
			for idx, t := range snap.Tasks.Tasks {
				if !t.Completed {
					add(t.Name, idx)
				}
			}
		}
	case cmdCompletePersonalQuest:
		for _, q := range snap.PersonalQuests {
			if !q.Completed {
				add(q.Name, q.ID)
			}
		}
	case cmdDeletePersonalQuest:
		for _, q := range snap.PersonalQuests {
			add(q.Name, q.ID)
		}
	case cmdBuy:
		for _, item := range snap.Shop {
			add(fmt.Sprintf("%s (%d coins)", item.Name, item.Price), item.Name)
		}
	case cmdUse:
		for _, item := range snap.Inventory {
			add(fmt.Sprintf("%s x%d", item.Name, item.Quantity), item.Name)
		}
	case cmdClaim:
		for idx, a := range snap.Achievements {
			if a.Claimable() {
				add(a.Name, idx)
			}
		}
	default:
		return nil
	}
	return choices
}
