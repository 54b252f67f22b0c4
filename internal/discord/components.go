package discord

import (
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/SoloLeveler_Go/internal/view"
)

// handleComponent runs the action behind a pressed button. Button ids are
// view action keys, except for confirmation buttons.
func (b *Bot) handleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID
	if strings.HasPrefix(customID, confirmPrefix+":") {
		b.resolveConfirm(s, i, customID)
		return
	}

	action, err := view.ParseActionKey(customID)
	if err != nil {
		slog.Warn("Unknown component", "custom_id", customID, "error", err)
		return
	}

	if !deferResponse(s, i) {
		return
	}
	ctx, cancel := requestContext(i)
	defer cancel()

	RecordCommand()
	outcome := b.perform(ctx, s, i, action)
	respondOutcome(s, i, actionTitles[action.Kind], outcome)
}
