package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/SoloLeveler_Go/internal/client"
	"github.com/osse101/SoloLeveler_Go/internal/domain"
	"github.com/osse101/SoloLeveler_Go/internal/logger"
)

// interactionTimeout bounds one interaction, confirmation wait included.
// Discord keeps interaction tokens valid for 15 minutes.
const interactionTimeout = 2 * time.Minute

// requestContext returns a context for one interaction, tagged with a request id
func requestContext(i *discordgo.InteractionCreate) (context.Context, context.CancelFunc) {
	ctx := logger.WithRequestID(context.Background(), i.ID)
	if i.ID == "" {
		ctx = logger.WithNewRequestID(context.Background())
	}
	return context.WithTimeout(ctx, interactionTimeout)
}

// respondError sends a generic error message.
// Use for system-level errors or when detailed error message would confuse users.
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &message,
	}); err != nil {
		slog.Error("Failed to edit interaction response", "error", err)
	}
}

// deferResponse acknowledges an interaction with a deferred message.
// Required before any async operations that might take longer than 3 seconds.
// Returns false if deferral failed (should return early from handler).
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		slog.Error("Failed to send deferred response", "error", err)
		return false
	}
	return true
}

// getOptions extracts command options from an interaction.
func getOptions(i *discordgo.InteractionCreate) []*discordgo.ApplicationCommandInteractionDataOption {
	return i.ApplicationCommandData().Options
}

// optionMap indexes options by name
func optionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	options := getOptions(i)
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

// respondOutcome turns an action result into an embed: green on success,
// grey when the user cancelled, red with a friendly message otherwise.
func respondOutcome(s *discordgo.Session, i *discordgo.InteractionCreate, title string, outcome domain.Outcome) {
	if outcome.OK() {
		sendEmbed(s, i, createEmbed(title, outcome.Notification.Message, ColorSuccess, ""))
		return
	}
	color := ColorError
	if errors.Is(outcome.Err, domain.ErrCancelled) {
		color = ColorInfo
	}
	sendEmbed(s, i, createEmbed(title, formatFriendlyError(outcome.Err), color, ""))
}

// formatFriendlyError maps typed failures to readable messages. Errors
// without a mapping fall back to the server's or validator's own text.
func formatFriendlyError(err error) string {
	if err == nil {
		return MsgGenericError
	}

	var te *client.TransportError
	var ae *client.ApplicationError
	switch {
	case errors.Is(err, domain.ErrCancelled):
		return MsgCancelled
	case errors.Is(err, domain.ErrInsufficientCoins):
		return MsgInsufficientCoins
	case errors.Is(err, domain.ErrNotClaimable), errors.Is(err, domain.ErrAchievementIndex):
		return MsgNotClaimable
	case errors.Is(err, domain.ErrItemNotFound):
		return MsgItemNotFound
	case errors.Is(err, domain.ErrTaskNotFound):
		return MsgTaskNotFound
	case errors.Is(err, domain.ErrInvalidInput):
		detail := strings.TrimPrefix(err.Error(), domain.ErrMsgInvalidInput+": ")
		return fmt.Sprintf("%s\n%s", MsgInvalidInput, detail)
	case errors.As(err, &te):
		return MsgServerUnreachable
	case errors.As(err, &ae):
		if strings.Contains(strings.ToLower(ae.Message), domain.ErrMsgInsufficientCoins) {
			return MsgInsufficientCoins
		}
		return "❌ " + ae.Error()
	default:
		return "❌ " + err.Error()
	}
}

// sendEmbed sends an embed message with standardized error handling.
// Logs errors internally - no need for callers to handle send errors.
func sendEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	sendEmbeds(s, i, []*discordgo.MessageEmbed{embed}, nil)
}

// sendEmbeds replaces the deferred response with embeds and optional
// components. Text content, such as a confirmation prompt, is cleared and
// a nil components slice clears any buttons.
func sendEmbeds(s *discordgo.Session, i *discordgo.InteractionCreate, embeds []*discordgo.MessageEmbed, components []discordgo.MessageComponent) {
	if components == nil {
		components = []discordgo.MessageComponent{}
	}
	content := ""
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content:    &content,
		Embeds:     &embeds,
		Components: &components,
	}); err != nil {
		slog.Error("Failed to send response", "error", err)
	}
}

// createEmbed creates a standard embed with optional footer customization.
// An empty footerText defaults to FooterSoloLeveler.
func createEmbed(title, description string, color int, footerText string) *discordgo.MessageEmbed {
	if footerText == "" {
		footerText = FooterSoloLeveler
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: footerText,
		},
	}
}
