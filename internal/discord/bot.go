// Package discord exposes the synchronizer as a Discord bot: slash commands
// and buttons drive the same operations as the terminal client, and the
// same view regions are rendered as embeds.
package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/SoloLeveler_Go/internal/synchronizer"
)

// Bot represents the Discord bot
type Bot struct {
	Session  *discordgo.Session
	Sync     *synchronizer.Synchronizer
	AppID    string
	GuildID  string
	Registry *CommandRegistry

	confirms *confirmations
}

// Config holds the bot configuration
type Config struct {
	Token   string
	AppID   string
	GuildID string
}

// New creates a new Discord bot over sync
func New(cfg Config, sync *synchronizer.Synchronizer) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	return newBot(s, cfg, sync), nil
}

func newBot(s *discordgo.Session, cfg Config, sync *synchronizer.Synchronizer) *Bot {
	return &Bot{
		Session:  s,
		Sync:     sync,
		AppID:    cfg.AppID,
		GuildID:  cfg.GuildID,
		Registry: DefaultRegistry(),
		confirms: newConfirmations(),
	}
}

// Start opens the gateway connection
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	slog.Info("Discord bot is now running")
	return nil
}

// Stop declines pending confirmations and closes the session
func (b *Bot) Stop() {
	b.confirms.cancelAll()
	if err := b.Session.Close(); err != nil {
		slog.Error("Failed to close Discord session", "error", err)
	}
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info("Bot is ready", "user", s.State.User.Username)
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if b.Registry != nil {
			b.Registry.Handle(s, i, b)
		}
	case discordgo.InteractionApplicationCommandAutocomplete:
		HandleAutocomplete(s, i, b)
	case discordgo.InteractionMessageComponent:
		b.handleComponent(s, i)
	}
}
