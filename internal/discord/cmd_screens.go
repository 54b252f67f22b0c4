package discord

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/SoloLeveler_Go/internal/domain"
	"github.com/osse101/SoloLeveler_Go/internal/view"
)

var screenDescriptions = map[domain.Screen]string{
	domain.ScreenDailyTasks:   "Show today's daily quest and your streak",
	domain.ScreenStatus:       "Show your level, rank and stats",
	domain.ScreenQuests:       "Show category and personal quests",
	domain.ScreenInventory:    "Show your inventory",
	domain.ScreenShop:         "Browse the shop",
	domain.ScreenAchievements: "Show your achievements",
	domain.ScreenLeaderboard:  "Show the leaderboard",
}

// ScreenCommand returns a command that shows one screen as embeds with
// action buttons
func ScreenCommand(screen domain.Screen) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        string(screen),
		Description: screenDescriptions[screen],
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
		if !deferResponse(s, i) {
			return
		}
		ctx, cancel := requestContext(i)
		defer cancel()

		b.showScreen(ctx, s, i, screen)
	}

	return cmd, handler
}

// showScreen switches to screen, loads whatever it shows that was never
// loaded, and renders the result
func (b *Bot) showScreen(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, screen domain.Screen) {
	if err := b.Sync.Navigate(ctx, screen); err != nil {
		slog.Warn("Navigation failed", "screen", screen, "error", err)
	}
	snap := b.Sync.Snapshot()
	for _, kind := range screen.Slices() {
		if info := snap.Slices[kind]; !info.LoadedOnce && info.Status != domain.StatusLoading {
			if err := b.Sync.LoadSlice(ctx, kind); err != nil {
				slog.Warn("Slice load failed", "slice", kind, "error", err)
			}
		}
	}

	regions := view.Screen(screen, b.Sync.Snapshot())
	sendEmbeds(s, i, screenEmbeds(regions, b.Sync.Countdown()), actionButtons(regions))
}

// ReloadCommand returns the command that refreshes every eagerly loaded slice
func ReloadCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "reload",
		Description: "Refresh your data from the server",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
		if !deferResponse(s, i) {
			return
		}
		ctx, cancel := requestContext(i)
		defer cancel()

		err := b.Sync.LoadAll(ctx)

		var lines []string
		for _, info := range b.Sync.Mirror().Slices() {
			mark := "✅"
			switch info.Status {
			case domain.StatusLoadError:
				mark = "⚠️"
			case domain.StatusUnloaded, domain.StatusLoading:
				mark = "⏳"
			}
			lines = append(lines, fmt.Sprintf("%s %s", mark, view.Title(string(info.Kind))))
		}

		color := ColorSuccess
		if err != nil {
			slog.Warn("Reload incomplete", "error", err)
			color = ColorWarning
		}
		sendEmbed(s, i, createEmbed("🔄 Reloaded", strings.Join(lines, "\n"), color, ""))
	}

	return cmd, handler
}
