package discord

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"

	"github.com/osse101/SoloLeveler_Go/internal/synchronizer"
)

const (
	confirmPrefix  = "confirm"
	confirmYes     = "yes"
	confirmNo      = "no"
	confirmTimeout = time.Minute
)

type pendingConfirm struct {
	userID string
	reply  chan bool
}

// confirmations tracks prompts waiting for a button press
type confirmations struct {
	mu      sync.Mutex
	pending map[string]pendingConfirm
}

func newConfirmations() *confirmations {
	return &confirmations{pending: make(map[string]pendingConfirm)}
}

func (c *confirmations) open(userID string) (string, <-chan bool) {
	token := uuid.NewString()
	reply := make(chan bool, 1)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending[token] = pendingConfirm{userID: userID, reply: reply}
	return token, reply
}

// resolve answers a prompt. Only the user who triggered it may answer.
func (c *confirmations) resolve(token, userID string, ok bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, found := c.pending[token]
	if !found || p.userID != userID {
		return false
	}
	delete(c.pending, token)
	p.reply <- ok
	return true
}

func (c *confirmations) drop(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pending, token)
}

func (c *confirmations) cancelAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for token, p := range c.pending {
		p.reply <- false
		delete(c.pending, token)
	}
}

func (c *confirmations) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

func confirmID(token, answer string) string {
	return confirmPrefix + ":" + token + ":" + answer
}

// buttonConfirmer asks through Yes/No buttons on the interaction's own
// response. No answer within confirmTimeout counts as a decline.
type buttonConfirmer struct {
	s        *discordgo.Session
	i        *discordgo.InteractionCreate
	confirms *confirmations
	timeout  time.Duration
}

func (b *Bot) confirmerFor(s *discordgo.Session, i *discordgo.InteractionCreate) synchronizer.Confirmer {
	return buttonConfirmer{s: s, i: i, confirms: b.confirms, timeout: confirmTimeout}
}

func (c buttonConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	token, reply := c.confirms.open(getInteractionUser(c.i).ID)
	defer c.confirms.drop(token)

	content := "⚠️ " + prompt
	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{Label: "Confirm", Style: discordgo.DangerButton, CustomID: confirmID(token, confirmYes)},
			discordgo.Button{Label: "Cancel", Style: discordgo.SecondaryButton, CustomID: confirmID(token, confirmNo)},
		}},
	}
	if _, err := c.s.InteractionResponseEdit(c.i.Interaction, &discordgo.WebhookEdit{
		Content:    &content,
		Components: &components,
	}); err != nil {
		return false, fmt.Errorf("send confirmation prompt: %w", err)
	}

	timer := time.NewTimer(c.timeout)
	defer timer.Stop()
	select {
	case ok := <-reply:
		return ok, nil
	case <-timer.C:
		return false, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// resolveConfirm handles a press on a confirmation button
func (b *Bot) resolveConfirm(s *discordgo.Session, i *discordgo.InteractionCreate, customID string) {
	parts := strings.Split(customID, ":")
	content := MsgConfirmExpired
	if len(parts) == 3 {
		answer := parts[2] == confirmYes
		if b.confirms.resolve(parts[1], getInteractionUser(i).ID, answer) {
			content = "⏳ Working on it..."
			if !answer {
				content = MsgCancelled
			}
		}
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Components: []discordgo.MessageComponent{},
		},
	}); err != nil {
		slog.Error("Failed to acknowledge confirmation", "error", err)
	}
}

// getInteractionUser extracts the user from an interaction.
// Handles both guild (i.Member.User) and DM (i.User) contexts.
// Always returns a non-nil *discordgo.User.
func getInteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	if i.User != nil {
		return i.User
	}
	return &discordgo.User{}
}
