package discord

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmations(t *testing.T) {
	t.Run("resolve by owner", func(t *testing.T) {
		c := newConfirmations()
		token, reply := c.open("u1")

		assert.False(t, c.resolve(token, "u2", true), "other users are ignored")
		assert.True(t, c.resolve(token, "u1", true))
		assert.True(t, <-reply)
		assert.False(t, c.resolve(token, "u1", true), "answered once")
	})

	t.Run("cancel all declines", func(t *testing.T) {
		c := newConfirmations()
		_, first := c.open("u1")
		_, second := c.open("u2")

		c.cancelAll()
		assert.False(t, <-first)
		assert.False(t, <-second)
		assert.Zero(t, c.Len())
	})
}

func TestButtonConfirmer_Timeout(t *testing.T) {
	ctx := SetupTestContext(t)
	c := buttonConfirmer{s: ctx.Session, i: commandInteraction(cmdDeletePersonalQuest), confirms: ctx.Bot.confirms, timeout: 20 * time.Millisecond}

	ok, err := c.Confirm(context.Background(), "Delete it?")
	require.NoError(t, err)
	assert.False(t, ok, "silence is a decline")
	assert.Zero(t, ctx.Bot.confirms.Len(), "expired prompts are dropped")

	edit := ctx.LastEdit(t)
	require.NotNil(t, edit.Content)
	assert.Contains(t, *edit.Content, "Delete it?")
	assert.Len(t, edit.Buttons(), 2)
}

func TestButtonConfirmer_ContextCancelled(t *testing.T) {
	ctx := SetupTestContext(t)
	c := buttonConfirmer{s: ctx.Session, i: commandInteraction(cmdDeletePersonalQuest), confirms: ctx.Bot.confirms, timeout: time.Minute}

	cctx, cancel := context.WithCancel(context.Background())
	cancel()

	ok, err := c.Confirm(cctx, "Delete it?")
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ok)
}
