package discord

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	ctx := SetupTestContext(t)
	ctx.Serve(defaultPlayer(), defaultTasks())

	h := ctx.Bot.Health()
	assert.False(t, h.Connected, "session never opened")
	assert.False(t, h.MirrorReady)
	assert.ErrorIs(t, ctx.Bot.CheckHealth(context.Background()), ErrGatewayDisconnected)

	require.NoError(t, ctx.Sync.LoadAll(context.Background()))
	assert.True(t, ctx.Bot.Health().MirrorReady)

	ctx.Session.DataReady = true
	assert.NoError(t, ctx.Bot.CheckHealth(context.Background()))
}
