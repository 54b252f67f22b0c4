package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SoloLeveler_Go/internal/domain"
)

// TestCommandRegistry tests the command registry
func TestCommandRegistry(t *testing.T) {
	registry := NewCommandRegistry()

	cmd := &discordgo.ApplicationCommand{
		Name:        "test",
		Description: "Test command",
	}

	handlerCalled := false
	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
		handlerCalled = true
	}

	registry.Register(cmd, handler)

	assert.NotNil(t, registry.Commands["test"], "command registered")
	assert.NotNil(t, registry.Handlers["test"], "handler registered")

	registry.Handle(nil, commandInteraction("test"), nil)
	assert.True(t, handlerCalled)
}

func TestDefaultRegistry(t *testing.T) {
	registry := DefaultRegistry()

	for _, screen := range domain.Screens {
		assert.Contains(t, registry.Commands, string(screen))
	}
	for _, name := range []string{"ping", "reload", cmdCompleteTask, cmdCompleteQuest, cmdAddPersonalQuest,
		cmdCompletePersonalQuest, cmdDeletePersonalQuest, cmdAllocate, cmdBuy, cmdUse, cmdClaim} {
		assert.Contains(t, registry.Commands, name)
	}

	for name, cmd := range registry.Commands {
		assert.Equal(t, name, cmd.Name)
		assert.NotEmpty(t, cmd.Description, "command %s needs a description", name)
		assert.LessOrEqual(t, len(cmd.Name), 32)
	}
}

// TestRecordCommand tests command tracking
func TestRecordCommand(t *testing.T) {
	commandCounter.Store(0)

	RecordCommand()
	RecordCommand()
	RecordCommand()

	assert.Equal(t, int64(3), commandCounter.Load())
	assert.NotZero(t, lastCommandTime.Load())
}

func TestCommandsEqual(t *testing.T) {
	base := func() []*discordgo.ApplicationCommand {
		cmd, _ := BuyCommand()
		ping, _ := PingCommand()
		return []*discordgo.ApplicationCommand{cmd, ping}
	}

	t.Run("identical", func(t *testing.T) {
		assert.True(t, commandsEqual(base(), base()))
	})

	t.Run("order does not matter", func(t *testing.T) {
		a := base()
		b := base()
		b[0], b[1] = b[1], b[0]
		assert.True(t, commandsEqual(a, b))
	})

	t.Run("description change", func(t *testing.T) {
		b := base()
		b[0].Description = "changed"
		assert.False(t, commandsEqual(base(), b))
	})

	t.Run("option change", func(t *testing.T) {
		b := base()
		b[0].Options[0].Required = false
		assert.False(t, commandsEqual(base(), b))
	})

	t.Run("missing command", func(t *testing.T) {
		assert.False(t, commandsEqual(base(), base()[:1]))
	})

	t.Run("choice change", func(t *testing.T) {
		a, _ := AllocateStatCommand()
		b, _ := AllocateStatCommand()
		require.NotEmpty(t, b.Options[0].Choices)
		b.Options[0].Choices[0].Value = "luck"
		assert.False(t, commandEqual(a, b))
	})
}
