package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SoloLeveler_Go/internal/client"
	"github.com/osse101/SoloLeveler_Go/internal/domain"
	"github.com/osse101/SoloLeveler_Go/internal/effect"
	"github.com/osse101/SoloLeveler_Go/internal/event"
	"github.com/osse101/SoloLeveler_Go/internal/synchronizer"
	"github.com/osse101/SoloLeveler_Go/internal/view"
)

func setupTestModel(t *testing.T) (Model, *MockAPI) {
	t.Helper()
	api := new(MockAPI)
	expectReads(api)
	s := synchronizer.New(api, event.NewMemoryBus(), synchronizer.WithEffectBuilder(effect.NewBuilder(1)))
	t.Cleanup(s.Close)

	m := NewModel(context.Background(), s)
	return m, api
}

// step applies msg and runs the resulting command, if any, feeding its
// message back once. Batch and tick commands are not followed.
func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)
	if cmd == nil {
		return m
	}
	switch out := cmd().(type) {
	case frameMsg, tea.QuitMsg:
		return m
	case nil:
		return m
	default:
		next, _ = m.Update(out)
		return next.(Model)
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loaded(t *testing.T) (Model, *MockAPI) {
	t.Helper()
	m, api := setupTestModel(t)
	msg := m.Init()()
	next, _ := m.Update(msg)
	return next.(Model), api
}

func TestModel_InitialLoadRendersDailyTasks(t *testing.T) {
	m, _ := loaded(t)

	out := m.View()
	assert.Contains(t, out, "Push-ups")
	assert.Contains(t, out, "Running")
	assert.Contains(t, out, "until reset")
	assert.False(t, m.busy)
}

func TestModel_Navigation(t *testing.T) {
	m, _ := loaded(t)
	require.Equal(t, domain.ScreenDailyTasks, m.screen)

	m = step(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, domain.ScreenStatus, m.screen)

	m = step(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, domain.ScreenDailyTasks, m.screen)

	m = step(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, domain.ScreenLeaderboard, m.screen, "navigation wraps around")

	m = step(t, m, keyRunes("5"))
	assert.Equal(t, domain.ScreenShop, m.screen)
	assert.Contains(t, m.View(), "Elixir")
}

func TestModel_CursorStaysInRange(t *testing.T) {
	m, _ := loaded(t)

	for i := 0; i < 5; i++ {
		m = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, 1, m.cursor, "two tasks give two actions")

	for i := 0; i < 5; i++ {
		m = step(t, m, keyRunes("k"))
	}
	assert.Equal(t, 0, m.cursor)
}

func TestModel_CompleteTaskShowsToastAndEffects(t *testing.T) {
	m, api := loaded(t)
	api.On("CompleteTask", mock.Anything, 0).Return(nil).Once()

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	require.NotNil(t, cmd)
	assert.True(t, m.busy)

	next, frame := m.Update(cmd())
	m = next.(Model)

	assert.False(t, m.busy)
	require.NotNil(t, m.toast)
	assert.Equal(t, domain.NotifySuccess, m.toast.note.Level)
	assert.Contains(t, m.View(), "Task completed: Push-ups!")
	assert.NotEmpty(t, m.effects)
	assert.NotNil(t, frame, "effects schedule animation frames")
	api.AssertExpectations(t)
}

func TestModel_FailedActionShowsError(t *testing.T) {
	m, api := loaded(t)
	api.On("CompleteTask", mock.Anything, 0).Return(&client.TransportError{Err: errors.New("connection refused")}).Once()

	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, m.toast)
	assert.Equal(t, domain.NotifyError, m.toast.note.Level)
	assert.Contains(t, m.toast.note.Message, synchronizer.MsgPrefixTransport)
	assert.Empty(t, m.effects)
}

func TestModel_ToastAndEffectsExpire(t *testing.T) {
	m, api := loaded(t)
	api.On("CompleteTask", mock.Anything, 0).Return(nil).Once()

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.toast)

	now = now.Add(toastDuration + effect.GlowDuration + effect.ParticleMinDuration + effect.ParticleSpread)
	next, cmd := m.Update(frameMsg(now))
	m = next.(Model)

	assert.Nil(t, m.toast)
	assert.Empty(t, m.effects)
	assert.Nil(t, cmd, "no frames once everything settled")
}

func TestModel_ConfirmPrompt(t *testing.T) {
	t.Run("decline", func(t *testing.T) {
		m, _ := loaded(t)
		reply := make(chan bool, 1)

		m = step(t, m, confirmRequestMsg{prompt: "Delete it?", reply: reply})
		assert.Contains(t, m.View(), "Delete it?")

		m = step(t, m, keyRunes("n"))
		assert.Nil(t, m.confirm)
		assert.False(t, <-reply)
	})

	t.Run("accept", func(t *testing.T) {
		m, _ := loaded(t)
		reply := make(chan bool, 1)

		m = step(t, m, confirmRequestMsg{prompt: "Delete it?", reply: reply})
		m = step(t, m, keyRunes("y"))
		assert.True(t, <-reply)
	})

	t.Run("second prompt is declined", func(t *testing.T) {
		m, _ := loaded(t)
		first := make(chan bool, 1)
		second := make(chan bool, 1)

		m = step(t, m, confirmRequestMsg{prompt: "first", reply: first})
		m = step(t, m, confirmRequestMsg{prompt: "second", reply: second})

		assert.False(t, <-second)
		require.NotNil(t, m.confirm)
		assert.Equal(t, "first", m.confirm.prompt)
	})

	t.Run("keys go to the prompt only", func(t *testing.T) {
		m, _ := loaded(t)
		reply := make(chan bool, 1)

		m = step(t, m, confirmRequestMsg{prompt: "Delete it?", reply: reply})
		m = step(t, m, tea.KeyMsg{Type: tea.KeyTab})
		assert.Equal(t, domain.ScreenDailyTasks, m.screen)
		assert.NotNil(t, m.confirm)
	})
}

func TestModel_AddPersonalQuestForm(t *testing.T) {
	m, api := loaded(t)
	api.On("AddPersonalQuest", mock.Anything, domain.NewPersonalQuest{Name: "Read", Description: "Daily"}).
		Return(&client.ActionResult{Success: true}, nil).Once()

	m = step(t, m, keyRunes("3"))
	require.Equal(t, domain.ScreenQuests, m.screen)

	m = step(t, m, keyRunes("a"))
	require.NotNil(t, m.input)

	m = step(t, m, keyRunes("Read"))
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = step(t, m, keyRunes("Daily"))
	assert.Contains(t, m.View(), "Daily")

	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, m.input)
	require.NotNil(t, m.toast)
	assert.Equal(t, synchronizer.MsgPersonalQuestAdded, m.toast.note.Message)
	api.AssertExpectations(t)
}

func TestModel_AddPersonalQuestFormCancel(t *testing.T) {
	m, _ := loaded(t)
	m = step(t, m, keyRunes("3"))
	m = step(t, m, keyRunes("a"))
	require.NotNil(t, m.input)

	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.input)
}

func TestModel_AddKeyIgnoredOutsideQuests(t *testing.T) {
	m, _ := loaded(t)
	m = step(t, m, keyRunes("a"))
	assert.Nil(t, m.input)
}

func TestModel_Quit(t *testing.T) {
	m, _ := loaded(t)

	_, cmd := m.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_CountdownWarning(t *testing.T) {
	m, _ := loaded(t)

	m = step(t, m, countdownMsg{Text: "01:00:00", Warning: true})
	assert.Contains(t, m.View(), "01:00:00")
}

func TestModel_StaleSliceMarker(t *testing.T) {
	api := new(MockAPI)
	api.On("GetDailyTasks", mock.Anything).Return(nil, &client.TransportError{Err: errors.New("timeout")})
	expectReads(api)
	s := synchronizer.New(api, nil)
	t.Cleanup(s.Close)

	m := NewModel(context.Background(), s)
	m = step(t, m, m.Init()())

	assert.Contains(t, m.View(), "stale: "+string(domain.SliceTasks))
}

func TestPainter_CachesUnchangedRegions(t *testing.T) {
	p := newPainter()
	r := view.Region{Slice: domain.SliceShop, Title: "Shop", Elements: []view.Element{{Kind: view.KindText, ID: "a", Text: "hello"}}}

	first := p.Paint(r, 60, decoration{})
	second := p.Paint(r, 60, decoration{})
	assert.Equal(t, first, second)
	assert.Equal(t, 1, p.Len())

	p.Paint(r, 60, decoration{cursor: "buy_item:Elixir"})
	assert.Equal(t, 2, p.Len(), "cursor is part of the key")

	xp := 0.5
	p.Paint(r, 60, decoration{xp: &xp})
	assert.Equal(t, 2, p.Len(), "animated frames are not cached")
}

func TestPromptConfirmer(t *testing.T) {
	t.Run("unbound declines", func(t *testing.T) {
		c := promptConfirmer{out: &sender{}}
		ok, err := c.Confirm(context.Background(), "sure?")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("bound waits for reply", func(t *testing.T) {
		out := &sender{}
		out.bind(func(msg tea.Msg) {
			req := msg.(confirmRequestMsg)
			go func() { req.reply <- true }()
		})
		ok, err := promptConfirmer{out: out}.Confirm(context.Background(), "sure?")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("context ends the wait", func(t *testing.T) {
		out := &sender{}
		out.bind(func(tea.Msg) {})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		ok, err := promptConfirmer{out: out}.Confirm(ctx, "sure?")
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, ok)
	})
}

func TestQuestInput(t *testing.T) {
	q := &questInput{}

	assert.False(t, q.handle(keyRunes("ab")))
	assert.False(t, q.handle(tea.KeyMsg{Type: tea.KeySpace}))
	assert.False(t, q.handle(keyRunes("c")))
	assert.False(t, q.handle(tea.KeyMsg{Type: tea.KeyBackspace}))
	assert.Equal(t, "ab ", string(q.name))

	assert.False(t, q.handle(tea.KeyMsg{Type: tea.KeyTab}))
	assert.Equal(t, fieldDescription, q.field)

	for i := 0; i < domain.PersonalQuestDescriptionMaxLen+10; i++ {
		q.handle(keyRunes("x"))
	}
	assert.Len(t, q.description, domain.PersonalQuestDescriptionMaxLen)
	assert.True(t, q.handle(tea.KeyMsg{Type: tea.KeyEnter}))
}

func TestRankBanner(t *testing.T) {
	up := rankBanner(domain.Effect{Kind: domain.EffectRankUp, FromRank: domain.RankE, ToRank: domain.RankD})
	assert.Contains(t, up, "RANK UP")
	assert.Contains(t, up, "E → D")

	down := rankBanner(domain.Effect{Kind: domain.EffectRankUp, FromRank: domain.RankC, ToRank: domain.RankD})
	assert.Contains(t, down, "RANK DOWN")
	assert.NotContains(t, down, "RANK UP")
}
