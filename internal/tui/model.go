// Package tui is the terminal front-end. It renders the synchronizer's
// mirror through the view package and plays outcome effects.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/osse101/SoloLeveler_Go/internal/countdown"
	"github.com/osse101/SoloLeveler_Go/internal/domain"
	"github.com/osse101/SoloLeveler_Go/internal/effect"
	"github.com/osse101/SoloLeveler_Go/internal/logger"
	"github.com/osse101/SoloLeveler_Go/internal/mirror"
	"github.com/osse101/SoloLeveler_Go/internal/synchronizer"
	"github.com/osse101/SoloLeveler_Go/internal/view"
)

const (
	toastDuration = 3 * time.Second
	frameInterval = 100 * time.Millisecond
	defaultWidth  = 80
)

type (
	snapshotMsg  struct{}
	loadedMsg    struct{ err error }
	countdownMsg countdown.View
	navigatedMsg struct{ err error }
	frameMsg     time.Time
)

// outcomeMsg carries an action result. Background outcomes come from the
// bus and do not end a pending action.
type outcomeMsg struct {
	outcome    domain.Outcome
	background bool
}

type toast struct {
	note    domain.Notification
	expires time.Time
}

type activeEffect struct {
	fx    domain.Effect
	start time.Time
}

// Model is the Bubble Tea model of the client
type Model struct {
	ctx       context.Context
	sync      *synchronizer.Synchronizer
	painter   *painter
	out       *sender
	confirmer synchronizer.Confirmer
	now       func() time.Time

	width  int
	height int

	screen    domain.Screen
	snap      mirror.Snapshot
	countdown countdown.View
	cursor    int

	toast   *toast
	effects []activeEffect
	confirm *confirmRequestMsg
	input   *questInput
	busy    bool
}

// NewModel creates a model over s
func NewModel(ctx context.Context, s *synchronizer.Synchronizer) Model {
	out := &sender{}
	return Model{
		ctx:       ctx,
		sync:      s,
		painter:   newPainter(),
		out:       out,
		confirmer: promptConfirmer{out: out},
		now:       time.Now,
		width:     defaultWidth,
		screen:    s.Screen(),
		snap:      s.Snapshot(),
		countdown: s.Countdown(),
	}
}

// Init starts the initial load
func (m Model) Init() tea.Cmd {
	return m.loadAllCmd()
}

func (m Model) loadAllCmd() tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{err: m.sync.LoadAll(m.ctx)}
	}
}

func (m Model) performCmd(a view.Action, extra ...string) tea.Cmd {
	return func() tea.Msg {
		ctx := logger.WithNewRequestID(m.ctx)
		return outcomeMsg{outcome: m.sync.Perform(ctx, a, m.confirmer, extra...)}
	}
}

func (m Model) navigateCmd(target domain.Screen) tea.Cmd {
	return func() tea.Msg {
		return navigatedMsg{err: m.sync.Navigate(m.ctx, target)}
	}
}

func (m Model) levelGlowCmd() tea.Cmd {
	return func() tea.Msg {
		return outcomeMsg{outcome: m.sync.LevelGlow(m.ctx)}
	}
}

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// actions lists the affordances of the current screen in display order
func (m Model) actions() []view.Action {
	var out []view.Action
	for _, r := range view.Screen(m.screen, m.snap) {
		out = append(out, r.Actions()...)
	}
	return out
}

func (m Model) selected() (view.Action, bool) {
	actions := m.actions()
	if m.cursor < 0 || m.cursor >= len(actions) {
		return view.Action{}, false
	}
	return actions[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.actions())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) switchTo(target domain.Screen) tea.Cmd {
	m.screen = target
	m.cursor = 0
	return m.navigateCmd(target)
}

func (m *Model) pruneEffects() {
	now := m.now()
	kept := m.effects[:0]
	for _, a := range m.effects {
		if effect.Active(a.fx, now.Sub(a.start)) {
			kept = append(kept, a)
		}
	}
	m.effects = kept
	if m.toast != nil && !now.Before(m.toast.expires) {
		m.toast = nil
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case snapshotMsg:
		m.snap = m.sync.Snapshot()
		m.clampCursor()
		return m, nil

	case loadedMsg:
		m.busy = false
		m.snap = m.sync.Snapshot()
		m.clampCursor()
		if msg.err != nil {
			logger.FromContext(m.ctx).Warn("Initial load incomplete", "error", msg.err)
		}
		return m, nil

	case navigatedMsg:
		m.snap = m.sync.Snapshot()
		m.clampCursor()
		return m, nil

	case outcomeMsg:
		if !msg.background {
			m.busy = false
		}
		m.snap = m.sync.Snapshot()
		m.clampCursor()
		now := m.now()
		if !msg.outcome.Notification.IsZero() {
			m.toast = &toast{note: msg.outcome.Notification, expires: now.Add(toastDuration)}
		}
		for _, fx := range msg.outcome.Effects {
			m.effects = append(m.effects, activeEffect{fx: fx, start: now})
		}
		if len(m.effects) > 0 {
			return m, frameCmd()
		}
		return m, nil

	case countdownMsg:
		m.countdown = countdown.View(msg)
		m.pruneEffects()
		return m, nil

	case frameMsg:
		m.pruneEffects()
		if len(m.effects) > 0 {
			return m, frameCmd()
		}
		return m, nil

	case confirmRequestMsg:
		if m.confirm != nil {
			// One prompt at a time
			msg.reply <- false
			return m, nil
		}
		m.confirm = &msg
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.confirm != nil {
		switch msg.String() {
		case "y", "Y", "enter":
			m.confirm.reply <- true
			m.confirm = nil
		case "n", "N", "esc":
			m.confirm.reply <- false
			m.confirm = nil
		}
		return m, nil
	}

	if m.input != nil {
		if msg.Type == tea.KeyEsc {
			m.input = nil
			return m, nil
		}
		if m.input.handle(msg) {
			name, description := string(m.input.name), string(m.input.description)
			m.input = nil
			m.busy = true
			return m, m.performCmd(view.Action{Kind: view.ActionAddPersonalQuest}, name, description)
		}
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab", "right", "l":
		return m, m.switchTo(m.screen.Next())
	case "shift+tab", "left", "h":
		return m, m.switchTo(m.screen.Prev())
	case "1", "2", "3", "4", "5", "6", "7":
		idx := int(msg.Runes[0] - '1')
		if idx < len(domain.Screens) {
			return m, m.switchTo(domain.Screens[idx])
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.actions())-1 {
			m.cursor++
		}
	case "r":
		m.busy = true
		return m, m.loadAllCmd()
	case "a":
		if m.screen == domain.ScreenQuests {
			m.input = &questInput{}
		}
	case "ctrl+l":
		return m, m.levelGlowCmd()
	case "enter", " ":
		a, ok := m.selected()
		if !ok {
			return m, nil
		}
		if a.Kind == view.ActionAddPersonalQuest {
			m.input = &questInput{}
			return m, nil
		}
		m.busy = true
		return m, m.performCmd(a)
	}
	return m, nil
}

func (m Model) active(kind domain.EffectKind) (activeEffect, bool) {
	for i := len(m.effects) - 1; i >= 0; i-- {
		if m.effects[i].fx.Kind == kind {
			return m.effects[i], true
		}
	}
	return activeEffect{}, false
}

// rankBanner announces a rank change; a drop gets its own wording
func rankBanner(fx domain.Effect) string {
	if fx.ToRank.Above(fx.FromRank) {
		return goldStyle.Render(fmt.Sprintf("%s RANK UP %s → %s %s", IconRank, fx.FromRank, fx.ToRank, IconRank))
	}
	return warnStyle.Render(fmt.Sprintf("%s RANK DOWN %s → %s", IconDemote, fx.FromRank, fx.ToRank))
}

// View renders the screen
func (m Model) View() string {
	var sections []string
	sections = append(sections, m.renderTabs(), m.renderHeader())

	if burst, ok := m.active(domain.EffectParticles); ok {
		sections = append(sections, m.renderParticles(burst))
	}
	if rank, ok := m.active(domain.EffectRankUp); ok {
		sections = append(sections, rankBanner(rank.fx))
	}

	d := m.decoration()
	cursorKey := ""
	if a, ok := m.selected(); ok {
		cursorKey = a.Key()
	}
	for _, r := range view.Screen(m.screen, m.snap) {
		rd := d
		rd.cursor = cursorKey
		rd.glow = d.glow && r.Slice == domain.SliceTasks
		sections = append(sections, m.painter.Paint(r, m.width, rd))
	}

	if m.input != nil {
		sections = append(sections, m.input.render())
	}
	if m.confirm != nil {
		sections = append(sections, warnStyle.Render(m.confirm.prompt)+mutedStyle.Render("  [y/n]"))
	}
	if m.toast != nil {
		style, ok := toastStyles[m.toast.note.Level]
		if !ok {
			style = headingStyle
		}
		sections = append(sections, style.Render(m.toast.note.Message))
	}
	sections = append(sections, mutedStyle.Render("tab/←→: screens · ↑↓: select · enter: act · a: add quest · r: reload · q: quit"))
	return strings.Join(sections, "\n")
}

func (m Model) decoration() decoration {
	now := m.now()
	var d decoration
	if _, ok := m.active(domain.EffectGlow); ok {
		d.glow = true
	}
	if _, ok := m.active(domain.EffectLevelGlow); ok {
		d.levelGlow = true
	}
	if flash, ok := m.active(domain.EffectTaskFlash); ok {
		d.flash = flash.fx.Target
	}
	if lp, ok := m.active(domain.EffectLevelProgress); ok {
		v := effect.Frame(lp.fx, now.Sub(lp.start))
		d.xp = &v
	}
	return d
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(domain.Screens))
	for i, s := range domain.Screens {
		label := fmt.Sprintf("%d %s", i+1, view.Title(strings.ReplaceAll(string(s), "-", "_")))
		if s == m.screen {
			tabs = append(tabs, activeTabStyle.Render(label))
			continue
		}
		tabs = append(tabs, tabStyle.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderHeader() string {
	timer := view.Countdown(m.countdown)
	style := headingStyle
	if timer.Style == view.StyleWarning {
		style = warnStyle
	}
	header := style.Render(timer.Text) + " " + mutedStyle.Render(timer.Detail)

	var stale []string
	for _, kind := range domain.EagerSlices {
		if m.snap.Slices[kind].Status == domain.StatusLoadError {
			stale = append(stale, string(kind))
		}
	}
	if len(stale) > 0 {
		header += "  " + badStyle.Render(IconWarn+" stale: "+strings.Join(stale, ", "))
	}
	if m.busy {
		header += "  " + mutedStyle.Render("working…")
	}
	return header
}

// renderParticles draws the burst as sparkles that fade out one by one
func (m Model) renderParticles(burst activeEffect) string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	elapsed := m.now().Sub(burst.start)
	row := []rune(strings.Repeat(" ", width))
	for _, p := range burst.fx.Particles {
		if elapsed >= p.Duration {
			continue
		}
		col := int(p.X * float64(width-1))
		if col >= 0 && col < len(row) {
			row[col] = []rune(IconSparkle)[0]
		}
	}
	return goldStyle.Render(string(row))
}
