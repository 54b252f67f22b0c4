package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/osse101/SoloLeveler_Go/internal/domain"
)

const (
	fieldName = iota
	fieldDescription
)

// questInput collects a new personal quest
type questInput struct {
	field       int
	name        []rune
	description []rune
}

func (q *questInput) current() *[]rune {
	if q.field == fieldName {
		return &q.name
	}
	return &q.description
}

func (q *questInput) limit() int {
	if q.field == fieldName {
		return domain.PersonalQuestNameMaxLen
	}
	return domain.PersonalQuestDescriptionMaxLen
}

// handle applies a key and reports whether the form was submitted
func (q *questInput) handle(msg tea.KeyMsg) (submitted bool) {
	buf := q.current()
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		add := msg.Runes
		if msg.Type == tea.KeySpace {
			add = []rune{' '}
		}
		if len(*buf)+len(add) <= q.limit() {
			*buf = append(*buf, add...)
		}
	case tea.KeyBackspace:
		if len(*buf) > 0 {
			*buf = (*buf)[:len(*buf)-1]
		}
	case tea.KeyTab:
		q.field = (q.field + 1) % 2
	case tea.KeyEnter:
		if q.field == fieldName {
			q.field = fieldDescription
			return false
		}
		return true
	}
	return false
}

func (q *questInput) render() string {
	cursor := func(field int) string {
		if q.field == field {
			return goldStyle.Render("▏")
		}
		return ""
	}
	lines := []string{
		headingStyle.Render("New personal quest") + mutedStyle.Render("  enter: next/submit · tab: switch · esc: cancel"),
		mutedStyle.Render("Name: ") + string(q.name) + cursor(fieldName),
		mutedStyle.Render("Description: ") + string(q.description) + cursor(fieldDescription),
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}
