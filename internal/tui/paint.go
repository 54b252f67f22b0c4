package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/SoloLeveler_Go/internal/view"
)

const (
	paintCacheSize = 64
	paintCacheTTL  = 5 * time.Minute
	barWidth       = 20
)

// paintKey identifies one painted region. Anything that changes the
// output but is not part of the region must be part of the key.
type paintKey struct {
	fingerprint uint64
	width       int
	cursor      string
	flash       string
	glow        bool
	levelGlow   bool
}

// painter turns regions into styled text, reusing output for unchanged regions
type painter struct {
	cache *expirable.LRU[paintKey, string]
}

func newPainter() *painter {
	return &painter{cache: expirable.NewLRU[paintKey, string](paintCacheSize, nil, paintCacheTTL)}
}

// decoration is the transient state a region is painted with
type decoration struct {
	cursor    string // key of the selected action
	flash     string // id of the flashing element
	glow      bool
	levelGlow bool
	xp        *float64 // animated level bar value
}

// Paint renders r within width columns
func (p *painter) Paint(r view.Region, width int, d decoration) string {
	cacheable := d.xp == nil
	key := paintKey{fingerprint: r.Fingerprint(), width: width, cursor: d.cursor, flash: d.flash, glow: d.glow, levelGlow: d.levelGlow}
	if cacheable {
		if out, ok := p.cache.Get(key); ok {
			return out
		}
	}

	var lines []string
	lines = append(lines, titleStyle.Render(r.Title)+statusMarker(r.Status))
	for _, e := range r.Elements {
		lines = append(lines, paintElement(e, 0, d)...)
	}

	style := panelStyle
	if d.glow {
		style = glowPanel
	}
	if width > 4 {
		style = style.Width(width - 2)
	}
	out := style.Render(strings.Join(lines, "\n"))

	if cacheable {
		p.cache.Add(key, out)
	}
	return out
}

// Len reports how many painted regions are cached
func (p *painter) Len() int {
	return p.cache.Len()
}

func paintElement(e view.Element, depth int, d decoration) []string {
	indent := strings.Repeat("  ", depth)
	style := elementStyle(e.Style)

	var line string
	switch e.Kind {
	case view.KindHeading:
		line = headingStyle.Render(e.Text)
		if e.Detail != "" {
			line += " " + mutedStyle.Render(e.Detail)
		}
	case view.KindProgress:
		value := e.Value
		if d.xp != nil && e.ID == "xp" {
			value = *d.xp
		}
		line = fmt.Sprintf("%s %s %s", e.Text, goldStyle.Render(view.Bar(value, barWidth)), mutedStyle.Render(e.Detail))
	case view.KindStat:
		line = fmt.Sprintf("%s: %s", mutedStyle.Render(e.Text), style.Render(e.Detail))
	case view.KindBadge:
		line = goldStyle.Render("["+e.Text+"]")
		if e.Detail != "" {
			line += " " + mutedStyle.Render(e.Detail)
		}
	case view.KindEmpty:
		line = emptyStyle.Render(e.Text)
	case view.KindItem:
		mark := "•"
		if e.Style == view.StyleSuccess {
			mark = IconDone
		}
		line = style.Render(mark + " " + e.Text)
		if e.Detail != "" {
			line += "  " + mutedStyle.Render(e.Detail)
		}
	default:
		line = style.Render(e.Text)
		if e.Detail != "" {
			line += " " + mutedStyle.Render(e.Detail)
		}
	}

	if d.levelGlow && e.ID == "level" {
		line = goldStyle.Render(IconSparkle + " " + e.Text + " " + IconSparkle)
	}
	if d.flash != "" && e.ID == d.flash {
		line = flashStyle.Render(stripForFlash(e))
	}
	line += paintActions(e.Actions, d.cursor)

	out := []string{indent + line}
	for _, c := range e.Children {
		out = append(out, paintElement(c, depth+1, d)...)
	}
	return out
}

func stripForFlash(e view.Element) string {
	if e.Detail == "" {
		return IconDone + " " + e.Text
	}
	return IconDone + " " + e.Text + "  " + e.Detail
}

func paintActions(actions []view.Action, cursor string) string {
	var b strings.Builder
	for _, a := range actions {
		label := "[" + a.Label + "]"
		switch {
		case a.Key() == cursor:
			label = selectedStyle.Render(IconCursor + label)
		case a.Disabled:
			label = mutedStyle.Render(label)
		default:
			label = headingStyle.Render(label)
		}
		b.WriteString(" ")
		b.WriteString(label)
	}
	return b.String()
}
