package domain

import "time"

// NotificationLevel selects the toast styling
type NotificationLevel string

// Notification levels
const (
	NotifySuccess NotificationLevel = "success"
	NotifyError   NotificationLevel = "error"
	NotifyInfo    NotificationLevel = "info"
)

// Notification is a transient message shown to the user
type Notification struct {
	Level   NotificationLevel `json:"level"`
	Message string            `json:"message"`
}

// IsZero reports whether nothing should be shown
func (n Notification) IsZero() bool {
	return n.Message == ""
}

// EffectKind identifies a transient visual effect
type EffectKind string

// Effect kinds
const (
	EffectParticles     EffectKind = "particles"
	EffectGlow          EffectKind = "glow"
	EffectTaskFlash     EffectKind = "task_flash"
	EffectRankUp        EffectKind = "rank_up"
	EffectLevelProgress EffectKind = "level_progress"
	EffectLevelGlow     EffectKind = "level_glow"
)

// Particle is one floating dot of a particle burst. X is a fraction of the
// viewport width; Rise is in pixels (or rows, for a terminal).
type Particle struct {
	X        float64       `json:"x"`
	Rise     float64       `json:"rise"`
	Duration time.Duration `json:"duration"`
}

// Effect is a visual-only event. It never touches the mirror.
type Effect struct {
	Kind      EffectKind    `json:"kind"`
	Target    string        `json:"target,omitempty"`
	Duration  time.Duration `json:"duration"`
	Particles []Particle    `json:"particles,omitempty"`
	FromRank  Rank          `json:"from_rank,omitempty"`
	ToRank    Rank          `json:"to_rank,omitempty"`
	Progress  float64       `json:"progress,omitempty"`
}

// Outcome is what a user-triggered action produced
type Outcome struct {
	Action       string       `json:"action"`
	Notification Notification `json:"notification"`
	Effects      []Effect     `json:"effects,omitempty"`
	Err          error        `json:"-"`
}

// OK reports whether the action succeeded
func (o Outcome) OK() bool {
	return o.Err == nil
}

// HasEffect reports whether the outcome carries an effect of the given kind
func (o Outcome) HasEffect(kind EffectKind) bool {
	for _, e := range o.Effects {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
