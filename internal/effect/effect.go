// Package effect builds the transient visual effects that accompany actions.
// Effects are descriptions only; front-ends decide how to play them.
package effect

import (
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/osse101/SoloLeveler_Go/internal/domain"
)

// Builder creates effects. Randomness is injected so bursts are reproducible in tests.
type Builder struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewBuilder creates a Builder seeded from seed
func NewBuilder(seed int64) *Builder {
	//nolint:gosec // G404: particle placement is cosmetic
	return &Builder{rng: rand.New(rand.NewSource(seed))}
}

// NewDefaultBuilder creates a Builder seeded from the clock
func NewDefaultBuilder() *Builder {
	return NewBuilder(time.Now().UnixNano())
}

// Particles returns a burst of ParticleCount particles with a random
// horizontal position, rise and lifetime.
func (b *Builder) Particles() domain.Effect {
	b.mu.Lock()
	defer b.mu.Unlock()

	particles := make([]domain.Particle, ParticleCount)
	longest := time.Duration(0)
	for i := range particles {
		d := ParticleMinDuration + time.Duration(b.rng.Int63n(int64(ParticleSpread)))
		particles[i] = domain.Particle{
			X:        b.rng.Float64(),
			Rise:     ParticleMinRise + b.rng.Float64()*ParticleRiseSpread,
			Duration: d,
		}
		if d > longest {
			longest = d
		}
	}
	return domain.Effect{
		Kind:      domain.EffectParticles,
		Target:    TargetScreen,
		Duration:  longest,
		Particles: particles,
	}
}

// Glow highlights the quest info box
func Glow() domain.Effect {
	return domain.Effect{Kind: domain.EffectGlow, Target: TargetQuestInfo, Duration: GlowDuration}
}

// TaskTarget names the flash target of the task at index
func TaskTarget(index int) string {
	return "task-" + strconv.Itoa(index)
}

// TaskFlash marks the task that was just completed
func TaskFlash(index int) domain.Effect {
	return domain.Effect{Kind: domain.EffectTaskFlash, Target: TaskTarget(index), Duration: TaskFlashDuration}
}

// RankUp announces a rank change. It fires on any change, including a drop.
func RankUp(from, to domain.Rank) domain.Effect {
	return domain.Effect{
		Kind:     domain.EffectRankUp,
		Target:   TargetRank,
		Duration: RankUpDuration,
		FromRank: from,
		ToRank:   to,
	}
}

// RankChange returns the rank effect when before and after differ. An
// unknown prior rank (first load) never triggers it.
func RankChange(before, after domain.Rank) (domain.Effect, bool) {
	if before == "" || after == "" || before == after {
		return domain.Effect{}, false
	}
	return RankUp(before, after), true
}

// LevelProgress animates the level bar from empty to progress
func LevelProgress(progress float64) domain.Effect {
	return domain.Effect{
		Kind:     domain.EffectLevelProgress,
		Target:   TargetLevel,
		Duration: LevelProgressDuration,
		Progress: progress,
	}
}

// LevelGlow pulses the level text
func LevelGlow() domain.Effect {
	return domain.Effect{
		Kind:     domain.EffectLevelGlow,
		Target:   TargetLevel,
		Duration: LevelGlowPulse * LevelGlowPulses,
	}
}

// Frame returns the animated progress value at elapsed time into a
// LevelProgress effect, including its start delay. Progress eases in and out.
func Frame(e domain.Effect, elapsed time.Duration) float64 {
	elapsed -= LevelProgressDelay
	if elapsed <= 0 || e.Duration <= 0 {
		return 0
	}
	if elapsed >= e.Duration {
		return e.Progress
	}
	x := float64(elapsed) / float64(e.Duration)
	var eased float64
	if x < 0.5 {
		eased = 2 * x * x
	} else {
		eased = 1 - 2*(1-x)*(1-x)
	}
	return e.Progress * eased
}

// Active reports whether e is still playing elapsed after it started
func Active(e domain.Effect, elapsed time.Duration) bool {
	if e.Kind == domain.EffectLevelProgress {
		return elapsed < e.Duration+LevelProgressDelay
	}
	return elapsed < e.Duration
}
