package effect

import "time"

// Particle burst shape
const (
	ParticleCount       = 5
	ParticleMinRise     = 100.0
	ParticleRiseSpread  = 100.0
	ParticleMinDuration = 1000 * time.Millisecond
	ParticleSpread      = 500 * time.Millisecond
)

// Effect durations
const (
	TaskFlashDuration     = 1 * time.Second
	GlowDuration          = 2 * time.Second
	RankUpDuration        = 3 * time.Second
	LevelProgressDuration = 2 * time.Second
	LevelProgressDelay    = 100 * time.Millisecond
	LevelGlowPulse        = 500 * time.Millisecond
	LevelGlowPulses       = 3
)

// Effect targets
const (
	TargetQuestInfo = "quest-info"
	TargetLevel     = "level"
	TargetRank      = "rank"
	TargetScreen    = "screen"
)
