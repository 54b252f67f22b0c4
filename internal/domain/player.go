package domain

// Rank is the coarse player tier computed server-side from the rank score.
type Rank string

// Ranks in ascending order
const (
	RankE Rank = "E"
	RankD Rank = "D"
	RankC Rank = "C"
	RankB Rank = "B"
	RankA Rank = "A"
	RankS Rank = "S"
)

var rankOrder = map[Rank]int{
	RankE: 0,
	RankD: 1,
	RankC: 2,
	RankB: 3,
	RankA: 4,
	RankS: 5,
}

// Ordinal returns the position of the rank in the E..S ladder, or -1 when unknown.
func (r Rank) Ordinal() int {
	if o, ok := rankOrder[r]; ok {
		return o
	}
	return -1
}

// Above reports whether r is a higher tier than other.
func (r Rank) Above(other Rank) bool {
	return r.Ordinal() > other.Ordinal()
}

// Stat names accepted by the allocate-stat endpoint
const (
	StatStrength     = "strength"
	StatVitality     = "vitality"
	StatAgility      = "agility"
	StatIntelligence = "intelligence"
	StatPerception   = "perception"
)

// StatNames lists allocatable stats in display order
var StatNames = []string{StatStrength, StatVitality, StatAgility, StatIntelligence, StatPerception}

// StatBlock holds the player's attribute values
type StatBlock struct {
	Strength        float64 `json:"strength"`
	Vitality        float64 `json:"vitality"`
	Agility         float64 `json:"agility"`
	Intelligence    float64 `json:"intelligence"`
	Perception      float64 `json:"perception"`
	AvailablePoints int     `json:"available_points"`
}

// Value returns the stat with the given name
func (s StatBlock) Value(name string) (float64, bool) {
	switch name {
	case StatStrength:
		return s.Strength, true
	case StatVitality:
		return s.Vitality, true
	case StatAgility:
		return s.Agility, true
	case StatIntelligence:
		return s.Intelligence, true
	case StatPerception:
		return s.Perception, true
	}
	return 0, false
}

// PlayerProfile is the server's view of the player
type PlayerProfile struct {
	Name                    string    `json:"name,omitempty"`
	Level                   int       `json:"level"`
	CurrentXP               int       `json:"current_xp"`
	XPToNextLevel           int       `json:"xp_to_next_level"`
	Coins                   int       `json:"coins"`
	Energy                  int       `json:"energy"`
	Class                   string    `json:"class"`
	Title                   string    `json:"title"`
	TotalExperience         int       `json:"total_experience"`
	PhysicalDamageReduction float64   `json:"physical_damage_reduction"`
	MagicalDamageReduction  float64   `json:"magical_damage_reduction"`
	MaxStreak               int       `json:"max_streak"`
	Rank                    Rank      `json:"rank"`
	RankScore               float64   `json:"rank_score"`
	PointsToNextRank        *float64  `json:"points_to_next_rank"` // nil at max rank
	Stats                   StatBlock `json:"stats"`
}

// IsMaxRank reports whether the server marked the player as top rank
func (p PlayerProfile) IsMaxRank() bool {
	return p.PointsToNextRank == nil
}

// LevelProgress returns CurrentXP over the level threshold, clamped to [0,1].
func (p PlayerProfile) LevelProgress() float64 {
	if p.XPToNextLevel <= 0 {
		return 0
	}
	ratio := float64(p.CurrentXP) / float64(p.XPToNextLevel)
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}
