package domain

import "fmt"

// SliceKind names one category of mirrored server state
type SliceKind string

// Slice kinds
const (
	SlicePlayer         SliceKind = "player"
	SliceTasks          SliceKind = "tasks"
	SliceInventory      SliceKind = "inventory"
	SliceQuests         SliceKind = "quests"
	SlicePersonalQuests SliceKind = "personal_quests"
	SliceShop           SliceKind = "shop"
	SliceAchievements   SliceKind = "achievements"
	SliceLeaderboard    SliceKind = "leaderboard"
)

// EagerSlices are fetched by a full load. The leaderboard is fetched on demand.
var EagerSlices = []SliceKind{
	SlicePlayer,
	SliceTasks,
	SliceInventory,
	SliceQuests,
	SlicePersonalQuests,
	SliceShop,
	SliceAchievements,
}

// AllSlices lists every slice kind
var AllSlices = append(append([]SliceKind{}, EagerSlices...), SliceLeaderboard)

// Valid reports whether k is a known slice
func (k SliceKind) Valid() bool {
	for _, s := range AllSlices {
		if s == k {
			return true
		}
	}
	return false
}

// SliceStatus is the per-slice load state
type SliceStatus int

// Unloaded -> Loading -> Loaded | LoadError. A reload re-enters Loading.
const (
	StatusUnloaded SliceStatus = iota
	StatusLoading
	StatusLoaded
	StatusLoadError
)

func (s SliceStatus) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusLoadError:
		return "load_error"
	default:
		return "unloaded"
	}
}

// MarshalText lets statuses appear as strings in JSON status output
func (s SliceStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses the names written by MarshalText
func (s *SliceStatus) UnmarshalText(text []byte) error {
	switch string(text) {
	case "unloaded":
		*s = StatusUnloaded
	case "loading":
		*s = StatusLoading
	case "loaded":
		*s = StatusLoaded
	case "load_error":
		*s = StatusLoadError
	default:
		return fmt.Errorf("unknown slice status %q", text)
	}
	return nil
}
