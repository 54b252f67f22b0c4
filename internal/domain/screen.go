package domain

// Screen is one navigable page of the client
type Screen string

// Screens in navigation order
const (
	ScreenDailyTasks   Screen = "daily-tasks"
	ScreenStatus       Screen = "status"
	ScreenQuests       Screen = "quests"
	ScreenInventory    Screen = "inventory"
	ScreenShop         Screen = "shop"
	ScreenAchievements Screen = "achievements"
	ScreenLeaderboard  Screen = "leaderboard"
)

// Screens lists screens in navigation order
var Screens = []Screen{
	ScreenDailyTasks,
	ScreenStatus,
	ScreenQuests,
	ScreenInventory,
	ScreenShop,
	ScreenAchievements,
	ScreenLeaderboard,
}

// Valid reports whether s is a known screen
func (s Screen) Valid() bool {
	return s.index() >= 0
}

func (s Screen) index() int {
	for i, sc := range Screens {
		if sc == s {
			return i
		}
	}
	return -1
}

// Next returns the following screen, wrapping around
func (s Screen) Next() Screen {
	i := s.index()
	if i < 0 {
		return Screens[0]
	}
	return Screens[(i+1)%len(Screens)]
}

// Prev returns the preceding screen, wrapping around
func (s Screen) Prev() Screen {
	i := s.index()
	if i < 0 {
		return Screens[0]
	}
	return Screens[(i-1+len(Screens))%len(Screens)]
}

// Slices returns the slices a screen displays
func (s Screen) Slices() []SliceKind {
	switch s {
	case ScreenDailyTasks:
		return []SliceKind{SliceTasks, SlicePlayer}
	case ScreenStatus:
		return []SliceKind{SlicePlayer}
	case ScreenQuests:
		return []SliceKind{SliceQuests, SlicePersonalQuests}
	case ScreenInventory:
		return []SliceKind{SliceInventory}
	case ScreenShop:
		return []SliceKind{SliceShop, SlicePlayer}
	case ScreenAchievements:
		return []SliceKind{SliceAchievements}
	case ScreenLeaderboard:
		return []SliceKind{SliceLeaderboard}
	}
	return nil
}
