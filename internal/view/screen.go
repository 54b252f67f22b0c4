package view

import (
	"github.com/osse101/SoloLeveler_Go/internal/countdown"
	"github.com/osse101/SoloLeveler_Go/internal/domain"
	"github.com/osse101/SoloLeveler_Go/internal/mirror"
)

// Countdown renders the reset timer
func Countdown(v countdown.View) Element {
	e := Element{Kind: KindText, ID: "countdown", Text: v.Text, Detail: "until reset"}
	if v.Warning {
		e.Style = StyleWarning
	}
	return e
}

// Screen renders every region the screen displays
func Screen(screen domain.Screen, snap mirror.Snapshot) []Region {
	var regions []Region
	for _, kind := range screen.Slices() {
		r := Slice(kind, screen, snap)
		r.Status = snap.Slices[kind].Status
		regions = append(regions, r)
	}
	return regions
}

// Slice renders one slice as it appears on screen
func Slice(kind domain.SliceKind, screen domain.Screen, snap mirror.Snapshot) Region {
	switch kind {
	case domain.SlicePlayer:
		if screen != domain.ScreenStatus {
			return summary(snap.Player)
		}
		return Player(snap.Player)
	case domain.SliceTasks:
		return Tasks(snap.Tasks)
	case domain.SliceQuests:
		return Quests(snap.Quests)
	case domain.SlicePersonalQuests:
		return PersonalQuests(snap.PersonalQuests, snap.Loaded(kind))
	case domain.SliceInventory:
		return Inventory(snap.Inventory, snap.Loaded(kind))
	case domain.SliceShop:
		return Shop(snap.Shop, snap.Loaded(kind), snap.Player)
	case domain.SliceAchievements:
		return Achievements(snap.Achievements, snap.Loaded(kind))
	case domain.SliceLeaderboard:
		return Leaderboard(snap.Leaderboard)
	}
	return Region{Slice: kind}
}

// summary is the compact player header shown beside other screens
func summary(p *domain.PlayerProfile) Region {
	if p == nil {
		return notLoaded(domain.SlicePlayer, "Player")
	}
	return Region{
		Slice: domain.SlicePlayer,
		Title: "Player",
		Elements: []Element{
			{Kind: KindText, ID: "level", Text: "Level " + Number(p.Level)},
			{Kind: KindProgress, ID: "xp", Text: "XP", Value: p.LevelProgress()},
			{Kind: KindBadge, ID: "rank", Text: "Rank " + string(p.Rank), Style: StyleHighlight},
			{Kind: KindStat, ID: "coins", Text: "Coins", Detail: Number(p.Coins)},
		},
	}
}
