package view

import (
	"fmt"
	"strconv"

	"github.com/osse101/SoloLeveler_Go/internal/domain"
)

// Empty-state texts
const (
	EmptyTasks          = "No daily tasks today."
	EmptyInventory      = "Your inventory is empty."
	EmptyQuests         = "No quests available."
	EmptyPersonalQuests = "No personal quests yet. Add one to get started."
	EmptyShop           = "The shop has nothing for sale."
	EmptyAchievements   = "No achievements yet."
	EmptyLeaderboard    = "No players on the leaderboard."
	NotLoaded           = "Loading..."
)

const maxRankText = "MAX RANK"

func empty(text string) Element {
	return Element{Kind: KindEmpty, Text: text, Style: StyleMuted}
}

func notLoaded(kind domain.SliceKind, title string) Region {
	return Region{Slice: kind, Title: title, Elements: []Element{empty(NotLoaded)}}
}

// Player renders the status screen
func Player(p *domain.PlayerProfile) Region {
	if p == nil {
		return notLoaded(domain.SlicePlayer, "Status")
	}

	name := p.Name
	if name == "" {
		name = "Player"
	}

	rank := Element{Kind: KindBadge, ID: "rank", Text: "Rank " + string(p.Rank), Style: StyleHighlight}
	if p.IsMaxRank() {
		rank.Detail = maxRankText
	} else {
		rank.Detail = fmt.Sprintf("%.1f points to next rank", *p.PointsToNextRank)
	}

	elems := []Element{
		{Kind: KindHeading, ID: "name", Text: name, Detail: fmt.Sprintf("%s · %s", p.Class, p.Title)},
		{Kind: KindText, ID: "level", Text: fmt.Sprintf("Level %d", p.Level)},
		{
			Kind:   KindProgress,
			ID:     "xp",
			Text:   "XP",
			Detail: fmt.Sprintf("%s / %s", Number(p.CurrentXP), Number(p.XPToNextLevel)),
			Value:  p.LevelProgress(),
		},
		rank,
		{Kind: KindStat, ID: "coins", Text: "Coins", Detail: Number(p.Coins)},
		{Kind: KindStat, ID: "energy", Text: "Energy", Detail: strconv.Itoa(p.Energy)},
		{Kind: KindStat, ID: "total_experience", Text: "Total XP", Detail: Number(p.TotalExperience)},
		{Kind: KindStat, ID: "max_streak", Text: "Best Streak", Detail: strconv.Itoa(p.MaxStreak)},
		{Kind: KindStat, ID: "physical_dr", Text: "Physical DR", Detail: fmt.Sprintf("%.1f%%", p.PhysicalDamageReduction)},
		{Kind: KindStat, ID: "magical_dr", Text: "Magical DR", Detail: fmt.Sprintf("%.1f%%", p.MagicalDamageReduction)},
	}

	points := p.Stats.AvailablePoints
	stats := Element{
		Kind:   KindHeading,
		ID:     "stats",
		Text:   "Stats",
		Detail: fmt.Sprintf("%d points available", points),
	}
	for _, name := range domain.StatNames {
		value, _ := p.Stats.Value(name)
		stat := Element{Kind: KindStat, ID: "stat-" + name, Text: Title(name), Detail: fmt.Sprintf("%.0f", value)}
		if points > 0 {
			stat.Actions = []Action{{Kind: ActionAllocateStat, Label: "+1", Arg: name}}
		}
		stats.Children = append(stats.Children, stat)
	}
	elems = append(elems, stats)

	return Region{Slice: domain.SlicePlayer, Title: "Status", Elements: elems}
}

// Tasks renders the daily task list
func Tasks(t *domain.DailyTasks) Region {
	if t == nil {
		return notLoaded(domain.SliceTasks, "Daily Quest")
	}

	elems := []Element{
		{Kind: KindStat, ID: "streak", Text: "Streak", Detail: strconv.Itoa(t.Streak), Style: StyleHighlight},
		{Kind: KindText, ID: "completed", Text: fmt.Sprintf("%d / %d completed", t.CompletedCount(), len(t.Tasks))},
	}
	if t.TimeRemaining != "" {
		elems = append(elems, Element{Kind: KindText, ID: "server_time_remaining", Text: "Server reset in " + t.TimeRemaining, Style: StyleMuted})
	}

	if len(t.Tasks) == 0 {
		elems = append(elems, empty(EmptyTasks))
		return Region{Slice: domain.SliceTasks, Title: "Daily Quest", Elements: elems}
	}

	for i, task := range t.Tasks {
		item := Element{
			Kind:   KindItem,
			ID:     taskID(i),
			Text:   task.Name,
			Detail: fmt.Sprintf("%d/%d · +%d XP · +%d coins", task.Progress, task.Max, task.XPReward, task.CoinReward),
			Value:  ratio(task.Progress, task.Max),
		}
		if task.Completed {
			item.Style = StyleSuccess
		} else {
			item.Actions = []Action{{Kind: ActionCompleteTask, Label: "Complete", Index: i}}
		}
		elems = append(elems, item)
	}
	return Region{Slice: domain.SliceTasks, Title: "Daily Quest", Elements: elems}
}

func taskID(i int) string {
	return "task-" + strconv.Itoa(i)
}

// Quests renders the category quests
func Quests(q *domain.Quests) Region {
	if q == nil {
		return notLoaded(domain.SliceQuests, "Quests")
	}

	categories := q.OrderedCategories()
	if len(categories) == 0 {
		return Region{Slice: domain.SliceQuests, Title: "Quests", Elements: []Element{empty(EmptyQuests)}}
	}

	elems := make([]Element, 0, len(categories)+1)
	for _, name := range categories {
		progress := q.Categories[name]
		item := Element{
			Kind:   KindItem,
			ID:     "quest-" + name,
			Text:   Title(name),
			Detail: fmt.Sprintf("%d/%d", progress.Progress, progress.Max),
			Value:  ratio(progress.Progress, progress.Max),
		}
		if progress.Completed {
			item.Style = StyleSuccess
		} else {
			item.Actions = []Action{{Kind: ActionCompleteQuest, Label: "Complete", Arg: name}}
		}
		elems = append(elems, item)
	}
	elems = append(elems, Element{Kind: KindText, ID: "personal_count", Text: fmt.Sprintf("%d personal quests", q.PersonalQuestCount), Style: StyleMuted})

	return Region{Slice: domain.SliceQuests, Title: "Quests", Elements: elems}
}

// PersonalQuests renders user-authored quests with their complete and delete affordances
func PersonalQuests(quests []domain.PersonalQuest, loaded bool) Region {
	if !loaded {
		return notLoaded(domain.SlicePersonalQuests, "Personal Quests")
	}

	elems := []Element{{
		Kind:    KindHeading,
		ID:      "personal_add",
		Text:    "Personal Quests",
		Actions: []Action{{Kind: ActionAddPersonalQuest, Label: "Add", Arg: "new"}},
	}}
	if len(quests) == 0 {
		elems = append(elems, empty(EmptyPersonalQuests))
		return Region{Slice: domain.SlicePersonalQuests, Title: "Personal Quests", Elements: elems}
	}

	for _, quest := range quests {
		item := Element{
			Kind:   KindItem,
			ID:     "personal-" + strconv.Itoa(quest.ID),
			Text:   quest.Name,
			Detail: fmt.Sprintf("%s · +%d XP · +%d coins", quest.Description, quest.RewardXP, quest.RewardCoins),
		}
		if quest.Completed {
			item.Style = StyleSuccess
		} else {
			item.Actions = append(item.Actions, Action{Kind: ActionCompletePersonalQuest, Label: "Complete", Index: quest.ID})
		}
		item.Actions = append(item.Actions, Action{Kind: ActionDeletePersonalQuest, Label: "Delete", Index: quest.ID, Confirm: true})
		elems = append(elems, item)
	}
	return Region{Slice: domain.SlicePersonalQuests, Title: "Personal Quests", Elements: elems}
}

// Inventory renders owned items. An empty inventory renders a single empty-state element.
func Inventory(items []domain.InventoryItem, loaded bool) Region {
	if !loaded {
		return notLoaded(domain.SliceInventory, "Inventory")
	}
	if len(items) == 0 {
		return Region{Slice: domain.SliceInventory, Title: "Inventory", Elements: []Element{empty(EmptyInventory)}}
	}

	elems := make([]Element, 0, len(items))
	for _, item := range items {
		e := Element{
			Kind:   KindItem,
			ID:     "inv-" + item.Name,
			Text:   fmt.Sprintf("%s x%d", item.Name, item.Quantity),
			Detail: fmt.Sprintf("%s · %s", Title(string(item.Type)), item.Effect),
		}
		if item.Type.Usable() && item.Quantity > 0 {
			e.Actions = []Action{{Kind: ActionUseItem, Label: "Use", Arg: item.Name}}
		}
		elems = append(elems, e)
	}
	return Region{Slice: domain.SliceInventory, Title: "Inventory", Elements: elems}
}

// Shop renders the catalog. The buy affordance is disabled when the balance
// is known and does not cover the price; a nil player leaves every buy enabled.
func Shop(items []domain.ShopItem, loaded bool, player *domain.PlayerProfile) Region {
	if !loaded {
		return notLoaded(domain.SliceShop, "Shop")
	}

	var elems []Element
	if player != nil {
		elems = append(elems, Element{Kind: KindStat, ID: "balance", Text: "Coins", Detail: Number(player.Coins)})
	}
	if len(items) == 0 {
		elems = append(elems, empty(EmptyShop))
		return Region{Slice: domain.SliceShop, Title: "Shop", Elements: elems}
	}

	for _, item := range items {
		buy := Action{Kind: ActionBuyItem, Label: "Buy", Arg: item.Name}
		e := Element{
			Kind:   KindItem,
			ID:     "shop-" + item.Name,
			Text:   item.Name,
			Detail: fmt.Sprintf("%s coins · %s", Number(item.Price), item.Effect),
		}
		if player != nil && !item.Affordable(player.Coins) {
			buy.Disabled = true
			e.Style = StyleMuted
		}
		e.Actions = []Action{buy}
		elems = append(elems, e)
	}
	return Region{Slice: domain.SliceShop, Title: "Shop", Elements: elems}
}

// Achievements renders achievements; only claimable ones carry a claim affordance
func Achievements(achievements []domain.Achievement, loaded bool) Region {
	if !loaded {
		return notLoaded(domain.SliceAchievements, "Achievements")
	}
	if len(achievements) == 0 {
		return Region{Slice: domain.SliceAchievements, Title: "Achievements", Elements: []Element{empty(EmptyAchievements)}}
	}

	elems := make([]Element, 0, len(achievements))
	for i, a := range achievements {
		e := Element{
			Kind:   KindItem,
			ID:     "achievement-" + strconv.Itoa(i),
			Text:   a.Name,
			Detail: fmt.Sprintf("%s · %s coins", a.Description, Number(a.RewardCoins)),
		}
		switch {
		case a.Claimable():
			e.Style = StyleHighlight
			e.Actions = []Action{{Kind: ActionClaimAchievement, Label: "Claim", Index: i}}
		case a.Claimed:
			e.Style = StyleSuccess
			e.Children = []Element{{Kind: KindBadge, Text: "Claimed"}}
		default:
			e.Style = StyleMuted
			e.Children = []Element{{Kind: KindBadge, Text: "Locked"}}
		}
		elems = append(elems, e)
	}
	return Region{Slice: domain.SliceAchievements, Title: "Achievements", Elements: elems}
}

// Leaderboard renders ranked players in server order
func Leaderboard(l *domain.Leaderboard) Region {
	if l == nil {
		return notLoaded(domain.SliceLeaderboard, "Leaderboard")
	}

	elems := []Element{{
		Kind: KindText,
		ID:   "position",
		Text: fmt.Sprintf("You are #%d of %d", l.CurrentPlayerPosition, l.TotalPlayers),
	}}
	if len(l.Players) == 0 {
		elems = append(elems, empty(EmptyLeaderboard))
		return Region{Slice: domain.SliceLeaderboard, Title: "Leaderboard", Elements: elems}
	}

	for _, p := range l.Players {
		e := Element{
			Kind:   KindItem,
			ID:     "leader-" + strconv.Itoa(p.Position),
			Text:   fmt.Sprintf("#%d %s", p.Position, p.Name),
			Detail: fmt.Sprintf("Lv %d %s · Rank %s · %s XP · streak %d", p.Level, p.Class, p.Rank, Number(p.TotalExperience), p.MaxStreak),
		}
		if p.Position == l.CurrentPlayerPosition {
			e.Style = StyleHighlight
		}
		elems = append(elems, e)
	}
	return Region{Slice: domain.SliceLeaderboard, Title: "Leaderboard", Elements: elems}
}
