package domain

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Fixed quest categories
const (
	QuestStrengthTraining  = "strength_training"
	QuestIntelligence      = "intelligence"
	QuestDiscipline        = "discipline"
	QuestSpiritualTraining = "spiritual_training"
	QuestSecret            = "secret_quests"
)

// QuestCategoryOrder is the display order of the known categories
var QuestCategoryOrder = []string{
	QuestStrengthTraining,
	QuestIntelligence,
	QuestDiscipline,
	QuestSpiritualTraining,
	QuestSecret,
}

const personalQuestCountKey = "personal_quests"

// QuestProgress is the state of one category quest
type QuestProgress struct {
	Progress  int  `json:"progress"`
	Max       int  `json:"max"`
	Completed bool `json:"completed"`
}

// Quests is the payload of GET /api/quests: a map keyed by category plus
// the number of personal quests.
type Quests struct {
	Categories         map[string]QuestProgress
	PersonalQuestCount int
}

// UnmarshalJSON splits the flat category map from the personal_quests counter.
func (q *Quests) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	q.Categories = make(map[string]QuestProgress, len(raw))
	q.PersonalQuestCount = 0
	for key, value := range raw {
		if key == personalQuestCountKey {
			if err := json.Unmarshal(value, &q.PersonalQuestCount); err != nil {
				return fmt.Errorf("personal_quests: %w", err)
			}
			continue
		}
		var p QuestProgress
		if err := json.Unmarshal(value, &p); err != nil {
			return fmt.Errorf("quest %q: %w", key, err)
		}
		q.Categories[key] = p
	}
	return nil
}

// MarshalJSON writes the same flat shape the server sends.
func (q Quests) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(q.Categories)+1)
	for k, v := range q.Categories {
		out[k] = v
	}
	out[personalQuestCountKey] = q.PersonalQuestCount
	return json.Marshal(out)
}

// OrderedCategories returns the known categories first in their fixed order,
// then any other category alphabetically.
func (q Quests) OrderedCategories() []string {
	known := make(map[string]bool, len(QuestCategoryOrder))
	names := make([]string, 0, len(q.Categories))
	for _, c := range QuestCategoryOrder {
		known[c] = true
		if _, ok := q.Categories[c]; ok {
			names = append(names, c)
		}
	}

	var extra []string
	for c := range q.Categories {
		if !known[c] {
			extra = append(extra, c)
		}
	}
	sort.Strings(extra)
	return append(names, extra...)
}

// PersonalQuest is a user-authored quest
type PersonalQuest struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	RewardXP    int    `json:"reward_xp"`
	RewardCoins int    `json:"reward_coins"`
	CreatedDate string `json:"created_date"`
	Completed   bool   `json:"completed"`
}

// Limits for personal quest input
const (
	PersonalQuestNameMaxLen        = 100
	PersonalQuestDescriptionMaxLen = 500
)

// NewPersonalQuest is the body of POST /api/add-personal-quest
type NewPersonalQuest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
}
