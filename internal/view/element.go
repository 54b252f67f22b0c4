// Package view turns mirror slices into element trees. Renderers are pure:
// the same input always yields the same Region, and nothing here reaches
// the network or the mirror.
package view

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"

	"github.com/osse101/SoloLeveler_Go/internal/domain"
)

// Kind classifies an element
type Kind string

// Element kinds
const (
	KindHeading  Kind = "heading"
	KindText     Kind = "text"
	KindProgress Kind = "progress"
	KindItem     Kind = "item"
	KindStat     Kind = "stat"
	KindBadge    Kind = "badge"
	KindEmpty    Kind = "empty"
)

// Style is a rendering hint
type Style string

// Styles
const (
	StyleNormal    Style = ""
	StyleMuted     Style = "muted"
	StyleSuccess   Style = "success"
	StyleWarning   Style = "warning"
	StyleHighlight Style = "highlight"
)

// ActionKind names the mutation an affordance triggers
type ActionKind string

// Action kinds
const (
	ActionCompleteTask          ActionKind = "complete_task"
	ActionCompleteQuest         ActionKind = "complete_quest"
	ActionAddPersonalQuest      ActionKind = "add_personal_quest"
	ActionCompletePersonalQuest ActionKind = "complete_personal_quest"
	ActionDeletePersonalQuest   ActionKind = "delete_personal_quest"
	ActionAllocateStat          ActionKind = "allocate_stat"
	ActionBuyItem               ActionKind = "buy_item"
	ActionUseItem               ActionKind = "use_item"
	ActionClaimAchievement      ActionKind = "claim_achievement"
)

const actionKeySep = ":"

// Action is an interactive affordance attached to an element.
// Index carries positional or numeric identity, Arg carries a name.
type Action struct {
	Kind     ActionKind `json:"kind"`
	Label    string     `json:"label"`
	Index    int        `json:"index,omitempty"`
	Arg      string     `json:"arg,omitempty"`
	Disabled bool       `json:"disabled,omitempty"`
	Confirm  bool       `json:"confirm,omitempty"`
}

// Key encodes the action as "kind:target" for button ids
func (a Action) Key() string {
	switch a.Kind {
	case ActionCompleteTask, ActionCompletePersonalQuest, ActionDeletePersonalQuest, ActionClaimAchievement:
		return string(a.Kind) + actionKeySep + strconv.Itoa(a.Index)
	}
	return string(a.Kind) + actionKeySep + a.Arg
}

// ParseActionKey reverses Key. Labels are not recoverable.
func ParseActionKey(key string) (Action, error) {
	kind, target, ok := strings.Cut(key, actionKeySep)
	if !ok || target == "" {
		return Action{}, fmt.Errorf("%w: action key %q", domain.ErrInvalidInput, key)
	}

	a := Action{Kind: ActionKind(kind)}
	switch a.Kind {
	case ActionCompleteTask, ActionCompletePersonalQuest, ActionDeletePersonalQuest, ActionClaimAchievement:
		n, err := strconv.Atoi(target)
		if err != nil {
			return Action{}, fmt.Errorf("%w: action key %q: %v", domain.ErrInvalidInput, key, err)
		}
		a.Index = n
	case ActionCompleteQuest, ActionAllocateStat, ActionBuyItem, ActionUseItem, ActionAddPersonalQuest:
		a.Arg = target
	default:
		return Action{}, fmt.Errorf("%w: unknown action %q", domain.ErrInvalidInput, kind)
	}
	a.Confirm = a.Kind == ActionDeletePersonalQuest
	return a, nil
}

// Element is one node of a rendered region
type Element struct {
	Kind     Kind      `json:"kind"`
	ID       string    `json:"id,omitempty"`
	Text     string    `json:"text,omitempty"`
	Detail   string    `json:"detail,omitempty"`
	Value    float64   `json:"value,omitempty"`
	Style    Style     `json:"style,omitempty"`
	Actions  []Action  `json:"actions,omitempty"`
	Children []Element `json:"children,omitempty"`
}

// Region is the rendered form of one slice
type Region struct {
	Slice    domain.SliceKind   `json:"slice"`
	Title    string             `json:"title"`
	Status   domain.SliceStatus `json:"status"`
	Elements []Element          `json:"elements"`
}

// Fingerprint identifies the region's content. Equal regions share a fingerprint.
func (r Region) Fingerprint() uint64 {
	h := fnv.New64a()
	// Region holds only plain data, so encoding cannot fail
	_ = json.NewEncoder(h).Encode(r)
	return h.Sum64()
}

// Actions collects every affordance in the region, depth first
func (r Region) Actions() []Action {
	var out []Action
	var walk func([]Element)
	walk = func(elems []Element) {
		for _, e := range elems {
			out = append(out, e.Actions...)
			walk(e.Children)
		}
	}
	walk(r.Elements)
	return out
}

// Count returns how many elements of kind the region holds, depth first
func (r Region) Count(kind Kind) int {
	n := 0
	var walk func([]Element)
	walk = func(elems []Element) {
		for _, e := range elems {
			if e.Kind == kind {
				n++
			}
			walk(e.Children)
		}
	}
	walk(r.Elements)
	return n
}

// Find returns the element with id
func (r Region) Find(id string) (Element, bool) {
	var found Element
	var ok bool
	var walk func([]Element)
	walk = func(elems []Element) {
		for _, e := range elems {
			if ok {
				return
			}
			if e.ID == id {
				found, ok = e, true
				return
			}
			walk(e.Children)
		}
	}
	walk(r.Elements)
	return found, ok
}
