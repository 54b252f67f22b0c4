package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/SoloLeveler_Go/internal/domain"
	"github.com/osse101/SoloLeveler_Go/internal/view"
)

// Command names that take autocompleted options
const (
	cmdCompleteTask          = "complete-task"
	cmdCompleteQuest         = "complete-quest"
	cmdAddPersonalQuest      = "add-quest"
	cmdCompletePersonalQuest = "complete-personal-quest"
	cmdDeletePersonalQuest   = "delete-personal-quest"
	cmdAllocate              = "allocate"
	cmdBuy                   = "buy"
	cmdUse                   = "use"
	cmdClaim                 = "claim"
)

var actionTitles = map[view.ActionKind]string{
	view.ActionCompleteTask:          "✅ Daily Quest",
	view.ActionCompleteQuest:         "🗡️ Quest",
	view.ActionAddPersonalQuest:      "📝 Personal Quest",
	view.ActionCompletePersonalQuest: "📝 Personal Quest",
	view.ActionDeletePersonalQuest:   "🗑️ Personal Quest",
	view.ActionAllocateStat:          "💪 Stats",
	view.ActionBuyItem:               "💰 Shop",
	view.ActionUseItem:               "🎒 Inventory",
	view.ActionClaimAchievement:      "🏆 Achievement",
}

// ActionCommandConfig defines a slash command that performs one action
type ActionCommandConfig struct {
	Name        string
	Description string
	Kind        view.ActionKind
	Options     []*discordgo.ApplicationCommandOption
	// Build turns the command's options into an action plus free-form input
	Build func(opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (view.Action, []string)
}

// CreateActionCommand returns a standardized action command and handler
func CreateActionCommand(cfg ActionCommandConfig) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        cfg.Name,
		Description: cfg.Description,
		Options:     cfg.Options,
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, b *Bot) {
		if !deferResponse(s, i) {
			return
		}
		ctx, cancel := requestContext(i)
		defer cancel()

		action, extra := cfg.Build(optionMap(i))
		action.Kind = cfg.Kind
		outcome := b.perform(ctx, s, i, action, extra...)
		respondOutcome(s, i, actionTitles[cfg.Kind], outcome)
	}

	return cmd, handler
}

// perform runs an action with a confirmer bound to this interaction
func (b *Bot) perform(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, a view.Action, extra ...string) domain.Outcome {
	return b.Sync.Perform(ctx, a, b.confirmerFor(s, i), extra...)
}

func intOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) int {
	if opt, ok := opts[name]; ok {
		return int(opt.IntValue())
	}
	return -1
}

func stringOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	if opt, ok := opts[name]; ok {
		return opt.StringValue()
	}
	return ""
}

func titleChoices(values []string) []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(values))
	for _, v := range values {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: view.Title(v), Value: v})
	}
	return choices
}

// CompleteTaskCommand completes a daily task
func CompleteTaskCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return CreateActionCommand(ActionCommandConfig{
		Name:        cmdCompleteTask,
		Description: "Complete one of today's tasks",
		Kind:        view.ActionCompleteTask,
		Options: []*discordgo.ApplicationCommandOption{{
			Type:         discordgo.ApplicationCommandOptionInteger,
			Name:         "task",
			Description:  "Task to complete",
			Required:     true,
			Autocomplete: true,
		}},
		Build: func(opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (view.Action, []string) {
			return view.Action{Index: intOption(opts, "task")}, nil
		},
	})
}

// CompleteQuestCommand completes a category quest
func CompleteQuestCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return CreateActionCommand(ActionCommandConfig{
		Name:        cmdCompleteQuest,
		Description: "Complete a quest category",
		Kind:        view.ActionCompleteQuest,
		Options: []*discordgo.ApplicationCommandOption{{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "category",
			Description: "Quest category",
			Required:    true,
			Choices:     titleChoices(domain.QuestCategoryOrder),
		}},
		Build: func(opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (view.Action, []string) {
			return view.Action{Arg: stringOption(opts, "category")}, nil
		},
	})
}

// AddPersonalQuestCommand creates a personal quest
func AddPersonalQuestCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return CreateActionCommand(ActionCommandConfig{
		Name:        cmdAddPersonalQuest,
		Description: "Add a personal quest",
		Kind:        view.ActionAddPersonalQuest,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "name",
				Description: "Quest name",
				Required:    true,
				MaxLength:   domain.PersonalQuestNameMaxLen,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "description",
				Description: "What the quest involves",
				Required:    false,
				MaxLength:   domain.PersonalQuestDescriptionMaxLen,
			},
		},
		Build: func(opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (view.Action, []string) {
			return view.Action{}, []string{stringOption(opts, "name"), stringOption(opts, "description")}
		},
	})
}

// CompletePersonalQuestCommand completes a personal quest
func CompletePersonalQuestCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return CreateActionCommand(ActionCommandConfig{
		Name:        cmdCompletePersonalQuest,
		Description: "Complete one of your personal quests",
		Kind:        view.ActionCompletePersonalQuest,
		Options: []*discordgo.ApplicationCommandOption{{
			Type:         discordgo.ApplicationCommandOptionInteger,
			Name:         "quest",
			Description:  "Personal quest",
			Required:     true,
			Autocomplete: true,
		}},
		Build: func(opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (view.Action, []string) {
			return view.Action{Index: intOption(opts, "quest")}, nil
		},
	})
}

// DeletePersonalQuestCommand deletes a personal quest after a button confirmation
func DeletePersonalQuestCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return CreateActionCommand(ActionCommandConfig{
		Name:        cmdDeletePersonalQuest,
		Description: "Delete one of your personal quests",
		Kind:        view.ActionDeletePersonalQuest,
		Options: []*discordgo.ApplicationCommandOption{{
			Type:         discordgo.ApplicationCommandOptionInteger,
			Name:         "quest",
			Description:  "Personal quest",
			Required:     true,
			Autocomplete: true,
		}},
		Build: func(opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (view.Action, []string) {
			return view.Action{Index: intOption(opts, "quest"), Confirm: true}, nil
		},
	})
}

// AllocateStatCommand spends one available stat point
func AllocateStatCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return CreateActionCommand(ActionCommandConfig{
		Name:        cmdAllocate,
		Description: "Spend a stat point",
		Kind:        view.ActionAllocateStat,
		Options: []*discordgo.ApplicationCommandOption{{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "stat",
			Description: "Stat to raise",
			Required:    true,
			Choices:     titleChoices(domain.StatNames),
		}},
		Build: func(opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (view.Action, []string) {
			return view.Action{Arg: stringOption(opts, "stat")}, nil
		},
	})
}

// BuyCommand buys a shop item
func BuyCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return CreateActionCommand(ActionCommandConfig{
		Name:        cmdBuy,
		Description: "Buy an item from the shop",
		Kind:        view.ActionBuyItem,
		Options: []*discordgo.ApplicationCommandOption{{
			Type:         discordgo.ApplicationCommandOptionString,
			Name:         "item",
			Description:  "Item to buy",
			Required:     true,
			Autocomplete: true,
		}},
		Build: func(opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (view.Action, []string) {
			return view.Action{Arg: stringOption(opts, "item")}, nil
		},
	})
}

// UseCommand uses an inventory item
func UseCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return CreateActionCommand(ActionCommandConfig{
		Name:        cmdUse,
		Description: "Use an item from your inventory",
		Kind:        view.ActionUseItem,
		Options: []*discordgo.ApplicationCommandOption{{
			Type:         discordgo.ApplicationCommandOptionString,
			Name:         "item",
			Description:  "Item to use",
			Required:     true,
			Autocomplete: true,
		}},
		Build: func(opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (view.Action, []string) {
			return view.Action{Arg: stringOption(opts, "item")}, nil
		},
	})
}

// ClaimCommand claims an unlocked achievement
func ClaimCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return CreateActionCommand(ActionCommandConfig{
		Name:        cmdClaim,
		Description: "Claim an achievement reward",
		Kind:        view.ActionClaimAchievement,
		Options: []*discordgo.ApplicationCommandOption{{
			Type:         discordgo.ApplicationCommandOptionInteger,
			Name:         "achievement",
			Description:  "Achievement to claim",
			Required:     true,
			Autocomplete: true,
		}},
		Build: func(opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (view.Action, []string) {
			return view.Action{Index: intOption(opts, "achievement")}, nil
		},
	})
}
