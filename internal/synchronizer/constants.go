package synchronizer

// Action names carried by outcomes
const (
	ActionLoad                  = "load"
	ActionCompleteTask          = "complete_task"
	ActionCompleteQuest         = "complete_quest"
	ActionAddPersonalQuest      = "add_personal_quest"
	ActionCompletePersonalQuest = "complete_personal_quest"
	ActionDeletePersonalQuest   = "delete_personal_quest"
	ActionAllocateStat          = "allocate_stat"
	ActionBuyItem               = "buy_item"
	ActionUseItem               = "use_item"
	ActionClaimAchievement      = "claim_achievement"
	ActionLevelGlow             = "level_glow"
)

// Notification prefixes that tell a network failure from a refusal
const (
	MsgPrefixTransport   = "Could not reach server: "
	MsgPrefixApplication = "Server rejected the request: "
)

// Success messages
const (
	MsgTaskCompleted          = "Task completed!"
	MsgTaskCompletedFormat    = "Task completed: %s!"
	MsgQuestCompleted         = "Quest completed!"
	MsgRewardsFormat          = "%s +%d XP, +%d coins"
	MsgPersonalQuestAdded     = "Personal quest added!"
	MsgPersonalQuestDeleted   = "Personal quest deleted."
	MsgDeleteCancelled        = "Deletion cancelled."
	MsgStatAllocatedFormat    = "+1 %s"
	MsgItemBoughtFormat       = "Purchased %s!"
	MsgItemUsedFormat         = "Used %s!"
	MsgAchievementClaimed     = "Achievement claimed!"
	MsgCoinsAwardedFormat     = "%s +%d coins"
	MsgConfirmDeleteFormat    = "Delete personal quest %q? This cannot be undone."
	MsgConfirmDeleteUnknownID = "Delete personal quest #%d? This cannot be undone."
)

// Log messages
const (
	LogMsgSliceLoadFailed   = "Failed to load slice"
	LogMsgActionFailed      = "Action failed"
	LogMsgPublishFailed     = "Failed to publish event"
	LogMsgConfirmFailed     = "Confirmation prompt failed"
	LogMsgRankChanged       = "Rank changed"
	LogMsgReloadAfterAction = "Reloading slices after action"
)
