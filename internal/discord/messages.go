package discord

// Friendly message constants for Discord responses
const (
	// Economy
	MsgInsufficientCoins = "⚠️ **Not Enough Coins!**\nYou can't afford that item yet."

	// Items & Inventory
	MsgItemNotFound = "❓ **Item Not Found**\nMaybe check the spelling?"
	MsgTaskNotFound = "❓ **Task Not Found**\nPick a task from the list."

	// Achievements
	MsgNotClaimable = "🔒 **Not Claimable**\nUnlock the achievement first, or it was already claimed."

	// Confirmation
	MsgCancelled      = "🛑 **Cancelled**\nNothing was changed."
	MsgConfirmExpired = "⌛ This confirmation is no longer active."

	// Transport
	MsgServerUnreachable = "📡 **Server Unreachable**\nThe Solo Leveler server did not answer. Try again in a moment."

	MsgInvalidInput = "✏️ **Invalid Input**"
	MsgGenericError = "❌ Something went wrong."
)

// Embed colors
const (
	ColorPlayer      = 0x3498db // Blue
	ColorTasks       = 0x2ecc71 // Green
	ColorQuests      = 0x9b59b6 // Purple
	ColorInventory   = 0xe67e22 // Orange
	ColorShop        = 0xf1c40f // Gold
	ColorAchievement = 0xe91e63 // Pink
	ColorLeaderboard = 0x1abc9c // Teal
	ColorSuccess     = 0x2ecc71
	ColorError       = 0xe74c3c
	ColorInfo        = 0x95a5a6
	ColorWarning     = 0xf39c12
)

// Footer constants for standardized embed footers.
const (
	FooterSoloLeveler = "Solo Leveler"
	FooterCountdown   = "Daily reset in %s"
)
