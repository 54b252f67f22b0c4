package client

// API paths
const (
	PathPlayer                = "/api/player"
	PathDailyTasks            = "/api/daily-tasks"
	PathInventory             = "/api/inventory"
	PathQuests                = "/api/quests"
	PathPersonalQuests        = "/api/personal-quests"
	PathShop                  = "/api/shop"
	PathAchievements          = "/api/achievements"
	PathLeaderboard           = "/api/leaderboard"
	PathCompleteTask          = "/api/complete-task"
	PathCompleteQuest         = "/api/complete-quest"
	PathAddPersonalQuest      = "/api/add-personal-quest"
	PathCompletePersonalQuest = "/api/complete-personal-quest"
	PathDeletePersonalQuest   = "/api/delete-personal-quest"
	PathAllocateStat          = "/api/allocate-stat"
	PathBuyItem               = "/api/buy-item"
	PathUseItem               = "/api/use-item"
	PathClaimAchievement      = "/api/claim-achievement"
)

// Headers
const (
	HeaderContentType = "Content-Type"
	HeaderAPIKey      = "X-API-Key"
	HeaderRequestID   = "X-Request-ID"
	ContentTypeJSON   = "application/json"
)

// Request outcome labels for metrics
const (
	outcomeOK          = "ok"
	outcomeTransport   = "transport_error"
	outcomeApplication = "application_error"
)
