package domain

// LeaderboardEntry is one ranked player
type LeaderboardEntry struct {
	Position        int    `json:"position"`
	Name            string `json:"name"`
	Level           int    `json:"level"`
	Class           string `json:"class"`
	Rank            Rank   `json:"rank"`
	TotalExperience int    `json:"total_experience"`
	MaxStreak       int    `json:"max_streak"`
}

// Leaderboard is the payload of GET /api/leaderboard. Players arrive
// already ordered by the server.
type Leaderboard struct {
	CurrentPlayerPosition int                `json:"current_player_position"`
	TotalPlayers          int                `json:"total_players"`
	Players               []LeaderboardEntry `json:"players"`
}
