package domain

// DailyTask is one entry of the daily list. The server identifies it by
// its position in that list.
type DailyTask struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Progress   int    `json:"progress"`
	Max        int    `json:"max"`
	Completed  bool   `json:"completed"`
	XPReward   int    `json:"xp_reward"`
	CoinReward int    `json:"coin_reward"`
}

// DailyTasks is the payload of GET /api/daily-tasks
type DailyTasks struct {
	Tasks  []DailyTask `json:"tasks"`
	Streak int         `json:"streak"`

	// TimeRemaining is the server's own countdown string, display only.
	TimeRemaining string `json:"time_remaining,omitempty"`
}

// CompletedCount returns how many tasks are done
func (d DailyTasks) CompletedCount() int {
	n := 0
	for _, t := range d.Tasks {
		if t.Completed {
			n++
		}
	}
	return n
}
