package domain

// Achievement is identified by its index in the achievements list
type Achievement struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	RewardCoins int    `json:"reward_coins"`
	Unlocked    bool   `json:"unlocked"`
	Claimed     bool   `json:"claimed"`
}

// Claimable reports whether the claim action is available
func (a Achievement) Claimable() bool {
	return a.Unlocked && !a.Claimed
}
