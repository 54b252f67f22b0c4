package mirror

import (
	"sync"
	"time"

	"github.com/osse101/SoloLeveler_Go/internal/domain"
)

// SliceInfo is the load state of one slice
type SliceInfo struct {
	Kind       domain.SliceKind   `json:"kind"`
	Status     domain.SliceStatus `json:"status"`
	Error      string             `json:"error,omitempty"`
	LoadedOnce bool               `json:"loaded_once"`
	UpdatedAt  time.Time          `json:"updated_at,omitempty"`
}

// Snapshot is a point-in-time copy of the mirror. Slices are replaced
// wholesale on every load, so the values it references are never mutated.
type Snapshot struct {
	Player         *domain.PlayerProfile
	Tasks          *domain.DailyTasks
	Inventory      []domain.InventoryItem
	Quests         *domain.Quests
	PersonalQuests []domain.PersonalQuest
	Shop           []domain.ShopItem
	Achievements   []domain.Achievement
	Leaderboard    *domain.Leaderboard
	Slices         map[domain.SliceKind]SliceInfo
}

// Loaded reports whether kind has data to render
func (s Snapshot) Loaded(kind domain.SliceKind) bool {
	return s.Slices[kind].LoadedOnce
}

// Mirror holds the client's copy of server state. It is never authoritative.
type Mirror struct {
	mu sync.RWMutex

	player         *domain.PlayerProfile
	tasks          *domain.DailyTasks
	inventory      []domain.InventoryItem
	quests         *domain.Quests
	personalQuests []domain.PersonalQuest
	shop           []domain.ShopItem
	achievements   []domain.Achievement
	leaderboard    *domain.Leaderboard

	slices map[domain.SliceKind]*SliceInfo

	// gens counts BeginLoad calls per slice; only the newest load may fail it
	gens map[domain.SliceKind]uint64
	now  func() time.Time
}

// New creates an empty mirror with every slice Unloaded
func New() *Mirror {
	m := &Mirror{
		slices: make(map[domain.SliceKind]*SliceInfo, len(domain.AllSlices)),
		gens:   make(map[domain.SliceKind]uint64, len(domain.AllSlices)),
		now:    time.Now,
	}
	for _, kind := range domain.AllSlices {
		m.slices[kind] = &SliceInfo{Kind: kind, Status: domain.StatusUnloaded}
	}
	return m
}

// BeginLoad moves kind into Loading and returns the load's generation.
// Data already held stays visible.
func (m *Mirror) BeginLoad(kind domain.SliceKind) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	info, ok := m.slices[kind]
	if !ok {
		return 0
	}
	m.gens[kind]++
	info.Status = domain.StatusLoading
	return m.gens[kind]
}

// FailLoad moves kind into LoadError and keeps the previous data. A failure
// from a load superseded by a later BeginLoad is ignored; it reports whether
// the status changed.
func (m *Mirror) FailLoad(kind domain.SliceKind, gen uint64, err error) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	info, ok := m.slices[kind]
	if !ok || gen != m.gens[kind] {
		return false
	}
	info.Status = domain.StatusLoadError
	if err != nil {
		info.Error = err.Error()
	}
	return true
}

// markLoaded must be called with mu held
func (m *Mirror) markLoaded(kind domain.SliceKind) {
	info := m.slices[kind]
	info.Status = domain.StatusLoaded
	info.Error = ""
	info.LoadedOnce = true
	info.UpdatedAt = m.now()
}

// SetPlayer replaces the player slice
func (m *Mirror) SetPlayer(p *domain.PlayerProfile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.player = p
	m.markLoaded(domain.SlicePlayer)
}

// SetTasks replaces the daily task slice
func (m *Mirror) SetTasks(t *domain.DailyTasks) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks = t
	m.markLoaded(domain.SliceTasks)
}

// SetInventory replaces the inventory slice
func (m *Mirror) SetInventory(items []domain.InventoryItem) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inventory = items
	m.markLoaded(domain.SliceInventory)
}

// SetQuests replaces the category quest slice
func (m *Mirror) SetQuests(q *domain.Quests) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quests = q
	m.markLoaded(domain.SliceQuests)
}

// SetPersonalQuests replaces the personal quest slice
func (m *Mirror) SetPersonalQuests(quests []domain.PersonalQuest) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.personalQuests = quests
	m.markLoaded(domain.SlicePersonalQuests)
}

// SetShop replaces the shop catalog slice
func (m *Mirror) SetShop(items []domain.ShopItem) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shop = items
	m.markLoaded(domain.SliceShop)
}

// SetAchievements replaces the achievements slice
func (m *Mirror) SetAchievements(a []domain.Achievement) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.achievements = a
	m.markLoaded(domain.SliceAchievements)
}

// SetLeaderboard replaces the leaderboard slice
func (m *Mirror) SetLeaderboard(l *domain.Leaderboard) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.leaderboard = l
	m.markLoaded(domain.SliceLeaderboard)
}

// Player returns the mirrored profile, or nil before the first load
func (m *Mirror) Player() *domain.PlayerProfile {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.player
}

// Tasks returns the mirrored daily tasks
func (m *Mirror) Tasks() *domain.DailyTasks {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tasks
}

// ShopItem looks up a catalog entry by name
func (m *Mirror) ShopItem(name string) (domain.ShopItem, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, item := range m.shop {
		if item.Name == name {
			return item, true
		}
	}
	return domain.ShopItem{}, false
}

// Achievement returns the achievement at index
func (m *Mirror) Achievement(index int) (domain.Achievement, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if index < 0 || index >= len(m.achievements) {
		return domain.Achievement{}, false
	}
	return m.achievements[index], true
}

// Status returns the load state of kind
func (m *Mirror) Status(kind domain.SliceKind) domain.SliceStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if info, ok := m.slices[kind]; ok {
		return info.Status
	}
	return domain.StatusUnloaded
}

// Slices returns the load state of every slice in AllSlices order
func (m *Mirror) Slices() []SliceInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]SliceInfo, 0, len(domain.AllSlices))
	for _, kind := range domain.AllSlices {
		out = append(out, *m.slices[kind])
	}
	return out
}

// Ready reports whether every eager slice has loaded at least once
func (m *Mirror) Ready() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, kind := range domain.EagerSlices {
		if !m.slices[kind].LoadedOnce {
			return false
		}
	}
	return true
}

// Snapshot copies the current state for rendering
func (m *Mirror) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	infos := make(map[domain.SliceKind]SliceInfo, len(m.slices))
	for kind, info := range m.slices {
		infos[kind] = *info
	}
	return Snapshot{
		Player:         m.player,
		Tasks:          m.tasks,
		Inventory:      m.inventory,
		Quests:         m.quests,
		PersonalQuests: m.personalQuests,
		Shop:           m.shop,
		Achievements:   m.achievements,
		Leaderboard:    m.leaderboard,
		Slices:         infos,
	}
}
