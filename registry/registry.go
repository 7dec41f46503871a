package registry

import (
	"sort"
	"sync"

	"github.com/botsportsempire/gridiron/core"
)

// Profile is the directory's lightweight view of a bot. Mood state is
// deliberately absent; storage stays the single source of truth.
type Profile struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	DisplayName string           `json:"display_name"`
	Personality core.Personality `json:"personality"`
	IsActive    bool             `json:"is_active"`
}

var (
	profiles = make(map[string]Profile)
	mu       sync.RWMutex
)

// RegisterBot adds or refreshes a bot's directory entry.
func RegisterBot(bot *core.Bot) {
	mu.Lock()
	defer mu.Unlock()
	profiles[bot.ID] = Profile{
		ID:          bot.ID,
		Name:        bot.Name,
		DisplayName: bot.DisplayName,
		Personality: bot.Personality,
		IsActive:    bot.IsActive,
	}
}

// GetProfile looks up a directory entry by bot ID.
func GetProfile(id string) (Profile, bool) {
	mu.RLock()
	defer mu.RUnlock()
	p, ok := profiles[id]
	return p, ok
}

// AllProfiles returns directory entries sorted by name.
func AllProfiles() []Profile {
	mu.RLock()
	defer mu.RUnlock()

	all := make([]Profile, 0, len(profiles))
	for _, p := range profiles {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}

// Count returns the number of registered bots.
func Count() int {
	mu.RLock()
	defer mu.RUnlock()
	return len(profiles)
}

// Warm seeds the directory from persisted bots at startup.
func Warm(bots []*core.Bot) {
	for _, b := range bots {
		RegisterBot(b)
	}
}

// Reset clears the directory. Tests only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	profiles = make(map[string]Profile)
}
