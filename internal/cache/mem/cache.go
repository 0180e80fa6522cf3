package mem

import (
	"sort"
	"sync"

	"teambalancer/internal/domain"
	"teambalancer/internal/normalize"
)

// Cache keeps the roster in memory keyed by normalized name. It is
// invalidated on every roster mutation and refilled on the next read.
type Cache struct {
	mu      sync.RWMutex
	valid   bool
	players map[string]domain.Player
}

func New() *Cache {
	return &Cache{
		players: make(map[string]domain.Player),
	}
}

func (c *Cache) Update(players []domain.Player) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.players = make(map[string]domain.Player)
	for i := range players {
		name := normalize.Name(players[i].Name)
		c.players[name] = players[i]
	}
	c.valid = true
}

func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.valid = false
}

func (c *Cache) Valid() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.valid
}

func (c *Cache) GetPlayerByName(name string) (domain.Player, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.valid {
		return domain.Player{}, false
	}
	player, ok := c.players[normalize.Name(name)]
	if !ok {
		return domain.Player{}, false
	}
	return player, true
}

// List returns the cached roster in registration order. Ties break on
// ID, matching the order the storage layer lists in.
func (c *Cache) List() []domain.Player {
	c.mu.RLock()
	defer c.mu.RUnlock()

	players := make([]domain.Player, 0, len(c.players))
	for _, player := range c.players {
		players = append(players, player)
	}
	sort.Slice(players, func(i, j int) bool {
		if players[i].RegisteredAt.Equal(players[j].RegisteredAt) {
			return players[i].ID.String() < players[j].ID.String()
		}
		return players[i].RegisteredAt.Before(players[j].RegisteredAt)
	})
	return players
}
