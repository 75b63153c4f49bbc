// Package profile persists per-player settings between sessions.
package profile

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/automoto/burrow/config"
	"github.com/automoto/burrow/shared/netconfig"
	"github.com/quasilyte/gdata"
)

// Profile is the settings data stored for one player name.
type Profile struct {
	Sensitivity float64 `json:"sensitivity"`
	InvertPitch bool    `json:"invertPitch"`
	Power       int     `json:"power"`

	// Lifetime counters
	Launches int `json:"launches"`
	Dashes   int `json:"dashes"`
}

// Store is the item storage a Manager writes to. gdata.Manager satisfies it.
type Store interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Manager loads and saves profiles. A Manager without a store is a no-op so a
// server without a writable data directory still runs.
type Manager struct {
	store Store
}

// Open initializes the gdata-backed store for appName.
func Open(appName string) (*Manager, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return &Manager{}, fmt.Errorf("open profile storage: %w", err)
	}
	return &Manager{store: m}, nil
}

// NewManager wraps an existing store.
func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// Default returns the profile for a player who never saved one.
func Default() Profile {
	return Profile{
		Sensitivity: config.Locomotion.Look.Sensitivity,
		Power:       int(netconfig.PowerBurrow),
	}
}

func itemKey(player string) string {
	var b strings.Builder
	b.WriteString("profile_")
	for _, r := range strings.ToLower(player) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == len("profile_") {
		b.WriteString("anonymous")
	}
	return b.String()
}

// Load returns the saved profile for player, or the default one when nothing
// was saved or the stored data is unreadable.
func (m *Manager) Load(player string) Profile {
	if m == nil || m.store == nil {
		return Default()
	}

	data, err := m.store.LoadItem(itemKey(player))
	if err != nil {
		log.Printf("Warning: Could not load profile for %q: %v", player, err)
		return Default()
	}
	if len(data) == 0 {
		return Default()
	}

	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		log.Printf("Warning: Could not parse profile for %q: %v", player, err)
		return Default()
	}
	return p
}

// Save writes the profile for player.
func (m *Manager) Save(player string, p Profile) error {
	if m == nil || m.store == nil {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("serialize profile: %w", err)
	}
	if err := m.store.SaveItem(itemKey(player), data); err != nil {
		return fmt.Errorf("save profile %q: %w", player, err)
	}
	return nil
}

// Apply returns a copy of cfg with the player's look settings applied.
func (p Profile) Apply(cfg config.LocomotionConfig) config.LocomotionConfig {
	if p.Sensitivity > 0 {
		cfg.Look.Sensitivity = p.Sensitivity
	}
	return cfg
}

// PowerMode returns the saved power, falling back to burrow for unknown values.
func (p Profile) PowerMode() netconfig.PowerMode {
	switch netconfig.PowerMode(p.Power) {
	case netconfig.PowerDash:
		return netconfig.PowerDash
	}
	return netconfig.PowerBurrow
}
