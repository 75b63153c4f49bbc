package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Name     string
	Index    int    // Join order, used for spawn assignment
	ClientID string // Network client that owns this player, empty for local players
}

var Player = donburi.NewComponentType[PlayerData]()
