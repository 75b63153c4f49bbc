package components

import (
	"github.com/automoto/burrow/shared/arena"
	"github.com/yohamta/donburi"
)

type BodyData struct {
	*arena.Body
}

var Body = donburi.NewComponentType[BodyData]()

// ArenaData is a singleton holding the arena the world simulates in.
type ArenaData struct {
	Name  string
	Arena *arena.Arena
}

var Arena = donburi.NewComponentType[ArenaData]()
