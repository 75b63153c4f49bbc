package netcomponents

import "github.com/yohamta/donburi"

// NetArenaData describes the running arena. There is one per server world.
type NetArenaData struct {
	Name    string
	Tick    uint64
	Players int
	Variant string
}

var NetArena = donburi.NewComponentType[NetArenaData]()
