package netcomponents

import (
	"github.com/automoto/burrow/locomotion"
	"github.com/yohamta/donburi"
)

// NetLocomotionData is the authoritative machine state of one character.
// Clients read Flags for presentation and State for prediction reconciliation.
type NetLocomotionData struct {
	State        locomotion.State
	Clock        float64 // Player clock the state's timestamps refer to
	VisualY      float64 // Cosmetic sink offset
	LastSequence uint32  // Last input sequence processed by the server
}

var NetLocomotion = donburi.NewComponentType[NetLocomotionData]()
