package netcomponents

import (
	"github.com/automoto/burrow/shared/gamemath"
	"github.com/yohamta/donburi"
)

// NetPositionData is the feet position of a character in world units.
type NetPositionData struct {
	X, Y, Z float64
}

var NetPosition = donburi.NewComponentType[NetPositionData]()

func (p NetPositionData) Vec3() gamemath.Vec3 {
	return gamemath.Vec3{X: p.X, Y: p.Y, Z: p.Z}
}

// LerpNetPosition interpolates between two positions
func LerpNetPosition(from, to NetPositionData, t float64) *NetPositionData {
	v := gamemath.LerpVec3(from.Vec3(), to.Vec3(), t)
	return &NetPositionData{X: v.X, Y: v.Y, Z: v.Z}
}
