package netcomponents

import (
	"github.com/automoto/burrow/shared/gamemath"
	"github.com/yohamta/donburi"
)

// NetOrientationData carries the camera and body facing in degrees.
type NetOrientationData struct {
	Yaw     float64
	Pitch   float64
	BodyYaw float64
}

var NetOrientation = donburi.NewComponentType[NetOrientationData]()

// LerpNetOrientation interpolates angles along the shortest arc.
func LerpNetOrientation(from, to NetOrientationData, t float64) *NetOrientationData {
	return &NetOrientationData{
		Yaw:     gamemath.LerpAngle(from.Yaw, to.Yaw, t),
		Pitch:   gamemath.Lerp(from.Pitch, to.Pitch, t),
		BodyYaw: gamemath.LerpAngle(from.BodyYaw, to.BodyYaw, t),
	}
}
