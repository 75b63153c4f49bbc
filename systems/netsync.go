package systems

import (
	"github.com/automoto/burrow/components"
	"github.com/automoto/burrow/shared/netcomponents"
	"github.com/automoto/burrow/tags"
	"github.com/yohamta/donburi"
)

// SyncNetComponents copies simulation state into the replicated components of
// every player that has them.
func SyncNetComponents(w donburi.World) {
	tags.Player.Each(w, func(player *donburi.Entry) {
		loco := components.Locomotion.Get(player)
		pi := components.PlayerInput.Get(player)

		if player.HasComponent(netcomponents.NetPosition) {
			if body := components.Body.Get(player); body.Body != nil {
				p := body.Position()
				netcomponents.NetPosition.SetValue(player, netcomponents.NetPositionData{X: p.X, Y: p.Y, Z: p.Z})
			}
		}
		if player.HasComponent(netcomponents.NetOrientation) {
			netcomponents.NetOrientation.SetValue(player, netcomponents.NetOrientationData{
				Yaw:     loco.State.Yaw,
				Pitch:   loco.State.Pitch,
				BodyYaw: loco.State.BodyYaw,
			})
		}
		if player.HasComponent(netcomponents.NetLocomotion) {
			netcomponents.NetLocomotion.SetValue(player, netcomponents.NetLocomotionData{
				State:        loco.State,
				Clock:        loco.Clock,
				VisualY:      loco.Visual.Y,
				LastSequence: pi.LastSequence,
			})
		}
	})
}
