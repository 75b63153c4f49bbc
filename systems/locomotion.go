package systems

import (
	"github.com/automoto/burrow/components"
	"github.com/automoto/burrow/config"
	"github.com/automoto/burrow/locomotion"
	"github.com/automoto/burrow/shared/messages"
	"github.com/automoto/burrow/tags"
	"github.com/yohamta/donburi"
)

// EventHandler receives the result of every player tick that raised events.
type EventHandler func(player *donburi.Entry, res locomotion.Result)

// UpdateLocomotion advances every player by one fixed tick of dt seconds.
func UpdateLocomotion(w donburi.World, dt float64, onEvents EventHandler) {
	tags.Player.Each(w, func(player *donburi.Entry) {
		updatePlayer(player, dt, onEvents)
	})
}

func updatePlayer(player *donburi.Entry, dt float64, onEvents EventHandler) {
	body := components.Body.Get(player)
	if body.Body == nil {
		return
	}

	pi := components.PlayerInput.Get(player)
	consumeInput(pi)

	loco := components.Locomotion.Get(player)
	tuning := components.Tuning.Get(player)
	prof := components.Profile.Get(player)

	loco.Clock += dt
	in := messages.BuildInput(pi.CurrentInput, pi.PreviousInput, pi.MoveX, pi.MoveY, pi.LookX, pi.LookY, dt, loco.Clock)
	if prof.InvertPitch {
		in.LookY = -in.LookY
	}

	res := locomotion.Advance(&loco.State, &tuning.Config, in, body.Body)
	loco.Visual.Update(&loco.State, &tuning.Config, dt)
	loco.Last = res

	trackProfile(prof, &loco.State, res.Events)

	if res.Events != 0 && onEvents != nil {
		onEvents(player, res)
	}
}

// trackProfile mirrors state the profile persists: the selected power and the
// lifetime ability counters.
func trackProfile(prof *components.ProfileData, s *locomotion.State, ev locomotion.Event) {
	if int(s.Power) != prof.Power {
		prof.Power = int(s.Power)
		prof.Dirty = true
	}
	if ev.Has(locomotion.EventLaunched) {
		prof.Launches++
		prof.Dirty = true
	}
	if ev.Has(locomotion.EventDashStarted) {
		prof.Dashes++
		prof.Dirty = true
	}
}

// ApplyTuning replaces every player's tuning with base plus their profile.
// Ability state is kept; new values take effect on the next tick.
func ApplyTuning(w donburi.World, base config.LocomotionConfig) {
	tags.Player.Each(w, func(player *donburi.Entry) {
		prof := components.Profile.Get(player)
		components.Tuning.Get(player).Config = prof.Apply(base)
	})
}
