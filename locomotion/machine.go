// Package locomotion is a deterministic, frame-stepped movement and ability
// state machine for a third-person character.
//
// The machine never touches the world directly. Each tick it reads an Input,
// probes the ground through an Environment and submits exactly one
// displacement to the environment's move-and-collide primitive.
package locomotion

import (
	"github.com/automoto/burrow/config"
	"github.com/automoto/burrow/shared/netconfig"
)

// Advance runs one simulation tick. A non-positive or non-finite DT leaves the
// state untouched and moves nothing.
func Advance(s *State, cfg *config.LocomotionConfig, in Input, env Environment) Result {
	in = sanitize(in)
	if in.DT <= 0 {
		return Result{}
	}
	dt := in.DT

	var res Result
	s.Flags.Jumping = false

	updateOrientation(s, cfg, in)
	probe := env.ProbeGround()
	res.Events |= updateGround(s, cfg, dt)

	s.MoveIntent = computeIntent(s, cfg, in)
	s.Flags.Running = in.Run
	updateFacing(s, cfg, dt)

	if cfg.Extended() {
		selectPower(s, in)
	}

	res.Events |= advanceBurrowTimer(s, dt)
	updateJumpBuffer(s, cfg, in.Jump, dt)

	// A launch zeroes the buffer, so the jump that triggered it never fires.
	ev := triggerAbility(s, cfg, in, probe)
	res.Events |= ev

	switch {
	case ev.Has(EventLaunched):
		// Gravity and movement come back on the next tick.
		res.Requested = MoveRequest{Source: MotionNone}
	case s.Ability.Burrowed():
		res.Requested = MoveRequest{Source: MotionBurrow, Displacement: burrowDisplacement(s, cfg, dt, env)}
	case s.Ability == netconfig.AbilityDashing:
		delta, dashEv := dashDisplacement(s, cfg, dt)
		res.Events |= dashEv
		res.Requested = MoveRequest{Source: MotionDash, Displacement: delta}
	default:
		res.Events |= decideJump(s, cfg)
		res.Requested = MoveRequest{Source: MotionIntegrator, Displacement: integrate(s, cfg, dt)}
	}

	res.Applied = env.MoveAndCollide(res.Requested.Displacement)
	s.GroundContact = res.Applied.Grounded

	updateFlags(s)
	updateDashCooldown(s, cfg, in.Now)
	return res
}

func selectPower(s *State, in Input) {
	if in.SelectBurrow {
		s.Power = netconfig.PowerBurrow
	}
	if in.SelectDash {
		s.Power = netconfig.PowerDash
	}
}

// triggerAbility starts or finishes an ability from this tick's activation
// edges. An active exclusive ability rejects every other entry.
func triggerAbility(s *State, cfg *config.LocomotionConfig, in Input, probe GroundProbe) Event {
	extended := cfg.Extended()

	switch s.Ability {
	case netconfig.AbilityIdle:
		if !in.Ability {
			return 0
		}
		if extended && s.Power == netconfig.PowerDash {
			if dashReady(s, cfg, in.Now) {
				return enterDash(s, cfg, in.Now)
			}
			return 0
		}
		if probe.Burrowable() {
			return enterBurrow(s, cfg, probe.Surface)
		}

	case netconfig.AbilityReadyToLaunch:
		if !extended {
			if in.Ability {
				return launch(s, cfg)
			}
			return 0
		}
		if s.Power == netconfig.PowerBurrow && (in.Ability || in.Jump) {
			return launch(s, cfg)
		}
	}
	return 0
}

func updateFlags(s *State) {
	s.Flags.Grounded = s.Grounded
	s.Flags.Burrowing = s.Ability.Burrowed()
	s.Flags.Dashing = s.Ability == netconfig.AbilityDashing
	if s.Ability.Exclusive() {
		s.Flags.Falling = false
		s.Flags.Running = false
	}
}
