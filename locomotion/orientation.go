package locomotion

import (
	"github.com/automoto/burrow/config"
	"github.com/automoto/burrow/shared/gamemath"
)

// updateOrientation turns the look delta into yaw and pitch. Pitch is always
// left inside [MinPitch, MaxPitch].
func updateOrientation(s *State, cfg *config.LocomotionConfig, in Input) {
	scale := cfg.Look.Sensitivity * cfg.Look.LookScale * in.DT

	if yaw := s.Yaw + in.LookX*scale; gamemath.IsFinite(yaw) {
		s.Yaw = yaw
	}
	pitch := s.Pitch - in.LookY*scale
	if !gamemath.IsFinite(pitch) {
		pitch = s.Pitch
	}
	s.Pitch = gamemath.ClampFloat(gamemath.Sanitize(pitch), cfg.Look.MinPitch, cfg.Look.MaxPitch)
}

// computeIntent maps the movement axes onto the flat camera basis.
func computeIntent(s *State, cfg *config.LocomotionConfig, in Input) gamemath.Vec3 {
	raw := gamemath.Vec3{X: in.MoveX, Z: in.MoveY}.Normalize()
	if raw.Len() <= cfg.Movement.IntentDeadzone {
		return gamemath.Zero
	}
	forward, right := gamemath.YawBasis(s.Yaw)
	return forward.Scale(raw.Z).Add(right.Scale(raw.X)).Normalize()
}

// updateFacing eases the cosmetic body yaw toward the heading while moving
// roughly forward.
func updateFacing(s *State, cfg *config.LocomotionConfig, dt float64) {
	if !cfg.Visual.FacingEnabled || s.MoveIntent.Len() <= cfg.Movement.IntentDeadzone {
		return
	}
	bodyForward, _ := gamemath.YawBasis(s.BodyYaw)
	if s.MoveIntent.Dot(bodyForward) <= 0.1 {
		return
	}
	s.BodyYaw = gamemath.LerpAngle(s.BodyYaw, gamemath.HeadingYaw(s.MoveIntent), cfg.Movement.RotationSpeed*dt)
}
