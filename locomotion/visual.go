package locomotion

import (
	"github.com/automoto/burrow/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// VisualOffset is the cosmetic vertical offset of the character model. It
// sinks while burrowed and rises back otherwise. It has no effect on the
// simulation.
type VisualOffset struct {
	Y float64

	sunk  bool
	tween *gween.Tween
}

// Update eases the offset toward the target for the current ability state and
// returns the new offset.
func (v *VisualOffset) Update(s *State, cfg *config.LocomotionConfig, dt float64) float64 {
	sunk := s.Ability.Burrowed()
	if sunk != v.sunk || v.tween == nil {
		v.sunk = sunk
		target := 0.0
		if sunk {
			target = -cfg.Visual.BurrowSink
		}
		duration := cfg.Visual.SinkDuration
		if duration <= 0 {
			v.Y = target
			v.tween = nil
			return v.Y
		}
		v.tween = gween.New(float32(v.Y), float32(target), float32(duration), ease.OutQuad)
	}
	if dt <= 0 {
		return v.Y
	}

	current, _ := v.tween.Update(float32(dt))
	v.Y = float64(current)
	return v.Y
}
