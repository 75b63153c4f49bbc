package locomotion

import (
	"math"
	"testing"

	"github.com/automoto/burrow/config"
	"github.com/automoto/burrow/shared/gamemath"
	"github.com/automoto/burrow/shared/netconfig"
)

const tickDT = 0.02

const testSurface SurfaceHandle = 7

// flatEnv is a single flat floor at y = floorY covering the whole plane. The
// surface footprint used for homing is a 20x20 box centered on the origin.
type flatEnv struct {
	pos        gamemath.Vec3
	floorY     float64
	noFloor    bool
	burrowable bool
	gone       bool
	box        gamemath.Box
	moves      []gamemath.Vec3
}

func newFlatEnv() *flatEnv {
	return &flatEnv{
		box: gamemath.NewBox(-10, -10, 20, 20, -1, 0),
	}
}

func (e *flatEnv) Position() gamemath.Vec3 { return e.pos }

func (e *flatEnv) ProbeGround() GroundProbe {
	if e.noFloor || e.pos.Y-e.floorY > 1.5 {
		return GroundProbe{}
	}
	class := netconfig.SurfaceSolid
	if e.burrowable {
		class = netconfig.SurfaceBurrowable
	}
	return GroundProbe{Hit: true, Class: class, Surface: testSurface}
}

func (e *flatEnv) MoveAndCollide(delta gamemath.Vec3) MoveResult {
	e.moves = append(e.moves, delta)
	next := e.pos.Add(delta)
	grounded := false
	if !e.noFloor && next.Y <= e.floorY+1e-9 {
		next.Y = e.floorY
		grounded = true
	}
	applied := next.Sub(e.pos)
	e.pos = next
	return MoveResult{Applied: applied, Grounded: grounded}
}

func (e *flatEnv) ClosestPoint(h SurfaceHandle, p gamemath.Vec3) (gamemath.Vec3, bool) {
	if e.gone || h != testSurface {
		return gamemath.Vec3{}, false
	}
	return e.box.ClosestPoint(p), true
}

func approxEqual(t *testing.T, got, want, tol float64, field string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("%s = %.8f, want %.8f (tol=%.8f)", field, got, want, tol)
	}
}

func testConfig(variant netconfig.Variant) *config.LocomotionConfig {
	cfg := config.DefaultLocomotion()
	cfg.Variant = variant
	return &cfg
}

func tick(s *State, cfg *config.LocomotionConfig, env Environment, in Input) Result {
	if in.DT == 0 {
		in.DT = tickDT
	}
	return Advance(s, cfg, in, env)
}

// settle runs idle ticks until the character stands on the floor and the
// landing edge has been consumed.
func settle(t *testing.T, s *State, cfg *config.LocomotionConfig, env Environment) {
	t.Helper()
	for i := 0; i < 200; i++ {
		tick(s, cfg, env, Input{})
		if s.Grounded && s.GroundContact {
			return
		}
	}
	t.Fatalf("character never settled on the floor")
}
