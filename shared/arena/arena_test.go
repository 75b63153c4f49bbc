package arena

import (
	"errors"
	"math"
	"testing"

	"github.com/automoto/burrow/config"
	"github.com/automoto/burrow/locomotion"
	"github.com/automoto/burrow/shared/gamemath"
	"github.com/automoto/burrow/shared/netconfig"
)

func approxEqual(t *testing.T, got, want, tol float64, field string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("%s = %.8f, want %.8f (tol=%.8f)", field, got, want, tol)
	}
}

// newTestArena builds a 40x40 solid floor with its top at y = 0.
func newTestArena(t *testing.T) (*Arena, locomotion.SurfaceHandle) {
	t.Helper()
	a := New(config.Arena)
	floor := a.AddSurface(gamemath.NewBox(-20, -20, 40, 40, -1, 0), netconfig.SurfaceSolid)
	return a, floor
}

func TestBody_LandsOnFloor(t *testing.T) {
	a, _ := newTestArena(t)
	b := a.NewBody(gamemath.Vec3{Y: 1})

	res := b.MoveAndCollide(gamemath.Vec3{Y: -0.5})
	if res.Grounded {
		t.Fatalf("grounded in mid air")
	}
	approxEqual(t, b.Position().Y, 0.5, 1e-9, "y")

	res = b.MoveAndCollide(gamemath.Vec3{Y: -2})
	if !res.Grounded {
		t.Fatalf("not grounded after landing")
	}
	approxEqual(t, b.Position().Y, 0, 1e-9, "y")
	approxEqual(t, res.Applied.Y, -0.5, 1e-9, "applied y")
}

func TestBody_GroundSkinKeepsContact(t *testing.T) {
	a, _ := newTestArena(t)
	b := a.NewBody(gamemath.Vec3{})

	res := b.MoveAndCollide(gamemath.Vec3{Y: -0.048})
	if !res.Grounded {
		t.Fatalf("lost contact while pressed into the floor")
	}
	res = b.MoveAndCollide(gamemath.Zero)
	if !res.Grounded {
		t.Fatalf("lost contact on a zero move")
	}
	res = b.MoveAndCollide(gamemath.Vec3{Y: 0.2})
	if res.Grounded {
		t.Fatalf("grounded while moving up")
	}
}

func TestBody_WallStopsHorizontalMovement(t *testing.T) {
	a, _ := newTestArena(t)
	a.AddSurface(gamemath.NewBox(2, -5, 1, 10, 0, 3), netconfig.SurfaceSolid)
	b := a.NewBody(gamemath.Vec3{})

	res := b.MoveAndCollide(gamemath.Vec3{X: 3, Y: -0.01})
	approxEqual(t, res.Applied.X, 1.5, 1e-9, "applied x")
	approxEqual(t, b.Position().X, 1.5, 1e-9, "x")
	if !res.Grounded {
		t.Fatalf("not grounded next to the wall")
	}

	res = b.MoveAndCollide(gamemath.Vec3{X: 1, Z: 0.5})
	approxEqual(t, res.Applied.X, 0, 1e-9, "applied x against wall")
	approxEqual(t, res.Applied.Z, 0.5, 1e-9, "slide z")
}

func TestBody_LongMoveDoesNotTunnel(t *testing.T) {
	a, _ := newTestArena(t)
	a.AddSurface(gamemath.NewBox(3, -5, 0.1, 10, 0, 3), netconfig.SurfaceSolid)
	b := a.NewBody(gamemath.Vec3{})

	b.MoveAndCollide(gamemath.Vec3{X: 10})
	approxEqual(t, b.Position().X, 2.5, 1e-9, "x")
}

func TestBody_StepsUpLowLedges(t *testing.T) {
	a, _ := newTestArena(t)
	a.AddSurface(gamemath.NewBox(1, -5, 4, 10, 0, 0.2), netconfig.SurfaceSolid)
	b := a.NewBody(gamemath.Vec3{})

	res := b.MoveAndCollide(gamemath.Vec3{X: 1, Y: -0.05})
	approxEqual(t, res.Applied.X, 1, 1e-9, "applied x")
	approxEqual(t, b.Position().Y, 0.2, 1e-9, "y")
	if !res.Grounded {
		t.Fatalf("not grounded on the step")
	}
}

func TestBody_CeilingStopsJump(t *testing.T) {
	a, _ := newTestArena(t)
	a.AddSurface(gamemath.NewBox(-2, -2, 4, 4, 3, 4), netconfig.SurfaceSolid)
	b := a.NewBody(gamemath.Vec3{})

	res := b.MoveAndCollide(gamemath.Vec3{Y: 2})
	approxEqual(t, b.Position().Y, 1, 1e-9, "y")
	approxEqual(t, res.Applied.Y, 1, 1e-9, "applied y")
}

func TestBody_ProbeGround(t *testing.T) {
	a, floor := newTestArena(t)
	feathers := a.AddSurface(gamemath.NewBox(5, 5, 4, 4, 0, 0.5), netconfig.SurfaceBurrowable)

	tests := []struct {
		name    string
		pos     gamemath.Vec3
		hit     bool
		class   netconfig.SurfaceClass
		surface locomotion.SurfaceHandle
	}{
		{"standing on floor", gamemath.Vec3{}, true, netconfig.SurfaceSolid, floor},
		{"hovering inside probe range", gamemath.Vec3{Y: 1.2}, true, netconfig.SurfaceSolid, floor},
		{"out of probe range", gamemath.Vec3{Y: 3}, false, netconfig.SurfaceNone, locomotion.NoSurface},
		{"on feathers", gamemath.Vec3{X: 7, Y: 0.5, Z: 7}, true, netconfig.SurfaceBurrowable, feathers},
		{"off the map", gamemath.Vec3{X: 30, Z: 30}, false, netconfig.SurfaceNone, locomotion.NoSurface},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := a.NewBody(tt.pos)
			defer a.RemoveBody(b)

			probe := b.ProbeGround()
			if probe.Hit != tt.hit || probe.Class != tt.class || probe.Surface != tt.surface {
				t.Fatalf("probe = %+v, want hit=%v class=%v surface=%v", probe, tt.hit, tt.class, tt.surface)
			}
		})
	}
}

func TestArena_RemovedSurfaceStopsResolving(t *testing.T) {
	a, floor := newTestArena(t)

	if _, ok := a.ClosestPoint(floor, gamemath.Vec3{Y: 5}); !ok {
		t.Fatalf("floor did not resolve")
	}
	if err := a.RemoveSurface(floor); err != nil {
		t.Fatalf("RemoveSurface() error = %v", err)
	}
	if _, ok := a.ClosestPoint(floor, gamemath.Vec3{Y: 5}); ok {
		t.Fatalf("removed floor still resolves")
	}
	if err := a.RemoveSurface(floor); !errors.Is(err, ErrUnknownSurface) {
		t.Fatalf("RemoveSurface() error = %v, want ErrUnknownSurface", err)
	}
	if a.SurfaceCount() != 0 {
		t.Fatalf("SurfaceCount() = %d, want 0", a.SurfaceCount())
	}
}

func TestArena_BurrowAndLaunchOnFeathers(t *testing.T) {
	a := New(config.Arena)
	a.AddSurface(gamemath.NewBox(-10, -10, 20, 20, -1, 0), netconfig.SurfaceBurrowable)
	b := a.NewBody(gamemath.Vec3{Y: 0.5})

	cfg := config.DefaultLocomotion()
	cfg.Variant = netconfig.VariantBase
	c := locomotion.NewController(&cfg, b, 0)

	for i := 0; i < 60 && !c.State.Grounded; i++ {
		c.Tick(locomotion.Input{DT: 0.02})
	}
	if !c.State.Grounded {
		t.Fatalf("never landed on the feathers")
	}

	res := c.Tick(locomotion.Input{DT: 0.02, Ability: true})
	if !res.Events.Has(locomotion.EventBurrowStarted) {
		t.Fatalf("events = %v, want burrow_started", res.Events)
	}

	// Creep toward the edge; the homing must stop at the footprint.
	for i := 0; i < 200; i++ {
		c.Tick(locomotion.Input{DT: 0.02, MoveY: 1})
	}
	if c.State.Ability != netconfig.AbilityReadyToLaunch {
		t.Fatalf("ability = %v, want ready_to_launch", c.State.Ability)
	}
	approxEqual(t, b.Position().Z, 10, 1e-6, "z at edge")

	c.Tick(locomotion.Input{DT: 0.02, Ability: true})
	y := b.Position().Y
	c.Tick(locomotion.Input{DT: 0.02})
	if b.Position().Y <= y {
		t.Fatalf("launch did not lift the body")
	}
}
