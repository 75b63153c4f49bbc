package arena

import (
	"math"

	"github.com/automoto/burrow/locomotion"
	"github.com/automoto/burrow/shared/gamemath"
	"github.com/solarlune/resolv"
)

const contactEpsilon = 1e-9

// probeLift is how far above the feet the ground probe starts.
const probeLift = 0.1

// Body is one character in the arena. It implements locomotion.Environment.
type Body struct {
	arena *Arena
	obj   *resolv.Object
	pos   gamemath.Vec3 // Feet position
}

var _ locomotion.Environment = (*Body)(nil)

func (b *Body) Position() gamemath.Vec3 {
	return b.pos
}

// SetPosition teleports the body without collision.
func (b *Body) SetPosition(p gamemath.Vec3) {
	if !p.IsFinite() {
		return
	}
	b.pos = p
	b.sync()
}

func (b *Body) ClosestPoint(id locomotion.SurfaceHandle, p gamemath.Vec3) (gamemath.Vec3, bool) {
	return b.arena.ClosestPoint(id, p)
}

func (b *Body) sync() {
	if b.obj == nil {
		return
	}
	r := b.arena.cfg.BodyRadius
	b.obj.X, b.obj.Y = b.arena.toSpace(b.pos.X-r, b.pos.Z-r)
	b.obj.Update()
}

// nearby returns the surfaces in the broadphase cells the body would occupy
// after moving by dx, dz.
func (b *Body) nearby(dx, dz float64) []*Surface {
	if b.obj == nil {
		return nil
	}
	scale := b.arena.cfg.UnitScale
	check := b.obj.Check(dx*scale, dz*scale, tagSurface)
	if check == nil {
		return nil
	}
	objs := check.ObjectsByTags(tagSurface)
	out := make([]*Surface, 0, len(objs))
	for _, o := range objs {
		if s, ok := o.Data.(*Surface); ok {
			out = append(out, s)
		}
	}
	return out
}

// overlapsFootprint reports whether the surface footprint strictly overlaps
// the body footprint on the XZ plane.
func (b *Body) overlapsFootprint(s *Surface) bool {
	r := b.arena.cfg.BodyRadius
	return s.Box.Min.X < b.pos.X+r && s.Box.Max.X > b.pos.X-r &&
		s.Box.Min.Z < b.pos.Z+r && s.Box.Max.Z > b.pos.Z-r
}

// blocks reports whether a surface is tall enough to stop sideways motion.
func (b *Body) blocks(s *Surface) bool {
	cfg := b.arena.cfg
	return s.Box.Top() > b.pos.Y+cfg.StepHeight && s.Box.Bottom() < b.pos.Y+cfg.BodyHeight
}

// sweep splits a horizontal move into steps no longer than the body radius
// so the broadphase never skips a thin wall.
func (b *Body) sweep(d float64, step func(float64) float64) float64 {
	limit := b.arena.cfg.BodyRadius
	moved := 0.0
	for d != 0 {
		part := gamemath.ClampSpeed(d, limit)
		got := step(part)
		moved += got
		if got != part {
			break
		}
		d -= part
	}
	return moved
}

func (b *Body) stepX(dx float64) float64 {
	r := b.arena.cfg.BodyRadius
	for _, s := range b.nearby(dx, 0) {
		if !b.blocks(s) || !(s.Box.Min.Z < b.pos.Z+r && s.Box.Max.Z > b.pos.Z-r) {
			continue
		}
		if dx > 0 {
			if gap := s.Box.Min.X - (b.pos.X + r); gap >= -contactEpsilon && gap < dx {
				dx = math.Max(gap, 0)
			}
		} else {
			if gap := s.Box.Max.X - (b.pos.X - r); gap <= contactEpsilon && gap > dx {
				dx = math.Min(gap, 0)
			}
		}
	}
	b.pos.X += dx
	b.sync()
	return dx
}

func (b *Body) stepZ(dz float64) float64 {
	r := b.arena.cfg.BodyRadius
	for _, s := range b.nearby(0, dz) {
		if !b.blocks(s) || !(s.Box.Min.X < b.pos.X+r && s.Box.Max.X > b.pos.X-r) {
			continue
		}
		if dz > 0 {
			if gap := s.Box.Min.Z - (b.pos.Z + r); gap >= -contactEpsilon && gap < dz {
				dz = math.Max(gap, 0)
			}
		} else {
			if gap := s.Box.Max.Z - (b.pos.Z - r); gap <= contactEpsilon && gap > dz {
				dz = math.Min(gap, 0)
			}
		}
	}
	b.pos.Z += dz
	b.sync()
	return dz
}

// moveY lands on the highest support under the footprint and stops at the
// lowest ceiling above the head.
func (b *Body) moveY(dy float64) (float64, bool) {
	cfg := b.arena.cfg
	support, ceiling := math.Inf(-1), math.Inf(1)
	for _, s := range b.nearby(0, 0) {
		if !b.overlapsFootprint(s) {
			continue
		}
		if top := s.Box.Top(); top <= b.pos.Y+cfg.StepHeight+contactEpsilon && top > support {
			support = top
		}
		if bottom := s.Box.Bottom(); bottom >= b.pos.Y+cfg.BodyHeight-contactEpsilon && bottom < ceiling {
			ceiling = bottom
		}
	}

	y := b.pos.Y + dy
	grounded := false
	if dy <= 0 && y <= support+cfg.GroundSkin {
		y = support
		grounded = true
	} else if y < support {
		y = support
	}
	if y+cfg.BodyHeight > ceiling {
		y = ceiling - cfg.BodyHeight
	}

	applied := y - b.pos.Y
	b.pos.Y = y
	return applied, grounded
}

// MoveAndCollide resolves X, then Z, then Y.
func (b *Body) MoveAndCollide(delta gamemath.Vec3) locomotion.MoveResult {
	if !delta.IsFinite() {
		delta = gamemath.Zero
	}
	var res locomotion.MoveResult
	res.Applied.X = b.sweep(delta.X, b.stepX)
	res.Applied.Z = b.sweep(delta.Z, b.stepZ)
	res.Applied.Y, res.Grounded = b.moveY(delta.Y)
	return res
}

// ProbeGround looks straight down from just above the feet for the highest
// surface within the probe distance.
func (b *Body) ProbeGround() locomotion.GroundProbe {
	cfg := b.arena.cfg
	origin := b.pos.Y + probeLift

	var hit *Surface
	for _, s := range b.nearby(0, 0) {
		if b.pos.X < s.Box.Min.X || b.pos.X > s.Box.Max.X || b.pos.Z < s.Box.Min.Z || b.pos.Z > s.Box.Max.Z {
			continue
		}
		top := s.Box.Top()
		if top > origin+contactEpsilon || origin-top > cfg.ProbeDistance {
			continue
		}
		if hit == nil || top > hit.Box.Top() {
			hit = s
		}
	}
	if hit == nil {
		return locomotion.GroundProbe{}
	}
	return locomotion.GroundProbe{Hit: true, Class: hit.Class, Surface: hit.ID}
}
