// Package arena is the reference move-and-collide world for the locomotion
// machine. Surfaces are boxes with a footprint on the XZ plane and a vertical
// span; a resolv space over the footprints serves as the broadphase.
package arena

import (
	"errors"
	"log"
	"sort"

	"github.com/automoto/burrow/config"
	"github.com/automoto/burrow/locomotion"
	"github.com/automoto/burrow/shared/gamemath"
	"github.com/automoto/burrow/shared/netconfig"
	"github.com/solarlune/resolv"
)

// Resolv tags
const (
	tagSurface    = "surface"
	tagBurrowable = "feathers"
	tagBody       = "body"
)

// ErrUnknownSurface is returned when a surface handle does not resolve.
var ErrUnknownSurface = errors.New("arena: unknown surface")

// Surface is one static box in the arena.
type Surface struct {
	ID    locomotion.SurfaceHandle
	Box   gamemath.Box
	Class netconfig.SurfaceClass

	obj *resolv.Object
}

// Arena owns the surfaces and the broadphase space. It is not safe for
// concurrent use; the game loop owns it.
type Arena struct {
	Space  *resolv.Space
	Spawns []gamemath.Vec3

	cfg      config.ArenaConfig
	surfaces map[locomotion.SurfaceHandle]*Surface
	nextID   locomotion.SurfaceHandle
}

// New creates an empty arena. The space is centered on the world origin.
func New(cfg config.ArenaConfig) *Arena {
	return &Arena{
		Space:    resolv.NewSpace(cfg.SpaceSize, cfg.SpaceSize, cfg.CellSize, cfg.CellSize),
		cfg:      cfg,
		surfaces: make(map[locomotion.SurfaceHandle]*Surface),
		nextID:   locomotion.NoSurface,
	}
}

// Config returns the collision tuning the arena was built with.
func (a *Arena) Config() config.ArenaConfig {
	return a.cfg
}

// toSpace maps a world XZ coordinate to resolv space pixels.
func (a *Arena) toSpace(x, z float64) (float64, float64) {
	half := float64(a.cfg.SpaceSize) / 2
	return x*a.cfg.UnitScale + half, z*a.cfg.UnitScale + half
}

// AddSurface registers a box and returns its handle. Handles are never reused.
func (a *Arena) AddSurface(box gamemath.Box, class netconfig.SurfaceClass) locomotion.SurfaceHandle {
	if class == netconfig.SurfaceNone {
		class = netconfig.SurfaceSolid
	}
	a.nextID++
	s := &Surface{ID: a.nextID, Box: box, Class: class}

	x, y := a.toSpace(box.Min.X, box.Min.Z)
	w, h := box.Width()*a.cfg.UnitScale, box.Depth()*a.cfg.UnitScale
	tags := []string{tagSurface}
	if class == netconfig.SurfaceBurrowable {
		tags = append(tags, tagBurrowable)
	}
	s.obj = resolv.NewObject(x, y, w, h, tags...)
	s.obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	s.obj.Data = s
	a.Space.Add(s.obj)

	a.surfaces[s.ID] = s
	return s.ID
}

// RemoveSurface drops a surface. Bodies anchored to it keep the stale handle,
// which simply stops resolving.
func (a *Arena) RemoveSurface(id locomotion.SurfaceHandle) error {
	s, ok := a.surfaces[id]
	if !ok {
		return ErrUnknownSurface
	}
	a.Space.Remove(s.obj)
	delete(a.surfaces, id)
	return nil
}

// Surface returns a copy of the surface behind a handle.
func (a *Arena) Surface(id locomotion.SurfaceHandle) (Surface, bool) {
	s, ok := a.surfaces[id]
	if !ok {
		return Surface{}, false
	}
	return *s, true
}

// Surfaces returns copies of all live surfaces ordered by handle.
func (a *Arena) Surfaces() []Surface {
	out := make([]Surface, 0, len(a.surfaces))
	for _, s := range a.surfaces {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// SurfaceCount returns the number of live surfaces.
func (a *Arena) SurfaceCount() int {
	return len(a.surfaces)
}

// ClosestPoint returns the point of a surface nearest to p.
func (a *Arena) ClosestPoint(id locomotion.SurfaceHandle, p gamemath.Vec3) (gamemath.Vec3, bool) {
	s, ok := a.surfaces[id]
	if !ok {
		return gamemath.Vec3{}, false
	}
	return s.Box.ClosestPoint(p), true
}

// Spawn returns the spawn point for a player index, cycling through the
// arena's spawns. Arenas without spawns place players at the origin.
func (a *Arena) Spawn(index int) gamemath.Vec3 {
	if len(a.Spawns) == 0 {
		return gamemath.Zero
	}
	if index < 0 {
		index = -index
	}
	return a.Spawns[index%len(a.Spawns)]
}

// NewBody places a character with its feet at pos.
func (a *Arena) NewBody(pos gamemath.Vec3) *Body {
	b := &Body{arena: a, pos: pos}
	size := 2 * a.cfg.BodyRadius * a.cfg.UnitScale
	x, y := a.toSpace(pos.X-a.cfg.BodyRadius, pos.Z-a.cfg.BodyRadius)
	b.obj = resolv.NewObject(x, y, size, size, tagBody)
	b.obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	b.obj.Data = b
	a.Space.Add(b.obj)
	return b
}

// RemoveBody takes a character out of the broadphase.
func (a *Arena) RemoveBody(b *Body) {
	if b == nil || b.obj == nil {
		return
	}
	a.Space.Remove(b.obj)
	b.obj = nil
}

// LogSummary prints the arena contents.
func (a *Arena) LogSummary(name string) {
	burrowable := 0
	for _, s := range a.surfaces {
		if s.Class == netconfig.SurfaceBurrowable {
			burrowable++
		}
	}
	log.Printf("Loaded arena %s: %d surfaces (%d burrowable), %d spawn points",
		name, len(a.surfaces), burrowable, len(a.Spawns))
}
