// Package leveldata provides TMX arena parsing shared between client and server.
// It has no dependencies on donburi or resolv; pure data only.
package leveldata

import "errors"

// ErrNoSurfaces is returned for arenas without any surface objects.
var ErrNoSurfaces = errors.New("arena has no surfaces")

// ArenaData holds everything parsed from one TMX arena file. Lengths are in
// world units: one tile is one unit.
type ArenaData struct {
	Name     string
	Surfaces []SurfaceRect
	Spawns   []SpawnPoint
	Width    float64
	Depth    float64
}

// SurfaceRect is a box with its footprint drawn on the map (x -> X, y -> Z)
// and its vertical span taken from object properties.
type SurfaceRect struct {
	X, Z, W, D  float64
	Bottom, Top float64
	Class       string // "solid" or "feathers"
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y, Z float64
	Index   int
}
