package arena

import (
	"fmt"
	"io/fs"

	"github.com/automoto/burrow/config"
	"github.com/automoto/burrow/shared/gamemath"
	"github.com/automoto/burrow/shared/leveldata"
	"github.com/automoto/burrow/shared/netconfig"
)

// Build creates an arena from parsed level data.
func Build(data *leveldata.ArenaData, cfg config.ArenaConfig) *Arena {
	a := New(cfg)
	for _, r := range data.Surfaces {
		class, ok := netconfig.SurfaceClassNames[r.Class]
		if !ok {
			class = netconfig.SurfaceSolid
		}
		a.AddSurface(gamemath.NewBox(r.X, r.Z, r.W, r.D, r.Bottom, r.Top), class)
	}
	for _, sp := range data.Spawns {
		a.Spawns = append(a.Spawns, gamemath.Vec3{X: sp.X, Y: sp.Y, Z: sp.Z})
	}
	a.LogSummary(data.Name)
	return a
}

// LoadAll loads every .tmx arena in dir, returning arenas keyed by stem name
// plus a sorted name list.
func LoadAll(fsys fs.FS, dir string, cfg config.ArenaConfig) (map[string]*Arena, []string, error) {
	dataMap, names, err := leveldata.LoadAllArenas(fsys, dir)
	if err != nil {
		return nil, nil, fmt.Errorf("load all arenas: %w", err)
	}

	arenas := make(map[string]*Arena, len(names))
	for _, name := range names {
		arenas[name] = Build(dataMap[name], cfg)
	}
	return arenas, names, nil
}
