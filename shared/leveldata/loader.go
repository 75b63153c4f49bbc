package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names
const (
	groupSurfaces = "Surfaces"
	groupSpawns   = "PlayerSpawn"
)

// LoadArenaData parses a TMX file and returns its surfaces and spawn points.
// It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadArenaData(fsys fs.FS, tmxPath string) (*ArenaData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	unit := float64(levelMap.TileWidth)
	if unit <= 0 {
		unit = 1
	}

	data := &ArenaData{
		Name:  strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Width: float64(levelMap.Width*levelMap.TileWidth) / unit,
		Depth: float64(levelMap.Height*levelMap.TileHeight) / unit,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case groupSurfaces:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				top := o.Properties.GetFloat("top")
				bottom := o.Properties.GetFloat("bottom")
				if bottom >= top {
					return nil, fmt.Errorf("surface %d in %s: bottom %.2f not below top %.2f", o.ID, tmxPath, bottom, top)
				}
				class := o.Properties.GetString("surface")
				if class == "" {
					class = "solid"
				}
				data.Surfaces = append(data.Surfaces, SurfaceRect{
					X:      o.X / unit,
					Z:      o.Y / unit,
					W:      o.Width / unit,
					D:      o.Height / unit,
					Bottom: bottom,
					Top:    top,
					Class:  class,
				})
			}

		case groupSpawns:
			for _, o := range og.Objects {
				data.Spawns = append(data.Spawns, SpawnPoint{
					X:     o.X / unit,
					Y:     o.Properties.GetFloat("height"),
					Z:     o.Y / unit,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		}
	}

	if len(data.Surfaces) == 0 {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoSurfaces)
	}

	// Explicit spawn indices first, then left-to-right for consistent assignment
	sort.SliceStable(data.Spawns, func(i, j int) bool {
		if data.Spawns[i].Index != data.Spawns[j].Index {
			return data.Spawns[i].Index < data.Spawns[j].Index
		}
		return data.Spawns[i].X < data.Spawns[j].X
	})

	return data, nil
}

// LoadAllArenas discovers all .tmx files in dir within fsys, loads each, and
// returns a map keyed by stem name plus a sorted list of names.
func LoadAllArenas(fsys fs.FS, dir string) (map[string]*ArenaData, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*ArenaData, len(matches))
	names := make([]string, 0, len(matches))

	for _, p := range matches {
		data, err := LoadArenaData(fsys, p)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", p, err)
		}
		arenas[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}
