package core

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/automoto/burrow/assets"
	"github.com/automoto/burrow/config"
	"github.com/automoto/burrow/shared/arena"
)

// LoadArena loads the named arena. An empty dir reads the embedded arenas,
// otherwise dir is a directory of .tmx files on disk.
func LoadArena(dir, name string, cfg config.ArenaConfig) (*arena.Arena, string, error) {
	var (
		fsys    fs.FS = assets.FS()
		arenaDir      = assets.ArenaDir
	)
	if dir != "" {
		fsys, arenaDir = os.DirFS(dir), "."
	}

	arenas, names, err := arena.LoadAll(fsys, arenaDir, cfg)
	if err != nil {
		return nil, "", err
	}
	if len(names) == 0 {
		return nil, "", fmt.Errorf("no arenas found in %q", arenaDir)
	}
	if name == "" {
		return arenas[names[0]], names[0], nil
	}
	for _, n := range names {
		if strings.EqualFold(n, name) {
			return arenas[n], n, nil
		}
	}
	return nil, "", fmt.Errorf("unknown arena %q (available: %s)", name, strings.Join(names, ", "))
}
