package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/automoto/burrow/config"
	"github.com/automoto/burrow/shared/arena"
	"github.com/automoto/burrow/shared/leveldata"
)

var (
	//go:embed all:arenas
	arenaFS embed.FS

	//go:embed tuning.yaml
	defaultTuning []byte
)

// ArenaDir is the directory of embedded .tmx arenas.
const ArenaDir = "arenas"

// FS exposes the embedded arena files.
func FS() fs.FS {
	return arenaFS
}

// DefaultTuning returns the embedded tuning file.
func DefaultTuning() []byte {
	return append([]byte(nil), defaultTuning...)
}

type ArenaLoader struct {
	cfg config.ArenaConfig
}

func NewArenaLoader(cfg config.ArenaConfig) *ArenaLoader {
	return &ArenaLoader{cfg: cfg}
}

// Names lists the embedded arenas in sorted order.
func (l *ArenaLoader) Names() []string {
	entries, err := arenaFS.ReadDir(ArenaDir)
	if err != nil {
		panic(fmt.Sprintf("Failed to read arenas directory: %v", err))
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && path.Ext(entry.Name()) == ".tmx" {
			names = append(names, entry.Name()[:len(entry.Name())-len(".tmx")])
		}
	}
	sort.Strings(names)
	return names
}

func (l *ArenaLoader) MustLoadArenas() (map[string]*arena.Arena, []string) {
	arenas, names, err := arena.LoadAll(arenaFS, ArenaDir, l.cfg)
	if err != nil {
		panic(err)
	}
	return arenas, names
}

func (l *ArenaLoader) MustLoadArena(name string) *arena.Arena {
	data, err := leveldata.LoadArenaData(arenaFS, path.Join(ArenaDir, name+".tmx"))
	if err != nil {
		panic(err)
	}
	return arena.Build(data, l.cfg)
}
