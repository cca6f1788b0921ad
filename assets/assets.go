package assets

import (
	"embed"
	"io/fs"
	"log"

	cfg "github.com/automoto/lyricfire/config"
	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:levels
	assetFS embed.FS

	//go:embed all:tracks
	trackFS embed.FS
)

// StageLayout is the parsed encounter geometry. Every field has a config
// fallback, so a missing or malformed map still yields a playable stage.
type StageLayout struct {
	Map *tiled.Map

	Width  float64
	Height float64

	FloorY   float64
	CatwalkY float64
	MinX     float64
	MaxX     float64

	PlayerSpawnX float64
	BossSpawnX   float64
}

// TrackFS returns the embedded track file tree for the track loader.
func TrackFS() fs.FS {
	return trackFS
}

// LoadStage parses the embedded Tiled map at path and resolves the stage
// layout from its Layout object group. Objects are matched by name:
// "floor" and "catwalk" contribute their Y, "boss_path" its X extent, and
// "player_spawn"/"boss_spawn" their X. Anything missing falls back to the
// configured defaults.
func LoadStage(path string) StageLayout {
	layout := StageLayout{
		Width:        float64(cfg.C.Width),
		Height:       float64(cfg.C.Height),
		FloorY:       cfg.Stage.FloorY,
		CatwalkY:     cfg.Stage.CatwalkY,
		MinX:         cfg.Stage.MinX,
		MaxX:         cfg.Stage.MaxX,
		PlayerSpawnX: float64(cfg.C.Width) / 2,
		BossSpawnX:   float64(cfg.C.Width) / 2,
	}

	stageMap, err := tiled.LoadFile(path, tiled.WithFileSystem(assetFS))
	if err != nil {
		log.Printf("Warning: could not load stage map %s: %v", path, err)
		return layout
	}
	layout.Map = stageMap
	layout.Width = float64(stageMap.Width * stageMap.TileWidth)
	layout.Height = float64(stageMap.Height * stageMap.TileHeight)

	for _, og := range stageMap.ObjectGroups {
		if og.Name != "Layout" {
			continue
		}
		for _, o := range og.Objects {
			switch o.Name {
			case "floor":
				layout.FloorY = o.Y
			case "catwalk":
				layout.CatwalkY = o.Y
			case "boss_path":
				layout.MinX = o.X
				layout.MaxX = o.X + o.Width
			case "player_spawn":
				layout.PlayerSpawnX = o.X
			case "boss_spawn":
				layout.BossSpawnX = o.X
			}
		}
	}

	return layout
}
