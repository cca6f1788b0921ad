package systems

import (
	"log"

	"github.com/automoto/lyricfire/components"
	cfg "github.com/automoto/lyricfire/config"
	"github.com/automoto/lyricfire/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles pause. Run it after UpdateInput but before the
// gameplay systems it gates. The pause overlay doubles as the settings
// surface: mute and fullscreen toggles are only read while paused, and any
// change is written straight back to disk.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)

	if GetAction(ecs, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
		if pause.IsPaused {
			PauseMusic(ecs)
		} else {
			ResumeMusic(ecs)
		}
	}

	if !pause.IsPaused {
		return
	}

	if GetAction(ecs, cfg.ActionToggleMute).JustPressed {
		toggleMute(ecs)
	}
	if GetAction(ecs, cfg.ActionToggleFullscreen).JustPressed {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
		persistSettings(ecs)
	}
}

// toggleMute flips between silence and the configured default volumes.
func toggleMute(ecs *ecs.ECS) {
	muted := GetMusicVolume() == 0 && GetSFXVolume() == 0
	saved := &SavedSettings{
		MusicVolume: cfg.Audio.DefaultMusicVol,
		SFXVolume:   cfg.Audio.DefaultSFXVol,
		Muted:       !muted,
		Fullscreen:  ebiten.IsFullscreen(),
	}
	ApplySavedSettings(ecs, saved)
	if err := SaveSettings(saved); err != nil {
		log.Printf("Warning: could not persist settings: %v", err)
	}
}

func persistSettings(ecs *ecs.ECS) {
	saved := &SavedSettings{
		MusicVolume: cfg.Audio.DefaultMusicVol,
		SFXVolume:   cfg.Audio.DefaultSFXVol,
		Muted:       GetMusicVolume() == 0 && GetSFXVolume() == 0,
		Fullscreen:  ebiten.IsFullscreen(),
	}
	if err := SaveSettings(saved); err != nil {
		log.Printf("Warning: could not persist settings: %v", err)
	}
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	title := "PAUSED"
	titleFace := fonts.Title.Get()
	titleWidth := len(title) * 16
	text.Draw(screen, title, titleFace, int((width-float64(titleWidth))/2), int(height/2)-10, cfg.White)

	hint := "ESC resume   M mute   F fullscreen"
	hintFace := fonts.Small.Get()
	hintWidth := len(hint) * 6
	text.Draw(screen, hint, hintFace, int((width-float64(hintWidth))/2), int(height/2)+16, cfg.LightBlue)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused.
// This is an alias for WithPauseCheck for semantic clarity.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(system)
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{
			IsPaused: false,
		})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
