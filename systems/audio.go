package systems

import (
	"sync"

	"github.com/automoto/lyricfire/assets"
	"github.com/automoto/lyricfire/components"
	cfg "github.com/automoto/lyricfire/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicPlayer  *audio.Player
	globalMusicKey     string
	globalMusicVolume  float64 = cfg.Audio.DefaultMusicVol
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalFadeTimer    int
	globalFadeDuration int
	globalFadeStart    float64
	audioInitOnce      sync.Once
)

func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX decodes all sound effects at startup to avoid lag on first play.
func PreloadAllSFX() {
	initGlobalAudio()

	for _, path := range cfg.Sound.SFXPaths {
		_ = globalAudioLoader.PreloadSFX(path)
	}
}

// UpdateAudio drains the pending SFX queue and manages music transitions.
// This is the only system that touches the audio device; gameplay systems
// just enqueue.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	// Handle music fade out
	if globalFadeTimer > 0 {
		globalFadeTimer--
		if globalFadeDuration > 0 {
			progress := float64(globalFadeTimer) / float64(globalFadeDuration)
			if globalMusicPlayer != nil {
				globalMusicPlayer.SetVolume(globalFadeStart * progress)
			}
		}
		if globalFadeTimer == 0 && globalMusicPlayer != nil {
			_ = globalMusicPlayer.Close()
			globalMusicPlayer = nil
			globalMusicKey = ""
		}
	}

	entry, ok := components.Audio.First(e.World)
	if ok {
		audioData := components.Audio.Get(entry)
		audioData.Context = globalAudioContext
		for _, soundID := range audioData.PendingSFX {
			playSFX(soundID)
		}
		audioData.PendingSFX = audioData.PendingSFX[:0]
	}
}

func playSFX(soundID cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}

	path, ok := cfg.Sound.SFXPaths[soundID]
	if !ok {
		return
	}

	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		return
	}

	player.SetVolume(globalSFXVolume)
	player.Play()
}

// PlayMusic starts playing the given music file (looping).
func PlayMusic(e *ecs.ECS, musicPath string) {
	initGlobalAudio()

	if globalMusicKey == musicPath {
		return
	}

	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
	}

	player, err := globalAudioLoader.LoadMusic(musicPath)
	if err != nil {
		return
	}

	player.SetVolume(globalMusicVolume)
	player.Play()

	globalMusicPlayer = player
	globalMusicKey = musicPath
	globalFadeTimer = 0
}

// FadeOutMusic starts a music fade out transition
func FadeOutMusic(e *ecs.ECS) {
	if globalMusicPlayer == nil {
		return
	}
	globalFadeTimer = cfg.Audio.MusicFadeFrames
	globalFadeDuration = cfg.Audio.MusicFadeFrames
	globalFadeStart = globalMusicVolume
}

// StopMusic immediately stops the current music
func StopMusic(e *ecs.ECS) {
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
		globalMusicKey = ""
	}
	globalFadeTimer = 0
}

// PauseMusic pauses the current music playback
func PauseMusic(e *ecs.ECS) {
	if globalMusicPlayer != nil {
		globalMusicPlayer.Pause()
	}
}

// ResumeMusic resumes paused music playback
func ResumeMusic(e *ecs.ECS) {
	if globalMusicPlayer != nil {
		globalMusicPlayer.Play()
	}
}

// PlaySFX queues a sound effect. The queue is drained on the next audio
// tick; without one the request is simply dropped, never an error.
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetMusicVolume changes the music volume (0.0 - 1.0)
func SetMusicVolume(e *ecs.ECS, volume float64) {
	globalMusicVolume = volume
	if globalMusicPlayer != nil && globalFadeTimer == 0 {
		globalMusicPlayer.SetVolume(volume)
	}
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(e *ecs.ECS, volume float64) {
	globalSFXVolume = volume
}

// GetMusicVolume returns the current music volume (0.0 - 1.0)
func GetMusicVolume() float64 {
	return globalMusicVolume
}

// GetSFXVolume returns the current SFX volume (0.0 - 1.0)
func GetSFXVolume() float64 {
	return globalSFXVolume
}

// GetOrCreateAudio returns the singleton Audio component for this ECS,
// creating it if needed. The audio device itself is initialized lazily by
// UpdateAudio, not here.
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			MusicVolume: globalMusicVolume,
			SFXVolume:   globalSFXVolume,
			PendingSFX:  make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
