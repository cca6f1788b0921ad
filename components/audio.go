package components

import (
	cfg "github.com/automoto/lyricfire/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects raised by gameplay systems. The queue is
// drained by the audio system; gameplay never touches the audio device
// directly, so a world without one still runs.
type AudioData struct {
	Context     *audio.Context
	MusicVolume float64
	SFXVolume   float64
	PendingSFX  []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
