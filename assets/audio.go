package assets

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// audioDir is where sound files are looked up at runtime. Audio ships
// outside the binary so tracks can be added without rebuilding.
const audioDir = "assets"

// AudioLoader handles loading and caching of audio assets
type AudioLoader struct {
	sfxCache map[string][]byte // Cache decoded audio bytes for SFX
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[string][]byte),
		context:  ctx,
	}
}

// PreloadSFX decodes a sound effect and caches it without creating a player.
// Call this at startup to avoid decode lag on first play.
func (l *AudioLoader) PreloadSFX(path string) error {
	if _, ok := l.sfxCache[path]; ok {
		return nil
	}

	decoded, err := l.readAndDecode(path)
	if err != nil {
		return err
	}

	l.sfxCache[path] = decoded
	return nil
}

// LoadSFX loads a sound effect and returns a new player each time.
// SFX are cached as decoded bytes for instant playback.
func (l *AudioLoader) LoadSFX(path string) (*audio.Player, error) {
	if cachedBytes, ok := l.sfxCache[path]; ok {
		return l.context.NewPlayer(bytes.NewReader(cachedBytes))
	}

	decoded, err := l.readAndDecode(path)
	if err != nil {
		return nil, err
	}

	l.sfxCache[path] = decoded
	return l.context.NewPlayer(bytes.NewReader(decoded))
}

// LoadMusic returns a streaming player for music with looping.
// Music is not cached - it streams from the file.
func (l *AudioLoader) LoadMusic(path string) (*audio.Player, error) {
	data, err := os.ReadFile(filepath.Join(audioDir, path))
	if err != nil {
		return nil, fmt.Errorf("failed to read music file %s: %w", path, err)
	}

	stream, err := vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode music ogg %s: %w", path, err)
	}

	loop := audio.NewInfiniteLoop(stream, stream.Length())
	return l.context.NewPlayer(loop)
}

func (l *AudioLoader) readAndDecode(path string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(audioDir, path))
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	var stream io.Reader
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}
	return decoded, nil
}
