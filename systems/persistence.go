package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MusicVolume float64 `json:"musicVolume"`
	SFXVolume   float64 `json:"sfxVolume"`
	Muted       bool    `json:"muted"`
	Fullscreen  bool    `json:"fullscreen"`
}

// SavedResults records the best run per track, keyed by track name.
type SavedResults struct {
	BestLines map[string]int  `json:"bestLines"`
	Cleared   map[string]bool `json:"cleared"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "lyricfire",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// ApplySavedSettings applies loaded settings to the running game.
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}

	SetMusicVolume(e, saved.MusicVolume)
	SetSFXVolume(e, saved.SFXVolume)
	if saved.Muted {
		SetMusicVolume(e, 0)
		SetSFXVolume(e, 0)
	}
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference.
// Used during initial game startup before scenes are created.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	globalMusicVolume = saved.MusicVolume
	globalSFXVolume = saved.SFXVolume
	if saved.Muted {
		globalMusicVolume = 0
		globalSFXVolume = 0
	}
}

// LoadResults loads the per-track best results from disk.
func LoadResults() *SavedResults {
	results := &SavedResults{
		BestLines: map[string]int{},
		Cleared:   map[string]bool{},
	}
	if !gdataInitialized || gdataManager == nil {
		return results
	}

	data, err := gdataManager.LoadItem("results")
	if err != nil || len(data) == 0 {
		return results
	}
	if err := json.Unmarshal(data, results); err != nil {
		log.Printf("Warning: Could not parse saved results: %v", err)
	}
	if results.BestLines == nil {
		results.BestLines = map[string]int{}
	}
	if results.Cleared == nil {
		results.Cleared = map[string]bool{}
	}
	return results
}

// RecordResult merges one finished run into the saved results and writes
// them back. Only improvements are recorded.
func RecordResult(trackName string, linesCompleted int, cleared bool) {
	if trackName == "" {
		return
	}
	results := LoadResults()

	if linesCompleted > results.BestLines[trackName] {
		results.BestLines[trackName] = linesCompleted
	}
	if cleared {
		results.Cleared[trackName] = true
	}

	if !gdataInitialized || gdataManager == nil {
		return
	}
	data, err := json.Marshal(results)
	if err != nil {
		log.Printf("Warning: Could not serialize results: %v", err)
		return
	}
	if err := gdataManager.SaveItem("results", data); err != nil {
		log.Printf("Warning: Could not save results: %v", err)
	}
}
