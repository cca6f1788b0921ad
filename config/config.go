package config

import "image/color"

// StageConfig contains stage layout values used when the Tiled map does not
// override them.
type StageConfig struct {
	FloorY    float64 // Y of the floor line the player walks on
	CatwalkY  float64 // Standing Y of the boss on the catwalk
	MinX      float64 // Left pacing boundary for the boss
	MaxX      float64 // Right pacing boundary for the boss
	MapPath   string  // Embedded Tiled map path
	WallColor color.RGBA
}

// RigPartSpec describes one body part of the boss rig, positioned relative
// to the boss center. Roles are not assigned here; they are classified from
// these positions at spawn time.
type RigPartSpec struct {
	Name   string
	LocalX float64
	LocalY float64
	Width  float64
	Height float64
	Color  color.RGBA
}

// BossConfig contains all boss locomotion, crouch and rig configuration
type BossConfig struct {
	// Locomotion
	MoveSpeed             float64
	ChangeDirectionChance float64 // Per-frame probability of flipping direction
	PauseChance           float64 // Per-frame probability of stopping in place
	PauseDuration         int     // frames

	// Crouch
	CrouchChance         float64 // Per-frame probability of starting a crouch
	CrouchDuration       int     // frames
	CrouchScaleFactor    float64 // vertical scale divisor while crouched
	CrouchYOffset        float64 // added to standing Y while crouched (Y-down)
	CrouchHeadDrop       float64 // head offset drop while crouched
	CrouchUpperDropScale float64 // torso/weapon drop as a fraction of head drop

	// Rig layout and classification heuristics
	Parts            []RigPartSpec
	WeaponLateralMin float64 // |localX| above which a mid part reads as the weapon
	LegCutoffY       float64 // localY at or below center that reads as a leg

	// Collision
	CollisionWidth   float64
	CollisionHeight  float64
	CrouchHitboxDrop float64 // hitbox top shift while crouched

	BaseScale float64
}

// FireConfig contains fire-origin and height-gate configuration
type FireConfig struct {
	// Fixed offsets from boss center to the weapon muzzle
	MuzzleOffsetX      float64 // applied along the facing direction
	MuzzleOffsetY      float64
	CrouchMuzzleDrop   float64 // extra Y while crouched
	BarrelTipOffsetX   float64 // correction applied over the weapon part position
	BarrelTipOffsetY   float64
	CrouchBarrelDrop   float64 // further correction while crouched
	HighThresholdY     float64 // origins at or above this row classify as High
	LowShotDrop        float64 // extra Y a low-cued shot spawns below the muzzle
	SwitchCooldown     int     // frames between opposite-height shots
	ShotSpeed          float64
	ShotDamage         int
	ShotWidth          float64
	ShotHeight         float64
	LowShotSpeedScale  float64 // low shots travel flatter and slower
	HighShotSpeedScale float64
}

// BossHealthConfig contains the boss health pool configuration
type BossHealthConfig struct {
	MaxHealth     float64
	DefaultLines  int // expected line count before a track is loaded
	DefeatFrames  int // defeat sequence length
	DefeatShake   float64
	DefeatShakeT  int
	DamageShake   float64
	DamageShakeT  int
	FlashDuration int
}

// PlayerConfig contains player movement and combat configuration
type PlayerConfig struct {
	MoveSpeed       float64
	Health          int
	InvulnFrames    int
	ShotSpeed       float64
	ShotCooldown    int // frames between player shots
	ShotDamage      int
	Width           float64
	Height          float64
	ShotWidth       float64
	ShotHeight      float64
	HighShotOffsetY float64 // muzzle height for an aimed-high shot
	LowShotOffsetY  float64
}

// ScreenShakeConfig contains screen shake intensities and durations
type ScreenShakeConfig struct {
	PlayerDamageIntensity float64
	PlayerDamageDuration  int
	LineHitIntensity      float64
	LineHitDuration       int
}

// FloatingTextConfig contains floating damage number configuration
type FloatingTextConfig struct {
	RiseDistance float64
	Duration     float32 // seconds, drives the gween tween
	Color        color.RGBA
	FinalColor   color.RGBA
}

// HUDConfig contains HUD bar and lyric display configuration
type HUDConfig struct {
	BarWidth     float64
	BarHeight    float64
	BarMargin    float64
	BarBack      color.RGBA
	BarFill      color.RGBA
	BarLow       color.RGBA
	LyricY       float64
	LyricColor   color.RGBA
	LyricDim     color.RGBA
	DrainSmooth  float64 // displayed-bar catch-up factor per frame
	LowThreshold float64 // fraction of max below which the bar turns red
}

// AudioConfig contains audio system configuration
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
	MusicFadeFrames int
}

// SoundID identifies a sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundPlayerShot
	SoundBossShot
	SoundHit
	SoundLineClear
	SoundLineMiss
	SoundDefeat
	SoundMenuNavigate
	SoundMenuSelect
)

// SoundConfig maps sound effects to their file paths
type SoundConfig struct {
	SFXPaths map[SoundID]string
}

// MenuConfig contains the track-select menu configuration
type MenuConfig struct {
	Title         string
	TitleColor    color.RGBA
	EntryColor    color.RGBA
	SelectedColor color.RGBA
	HintColor     color.RGBA
	Hint          string
}

// GameOverConfig contains the gameover/victory overlay configuration
type GameOverConfig struct {
	OverlayColor  color.RGBA
	VictoryTitle  string
	DefeatTitle   string
	VictoryColor  color.RGBA
	DefeatColor   color.RGBA
	ContinueHint  string
	HintColor     color.RGBA
	TitleY        float64
	StatsY        float64
	HintY         float64
}

// TrackListConfig contains embedded track file configuration
type TrackListConfig struct {
	Dir          string
	DefaultTrack string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip the track select menu and load the default track
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Stage StageConfig
var Boss BossConfig
var Fire FireConfig
var BossHealth BossHealthConfig
var Player PlayerConfig
var ScreenShake ScreenShakeConfig
var FloatingText FloatingTextConfig
var HUD HUDConfig
var Audio AudioConfig
var Sound SoundConfig
var Menu MenuConfig
var GameOver GameOverConfig
var Tracks TrackListConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Stage = StageConfig{
		FloorY:    320,
		CatwalkY:  120,
		MinX:      80,
		MaxX:      560,
		MapPath:   "levels/stage.tmx",
		WallColor: color.RGBA{R: 50, G: 44, B: 66, A: 255},
	}

	Boss = BossConfig{
		MoveSpeed:             1.2,
		ChangeDirectionChance: 0.01,
		PauseChance:           0.008,
		PauseDuration:         45,

		CrouchChance:         0.005,
		CrouchDuration:       90,
		CrouchScaleFactor:    1.35,
		CrouchYOffset:        10,
		CrouchHeadDrop:       8,
		CrouchUpperDropScale: 0.8,

		Parts: []RigPartSpec{
			{Name: "head", LocalX: 0, LocalY: -28, Width: 14, Height: 14, Color: color.RGBA{R: 220, G: 200, B: 255, A: 255}},
			{Name: "torso", LocalX: 0, LocalY: -8, Width: 20, Height: 24, Color: color.RGBA{R: 140, G: 80, B: 200, A: 255}},
			{Name: "cannon", LocalX: 16, LocalY: -12, Width: 22, Height: 8, Color: color.RGBA{R: 90, G: 90, B: 110, A: 255}},
			{Name: "leg_l", LocalX: -6, LocalY: 12, Width: 8, Height: 16, Color: color.RGBA{R: 70, G: 50, B: 110, A: 255}},
			{Name: "leg_r", LocalX: 6, LocalY: 12, Width: 8, Height: 16, Color: color.RGBA{R: 70, G: 50, B: 110, A: 255}},
		},
		WeaponLateralMin: 10,
		LegCutoffY:       0,

		CollisionWidth:   28,
		CollisionHeight:  56,
		CrouchHitboxDrop: 14,

		BaseScale: 1.0,
	}

	Fire = FireConfig{
		MuzzleOffsetX:      18,
		MuzzleOffsetY:      -12,
		CrouchMuzzleDrop:   12,
		BarrelTipOffsetX:   12,
		BarrelTipOffsetY:   -2,
		CrouchBarrelDrop:   6,
		HighThresholdY:     120,
		LowShotDrop:        20,
		SwitchCooldown:     48,
		ShotSpeed:          3.0,
		ShotDamage:         1,
		ShotWidth:          8,
		ShotHeight:         8,
		LowShotSpeedScale:  0.85,
		HighShotSpeedScale: 1.0,
	}

	BossHealth = BossHealthConfig{
		MaxHealth:     1000,
		DefaultLines:  24,
		DefeatFrames:  90,
		DefeatShake:   8.0,
		DefeatShakeT:  45,
		DamageShake:   3.0,
		DamageShakeT:  12,
		FlashDuration: 8,
	}

	Player = PlayerConfig{
		MoveSpeed:       2.4,
		Health:          3,
		InvulnFrames:    60,
		ShotSpeed:       4.0,
		ShotCooldown:    12,
		ShotDamage:      1,
		Width:           16,
		Height:          24,
		ShotWidth:       4,
		ShotHeight:      10,
		HighShotOffsetY: -20,
		LowShotOffsetY:  -8,
	}

	ScreenShake = ScreenShakeConfig{
		PlayerDamageIntensity: 5.0,
		PlayerDamageDuration:  20,
		LineHitIntensity:      2.0,
		LineHitDuration:       8,
	}

	FloatingText = FloatingTextConfig{
		RiseDistance: 36,
		Duration:     0.8,
		Color:        Yellow,
		FinalColor:   Magenta,
	}

	HUD = HUDConfig{
		BarWidth:     400,
		BarHeight:    10,
		BarMargin:    12,
		BarBack:      color.RGBA{R: 40, G: 40, B: 40, A: 255},
		BarFill:      color.RGBA{R: 200, G: 60, B: 220, A: 255},
		BarLow:       color.RGBA{R: 255, G: 60, B: 60, A: 255},
		LyricY:       338,
		LyricColor:   White,
		LyricDim:     color.RGBA{R: 140, G: 140, B: 150, A: 255},
		DrainSmooth:  0.12,
		LowThreshold: 0.2,
	}

	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.7,
		DefaultSFXVol:   0.8,
		MusicFadeFrames: 45,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundPlayerShot:   "audio/sfx/player_shot.ogg",
			SoundBossShot:     "audio/sfx/boss_shot.ogg",
			SoundHit:          "audio/sfx/hit.ogg",
			SoundLineClear:    "audio/sfx/line_clear.ogg",
			SoundLineMiss:     "audio/sfx/line_miss.ogg",
			SoundDefeat:       "audio/sfx/defeat.ogg",
			SoundMenuNavigate: "audio/sfx/menu_nav.ogg",
			SoundMenuSelect:   "audio/sfx/menu_select.ogg",
		},
	}

	Menu = MenuConfig{
		Title:         "LYRICFIRE",
		TitleColor:    Magenta,
		EntryColor:    DarkBlue,
		SelectedColor: LightBlue,
		HintColor:     White,
		Hint:          "ENTER to play - UP/DOWN to choose a track",
	}

	GameOver = GameOverConfig{
		OverlayColor: BlackOverlay,
		VictoryTitle: "TRACK CLEARED",
		DefeatTitle:  "RUN OVER",
		VictoryColor: Green,
		DefeatColor:  LightRed,
		ContinueHint: "Press ENTER to return to the menu",
		HintColor:    White,
		TitleY:       140,
		StatsY:       180,
		HintY:        250,
	}

	Tracks = TrackListConfig{
		Dir:          "tracks",
		DefaultTrack: "neon_requiem",
	}

	Debug = DebugConfig{
		SkipMenu: false,
	}
}
