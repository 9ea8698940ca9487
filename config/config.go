package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// PlayerConfig contains all player-related configuration values.
// Speeds and sizes are in tile units per frame unless noted.
type PlayerConfig struct {
	// Movement
	WalkSpeed     float64
	ClimbSpeed    float64
	JumpSpeed     float64 // negative is up
	HangJumpSpeed float64 // jump impulse when leaving a ledge hang

	// Health
	Health       int
	InvulnFrames int

	// Combat
	StompDamage       int     // damage dealt by landing on an enemy
	StompBounce       float64 // vertical impulse after a stomp (negative is up)
	HurtPop           float64 // vertical impulse when taking contact damage
	HitStunFrames     int     // frames of knockback before input regains control
	KnockbackFriction float64 // per-frame decay of the knockback shove

	// Dimensions (tile units)
	Width  float64
	Height float64

	// Death
	RespawnDelayFrames int
	MaxDeaths          int // deaths before the run is over
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name   string
	Health int
	Speed  float64
	Damage int

	// Behavior
	Flies        bool    // ignores gravity, wanders freely
	Hops         bool    // moves in short gravity-bound hops
	HopSpeed     float64 // vertical impulse for a hop (negative is up)
	HopCooldown  int     // frames between hops
	TurnAtLedges bool    // reverse instead of walking off an edge

	// Dimensions (tile units)
	Width  float64
	Height float64

	// Visual
	TintColor color.RGBA
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types map[string]EnemyTypeConfig

	// Frames an enemy flashes after taking a stomp
	HitFlashFrames int

	// Per-frame ground friction applied to a hopper after it lands
	LandingFriction float64
}

// DungeonConfig contains procedural assembly configuration
type DungeonConfig struct {
	TargetRooms      int
	MaxAttempts      int
	Seed             int64 // 0 means time-based
	DoorClosedFrames int   // how long a door stays shut behind the player
	RoomsDir         string
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing    float64 // how fast the camera follows the player (0.0-1.0)
	LookAheadDistanceX float64 // max horizontal look-ahead offset in pixels
	LookAheadSmoothing float64
}

// UIConfig contains HUD configuration values
type UIConfig struct {
	HealthBarWidth  float64
	HealthBarHeight float64
	HealthBarMargin float64

	HealthBarBgColor color.RGBA
	HealthBarFgColor color.RGBA
	HUDTextColor     color.RGBA

	HUDFontSize float64
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	Title string
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuOptions       []string
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuOptions       []string
}

// RenderConfig contains the tile palette and entity draw colors
type RenderConfig struct {
	StoneColor    color.RGBA
	WoodColor     color.RGBA
	LadderColor   color.RGBA
	PlatformColor color.RGBA
	DoorColor     color.RGBA
	PlayerColor   color.RGBA
	Background    color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu  bool // skip menu and go directly to the dungeon
	ShowBoxes bool // draw collision boxes
}

// Config holds general game configuration
type Config struct {
	Width    int
	Height   int
	TileSize int // pixels per tile
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Dungeon DungeonConfig
var Camera CameraConfig
var UI UIConfig
var Menu MenuConfig
var Pause PauseConfig
var GameOver GameOverConfig
var Render RenderConfig
var Debug DebugConfig

// Default is the render layer every scene draws on.
var Default = ecs.LayerDefault

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:    640,
		Height:   360,
		TileSize: 16,
	}

	// Player Config
	Player = PlayerConfig{
		WalkSpeed:     0.04,
		ClimbSpeed:    0.03,
		JumpSpeed:     -0.19,
		HangJumpSpeed: -0.17,

		Health:       60,
		InvulnFrames: 45,

		StompDamage:       10,
		StompBounce:       -0.12,
		HurtPop:           -0.08,
		HitStunFrames:     12,
		KnockbackFriction: 0.006,

		Width:  0.6,
		Height: 0.8,

		RespawnDelayFrames: 45,
		MaxDeaths:          3,
	}

	// Enemy Config
	slimeType := EnemyTypeConfig{
		Name:        "Slime",
		Health:      20,
		Speed:       0.02,
		Damage:      15,
		Hops:        true,
		HopSpeed:    -0.12,
		HopCooldown: 90,
		Width:       10.0 / 16.0,
		Height:      10.0 / 16.0,
		TintColor:   Green,
	}

	batType := EnemyTypeConfig{
		Name:      "Bat",
		Health:    10,
		Speed:     0.03,
		Damage:    10,
		Flies:     true,
		Width:     14.0 / 16.0,
		Height:    8.0 / 16.0,
		TintColor: Purple,
	}

	wormType := EnemyTypeConfig{
		Name:         "Worm",
		Health:       30,
		Speed:        0.015,
		Damage:       20,
		TurnAtLedges: true,
		Width:        14.0 / 16.0,
		Height:       6.0 / 16.0,
		TintColor:    LightRed,
	}

	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			"Slime": slimeType,
			"Bat":   batType,
			"Worm":  wormType,
		},
		HitFlashFrames:  5,
		LandingFriction: 0.01,
	}

	// Dungeon Config (Seed and TargetRooms can be overridden by CLI flags)
	Dungeon = DungeonConfig{
		TargetRooms:      12,
		MaxAttempts:      1000,
		Seed:             0,
		DoorClosedFrames: 180,
		RoomsDir:         "rooms",
	}

	// Camera Config
	Camera = CameraConfig{
		FollowSmoothing:    0.1,
		LookAheadDistanceX: 48.0,
		LookAheadSmoothing: 0.05,
	}

	// UI Config
	UI = UIConfig{
		HealthBarWidth:  120,
		HealthBarHeight: 10,
		HealthBarMargin: 8,

		HealthBarBgColor: color.RGBA{R: 40, G: 40, B: 40, A: 255},
		HealthBarFgColor: Green,
		HUDTextColor:     White,

		HUDFontSize: 13,
	}

	// Menu Config
	Menu = MenuConfig{
		Title: "STONEDELVE",
	}

	// Game Over Config
	Pause = PauseConfig{
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuOptions:       []string{"Resume", "Fullscreen", "Abandon Delve"},
	}

	GameOver = GameOverConfig{
		BackgroundColor:   color.RGBA{R: 40, G: 10, B: 10, A: 255},
		TitleColor:        LightRed,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            100,
		MenuStartY:        160,
		MenuItemHeight:    30,
		MenuOptions:       []string{"Delve Again", "Main Menu"},
	}

	// Render Config
	Render = RenderConfig{
		StoneColor:    color.RGBA{R: 95, G: 95, B: 105, A: 255},
		WoodColor:     color.RGBA{R: 130, G: 95, B: 55, A: 255},
		LadderColor:   color.RGBA{R: 200, G: 170, B: 90, A: 255},
		PlatformColor: color.RGBA{R: 170, G: 130, B: 80, A: 255},
		DoorColor:     color.RGBA{R: 80, G: 55, B: 35, A: 255},
		PlayerColor:   color.RGBA{R: 235, G: 235, B: 245, A: 255},
		Background:    color.RGBA{R: 24, G: 22, B: 30, A: 255},
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu:  false,
		ShowBoxes: false,
	}
}
