package config

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// VehicleConfig contains the motion model tunables and the vehicle's body.
type VehicleConfig struct {
	// Motion model
	Acceleration       float64 `mapstructure:"acceleration"`       // units/s²
	MaxSpeed           float64 `mapstructure:"maxSpeed"`           // units/s
	Friction           float64 `mapstructure:"friction"`           // decay per 1/60 s
	TurnSpeed          float64 `mapstructure:"turnSpeed"`          // rad/s
	MinSpeedForTurning float64 `mapstructure:"minSpeedForTurning"` // turning deadzone

	// Rigid body
	Mass           float64    `mapstructure:"mass"`
	HalfExtents    mgl64.Vec3 `mapstructure:"halfExtents"`
	Spawn          mgl64.Vec3 `mapstructure:"spawn"`
	SpawnYaw       float64    `mapstructure:"spawnYaw"`
	LinearDamping  float64    `mapstructure:"linearDamping"`
	AngularDamping float64    `mapstructure:"angularDamping"`
	FixedRotation  bool       `mapstructure:"fixedRotation"`
	Tag            string     `mapstructure:"tag"`

	// Presentation
	VisualOffset mgl64.Vec3 `mapstructure:"visualOffset"` // mesh pivot relative to collision box centre

	// Wheel clip playback
	ClipSpeedThreshold float64 `mapstructure:"clipSpeedThreshold"` // below this the clip is paused and rewound
	ClipTimeScale      float64 `mapstructure:"clipTimeScale"`      // clip timescale per unit of speed
	ClipDuration       float64 `mapstructure:"clipDuration"`       // seconds per wheel revolution at timescale 1
}

// Validate rejects tunables the motion model cannot honour.
func (v VehicleConfig) Validate() error {
	switch {
	case v.MaxSpeed <= 0:
		return fmt.Errorf("%w: vehicle.maxSpeed must be > 0, got %v", ErrInvalidConfig, v.MaxSpeed)
	case v.Acceleration < 0:
		return fmt.Errorf("%w: vehicle.acceleration must be >= 0, got %v", ErrInvalidConfig, v.Acceleration)
	case v.Friction <= 0 || v.Friction > 1:
		return fmt.Errorf("%w: vehicle.friction must be in (0, 1], got %v", ErrInvalidConfig, v.Friction)
	case v.TurnSpeed < 0:
		return fmt.Errorf("%w: vehicle.turnSpeed must be >= 0, got %v", ErrInvalidConfig, v.TurnSpeed)
	case v.MinSpeedForTurning < 0:
		return fmt.Errorf("%w: vehicle.minSpeedForTurning must be >= 0, got %v", ErrInvalidConfig, v.MinSpeedForTurning)
	}
	return nil
}

// CameraConfig contains chase and orbit camera behaviour.
type CameraConfig struct {
	Offset       mgl64.Vec3 `mapstructure:"offset"`       // local-space, rotated by the target orientation
	FollowBlend  float64    `mapstructure:"followBlend"`  // per-frame position lerp factor (0.0-1.0)
	SnapOnTarget bool       `mapstructure:"snapOnTarget"` // jump to the follow position when a target is set

	BaseFOV        float64 `mapstructure:"baseFOV"` // degrees
	FOVVariation   float64 `mapstructure:"fovVariation"`
	MaxSpeedForFOV float64 `mapstructure:"maxSpeedForFOV"`
	FOVBlend       float64 `mapstructure:"fovBlend"` // per-frame FOV lerp factor
	Near           float64 `mapstructure:"near"`
	Far            float64 `mapstructure:"far"`

	// Framing before any target exists
	InitialPosition mgl64.Vec3 `mapstructure:"initialPosition"`
	InitialLookAt   mgl64.Vec3 `mapstructure:"initialLookAt"`

	// Manual mode orbit controls
	OrbitMinDistance float64 `mapstructure:"orbitMinDistance"`
	OrbitMaxDistance float64 `mapstructure:"orbitMaxDistance"`
	OrbitDamping     float64 `mapstructure:"orbitDamping"`
	OrbitRotateSpeed float64 `mapstructure:"orbitRotateSpeed"` // radians per pixel dragged
	OrbitZoomSpeed   float64 `mapstructure:"orbitZoomSpeed"`   // zoom scale per wheel notch
}

// Validate rejects blend factors outside [0, 1] and a degenerate frustum.
func (c CameraConfig) Validate() error {
	switch {
	case c.FollowBlend < 0 || c.FollowBlend > 1:
		return fmt.Errorf("%w: camera.followBlend must be in [0, 1], got %v", ErrInvalidConfig, c.FollowBlend)
	case c.FOVBlend < 0 || c.FOVBlend > 1:
		return fmt.Errorf("%w: camera.fovBlend must be in [0, 1], got %v", ErrInvalidConfig, c.FOVBlend)
	case c.Near <= 0 || c.Far <= c.Near:
		return fmt.Errorf("%w: camera near/far must satisfy 0 < near < far, got %v/%v", ErrInvalidConfig, c.Near, c.Far)
	}
	return nil
}

// PhysicsConfig contains the rigid-body world settings.
type PhysicsConfig struct {
	Gravity      mgl64.Vec3 `mapstructure:"gravity"`
	FloorY       float64    `mapstructure:"floorY"`
	HasFloor     bool       `mapstructure:"hasFloor"`
	MaxDeltaTime float64    `mapstructure:"maxDeltaTime"` // clamp for a single step after a stall
	WorldSize    int        `mapstructure:"worldSize"`
	CellSize     int        `mapstructure:"cellSize"`
}

// ObstacleConfig contains obstacle defaults.
type ObstacleConfig struct {
	Tag             string     `mapstructure:"tag"`
	Visual          bool       `mapstructure:"visual"`
	DefaultPosition mgl64.Vec3 `mapstructure:"defaultPosition"`
	DefaultSize     mgl64.Vec3 `mapstructure:"defaultSize"`
}

// ObstacleEdit is a live edit pushed by the authoring tool. Nil fields are
// left untouched.
type ObstacleEdit struct {
	Name   string   `mapstructure:"name"`
	X      *float64 `mapstructure:"x"`
	Y      *float64 `mapstructure:"y"`
	Z      *float64 `mapstructure:"z"`
	Width  *float64 `mapstructure:"width"`
	Height *float64 `mapstructure:"height"`
	Depth  *float64 `mapstructure:"depth"`
	Remove bool     `mapstructure:"remove"` // drop the obstacle; other fields are ignored
}

// LevelConfig points at the obstacle layout.
type LevelConfig struct {
	Path          string `mapstructure:"path"`          // TMX path inside the assets FS
	ObstacleLayer string `mapstructure:"obstacleLayer"` // object group holding obstacles
}

// AudioConfig contains the engine tone settings.
type AudioConfig struct {
	Enabled    bool    `mapstructure:"enabled"`
	SampleRate int     `mapstructure:"sampleRate"`
	Volume     float64 `mapstructure:"volume"` // at full speed
	IdleVolume float64 `mapstructure:"idleVolume"`
	IdlePitch  float64 `mapstructure:"idlePitch"` // Hz
	MaxPitch   float64 `mapstructure:"maxPitch"`  // Hz at full speed
}

// UIConfig contains HUD styling.
type UIConfig struct {
	HUDFontSize float64    `mapstructure:"hudFontSize"`
	HUDMargin   float64    `mapstructure:"hudMargin"`
	HUDColor    color.RGBA `mapstructure:"-"`
	GridColor   color.RGBA `mapstructure:"-"`
	WallColor   color.RGBA `mapstructure:"-"`
	JeepColor   color.RGBA `mapstructure:"-"`
	GridExtent  int        `mapstructure:"gridExtent"`
	GridStep    int        `mapstructure:"gridStep"`
}

// DebugConfig contains the debug overlay switches.
type DebugConfig struct {
	Enabled       bool       `mapstructure:"enabled"`
	BodyColor     color.RGBA `mapstructure:"-"`
	LogCollisions bool       `mapstructure:"logCollisions"`
}

// Config holds general window configuration.
type Config struct {
	Width    int    `mapstructure:"width"`
	Height   int    `mapstructure:"height"`
	Title    string `mapstructure:"title"`
	LogLevel string `mapstructure:"logLevel"`
}

// Global configuration instances
var C *Config
var Vehicle VehicleConfig
var Camera CameraConfig
var Physics PhysicsConfig
var Obstacle ObstacleConfig
var Level LevelConfig
var Audio AudioConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Green      = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Orange     = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	GridGray   = color.RGBA{R: 70, G: 80, B: 90, A: 255}
	WallBlue   = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Background = color.RGBA{R: 15, G: 25, B: 50, A: 255}
)

func init() {
	Reset()
}

// Reset restores every configuration block to its built-in defaults.
func Reset() {
	C = &Config{
		Width:    960,
		Height:   540,
		Title:    "jeepdrive",
		LogLevel: "info",
	}

	Vehicle = VehicleConfig{
		Acceleration:       8.0,
		MaxSpeed:           15.0,
		Friction:           0.95,
		TurnSpeed:          1.8,
		MinSpeedForTurning: 0.1,

		Mass:           1,
		HalfExtents:    mgl64.Vec3{0.42, 0.4, 0.8},
		Spawn:          mgl64.Vec3{8.8, 5, 2.5},
		LinearDamping:  0.3,
		AngularDamping: 0.3,
		FixedRotation:  true,
		Tag:            "jeep",

		VisualOffset: mgl64.Vec3{0, -0.42, 0},

		ClipSpeedThreshold: 0.1,
		ClipTimeScale:      2.0,
		ClipDuration:       1.0,
	}

	Camera = CameraConfig{
		Offset:       mgl64.Vec3{0, 2, -5},
		FollowBlend:  0.1,
		SnapOnTarget: true,

		BaseFOV:        45,
		FOVVariation:   15,
		MaxSpeedForFOV: 15,
		FOVBlend:       0.05,
		Near:           0.1,
		Far:            1000,

		InitialPosition: mgl64.Vec3{20, 2, 5},
		InitialLookAt:   mgl64.Vec3{8.8, 0, 2.5},

		OrbitMinDistance: 2,
		OrbitMaxDistance: 10,
		OrbitDamping:     0.1,
		OrbitRotateSpeed: 0.01,
		OrbitZoomSpeed:   0.9,
	}

	Physics = PhysicsConfig{
		Gravity:      mgl64.Vec3{0, -9.82, 0},
		FloorY:       0,
		HasFloor:     true,
		MaxDeltaTime: 0.1,
		WorldSize:    256,
		CellSize:     4,
	}

	Obstacle = ObstacleConfig{
		Tag:             "wall",
		Visual:          true,
		DefaultPosition: mgl64.Vec3{2, 0, 8},
		DefaultSize:     mgl64.Vec3{4, 4, 16},
	}

	Level = LevelConfig{
		Path:          "levels/track.tmx",
		ObstacleLayer: "Obstacles",
	}

	Audio = AudioConfig{
		Enabled:    true,
		SampleRate: 44100,
		Volume:     0.35,
		IdleVolume: 0.05,
		IdlePitch:  55,
		MaxPitch:   220,
	}

	UI = UIConfig{
		HUDFontSize: 14,
		HUDMargin:   12,
		HUDColor:    White,
		GridColor:   GridGray,
		WallColor:   WallBlue,
		JeepColor:   Orange,
		GridExtent:  40,
		GridStep:    2,
	}

	Debug = DebugConfig{
		Enabled:   false,
		BodyColor: Green,
	}
}
