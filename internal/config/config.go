// Package config provides YAML-based tuning for the tower climber and
// difficulty management for its variants.
package config

import (
	"errors"
	"fmt"
)

// Tower contains every tuning constant of a tower session.
// A Tower value is built once per session and treated as read-only afterwards.
type Tower struct {
	Screen        ScreenConfig        `yaml:"screen"`
	Physics       PhysicsConfig       `yaml:"physics"`
	Player        PlayerConfig        `yaml:"player"`
	Enemy         EnemyConfig         `yaml:"enemy"`
	Machinegunner MachinegunnerConfig `yaml:"machinegunner"`
	Projectile    ProjectileConfig    `yaml:"projectile"`
	Camera        CameraConfig        `yaml:"camera"`
	Level         LevelConfig         `yaml:"level"`
	Endless       EndlessConfig       `yaml:"endless"`
	Difficulty    DifficultyConfig    `yaml:"difficulty"`
}

// ScreenConfig defines the logical viewport in world pixels.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PhysicsConfig defines world-wide physics. Units are pixels and seconds.
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"` // px/s², applied to every non-climbing actor
}

// PlayerConfig defines player movement parameters.
type PlayerConfig struct {
	Width            int     `yaml:"width"`
	Height           int     `yaml:"height"`
	Speed            float64 `yaml:"speed"`              // px/s
	Jump             float64 `yaml:"jump"`               // px/s, negative is upward
	ClimbSpeed       float64 `yaml:"climb_speed"`        // px/s
	LadderJumpFactor float64 `yaml:"ladder_jump_factor"` // fraction of Jump used when leaving a ladder sideways
}

// EnemyConfig defines the patrolling enemy and its alert state machine.
type EnemyConfig struct {
	Width              int     `yaml:"width"`
	Height             int     `yaml:"height"`
	Speed              float64 `yaml:"speed"`
	DirectionChangeMin float64 `yaml:"direction_change_min"` // seconds
	DirectionChangeMax float64 `yaml:"direction_change_max"` // seconds
	AlertDuration      float64 `yaml:"alert_duration"`
	CooldownDuration   float64 `yaml:"cooldown_duration"`
	RaycastInterval    float64 `yaml:"raycast_interval"`
	VerticalTolerance  int     `yaml:"vertical_tolerance"`
	DetectionRange     int     `yaml:"detection_range"`
	RayStep            int     `yaml:"ray_step"`
	EdgeLookahead      int     `yaml:"edge_lookahead"`
	ProbeSize          int     `yaml:"probe_size"`
	BurstShotCount     int     `yaml:"burst_shot_count"`
	BurstShotInterval  float64 `yaml:"burst_shot_interval"`
	BurstCooldown      float64 `yaml:"burst_cooldown"`
}

// MachinegunnerConfig defines the stationary turret.
type MachinegunnerConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	ShotsPerBurst int     `yaml:"shots_per_burst"`
	ShotInterval  float64 `yaml:"shot_interval"`
	BurstCooldown float64 `yaml:"burst_cooldown"`
}

// ProjectileConfig defines the projectile hitbox and speed.
type ProjectileConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// CameraConfig defines the vertical follow camera.
// Bands are screen-relative pixels from the top of the viewport.
type CameraConfig struct {
	UpperBand  int `yaml:"upper_band"`
	LowerBand  int `yaml:"lower_band"`
	FallMargin int `yaml:"fall_margin"`
}

// LevelConfig defines map geometry.
type LevelConfig struct {
	TileSize   int `yaml:"tile_size"`
	ExitWidth  int `yaml:"exit_width"`
	ExitHeight int `yaml:"exit_height"`
}

// EndlessConfig defines the procedurally generated tower.
type EndlessConfig struct {
	HeightGoal     int     `yaml:"height_goal"`    // px above spawn, 0 disables victory
	GenerateAhead  int     `yaml:"generate_ahead"` // px of world kept above the viewport
	CullMargin     int     `yaml:"cull_margin"`    // px below the viewport before culling
	EnemyChance    float64 `yaml:"enemy_chance"`
	GunnerChance   float64 `yaml:"gunner_chance"`
	ObstacleChance float64 `yaml:"obstacle_chance"`
	MinStrip       int     `yaml:"min_strip"` // tiles
	MaxStrip       int     `yaml:"max_strip"` // tiles
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a session.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "height", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Pixels climbed or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpawnMultiplier float64 `yaml:"spawn_multiplier"` // Multiplier added to spawn chances at max difficulty
	StripReduction  int     `yaml:"strip_reduction"`  // Tiles removed from generated strips at max difficulty
}

// Validate reports every tuning value that would break the simulation.
func (c Tower) Validate() error {
	var errs []error

	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("config: %s must be positive, got %v", name, v))
		}
	}

	positive("screen.width", float64(c.Screen.Width))
	positive("screen.height", float64(c.Screen.Height))
	positive("player.width", float64(c.Player.Width))
	positive("player.height", float64(c.Player.Height))
	positive("enemy.width", float64(c.Enemy.Width))
	positive("enemy.height", float64(c.Enemy.Height))
	positive("enemy.direction_change_min", c.Enemy.DirectionChangeMin)
	positive("enemy.alert_duration", c.Enemy.AlertDuration)
	positive("enemy.cooldown_duration", c.Enemy.CooldownDuration)
	positive("enemy.raycast_interval", c.Enemy.RaycastInterval)
	positive("enemy.ray_step", float64(c.Enemy.RayStep))
	positive("enemy.probe_size", float64(c.Enemy.ProbeSize))
	positive("enemy.burst_shot_count", float64(c.Enemy.BurstShotCount))
	positive("enemy.burst_shot_interval", c.Enemy.BurstShotInterval)
	positive("machinegunner.width", float64(c.Machinegunner.Width))
	positive("machinegunner.height", float64(c.Machinegunner.Height))
	positive("machinegunner.shots_per_burst", float64(c.Machinegunner.ShotsPerBurst))
	positive("machinegunner.shot_interval", c.Machinegunner.ShotInterval)
	positive("projectile.width", float64(c.Projectile.Width))
	positive("projectile.height", float64(c.Projectile.Height))
	positive("level.tile_size", float64(c.Level.TileSize))

	if c.Enemy.DirectionChangeMax < c.Enemy.DirectionChangeMin {
		errs = append(errs, fmt.Errorf("config: enemy.direction_change_max (%v) is below direction_change_min (%v)",
			c.Enemy.DirectionChangeMax, c.Enemy.DirectionChangeMin))
	}
	if c.Enemy.BurstCooldown < 0 || c.Machinegunner.BurstCooldown < 0 {
		errs = append(errs, errors.New("config: burst cooldowns must not be negative"))
	}
	if c.Camera.UpperBand < 0 || c.Camera.LowerBand > c.Screen.Height || c.Camera.UpperBand > c.Camera.LowerBand {
		errs = append(errs, fmt.Errorf("config: camera bands must satisfy 0 <= upper_band (%d) <= lower_band (%d) <= screen.height",
			c.Camera.UpperBand, c.Camera.LowerBand))
	}
	if c.Endless.MinStrip <= 0 || c.Endless.MaxStrip < c.Endless.MinStrip {
		errs = append(errs, fmt.Errorf("config: endless strips must satisfy 0 < min_strip (%d) <= max_strip (%d)",
			c.Endless.MinStrip, c.Endless.MaxStrip))
	}

	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (use easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
