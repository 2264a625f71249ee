package config

import (
	_ "embed"
)

//go:embed defaults/tower.yaml
var defaultTowerYAML []byte

// DefaultTowerConfig returns the default tower configuration.
func DefaultTowerConfig() Tower {
	return Tower{
		Screen: ScreenConfig{
			Width:  1280,
			Height: 720,
		},
		Physics: PhysicsConfig{
			Gravity: 2000,
		},
		Player: PlayerConfig{
			Width:            30,
			Height:           40,
			Speed:            175,
			Jump:             -928,
			ClimbSpeed:       150,
			LadderJumpFactor: 0.7,
		},
		Enemy: EnemyConfig{
			Width:              30,
			Height:             30,
			Speed:              100,
			DirectionChangeMin: 1.2, // 60 frames at 50 FPS
			DirectionChangeMax: 3.6, // 180 frames at 50 FPS
			AlertDuration:      7.0,
			CooldownDuration:   2.0,
			RaycastInterval:    0.2,
			VerticalTolerance:  150,
			DetectionRange:     640,
			RayStep:            8,
			EdgeLookahead:      4,
			ProbeSize:          6,
			BurstShotCount:     3,
			BurstShotInterval:  0.5,
			BurstCooldown:      3.0,
		},
		Machinegunner: MachinegunnerConfig{
			Width:         30,
			Height:        30,
			ShotsPerBurst: 6,
			ShotInterval:  0.25,
			BurstCooldown: 3.0,
		},
		Projectile: ProjectileConfig{
			Width:  8,
			Height: 8,
			Speed:  400,
		},
		Camera: CameraConfig{
			UpperBand:  240,
			LowerBand:  480,
			FallMargin: 64,
		},
		Level: LevelConfig{
			TileSize:   64,
			ExitWidth:  60,
			ExitHeight: 60,
		},
		Endless: EndlessConfig{
			HeightGoal:     6400, // 100 tiles
			GenerateAhead:  720,
			CullMargin:     720,
			EnemyChance:    0.35,
			GunnerChance:   0.1,
			ObstacleChance: 0.15,
			MinStrip:       3,
			MaxStrip:       7,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "height",
				MaxAt: 6400,
			},
			Scaling: ScalingConfig{
				SpawnMultiplier: 1.0,
				StripReduction:  2,
			},
		},
	}
}

// DefaultTowerYAML returns the embedded default configuration file.
// The CLI writes it out for users who want a starting point.
func DefaultTowerYAML() []byte {
	return defaultTowerYAML
}
