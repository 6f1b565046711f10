package config

import (
	_ "embed"
)

//go:embed defaults/arena.yaml
var defaultArenaYAML []byte

// DefaultArenaConfig returns the default arena configuration. It mirrors
// defaults/arena.yaml and serves as the last-resort fallback if the embedded
// YAML fails to parse.
func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{
		World: WorldConfig{
			Width:                800,
			Height:               800,
			SpawnMargin:          100,
			TeleporterCooldownMS: 5000,
		},
		Physics: PhysicsConfig{
			Friction: 0.9,
			Deadzone: 1.0,
		},
		Player: PlayerConfig{
			Health:          100,
			MaxSpeed:        500,
			Power:           10,
			Thrust:          100,
			RotationSpeed:   15,
			InvincibilityMS: 600,
			HitboxSize:      20,
		},
		Bullet: BulletConfig{
			HitboxSize:      8,
			Speed:           200,
			ExplosionLifeMS: 500,
		},
		Enemy: EnemyScalingConfig{
			HitboxSize:            10,
			BaseHealth:            5,
			HealthPerDifficulty:   5,
			BaseDamage:            1,
			DamagePerDifficulty:   1,
			BaseSpeed:             400,
			SpeedPerDifficulty:    10,
			BaseForce:             100,
			ForcePerDifficulty:    1,
			BaseAimRange:          300,
			AimRangePerDifficulty: 10,
			CooldownBaseMS:        5000,
			CooldownPerDifficulty: 100,
			CooldownFloorMS:       500,
			InvincibilityMS:       100,
			SpawnceptionMaxIter:   0,
			SpawnceptionPrimeMS:   500,
		},
		Spawner: SpawnerConfig{
			HitboxSize:          40,
			BaseHealth:          100,
			HealthPerDifficulty: 10,
			TimerBaseMS:         5000,
			TimerPerDifficulty:  200,
			TimerFloorMS:        500,
			InvincibilityMS:     100,
		},
		Archetypes: map[string]ArchetypeModifiers{
			"rammer":           {Health: 100, Damage: 100, Speed: 100, Force: 100, Size: 100, Cooldown: 0, Reward: 100},
			"tankier_rammer":   {Health: 150, Damage: 100, Speed: 80, Force: 80, Size: 250, Cooldown: 0, Reward: 150},
			"explosive_rammer": {Health: 50, Damage: 200, Speed: 100, Force: 120, Size: 150, Cooldown: 0, Reward: 150},
			"gottagofast":      {Health: 20, Damage: 100, Speed: 150, Force: 10000, Size: 100, Cooldown: 0, Reward: 120},
			"pew_pew":          {Health: 80, Damage: 100, Speed: 90, Force: 90, Size: 100, Cooldown: 100, Reward: 140},
			"big_pew_pew":      {Health: 120, Damage: 150, Speed: 80, Force: 80, Size: 200, Cooldown: 120, Reward: 180},
			"spawnception":     {Health: 500, Damage: 0, Speed: 10, Force: 10, Size: 500, Cooldown: 1000, Reward: 300},
			// The boss row keeps damage/force as very large finite values so
			// observation encodings stay numeric.
			"longinus": {Health: 7000, Damage: 1e6, Speed: 100, Force: 1e6, Size: 800, Cooldown: 0, Reward: 1e6},
		},
		Rewards: RewardConfig{
			DecayPerSecond:  1.0,
			HitPenalty:      5.0,
			HealScale:       1.0,
			DifficultyBonus: 50.0,
		},
		Difficulty: DifficultyConfig{
			Initial:    0,
			Escalation: true,
		},
	}
}
