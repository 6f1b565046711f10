// Package config provides YAML-based game configuration loading and
// difficulty presets for the arena platform.
package config

// ArenaConfig contains all tuning for the arena simulation. Every scalar the
// simulation core consumes lives here; the core itself carries no constants
// beyond geometry invariants.
type ArenaConfig struct {
	World      WorldConfig                   `yaml:"world"`
	Physics    PhysicsConfig                 `yaml:"physics"`
	Player     PlayerConfig                  `yaml:"player"`
	Bullet     BulletConfig                  `yaml:"bullet"`
	Enemy      EnemyScalingConfig            `yaml:"enemy"`
	Spawner    SpawnerConfig                 `yaml:"spawner"`
	Archetypes map[string]ArchetypeModifiers `yaml:"archetypes"`
	Rewards    RewardConfig                  `yaml:"rewards"`
	Difficulty DifficultyConfig              `yaml:"difficulty"`
}

// WorldConfig defines arena geometry and respawn timing.
type WorldConfig struct {
	Width                float64 `yaml:"width"`
	Height               float64 `yaml:"height"`
	SpawnMargin          float64 `yaml:"spawn_margin"`           // Border kept free of spawn positions
	TeleporterCooldownMS float64 `yaml:"teleporter_cooldown_ms"` // Delay before a teleporter materializes a spawner
}

// PhysicsConfig defines shared movement parameters.
type PhysicsConfig struct {
	Friction float64 `yaml:"friction"` // Fraction of velocity lost per second
	Deadzone float64 `yaml:"deadzone"` // Velocity components below this are zeroed
}

// PlayerConfig defines the player's starting stats.
type PlayerConfig struct {
	Health          float64 `yaml:"health"`
	MaxSpeed        float64 `yaml:"max_speed"`
	Power           float64 `yaml:"power"`          // Bullet damage
	Thrust          float64 `yaml:"thrust"`         // Acceleration magnitude per thrust action
	RotationSpeed   float64 `yaml:"rotation_speed"` // Degrees per rotate action
	InvincibilityMS float64 `yaml:"invincibility_ms"`
	HitboxSize      float64 `yaml:"hitbox_size"`
}

// BulletConfig defines projectile parameters.
type BulletConfig struct {
	HitboxSize      float64 `yaml:"hitbox_size"`
	Speed           float64 `yaml:"speed"`
	ExplosionLifeMS float64 `yaml:"explosion_life_ms"`
}

// EnemyScalingConfig defines how enemy stats derive from difficulty.
// Each stat is base + per_difficulty * difficulty, then scaled by the
// archetype modifier (a percentage, 100 = base).
type EnemyScalingConfig struct {
	HitboxSize            float64 `yaml:"hitbox_size"`
	BaseHealth            float64 `yaml:"base_health"`
	HealthPerDifficulty   float64 `yaml:"health_per_difficulty"`
	BaseDamage            float64 `yaml:"base_damage"`
	DamagePerDifficulty   float64 `yaml:"damage_per_difficulty"`
	BaseSpeed             float64 `yaml:"base_speed"`
	SpeedPerDifficulty    float64 `yaml:"speed_per_difficulty"`
	BaseForce             float64 `yaml:"base_force"`
	ForcePerDifficulty    float64 `yaml:"force_per_difficulty"`
	BaseAimRange          float64 `yaml:"base_aim_range"`
	AimRangePerDifficulty float64 `yaml:"aim_range_per_difficulty"`
	CooldownBaseMS        float64 `yaml:"cooldown_base_ms"`
	CooldownPerDifficulty float64 `yaml:"cooldown_per_difficulty_ms"`
	CooldownFloorMS       float64 `yaml:"cooldown_floor_ms"`
	InvincibilityMS       float64 `yaml:"invincibility_ms"`
	SpawnceptionMaxIter   int     `yaml:"spawnception_max_iteration"`
	SpawnceptionPrimeMS   float64 `yaml:"spawnception_prime_ms"` // Head start on the nested fabricator cooldown
}

// SpawnerConfig defines spawner stats and spawn timing.
type SpawnerConfig struct {
	HitboxSize          float64 `yaml:"hitbox_size"`
	BaseHealth          float64 `yaml:"base_health"`
	HealthPerDifficulty float64 `yaml:"health_per_difficulty"`
	TimerBaseMS         float64 `yaml:"timer_base_ms"`
	TimerPerDifficulty  float64 `yaml:"timer_per_difficulty_ms"`
	TimerFloorMS        float64 `yaml:"timer_floor_ms"`
	InvincibilityMS     float64 `yaml:"invincibility_ms"`
}

// ArchetypeModifiers scales a base enemy stat line into an archetype.
// All values are percentages where 100.0 means "unchanged".
type ArchetypeModifiers struct {
	Health   float64 `yaml:"health"`
	Damage   float64 `yaml:"damage"`
	Speed    float64 `yaml:"speed"`
	Force    float64 `yaml:"force"`
	Size     float64 `yaml:"size"`
	Cooldown float64 `yaml:"cooldown"`
	Reward   float64 `yaml:"reward"`
}

// RewardConfig defines reward-shaping scalars consumed by the training-facing
// step reward. These are tuning knobs, not part of the simulation contract.
type RewardConfig struct {
	DecayPerSecond  float64 `yaml:"decay_per_second"` // Constant time pressure
	HitPenalty      float64 `yaml:"hit_penalty"`      // Applied when the player takes damage
	HealScale       float64 `yaml:"heal_scale"`       // Multiplier on heal amounts gained
	DifficultyBonus float64 `yaml:"difficulty_bonus"` // Granted when the arena escalates
}

// DifficultyConfig defines the starting difficulty and whether the arena
// escalates when all spawners are cleared.
type DifficultyConfig struct {
	Initial    int  `yaml:"initial"`
	Escalation bool `yaml:"escalation"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialDifficultyForPreset returns the starting difficulty for a preset.
func InitialDifficultyForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 0
	case DifficultyNormal:
		return 2
	case DifficultyHard:
		return 5
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables escalation.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyArenaPreset modifies the config based on a difficulty preset.
func ApplyArenaPreset(cfg *ArenaConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Escalation = false
		return
	}
	cfg.Difficulty.Escalation = true
	cfg.Difficulty.Initial = InitialDifficultyForPreset(preset)
}
