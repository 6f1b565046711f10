package arena

import (
	"math/rand"

	"github.com/polygonkind/arena/internal/config"
)

// World owns one arena: the player, the hittable and bullet collections,
// pending teleporters and the difficulty counter. All entity creation and
// destruction flows through it, so independent worlds never share state and
// can run concurrently for batched training.
//
// Time is an internal millisecond clock advanced only by Update, making runs
// with a fixed seed and fixed dt fully deterministic.
type World struct {
	cfg config.ArenaConfig
	rng *rand.Rand

	now        float64 // Milliseconds since reset
	difficulty int
	score      float64
	tickReward float64
	alive      bool

	player      *Entity
	hittables   []*Entity
	bullets     []*Bullet
	teleporters []*Teleporter

	// Views over hittables, refreshed every tick. Never cached across
	// ticks; always a subset of hittables.
	spawners []*Entity
	enemies  []*Entity

	outOfSpawnersAt float64
}

// NewWorld builds an empty world. Reset must be called before stepping.
func NewWorld(cfg config.ArenaConfig, seed int64) *World {
	return &World{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Reset clears the arena and starts a fresh run at the given difficulty:
// the player at the center and difficulty+1 spawners at random positions.
func (w *World) Reset(difficulty int) Snapshot {
	w.now = 0
	w.difficulty = difficulty
	w.score = 0
	w.tickReward = 0
	w.alive = true
	w.player = nil
	w.hittables = nil
	w.bullets = nil
	w.teleporters = nil
	w.spawners = nil
	w.enemies = nil
	w.outOfSpawnersAt = 0

	center := V(w.cfg.World.Width/2, w.cfg.World.Height/2)
	w.player = w.spawnPlayer(center)
	for _, pos := range w.selectSpawnPositions(difficulty + 1) {
		w.spawnSpawner(pos, difficulty)
	}
	w.refreshViews()
	return w.Snapshot()
}

// Update advances the simulation by dt seconds: bullets first (so bullet
// sweeps observe pre-tick hittable positions), then hittables, then the
// spawn-cycle bookkeeping. Iteration goes over per-tick copies so entities
// created or destroyed mid-tick never skew traversal.
func (w *World) Update(dt float64) {
	w.now += dt * 1000

	var healthBefore float64
	if w.player != nil {
		healthBefore = w.player.Health
	}

	bullets := make([]*Bullet, len(w.bullets))
	copy(bullets, w.bullets)
	for _, b := range bullets {
		w.stepBullet(b, dt)
	}

	hittables := make([]*Entity, len(w.hittables))
	copy(hittables, w.hittables)
	for _, h := range hittables {
		if h.removed {
			continue
		}
		switch h.Kind {
		case KindEnemy:
			w.stepEnemy(h, dt)
		case KindSpawner:
			w.stepSpawner(h, dt)
		case KindHusk:
			w.stepHusk(h, dt)
		default:
			w.stepBody(h, dt)
		}
	}

	w.refreshViews()
	w.alive = w.player != nil && !w.player.removed && w.player.Health > 0

	w.tickReward -= w.cfg.Rewards.DecayPerSecond * dt
	if w.player != nil && w.player.Health < healthBefore {
		w.tickReward -= w.cfg.Rewards.HitPenalty
	}

	if !w.alive {
		return
	}

	if len(w.spawners) == 0 && len(w.teleporters) == 0 {
		w.beginRespawnCycle()
	}
	for _, t := range w.teleporters {
		t.TrySpawnWithCooldown(w, t.Pos, SpawnSpawner, w.difficulty, 0, noIteration)
	}
	w.refreshViews()
	if len(w.spawners) > 0 {
		w.teleporters = nil
	}
}

// beginRespawnCycle starts the awaiting-respawn state: the difficulty
// escalates (unless pinned by config) and one teleporter per planned spawn
// position starts counting down.
func (w *World) beginRespawnCycle() {
	w.outOfSpawnersAt = w.now
	if w.cfg.Difficulty.Escalation {
		w.difficulty++
		w.tickReward += w.cfg.Rewards.DifficultyBonus
	}
	for _, pos := range w.selectSpawnPositions(w.difficulty + 1) {
		w.teleporters = append(w.teleporters, &Teleporter{
			Fabricator: Fabricator{
				CooldownMS:  w.cfg.World.TeleporterCooldownMS,
				lastSpawnAt: w.now,
			},
			Pos:       pos,
			StartedAt: w.now,
		})
	}
}

// selectSpawnPositions picks n positions inside the spawn margins, rerolling
// any that land too close to the player. The reroll is attempt-bounded so a
// pathological margin configuration cannot loop forever.
func (w *World) selectSpawnPositions(n int) []Vec {
	m := w.cfg.World.SpawnMargin
	positions := make([]Vec, 0, n)
	for i := 0; i < n; i++ {
		var pos Vec
		for attempt := 0; attempt < 100; attempt++ {
			pos = V(
				m+w.rng.Float64()*(w.cfg.World.Width-2*m),
				m+w.rng.Float64()*(w.cfg.World.Height-2*m),
			)
			if w.player == nil || pos.Dist(w.player.Pos) >= 2*m {
				break
			}
		}
		positions = append(positions, pos)
	}
	return positions
}

func (w *World) refreshViews() {
	w.spawners = w.spawners[:0]
	w.enemies = w.enemies[:0]
	for _, h := range w.hittables {
		switch h.Kind {
		case KindSpawner:
			w.spawners = append(w.spawners, h)
		case KindEnemy:
			w.enemies = append(w.enemies, h)
		}
	}
}

func (w *World) playerAlive() bool {
	return w.player != nil && !w.player.removed && w.player.Health > 0
}

func (w *World) archetypeMod(a Archetype) config.ArchetypeModifiers {
	if mod, ok := w.cfg.Archetypes[a.configKey()]; ok {
		return mod
	}
	// Unknown rows fall back to an unmodified stat line
	return config.ArchetypeModifiers{Health: 100, Damage: 100, Speed: 100, Force: 100, Size: 100, Cooldown: 100, Reward: 100}
}

// Alive reports whether the current run is still going.
func (w *World) Alive() bool {
	return w.alive
}

// Score returns the accumulated display score.
func (w *World) Score() float64 {
	return w.score
}

// Difficulty returns the current escalation level.
func (w *World) Difficulty() int {
	return w.difficulty
}

// Now returns the internal clock in milliseconds since reset.
func (w *World) Now() float64 {
	return w.now
}

// Player returns the player entity, or nil after game over cleanup.
func (w *World) Player() *Entity {
	return w.player
}

// Hittables returns the live hittable collection. Callers must not mutate.
func (w *World) Hittables() []*Entity {
	return w.hittables
}

// Bullets returns the live bullet collection. Callers must not mutate.
func (w *World) Bullets() []*Bullet {
	return w.bullets
}

// Teleporters returns the pending teleporters. Callers must not mutate.
func (w *World) Teleporters() []*Teleporter {
	return w.teleporters
}

// Spawners returns this tick's spawner view.
func (w *World) Spawners() []*Entity {
	return w.spawners
}

// Enemies returns this tick's enemy view.
func (w *World) Enemies() []*Entity {
	return w.enemies
}

// TakeTickReward returns the reward shaped since the last call and zeroes
// the accumulator. Intended to be read once per step by training code.
func (w *World) TakeTickReward() float64 {
	r := w.tickReward
	w.tickReward = 0
	return r
}
