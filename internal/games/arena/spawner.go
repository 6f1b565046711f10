package arena

import "math"

// SpawnerState is the spawner variant payload. A spawner sits still, holds a
// fabricator, and is consumed the moment the fabricator actually produces.
type SpawnerState struct {
	// SpawnType is fixed at creation: the cube root of a random draw from
	// [0, difficulty^2], wrapped around the archetype count. Higher
	// difficulties skew the draw toward later (nastier) archetypes.
	SpawnType  Archetype
	Difficulty int
	Fabricator *Fabricator
}

func (w *World) spawnSpawner(pos Vec, difficulty int) *Entity {
	sc := w.cfg.Spawner
	d := float64(difficulty)
	health := sc.BaseHealth + d*sc.HealthPerDifficulty
	timer := math.Max(sc.TimerFloorMS, sc.TimerBaseMS-d*sc.TimerPerDifficulty)

	idx := int(math.Cbrt(float64(w.rng.Intn(difficulty*difficulty+1)))) % int(archetypeCount)
	st := &SpawnerState{
		SpawnType:  Archetype(idx),
		Difficulty: difficulty,
		Fabricator: &Fabricator{
			CooldownMS: timer,
			// Random stagger so simultaneous spawners don't fire in sync
			lastSpawnAt: w.now + float64(w.rng.Intn(int(timer)+1)),
		},
	}

	hb := BoxAround(pos, sc.HitboxSize)
	s := &Entity{
		Kind:         KindSpawner,
		Pos:          pos,
		Health:       health,
		MaxHealth:    health,
		Hitbox:       &hb,
		hitboxSize:   sc.HitboxSize,
		invincibleMS: sc.InvincibilityMS,
		Spawner:      st,
	}
	w.hittables = append(w.hittables, s)
	return s
}

// stepSpawner runs the body step, then lets the fabricator try to produce.
// A successful production consumes the spawner.
func (w *World) stepSpawner(e *Entity, dt float64) {
	w.stepBody(e, dt)
	if e.removed {
		return
	}
	st := e.Spawner
	produced, _ := st.Fabricator.trySpawn(w, e.Pos, SpawnEnemy, st.Difficulty, st.SpawnType, noIteration)
	if produced {
		w.destroyHittable(e)
	}
}

// rewardForSpawnerKill heals the player for destroying a spawner. Unlike
// enemy kills there is no proximity requirement; the reward scales with the
// difficulty the spawner carried and what it would have produced.
func (w *World) rewardForSpawnerKill(e *Entity) {
	if !w.playerAlive() {
		return
	}
	p := w.player
	st := e.Spawner
	heal := float64(st.Difficulty+1) * 2 * math.Min(p.Player.Power, e.MaxHealth)
	heal *= w.cfg.Enemy.HitboxSize / e.hitboxSize
	if st.SpawnType.rangedTier() {
		heal *= 1.5
	}
	if st.SpawnType.eliteTier() {
		heal *= 2
	}
	p.Heal(math.Round(heal))
	w.score += heal
	w.tickReward += heal * w.cfg.Rewards.HealScale
}
