package arena

import "math"

// Archetype identifies one of the eight enemy kinds. The numeric order is
// load-bearing: spawners pick their product by index, wrapping around.
type Archetype int

const (
	Rammer Archetype = iota
	TankierRammer
	ExplosiveRammer
	GottaGoFast
	PewPew
	BigPewPew
	Spawnception
	Longinus

	archetypeCount
)

func (a Archetype) String() string {
	return a.configKey()
}

// configKey returns the archetype's key in the config modifier table.
func (a Archetype) configKey() string {
	switch a {
	case Rammer:
		return "rammer"
	case TankierRammer:
		return "tankier_rammer"
	case ExplosiveRammer:
		return "explosive_rammer"
	case GottaGoFast:
		return "gottagofast"
	case PewPew:
		return "pew_pew"
	case BigPewPew:
		return "big_pew_pew"
	case Spawnception:
		return "spawnception"
	case Longinus:
		return "longinus"
	default:
		return "rammer"
	}
}

// rangedTier archetypes grant a 1.5x kill reward.
func (a Archetype) rangedTier() bool {
	return a == PewPew || a == BigPewPew || a == Spawnception || a == Longinus
}

// eliteTier archetypes grant a further 2x kill reward on top of rangedTier.
func (a Archetype) eliteTier() bool {
	return a == Spawnception || a == Longinus
}

// EnemyState is the enemy variant payload: derived stats, the positional
// goal the FSM steers toward, and the nested fabricator for Spawnception.
type EnemyState struct {
	Archetype  Archetype
	Difficulty int

	Damage   float64
	Force    float64
	Reward   float64
	AimRange float64

	CooldownMS   float64
	lastActionAt float64

	Goal Vec

	// Spawnception chain bookkeeping. MaxIteration is zero for enemies
	// that did not come from another Spawnception.
	Iteration          int
	MaxIteration       int
	NextIterDifficulty int
	Fabricator         *Fabricator

	// Longinus only
	Phase            BossPhase
	pattern          []danmakuShot
	patternStartedAt float64
}

// noIteration marks an enemy that is not part of a Spawnception chain.
const noIteration = -1

// spawnEnemy derives an archetype's stat line from the difficulty and the
// modifier table, then inserts the enemy. iteration is noIteration unless
// the enemy was produced by a Spawnception.
func (w *World) spawnEnemy(pos Vec, difficulty int, arch Archetype, iteration int) *Entity {
	ec := w.cfg.Enemy
	mod := w.archetypeMod(arch)
	d := float64(difficulty)

	size := math.Round(ec.HitboxSize * mod.Size / 100)
	health := math.Round((ec.BaseHealth + d*ec.HealthPerDifficulty) * mod.Health / 100)
	damage := math.Round((ec.BaseDamage + d*ec.DamagePerDifficulty) * mod.Damage / 100)
	speed := (ec.BaseSpeed + d*ec.SpeedPerDifficulty) * mod.Speed / 100
	force := (ec.BaseForce + d*ec.ForcePerDifficulty) * mod.Force / 100
	reward := math.Round(d * mod.Reward / 100)
	cooldown := math.Round(math.Max(ec.CooldownFloorMS, ec.CooldownBaseMS-d*ec.CooldownPerDifficulty) * mod.Cooldown / 100)

	st := &EnemyState{
		Archetype:    arch,
		Difficulty:   difficulty,
		Damage:       damage,
		Force:        force,
		Reward:       reward,
		AimRange:     ec.BaseAimRange + d*ec.AimRangePerDifficulty,
		CooldownMS:   cooldown,
		lastActionAt: math.Inf(-1),
		Iteration:    0,
	}
	if arch == Spawnception {
		if iteration != noIteration {
			st.Iteration = iteration
			st.MaxIteration = int(math.Round(float64(ec.SpawnceptionMaxIter) + d/10))
			if st.MaxIteration > 0 {
				shrink := int(d * float64(st.Iteration) / float64(st.MaxIteration))
				if next := difficulty - shrink; next > 0 {
					st.NextIterDifficulty = next
				}
			}
		}
		// Primed to produce its first child shortly after appearing
		st.Fabricator = &Fabricator{
			CooldownMS:  cooldown,
			lastSpawnAt: w.now + ec.SpawnceptionPrimeMS - cooldown,
		}
	}

	hb := BoxAround(pos, size)
	e := &Entity{
		Kind:         KindEnemy,
		Pos:          pos,
		Health:       health,
		MaxHealth:    health,
		MaxSpeed:     speed,
		Hitbox:       &hb,
		hitboxSize:   size,
		invincibleMS: ec.InvincibilityMS,
		Enemy:        st,
	}
	w.hittables = append(w.hittables, e)
	return e
}

// archetypeBehavior is the per-archetype dispatch table: goal selection,
// goal pursuit and death effects. The tick loop never branches on archetype
// outside this table.
type archetypeBehavior struct {
	findGoal func(w *World, e *Entity)
	achieve  func(w *World, e *Entity, dt float64)
	onDeath  func(w *World, e *Entity)
}

var behaviors = [archetypeCount]archetypeBehavior{
	Rammer:          {chasePlayerGoal, meleeAchieve, enemyDeathReward},
	TankierRammer:   {chasePlayerGoal, meleeAchieve, enemyDeathReward},
	ExplosiveRammer: {chasePlayerGoal, explosiveAchieve, explosiveDeath},
	GottaGoFast:     {chasePlayerGoal, meleeAchieve, enemyDeathReward},
	PewPew:          {chasePlayerGoal, rangedAchieve, enemyDeathReward},
	BigPewPew:       {chasePlayerGoal, rangedAchieve, enemyDeathReward},
	Spawnception:    {farthestCornerGoal, spawnceptionAchieve, enemyDeathReward},
	Longinus:        {bossFindGoal, bossAchieve, enemyDeathReward},
}

func behaviorFor(a Archetype) archetypeBehavior {
	if a < 0 || a >= archetypeCount {
		return behaviors[Rammer]
	}
	return behaviors[a]
}

// stepEnemy runs one enemy tick: goal selection, body-contact collision with
// the player, goal pursuit, then the shared body step.
func (w *World) stepEnemy(e *Entity, dt float64) {
	st := e.Enemy
	b := behaviorFor(st.Archetype)
	if w.playerAlive() {
		b.findGoal(w, e)
		e.Angle = st.Goal.Sub(e.Pos).AngleDeg()
	}
	w.enemyCollide(e, dt)
	b.achieve(w, e, dt)
	w.stepBody(e, dt)
}

// chasePlayerGoal leads the target by a fraction of its velocity that grows
// with difficulty, capped at one second of lead.
func chasePlayerGoal(w *World, e *Entity) {
	p := w.player
	lead := math.Min(1, float64(e.Enemy.Difficulty)*0.05)
	e.Enemy.Goal = p.Pos.Add(p.Vel.Scale(lead))
}

// farthestCornerGoal drifts toward whichever arena corner is farthest away.
func farthestCornerGoal(w *World, e *Entity) {
	corners := [4]Vec{
		{0, 0},
		{w.cfg.World.Width, 0},
		{0, w.cfg.World.Height},
		{w.cfg.World.Width, w.cfg.World.Height},
	}
	best, bestDist := corners[0], -1.0
	for _, c := range corners {
		if d := e.Pos.Dist(c); d > bestDist {
			best, bestDist = c, d
		}
	}
	e.Enemy.Goal = best
}

func meleeAchieve(w *World, e *Entity, dt float64) {
	st := e.Enemy
	e.accel = st.Goal.Sub(e.Pos).Norm().Scale(st.Force)
}

// explosiveAchieve rams like a melee archetype but self-destructs once the
// player is within four hitbox widths.
func explosiveAchieve(w *World, e *Entity, dt float64) {
	meleeAchieve(w, e, dt)
	if !w.playerAlive() {
		return
	}
	if e.Pos.Dist(w.player.Pos) <= e.Hitbox.W*4 {
		w.explode(e)
	}
}

// rangedAchieve shoots when inside aim range and off cooldown, otherwise
// closes distance.
func rangedAchieve(w *World, e *Entity, dt float64) {
	st := e.Enemy
	toGoal := st.Goal.Sub(e.Pos)
	if toGoal.Len() <= st.AimRange && w.now-st.lastActionAt >= st.CooldownMS {
		w.enemyShoot(e)
		st.lastActionAt = w.now
		return
	}
	e.accel = toGoal.Norm().Scale(st.Force)
}

// spawnceptionAchieve drifts away while its fabricator periodically produces
// either another, weaker Spawnception (while the iteration bound allows) or a
// plain Rammer.
func spawnceptionAchieve(w *World, e *Entity, dt float64) {
	meleeAchieve(w, e, dt)
	st := e.Enemy
	if st.Iteration < st.MaxIteration {
		st.Fabricator.trySpawn(w, e.Pos, SpawnEnemy, st.NextIterDifficulty, Spawnception, st.Iteration+1)
	} else {
		st.Fabricator.trySpawn(w, e.Pos, SpawnEnemy, 0, Rammer, noIteration)
	}
}

func enemyDeathReward(w *World, e *Entity) {
	w.rewardForEnemyKill(e)
}

func explosiveDeath(w *World, e *Entity) {
	w.rewardForEnemyKill(e)
	w.explode(e)
}

// enemyCollide sweeps the enemy's body against the player and resolves the
// hit: mutual contact damage plus an elastic-ish bounce where the lighter
// body (by hitbox area) is flung harder.
func (w *World) enemyCollide(e *Entity, dt float64) {
	if !w.playerAlive() || e.Hitbox == nil {
		return
	}
	p := w.player
	hit := SweepRect(*e.Hitbox, e.Vel.Scale(dt), []*Entity{p}, nil)
	if hit == nil {
		return
	}
	st := e.Enemy
	e.TakeDamage(st.Damage, w.now)
	p.TakeDamage(st.Damage, w.now)

	ratio := (e.Hitbox.W * e.Hitbox.W) / math.Max(1e-6, p.Hitbox.W*p.Hitbox.W)
	if ratio < 1e-6 {
		ratio = 1e-6
	}
	e.ApplyImpulse(p.Vel.Sub(e.Vel).Scale(1 / ratio))
	p.ApplyImpulse(e.Vel.Sub(p.Vel).Scale(ratio))
}

// explode replaces the entity with a stationary explosion five hitbox widths
// across. The -Inf health sentinel keeps the death path from firing a second
// explosion for the same entity.
func (w *World) explode(e *Entity) {
	if e.Exploding() || e.removed {
		return
	}
	damage := e.Enemy.Damage
	radius := e.hitboxSize * 5
	e.Health = math.Inf(-1)
	w.destroyHittable(e)
	w.spawnExplosion(e.Pos, damage, radius, nil)
}

func (w *World) enemyShoot(e *Entity) {
	if !w.playerAlive() {
		return
	}
	dir := w.player.Pos.Sub(e.Pos).Norm()
	origin := e.Pos.Add(dir.Scale(e.hitboxSize/2 + muzzleOffset))
	w.spawnBullet(origin, dir, w.cfg.Bullet.Speed, e.Enemy.Damage, e)
}

// rewardForEnemyKill heals the player for a kill that happened close enough
// to be "earned": reward scales with the victim's speed and inversely with
// its bulk, with tier multipliers for ranged and elite archetypes.
func (w *World) rewardForEnemyKill(e *Entity) {
	if !w.playerAlive() || e.Exploding() {
		return
	}
	p := w.player
	st := e.Enemy
	width := e.hitboxSize
	if e.Pos.Dist(p.Pos) > width*10 {
		return
	}
	heal := st.Reward * math.Min(p.Player.Power, e.MaxHealth)
	heal *= e.MaxSpeed / w.cfg.Enemy.BaseSpeed
	heal *= w.cfg.Enemy.HitboxSize / width
	if st.Archetype.rangedTier() {
		heal *= 1.5
	}
	if st.Archetype.eliteTier() {
		heal *= 2
	}
	p.Heal(math.Round(heal))
	w.score += heal
	w.tickReward += heal * w.cfg.Rewards.HealScale
}
