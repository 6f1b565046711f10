package arena

import "math"

// Kind discriminates the entity variants. Exactly one variant payload pointer
// on Entity is non-nil and matches the kind.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindSpawner
	KindHusk
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindSpawner:
		return "spawner"
	case KindHusk:
		return "husk"
	default:
		return "unknown"
	}
}

// Entity is anything that lives in the hittable set: it has a body, health
// and an optional hitbox. Variant-specific state hangs off exactly one of the
// payload pointers. Entities are created and destroyed only through the World.
type Entity struct {
	Kind Kind

	Pos   Vec
	Vel   Vec
	accel Vec
	// Angle is the facing direction in degrees. Movement comes from Vel;
	// Angle only drives aiming and rendering.
	Angle float64

	Health    float64
	MaxHealth float64
	MaxSpeed  float64

	// Hitbox is nil for non-collidable entities (husks). It is recomputed
	// from Pos at the end of every body step.
	Hitbox     *Box
	hitboxSize float64

	invincibleMS float64
	Invincible   bool
	invSince     float64

	removed bool

	Player  *PlayerState
	Enemy   *EnemyState
	Spawner *SpawnerState
	Husk    *HuskState
}

// Removed reports whether the entity has already been destroyed. Handles may
// outlive destruction by a tick; all World code checks this before acting.
func (e *Entity) Removed() bool {
	return e.removed
}

// OutOfHealth reports whether the entity should die this tick. The -Inf
// health sentinel means "already exploding" and is excluded so an explosion
// is not triggered twice.
func (e *Entity) OutOfHealth() bool {
	return e.Health <= 0 && !math.IsInf(e.Health, -1)
}

// Exploding reports whether the entity carries the -Inf exploding sentinel.
func (e *Entity) Exploding() bool {
	return math.IsInf(e.Health, -1)
}

// TakeDamage applies damage unless the entity is currently invincible, then
// opens a new invincibility window. Repeated hits inside the window are
// no-ops. Health is floored at zero; the kill is processed on the entity's
// next body step.
func (e *Entity) TakeDamage(amount, now float64) {
	if e.Invincible {
		return
	}
	if e.Exploding() {
		return
	}
	e.Health -= amount
	if e.Health < 0 {
		e.Health = 0
	}
	e.Invincible = true
	e.invSince = now
}

// Heal restores health up to MaxHealth. Overheal is converted into permanent
// max-health and, for the player, power growth with diminishing returns.
func (e *Entity) Heal(amount float64) {
	e.Health += amount
	overheal := e.Health - e.MaxHealth
	if overheal <= 0 {
		return
	}
	e.MaxHealth += math.Round(overheal / 10 / (e.MaxHealth / 100))
	if e.Player != nil {
		e.Player.Power += math.Round(overheal / 20 / (e.Player.Power / 10))
	}
	e.Health = e.MaxHealth
}

// ApplyImpulse is an instantaneous knockback: the force lands directly on
// velocity, bypassing acceleration so friction cannot absorb it.
func (e *Entity) ApplyImpulse(f Vec) {
	e.Vel = e.Vel.Add(f)
}

// thrust replaces the entity's acceleration with a push along its facing.
func (e *Entity) thrust(magnitude float64) {
	e.accel = FromAngleDeg(e.Angle).Scale(magnitude)
}

// stepBody advances the shared physics and lifecycle for one tick: death
// check, invincibility expiry, friction, integration, speed cap, bounds
// removal, deadzone and hitbox refresh. Variant behavior runs before this in
// stepHittable.
func (w *World) stepBody(e *Entity, dt float64) {
	if e.OutOfHealth() {
		w.killHittable(e)
		return
	}

	if e.Invincible && w.now-e.invSince > e.invincibleMS {
		e.Invincible = false
	}

	// Friction opposes current velocity
	e.accel = e.accel.Add(e.Vel.Scale(-w.cfg.Physics.Friction))

	e.Vel = e.Vel.Add(e.accel.Scale(dt)).Limit(e.MaxSpeed)
	e.Pos = e.Pos.Add(e.Vel.Scale(dt))

	// Husks drift out freely; everything else dies fully past the border
	if e.Kind != KindHusk && w.fullyOutOfBounds(e) {
		if e.Kind == KindPlayer {
			e.Health = 0
		}
		if e.Enemy != nil && e.Enemy.Archetype == ExplosiveRammer {
			w.explode(e)
		}
		w.destroyHittable(e)
		return
	}

	if math.Abs(e.Vel.X) < w.cfg.Physics.Deadzone {
		e.Vel.X = 0
	}
	if math.Abs(e.Vel.Y) < w.cfg.Physics.Deadzone {
		e.Vel.Y = 0
	}

	if e.Hitbox != nil {
		e.Hitbox.MoveTo(e.Pos)
	}
	e.accel = Vec{}
}

// killHittable handles an entity whose health reached zero: death rewards
// and death effects, then removal.
func (w *World) killHittable(e *Entity) {
	switch {
	case e.Enemy != nil:
		behaviorFor(e.Enemy.Archetype).onDeath(w, e)
	case e.Spawner != nil:
		w.rewardForSpawnerKill(e)
	}
	w.destroyHittable(e)
}

// destroyHittable removes an entity from the world, leaving a husk behind
// for enemies and spawners. Idempotent: a second call on the same entity is
// a no-op, so an entity destroyed mid-tick cannot spawn two husks.
func (w *World) destroyHittable(e *Entity) {
	if e.removed {
		return
	}
	e.removed = true
	for i, h := range w.hittables {
		if h == e {
			w.hittables = append(w.hittables[:i], w.hittables[i+1:]...)
			break
		}
	}
	if e.Kind == KindEnemy || e.Kind == KindSpawner {
		w.spawnHusk(e)
	}
	if e.Kind == KindPlayer && w.player == e {
		w.alive = false
	}
}

// fullyOutOfBounds reports whether the entity's whole hitbox (or point, for
// hitboxless entities) has left the arena.
func (w *World) fullyOutOfBounds(e *Entity) bool {
	half := e.hitboxSize / 2
	return e.Pos.X+half < 0 || e.Pos.X-half > w.cfg.World.Width ||
		e.Pos.Y+half < 0 || e.Pos.Y-half > w.cfg.World.Height
}

// HuskState marks a decaying corpse. Husks have no hitbox and are never
// removed for leaving the arena; they exist only until their health decays.
type HuskState struct {
	// Size is the visual footprint inherited from the dead entity.
	Size        float64
	Archetype   Archetype
	FromEnemy   bool
	FromSpawner bool
}

const (
	huskHealth         = 200.0
	huskDecayPerSecond = 100.0
)

// spawnHusk drops a husk at a dead entity's position, inheriting its motion.
func (w *World) spawnHusk(from *Entity) *Entity {
	st := &HuskState{Size: from.hitboxSize}
	if from.Enemy != nil {
		st.FromEnemy = true
		st.Archetype = from.Enemy.Archetype
	}
	if from.Spawner != nil {
		st.FromSpawner = true
		st.Archetype = from.Spawner.SpawnType
	}
	h := &Entity{
		Kind:       KindHusk,
		Pos:        from.Pos,
		Vel:        from.Vel,
		Angle:      from.Angle,
		Health:     huskHealth,
		MaxHealth:  huskHealth,
		MaxSpeed:   from.MaxSpeed,
		hitboxSize: from.hitboxSize,
		Husk:       st,
	}
	w.hittables = append(w.hittables, h)
	return h
}

// stepHusk decays the husk. Once health runs out the generic death check on
// the next step removes it; dead husks leave no husk of their own.
func (w *World) stepHusk(e *Entity, dt float64) {
	w.stepBody(e, dt)
	if !e.removed {
		e.Health -= huskDecayPerSecond * dt
	}
}
