package arena

import (
	"math"
	"testing"

	"github.com/polygonkind/arena/internal/config"
)

func newTestWorld(t *testing.T) *World {
	t.Helper()
	w := NewWorld(config.DefaultArenaConfig(), 1)
	w.Reset(0)
	return w
}

func TestTakeDamageInvincibilityWindow(t *testing.T) {
	w := newTestWorld(t)
	p := w.Player()

	p.TakeDamage(10, w.Now())
	if p.Health != 90 {
		t.Fatalf("health = %v, want 90", p.Health)
	}
	if !p.Invincible {
		t.Fatal("first hit must open an invincibility window")
	}

	// Repeated hits inside the window are no-ops
	p.TakeDamage(10, w.Now())
	p.TakeDamage(50, w.Now())
	if p.Health != 90 {
		t.Fatalf("health after invincible hits = %v, want 90", p.Health)
	}
}

func TestInvincibilityExpires(t *testing.T) {
	w := newTestWorld(t)
	p := w.Player()
	p.TakeDamage(10, w.Now())

	// Player window is 600ms; step past it
	for i := 0; i < 40; i++ {
		w.Update(1.0 / 60)
	}
	if p.Invincible {
		t.Fatal("invincibility must expire after the window")
	}
	p.TakeDamage(10, w.Now())
	if p.Health != 80 {
		t.Fatalf("health = %v, want 80", p.Health)
	}
}

func TestTakeDamageFloorsAtZero(t *testing.T) {
	w := newTestWorld(t)
	p := w.Player()
	p.TakeDamage(1e9, w.Now())
	if p.Health != 0 {
		t.Fatalf("health = %v, want 0", p.Health)
	}
}

func TestHealOverhealDiminishingReturns(t *testing.T) {
	w := newTestWorld(t)
	p := w.Player()

	before := p.MaxHealth
	p.Heal(100)
	firstGain := p.MaxHealth - before
	if firstGain <= 0 {
		t.Fatal("overheal must grow max health")
	}
	if p.Health != p.MaxHealth {
		t.Fatalf("health = %v, want clamped to max %v", p.Health, p.MaxHealth)
	}

	before = p.MaxHealth
	p.Heal(100)
	secondGain := p.MaxHealth - before
	if secondGain >= firstGain {
		t.Fatalf("same overheal must yield less growth: first %v, second %v", firstGain, secondGain)
	}
}

func TestHealBelowMaxDoesNotGrow(t *testing.T) {
	w := newTestWorld(t)
	p := w.Player()
	p.Health = 50
	maxBefore, powerBefore := p.MaxHealth, p.Player.Power

	p.Heal(20)
	if p.Health != 70 {
		t.Fatalf("health = %v, want 70", p.Health)
	}
	if p.MaxHealth != maxBefore || p.Player.Power != powerBefore {
		t.Fatal("heal without overheal must not change max health or power")
	}
}

func TestOutOfBoundsRemoval(t *testing.T) {
	w := newTestWorld(t)
	e := w.spawnEnemy(V(-100, -100), 0, Rammer, noIteration)

	w.Update(1.0 / 60)
	if !e.Removed() {
		t.Fatal("fully out-of-bounds enemy must be removed")
	}
	if countHusks(w) != 1 {
		t.Fatalf("husks = %d, want 1", countHusks(w))
	}
}

func TestExplosiveRammerExplodesOutOfBounds(t *testing.T) {
	w := newTestWorld(t)
	e := w.spawnEnemy(V(-100, -100), 3, ExplosiveRammer, noIteration)

	w.Update(1.0 / 60)
	if !e.Removed() {
		t.Fatal("enemy must be removed")
	}
	if !e.Exploding() {
		t.Fatal("explosive rammer must carry the exploding sentinel")
	}
	found := false
	for _, b := range w.Bullets() {
		if b.Kind == BulletExplosion {
			found = true
		}
	}
	if !found {
		t.Fatal("explosion must be left behind")
	}
}

func TestExplodeIsIdempotent(t *testing.T) {
	w := newTestWorld(t)
	e := w.spawnEnemy(V(400, 200), 3, ExplosiveRammer, noIteration)

	w.explode(e)
	w.explode(e)
	explosions := 0
	for _, b := range w.Bullets() {
		if b.Kind == BulletExplosion {
			explosions++
		}
	}
	if explosions != 1 {
		t.Fatalf("explosions = %d, want 1", explosions)
	}
}

func TestExplosionDamagesEachTargetOnce(t *testing.T) {
	w := newTestWorld(t)
	p := w.Player()
	x := w.spawnExplosion(p.Pos.Add(V(5, 0)), 10, 100, nil)

	healthBefore := p.Health
	w.stepExplosion(x)
	afterFirst := p.Health
	if afterFirst >= healthBefore {
		t.Fatal("explosion must damage an overlapping target")
	}

	// Drop the invincibility window so only the already-hit set can protect
	p.Invincible = false
	w.stepExplosion(x)
	if p.Health != afterFirst {
		t.Fatal("a target must be damaged at most once per explosion")
	}
}

func TestExplosionExpires(t *testing.T) {
	w := newTestWorld(t)
	x := w.spawnExplosion(V(50, 50), 10, 30, nil)

	for i := 0; i < 40; i++ {
		w.Update(1.0 / 60)
	}
	if !x.Removed() {
		t.Fatal("explosion must expire after its lifetime")
	}
}

func TestHuskDecaysAndNeverLeavesBounds(t *testing.T) {
	w := newTestWorld(t)
	e := w.spawnEnemy(V(400, 200), 0, Rammer, noIteration)
	e.Health = 0
	w.Update(1.0 / 60)

	var husk *Entity
	for _, h := range w.Hittables() {
		if h.Kind == KindHusk {
			husk = h
		}
	}
	if husk == nil {
		t.Fatal("dead enemy must leave a husk")
	}
	if husk.Hitbox != nil {
		t.Fatal("husks must not have a hitbox")
	}

	// Push it way outside; out-of-bounds removal must not apply to husks
	husk.Pos = V(-5000, -5000)
	w.Update(1.0 / 60)
	if husk.Removed() && !husk.OutOfHealth() {
		t.Fatal("husk must only die by decay")
	}

	// Decay kills it in about two seconds
	for i := 0; i < 150 && !husk.Removed(); i++ {
		w.Update(1.0 / 60)
	}
	if !husk.Removed() {
		t.Fatal("husk must decay away")
	}
	if countHusks(w) != 0 {
		t.Fatal("a decayed husk must not spawn another husk")
	}
}

func TestEnemyStatScaling(t *testing.T) {
	w := newTestWorld(t)
	low := w.spawnEnemy(V(200, 200), 0, Rammer, noIteration)
	high := w.spawnEnemy(V(600, 600), 10, Rammer, noIteration)

	if low.Health != 5 {
		t.Fatalf("difficulty 0 rammer health = %v, want 5", low.Health)
	}
	if high.Health != 55 {
		t.Fatalf("difficulty 10 rammer health = %v, want 55", high.Health)
	}
	if high.Enemy.Damage != 11 {
		t.Fatalf("difficulty 10 rammer damage = %v, want 11", high.Enemy.Damage)
	}
	if math.Abs(high.MaxSpeed-500) > 1e-9 {
		t.Fatalf("difficulty 10 rammer speed = %v, want 500", high.MaxSpeed)
	}
	if high.Enemy.CooldownMS != 0 {
		t.Fatalf("rammer cooldown = %v, want 0 (modifier is 0)", high.Enemy.CooldownMS)
	}
}

func TestArchetypeModifiersApplied(t *testing.T) {
	w := newTestWorld(t)
	tank := w.spawnEnemy(V(200, 200), 10, TankierRammer, noIteration)

	// (5 + 50) * 150%
	if tank.Health != 83 {
		t.Fatalf("tankier health = %v, want 83", tank.Health)
	}
	// 25 * 250%
	if tank.hitboxSize != 25 {
		t.Fatalf("tankier size = %v, want 25", tank.hitboxSize)
	}
}

func countHusks(w *World) int {
	n := 0
	for _, h := range w.Hittables() {
		if h.Kind == KindHusk {
			n++
		}
	}
	return n
}
