package arena

import (
	"testing"

	"github.com/polygonkind/arena/internal/config"
)

func TestResetInitialState(t *testing.T) {
	w := newTestWorld(t)

	if len(w.Spawners()) != 1 {
		t.Fatalf("spawners = %d, want 1", len(w.Spawners()))
	}
	if len(w.Enemies()) != 0 {
		t.Fatalf("enemies = %d, want 0", len(w.Enemies()))
	}
	p := w.Player()
	if p == nil {
		t.Fatal("player must exist after reset")
	}
	center := V(w.cfg.World.Width/2, w.cfg.World.Height/2)
	if p.Pos != center {
		t.Fatalf("player at %v, want center %v", p.Pos, center)
	}
	if p.Health != 100 {
		t.Fatalf("player health = %v, want 100", p.Health)
	}
	if !w.Alive() {
		t.Fatal("world must be alive after reset")
	}
}

func TestResetAtHigherDifficulty(t *testing.T) {
	w := NewWorld(config.DefaultArenaConfig(), 7)
	w.Reset(4)
	if len(w.Spawners()) != 5 {
		t.Fatalf("spawners = %d, want difficulty+1 = 5", len(w.Spawners()))
	}
	if w.Difficulty() != 4 {
		t.Fatalf("difficulty = %d, want 4", w.Difficulty())
	}
}

func TestSpawnerKillRewardsPlayer(t *testing.T) {
	w := newTestWorld(t)
	sp := w.Spawners()[0]
	p := w.Player()

	scoreBefore := w.Score()
	sp.Health = 0
	w.Update(1.0 / 60)

	if !sp.Removed() {
		t.Fatal("dead spawner must be removed")
	}
	if countHusks(w) != 1 {
		t.Fatal("dead spawner must leave a husk")
	}
	if w.Score() <= scoreBefore {
		t.Fatal("spawner kill must add score")
	}
	// Player was at full health, so the heal lands as overheal growth
	if p.MaxHealth < 100 {
		t.Fatalf("max health = %v, must not shrink", p.MaxHealth)
	}
}

func TestRespawnCycleEscalates(t *testing.T) {
	w := newTestWorld(t)
	w.Spawners()[0].Health = 0

	w.Update(1.0 / 60)

	if w.Difficulty() != 1 {
		t.Fatalf("difficulty = %d, want 1", w.Difficulty())
	}
	if len(w.Teleporters()) != w.Difficulty()+1 {
		t.Fatalf("teleporters = %d, want difficulty+1 = %d", len(w.Teleporters()), w.Difficulty()+1)
	}
}

func TestFixedDifficultyDoesNotEscalate(t *testing.T) {
	cfg := config.DefaultArenaConfig()
	cfg.Difficulty.Escalation = false
	w := NewWorld(cfg, 1)
	w.Reset(3)

	for _, sp := range w.Spawners() {
		sp.Health = 0
	}
	w.Update(1.0 / 60)

	if w.Difficulty() != 3 {
		t.Fatalf("difficulty = %d, want pinned at 3", w.Difficulty())
	}
	if len(w.Teleporters()) != 4 {
		t.Fatalf("teleporters = %d, want 4", len(w.Teleporters()))
	}
}

func TestTeleportersMaterializeSpawners(t *testing.T) {
	w := newTestWorld(t)
	w.Spawners()[0].Health = 0
	w.Update(1.0 / 60)
	if len(w.Teleporters()) == 0 {
		t.Fatal("respawn cycle must create teleporters")
	}

	// Teleporter cooldown is 5s; run well past it
	for i := 0; i < 360 && len(w.Spawners()) == 0; i++ {
		w.Update(1.0 / 60)
	}
	if len(w.Spawners()) == 0 {
		t.Fatal("teleporters must eventually materialize spawners")
	}
	if len(w.Teleporters()) != 0 {
		t.Fatal("teleporters must clear once a spawner exists")
	}
}

func TestSpawnPositionsRespectMargins(t *testing.T) {
	w := newTestWorld(t)
	m := w.cfg.World.SpawnMargin
	for _, pos := range w.selectSpawnPositions(50) {
		if pos.X < m || pos.X > w.cfg.World.Width-m ||
			pos.Y < m || pos.Y > w.cfg.World.Height-m {
			t.Fatalf("spawn position %v outside margins", pos)
		}
		if pos.Dist(w.Player().Pos) < 2*m {
			t.Fatalf("spawn position %v too close to player", pos)
		}
	}
}

func TestPlayerDeathStopsSpawnLogic(t *testing.T) {
	w := newTestWorld(t)
	w.Player().Health = 0
	w.Spawners()[0].Health = 0

	w.Update(1.0 / 60)

	if w.Alive() {
		t.Fatal("world must not be alive with a dead player")
	}
	if len(w.Teleporters()) != 0 {
		t.Fatal("no respawn cycle may start after game over")
	}
	if w.Difficulty() != 0 {
		t.Fatalf("difficulty = %d, must not escalate after game over", w.Difficulty())
	}
}

func TestViewsAreSubsetsOfHittables(t *testing.T) {
	w := newTestWorld(t)
	w.spawnEnemy(V(200, 200), 2, PewPew, noIteration)
	w.spawnSpawner(V(600, 600), 2)
	w.Update(1.0 / 60)

	index := make(map[*Entity]bool, len(w.Hittables()))
	for _, h := range w.Hittables() {
		index[h] = true
	}
	for _, e := range w.Enemies() {
		if !index[e] || e.Kind != KindEnemy {
			t.Fatal("enemy view out of sync with hittables")
		}
	}
	for _, s := range w.Spawners() {
		if !index[s] || s.Kind != KindSpawner {
			t.Fatal("spawner view out of sync with hittables")
		}
	}
}

func TestDeterministicRuns(t *testing.T) {
	run := func() []float64 {
		w := NewWorld(config.DefaultArenaConfig(), 42)
		w.Reset(2)
		for i := 0; i < 600; i++ {
			w.ApplyAction(StylePilot, PilotForward)
			if i%7 == 0 {
				w.ApplyAction(StylePilot, PilotShoot)
			}
			w.Update(1.0 / 60)
		}
		return w.Snapshot().Encode()
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("snapshot diverged at index %d: %v != %v", i, a[i], b[i])
		}
	}
}

func TestSnapshotSentinels(t *testing.T) {
	w := newTestWorld(t)
	s := w.Snapshot()

	// No enemies or hostile bullets yet
	if s.NearestEnemyDist != AbsentSentinel {
		t.Fatalf("enemy dist = %v, want sentinel", s.NearestEnemyDist)
	}
	if s.NearestBulletDist != AbsentSentinel {
		t.Fatalf("bullet dist = %v, want sentinel", s.NearestBulletDist)
	}
	// Exactly one spawner exists
	if s.NearestSpawnerDist == AbsentSentinel {
		t.Fatal("spawner dist must be real")
	}

	enc := s.Encode()
	if len(enc) != SnapshotLen {
		t.Fatalf("encoded length = %d, want %d", len(enc), SnapshotLen)
	}
	for i, v := range enc {
		if v != v || v > 1e12 || v < -1e12 {
			t.Fatalf("encoded value %d not finite-bounded: %v", i, v)
		}
	}
}

func TestSnapshotTracksNearest(t *testing.T) {
	w := newTestWorld(t)
	w.spawnEnemy(V(500, 400), 1, Rammer, noIteration)
	far := w.spawnEnemy(V(700, 700), 1, Rammer, noIteration)
	w.refreshViews()

	s := w.Snapshot()
	if s.NearestEnemyDist != 100 {
		t.Fatalf("nearest enemy dist = %v, want 100", s.NearestEnemyDist)
	}
	if s.NearestEnemyPos == far.Pos {
		t.Fatal("picked the farther enemy")
	}
}

func TestPlayerOwnedBulletsInvisible(t *testing.T) {
	w := newTestWorld(t)
	p := w.Player()
	w.spawnBullet(p.Pos.Add(V(20, 0)), V(1, 0), 200, 10, p)

	if d := w.Snapshot().NearestBulletDist; d != AbsentSentinel {
		t.Fatalf("own bullet must not appear as hostile, dist = %v", d)
	}

	w.spawnBullet(p.Pos.Add(V(0, 30)), V(0, -1), 200, 1, nil)
	if d := w.Snapshot().NearestBulletDist; d != 30 {
		t.Fatalf("hostile bullet dist = %v, want 30", d)
	}
}

func TestTickRewardShaping(t *testing.T) {
	w := newTestWorld(t)
	w.TakeTickReward()

	w.Update(1.0 / 60)
	r := w.TakeTickReward()
	if r >= 0 {
		t.Fatalf("idle reward = %v, want negative decay", r)
	}

	// A hit taken during the tick adds the penalty on top of decay
	p := w.Player()
	w.spawnBullet(p.Pos.Add(V(-30, 0)), V(1, 0), 3000, 10, nil)
	w.Update(1.0 / 60)
	r2 := w.TakeTickReward()
	if r2 > r-w.cfg.Rewards.HitPenalty+1e-9 {
		t.Fatalf("damaged-tick reward %v must include the hit penalty (idle %v)", r2, r)
	}
}
