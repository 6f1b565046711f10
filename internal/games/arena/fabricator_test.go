package arena

import "testing"

func TestFabricatorCooldownGate(t *testing.T) {
	w := newTestWorld(t)
	f := &Fabricator{CooldownMS: 1000, lastSpawnAt: w.Now()}
	enemiesBefore := len(w.Enemies())

	produced, _ := f.trySpawn(w, V(200, 200), SpawnEnemy, 0, Rammer, noIteration)
	if produced {
		t.Fatal("fabricator must not produce before the cooldown elapses")
	}

	w.now += 1000
	produced, _ = f.trySpawn(w, V(200, 200), SpawnEnemy, 0, Rammer, noIteration)
	if !produced {
		t.Fatal("fabricator must produce once the cooldown elapses")
	}
	w.refreshViews()
	if len(w.Enemies()) != enemiesBefore+1 {
		t.Fatalf("enemies = %d, want %d", len(w.Enemies()), enemiesBefore+1)
	}

	// The timestamp was consumed: an immediate retry is gated again
	produced, _ = f.trySpawn(w, V(200, 200), SpawnEnemy, 0, Rammer, noIteration)
	if produced {
		t.Fatal("cooldown must re-arm after a production")
	}
}

func TestFabricatorSpawnerBranch(t *testing.T) {
	w := newTestWorld(t)
	f := &Fabricator{CooldownMS: 0, lastSpawnAt: -1}
	spawnersBefore := len(w.Spawners())

	boss := f.TrySpawnWithCooldown(w, V(300, 300), SpawnSpawner, 2, 0, noIteration)
	if boss {
		t.Fatal("spawner production must report false")
	}
	w.refreshViews()
	if len(w.Spawners()) != spawnersBefore+1 {
		t.Fatalf("spawners = %d, want %d", len(w.Spawners()), spawnersBefore+1)
	}
}

func TestBossExclusivity(t *testing.T) {
	w := newTestWorld(t)

	f1 := &Fabricator{CooldownMS: 0, lastSpawnAt: -1}
	if !f1.TrySpawnWithCooldown(w, V(400, 100), SpawnEnemy, 5, Longinus, noIteration) {
		t.Fatal("boss branch must report true")
	}

	f2 := &Fabricator{CooldownMS: 0, lastSpawnAt: -1}
	if !f2.TrySpawnWithCooldown(w, V(100, 400), SpawnEnemy, 5, Longinus, noIteration) {
		t.Fatal("boss branch must report true even when blocked")
	}

	bosses := 0
	for _, h := range w.Hittables() {
		if h.Enemy != nil && h.Enemy.Archetype == Longinus {
			bosses++
		}
	}
	if bosses != 1 {
		t.Fatalf("bosses = %d, want exactly 1", bosses)
	}
}

func TestSpawnerConsumedOnProduction(t *testing.T) {
	w := newTestWorld(t)
	sp := w.Spawners()[0]

	// Force the fabricator ready
	sp.Spawner.Fabricator.lastSpawnAt = w.Now() - sp.Spawner.Fabricator.CooldownMS

	w.Update(1.0 / 60)
	if !sp.Removed() {
		t.Fatal("spawner must be consumed by its own production")
	}
	if len(w.Enemies()) != 1 {
		t.Fatalf("enemies = %d, want 1", len(w.Enemies()))
	}
	if countHusks(w) != 1 {
		t.Fatal("a consumed spawner leaves a husk")
	}
}

func TestSpawnceptionChainWeakens(t *testing.T) {
	w := newTestWorld(t)
	parent := w.spawnEnemy(V(400, 100), 10, Spawnception, 0)

	st := parent.Enemy
	if st.MaxIteration != 1 {
		t.Fatalf("max iteration at difficulty 10 = %d, want 1", st.MaxIteration)
	}
	if st.NextIterDifficulty != 10 {
		t.Fatalf("next difficulty at iteration 0 = %d, want 10", st.NextIterDifficulty)
	}

	child := w.spawnEnemy(V(400, 100), st.NextIterDifficulty, Spawnception, st.Iteration+1)
	cst := child.Enemy
	// iteration == max iteration: the chain terminates, children are rammers
	if cst.Iteration < cst.MaxIteration {
		t.Fatal("chain must be bounded at difficulty 10")
	}
	if cst.NextIterDifficulty != 0 {
		t.Fatalf("terminal next difficulty = %d, want 0", cst.NextIterDifficulty)
	}
}

func TestSpawnceptionFabricatorPrimed(t *testing.T) {
	w := newTestWorld(t)
	e := w.spawnEnemy(V(400, 100), 10, Spawnception, 0)
	f := e.Enemy.Fabricator

	// Not ready immediately, ready after the prime delay
	if w.now-f.lastSpawnAt >= f.CooldownMS {
		t.Fatal("fabricator must not be ready at creation")
	}
	w.now += w.cfg.Enemy.SpawnceptionPrimeMS
	if w.now-f.lastSpawnAt < f.CooldownMS {
		t.Fatal("fabricator must be ready after the prime delay")
	}
}
