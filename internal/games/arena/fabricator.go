package arena

// SpawnRequest tells a fabricator what category of thing to materialize.
type SpawnRequest int

const (
	SpawnEnemy SpawnRequest = iota
	SpawnSpawner
)

// Fabricator is the cooldown gate in front of all entity production:
// spawners, teleporters and Spawnception enemies each own one. It holds no
// entity state of its own, only timing.
type Fabricator struct {
	CooldownMS  float64
	lastSpawnAt float64
}

// trySpawn attempts a production. If the cooldown has not elapsed nothing
// happens. Otherwise the cooldown timestamp is consumed even when the boss
// exclusivity check below blocks the actual spawn.
//
// produced reports whether an entity actually appeared. bossSlot reports
// that the request resolved to the boss branch: the singleton boss either
// already exists or was just created.
func (f *Fabricator) trySpawn(w *World, at Vec, req SpawnRequest, difficulty int, arch Archetype, iteration int) (produced, bossSlot bool) {
	if w.now-f.lastSpawnAt < f.CooldownMS {
		return false, false
	}
	f.lastSpawnAt = w.now

	if req == SpawnSpawner {
		w.spawnSpawner(at, difficulty)
		return true, false
	}
	if arch != Longinus {
		w.spawnEnemy(at, difficulty, arch, iteration)
		return true, false
	}
	// At most one boss in the arena at any time
	if !w.bossPresent() {
		w.spawnLonginus(at, difficulty)
		return true, true
	}
	return false, true
}

// TrySpawnWithCooldown is the caller-facing production attempt. The return
// value is true only on the boss branch (boss spawned or already present);
// ordinary productions report false so teleporter loops keep cycling until
// their spawner materializes.
func (f *Fabricator) TrySpawnWithCooldown(w *World, at Vec, req SpawnRequest, difficulty int, arch Archetype, iteration int) bool {
	_, bossSlot := f.trySpawn(w, at, req, difficulty, arch, iteration)
	return bossSlot
}

// Teleporter is a pending spawn point: a fabricator pinned to a position,
// created when a respawn cycle starts and discarded once any spawner exists.
type Teleporter struct {
	Fabricator
	Pos       Vec
	StartedAt float64
}
