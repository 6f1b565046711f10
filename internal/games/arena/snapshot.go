package arena

// AbsentSentinel stands in for the distance and position of a nearest-entity
// slot when no such entity exists. It is a large finite value, not infinity,
// so encoded observations stay usable by numeric consumers.
const AbsentSentinel = 9999.0

// Snapshot is a fixed-order observation of the world from the player's point
// of view. Encode flattens it to exactly SnapshotLen values.
type Snapshot struct {
	PlayerPos Vec
	PlayerVel Vec
	Facing    Vec

	NearestEnemyDist float64
	NearestEnemyPos  Vec

	NearestSpawnerDist float64
	NearestSpawnerPos  Vec

	NearestBulletDist float64
	NearestBulletPos  Vec

	Health     float64
	MaxHealth  float64
	Power      float64
	Difficulty int
}

// SnapshotLen is the length of an encoded snapshot.
const SnapshotLen = 19

// Encode flattens the snapshot in fixed order.
func (s Snapshot) Encode() []float64 {
	return []float64{
		s.PlayerPos.X, s.PlayerPos.Y,
		s.PlayerVel.X, s.PlayerVel.Y,
		s.Facing.X, s.Facing.Y,
		s.NearestEnemyDist, s.NearestEnemyPos.X, s.NearestEnemyPos.Y,
		s.NearestSpawnerDist, s.NearestSpawnerPos.X, s.NearestSpawnerPos.Y,
		s.NearestBulletDist, s.NearestBulletPos.X, s.NearestBulletPos.Y,
		s.Health, s.MaxHealth, s.Power,
		float64(s.Difficulty),
	}
}

// Snapshot captures the current observation. Hostile bullets are those not
// owned by the player; explosions count as hostile regardless of origin.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		NearestEnemyDist:   AbsentSentinel,
		NearestEnemyPos:    V(AbsentSentinel, AbsentSentinel),
		NearestSpawnerDist: AbsentSentinel,
		NearestSpawnerPos:  V(AbsentSentinel, AbsentSentinel),
		NearestBulletDist:  AbsentSentinel,
		NearestBulletPos:   V(AbsentSentinel, AbsentSentinel),
		Difficulty:         w.difficulty,
	}
	p := w.player
	if p == nil {
		return s
	}
	s.PlayerPos = p.Pos
	s.PlayerVel = p.Vel
	s.Facing = FromAngleDeg(p.Angle)
	s.Health = p.Health
	s.MaxHealth = p.MaxHealth
	s.Power = p.Player.Power

	for _, e := range w.enemies {
		if d := p.Pos.Dist(e.Pos); d < s.NearestEnemyDist {
			s.NearestEnemyDist = d
			s.NearestEnemyPos = e.Pos
		}
	}
	for _, sp := range w.spawners {
		if d := p.Pos.Dist(sp.Pos); d < s.NearestSpawnerDist {
			s.NearestSpawnerDist = d
			s.NearestSpawnerPos = sp.Pos
		}
	}
	for _, b := range w.bullets {
		if b.Owner == p && b.Kind != BulletExplosion {
			continue
		}
		if d := p.Pos.Dist(b.Pos); d < s.NearestBulletDist {
			s.NearestBulletDist = d
			s.NearestBulletPos = b.Pos
		}
	}
	return s
}
