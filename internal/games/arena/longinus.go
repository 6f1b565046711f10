package arena

import "github.com/polygonkind/arena/internal/core"

// BossPhase sequences the Longinus fight. Phases advance on health
// thresholds; each spell phase carries its own bullet pattern.
type BossPhase int

const (
	PreSpell1 BossPhase = iota
	Spell1
	PreSpell2
	Spell2
	PreSpell3
	Spell3
	LastWord
)

func (p BossPhase) String() string {
	switch p {
	case PreSpell1:
		return "prespell_1"
	case Spell1:
		return "spell_1"
	case PreSpell2:
		return "prespell_2"
	case Spell2:
		return "spell_2"
	case PreSpell3:
		return "prespell_3"
	case Spell3:
		return "spell_3"
	case LastWord:
		return "last_word"
	default:
		return "unknown"
	}
}

// danmakuShot is one pre-encoded boss bullet: where it leaves the hull
// relative to the aim direction, and how it flies.
type danmakuShot struct {
	Dist     float64 // Spawn distance from the boss center
	AngleDeg float64 // Offset from the aim direction
	Speed    float64
	Size     float64
	DelayMS  float64
	Color    core.Color
}

// spawnLonginus creates the singleton boss. Stats come from the shared
// archetype derivation; only the phase machinery is boss-specific. Callers
// must go through a Fabricator, which enforces the one-boss invariant.
func (w *World) spawnLonginus(pos Vec, difficulty int) *Entity {
	e := w.spawnEnemy(pos, difficulty, Longinus, noIteration)
	st := e.Enemy
	st.Phase = PreSpell1
	st.Fabricator = &Fabricator{CooldownMS: bossBurstGapMS, lastSpawnAt: w.now}
	return e
}

func (w *World) bossPresent() bool {
	for _, h := range w.hittables {
		if h.Enemy != nil && h.Enemy.Archetype == Longinus {
			return true
		}
	}
	return false
}

// bossFindGoal parks the goal far outside the arena: the boss holds its
// ground rather than chasing.
func bossFindGoal(w *World, e *Entity) {
	e.Enemy.Goal = V(999999, 999999)
}

const (
	bossBurstGapMS = 2000.0
	bossRingSize   = 16
)

// bossAchieve advances the phase from health thresholds and fires the
// current pattern. Patterns beyond the ring burst are an extension point:
// spell phases enqueue encoded shots and the drain loop below does the rest.
func bossAchieve(w *World, e *Entity, dt float64) {
	st := e.Enemy
	st.Phase = bossPhaseForHealth(e.Health, e.MaxHealth)

	if produced, _ := st.Fabricator.tryFire(w); produced {
		st.pattern = ringBurst(st.Phase)
		st.patternStartedAt = w.now
	}

	// Drain due shots
	aim := e.Angle
	if w.playerAlive() {
		aim = w.player.Pos.Sub(e.Pos).AngleDeg()
	}
	rest := st.pattern[:0]
	for _, shot := range st.pattern {
		if w.now-st.patternStartedAt < shot.DelayMS {
			rest = append(rest, shot)
			continue
		}
		dir := FromAngleDeg(aim + shot.AngleDeg)
		origin := e.Pos.Add(dir.Scale(e.hitboxSize/2 + shot.Dist))
		w.spawnDanmaku(origin, dir, shot.Speed, st.Damage, shot.Size, shot.Color, e)
	}
	st.pattern = rest
}

func bossPhaseForHealth(health, maxHealth float64) BossPhase {
	if maxHealth <= 0 {
		return LastWord
	}
	frac := health / maxHealth
	switch {
	case frac > 6.0/7:
		return PreSpell1
	case frac > 5.0/7:
		return Spell1
	case frac > 4.0/7:
		return PreSpell2
	case frac > 3.0/7:
		return Spell2
	case frac > 2.0/7:
		return PreSpell3
	case frac > 1.0/7:
		return Spell3
	default:
		return LastWord
	}
}

// ringBurst encodes an evenly spaced ring of shots around the aim. Later
// phases fire denser, faster rings in hotter colors.
func ringBurst(phase BossPhase) []danmakuShot {
	count := bossRingSize + int(phase)*4
	speed := 20.0 + float64(phase)*10
	color := core.ColorGreen
	switch {
	case phase >= Spell3:
		color = core.ColorRed
	case phase >= Spell2:
		color = core.ColorOrange
	case phase >= Spell1:
		color = core.ColorYellow
	}
	shots := make([]danmakuShot, 0, count)
	for i := 0; i < count; i++ {
		shots = append(shots, danmakuShot{
			Dist:     4,
			AngleDeg: 360 * float64(i) / float64(count),
			Speed:    speed,
			Size:     2,
			Color:    color,
		})
	}
	return shots
}

// tryFire is trySpawn's timing gate without a production: it consumes the
// cooldown and reports whether it was ready.
func (f *Fabricator) tryFire(w *World) (bool, bool) {
	if w.now-f.lastSpawnAt < f.CooldownMS {
		return false, false
	}
	f.lastSpawnAt = w.now
	return true, false
}
