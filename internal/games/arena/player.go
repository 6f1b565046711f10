package arena

// ControlStyle selects how discrete actions map onto the player's body.
type ControlStyle int

const (
	// StylePilot steers by rotating the facing and thrusting along it.
	StylePilot ControlStyle = iota
	// StylePad thrusts along the four cardinal directions; shots still
	// fire along the current facing.
	StylePad
)

func (s ControlStyle) String() string {
	if s == StylePad {
		return "pad"
	}
	return "pilot"
}

// Discrete action spaces, one per control style. Action 0 is always no-op.
const (
	PilotNone = iota
	PilotLeft
	PilotRight
	PilotForward
	PilotShoot
	PilotActionCount
)

const (
	PadNone = iota
	PadUp
	PadDown
	PadLeft
	PadRight
	PadShoot
	PadActionCount
)

// ActionCount returns the size of the discrete action space for a style.
func ActionCount(style ControlStyle) int {
	if style == StylePad {
		return PadActionCount
	}
	return PilotActionCount
}

// PlayerState holds the player-only stats that grow over a run.
type PlayerState struct {
	Power         float64 // Bullet damage
	Thrust        float64 // Acceleration per thrust action
	RotationSpeed float64 // Degrees per rotate action
}

// Bullets leave the muzzle slightly ahead of the hull so the owner exclusion
// is a formality rather than a necessity.
const muzzleOffset = 5.0

func (w *World) spawnPlayer(pos Vec) *Entity {
	pc := w.cfg.Player
	hb := BoxAround(pos, pc.HitboxSize)
	p := &Entity{
		Kind:         KindPlayer,
		Pos:          pos,
		Angle:        270, // Facing up
		Health:       pc.Health,
		MaxHealth:    pc.Health,
		MaxSpeed:     pc.MaxSpeed,
		Hitbox:       &hb,
		hitboxSize:   pc.HitboxSize,
		invincibleMS: pc.InvincibilityMS,
		Player: &PlayerState{
			Power:         pc.Power,
			Thrust:        pc.Thrust,
			RotationSpeed: pc.RotationSpeed,
		},
	}
	w.hittables = append(w.hittables, p)
	return p
}

// ApplyAction translates one discrete action into body manipulation for the
// current tick. Unknown actions are no-ops.
func (w *World) ApplyAction(style ControlStyle, action int) {
	p := w.player
	if p == nil || p.removed || !w.alive {
		return
	}
	st := p.Player

	if style == StylePad {
		// The pad snaps facing to the cardinal before thrusting, so shots
		// always fire along the last movement direction.
		switch action {
		case PadUp:
			p.Angle = 270
			p.thrust(st.Thrust)
		case PadDown:
			p.Angle = 90
			p.thrust(st.Thrust)
		case PadLeft:
			p.Angle = 180
			p.thrust(st.Thrust)
		case PadRight:
			p.Angle = 0
			p.thrust(st.Thrust)
		case PadShoot:
			w.playerShoot(p)
		}
		return
	}

	switch action {
	case PilotLeft:
		p.Angle -= st.RotationSpeed
	case PilotRight:
		p.Angle += st.RotationSpeed
	case PilotForward:
		p.thrust(st.Thrust)
	case PilotShoot:
		w.playerShoot(p)
	}
}

func (w *World) playerShoot(p *Entity) {
	dir := FromAngleDeg(p.Angle)
	origin := p.Pos.Add(dir.Scale(muzzleOffset))
	w.spawnBullet(origin, dir, w.cfg.Bullet.Speed, p.Player.Power, p)
}
