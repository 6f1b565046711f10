package arena

import (
	"fmt"

	"github.com/polygonkind/arena/internal/core"
)

// Rendering projects the continuous arena onto the character grid. World
// coordinates scale to the playfield region under a one-row HUD; terminal
// cells are roughly twice as tall as wide, which the projection ignores for
// simplicity (the arena looks slightly squashed, gameplay is unaffected).

const hudRows = 2

var archetypeGlyphs = [archetypeCount]struct {
	r rune
	c core.Color
}{
	Rammer:          {'r', core.ColorRed},
	TankierRammer:   {'T', core.ColorRed},
	ExplosiveRammer: {'x', core.ColorOrange},
	GottaGoFast:     {'>', core.ColorYellow},
	PewPew:          {'p', core.ColorMagenta},
	BigPewPew:       {'P', core.ColorMagenta},
	Spawnception:    {'S', core.ColorBlue},
	Longinus:        {'L', core.ColorRed},
}

// Render draws the world into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH))
		return
	}
	w := g.world
	if w == nil {
		return
	}

	g.renderHUD(dst)

	field := core.Rect{X: 0, Y: hudRows, W: dst.Width(), H: dst.Height() - hudRows}
	dst.DrawBox(field)

	for _, t := range w.Teleporters() {
		x, y := g.project(field, t.Pos)
		dst.SetCell(x, y, '+', core.ColorCyan)
	}
	for _, h := range w.Hittables() {
		x, y := g.project(field, h.Pos)
		switch h.Kind {
		case KindHusk:
			dst.SetCell(x, y, '%', core.ColorGray)
		case KindSpawner:
			dst.SetCell(x, y, '#', core.ColorGreen)
		case KindEnemy:
			gl := archetypeGlyphs[h.Enemy.Archetype]
			dst.SetCell(x, y, gl.r, gl.c)
		case KindPlayer:
			dst.SetCell(x, y, '@', core.ColorCyan)
			// Facing indicator one cell ahead
			nose := h.Pos.Add(FromAngleDeg(h.Angle).Scale(h.hitboxSize))
			nx, ny := g.project(field, nose)
			if nx != x || ny != y {
				dst.SetCell(nx, ny, facingRune(h.Angle), core.ColorCyan)
			}
		}
	}
	for _, b := range w.Bullets() {
		x, y := g.project(field, b.Pos)
		switch b.Kind {
		case BulletExplosion:
			dst.SetCell(x, y, '*', core.ColorOrange)
		case BulletDanmaku:
			dst.SetCell(x, y, 'o', b.Color)
		default:
			c := core.ColorWhite
			if b.Owner != w.Player() {
				c = core.ColorRed
			}
			dst.SetCell(x, y, '.', c)
		}
	}

	if g.gameOver {
		dst.DrawTextCentered(dst.Height()/2, "GAME OVER")
		dst.DrawTextCentered(dst.Height()/2+1, "Press R to restart")
	} else if g.paused {
		dst.DrawTextCentered(dst.Height()/2, "PAUSED")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	w := g.world
	p := w.Player()

	health, maxHealth, power := 0.0, 0.0, 0.0
	if p != nil {
		health, maxHealth = p.Health, p.MaxHealth
		power = p.Player.Power
	}
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d  Difficulty: %d  Power: %.0f", int(w.Score()), w.Difficulty(), power))

	barW := 20
	filled := 0
	if maxHealth > 0 {
		filled = int(health / maxHealth * float64(barW))
	}
	barColor := core.ColorGreen
	switch {
	case health <= maxHealth/4:
		barColor = core.ColorRed
	case health <= maxHealth/2:
		barColor = core.ColorYellow
	}
	dst.DrawText(1, 1, "HP [")
	for i := 0; i < barW; i++ {
		r := ' '
		if i < filled {
			r = '='
		}
		dst.SetCell(5+i, 1, r, barColor)
	}
	dst.DrawText(5+barW, 1, fmt.Sprintf("] %.0f/%.0f", health, maxHealth))
}

// project maps a world position into the playfield's interior cells.
func (g *Game) project(field core.Rect, pos Vec) (int, int) {
	innerW := field.W - 2
	innerH := field.H - 2
	x := field.X + 1 + int(pos.X/g.cfg.World.Width*float64(innerW))
	y := field.Y + 1 + int(pos.Y/g.cfg.World.Height*float64(innerH))
	return core.Clamp(x, field.X+1, field.X+field.W-2), core.Clamp(y, field.Y+1, field.Y+field.H-2)
}

func facingRune(angleDeg float64) rune {
	a := angleDeg
	for a < 0 {
		a += 360
	}
	for a >= 360 {
		a -= 360
	}
	switch {
	case a < 22.5 || a >= 337.5:
		return '>'
	case a < 67.5:
		return '\\'
	case a < 112.5:
		return 'v'
	case a < 157.5:
		return '/'
	case a < 202.5:
		return '<'
	case a < 247.5:
		return '\\'
	case a < 292.5:
		return '^'
	default:
		return '/'
	}
}
