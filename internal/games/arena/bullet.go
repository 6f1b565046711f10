package arena

import "github.com/polygonkind/arena/internal/core"

// BulletKind discriminates projectile variants. Bullets live in their own
// collection, separate from hittables; they deal damage but take none.
type BulletKind int

const (
	// BulletShot is a plain projectile moving along a fixed direction.
	BulletShot BulletKind = iota
	// BulletExplosion is a stationary area hazard with a fixed lifetime.
	BulletExplosion
	// BulletDanmaku is a colored boss projectile, otherwise a plain shot.
	BulletDanmaku
)

// Bullet is a projectile or explosion. Owner is a weak reference used only to
// exclude self-collision; the owner may be destroyed mid-flight and the
// bullet keeps flying.
type Bullet struct {
	Kind   BulletKind
	Pos    Vec
	Dir    Vec // Unit vector; zero for explosions
	Speed  float64
	Damage float64
	Owner  *Entity
	Hitbox Box

	// Explosion-only fields
	Radius float64
	LifeMS float64
	bornAt float64
	hit    map[*Entity]struct{}

	// Danmaku-only
	Color core.Color

	removed bool
}

// Removed reports whether the bullet has been despawned.
func (b *Bullet) Removed() bool {
	return b.removed
}

func (w *World) spawnBullet(pos Vec, dir Vec, speed, damage float64, owner *Entity) *Bullet {
	b := &Bullet{
		Kind:   BulletShot,
		Pos:    pos,
		Dir:    dir.Norm(),
		Speed:  speed,
		Damage: damage,
		Owner:  owner,
		Hitbox: BoxAround(pos, w.cfg.Bullet.HitboxSize),
	}
	w.bullets = append(w.bullets, b)
	return b
}

func (w *World) spawnDanmaku(pos Vec, dir Vec, speed, damage, size float64, color core.Color, owner *Entity) *Bullet {
	b := &Bullet{
		Kind:   BulletDanmaku,
		Pos:    pos,
		Dir:    dir.Norm(),
		Speed:  speed,
		Damage: damage,
		Owner:  owner,
		Hitbox: BoxAround(pos, w.cfg.Bullet.HitboxSize*size),
		Color:  color,
	}
	w.bullets = append(w.bullets, b)
	return b
}

func (w *World) spawnExplosion(pos Vec, damage, radius float64, owner *Entity) *Bullet {
	b := &Bullet{
		Kind:   BulletExplosion,
		Pos:    pos,
		Damage: damage,
		Owner:  owner,
		Hitbox: Box{Left: pos.X - radius, Top: pos.Y - radius, W: radius * 2, H: radius * 2},
		Radius: radius,
		LifeMS: w.cfg.Bullet.ExplosionLifeMS,
		bornAt: w.now,
		hit:    make(map[*Entity]struct{}),
	}
	w.bullets = append(w.bullets, b)
	return b
}

// stepBullet advances one bullet for a tick. Shots sweep against every
// hittable except their owner and despawn on the first hit or on fully
// leaving the arena. Explosions damage each overlapping hittable at most once
// over their lifetime and despawn on expiry.
func (w *World) stepBullet(b *Bullet, dt float64) {
	if b.removed {
		return
	}
	if b.Kind == BulletExplosion {
		w.stepExplosion(b)
		return
	}

	delta := b.Dir.Scale(b.Speed * dt)
	var exclude map[*Entity]struct{}
	if b.Owner != nil {
		exclude = map[*Entity]struct{}{b.Owner: {}}
	}
	if h := SweepRect(b.Hitbox, delta, w.hittables, exclude); h != nil {
		h.Target.TakeDamage(b.Damage, w.now)
		w.removeBullet(b)
		return
	}

	b.Pos = b.Pos.Add(delta)
	half := b.Hitbox.W / 2
	if b.Pos.X < -half || b.Pos.X > w.cfg.World.Width+half ||
		b.Pos.Y < -half || b.Pos.Y > w.cfg.World.Height+half {
		w.removeBullet(b)
		return
	}
	b.Hitbox.MoveTo(b.Pos)
}

func (w *World) stepExplosion(b *Bullet) {
	if w.now-b.bornAt >= b.LifeMS {
		w.removeBullet(b)
		return
	}
	for _, h := range w.hittables {
		if h.Hitbox == nil {
			continue
		}
		if _, done := b.hit[h]; done {
			continue
		}
		// Coarse range cull before the exact box test
		reach := b.Radius + V(h.Hitbox.W/2, h.Hitbox.W/2).Len()
		if b.Pos.Dist(h.Pos) > reach {
			continue
		}
		if !b.Hitbox.Overlaps(*h.Hitbox) {
			continue
		}

		dist := b.Pos.Dist(h.Pos)
		if dist < 1e-6 {
			dist = 1e-6
		}
		falloff := (b.Radius / 2) / ((dist + 1) * (dist + 1))
		force := b.Damage * falloff * 50
		h.ApplyImpulse(h.Pos.Sub(b.Pos).Norm().Scale(force))
		h.TakeDamage(b.Damage, w.now)
		b.hit[h] = struct{}{}
	}
}

func (w *World) removeBullet(b *Bullet) {
	if b.removed {
		return
	}
	b.removed = true
	for i, x := range w.bullets {
		if x == b {
			w.bullets = append(w.bullets[:i], w.bullets[i+1:]...)
			break
		}
	}
}
