package arena

import "math"

// Vec is a 2D vector in arena units. Value type, no ownership.
type Vec struct {
	X, Y float64
}

// V is shorthand for constructing a Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by a scalar.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vec) Dot(o Vec) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns the vector's magnitude.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the distance between two points.
func (v Vec) Dist(o Vec) float64 {
	return math.Hypot(o.X-v.X, o.Y-v.Y)
}

// Norm returns a unit vector pointing in the same direction, or the zero
// vector for zero input. Non-finite components collapse to their sign so a
// direction survives even when magnitudes overflow.
func (v Vec) Norm() Vec {
	length := v.Len()
	if length == 0 {
		return Vec{}
	}
	if !isFinite(v.X) || !isFinite(v.Y) {
		sx, sy := 0.0, 0.0
		if v.X != 0 {
			sx = math.Copysign(1, v.X)
		}
		if v.Y != 0 {
			sy = math.Copysign(1, v.Y)
		}
		length = math.Hypot(sx, sy)
		if length == 0 {
			return Vec{}
		}
		return Vec{X: sx / length, Y: sy / length}
	}
	return Vec{X: v.X / length, Y: v.Y / length}
}

// Limit clamps the vector's magnitude to max.
func (v Vec) Limit(max float64) Vec {
	if v.Len() > max {
		return v.Norm().Scale(max)
	}
	return v
}

// Rotate rotates the vector by theta radians, positive clockwise in screen
// coordinates (y grows downward).
func (v Vec) Rotate(theta float64) Vec {
	sin, cos := math.Sincos(theta)
	return Vec{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}

// AngleDeg returns the vector's angle from the +x axis in degrees, [0, 360).
func (v Vec) AngleDeg() float64 {
	deg := math.Atan2(v.Y, v.X) * 180 / math.Pi
	return math.Mod(deg+360, 360)
}

// FromAngleDeg returns the unit vector at the given angle in degrees.
func FromAngleDeg(deg float64) Vec {
	rad := deg * math.Pi / 180
	return Vec{X: math.Cos(rad), Y: math.Sin(rad)}
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// Box is an axis-aligned rectangle in arena units, stored as the top-left
// corner plus extents. Owned exclusively by one entity and recomputed from
// its position every tick.
type Box struct {
	Left, Top float64
	W, H      float64
}

// BoxAround builds a square box of the given side length centered on p.
func BoxAround(p Vec, side float64) Box {
	return Box{Left: p.X - side/2, Top: p.Y - side/2, W: side, H: side}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.Left + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Top + b.H
}

// Center returns the box's center point.
func (b Box) Center() Vec {
	return Vec{X: b.Left + b.W/2, Y: b.Top + b.H/2}
}

// Overlaps returns true if the two boxes intersect.
func (b Box) Overlaps(o Box) bool {
	if b.Left >= o.Right() || o.Left >= b.Right() {
		return false
	}
	if b.Top >= o.Bottom() || o.Top >= b.Bottom() {
		return false
	}
	return true
}

// MoveTo recenters the box on p, keeping its extents.
func (b *Box) MoveTo(p Vec) {
	b.Left = p.X - b.W/2
	b.Top = p.Y - b.H/2
}
