package arena

import "math"

// SweepImmediate is the entry time reported for an obstacle that already
// overlaps the moving box at the start of the sweep. It is below every valid
// entry time so an existing overlap always wins the tie-break.
const SweepImmediate = -1.0

// SweepHit describes the first obstacle struck along a sweep.
type SweepHit struct {
	Target *Entity
	// Entry is the normalized time of impact in [0, 1], or SweepImmediate
	// for an obstacle that was overlapping at t=0.
	Entry float64
}

// SweepRect performs swept AABB collision detection of a box moving by delta
// (the full displacement for this tick) against the hitboxes of the given
// obstacles. Obstacles in exclude or without a hitbox are skipped. Returns
// the earliest hit, or nil.
//
// Axis-aligned, zero-rotation boxes only. A zero velocity component with no
// static overlap on that axis is a guaranteed miss for the candidate.
func SweepRect(box Box, delta Vec, obstacles []*Entity, exclude map[*Entity]struct{}) *SweepHit {
	vx, vy := delta.X, delta.Y
	earliest := 1.0
	var hit *Entity

	for _, obs := range obstacles {
		if obs.Hitbox == nil {
			continue
		}
		if _, skip := exclude[obs]; skip {
			continue
		}
		ob := *obs.Hitbox

		if box.Overlaps(ob) {
			earliest = SweepImmediate
			hit = obs
			continue
		}

		// Signed entry/exit distances per axis
		var xEntry, xExit float64
		if vx > 0 {
			xEntry = ob.Left - box.Right()
			xExit = ob.Right() - box.Left
		} else {
			xEntry = ob.Right() - box.Left
			xExit = ob.Left - box.Right()
		}

		var yEntry, yExit float64
		if vy > 0 {
			yEntry = ob.Top - box.Bottom()
			yExit = ob.Bottom() - box.Top
		} else {
			yEntry = ob.Bottom() - box.Top
			yExit = ob.Top - box.Bottom()
		}

		// Normalized entry/exit times per axis
		var txEntry, txExit float64
		if vx == 0 {
			if box.Right() <= ob.Left || box.Left >= ob.Right() {
				continue // parallel miss on x
			}
			txEntry = math.Inf(-1)
			txExit = math.Inf(1)
		} else {
			txEntry = xEntry / vx
			txExit = xExit / vx
		}

		var tyEntry, tyExit float64
		if vy == 0 {
			if box.Bottom() <= ob.Top || box.Top >= ob.Bottom() {
				continue // parallel miss on y
			}
			tyEntry = math.Inf(-1)
			tyExit = math.Inf(1)
		} else {
			tyEntry = yEntry / vy
			tyExit = yExit / vy
		}

		// Entry is when both axes have entered, exit when either has left
		tEntry := math.Max(txEntry, tyEntry)
		tExit := math.Min(txExit, tyExit)

		if tEntry > tExit || tEntry < 0 || tEntry > 1 {
			continue
		}

		if tEntry < earliest {
			earliest = tEntry
			hit = obs
		}
	}

	if hit == nil {
		return nil
	}
	return &SweepHit{Target: hit, Entry: earliest}
}
