package arena

import (
	"math"
	"testing"
)

func obstacleAt(pos Vec, size float64) *Entity {
	hb := BoxAround(pos, size)
	return &Entity{Kind: KindEnemy, Pos: pos, Hitbox: &hb, hitboxSize: size}
}

func TestSweepRectEntryTime(t *testing.T) {
	mover := BoxAround(V(5, 5), 10)
	obstacle := obstacleAt(V(35, 5), 10)

	hit := SweepRect(mover, V(100, 0), []*Entity{obstacle}, nil)
	if hit == nil {
		t.Fatal("expected a hit")
	}
	if hit.Target != obstacle {
		t.Fatal("hit the wrong obstacle")
	}
	// Gap between right edge (10) and obstacle left edge (30) is 20 units,
	// covered at 100 units per sweep
	if math.Abs(hit.Entry-0.2) > 1e-9 {
		t.Fatalf("entry = %v, want 0.2", hit.Entry)
	}
}

func TestSweepRectDiagonalEntryTime(t *testing.T) {
	mover := BoxAround(V(0, 0), 2)
	obstacle := obstacleAt(V(10, 10), 2)

	hit := SweepRect(mover, V(20, 20), []*Entity{obstacle}, nil)
	if hit == nil {
		t.Fatal("expected a hit")
	}
	// Edges meet when both axes have covered 8 of their 20 units
	if math.Abs(hit.Entry-0.4) > 1e-9 {
		t.Fatalf("entry = %v, want 0.4", hit.Entry)
	}
}

func TestSweepRectImmediateOverlapWins(t *testing.T) {
	mover := BoxAround(V(5, 5), 10)
	overlapping := obstacleAt(V(8, 5), 10)
	farther := obstacleAt(V(35, 5), 10)

	hit := SweepRect(mover, V(100, 0), []*Entity{farther, overlapping}, nil)
	if hit == nil {
		t.Fatal("expected a hit")
	}
	if hit.Target != overlapping {
		t.Fatal("overlapping obstacle must win over a later sweep hit")
	}
	if hit.Entry != SweepImmediate {
		t.Fatalf("entry = %v, want SweepImmediate", hit.Entry)
	}
}

func TestSweepRectParallelMiss(t *testing.T) {
	mover := BoxAround(V(5, 5), 10)
	// Fully above the mover's y-range, no vertical velocity
	offAxis := obstacleAt(V(35, 25), 10)

	if hit := SweepRect(mover, V(100, 0), []*Entity{offAxis}, nil); hit != nil {
		t.Fatalf("expected no hit, got entry %v", hit.Entry)
	}
}

func TestSweepRectBackwardAndOvershootRejected(t *testing.T) {
	mover := BoxAround(V(5, 5), 10)
	behind := obstacleAt(V(-35, 5), 10)
	tooFar := obstacleAt(V(500, 5), 10)

	if hit := SweepRect(mover, V(100, 0), []*Entity{behind, tooFar}, nil); hit != nil {
		t.Fatal("obstacles behind or beyond the sweep must not register")
	}
}

func TestSweepRectExcludesOwner(t *testing.T) {
	mover := BoxAround(V(5, 5), 10)
	owner := obstacleAt(V(20, 5), 10)

	exclude := map[*Entity]struct{}{owner: {}}
	if hit := SweepRect(mover, V(100, 0), []*Entity{owner}, exclude); hit != nil {
		t.Fatal("excluded entity must be skipped")
	}
}

func TestSweepRectSkipsHitboxless(t *testing.T) {
	mover := BoxAround(V(5, 5), 10)
	husk := &Entity{Kind: KindHusk, Pos: V(35, 5)}

	if hit := SweepRect(mover, V(100, 0), []*Entity{husk}, nil); hit != nil {
		t.Fatal("hitboxless entity must be skipped")
	}
}

func TestSweepRectEarliestOfSeveral(t *testing.T) {
	mover := BoxAround(V(5, 5), 10)
	near := obstacleAt(V(35, 5), 10)
	far := obstacleAt(V(65, 5), 10)

	hit := SweepRect(mover, V(100, 0), []*Entity{far, near}, nil)
	if hit == nil || hit.Target != near {
		t.Fatal("nearest obstacle along the sweep must win")
	}
}
