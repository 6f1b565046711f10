package arena

import (
	"math"
	"testing"
)

func TestNormZeroVector(t *testing.T) {
	if got := V(0, 0).Norm(); got != (Vec{}) {
		t.Fatalf("Norm of zero = %v, want zero", got)
	}
}

func TestNormNonFinite(t *testing.T) {
	got := V(math.Inf(1), 0).Norm()
	if math.Abs(got.X-1) > 1e-9 || got.Y != 0 {
		t.Fatalf("Norm of (+Inf, 0) = %v, want (1, 0)", got)
	}
	got = V(math.Inf(-1), math.Inf(1)).Norm()
	want := 1 / math.Sqrt2
	if math.Abs(got.X+want) > 1e-9 || math.Abs(got.Y-want) > 1e-9 {
		t.Fatalf("Norm of (-Inf, +Inf) = %v, want (-0.707, 0.707)", got)
	}
}

func TestLimit(t *testing.T) {
	v := V(30, 40).Limit(5)
	if math.Abs(v.Len()-5) > 1e-9 {
		t.Fatalf("Limit magnitude = %v, want 5", v.Len())
	}
	if math.Abs(v.X-3) > 1e-9 || math.Abs(v.Y-4) > 1e-9 {
		t.Fatalf("Limit direction changed: %v", v)
	}
	same := V(3, 4)
	if got := same.Limit(10); got != same {
		t.Fatalf("Limit below cap must be identity, got %v", got)
	}
}

func TestAngleDegRoundTrip(t *testing.T) {
	for _, deg := range []float64{0, 45, 90, 135, 180, 225, 270, 315} {
		got := FromAngleDeg(deg).AngleDeg()
		if math.Abs(got-deg) > 1e-6 {
			t.Fatalf("round trip %v -> %v", deg, got)
		}
	}
}

func TestBoxOverlaps(t *testing.T) {
	a := BoxAround(V(5, 5), 10)
	if !a.Overlaps(BoxAround(V(12, 5), 10)) {
		t.Fatal("partial overlap not detected")
	}
	// Edge-touching boxes do not overlap
	if a.Overlaps(BoxAround(V(15, 5), 10)) {
		t.Fatal("touching edges must not count as overlap")
	}
	if a.Overlaps(BoxAround(V(30, 30), 10)) {
		t.Fatal("disjoint boxes must not overlap")
	}
}
