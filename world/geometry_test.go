package world

import (
	"math"
	"testing"
)

func TestTimeOfIntersectionCircleVsCircleHeadOn(t *testing.T) {
	// A circle moving straight at a fixed circle 10 units away should
	// collide partway through the frame, not at t=1.
	got := TimeOfIntersectionCircleVsCircle(0, 0, 10, 0, 10, 0, 5)
	if got <= 0 || got >= 1 {
		t.Fatalf("expected an intersection strictly within the frame, got %v", got)
	}
}

func TestTimeOfIntersectionCircleVsCircleMovingAway(t *testing.T) {
	got := TimeOfIntersectionCircleVsCircle(0, 0, -10, 0, 20, 0, 5)
	if got != 1 {
		t.Fatalf("moving away from the circle should never intersect, got %v", got)
	}
}

func TestTimeOfIntersectionCircleVsLinesegAlreadyTouching(t *testing.T) {
	got := TimeOfIntersectionCircleVsLineseg(5, 0, -1, 0, 0, -10, 0, 10, 5)
	if got != 0 {
		t.Fatalf("circle already at segment distance and moving into it should report t=0, got %v", got)
	}
}

func TestOverlapCircleVsCircle(t *testing.T) {
	if !OverlapCircleVsCircle(0, 0, 5, 6, 0, 5) {
		t.Fatal("circles 6 apart with combined radius 10 should overlap")
	}
	if OverlapCircleVsCircle(0, 0, 5, 20, 0, 5) {
		t.Fatal("circles 20 apart with combined radius 10 should not overlap")
	}
}

func TestPenetrationSquareVsPointInside(t *testing.T) {
	depen, ok := PenetrationSquareVsPoint(0, 0, 2, 0, 5)
	if !ok {
		t.Fatal("point inside square should penetrate")
	}
	if depen.NormalX != 1 || depen.NormalY != 0 {
		t.Fatalf("expected push along +x, got %+v", depen)
	}
}

func TestPenetrationSquareVsPointOutside(t *testing.T) {
	_, ok := PenetrationSquareVsPoint(0, 0, 20, 0, 5)
	if ok {
		t.Fatal("point far outside square should not penetrate")
	}
}

func TestMapOrientationToVector(t *testing.T) {
	x, y := MapOrientationToVector(0)
	if x != 1 || y != 0 {
		t.Fatalf("orientation 0 should be +x, got (%v,%v)", x, y)
	}
	x, y = MapOrientationToVector(4)
	if x != -1 || y != 0 {
		t.Fatalf("orientation 4 should be -x, got (%v,%v)", x, y)
	}
	x, y = MapOrientationToVector(1)
	want := math.Sqrt2 / 2
	if math.Abs(x-want) > 1e-9 || math.Abs(y-want) > 1e-9 {
		t.Fatalf("orientation 1 should be diagonal, got (%v,%v)", x, y)
	}
}

func TestGridSweepCircleVsTilesStopsAtSolidBorder(t *testing.T) {
	g := NewGrid()
	g.LoadTiles(make([]byte, 42*23)) // all-empty interior; the outer ring stays solid
	// The solid border tile at cell (0,*) spans x 0..24; sweeping left from
	// just inside the level should be stopped before reaching it.
	tFrac := g.SweepCircleVsTiles(40, 60, -25, 0, 5)
	if tFrac >= 1 {
		t.Fatalf("expected the sweep to be interrupted by the border, got t=%v", tFrac)
	}
}
