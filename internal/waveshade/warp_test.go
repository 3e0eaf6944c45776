package waveshade

import (
	"math"
	"testing"
)

func TestWarpPlane(t *testing.T) {
	c := WarpPlane(Vec2{math.Pi / 2, 0.7}, 2.5)
	if !nearly(c.X, 1-2.5, 1e-12) {
		t.Fatalf("warped x mismatch: %.12g", c.X)
	}
	if c.Y != 0.7 {
		t.Fatalf("y must pass through: %.12g", c.Y)
	}
}

func TestWarpPlaneSlidesWithTime(t *testing.T) {
	at := func(tm Real) Real { return WarpPlane(Vec2{1, 0}, tm).X }
	if !nearly(at(1)-at(3), 2, 1e-12) {
		t.Fatal("time must shift the warped x linearly")
	}
}

func TestWarpDirection(t *testing.T) {
	d := WarpDirection(Basis{math.Pi / 6, -2, 3})
	if !nearly(d.X, 0.5, 1e-12) {
		t.Fatalf("warped x mismatch: %.12g", d.X)
	}
	if d.Y != -2 || d.Z != 3 {
		t.Fatalf("y/z must pass through: %+v", d)
	}
}
