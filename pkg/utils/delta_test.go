package utils

import (
	"math"
	"testing"
)

func TestNewDeltaZeroElapsed(t *testing.T) {
	d := NewDelta(0, 1)
	if d.Cos != 1 || d.Sin != 0 {
		t.Errorf("zero delta: got cos=%v sin=%v, want 1, 0", d.Cos, d.Sin)
	}
	if got := d.Rotate(V(5, 7)); got != V(5, 7) {
		t.Errorf("Rotate with zero delta changed vector: %v", got)
	}
}

// TestDeltaRotationRate 1 度/秒的自转在 90 秒后转过 90 度
func TestDeltaRotationRate(t *testing.T) {
	d := NewDelta(90_000, 1)
	got := d.Rotate(V(1, 0))
	if !almostEqual(got.X, 0) || !almostEqual(got.Y, 1) {
		t.Errorf("Rotate 90deg: got %v, want (0,1)", got)
	}
}

func TestDeltaPreservesDistance(t *testing.T) {
	d := NewDelta(16.7, 1)
	center := V(600, 600)
	p := V(600, 100)
	rotated := d.RotateAround(p, center)

	before := p.Sub(center).Magnitude()
	after := rotated.Sub(center).Magnitude()
	if math.Abs(before-after) > 1e-9 {
		t.Errorf("RotateAround changed radius: %v -> %v", before, after)
	}
	if rotated == p {
		t.Error("RotateAround did not move the point")
	}
}
