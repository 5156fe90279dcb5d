package spherical

import (
	"math"
	"testing"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestEffectiveRadius(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
		x      float64
		height float64
		want   float64
	}{
		{"center lane no offset", 300, 0, 0, 300},
		{"center lane with offset", 300, 0, 0.1, 300.1},
		{"outer lane", 300, 0.75, 0.1, math.Sqrt(300*300-0.75*0.75) + 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EffectiveRadius(tt.radius, tt.x, tt.height)
			if !approxEqual(got, tt.want, 1e-9) {
				t.Errorf("EffectiveRadius() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlaceOuterLane(t *testing.T) {
	// Дорожка x=0.75 на сфере радиуса 300 со смещением 0.1 под углом
	// 2.094 рад (точка спавна при лиде 120°).
	p := Place(0.75, 2.094, 300, 0.1)

	if !approxEqual(p.Position.Y, 259.9, 0.5) {
		t.Errorf("Y = %v, want ~259.9", p.Position.Y)
	}
	if !approxEqual(p.Position.Z, -150.0, 0.5) {
		t.Errorf("Z = %v, want ~-150.0", p.Position.Z)
	}
	if p.Position.X != 0.75 {
		t.Errorf("X = %v, want 0.75", p.Position.X)
	}
}

func TestPlaceTiltIsNegatedTheta(t *testing.T) {
	p := Place(0, 1.2, 300, 0)
	if !approxEqual(p.Tilt, -1.2, 1e-12) {
		t.Errorf("Tilt = %v, want -1.2", p.Tilt)
	}
}

func TestPlaceTopOfSphere(t *testing.T) {
	// На верхней точке (θ = π/2) вся высота уходит в Y, Z равен нулю.
	p := Place(0, math.Pi/2, 300, 0.1)
	if !approxEqual(p.Position.Y, 300.1, 1e-9) {
		t.Errorf("Y = %v, want 300.1", p.Position.Y)
	}
	if !approxEqual(p.Position.Z, 0, 1e-9) {
		t.Errorf("Z = %v, want 0", p.Position.Z)
	}
}

func TestPlaceIsDeterministic(t *testing.T) {
	a := Place(0.25, 1.7, 300, 0.05)
	b := Place(0.25, 1.7, 300, 0.05)
	if a != b {
		t.Errorf("Place is not referentially transparent: %v != %v", a, b)
	}
}

func TestArcRoundTrip(t *testing.T) {
	angle := ArcAngle(1.0, 300)
	if !approxEqual(ArcLength(angle, 300), 1.0, 1e-12) {
		t.Errorf("ArcLength(ArcAngle(1)) = %v, want 1", ArcLength(angle, 300))
	}
}
