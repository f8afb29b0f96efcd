package daynight

import (
	"math"
	"testing"
)

const floatTolerance = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < floatTolerance
}

func vecApprox(a, b Vec2) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y)
}

func TestVec2Basics(t *testing.T) {
	a := Vec2{X: 1, Y: 2}
	b := Vec2{X: 3, Y: -4}

	if got := a.Add(b); got != (Vec2{X: 4, Y: -2}) {
		t.Errorf("Add = %v, expected (4, -2)", got)
	}
	if got := a.Scale(2.5); got != (Vec2{X: 2.5, Y: 5}) {
		t.Errorf("Scale = %v, expected (2.5, 5)", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot = %v, expected -5", got)
	}
	if got := b.Len(); got != 5 {
		t.Errorf("Len = %v, expected 5", got)
	}
}

func TestNormalize(t *testing.T) {
	v := Vec2{X: 3, Y: 4}.Normalize()
	if !vecApprox(v, Vec2{X: 0.6, Y: 0.8}) {
		t.Errorf("Normalize(3, 4) = %v, expected (0.6, 0.8)", v)
	}

	d := Vec2{X: 1, Y: 1}.Normalize()
	if !approx(d.Len(), 1) {
		t.Errorf("normalized diagonal has length %v, expected 1", d.Len())
	}
}

func TestNormalizeZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Normalize on the zero vector should panic")
		}
	}()
	Vec2{}.Normalize()
}

func TestReflect(t *testing.T) {
	tests := []struct {
		name   string
		v      Vec2
		normal Vec2
		want   Vec2
	}{
		{"head-on into left wall", Vec2{X: -1}, Vec2{X: 1}, Vec2{X: 1}},
		{"head-on into right wall", Vec2{X: 1}, Vec2{X: -1}, Vec2{X: -1}},
		{"diagonal off floor", Vec2{X: 0.707, Y: 0.707}, Vec2{Y: -1}, Vec2{X: 0.707, Y: -0.707}},
		{"diagonal off ceiling", Vec2{X: 0.6, Y: -0.8}, Vec2{Y: 1}, Vec2{X: 0.6, Y: 0.8}},
		{"oblique off vertical face", Vec2{X: 0.6, Y: 0.8}, Vec2{X: 1}, Vec2{X: -0.6, Y: 0.8}},
		{"parallel to surface unchanged", Vec2{X: 1}, Vec2{Y: 1}, Vec2{X: 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.v.Reflect(tc.normal)
			if !vecApprox(got, tc.want) {
				t.Errorf("Reflect(%v, %v) = %v, expected %v", tc.v, tc.normal, got, tc.want)
			}
			if !approx(got.Len(), tc.v.Len()) {
				t.Errorf("Reflect changed length: %v -> %v", tc.v.Len(), got.Len())
			}
		})
	}
}

func TestReflectIgnoresNormalSign(t *testing.T) {
	// Reflection across a face is the same whichever way the unit
	// normal points, so boundary and cell normals only need the right
	// axis, not the right orientation.
	v := Vec2{X: 0.707, Y: 0.707}
	n := Vec2{Y: 1}
	flipped := Vec2{Y: -1}
	if got, want := v.Reflect(n), v.Reflect(flipped); !vecApprox(got, want) {
		t.Errorf("Reflect(%v, %v) = %v but Reflect(%v, %v) = %v", v, n, got, v, flipped, want)
	}
}
