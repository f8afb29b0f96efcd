package daynight

import "math"

// Vec2 is a 2D vector in world units. Operations return new values;
// nothing here mutates the receiver.
type Vec2 struct {
	X, Y float64
}

func (a Vec2) Add(b Vec2) Vec2      { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Scale(s float64) Vec2 { return Vec2{a.X * s, a.Y * s} }
func (a Vec2) Dot(b Vec2) float64   { return a.X*b.X + a.Y*b.Y }
func (a Vec2) Len() float64         { return math.Hypot(a.X, a.Y) }

// Normalize returns the unit vector pointing the same way as a.
// Panics on the zero vector: every direction in the simulation is
// built from non-zero seeds, so a zero length here is a bug upstream.
func (a Vec2) Normalize() Vec2 {
	l := a.Len()
	if l == 0 {
		panic("daynight: normalize of zero vector")
	}
	return Vec2{a.X / l, a.Y / l}
}

// Reflect mirrors a across a surface with the given outward normal:
// r = a - 2*dot(a, n)*n. The normal must be unit length for the
// result to preserve a's magnitude.
func (a Vec2) Reflect(n Vec2) Vec2 {
	d := 2 * a.Dot(n)
	return Vec2{a.X - d*n.X, a.Y - d*n.Y}
}
