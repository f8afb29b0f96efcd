package daynight

import "math"

// RectF is an axis-aligned rectangle in world units: top-left corner
// plus size. Y grows downward, matching screen coordinates.
type RectF struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the right edge.
func (r RectF) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r RectF) Bottom() float64 { return r.Y + r.H }

// CircleRectNormal tests a circle against a rectangle and, on contact,
// reports the outward normal of the face that was hit. The second
// return value is false when the two do not touch.
//
// Nearest-point method, based on
// https://www.jeffreythompson.org/collision-detection/circle-rect.php:
// clamp the center onto the rectangle, measure the distance to the
// clamped point, then pick the face from whichever span the center
// still lies within. Exact touching (distance == radius) counts as a
// hit. A corner contact matches neither span and falls back to a fixed
// (1, 0) normal; so does a center buried inside the rectangle. The
// fallback is a crude approximation of a true corner bounce, but it is
// part of the simulation's observable trajectories and stays as is.
func CircleRectNormal(center Vec2, radius float64, rect RectF) (Vec2, bool) {
	test := center

	var xNormal, yNormal Vec2
	var hasX, hasY bool
	if center.X < rect.X {
		test.X = rect.X
		xNormal, hasX = Vec2{X: -1}, true
	} else if center.X > rect.Right() {
		test.X = rect.Right()
		xNormal, hasX = Vec2{X: 1}, true
	}
	if center.Y < rect.Y {
		test.Y = rect.Y
		yNormal, hasY = Vec2{Y: -1}, true
	} else if center.Y > rect.Bottom() {
		test.Y = rect.Bottom()
		yNormal, hasY = Vec2{Y: 1}, true
	}

	dx := center.X - test.X
	dy := center.Y - test.Y
	if math.Sqrt(dx*dx+dy*dy) > radius {
		return Vec2{}, false
	}

	inX := rect.X <= center.X && center.X <= rect.Right()
	inY := rect.Y <= center.Y && center.Y <= rect.Bottom()
	switch {
	case inX && hasY:
		return yNormal, true
	case inY && hasX:
		return xNormal, true
	}
	return Vec2{X: 1}, true
}
