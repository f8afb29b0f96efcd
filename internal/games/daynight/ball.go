package daynight

// Ball is one of the two moving pieces. Side never changes for the
// lifetime of the ball; Dir stays unit length through every bounce.
type Ball struct {
	Side   Side
	Center Vec2
	Dir    Vec2
	Radius float64
	Speed  float64 // world units per millisecond
}

// advancePoint is the plain Euler step: p + dir*speed*dt.
func advancePoint(p, dir Vec2, speed, dt float64) Vec2 {
	return p.Add(dir.Scale(speed * dt))
}

// Advance moves the ball by one tick of dt milliseconds.
//
// The tentative position is checked against the four world edges in a
// fixed order (left, top, right, bottom); only the first crossed edge
// bounces the ball, and the reflected path restarts from the pre-tick
// center with the full dt. The board is then scanned row-major for the
// first cell of the ball's own side touching the pre-tick center; that
// cell changes hands, the direction reflects off the reported face,
// and the position is recomputed from the pre-tick center once more.
// At most one cell flips per call. Reports whether a cell flipped.
func (b *Ball) Advance(g *Grid, dt float64) bool {
	newCenter := advancePoint(b.Center, b.Dir, b.Speed, dt)
	newDir := b.Dir

	var wall Vec2
	hitWall := true
	switch {
	case newCenter.X-b.Radius < 0:
		wall = Vec2{X: 1}
	case newCenter.Y-b.Radius < 0:
		wall = Vec2{Y: -1}
	case newCenter.X+b.Radius > g.Width():
		wall = Vec2{X: -1}
	case newCenter.Y+b.Radius > g.Height():
		wall = Vec2{Y: 1}
	default:
		hitWall = false
	}
	if hitWall {
		newDir = newDir.Reflect(wall)
		newCenter = advancePoint(b.Center, newDir, b.Speed, dt)
	}

	flipped := false
scan:
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			cell := &g.Cells[row*g.Cols+col]
			if cell.Side != b.Side {
				continue
			}
			normal, hit := CircleRectNormal(b.Center, b.Radius, cell.Rect)
			if !hit {
				continue
			}
			newDir = newDir.Reflect(normal)
			newCenter = advancePoint(b.Center, newDir, b.Speed, dt)
			cell.Side = cell.Side.Opposite()
			flipped = true
			break scan
		}
	}

	b.Center = newCenter
	b.Dir = newDir
	return flipped
}
