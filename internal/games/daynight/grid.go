package daynight

// Side tags a cell or ball as belonging to the day or night camp.
type Side uint8

const (
	SideDay Side = iota
	SideNight
)

// String returns the lowercase name of the side.
func (s Side) String() string {
	if s == SideDay {
		return "day"
	}
	return "night"
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SideDay {
		return SideNight
	}
	return SideDay
}

// Cell is one tile of the board: a fixed rectangle in world space plus
// the side it currently belongs to. Only the side ever changes.
type Cell struct {
	Rect RectF
	Side Side
}

// Grid is the board. Cells are stored in row-major order
// (index = row*Cols + col) and tile the world rectangle exactly.
// Dimensions and cell geometry are fixed at construction; only cell
// sides change afterward.
type Grid struct {
	Cols     int
	Rows     int
	CellSize float64
	Cells    []Cell
}

// NewGrid builds a board of cols x rows square cells. Columns in the
// left half start as day, the rest as night.
func NewGrid(cols, rows int, cellSize float64) *Grid {
	g := &Grid{
		Cols:     cols,
		Rows:     rows,
		CellSize: cellSize,
		Cells:    make([]Cell, cols*rows),
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			side := SideNight
			if 2*col < cols {
				side = SideDay
			}
			g.Cells[row*cols+col] = Cell{
				Rect: RectF{
					X: cellSize * float64(col),
					Y: cellSize * float64(row),
					W: cellSize,
					H: cellSize,
				},
				Side: side,
			}
		}
	}
	return g
}

// At returns the cell at (col, row).
func (g *Grid) At(col, row int) Cell {
	return g.Cells[row*g.Cols+col]
}

// SetSide retags the cell at (col, row).
func (g *Grid) SetSide(col, row int, s Side) {
	g.Cells[row*g.Cols+col].Side = s
}

// Width returns the world width covered by the board.
func (g *Grid) Width() float64 { return float64(g.Cols) * g.CellSize }

// Height returns the world height covered by the board.
func (g *Grid) Height() float64 { return float64(g.Rows) * g.CellSize }

// Counts returns how many cells currently belong to each side.
func (g *Grid) Counts() (day, night int) {
	for i := range g.Cells {
		if g.Cells[i].Side == SideDay {
			day++
		} else {
			night++
		}
	}
	return day, night
}

// Clone returns a deep copy of the board.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)
	clone := *g
	clone.Cells = cells
	return &clone
}
