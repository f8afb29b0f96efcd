package daynight

import "testing"

func TestNewGridSplitsBoardInHalf(t *testing.T) {
	g := NewGrid(10, 10, 25.0)

	if g.Width() != 250 || g.Height() != 250 {
		t.Errorf("world size = %vx%v, expected 250x250", g.Width(), g.Height())
	}

	// Left five columns start as day, right five as night
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			want := SideNight
			if col < 5 {
				want = SideDay
			}
			if got := g.At(col, row).Side; got != want {
				t.Fatalf("cell (%d, %d) = %v, expected %v", col, row, got, want)
			}
		}
	}

	day, night := g.Counts()
	if day != 50 || night != 50 {
		t.Errorf("counts = %d day, %d night, expected an even 50/50 split", day, night)
	}
}

func TestNewGridOddWidthGivesDayTheExtraColumn(t *testing.T) {
	g := NewGrid(3, 2, 25.0)

	day, night := g.Counts()
	if day != 4 || night != 2 {
		t.Errorf("counts = %d day, %d night, expected 4 day, 2 night", day, night)
	}
}

func TestGridCellRects(t *testing.T) {
	g := NewGrid(10, 10, 25.0)

	want := RectF{X: 75, Y: 50, W: 25, H: 25}
	if got := g.At(3, 2).Rect; got != want {
		t.Errorf("cell (3, 2) rect = %v, expected %v", got, want)
	}

	// Cells tile the world exactly
	last := g.At(9, 9).Rect
	if last.Right() != g.Width() || last.Bottom() != g.Height() {
		t.Errorf("last cell ends at (%v, %v), expected the world corner (%v, %v)",
			last.Right(), last.Bottom(), g.Width(), g.Height())
	}
}

func TestGridSetSide(t *testing.T) {
	g := NewGrid(10, 10, 25.0)

	g.SetSide(4, 0, SideNight)
	if g.At(4, 0).Side != SideNight {
		t.Error("cell (4, 0) should be night after SetSide")
	}

	day, night := g.Counts()
	if day != 49 || night != 51 {
		t.Errorf("counts after one flip = %d/%d, expected 49/51", day, night)
	}
}

func TestGridClone(t *testing.T) {
	g := NewGrid(4, 4, 10.0)
	clone := g.Clone()

	clone.SetSide(0, 0, SideNight)

	if g.At(0, 0).Side != SideDay {
		t.Error("mutating a clone should not touch the original")
	}
	if clone.At(0, 0).Side != SideNight {
		t.Error("clone should keep its own mutation")
	}
}

func TestSide(t *testing.T) {
	if SideDay.Opposite() != SideNight || SideNight.Opposite() != SideDay {
		t.Error("Opposite should swap day and night")
	}
	if SideDay.String() != "day" || SideNight.String() != "night" {
		t.Errorf("String = %q/%q, expected day/night", SideDay, SideNight)
	}
}
