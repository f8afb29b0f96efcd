package daynight

import "testing"

func TestCircleRectNormal(t *testing.T) {
	rect := RectF{X: 0, Y: 0, W: 25, H: 25}
	const radius = 10.0

	tests := []struct {
		name    string
		center  Vec2
		want    Vec2
		wantHit bool
	}{
		{"left face", Vec2{X: -5, Y: 12.5}, Vec2{X: -1}, true},
		{"right face", Vec2{X: 32, Y: 12.5}, Vec2{X: 1}, true},
		{"top face", Vec2{X: 12.5, Y: -6}, Vec2{Y: -1}, true},
		{"bottom face", Vec2{X: 12.5, Y: 32}, Vec2{Y: 1}, true},

		// Exactly touching counts as a hit
		{"touching right face", Vec2{X: 35, Y: 12.5}, Vec2{X: 1}, true},
		{"touching corner", Vec2{X: 31, Y: 33}, Vec2{X: 1}, true},

		// Corner contacts and a center inside the rectangle fall back
		// to the fixed +X normal
		{"corner overlap", Vec2{X: 30, Y: 30}, Vec2{X: 1}, true},
		{"center inside", Vec2{X: 10, Y: 10}, Vec2{X: 1}, true},

		{"miss to the right", Vec2{X: 50, Y: 12.5}, Vec2{}, false},
		{"miss past corner", Vec2{X: 32, Y: 33.5}, Vec2{}, false},
		{"miss above", Vec2{X: 12.5, Y: -10.5}, Vec2{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, hit := CircleRectNormal(tc.center, radius, rect)
			if hit != tc.wantHit {
				t.Fatalf("hit = %v, expected %v", hit, tc.wantHit)
			}
			if hit && got != tc.want {
				t.Errorf("normal = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestCircleRectNormalOffsetRect(t *testing.T) {
	// Same geometry shifted into board space: the col-4 cell of the
	// classic board, approached from the night half.
	rect := RectF{X: 100, Y: 0, W: 25, H: 25}

	normal, hit := CircleRectNormal(Vec2{X: 130, Y: 12.5}, 10, rect)
	if !hit {
		t.Fatal("expected a hit 5 units from the right face")
	}
	if normal != (Vec2{X: 1}) {
		t.Errorf("normal = %v, expected (1, 0)", normal)
	}

	if _, hit := CircleRectNormal(Vec2{X: 140, Y: 12.5}, 10, rect); hit {
		t.Error("expected a miss 15 units from the right face")
	}
}

func TestRectFEdges(t *testing.T) {
	r := RectF{X: 75, Y: 50, W: 25, H: 25}
	if r.Right() != 100 {
		t.Errorf("Right = %v, expected 100", r.Right())
	}
	if r.Bottom() != 75 {
		t.Errorf("Bottom = %v, expected 75", r.Bottom())
	}
}
