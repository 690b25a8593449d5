package trellis

import "testing"

func TestBoxConnectionPoints(t *testing.T) {
	b := NewBox("b", Rect{X: 100, Y: 100, Width: 50, Height: 50})

	want := []Point{
		{125, 100}, // top
		{150, 125}, // right
		{125, 150}, // bottom
		{100, 125}, // left
	}
	pts := b.ConnectionPoints()
	if len(pts) != len(want) {
		t.Fatalf("got %d points, want %d", len(pts), len(want))
	}
	for i, cp := range pts {
		if cp.Point != want[i] {
			t.Errorf("point %d = %v, want %v", i, cp.Point, want[i])
		}
		if cp.Grip != GripBody {
			t.Errorf("point %d grip = %v, want Body", i, cp.Grip)
		}
	}
}

func TestBoxMoveBy(t *testing.T) {
	b := NewBox("b", Rect{X: 10, Y: 20, Width: 30, Height: 40})
	b.MoveBy(Delta{X: 5, Y: -5})

	if b.Rect != (Rect{X: 15, Y: 15, Width: 30, Height: 40}) {
		t.Errorf("Rect after MoveBy = %+v", b.Rect)
	}
	if b.ConnectionPoints()[0].Point != (Point{30, 15}) {
		t.Error("connection points should track the moved rectangle")
	}
}

func TestBoxAt(t *testing.T) {
	b := NewBox("b", Rect{X: 0, Y: 0, Width: 10, Height: 10})

	if !b.At(Point{5, 5}) {
		t.Error("interior point should hit")
	}
	if b.At(Point{15, 5}) {
		t.Error("exterior point should miss")
	}
	b.Hidden = true
	if b.At(Point{5, 5}) {
		t.Error("hidden box should never hit")
	}
}

func TestWireAt(t *testing.T) {
	w := NewWire("w", Point{0, 0}, Point{100, 0})

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"on segment", Point{50, 0}, true},
		{"just off segment", Point{50, 2}, true},
		{"too far off", Point{50, 5}, false},
		{"near start", Point{0, 1}, true},
		{"past end", Point{110, 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.At(tt.p); got != tt.want {
				t.Errorf("At(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestWireAtDiagonal(t *testing.T) {
	w := NewWire("w", Point{0, 0}, Point{100, 100})
	if !w.At(Point{50, 50}) {
		t.Error("midpoint of diagonal should hit")
	}
	if w.At(Point{50, 60}) {
		t.Error("point off the diagonal should miss")
	}
}

func TestWireBoundsNormalized(t *testing.T) {
	w := NewWire("w", Point{100, 80}, Point{20, 30})
	want := Rect{X: 20, Y: 30, Width: 80, Height: 50}
	if w.Bounds() != want {
		t.Errorf("Bounds = %+v, want %+v", w.Bounds(), want)
	}
}

func TestWireMoveGrip(t *testing.T) {
	w := NewWire("w", Point{0, 0}, Point{10, 10})

	w.MoveGrip(GripStart, Delta{X: 1, Y: 2})
	if w.Start != (Point{1, 2}) || w.End != (Point{10, 10}) {
		t.Errorf("after start move: %v -> %v", w.Start, w.End)
	}

	w.MoveGrip(GripEnd, Delta{X: -1, Y: -1})
	if w.End != (Point{9, 9}) {
		t.Errorf("after end move: end = %v", w.End)
	}

	w.MoveGrip(GripNone, Delta{X: 1, Y: 1})
	if w.Start != (Point{2, 3}) || w.End != (Point{10, 10}) {
		t.Errorf("GripNone should move both ends: %v -> %v", w.Start, w.End)
	}
}

func TestWireGripBookkeeping(t *testing.T) {
	w := NewWire("w", Point{0, 0}, Point{10, 0})
	a := NewBox("a", Rect{})
	b := NewBox("b", Rect{})

	w.SetGripConnection(GripStart, a)
	w.SetGripConnection(GripEnd, b)
	if w.GripConnection(GripStart) != Element(a) || w.GripConnection(GripEnd) != Element(b) {
		t.Fatal("grip records not stored")
	}

	w.DisconnectGrip(GripStart)
	if w.GripConnection(GripStart) != nil {
		t.Error("start record should clear")
	}
	if w.GripConnection(GripEnd) != Element(b) {
		t.Error("end record should survive")
	}

	w.SetGripConnection(GripStart, a)
	w.DisconnectGrip(GripNone)
	if w.GripConnection(GripStart) != nil || w.GripConnection(GripEnd) != nil {
		t.Error("GripNone should clear every record")
	}
}

func TestFilterPoints(t *testing.T) {
	w := NewWire("w", Point{0, 0}, Point{10, 0})

	if got := filterPoints(w, GripNone); len(got) != 2 {
		t.Errorf("GripNone filter = %d points, want 2", len(got))
	}
	got := filterPoints(w, GripEnd)
	if len(got) != 1 || got[0].Grip != GripEnd {
		t.Errorf("GripEnd filter = %+v, want the end point only", got)
	}
}

func TestClosestPoint(t *testing.T) {
	b := NewBox("b", Rect{X: 100, Y: 100, Width: 50, Height: 50})

	cp, ok := closestPoint(b, Point{155, 120}, 8)
	if !ok {
		t.Fatal("expected a point within range")
	}
	if cp.Point != (Point{150, 125}) {
		t.Errorf("closest = %v, want the right-edge midpoint", cp.Point)
	}

	if _, ok := closestPoint(b, Point{200, 200}, 8); ok {
		t.Error("no point should qualify far outside range")
	}
}
