package trellis

import "testing"

// drain pumps the inject queue until empty, one event per tick like Update.
func drain(v *View) {
	for v.processInjectedInput() {
	}
}

func TestInjectClickSelects(t *testing.T) {
	ctrl := NewController(DefaultConfig())
	box := NewBox("b", Rect{X: 0, Y: 0, Width: 40, Height: 40})
	ctrl.AddElement(box)
	v := NewView(ctrl)

	v.InjectClick(Point{10, 10})
	if v.InjectPending() != 2 {
		t.Fatalf("a click queues press and release, got %d", v.InjectPending())
	}
	drain(v)

	if ctrl.Selected() != Element(box) {
		t.Error("the injected click should select the box")
	}
	if ctrl.State() != StateIdle {
		t.Errorf("the gesture should have ended, got %v", ctrl.State())
	}
	if v.InjectPending() != 0 {
		t.Errorf("the queue should drain, %d left", v.InjectPending())
	}
}

func TestInjectDragMovesElement(t *testing.T) {
	ctrl := NewController(DefaultConfig())
	box := NewBox("b", Rect{X: 0, Y: 0, Width: 40, Height: 40})
	ctrl.AddElement(box)
	v := NewView(ctrl)

	v.InjectDrag(Point{10, 10}, Point{50, 30}, 6)
	drain(v)

	if box.Rect.X != 40 || box.Rect.Y != 20 {
		t.Errorf("the drag should carry the box by the full distance, got %+v", box.Rect)
	}
	if ctrl.State() != StateIdle {
		t.Errorf("the drag should end released, got %v", ctrl.State())
	}
}

func TestInjectDragSnapsWire(t *testing.T) {
	ctrl := NewController(DefaultConfig())
	box := NewBox("b", Rect{X: 100, Y: 100, Width: 50, Height: 50})
	wire := NewWire("w", Point{240, 125}, Point{170, 125})
	ctrl.AddElement(box)
	ctrl.AddElement(wire)
	v := NewView(ctrl)

	// Walk the end handle toward the box's right-edge midpoint.
	v.InjectDrag(Point{170, 125}, Point{154, 125}, 10)
	drain(v)

	if wire.End != (Point{150, 125}) {
		t.Errorf("the dragged end should snap onto the midpoint, got %v", wire.End)
	}
	if len(ctrl.Graph().Outgoing(box)) != 1 {
		t.Error("the snap should record an edge on the box")
	}
}

func TestInjectMinimumFrames(t *testing.T) {
	ctrl := NewController(DefaultConfig())
	v := NewView(ctrl)

	v.InjectDrag(Point{0, 0}, Point{10, 10}, 0)
	if v.InjectPending() != 2 {
		t.Errorf("a degenerate drag still queues press and release, got %d", v.InjectPending())
	}
	drain(v)
}
