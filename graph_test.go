package trellis

import "testing"

func graphFixture() (*Graph, *Box, *Box, *Wire) {
	g := NewGraph()
	a := NewBox("a", Rect{X: 0, Y: 0, Width: 50, Height: 50})
	b := NewBox("b", Rect{X: 200, Y: 0, Width: 50, Height: 50})
	w := NewWire("w", Point{X: 60, Y: 25}, Point{X: 190, Y: 25})
	return g, a, b, w
}

func TestGraphConnectAndOutgoing(t *testing.T) {
	g, a, _, w := graphFixture()

	g.Connect(a, Connection{To: w, ToGrip: GripStart, At: ConnectionPoint{Point: Point{50, 25}, Grip: GripBody}})

	edges := g.Outgoing(a)
	if len(edges) != 1 {
		t.Fatalf("Outgoing(a) = %d edges, want 1", len(edges))
	}
	if edges[0].To != Element(w) || edges[0].ToGrip != GripStart {
		t.Errorf("unexpected edge %+v", edges[0])
	}
	if g.Count() != 1 {
		t.Errorf("Count = %d, want 1", g.Count())
	}
}

func TestGraphConnectRebindsHandle(t *testing.T) {
	g, a, b, w := graphFixture()

	g.Connect(a, Connection{To: w, ToGrip: GripEnd})
	g.Connect(b, Connection{To: w, ToGrip: GripEnd})

	if len(g.Outgoing(a)) != 0 {
		t.Error("rebinding the handle should remove the edge on the old anchor")
	}
	if len(g.Outgoing(b)) != 1 {
		t.Error("new anchor should hold the edge")
	}
	if g.Count() != 1 {
		t.Errorf("Count = %d, want 1", g.Count())
	}
}

func TestGraphDisconnectSpecificGrip(t *testing.T) {
	g, a, b, w := graphFixture()

	g.Connect(a, Connection{To: w, ToGrip: GripStart})
	g.Connect(b, Connection{To: w, ToGrip: GripEnd})

	if !g.Disconnect(w, GripEnd) {
		t.Fatal("Disconnect should report removal")
	}
	if len(g.Outgoing(b)) != 0 {
		t.Error("end edge should be gone")
	}
	if len(g.Outgoing(a)) != 1 {
		t.Error("start edge should survive a GripEnd disconnect")
	}

	if g.Disconnect(w, GripEnd) {
		t.Error("second disconnect should report nothing removed")
	}
}

func TestGraphDisconnectAll(t *testing.T) {
	g, a, b, w := graphFixture()

	g.Connect(a, Connection{To: w, ToGrip: GripStart})
	g.Connect(b, Connection{To: w, ToGrip: GripEnd})

	if !g.Disconnect(w, GripNone) {
		t.Fatal("Disconnect(GripNone) should report removal")
	}
	if g.Count() != 0 {
		t.Errorf("Count = %d, want 0", g.Count())
	}
}

func TestGraphBothGripsOnSameAnchor(t *testing.T) {
	g, a, _, w := graphFixture()

	// A looped wire: both handles on the same box.
	g.Connect(a, Connection{To: w, ToGrip: GripStart})
	g.Connect(a, Connection{To: w, ToGrip: GripEnd})

	if len(g.Outgoing(a)) != 2 {
		t.Fatalf("Outgoing(a) = %d edges, want 2", len(g.Outgoing(a)))
	}

	g.Disconnect(w, GripStart)
	if len(g.Outgoing(a)) != 1 {
		t.Error("only the start edge should be removed")
	}
	// The reverse index must still find the remaining edge.
	if !g.Disconnect(w, GripEnd) {
		t.Error("end edge should still be removable via the reverse index")
	}
}

func TestGraphRemoveAnchor(t *testing.T) {
	g, a, b, w := graphFixture()

	g.Connect(a, Connection{To: w, ToGrip: GripStart})
	g.Connect(b, Connection{To: w, ToGrip: GripEnd})

	g.Remove(a)
	if g.Count() != 1 {
		t.Errorf("Count after removing anchor = %d, want 1", g.Count())
	}
	if !g.Disconnect(w, GripEnd) {
		t.Error("surviving edge should still be tracked")
	}
}

func TestGraphRemoveConnector(t *testing.T) {
	g, a, b, w := graphFixture()

	g.Connect(a, Connection{To: w, ToGrip: GripStart})
	g.Connect(b, Connection{To: w, ToGrip: GripEnd})

	g.Remove(w)
	if g.Count() != 0 {
		t.Errorf("Count after removing connector = %d, want 0", g.Count())
	}
	if len(g.Outgoing(a)) != 0 || len(g.Outgoing(b)) != 0 {
		t.Error("no anchor should keep an edge to a removed connector")
	}
}
