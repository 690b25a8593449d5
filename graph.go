package trellis

// Graph is the authoritative record of attachments between elements. Edges
// are stored as per-anchor outgoing adjacency; a reverse index from connector
// to anchors keeps detachment O(1) amortized instead of a board-wide scan.
//
// The graph stores edges only. Handle bookkeeping on the connector itself
// (Element.SetGripConnection) is the controller's job, so the graph never
// calls back into elements.
type Graph struct {
	out map[Element][]Connection
	in  map[Element][]Element // connector -> anchors holding an edge to it
}

// NewGraph creates an empty connection graph.
func NewGraph() *Graph {
	return &Graph{
		out: make(map[Element][]Connection),
		in:  make(map[Element][]Element),
	}
}

// Connect records an edge on the anchor element. Any existing edge binding
// the same connector handle (to this or any other anchor) is removed first,
// so a handle is attached to at most one point at a time.
func (g *Graph) Connect(anchor Element, conn Connection) {
	g.Disconnect(conn.To, conn.ToGrip)
	g.out[anchor] = append(g.out[anchor], conn)
	g.addReverse(conn.To, anchor)
}

// Disconnect removes every edge binding the connector's given handle.
// GripNone removes the connector's edges for all handles. Reports whether
// anything was removed.
func (g *Graph) Disconnect(connector Element, grip GripType) bool {
	anchors := g.in[connector]
	if len(anchors) == 0 {
		return false
	}

	removed := false
	for _, anchor := range anchors {
		edges := g.out[anchor]
		kept := edges[:0]
		for _, e := range edges {
			if e.To == connector && (grip == GripNone || e.ToGrip == grip) {
				removed = true
				continue
			}
			kept = append(kept, e)
		}
		if len(kept) == 0 {
			delete(g.out, anchor)
		} else {
			g.out[anchor] = kept
		}
	}

	if removed {
		g.rebuildReverse(connector)
	}
	return removed
}

// Outgoing returns the edges recorded on the anchor element. The returned
// slice is owned by the graph; callers must not mutate it.
func (g *Graph) Outgoing(anchor Element) []Connection {
	return g.out[anchor]
}

// Remove drops every edge touching el, whether el is the anchor or the
// connector side. Called before an element leaves the board so no edge ever
// references a destroyed element.
func (g *Graph) Remove(el Element) {
	// Edges anchored on el. Drop them before touching the reverse index so
	// removeReverse does not see them as still live.
	edges := g.out[el]
	delete(g.out, el)
	for _, e := range edges {
		g.removeReverse(e.To, el)
	}

	// Edges pointing at el.
	g.Disconnect(el, GripNone)
	delete(g.in, el)
}

// Count returns the total number of edges.
func (g *Graph) Count() int {
	n := 0
	for _, edges := range g.out {
		n += len(edges)
	}
	return n
}

// addReverse records anchor in the connector's reverse index, once.
func (g *Graph) addReverse(connector, anchor Element) {
	for _, a := range g.in[connector] {
		if a == anchor {
			return
		}
	}
	g.in[connector] = append(g.in[connector], anchor)
}

// removeReverse drops anchor from the connector's reverse index if no edge
// from anchor to connector remains.
func (g *Graph) removeReverse(connector, anchor Element) {
	for _, e := range g.out[anchor] {
		if e.To == connector {
			return
		}
	}
	list := g.in[connector]
	for i, a := range list {
		if a == anchor {
			copy(list[i:], list[i+1:])
			list = list[:len(list)-1]
			break
		}
	}
	if len(list) == 0 {
		delete(g.in, connector)
	} else {
		g.in[connector] = list
	}
}

// rebuildReverse recomputes the connector's reverse index after a bulk edge
// removal.
func (g *Graph) rebuildReverse(connector Element) {
	anchors := g.in[connector]
	kept := anchors[:0]
	for _, anchor := range anchors {
		for _, e := range g.out[anchor] {
			if e.To == connector {
				kept = append(kept, anchor)
				break
			}
		}
	}
	if len(kept) == 0 {
		delete(g.in, connector)
	} else {
		g.in[connector] = kept
	}
}
