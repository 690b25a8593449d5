package trellis

// ConnectionPoint is a location on an element's boundary tagged with the
// handle it corresponds to.
type ConnectionPoint struct {
	Point Point
	Grip  GripType
}

// Connection is a directed edge recorded against an anchor element, meaning
// "the connector's ToGrip handle is attached to my connection point At".
// At is a snapshot taken at attach time; live positions always come from the
// elements themselves.
type Connection struct {
	To     Element         // the attached connector element
	ToGrip GripType        // which of the connector's handles is bound
	At     ConnectionPoint // the anchor's own connection point, at attach time
}

// SnapInfo pairs a nearby candidate element with the dragged connection point
// that brought it into range. Produced fresh on every drag-move sample and
// never persisted.
type SnapInfo struct {
	Near  Element
	Point ConnectionPoint
}

// Element is the capability surface the controller requires from anything
// placed on the board. Concrete shapes (Box, Wire) satisfy it; hosts may
// bring their own implementations.
//
// The controller mutates selection and highlight flags and moves geometry,
// but never creates or destroys elements. Removing an element from the board
// must go through Controller.RemoveElement so the connection graph stays free
// of dangling edges.
type Element interface {
	// Bounds returns the element's display rectangle.
	Bounds() Rect

	// At reports whether a pointer at p selects this element.
	At(p Point) bool

	// OnScreen reports whether the element is currently visible on the board.
	// Off-screen elements are skipped as snap candidates.
	OnScreen() bool

	// Connector reports whether this element is itself a connector. Connectors
	// are never snap targets.
	Connector() bool

	// Anchors returns the element's draggable handles.
	Anchors() []ConnectionPoint

	// ConnectionPoints returns the element's attachable boundary points.
	ConnectionPoints() []ConnectionPoint

	// MoveBy translates the element's whole geometry.
	MoveBy(d Delta)

	// MoveGrip translates the single point bound to the given handle.
	MoveGrip(g GripType, d Delta)

	// Selection flag.
	Selected() bool
	SetSelected(bool)

	// Anchor marker visibility (hover highlight).
	ShowAnchors() bool
	SetShowAnchors(bool)

	// Connection point marker visibility (snap highlight).
	ShowPoints() bool
	SetShowPoints(bool)

	// SetGripConnection records that the given handle is attached to an
	// element, for later detachment.
	SetGripConnection(g GripType, to Element)

	// DisconnectGrip clears the handle's attachment record. GripNone clears
	// every handle. No-op for handles that are not attached.
	DisconnectGrip(g GripType)

	// GripConnection returns the element the handle is attached to, or nil.
	GripConnection(g GripType) Element
}

// filterPoints returns the element's connection points matching the grip
// filter. GripNone selects every point.
func filterPoints(el Element, grip GripType) []ConnectionPoint {
	pts := el.ConnectionPoints()
	if grip == GripNone {
		return pts
	}
	var out []ConnectionPoint
	for _, pt := range pts {
		if pt.Grip == grip {
			out = append(out, pt)
		}
	}
	return out
}

// closestPoint finds the element's own connection point nearest to p,
// accepted only within maxRange. Distance is squared Euclidean so ties and
// comparisons stay integer-exact.
func closestPoint(el Element, p Point, maxRange int) (ConnectionPoint, bool) {
	var best ConnectionPoint
	bestDist := -1
	for _, cp := range el.ConnectionPoints() {
		dx := cp.Point.X - p.X
		dy := cp.Point.Y - p.Y
		d := dx*dx + dy*dy
		if d > maxRange*maxRange {
			continue
		}
		if bestDist < 0 || d < bestDist {
			best = cp
			bestDist = d
		}
	}
	return best, bestDist >= 0
}
