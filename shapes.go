package trellis

// Concrete elements. Box and Wire satisfy the full Element capability
// surface so the controller is usable without a host-supplied shape set:
// boxes are snap targets exposing edge-midpoint connection points, wires are
// two-handle connectors whose endpoints attach to them.

// Box is a rectangular element. Its connection points sit at the midpoint of
// each edge.
type Box struct {
	Name   string
	Rect   Rect
	Hidden bool

	selected    bool
	showAnchors bool
	showPoints  bool
}

// NewBox creates a box with the given geometry.
func NewBox(name string, r Rect) *Box {
	return &Box{Name: name, Rect: r}
}

// Bounds returns the box rectangle.
func (b *Box) Bounds() Rect { return b.Rect }

// At reports whether p lies inside the box.
func (b *Box) At(p Point) bool { return !b.Hidden && b.Rect.Contains(p) }

// OnScreen reports whether the box is visible.
func (b *Box) OnScreen() bool { return !b.Hidden }

// Connector reports false: boxes are snap targets, not connectors.
func (b *Box) Connector() bool { return false }

// Anchors returns nil; boxes expose no draggable handles.
func (b *Box) Anchors() []ConnectionPoint { return nil }

// ConnectionPoints returns the four edge midpoints, tagged GripBody so they
// never match a connector-handle filter on the dragged side.
func (b *Box) ConnectionPoints() []ConnectionPoint {
	cx := b.Rect.X + b.Rect.Width/2
	cy := b.Rect.Y + b.Rect.Height/2
	return []ConnectionPoint{
		{Point: Point{X: cx, Y: b.Rect.Y}, Grip: GripBody},
		{Point: Point{X: b.Rect.X + b.Rect.Width, Y: cy}, Grip: GripBody},
		{Point: Point{X: cx, Y: b.Rect.Y + b.Rect.Height}, Grip: GripBody},
		{Point: Point{X: b.Rect.X, Y: cy}, Grip: GripBody},
	}
}

// MoveBy translates the box.
func (b *Box) MoveBy(d Delta) {
	b.Rect.X += d.X
	b.Rect.Y += d.Y
}

// MoveGrip is a no-op: boxes have no movable handles.
func (b *Box) MoveGrip(GripType, Delta) {}

func (b *Box) Selected() bool        { return b.selected }
func (b *Box) SetSelected(v bool)    { b.selected = v }
func (b *Box) ShowAnchors() bool     { return b.showAnchors }
func (b *Box) SetShowAnchors(v bool) { b.showAnchors = v }
func (b *Box) ShowPoints() bool      { return b.showPoints }
func (b *Box) SetShowPoints(v bool)  { b.showPoints = v }

// SetGripConnection is a no-op: boxes hold no handle bindings of their own.
func (b *Box) SetGripConnection(GripType, Element) {}

// DisconnectGrip is a no-op for boxes.
func (b *Box) DisconnectGrip(GripType) {}

// GripConnection always returns nil for boxes.
func (b *Box) GripConnection(GripType) Element { return nil }

// Wire is a straight connector with a start and an end handle. Either
// endpoint snaps onto box connection points.
type Wire struct {
	Name   string
	Start  Point
	End    Point
	Hidden bool

	selected    bool
	showAnchors bool
	showPoints  bool

	startTo Element // element the start handle is attached to, or nil
	endTo   Element // element the end handle is attached to, or nil
}

// NewWire creates a wire between the two points.
func NewWire(name string, start, end Point) *Wire {
	return &Wire{Name: name, Start: start, End: end}
}

// Bounds returns the wire's bounding rectangle.
func (w *Wire) Bounds() Rect {
	x1, x2 := w.Start.X, w.End.X
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	y1, y2 := w.Start.Y, w.End.Y
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// At reports whether p lies within two units of the wire's segment.
func (w *Wire) At(p Point) bool {
	if w.Hidden {
		return false
	}
	const slack = 2
	if !w.Bounds().Grow(slack).Contains(p) {
		return false
	}
	// Squared perpendicular distance from p to the segment, scaled by the
	// squared segment length to stay in integers.
	vx := w.End.X - w.Start.X
	vy := w.End.Y - w.Start.Y
	px := p.X - w.Start.X
	py := p.Y - w.Start.Y
	lenSq := vx*vx + vy*vy
	if lenSq == 0 {
		return abs(px) <= slack && abs(py) <= slack
	}
	cross := vx*py - vy*px
	return cross*cross <= slack*slack*lenSq
}

// OnScreen reports whether the wire is visible.
func (w *Wire) OnScreen() bool { return !w.Hidden }

// Connector reports true: wires are never snap targets themselves.
func (w *Wire) Connector() bool { return true }

// Anchors returns the draggable start and end handles.
func (w *Wire) Anchors() []ConnectionPoint {
	return []ConnectionPoint{
		{Point: w.Start, Grip: GripStart},
		{Point: w.End, Grip: GripEnd},
	}
}

// ConnectionPoints returns the endpoints; for a wire the attachable points
// and the handles coincide.
func (w *Wire) ConnectionPoints() []ConnectionPoint {
	return w.Anchors()
}

// MoveBy translates both endpoints.
func (w *Wire) MoveBy(d Delta) {
	w.Start = w.Start.Add(d)
	w.End = w.End.Add(d)
}

// MoveGrip translates a single endpoint. GripNone moves both.
func (w *Wire) MoveGrip(g GripType, d Delta) {
	switch g {
	case GripStart:
		w.Start = w.Start.Add(d)
	case GripEnd:
		w.End = w.End.Add(d)
	case GripNone:
		w.MoveBy(d)
	}
}

func (w *Wire) Selected() bool        { return w.selected }
func (w *Wire) SetSelected(v bool)    { w.selected = v }
func (w *Wire) ShowAnchors() bool     { return w.showAnchors }
func (w *Wire) SetShowAnchors(v bool) { w.showAnchors = v }
func (w *Wire) ShowPoints() bool      { return w.showPoints }
func (w *Wire) SetShowPoints(v bool)  { w.showPoints = v }

// SetGripConnection records which element a handle is attached to.
func (w *Wire) SetGripConnection(g GripType, to Element) {
	switch g {
	case GripStart:
		w.startTo = to
	case GripEnd:
		w.endTo = to
	}
}

// DisconnectGrip clears a handle's attachment record. GripNone clears both.
func (w *Wire) DisconnectGrip(g GripType) {
	switch g {
	case GripStart:
		w.startTo = nil
	case GripEnd:
		w.endTo = nil
	case GripNone:
		w.startTo = nil
		w.endTo = nil
	}
}

// GripConnection returns the element a handle is attached to, or nil.
func (w *Wire) GripConnection(g GripType) Element {
	switch g {
	case GripStart:
		return w.startTo
	case GripEnd:
		return w.endTo
	default:
		return nil
	}
}
