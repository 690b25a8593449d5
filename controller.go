package trellis

// Controller is the board's interaction core: it owns the element list, the
// connection graph, the drag state machine, and the highlight state. All
// methods must be called from a single goroutine; every pointer event is
// processed synchronously before the next one arrives.
type Controller struct {
	config   Config
	elements []Element // painter order: index 0 is drawn first (bottom)
	graph    *Graph

	// Drag state machine
	state        PointerState
	last         Point
	selected     Element
	selectedGrip GripType // valid only in StateDragAnchor

	// Highlight state
	near  []SnapInfo // nearby set from the previous drag sample
	hover Element    // element currently anchor-highlighted, independent of selection

	// Observers and repaint command list
	handlers handlerRegistry
	repaint  []Element
}

// NewController creates a controller with the given tuning. Zero-valued
// config fields fall back to the defaults.
func NewController(cfg Config) *Controller {
	def := DefaultConfig()
	if cfg.ElementSnapRange == 0 {
		cfg.ElementSnapRange = def.ElementSnapRange
	}
	if cfg.ConnectionPointSnapRange == 0 {
		cfg.ConnectionPointSnapRange = def.ConnectionPointSnapRange
	}
	if cfg.DetachVelocity == 0 {
		cfg.DetachVelocity = def.DetachVelocity
	}
	if cfg.MarkerSize == 0 {
		cfg.MarkerSize = def.MarkerSize
	}
	return &Controller{
		config:       cfg,
		graph:        NewGraph(),
		state:        StateIdle,
		selectedGrip: GripNone,
	}
}

// Config returns the controller's tuning values.
func (c *Controller) Config() Config {
	return c.config
}

// Graph returns the connection graph. Exposed for observers and tests;
// mutate attachments through pointer events, not directly.
func (c *Controller) Graph() *Graph {
	return c.graph
}

// State returns the drag state machine's current state.
func (c *Controller) State() PointerState {
	return c.state
}

// Elements returns the board's elements in painter order (bottom first).
func (c *Controller) Elements() []Element {
	return c.elements
}

// AddElement places an element on top of the board.
func (c *Controller) AddElement(el Element) {
	c.elements = append(c.elements, el)
	c.markRepaint(el)
}

// RemoveElement takes an element off the board, dropping every graph edge
// that touches it and clearing any attached connector handles. Selection,
// hover, and the nearby set are cleared if they reference it.
func (c *Controller) RemoveElement(el Element) {
	// Clear handle records on connectors attached to this element.
	for _, e := range c.graph.Outgoing(el) {
		e.To.DisconnectGrip(e.ToGrip)
	}
	el.DisconnectGrip(GripNone)
	c.graph.Remove(el)

	for i, existing := range c.elements {
		if existing == el {
			c.markRegion(el)
			copy(c.elements[i:], c.elements[i+1:])
			c.elements = c.elements[:len(c.elements)-1]
			break
		}
	}

	if c.selected == el {
		c.selected = nil
		c.selectedGrip = GripNone
		c.state = StateIdle
	}
	if c.hover == el {
		c.hover = nil
	}
	kept := c.near[:0]
	for _, si := range c.near {
		if si.Near != el {
			kept = append(kept, si)
		}
	}
	c.near = kept
}

// --- Pointer events ---

// PointerDown handles a primary button press: it deselects the current
// selection, hit-tests topmost-first, selects the hit element (grabbing an
// anchor when the press lands on one), or enters pan mode on empty space.
// A selection-changed notification fires unconditionally, nil included.
// Non-primary buttons are ignored.
func (c *Controller) PointerDown(button MouseButton, p Point) {
	if button != MouseButtonLeft {
		return
	}

	c.Deselect()
	c.last = p

	hit := c.hitTest(p)
	if hit == nil {
		c.state = StatePanAll
		c.fireSelectionChanged(nil)
		return
	}

	c.Select(hit)
	c.selectedGrip = c.anchorAt(hit, p)
	if c.selectedGrip != GripNone {
		c.state = StateDragAnchor
	} else {
		c.state = StateDragElement
	}
	c.fireSelectionChanged(hit)
}

// PointerUp ends the gesture: the anchor grab and drag state are cleared and
// all snap highlighting is removed. The selection itself survives the
// release.
func (c *Controller) PointerUp(button MouseButton, p Point) {
	if button != MouseButtonLeft {
		return
	}
	c.endGesture()
}

// Cancel aborts an in-flight gesture without a release location. Hosts call
// this on focus loss so a swallowed pointer-up cannot leave the machine stuck
// mid-drag.
func (c *Controller) Cancel() {
	c.endGesture()
}

func (c *Controller) endGesture() {
	c.selectedGrip = GripNone
	c.state = StateIdle
	c.clearNear()
}

// PointerMove handles pointer movement. A zero delta is dropped outright:
// hosts deliver spurious move events coincident with clicks, and acting on
// them would wrongly detach connectors. Non-zero deltas dispatch on the
// current state.
func (c *Controller) PointerMove(p Point) {
	d := Delta{X: p.X - c.last.X, Y: p.Y - c.last.Y}
	if d.IsZero() {
		return
	}
	c.last = p

	switch c.state {
	case StateDragAnchor:
		c.dragAnchor(d)
	case StateDragElement:
		c.dragElement(d)
	case StatePanAll:
		c.panAll(d)
	case StateIdle:
		c.hoverAt(p)
	}
}

// dragAnchor moves the grabbed handle, snapping it against nearby elements.
// When no attachment results, the handle is force-detached: an unsnapped
// move means the user pulled it away.
func (c *Controller) dragAnchor(d Delta) {
	el := c.selected
	if el == nil {
		return
	}
	snapped, d := c.snap(el, c.selectedGrip, d)
	if !snapped {
		c.detachGrip(el, c.selectedGrip)
	}
	c.markRegion(el)
	el.MoveGrip(c.selectedGrip, d)
	c.markRegion(el)
	c.fireSelectionUpdated(el)
}

// dragElement moves the whole selected element: snap is re-run for both the
// start and end handles, the move propagates to every attached connector
// handle, and the element itself translates. If neither handle snapped, both
// handle bindings are cleared.
func (c *Controller) dragElement(d Delta) {
	el := c.selected
	if el == nil {
		return
	}

	snappedStart, d := c.snap(el, GripStart, d)
	snappedEnd, d := c.snap(el, GripEnd, d)
	if !snappedStart && !snappedEnd {
		c.detachGrip(el, GripStart)
		c.detachGrip(el, GripEnd)
	}

	// Keep attached connectors visually joined: their bound handles move by
	// the same delta as the element.
	for _, conn := range c.graph.Outgoing(el) {
		c.markRegion(conn.To)
		conn.To.MoveGrip(conn.ToGrip, d)
		c.markRegion(conn.To)
	}

	c.markRegion(el)
	el.MoveBy(d)
	c.markRegion(el)
	c.fireSelectionUpdated(el)
}

// panAll translates every element on the board. The background grid is drawn
// by the front end and stays put.
func (c *Controller) panAll(d Delta) {
	for _, el := range c.elements {
		el.MoveBy(d)
		c.markRepaint(el)
	}
}

// hoverAt updates the anchor highlight for the element under an unpressed
// pointer, redrawing only the elements whose highlight changed.
func (c *Controller) hoverAt(p Point) {
	h := c.hitTest(p)
	if h == c.hover {
		return
	}
	if c.hover != nil {
		c.hover.SetShowAnchors(false)
		c.markRepaint(c.hover)
	}
	if h != nil {
		h.SetShowAnchors(true)
		c.markRepaint(h)
	}
	c.hover = h
}

// --- Hit testing ---

// hitTest finds the topmost element at p. Elements are stored in painter
// order, so iterate backward: the last drawn wins ties.
func (c *Controller) hitTest(p Point) Element {
	for i := len(c.elements) - 1; i >= 0; i-- {
		if c.elements[i].At(p) {
			return c.elements[i]
		}
	}
	return nil
}

// anchorAt returns the grip whose anchor marker on el contains p, or
// GripNone. The marker size doubles as the grab range.
func (c *Controller) anchorAt(el Element, p Point) GripType {
	for _, a := range el.Anchors() {
		if abs(p.X-a.Point.X) <= c.config.MarkerSize &&
			abs(p.Y-a.Point.Y) <= c.config.MarkerSize {
			return a.Grip
		}
	}
	return GripNone
}

// --- Attachment helpers ---

// detachGrip removes the handle's graph edges and its record on the element.
func (c *Controller) detachGrip(el Element, grip GripType) {
	c.graph.Disconnect(el, grip)
	el.DisconnectGrip(grip)
}

// clearNear hides connection point markers on every element in the nearby
// set and empties it.
func (c *Controller) clearNear() {
	for _, si := range c.near {
		if si.Near.ShowPoints() {
			si.Near.SetShowPoints(false)
			c.markRepaint(si.Near)
		}
	}
	c.near = nil
}
