package trellis

// snap runs the magnetic attach/detach check for the dragged element's
// connection points matching grip (every point when grip is GripNone).
//
// It recomputes the nearby set, diffs marker highlighting against the
// previous sample, and walks the candidates in order, stopping at the first
// decision. On attach the returned delta is overwritten with the exact
// offset to the candidate point, so the dragged point lands dead on it.
// The returned flag tells the caller whether the handle ended the sample
// attached; a false return is the caller's cue to force-detach.
//
// Range checks use the point's would-be position after the move; the
// direction and coincidence tests compare against where the point is now.
// That split is what produces the hysteresis: a handle locks on while
// heading toward a target and only lets go when pulled away hard enough.
func (c *Controller) snap(el Element, grip GripType, d Delta) (bool, Delta) {
	pts := filterPoints(el, grip)

	near := c.nearbySet(el, pts, d)
	c.diffHighlights(near)

	for _, si := range near {
		moved := si.Point.Point.Add(d)
		candidate, ok := closestPoint(si.Near, moved, c.config.ConnectionPointSnapRange)
		if !ok {
			continue
		}

		// Offset from the point's current position to the candidate.
		offX := candidate.Point.X - si.Point.Point.X
		offY := candidate.Point.Y - si.Point.Point.Y

		// Directional agreement: only consider a candidate the pointer is
		// moving toward (or already sitting on). Per axis, a zero offset or
		// zero delta passes; otherwise the signs must match.
		if !towardOrAt(offX, d.X) || !towardOrAt(offY, d.Y) {
			continue
		}

		if offX == 0 && offY == 0 {
			// Already sitting on the candidate. A fast enough pull is a
			// deliberate detach; anything slower re-snaps in place.
			if abs(d.X) >= c.config.DetachVelocity || abs(d.Y) >= c.config.DetachVelocity {
				c.detachGrip(el, si.Point.Grip)
				return false, d
			}
			return true, Delta{}
		}

		// Attach: record the edge on the candidate, the handle binding on
		// the dragged element, and overwrite the delta so the point lands
		// exactly on the candidate.
		c.graph.Connect(si.Near, Connection{
			To:     el,
			ToGrip: si.Point.Grip,
			At:     candidate,
		})
		el.SetGripConnection(si.Point.Grip, si.Near)
		return true, Delta{X: offX, Y: offY}
	}

	return false, d
}

// towardOrAt reports whether movement delta on one axis heads toward (or
// rests at) an offset on the same axis.
func towardOrAt(off, delta int) bool {
	return off == 0 || delta == 0 || sign(off) == sign(delta)
}

// nearbySet computes the current sample's nearby set: every on-screen,
// non-connector element other than the dragged one whose rectangle, grown by
// ElementSnapRange, would contain at least one of the dragged points after
// the move. Each qualifying (element, point) pair becomes a SnapInfo, in
// board order.
func (c *Controller) nearbySet(el Element, pts []ConnectionPoint, d Delta) []SnapInfo {
	var near []SnapInfo
	for _, other := range c.elements {
		if other == el || other.Connector() || !other.OnScreen() {
			continue
		}
		grown := other.Bounds().Grow(c.config.ElementSnapRange)
		for _, pt := range pts {
			if grown.Contains(pt.Point.Add(d)) {
				near = append(near, SnapInfo{Near: other, Point: pt})
			}
		}
	}
	return near
}

// diffHighlights shows connection point markers on elements newly in the
// nearby set, hides them on elements that left it, and stores the new set.
// Elements leaving the set lose their highlight in the same step.
func (c *Controller) diffHighlights(near []SnapInfo) {
	for _, si := range near {
		if !si.Near.ShowPoints() {
			si.Near.SetShowPoints(true)
			c.markRepaint(si.Near)
		}
	}
	for _, old := range c.near {
		if old.Near.ShowPoints() && !containsElement(near, old.Near) {
			old.Near.SetShowPoints(false)
			c.markRepaint(old.Near)
		}
	}
	c.near = near
}

func containsElement(set []SnapInfo, el Element) bool {
	for _, si := range set {
		if si.Near == el {
			return true
		}
	}
	return false
}
