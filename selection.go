package trellis

// Selection management and the repaint command list.
//
// The controller never paints. Every mutating operation marks the elements
// whose pixels it touched; the front end drains the list with TakeRepaint
// and redraws only those regions. Marked elements come back in painter
// order (bottom first) so overlapping shapes composite correctly.

// Selected returns the currently selected element, or nil.
func (c *Controller) Selected() Element {
	return c.selected
}

// SelectedGrip returns the grabbed anchor handle, or GripNone when the
// current gesture is not an anchor drag.
func (c *Controller) SelectedGrip() GripType {
	return c.selectedGrip
}

// Select makes el the single selected element, fully deselecting any
// previous selection first so no stale highlight survives.
func (c *Controller) Select(el Element) {
	if c.selected == el {
		c.markRegion(el)
		return
	}
	c.Deselect()
	el.SetSelected(true)
	c.selected = el
	c.markRegion(el)
}

// Deselect clears the current selection, if any, and marks its region for
// repaint. It never picks a replacement.
func (c *Controller) Deselect() {
	if c.selected == nil {
		return
	}
	c.selected.SetSelected(false)
	c.markRegion(c.selected)
	c.selected = nil
	c.selectedGrip = GripNone
}

// --- Repaint command list ---

// markRepaint queues a single element for repaint.
func (c *Controller) markRepaint(el Element) {
	for _, existing := range c.repaint {
		if existing == el {
			return
		}
	}
	c.repaint = append(c.repaint, el)
}

// markRegion queues el plus every element overlapping its marker-padded
// rectangle, the equivalent of an erase-region-and-redraw cycle.
func (c *Controller) markRegion(el Element) {
	region := el.Bounds().Grow(c.config.MarkerSize)
	c.markRepaint(el)
	for _, other := range c.elements {
		if other != el && other.Bounds().Grow(c.config.MarkerSize).Intersects(region) {
			c.markRepaint(other)
		}
	}
}

// TakeRepaint drains the repaint list, returning the marked elements in
// painter order. Returns nil when nothing needs repainting.
func (c *Controller) TakeRepaint() []Element {
	if len(c.repaint) == 0 {
		return nil
	}
	marked := make([]Element, 0, len(c.repaint))
	for _, el := range c.elements {
		for _, m := range c.repaint {
			if m == el {
				marked = append(marked, el)
				break
			}
		}
	}
	// Removed elements are no longer in the board list but their region
	// still needs clearing; append them after the live ones.
	for _, m := range c.repaint {
		found := false
		for _, el := range marked {
			if el == m {
				found = true
				break
			}
		}
		if !found {
			marked = append(marked, m)
		}
	}
	c.repaint = c.repaint[:0]
	return marked
}
