package trellis

// Observer registration, modeled as removable scene-level callbacks.

type selectionHandler struct {
	id uint32
	fn func(Element)
}

type handlerRegistry struct {
	selectionChanged []selectionHandler
	selectionUpdated []selectionHandler
	nextID           uint32
}

// CallbackHandle allows removing a registered controller callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventSelectionChanged:
		h.reg.selectionChanged = removeSelectionHandler(h.reg.selectionChanged, h.id)
	case EventSelectionUpdated:
		h.reg.selectionUpdated = removeSelectionHandler(h.reg.selectionUpdated, h.id)
	}
}

func removeSelectionHandler(s []selectionHandler, id uint32) []selectionHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = selectionHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// OnSelectionChanged registers a callback fired on every pointer-down with
// the newly selected element. A deselect-to-nothing fires with nil.
func (c *Controller) OnSelectionChanged(fn func(Element)) CallbackHandle {
	c.handlers.nextID++
	id := c.handlers.nextID
	c.handlers.selectionChanged = append(c.handlers.selectionChanged, selectionHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &c.handlers, event: EventSelectionChanged}
}

// OnSelectionUpdated registers a callback fired after every completed drag
// move with the element carrying its new geometry.
func (c *Controller) OnSelectionUpdated(fn func(Element)) CallbackHandle {
	c.handlers.nextID++
	id := c.handlers.nextID
	c.handlers.selectionUpdated = append(c.handlers.selectionUpdated, selectionHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &c.handlers, event: EventSelectionUpdated}
}

func (c *Controller) fireSelectionChanged(el Element) {
	for _, h := range c.handlers.selectionChanged {
		h.fn(el)
	}
}

func (c *Controller) fireSelectionUpdated(el Element) {
	for _, h := range c.handlers.selectionUpdated {
		h.fn(el)
	}
}
