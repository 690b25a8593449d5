package trellis

// syntheticPointerEvent represents a single injected pointer event. Screen
// coordinates feed the controller exactly like real mouse input, one event
// per tick.
type syntheticPointerEvent struct {
	pos     Point
	pressed bool
}

// InjectPress queues a pointer press event at the given screen coordinates
// (left button). The event is consumed on the next tick.
func (v *View) InjectPress(p Point) {
	v.injectQueue = append(v.injectQueue, syntheticPointerEvent{pos: p, pressed: true})
}

// InjectMove queues a pointer move event with the button held down. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (v *View) InjectMove(p Point) {
	v.injectQueue = append(v.injectQueue, syntheticPointerEvent{pos: p, pressed: true})
}

// InjectRelease queues a pointer release event at the given screen
// coordinates.
func (v *View) InjectRelease(p Point) {
	v.injectQueue = append(v.injectQueue, syntheticPointerEvent{pos: p, pressed: false})
}

// InjectClick is a convenience that queues a press followed by a release at
// the same coordinates. Consumes two ticks.
func (v *View) InjectClick(p Point) {
	v.InjectPress(p)
	v.InjectRelease(p)
}

// InjectDrag queues a full drag sequence: press at from, linearly
// interpolated moves over frames-2 ticks with the last move landing exactly
// on to, and release at to. Minimum frames is 2 (press + release), which
// drags nothing. The release itself never moves the pointer.
func (v *View) InjectDrag(from, to Point, frames int) {
	if frames < 2 {
		frames = 2
	}
	v.InjectPress(from)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		p := Point{
			X: from.X + (to.X-from.X)*i/steps,
			Y: from.Y + (to.Y-from.Y)*i/steps,
		}
		v.InjectMove(p)
	}
	v.InjectRelease(to)
}

// InjectPending reports how many synthetic events are still queued.
func (v *View) InjectPending() int {
	return len(v.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through the same edge detection as real mouse input. Returns true if an
// event was consumed (real mouse input is skipped that tick).
func (v *View) processInjectedInput() bool {
	if len(v.injectQueue) == 0 {
		return false
	}
	evt := v.injectQueue[0]
	copy(v.injectQueue, v.injectQueue[1:])
	v.injectQueue = v.injectQueue[:len(v.injectQueue)-1]

	switch {
	case evt.pressed && !v.prevDown:
		v.ctrl.PointerDown(MouseButtonLeft, evt.pos)
	case !evt.pressed && v.prevDown:
		v.ctrl.PointerUp(MouseButtonLeft, evt.pos)
	case evt.pos != v.prevPos:
		v.ctrl.PointerMove(evt.pos)
	}
	v.prevDown = evt.pressed
	v.prevPos = evt.pos
	return true
}
