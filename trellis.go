package trellis

// Point is an integer 2D coordinate on the board. The coordinate system has
// its origin at the top-left, with Y increasing downward.
type Point struct {
	X, Y int
}

// Add returns the point displaced by d.
func (p Point) Add(d Delta) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Delta is the displacement between two pointer samples.
type Delta struct {
	X, Y int
}

// IsZero reports whether the delta carries no movement. Pointer events with a
// zero delta are dropped before they reach the state machine.
func (d Delta) IsZero() bool {
	return d.X == 0 && d.Y == 0
}

// Rect is an axis-aligned integer rectangle.
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether the point lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Grow returns the rectangle expanded by margin on every side.
func (r Rect) Grow(margin int) Rect {
	return Rect{
		X:      r.X - margin,
		Y:      r.Y - margin,
		Width:  r.Width + 2*margin,
		Height: r.Height + 2*margin,
	}
}

// GripType identifies a named handle on an element. Connector elements expose
// GripStart and GripEnd; box-like elements tag their connection points with
// GripBody. GripNone used as a filter matches every handle.
type GripType uint8

const (
	GripNone  GripType = iota // no specific handle; matches any in filters
	GripStart                 // the start endpoint of a connector
	GripEnd                   // the end endpoint of a connector
	GripBody                  // a fixed connection point on an element body
)

// String returns the grip name for display.
func (g GripType) String() string {
	switch g {
	case GripNone:
		return "None"
	case GripStart:
		return "Start"
	case GripEnd:
		return "End"
	case GripBody:
		return "Body"
	default:
		return "Unknown"
	}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// EventType identifies a kind of controller event.
type EventType uint8

const (
	EventSelectionChanged EventType = iota // fires on every pointer-down, element may be nil
	EventSelectionUpdated                  // fires after a completed drag move
)

// PointerState is the drag state machine's current state. All transitions
// happen synchronously inside PointerDown, PointerMove, and PointerUp.
type PointerState uint8

const (
	StateIdle        PointerState = iota // no button held; moves are hover only
	StatePanAll                          // button held on empty space; moves pan every element
	StateDragElement                     // button held on an element body
	StateDragAnchor                      // button held on one of the selected element's anchors
)

// String returns the state name for display.
func (s PointerState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StatePanAll:
		return "PanAll"
	case StateDragElement:
		return "DragElement"
	case StateDragAnchor:
		return "DragAnchor"
	default:
		return "Unknown"
	}
}

// Default tuning values. All distances are in board units (pixels in the
// ebiten front end).
const (
	defaultElementSnapRange         = 10
	defaultConnectionPointSnapRange = 8
	defaultDetachVelocity           = 15
	defaultMarkerSize               = 6
)

// Config holds the controller's tunable distances.
type Config struct {
	// ElementSnapRange grows each candidate element's rectangle when
	// computing the nearby set during a drag.
	ElementSnapRange int

	// ConnectionPointSnapRange is the maximum distance between a dragged
	// connection point and a candidate point for an attach to happen.
	ConnectionPointSnapRange int

	// DetachVelocity is the minimum per-axis movement, while already
	// attached, that is read as an intentional pull-away.
	DetachVelocity int

	// MarkerSize is the side length of connection point and anchor markers,
	// also used as the grab radius for anchor hit testing.
	MarkerSize int
}

// DefaultConfig returns the stock tuning values.
func DefaultConfig() Config {
	return Config{
		ElementSnapRange:         defaultElementSnapRange,
		ConnectionPointSnapRange: defaultConnectionPointSnapRange,
		DetachVelocity:           defaultDetachVelocity,
		MarkerSize:               defaultMarkerSize,
	}
}

// --- Small integer helpers ---

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns -1, 0, or 1.
func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
