package trellis

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// View is the ebiten front end: it polls the mouse each tick, feeds the
// controller, and redraws the board. It implements ebiten.Game, so a host
// can pass it straight to ebiten.RunGame or use the Run helper.
type View struct {
	ctrl  *Controller
	pulse *Pulse

	// Mouse edge detection
	prevDown bool
	prevPos  Point

	// Synthetic input (inject.go)
	injectQueue []syntheticPointerEvent

	// Appearance
	ClearColor color.RGBA
	GridColor  color.RGBA
	GridStep   int // 0 disables the background grid

	// Optional per-tick hook for demos.
	updateFn func() error
}

// NewView creates a view over the controller with the stock appearance.
func NewView(c *Controller) *View {
	return &View{
		ctrl:       c,
		pulse:      NewPulse(1.5, 0.4),
		ClearColor: color.RGBA{R: 0x23, G: 0x1e, B: 0x2d, A: 0xff},
		GridColor:  color.RGBA{R: 0x3a, G: 0x33, B: 0x48, A: 0xff},
		GridStep:   24,
	}
}

// Controller returns the view's controller.
func (v *View) Controller() *Controller {
	return v.ctrl
}

// SetUpdateFunc registers a callback invoked once per tick after input
// processing. Returning an error stops the game loop.
func (v *View) SetUpdateFunc(fn func() error) {
	v.updateFn = fn
}

// Update polls the mouse, dispatches pointer events to the controller, and
// advances the marker pulse. Injected synthetic events take precedence over
// real mouse input, one per tick.
func (v *View) Update() error {
	if !v.processInjectedInput() {
		v.processMousePointer()
	}
	v.pulse.Update(float32(1.0 / float64(ebiten.TPS())))

	if v.updateFn != nil {
		return v.updateFn()
	}
	return nil
}

// processMousePointer converts polled mouse state into pointer-down/move/up
// edges for the controller.
func (v *View) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	pos := Point{X: mx, Y: my}
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	switch {
	case pressed && !v.prevDown:
		v.ctrl.PointerDown(MouseButtonLeft, pos)
	case !pressed && v.prevDown:
		v.ctrl.PointerUp(MouseButtonLeft, pos)
	case pos != v.prevPos:
		v.ctrl.PointerMove(pos)
	}

	v.prevDown = pressed
	v.prevPos = pos
}

// Draw repaints the whole frame: grid, elements bottom-to-top, then markers
// on top. The controller's repaint list is drained here; ebiten redraws
// every frame, so the list only bounds internal bookkeeping.
func (v *View) Draw(screen *ebiten.Image) {
	v.ctrl.TakeRepaint()

	screen.Fill(v.ClearColor)
	v.drawGrid(screen)

	for _, el := range v.ctrl.Elements() {
		v.drawElement(screen, el)
	}
	for _, el := range v.ctrl.Elements() {
		v.drawMarkers(screen, el)
	}
}

// Layout implements ebiten.Game.
func (v *View) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// drawGrid paints the static background grid. Panning moves elements only;
// the grid stays put.
func (v *View) drawGrid(screen *ebiten.Image) {
	if v.GridStep <= 0 {
		return
	}
	b := screen.Bounds()
	for x := 0; x < b.Dx(); x += v.GridStep {
		vector.StrokeLine(screen, float32(x), 0, float32(x), float32(b.Dy()), 1, v.GridColor, false)
	}
	for y := 0; y < b.Dy(); y += v.GridStep {
		vector.StrokeLine(screen, 0, float32(y), float32(b.Dx()), float32(y), 1, v.GridColor, false)
	}
}

var (
	boxFill       = color.RGBA{R: 0x4d, G: 0x7f, B: 0xb2, A: 0xff}
	boxStroke     = color.RGBA{R: 0xd8, G: 0xdc, B: 0xe8, A: 0xff}
	wireStroke    = color.RGBA{R: 0xe8, G: 0xc5, B: 0x4d, A: 0xff}
	selectedColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	anchorColor   = color.RGBA{R: 0x7f, G: 0xe8, B: 0x9a, A: 0xff}
	pointColor    = color.RGBA{R: 0xe8, G: 0x6a, B: 0x6a, A: 0xff}
)

// drawElement paints an element body. Unknown element types get their
// bounding rectangle outlined so host-supplied shapes remain visible.
func (v *View) drawElement(screen *ebiten.Image, el Element) {
	if !el.OnScreen() {
		return
	}
	switch e := el.(type) {
	case *Box:
		r := e.Rect
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), boxFill, false)
		stroke := boxStroke
		width := float32(1)
		if e.Selected() {
			stroke = selectedColor
			width = 2
		}
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), width, stroke, false)
	case *Wire:
		stroke := wireStroke
		width := float32(2)
		if e.Selected() {
			stroke = selectedColor
			width = 3
		}
		vector.StrokeLine(screen, float32(e.Start.X), float32(e.Start.Y), float32(e.End.X), float32(e.End.Y), width, stroke, false)
	default:
		r := el.Bounds()
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 1, boxStroke, false)
	}
}

// drawMarkers paints anchor handles and connection point markers above the
// element bodies. Connection point markers breathe with the pulse while a
// drag is hunting for a target.
func (v *View) drawMarkers(screen *ebiten.Image, el Element) {
	if !el.OnScreen() {
		return
	}
	size := float64(v.ctrl.Config().MarkerSize)

	if el.ShowAnchors() || el.Selected() {
		for _, a := range el.Anchors() {
			v.fillMarker(screen, a.Point, size, anchorColor)
		}
	}
	if el.ShowPoints() {
		pulsed := size * v.pulse.Value()
		for _, cp := range el.ConnectionPoints() {
			v.fillMarker(screen, cp.Point, pulsed, pointColor)
		}
	}
}

func (v *View) fillMarker(screen *ebiten.Image, p Point, size float64, c color.RGBA) {
	half := float32(size / 2)
	vector.DrawFilledRect(screen, float32(p.X)-half, float32(p.Y)-half, half*2, half*2, c, false)
}
