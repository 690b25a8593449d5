// Package trellis is the interaction core of a pointer-driven 2D diagram
// editor: element selection, dragging, and magnetic snapping of connector
// endpoints, with a live graph of attachments maintained as the board is
// manipulated.
//
// # Quick start
//
// The simplest way to get a window is [Run], which wraps the ebiten game
// loop around a [View]:
//
//	ctrl := trellis.NewController(trellis.DefaultConfig())
//	ctrl.AddElement(trellis.NewBox("a", trellis.Rect{X: 100, Y: 100, Width: 50, Height: 50}))
//	ctrl.AddElement(trellis.NewWire("w", trellis.Point{X: 200, Y: 120}, trellis.Point{X: 260, Y: 120}))
//	trellis.Run(trellis.NewView(ctrl), trellis.RunConfig{
//		Title: "My Editor", Width: 640, Height: 480,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [View.Update] and [View.Draw] directly, or skip the view entirely and
// feed [Controller.PointerDown], [Controller.PointerMove], and
// [Controller.PointerUp] from your own event source; the controller is
// fully headless.
//
// # Elements and snapping
//
// Everything on the board satisfies [Element]. [Box] is a snap target with
// a connection point at each edge midpoint; [Wire] is a two-handle
// connector. Dragging a wire endpoint toward a box point within snap range
// attaches it: the endpoint lands exactly on the point and an edge is
// recorded in the [Graph]. Dragging away fast enough (the detach velocity)
// releases it; slower movement keeps the attachment, which is what gives
// snapping its magnetic feel.
//
// # Observers
//
// Selection changes and drag updates fire removable callbacks:
//
//	handle := ctrl.OnSelectionChanged(func(el trellis.Element) { ... })
//	defer handle.Remove()
//
// The controller never paints; it records which elements an operation
// touched and [Controller.TakeRepaint] hands them to the renderer in
// painter order.
package trellis
