// editor is a small diagram board: drag boxes around, drag wire endpoints
// onto box edges to attach them, and yank an attached endpoint to break the
// link. Drag empty space to pan. Run with -attract for a scripted demo
// gesture on startup.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/phanxgames/trellis"
)

const (
	screenW = 960
	screenH = 600
	boxW    = 120
	boxH    = 70
)

func main() {
	attract := flag.Bool("attract", false, "play a scripted drag on startup")
	flag.Parse()

	ctrl := trellis.NewController(trellis.DefaultConfig())

	positions := []trellis.Point{
		{X: 120, Y: 120},
		{X: 420, Y: 90},
		{X: 680, Y: 260},
		{X: 260, Y: 380},
	}
	for i, p := range positions {
		box := trellis.NewBox(fmt.Sprintf("box%d", i),
			trellis.Rect{X: p.X, Y: p.Y, Width: boxW, Height: boxH})
		ctrl.AddElement(box)
	}

	ctrl.AddElement(trellis.NewWire("w0",
		trellis.Point{X: 300, Y: 200}, trellis.Point{X: 390, Y: 160}))
	ctrl.AddElement(trellis.NewWire("w1",
		trellis.Point{X: 560, Y: 340}, trellis.Point{X: 620, Y: 400}))

	ctrl.OnSelectionChanged(func(el trellis.Element) {
		switch e := el.(type) {
		case *trellis.Box:
			log.Printf("selected %s", e.Name)
		case *trellis.Wire:
			log.Printf("selected %s", e.Name)
		case nil:
			log.Print("selection cleared")
		}
	})

	view := trellis.NewView(ctrl)

	if *attract {
		// Grab w0's end handle and drop it on box1's left edge midpoint.
		view.InjectDrag(
			trellis.Point{X: 390, Y: 160},
			trellis.Point{X: 420, Y: 125},
			45,
		)
	}

	if err := trellis.Run(view, trellis.RunConfig{
		Title:  "Trellis Diagram Editor",
		Width:  screenW,
		Height: screenH,
	}); err != nil {
		log.Fatal(err)
	}
}
