package trellis

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Pulse animates connection point markers while a drag is hunting for a snap
// target. It tweens a scale factor between 1 and peak on a loop; the front
// end multiplies the marker size by Value each frame.
//
// There is no global animation manager; callers drive Update themselves.
type Pulse struct {
	tween     *gween.Tween
	value     float64
	peak      float64
	duration  float32
	expanding bool
}

// NewPulse creates a marker pulse that swells to peak times the base size
// and back over duration seconds per half cycle.
func NewPulse(peak float64, duration float32) *Pulse {
	return &Pulse{
		tween:     gween.New(1, float32(peak), duration, ease.OutQuad),
		value:     1,
		peak:      peak,
		duration:  duration,
		expanding: true,
	}
}

// Update advances the pulse by dt seconds, reversing direction at each end
// of the cycle.
func (p *Pulse) Update(dt float32) {
	v, finished := p.tween.Update(dt)
	p.value = float64(v)
	if !finished {
		return
	}
	if p.expanding {
		p.tween = gween.New(float32(p.peak), 1, p.duration, ease.InQuad)
	} else {
		p.tween = gween.New(1, float32(p.peak), p.duration, ease.OutQuad)
	}
	p.expanding = !p.expanding
}

// Value returns the current marker scale factor.
func (p *Pulse) Value() float64 {
	return p.value
}

// Reset snaps the pulse back to its resting scale and restarts the cycle.
func (p *Pulse) Reset() {
	p.tween = gween.New(1, float32(p.peak), p.duration, ease.OutQuad)
	p.value = 1
	p.expanding = true
}
