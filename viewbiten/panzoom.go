package viewbiten

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/viewbox"
	"github.com/oliverbestmann/viewbox/gm"
)

// Input is the state of the pointer devices for one frame.
type Input struct {
	// Cursor position in screen coordinates
	Cursor gm.Vec

	// Wheel holds the vertical scroll offset of this frame
	Wheel float64

	// Dragging is true while the content is dragged
	Dragging bool
}

// PollInput reads the current mouse state from ebiten.
// Dragging uses the left mouse button.
func PollInput() Input {
	x, y := ebiten.CursorPosition()
	_, wheel := ebiten.Wheel()

	return Input{
		Cursor:   gm.Vec{X: float64(x), Y: float64(y)},
		Wheel:    wheel,
		Dragging: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
}

// PanZoom drives a ViewBox by mouse input. Scrolling zooms around the
// cursor, dragging moves the content.
type PanZoom struct {
	View *viewbox.ViewBox

	// ZoomStep is the zoom factor applied per wheel unit. Defaults to 1.1
	ZoomStep float64

	// MinZoom and MaxZoom limit the zoom. Zero means no limit.
	MinZoom, MaxZoom float64

	dragging   bool
	lastCursor gm.Vec
}

// Update applies the input of one frame to the view.
func (p *PanZoom) Update(in Input) error {
	if in.Wheel != 0 {
		step := p.ZoomStep
		if step == 0 {
			step = 1.1
		}

		zoom := p.clamp(p.View.Zoom() * math.Pow(step, in.Wheel))
		if err := p.View.SetZoomAround(zoom, in.Cursor); err != nil {
			return err
		}
	}

	if in.Dragging && p.dragging {
		if err := p.View.Translate(in.Cursor.Sub(p.lastCursor)); err != nil {
			return err
		}
	}

	p.dragging = in.Dragging
	p.lastCursor = in.Cursor

	return nil
}

func (p *PanZoom) clamp(zoom float64) float64 {
	if p.MinZoom > 0 {
		zoom = max(p.MinZoom, zoom)
	}

	if p.MaxZoom > 0 {
		zoom = min(p.MaxZoom, zoom)
	}

	return zoom
}
