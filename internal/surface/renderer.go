// Package surface draws the pad: background, reference grid, axes and the
// position marker.
package surface

import (
	"image/color"

	"github.com/iburimskiy/xy-pad/internal/config"
	"github.com/iburimskiy/xy-pad/internal/pointer"
)

// Canvas is the drawing target the renderer paints on.
type Canvas interface {
	Size() (width, height int)
	Clear()
	FillRect(x, y, w, h float32, clr color.Color)
	StrokeLine(x0, y0, x1, y1, width float32, clr color.Color)
	FillCircle(cx, cy, r float32, clr color.Color)
}

// Renderer paints a coordinate onto a canvas. It keeps no state of its own
// between draws.
type Renderer struct {
	Canvas Canvas

	Background color.Color
	Grid       color.Color
	Axis       color.Color
	Marker     color.Color

	Divisions    int
	MarkerRadius float32
}

func NewRenderer(c Canvas) *Renderer {
	return &Renderer{
		Canvas:       c,
		Background:   config.BackgroundColor,
		Grid:         config.GridColor,
		Axis:         config.AxisColor,
		Marker:       config.MarkerColor,
		Divisions:    config.GridDivisions,
		MarkerRadius: config.MarkerRadius,
	}
}

// Redraw repaints the canvas for coord. Its signature matches
// pointer.Tracker.OnChange.
func (r *Renderer) Redraw(coord pointer.Coordinate) {
	if r.Canvas == nil {
		return
	}
	r.Draw(r.Canvas, coord)
}

func (r *Renderer) Draw(c Canvas, coord pointer.Coordinate) {
	width, height := c.Size()
	w, h := float32(width), float32(height)
	cx, cy := w/2, h/2

	c.Clear()
	c.FillRect(0, 0, w, h, r.Background)

	if r.Divisions > 0 {
		for i := 0; i <= r.Divisions; i++ {
			x := w * float32(i) / float32(r.Divisions)
			c.StrokeLine(x, 0, x, h, config.GridLineWidth, r.Grid)
		}
		for i := 0; i <= r.Divisions; i++ {
			y := h * float32(i) / float32(r.Divisions)
			c.StrokeLine(0, y, w, y, config.GridLineWidth, r.Grid)
		}
	}

	c.StrokeLine(0, cy, w, cy, config.AxisLineWidth, r.Axis)
	c.StrokeLine(cx, 0, cx, h, config.AxisLineWidth, r.Axis)

	px, py := PixelPosition(width, height, coord)
	c.FillCircle(float32(px), float32(py), r.MarkerRadius, r.Marker)
}

// PixelPosition converts a pad coordinate back to a pixel position on a
// width x height surface.
func PixelPosition(width, height int, coord pointer.Coordinate) (x, y float64) {
	cx := float64(width) / 2
	cy := float64(height) / 2
	return cx + coord.X*cx, cy - coord.Y*cy
}
