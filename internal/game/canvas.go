package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// imageCanvas implements surface.Canvas on an ebiten image.
type imageCanvas struct {
	img *ebiten.Image
}

func (c *imageCanvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *imageCanvas) Clear() { c.img.Clear() }

func (c *imageCanvas) FillRect(x, y, w, h float32, clr color.Color) {
	vector.DrawFilledRect(c.img, x, y, w, h, clr, false)
}

func (c *imageCanvas) StrokeLine(x0, y0, x1, y1, width float32, clr color.Color) {
	vector.StrokeLine(c.img, x0, y0, x1, y1, width, clr, false)
}

func (c *imageCanvas) FillCircle(cx, cy, r float32, clr color.Color) {
	vector.DrawFilledCircle(c.img, cx, cy, r, clr, true)
}
