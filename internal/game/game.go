package game

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/xy-pad/internal/config"
	"github.com/iburimskiy/xy-pad/internal/params"
	"github.com/iburimskiy/xy-pad/internal/pointer"
	"github.com/iburimskiy/xy-pad/internal/surface"
)

var instructions = []string{
	"Click and drag inside the pad to see parameters change.",
	"The center point (0,0) represents the neutral position.",
	"Move left: Low Pass volume increases, High Pass decreases",
	"Move right: High Pass volume increases, Low Pass decreases",
	"Move up (positive Y): Increases LFO intensity (speed and modulation)",
	"Esc/Q: Quit",
}

type Options struct {
	// Debug logs every committed coordinate and the parameters derived from it.
	Debug bool
}

// Game hosts the pad in an ebiten window. Update feeds mouse state to the
// tracker; the tracker's listeners redraw the pad and recompute parameters.
type Game struct {
	opts Options

	tracker  *pointer.Tracker
	renderer *surface.Renderer
	params   params.Parameters

	// pad is the offscreen surface image, nil until mounted
	pad     *ebiten.Image
	mounted bool

	// input edge detection
	prevKey    map[ebiten.Key]bool
	lastCursor [2]int
	hovered    bool
}

func New(opts Options) *Game {
	g := &Game{
		opts:    opts,
		prevKey: map[ebiten.Key]bool{},
	}
	g.tracker = pointer.New(g)
	g.renderer = surface.NewRenderer(nil)
	g.params = params.Map(0, 0)

	g.tracker.OnChange(g.renderer.Redraw)
	g.tracker.OnChange(g.updateParams)
	return g
}

// Bounds implements pointer.Surface.
func (g *Game) Bounds() (pointer.Rect, bool) {
	return pointer.Rect{
		Left:   config.SurfaceX,
		Top:    config.SurfaceY,
		Width:  config.SurfaceSize,
		Height: config.SurfaceSize,
	}, g.mounted
}

func (g *Game) Tracker() *pointer.Tracker { return g.tracker }

func (g *Game) Parameters() params.Parameters { return g.params }

func (g *Game) updateParams(c pointer.Coordinate) {
	g.params = params.Map(c.X, c.Y)
	if g.opts.Debug {
		log.Printf("pad: x=%v y=%v high=%+v low=%+v", c.X, c.Y, g.params.High, g.params.Low)
	}
}

// mount creates the pad image. Images are only created from inside the
// game loop.
func (g *Game) mount() {
	g.pad = ebiten.NewImage(config.SurfaceSize, config.SurfaceSize)
	g.renderer.Canvas = &imageCanvas{img: g.pad}
	g.mounted = true
	g.renderer.Redraw(g.tracker.Coordinate())
}

type pointerInput struct {
	X, Y     int
	Pressed  bool // left button went down this frame
	Released bool // left button went up this frame
}

func (g *Game) inside(x, y int) bool {
	return x >= config.SurfaceX && x < config.SurfaceX+config.SurfaceSize &&
		y >= config.SurfaceY && y < config.SurfaceY+config.SurfaceSize
}

// handlePointer translates one frame of mouse state into tracker events.
// Down only starts on the pad; leaving the pad ends the drag like a release.
func (g *Game) handlePointer(in pointerInput) {
	x, y := float64(in.X), float64(in.Y)
	inside := g.inside(in.X, in.Y)
	moved := [2]int{in.X, in.Y} != g.lastCursor

	switch {
	case in.Pressed && inside:
		g.tracker.Down(x, y)
	case in.Released:
		g.tracker.Up()
	case g.hovered && !inside:
		g.tracker.Leave()
	case moved:
		g.tracker.Move(x, y)
	}

	g.hovered = inside
	g.lastCursor = [2]int{in.X, in.Y}
}

func (g *Game) Update() error {
	if !g.mounted {
		g.mount()
	}

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	mouseX, mouseY := ebiten.CursorPosition()
	g.handlePointer(pointerInput{
		X:        mouseX,
		Y:        mouseY,
		Pressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Released: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	})

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(config.WindowColor)

	ebitenutil.DebugPrintAt(screen, "XY UI Coordinate Test", config.SurfaceX, 12)
	c := g.tracker.Coordinate()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("X: %s    Y: %s", formatNumber(c.X), formatNumber(c.Y)), config.SurfaceX, 40)

	if g.pad != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(config.SurfaceX, config.SurfaceY)
		screen.DrawImage(g.pad, op)
	}
	vector.StrokeRect(screen, config.SurfaceX, config.SurfaceY, config.SurfaceSize, config.SurfaceSize, 2, config.PanelBorderColor, false)

	g.drawGroup(screen, "High Pass", g.params.High, config.PanelY, config.HighHue)
	g.drawGroup(screen, "Low Pass", g.params.Low, config.PanelY+config.PanelHeight+config.PanelGap, config.LowHue)

	for i, line := range instructions {
		ebitenutil.DebugPrintAt(screen, line, config.SurfaceX, config.InstructionsY+i*config.InstructionGap)
	}
}

func (g *Game) drawGroup(screen *ebiten.Image, title string, p params.Group, y int, hue float64) {
	x := config.PanelX
	vector.DrawFilledRect(screen, float32(x), float32(y), config.PanelWidth, config.PanelHeight, config.PanelColor, false)
	vector.StrokeRect(screen, float32(x), float32(y), config.PanelWidth, config.PanelHeight, 2, config.PanelBorderColor, false)
	ebitenutil.DebugPrintAt(screen, title, x+12, y+10)

	rows := []struct {
		label string
		value float64
	}{
		{"Volume:", p.Volume},
		{"LFO Speed:", p.LFOSpeed},
		{"LFO Modulation:", p.LFOModulation},
	}
	barWidth := float64(config.PanelWidth - 24)
	for i, row := range rows {
		rowY := y + 36 + i*config.RowHeight
		ebitenutil.DebugPrintAt(screen, row.label, x+12, rowY)
		value := formatPercent(row.value)
		ebitenutil.DebugPrintAt(screen, value, x+config.PanelWidth-12-len(value)*6, rowY)

		barY := float32(rowY + 18)
		vector.DrawFilledRect(screen, float32(x+12), barY, float32(barWidth), config.BarHeight, config.BarTrackColor, false)
		fill := clamp01(row.value/100) * barWidth
		if fill > 0 {
			r, gv, b := hsvToRgb(hue, 0.7, 0.5+0.4*clamp01(row.value/100))
			vector.DrawFilledRect(screen, float32(x+12), barY, float32(fill), config.BarHeight, color.RGBA{R: r, G: gv, B: b, A: 255}, false)
		}
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
