package config

import "image/color"

const (
	WindowWidth  = 760
	WindowHeight = 600

	// Pad surface, in logical pixels
	SurfaceX    = 20
	SurfaceY    = 80
	SurfaceSize = 400

	// Surface drawing
	GridDivisions  = 10
	GridLineWidth  = 1
	AxisLineWidth  = 2
	MarkerRadius   = 8
	PanelX         = SurfaceX + SurfaceSize + 30
	PanelY         = SurfaceY
	PanelWidth     = 290
	PanelHeight    = 190
	PanelGap       = 20
	RowHeight      = 44
	BarHeight      = 8
	InstructionsY  = SurfaceY + SurfaceSize + 20
	InstructionGap = 16

	// Group bar hues, degrees
	HighHue = 200
	LowHue  = 20
)

var (
	BackgroundColor = color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	GridColor       = color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}
	AxisColor       = color.RGBA{A: 0xff}
	MarkerColor     = color.RGBA{R: 0xff, A: 0xff}

	WindowColor      = color.RGBA{R: 24, G: 26, B: 32, A: 255}
	PanelColor       = color.RGBA{R: 20, G: 25, B: 35, A: 200}
	PanelBorderColor = color.RGBA{R: 60, G: 70, B: 90, A: 255}
	BarTrackColor    = color.RGBA{R: 45, G: 50, B: 62, A: 255}
)
