// Package pointer turns raw pointer events over the pad surface into
// normalized coordinates.
package pointer

import "math"

// Coordinate is a pad position with the origin at the surface center,
// +y pointing up. Values are rounded to two decimals and may fall slightly
// outside [-1, 1] when the pointer leaves the surface mid-drag.
type Coordinate struct {
	X, Y float64
}

// Rect is the on-screen bounding rectangle of the surface.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// Surface reports where the pad currently is. ok is false while it is not
// available yet.
type Surface interface {
	Bounds() (r Rect, ok bool)
}

// State of a drag session.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	}
	return "unknown"
}

// Tracker owns the coordinate and drag state and notifies listeners after
// every committed coordinate. It is not safe for concurrent use; all calls
// are expected to come from the UI loop.
type Tracker struct {
	surface   Surface
	state     State
	coord     Coordinate
	listeners []func(Coordinate)
}

func New(s Surface) *Tracker {
	return &Tracker{surface: s}
}

// OnChange registers fn to be called, in registration order, with each new
// coordinate.
func (t *Tracker) OnChange(fn func(Coordinate)) {
	t.listeners = append(t.listeners, fn)
}

func (t *Tracker) State() State { return t.state }

func (t *Tracker) Coordinate() Coordinate { return t.coord }

// Down starts a drag and commits the coordinate under the pointer.
func (t *Tracker) Down(px, py float64) {
	t.state = Dragging
	t.update(px, py)
}

// Move commits a new coordinate while dragging and is ignored otherwise.
func (t *Tracker) Move(px, py float64) {
	if t.state != Dragging {
		return
	}
	t.update(px, py)
}

// Up ends the drag. The coordinate stays where it was.
func (t *Tracker) Up() {
	t.state = Idle
}

// Leave is sent when the pointer exits the surface and ends the drag like Up.
func (t *Tracker) Leave() {
	t.state = Idle
}

func (t *Tracker) update(px, py float64) {
	if t.surface == nil {
		return
	}
	r, ok := t.surface.Bounds()
	if !ok || r.Width <= 0 || r.Height <= 0 {
		return
	}
	t.coord = Normalize(r, px, py)
	for _, fn := range t.listeners {
		fn(t.coord)
	}
}

// Normalize maps a client-space point to pad coordinates relative to r.
func Normalize(r Rect, px, py float64) Coordinate {
	cx := r.Width / 2
	cy := r.Height / 2
	x := ((px - r.Left) - cx) / cx
	y := (cy - (py - r.Top)) / cy
	return Coordinate{X: round2(x), Y: round2(y)}
}

func round2(v float64) float64 {
	v = math.Round(v*100) / 100
	if v == 0 {
		// avoid printing -0
		return 0
	}
	return v
}
