package pointer

import "testing"

type fixedSurface struct {
	rect    Rect
	mounted bool
}

func (s *fixedSurface) Bounds() (Rect, bool) { return s.rect, s.mounted }

func newTestTracker() (*Tracker, *[]Coordinate) {
	tr := New(&fixedSurface{rect: Rect{Left: 20, Top: 60, Width: 400, Height: 400}, mounted: true})
	var got []Coordinate
	tr.OnChange(func(c Coordinate) { got = append(got, c) })
	return tr, &got
}

func TestNormalize(t *testing.T) {
	r := Rect{Left: 20, Top: 60, Width: 400, Height: 400}
	tests := []struct {
		name   string
		px, py float64
		want   Coordinate
	}{
		{"center", 220, 260, Coordinate{0, 0}},
		{"top left", 20, 60, Coordinate{-1, 1}},
		{"bottom right", 420, 460, Coordinate{1, -1}},
		{"right of center, up", 320, 160, Coordinate{0.5, 0.5}},
		{"one percent", 222, 258, Coordinate{0.01, 0.01}},
		{"rounds half pixel", 222.3, 260, Coordinate{0.01, 0}},
		{"outside not clamped", 430, 260, Coordinate{1.05, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(r, tt.px, tt.py); got != tt.want {
				t.Errorf("Normalize(%v, %v) = %+v, want %+v", tt.px, tt.py, got, tt.want)
			}
		})
	}
}

func TestDownAtCenter(t *testing.T) {
	tr, got := newTestTracker()
	tr.Down(220, 260)
	if tr.State() != Dragging {
		t.Fatalf("state = %v, want dragging", tr.State())
	}
	if tr.Coordinate() != (Coordinate{0, 0}) {
		t.Errorf("coordinate = %+v, want origin", tr.Coordinate())
	}
	if len(*got) != 1 {
		t.Errorf("listener called %d times, want 1", len(*got))
	}
}

func TestMoveWhileIdleIsIgnored(t *testing.T) {
	tr, got := newTestTracker()
	tr.Move(320, 160)
	if tr.State() != Idle {
		t.Fatalf("state = %v, want idle", tr.State())
	}
	if tr.Coordinate() != (Coordinate{}) || len(*got) != 0 {
		t.Errorf("idle move changed coordinate to %+v (%d notifications)", tr.Coordinate(), len(*got))
	}

	tr.Down(220, 260)
	tr.Move(320, 160)
	if want := (Coordinate{0.5, 0.5}); tr.Coordinate() != want {
		t.Errorf("dragging move: coordinate = %+v, want %+v", tr.Coordinate(), want)
	}
	if len(*got) != 2 {
		t.Errorf("listener called %d times, want 2", len(*got))
	}
}

func TestUpAndLeaveEndDrag(t *testing.T) {
	for name, end := range map[string]func(*Tracker){
		"up":    (*Tracker).Up,
		"leave": (*Tracker).Leave,
	} {
		t.Run(name, func(t *testing.T) {
			tr, got := newTestTracker()
			tr.Down(320, 160)
			end(tr)
			if tr.State() != Idle {
				t.Fatalf("state = %v, want idle", tr.State())
			}
			want := Coordinate{0.5, 0.5}
			if tr.Coordinate() != want {
				t.Errorf("coordinate changed on %s: %+v", name, tr.Coordinate())
			}
			tr.Move(20, 60)
			if tr.Coordinate() != want || len(*got) != 1 {
				t.Errorf("move after %s updated coordinate to %+v", name, tr.Coordinate())
			}
		})
	}
}

func TestUnmountedSurfaceIsNoop(t *testing.T) {
	s := &fixedSurface{rect: Rect{Width: 400, Height: 400}}
	tr := New(s)
	calls := 0
	tr.OnChange(func(Coordinate) { calls++ })

	tr.Down(300, 100)
	tr.Move(350, 50)
	if calls != 0 || tr.Coordinate() != (Coordinate{}) {
		t.Fatalf("unmounted surface produced %d updates, coordinate %+v", calls, tr.Coordinate())
	}

	s.mounted = true
	tr.Move(300, 200)
	if calls != 1 {
		t.Errorf("after mount: %d updates, want 1", calls)
	}

	New(nil).Down(1, 1)
}

func TestListenersRunInOrder(t *testing.T) {
	tr, _ := newTestTracker()
	var order []int
	tr.OnChange(func(Coordinate) { order = append(order, 1) })
	tr.OnChange(func(Coordinate) { order = append(order, 2) })
	tr.Down(220, 260)
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("listener order = %v, want [1 2]", order)
	}
}
