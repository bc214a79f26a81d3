package gfx

import "github.com/kjkrol/gokt/internal/platform"

type Event interface{}

type KeyPress struct {
	Code  uint64
	Label string
}
type KeyRelease struct {
	Code  uint64
	Label string
}
type ButtonPress struct {
	Button uint32
	X, Y   int
}
type ButtonRelease struct {
	Button uint32
	X, Y   int
}
type MotionNotify struct {
	X, Y int
}
type MouseWheel struct {
	DeltaX float64
	DeltaY float64
	X, Y   int
}
type Resize struct {
	Width, Height int
}
type Maximize struct {
	Maximized bool
}
type Minimize struct {
	Minimized bool
}
type Focus struct {
	Focused bool
}
type CloseRequest struct{}
type UnexpectedEvent struct{}

func convert(event platform.Event) Event {
	switch e := event.(type) {
	case platform.KeyPress:
		return KeyPress{Code: e.Code, Label: e.Label}
	case platform.KeyRelease:
		return KeyRelease{Code: e.Code, Label: e.Label}
	case platform.ButtonPress:
		return ButtonPress{Button: e.Button, X: e.X, Y: e.Y}
	case platform.ButtonRelease:
		return ButtonRelease{Button: e.Button, X: e.X, Y: e.Y}
	case platform.MotionNotify:
		return MotionNotify{X: e.X, Y: e.Y}
	case platform.MouseWheel:
		return MouseWheel{DeltaX: e.DeltaX, DeltaY: e.DeltaY, X: e.X, Y: e.Y}
	case platform.Resize:
		return Resize{Width: e.Width, Height: e.Height}
	case platform.Maximize:
		return Maximize{Maximized: e.Maximized}
	case platform.Minimize:
		return Minimize{Minimized: e.Minimized}
	case platform.Focus:
		return Focus{Focused: e.Focused}
	case platform.CloseRequest:
		return CloseRequest{}
	default:
		return UnexpectedEvent{}
	}
}
