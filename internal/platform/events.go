package platform

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

// Resize reports the new client area size in pixels.
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
type TimeoutEvent struct{}
