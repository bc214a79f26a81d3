package platform

import "time"

type WindowConfig struct {
	Width      int
	Height     int
	Title      string
	VSync      bool
	FullScreen bool
}

// PlatformWindowWrapper is a native window owning the GL context. Every
// method must be called from the thread that created it.
type PlatformWindowWrapper interface {
	Show()
	Close()
	// NextEventTimeout returns the next queued event, waiting up to
	// timeoutMs for one. It returns TimeoutEvent when nothing arrived.
	NextEventTimeout(timeoutMs int) Event

	Size() (width, height int)
	SetSize(width, height int)
	FullScreen() bool
	SetFullScreen(fullScreen bool)
	ShouldClose() bool
	SetShouldClose(close bool)

	SwapBuffers()
	// Time is the time elapsed since the window was created.
	Time() time.Duration
}
