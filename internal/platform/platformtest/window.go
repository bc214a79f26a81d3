// Package platformtest provides a scripted platform window for tests.
package platformtest

import (
	"time"

	"github.com/kjkrol/gokt/internal/platform"
)

type Window struct {
	// Events are returned in order by NextEventTimeout.
	Events []platform.Event

	Width, Height int
	Full          bool
	Closing       bool
	Elapsed       time.Duration

	Shown    bool
	Closed   bool
	Swaps    int
	SetSizes [][2]int
	Waits    []int
}

var _ platform.PlatformWindowWrapper = (*Window)(nil)

func NewWindow(width, height int) *Window {
	return &Window{Width: width, Height: height}
}

func (w *Window) Push(events ...platform.Event) {
	w.Events = append(w.Events, events...)
}

func (w *Window) Show()  { w.Shown = true }
func (w *Window) Close() { w.Closed = true }

func (w *Window) NextEventTimeout(timeoutMs int) platform.Event {
	w.Waits = append(w.Waits, timeoutMs)
	if len(w.Events) == 0 {
		return platform.TimeoutEvent{}
	}
	e := w.Events[0]
	w.Events = w.Events[1:]
	return e
}

func (w *Window) Size() (int, int) { return w.Width, w.Height }

func (w *Window) SetSize(width, height int) {
	w.SetSizes = append(w.SetSizes, [2]int{width, height})
	w.Width, w.Height = width, height
}

func (w *Window) FullScreen() bool              { return w.Full }
func (w *Window) SetFullScreen(fullScreen bool) { w.Full = fullScreen }
func (w *Window) ShouldClose() bool             { return w.Closing }
func (w *Window) SetShouldClose(close bool)     { w.Closing = close }
func (w *Window) SwapBuffers()                  { w.Swaps++ }
func (w *Window) Time() time.Duration           { return w.Elapsed }
