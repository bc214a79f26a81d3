// Package glfwwin implements platform.PlatformWindowWrapper on GLFW with an
// OpenGL 3.3 core context.
package glfwwin

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/kjkrol/gokt/internal/platform"
)

func init() {
	// GLFW calls must come from the main thread.
	runtime.LockOSThread()
}

type windowedRect struct {
	x, y, w, h int
}

type glfwWindow struct {
	win      *glfw.Window
	queue    []platform.Event
	start    float64
	windowed windowedRect
}

// NewPlatformWindowWrapper creates the window, makes its context current and
// starts queueing input events.
func NewPlatformWindowWrapper(conf platform.WindowConfig) (platform.PlatformWindowWrapper, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	win, err := glfw.CreateWindow(conf.Width, conf.Height, conf.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw create window: %w", err)
	}
	win.MakeContextCurrent()
	if conf.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &glfwWindow{win: win, start: glfw.GetTime()}
	w.installCallbacks()
	if conf.FullScreen {
		w.SetFullScreen(true)
	}
	return w, nil
}

func (w *glfwWindow) push(e platform.Event) {
	w.queue = append(w.queue, e)
}

func (w *glfwWindow) installCallbacks() {
	w.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, _ glfw.ModifierKey) {
		label := glfw.GetKeyName(key, scancode)
		switch action {
		case glfw.Press, glfw.Repeat:
			w.push(platform.KeyPress{Code: uint64(key), Label: label})
		case glfw.Release:
			w.push(platform.KeyRelease{Code: uint64(key), Label: label})
		}
	})
	w.win.SetMouseButtonCallback(func(win *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		x, y := win.GetCursorPos()
		if action == glfw.Press {
			w.push(platform.ButtonPress{Button: uint32(button), X: int(x), Y: int(y)})
		} else {
			w.push(platform.ButtonRelease{Button: uint32(button), X: int(x), Y: int(y)})
		}
	})
	w.win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.push(platform.MotionNotify{X: int(x), Y: int(y)})
	})
	w.win.SetScrollCallback(func(win *glfw.Window, dx, dy float64) {
		x, y := win.GetCursorPos()
		w.push(platform.MouseWheel{DeltaX: dx, DeltaY: dy, X: int(x), Y: int(y)})
	})
	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.push(platform.Resize{Width: width, Height: height})
	})
	w.win.SetMaximizeCallback(func(_ *glfw.Window, maximized bool) {
		w.push(platform.Maximize{Maximized: maximized})
	})
	w.win.SetIconifyCallback(func(_ *glfw.Window, iconified bool) {
		w.push(platform.Minimize{Minimized: iconified})
	})
	w.win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		w.push(platform.Focus{Focused: focused})
	})
	w.win.SetCloseCallback(func(_ *glfw.Window) {
		w.push(platform.CloseRequest{})
	})
}

func (w *glfwWindow) Show() {
	w.win.Show()
}

func (w *glfwWindow) Close() {
	w.win.Destroy()
	glfw.Terminate()
}

func (w *glfwWindow) NextEventTimeout(timeoutMs int) platform.Event {
	if len(w.queue) == 0 {
		if timeoutMs > 0 {
			glfw.WaitEventsTimeout(float64(timeoutMs) / 1000)
		} else {
			glfw.PollEvents()
		}
	}
	if len(w.queue) == 0 {
		return platform.TimeoutEvent{}
	}
	e := w.queue[0]
	w.queue[0] = nil
	w.queue = w.queue[1:]
	return e
}

// Size returns the framebuffer size, which is what the viewport is measured in.
func (w *glfwWindow) Size() (int, int) {
	return w.win.GetFramebufferSize()
}

// SetSize takes framebuffer pixels, like Size.
func (w *glfwWindow) SetSize(width, height int) {
	fw, fh := w.win.GetFramebufferSize()
	ww, wh := w.win.GetSize()
	if fw > 0 && fh > 0 {
		width = width * ww / fw
		height = height * wh / fh
	}
	w.win.SetSize(width, height)
}

func (w *glfwWindow) FullScreen() bool {
	return w.win.GetMonitor() != nil
}

func (w *glfwWindow) SetFullScreen(fullScreen bool) {
	if fullScreen == w.FullScreen() {
		return
	}
	if fullScreen {
		x, y := w.win.GetPos()
		width, height := w.win.GetSize()
		w.windowed = windowedRect{x, y, width, height}
		monitor := glfw.GetPrimaryMonitor()
		mode := monitor.GetVideoMode()
		w.win.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
		return
	}
	r := w.windowed
	w.win.SetMonitor(nil, r.x, r.y, r.w, r.h, 0)
}

func (w *glfwWindow) ShouldClose() bool {
	return w.win.ShouldClose()
}

func (w *glfwWindow) SetShouldClose(close bool) {
	w.win.SetShouldClose(close)
}

func (w *glfwWindow) SwapBuffers() {
	w.win.SwapBuffers()
}

func (w *glfwWindow) Time() time.Duration {
	return time.Duration((glfw.GetTime() - w.start) * float64(time.Second))
}
