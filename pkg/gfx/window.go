package gfx

import (
	"context"
	"image"
	"slices"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/kjkrol/gokt/internal/platform"
	"github.com/kjkrol/gokt/pkg/resize"
)

type WindowOption func(*Window)

// WithResources shares texture and shader caches with another window using
// the same GL context.
func WithResources(r *Resources) WindowOption {
	return func(w *Window) { w.resources = r }
}

func WithEventsStrategy(strategy EventsConsumerStrategy) WindowOption {
	return func(w *Window) { w.strategy = strategy }
}

// WithEventHandler is called for every event after the window has updated
// its own state.
func WithEventHandler(handle func(Event)) WindowOption {
	return func(w *Window) { w.handleEvent = handle }
}

// Window owns the surfaces drawn into one platform window and drives the
// frame: Update handles events, resizes, runs queued animation steps and
// draws. All methods must be called from the thread owning the GL context.
type Window struct {
	platformWinWrapper platform.PlatformWindowWrapper
	backend            Backend
	resources          *Resources

	surfaces []*Surface
	viewport *Viewport
	ndcScale mgl32.Vec2

	strategy    EventsConsumerStrategy
	eventWaitMs int
	handleEvent func(Event)
	keyDown     map[uint64]bool
	resizing    bool
	exiting     bool

	depthEnabled bool
	lastProgram  ProgramHandle

	wg         sync.WaitGroup
	ctx        context.Context
	cancel     context.CancelFunc
	updates    chan func()
	animations []*Animation

	// HandleResize runs once per Update after resize events; defaults to
	// DefaultHandleResize.
	HandleResize      func()
	WindowSizeRules   resize.Calculator
	ViewportSizeRules resize.Calculator
	NoShrinkToFit     bool
	NoClose           bool
	TimerFramesOffset int
}

func NewWindow(conf WindowConfig, pw platform.PlatformWindowWrapper, backend Backend, opts ...WindowOption) *Window {
	if pw == nil {
		panic("platform window wrapper is required")
	}
	conf = conf.normalize()
	w := &Window{
		platformWinWrapper: pw,
		backend:            backend,
		eventWaitMs:        conf.EventWaitMs,
		keyDown:            make(map[uint64]bool),
		updates:            make(chan func(), 1024),
		NoShrinkToFit:      conf.NoShrinkToFit,
		NoClose:            conf.NoClose,
	}
	if conf.EventsMax > 0 {
		w.strategy = DrainMax(conf.EventsMax)
	}
	if conf.WindowRules != nil {
		w.WindowSizeRules = conf.WindowRules
	}
	if conf.ViewportRules != nil {
		w.ViewportSizeRules = conf.ViewportRules
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.resources == nil {
		w.resources = NewResources(backend)
	}
	if w.strategy == nil {
		w.strategy = DrainAll()
	}
	w.HandleResize = w.DefaultHandleResize
	w.ctx, w.cancel = context.WithCancel(context.Background())
	w.SetWorldUnitsPerScreen(conf.WorldUnitsX, conf.WorldUnitsY)

	width, height := pw.Size()
	w.viewport = NewViewport(image.Rect(0, 0, width, height))
	backend.SetViewport(w.viewport.Rect())
	backend.SetDepthTest(false)
	return w
}

func (w *Window) Resources() *Resources { return w.resources }
func (w *Window) Backend() Backend      { return w.backend }

// NewSurface creates a surface drawn after all existing ones.
func (w *Window) NewSurface(conf SurfaceConfig) (*Surface, error) {
	texture, err := w.resources.Textures.Load(conf.Texture)
	if err != nil {
		return nil, err
	}
	vs, fs := conf.VertexShader, conf.FragmentShader
	if vs == "" {
		vs = DefaultVS
	}
	if fs == "" {
		fs = DefaultFS
	}
	shader, err := w.resources.Shaders.Get(vs, fs)
	if err != nil {
		return nil, err
	}
	attribs := NewVertexAttributeCounts(conf.Attributes...)
	if conf.AttributeDefaults != nil {
		attribs = NewVertexAttributes(conf.AttributeDefaults...)
	}
	dims := 2
	if conf.UseDepth {
		dims = 3
	}
	s := &Surface{
		window:         w,
		vbo:            newBufferSet(w.backend, dims, attribs),
		texture:        texture,
		shader:         shader,
		defaults:       NewSurfaceDefaults(),
		UseDepthBuffer: conf.UseDepth,
	}
	w.surfaces = append(w.surfaces, s)
	return s, nil
}

// RemoveSurface detaches s and releases its buffers. Unknown surfaces are ignored.
func (w *Window) RemoveSurface(s *Surface) {
	idx := slices.Index(w.surfaces, s)
	if idx < 0 {
		return
	}
	w.surfaces = slices.Delete(w.surfaces, idx, idx+1)
	w.stopAnimations(s)
	s.vbo.release(w.backend)
	s.window = nil
	Logger().Warn("surface buffers released", "remaining", len(w.surfaces))
}

// Surfaces returns the surfaces in draw order.
func (w *Window) Surfaces() []*Surface {
	return slices.Clone(w.surfaces)
}

// SetWorldUnitsPerScreen sets how many world units span the viewport on each
// axis. Existing vertex data is not recomputed.
func (w *Window) SetWorldUnitsPerScreen(x, y float32) {
	w.ndcScale = mgl32.Vec2{2 / x, 2 / y}
}

// NDCScale converts world units to normalized device coordinates.
func (w *Window) NDCScale() mgl32.Vec2 {
	return w.ndcScale
}

func (w *Window) pixelsToWorld(xPx, yPx int) mgl32.Vec2 {
	return mgl32.Vec2{
		float32(xPx*2) / float32(w.viewport.Width()) / w.ndcScale.X(),
		float32(yPx*2) / float32(w.viewport.Height()) / w.ndcScale.Y(),
	}
}

func (w *Window) Viewport() *Viewport {
	return w.viewport
}

func (w *Window) SetViewport(rect image.Rectangle) {
	if !w.viewport.Set(rect) {
		return
	}
	w.backend.SetViewport(w.viewport.Rect())
	Logger().Info("viewport changed", "rect", w.viewport.Rect())
}

// Size returns the client area in framebuffer pixels.
func (w *Window) Size() (int, int) {
	return w.platformWinWrapper.Size()
}

func (w *Window) Show() {
	w.platformWinWrapper.Show()
}

// TimerFrames counts 10ms frames since the window was created.
func (w *Window) TimerFrames() int {
	return int(w.platformWinWrapper.Time().Milliseconds() / 10)
}

func (w *Window) KeyIsDown(code uint64) bool {
	return w.keyDown[code]
}

func (w *Window) FullScreen() bool {
	return w.platformWinWrapper.FullScreen()
}

func (w *Window) ToggleFullScreen() {
	w.SetFullScreen(!w.FullScreen())
}

func (w *Window) SetFullScreen(fullScreen bool) {
	w.platformWinWrapper.SetFullScreen(fullScreen)
	w.resizing = true
}

// Exiting reports whether a close request was accepted.
func (w *Window) Exiting() bool {
	return w.exiting
}

// Exit makes the next Update return false.
func (w *Window) Exit() {
	w.exiting = true
}

// StartAnimation schedules a.Evolve; steps run inside Update. Animations of a
// surface stop when it is removed.
func (w *Window) StartAnimation(a *Animation) {
	if !slices.Contains(w.animations, a) {
		w.animations = append(w.animations, a)
	}
	a.Run(w.ctx, &w.wg, w.updates)
}

func (w *Window) stopAnimations(s *Surface) {
	w.animations = slices.DeleteFunc(w.animations, func(a *Animation) bool {
		if a.Surface != s {
			return false
		}
		a.Stop()
		return true
	})
}

// DefaultHandleResize applies WindowSizeRules to the client area (unless
// full screen), sizes the viewport with ViewportSizeRules, shrinks it to fit
// unless NoShrinkToFit, and centers it.
func (w *Window) DefaultHandleResize() {
	pw := w.platformWinWrapper
	width, height := pw.Size()
	if !pw.FullScreen() && w.WindowSizeRules != nil {
		nw, nh := w.WindowSizeRules.CalculateResize(width, height)
		if nw != width || nh != height {
			pw.SetSize(nw, nh)
			width, height = pw.Size()
		}
	}
	vw, vh := width, height
	if w.ViewportSizeRules != nil {
		vw, vh = w.ViewportSizeRules.CalculateResize(width, height)
	}
	if !w.NoShrinkToFit {
		vw = min(vw, width)
		vh = min(vh, height)
	}
	w.SetViewport(Centered(width, height, image.Pt(vw, vh)))
}

// Update handles pending events, runs a pending resize and queued animation
// steps, then draws one frame. It returns false once the window is exiting;
// nothing is drawn then.
func (w *Window) Update() bool {
	w.consumeEvents(w.eventWaitMs)
	if w.exiting {
		return false
	}
	w.frame()
	return true
}

func (w *Window) consumeEvents(timeoutMs int) {
	w.strategy.Consume(w.poll, w.dispatch, timeoutMs)
}

func (w *Window) frame() {
	if w.resizing {
		if w.HandleResize != nil {
			w.HandleResize()
		}
		w.resizing = false
	}
	w.runUpdates()
	w.DrawSurfaces()
}

func (w *Window) poll(timeoutMs int) (Event, bool) {
	event := w.platformWinWrapper.NextEventTimeout(timeoutMs)
	if _, ok := event.(platform.TimeoutEvent); ok {
		return nil, false
	}
	return convert(event), true
}

func (w *Window) dispatch(event Event) {
	switch e := event.(type) {
	case KeyPress:
		w.keyDown[e.Code] = true
	case KeyRelease:
		w.keyDown[e.Code] = false
	case Focus:
		if e.Focused {
			clear(w.keyDown)
		}
	case Resize, Maximize, Minimize:
		w.resizing = true
	case CloseRequest:
		if w.NoClose {
			w.platformWinWrapper.SetShouldClose(false)
		} else {
			w.exiting = true
		}
	}
	if w.handleEvent != nil {
		w.handleEvent(event)
	}
}

func (w *Window) runUpdates() {
	for {
		select {
		case upd := <-w.updates:
			upd()
		default:
			return
		}
	}
}

// DrawSurfaces clears the frame, draws every enabled surface in order and
// swaps buffers. Depth test and program switches are only issued on change.
func (w *Window) DrawSurfaces() {
	w.backend.Clear()
	time := int32(w.TimerFrames() + w.TimerFramesOffset)
	viewportSize := mgl32.Vec2{float32(w.viewport.Width()), float32(w.viewport.Height())}
	for _, s := range w.surfaces {
		if s.Disabled || s.vbo.ElementCount == 0 {
			continue
		}
		if w.depthEnabled != s.UseDepthBuffer {
			w.backend.SetDepthTest(s.UseDepthBuffer)
			w.depthEnabled = s.UseDepthBuffer
		}
		if w.lastProgram != s.shader.Program {
			w.backend.UseProgram(s.shader.Program)
			w.lastProgram = s.shader.Program
		}
		w.backend.DrawSurface(DrawCall{
			Uniforms:     s.shader.Uniforms,
			Offset:       s.ndcOffset(),
			TextureUnit:  s.texture.Unit,
			Time:         time,
			ViewportSize: viewportSize,
			Position:     s.vbo.Position,
			Other:        s.vbo.Other,
			Element:      s.vbo.Element,
			PositionDims: s.vbo.PositionDims,
			AttribSizes:  s.vbo.Attribs.Size,
			ElementCount: s.vbo.ElementCount,
		})
	}
	w.platformWinWrapper.SwapBuffers()
}

// Close stops animations and releases surface buffers, the backend and the
// platform window.
func (w *Window) Close() {
	for _, a := range w.animations {
		a.Stop()
	}
	w.animations = nil
	w.cancel()
	w.wg.Wait()
	for _, s := range w.surfaces {
		s.vbo.release(w.backend)
		s.window = nil
	}
	w.surfaces = nil
	w.backend.Close()
	w.platformWinWrapper.Close()
}
