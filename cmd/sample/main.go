package main

import (
	"context"
	_ "embed"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/kjkrol/gokt/internal/platform/glfwwin"
	"github.com/kjkrol/gokt/internal/renderer"
	"github.com/kjkrol/gokt/pkg/gfx"
)

//go:embed window.yaml
var windowYAML []byte

const (
	cols     = 20
	rows     = 15
	tilePx   = 16
	sheetCol = 4
)

func main() {
	gfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	conf, err := gfx.ParseWindowConfig(windowYAML)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	pw, err := glfwwin.NewPlatformWindowWrapper(conf.PlatformConfig())
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	ctx := &Context{}
	window := gfx.NewWindow(conf, pw, renderer.NewBackend(), gfx.WithEventHandler(func(e gfx.Event) {
		handleEvent(e, ctx)
	}))
	ctx.window = window
	defer window.Close()

	tiles, err := newTileSurface(window)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	cubes, err := newCubeSurface(window)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	ctx.cubes = cubes

	window.Show()

	// ------- Animations -------------------

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	window.StartAnimation(gfx.NewAnimation(tiles, 100*time.Millisecond, func() error {
		for range 8 {
			tint := gfx.ColorAttrib(color.RGBA{uint8(r.Intn(256)), uint8(r.Intn(256)), uint8(r.Intn(256)), 255})
			if err := tiles.UpdateOtherSingle(r.Intn(cols*rows), r.Intn(sheetCol*sheetCol), [][]float32{tint}, gfx.Unset); err != nil {
				return err
			}
		}
		return nil
	}))

	frame := 0
	window.StartAnimation(gfx.NewAnimation(cubes, 250*time.Millisecond, func() error {
		frame++
		// walk the first cube around the map
		return cubes.UpdatePositions([]int{frame % 36}, gfx.StartAt(0))
	}))

	// --------------------------------------

	ctxRun, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	window.Run(ctxRun, gfx.LoopConfig{FrameInterval: time.Second / 60})

	fmt.Println("Program closed")
}

type Context struct {
	lmbPressed bool
	dragFrom   image.Point
	window     *gfx.Window
	cubes      *gfx.Surface
}

func handleEvent(event gfx.Event, ctx *Context) {
	switch e := event.(type) {
	case gfx.KeyPress:
		switch glfw.Key(e.Code) {
		case glfw.KeyEscape:
			ctx.window.Exit()
		case glfw.KeyF11:
			ctx.window.ToggleFullScreen()
		case glfw.KeySpace:
			ctx.cubes.Disabled = !ctx.cubes.Disabled
		case glfw.KeyLeft:
			ctx.cubes.ChangeOffset(-0.5, 0)
		case glfw.KeyRight:
			ctx.cubes.ChangeOffset(0.5, 0)
		case glfw.KeyUp:
			ctx.cubes.ChangeOffset(0, -0.5)
		case glfw.KeyDown:
			ctx.cubes.ChangeOffset(0, 0.5)
		}
	case gfx.ButtonPress:
		if e.Button == uint32(glfw.MouseButtonLeft) {
			ctx.lmbPressed = true
			ctx.dragFrom = image.Pt(e.X, e.Y)
		}
	case gfx.ButtonRelease:
		if e.Button == uint32(glfw.MouseButtonLeft) {
			ctx.lmbPressed = false
		}
	case gfx.MotionNotify:
		if ctx.lmbPressed {
			ctx.cubes.ChangeOffsetInPixels(e.X-ctx.dragFrom.X, e.Y-ctx.dragFrom.Y)
			ctx.dragFrom = image.Pt(e.X, e.Y)
		}
	case gfx.Resize:
		fmt.Printf("Window resized %dx%d\n", e.Width, e.Height)
	}
}

// tileSheet paints a sheetCol x sheetCol sheet of white tiles with a
// different border each, so the tint shader can color them.
func tileSheet() *image.RGBA {
	size := tilePx * sheetCol
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for i := range sheetCol * sheetCol {
		x0, y0 := (i%sheetCol)*tilePx, (i/sheetCol)*tilePx
		border := 1 + i%4
		for y := 0; y < tilePx; y++ {
			for x := 0; x < tilePx; x++ {
				c := color.RGBA{255, 255, 255, 255}
				if x < border || y < border || x >= tilePx-border || y >= tilePx-border {
					c = color.RGBA{96, 96, 96, 255}
				}
				img.SetRGBA(x0+x, y0+y, c)
			}
		}
	}
	return img
}

func newTileSurface(window *gfx.Window) (*gfx.Surface, error) {
	s, err := window.NewSurface(gfx.SurfaceConfig{
		Texture:           gfx.TextureSource{Key: "tiles", Image: tileSheet()},
		FragmentShader:    gfx.NewTintFS,
		AttributeDefaults: [][]float32{gfx.ColorAttrib(color.White), gfx.ColorAttrib(color.Transparent)},
	})
	if err != nil {
		return nil, err
	}
	s.Texture().DefineSpriteAcross(tilePx, tilePx, sheetCol, 0, 0)
	s.AddLayout(gfx.NewGridLayout(gfx.GridParams{Cols: cols, Rows: rows}))
	if err := s.SetEasyLayoutCounts(cols * rows); err != nil {
		return nil, err
	}
	s.UpdateOtherDataOnlyMethod = func(d *gfx.SurfaceDefaults) {
		d.Sprites = make([]int, cols*rows)
		for i := range d.Sprites {
			d.Sprites[i] = (i/cols + i%cols) % (sheetCol * sheetCol)
		}
	}
	if err := s.DefaultUpdatePositions(); err != nil {
		return nil, err
	}
	return s, s.UpdateOtherDataOnly()
}

func newCubeSurface(window *gfx.Window) (*gfx.Surface, error) {
	s, err := window.NewSurface(gfx.SurfaceConfig{
		Texture:  gfx.SolidTexture("cube", 1, 1, color.RGBA{40, 160, 220, 255}),
		UseDepth: true,
	})
	if err != nil {
		return nil, err
	}
	iso := gfx.IsoParams{
		Cols: 6, Rows: 6,
		CellWidth: 1, CellHeight: 1,
		OffsetX: 9.5, OffsetY: 2,
		CellHOffset: 0.5, CellVOffset: 0.25,
		Z: func(idx int) float32 { return 1 - float32(idx)/100 },
	}
	s.AddLayout(gfx.NewIsoLayout(iso))
	if err := s.SetEasyLayoutCounts(36); err != nil {
		return nil, err
	}
	s.SetDefaultSprite(0)
	return s, s.DefaultUpdate()
}
