package gfx_test

import (
	"image/color"
	"testing"

	"github.com/kjkrol/gokt/internal/gputest"
	"github.com/kjkrol/gokt/internal/platform/platformtest"
	"github.com/kjkrol/gokt/pkg/gfx"
)

// 8 world units per screen keeps NDC values exact: one unit is 0.25.
func newTestWindow(t *testing.T) (*gfx.Window, *gputest.Backend, *platformtest.Window) {
	t.Helper()
	backend := gputest.NewBackend()
	pw := platformtest.NewWindow(400, 200)
	w := gfx.NewWindow(gfx.WindowConfig{Width: 400, Height: 200, WorldUnitsX: 8, WorldUnitsY: 8}, pw, backend)
	return w, backend, pw
}

func newTestSurface(t *testing.T, w *gfx.Window, conf gfx.SurfaceConfig) *gfx.Surface {
	t.Helper()
	if conf.Texture.Key == "" && conf.Texture.Path == "" {
		conf.Texture = gfx.SolidTexture("sheet", 64, 64, color.White)
	}
	s, err := w.NewSurface(conf)
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	return s
}

func gridSurface(t *testing.T, w *gfx.Window, conf gfx.SurfaceConfig) *gfx.Surface {
	t.Helper()
	s := newTestSurface(t, w, conf)
	s.AddLayout(gfx.NewGridLayout(gfx.GridParams{Cols: 4, Rows: 4, CellWidth: 1, CellHeight: 1}))
	return s
}

func seq(from, to int) []int {
	out := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, i)
	}
	return out
}

func equalFloats(a, b []float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func newConfiguredWindow(t *testing.T, conf gfx.WindowConfig, width, height int) (*gfx.Window, *gputest.Backend, *platformtest.Window) {
	t.Helper()
	backend := gputest.NewBackend()
	pw := platformtest.NewWindow(width, height)
	return gfx.NewWindow(conf, pw, backend), backend, pw
}
