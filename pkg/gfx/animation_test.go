package gfx_test

import (
	"errors"
	"testing"
	"time"

	"github.com/kjkrol/gokt/pkg/gfx"
)

// updateUntil drives w until done reports true or the deadline passes.
func updateUntil(t *testing.T, w *gfx.Window, done func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !done() {
		if time.Now().After(deadline) {
			t.Fatalf("condition not reached in time")
		}
		w.Update()
		time.Sleep(time.Millisecond)
	}
}

func TestAnimationEvolvesSurface(t *testing.T) {
	w, backend, _ := newTestWindow(t)
	defer w.Close()
	s := gridSurface(t, w, gfx.SurfaceConfig{})
	if err := s.UpdatePositions(seq(0, 4)); err != nil {
		t.Fatal(err)
	}

	frame := 0
	a := gfx.NewAnimation(s, time.Millisecond, func() error {
		frame++
		// shift the first tile one cell right every step
		return s.UpdatePositions([]int{frame % 16}, gfx.StartAt(0))
	})
	w.StartAnimation(a)
	if !a.Running() {
		t.Fatalf("animation not running")
	}
	updateUntil(t, w, func() bool { return frame >= 3 })

	pos := backend.Buffers[s.Buffers().Position]
	if want := float32(frame%4)*0.25 - 1; pos[0] != want {
		t.Fatalf("x0 = %v, want %v after %d frames", pos[0], want, frame)
	}
	if s.Buffers().Quads() != 4 {
		t.Fatalf("animation reallocated: %d quads", s.Buffers().Quads())
	}

	a.Stop()
	if a.Running() {
		t.Fatalf("stopped animation still running")
	}
	stoppedAt := frame
	for iter := 0; iter < 5; iter++ {
		w.Update()
		time.Sleep(2 * time.Millisecond)
	}
	if frame != stoppedAt {
		t.Fatalf("evolve ran %d times after Stop", frame-stoppedAt)
	}
}

func TestAnimationStopsOnError(t *testing.T) {
	w, _, _ := newTestWindow(t)
	defer w.Close()
	s := gridSurface(t, w, gfx.SurfaceConfig{})

	calls := 0
	boom := errors.New("boom")
	a := gfx.NewAnimation(s, time.Millisecond, func() error {
		calls++
		if calls == 2 {
			return boom
		}
		return nil
	})
	w.StartAnimation(a)
	updateUntil(t, w, func() bool { return !a.Running() })

	for iter := 0; iter < 5; iter++ {
		w.Update()
		time.Sleep(2 * time.Millisecond)
	}
	if calls != 2 {
		t.Fatalf("evolve ran %d times, want 2", calls)
	}
}

func TestAnimationSkipsDisabledSurface(t *testing.T) {
	w, _, _ := newTestWindow(t)
	defer w.Close()
	s := gridSurface(t, w, gfx.SurfaceConfig{})
	s.Disabled = true

	calls := 0
	w.StartAnimation(gfx.NewAnimation(s, time.Millisecond, func() error {
		calls++
		return nil
	}))
	for iter := 0; iter < 10; iter++ {
		w.Update()
		time.Sleep(2 * time.Millisecond)
	}
	if calls != 0 {
		t.Fatalf("evolve ran %d times on a disabled surface", calls)
	}

	s.Disabled = false
	updateUntil(t, w, func() bool { return calls > 0 })
}

func TestAnimationRestart(t *testing.T) {
	w, _, _ := newTestWindow(t)
	defer w.Close()
	s := gridSurface(t, w, gfx.SurfaceConfig{})

	calls := 0
	a := gfx.NewAnimation(s, time.Millisecond, func() error {
		calls++
		return nil
	})
	w.StartAnimation(a)
	updateUntil(t, w, func() bool { return calls > 0 })
	a.Stop()

	w.StartAnimation(a)
	if !a.Running() {
		t.Fatalf("restarted animation not running")
	}
	restartedAt := calls
	updateUntil(t, w, func() bool { return calls > restartedAt })
}

func TestAnimationStopsWithRemovedSurface(t *testing.T) {
	w, _, _ := newTestWindow(t)
	defer w.Close()
	s := gridSurface(t, w, gfx.SurfaceConfig{})
	if err := s.UpdatePositions(seq(0, 4)); err != nil {
		t.Fatal(err)
	}

	calls := 0
	a := gfx.NewAnimation(s, time.Millisecond, func() error {
		calls++
		return s.UpdatePositions([]int{calls % 16}, gfx.StartAt(0))
	})
	w.StartAnimation(a)
	updateUntil(t, w, func() bool { return calls > 0 })

	s.RemoveFromWindow()
	if a.Running() {
		t.Fatalf("animation of a removed surface still running")
	}
	removedAt := calls
	time.Sleep(20 * time.Millisecond)
	for iter := 0; iter < 5; iter++ {
		w.Update()
		time.Sleep(2 * time.Millisecond)
	}
	if calls != removedAt {
		t.Fatalf("evolve ran %d times after removal", calls-removedAt)
	}
}
