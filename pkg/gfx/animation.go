package gfx

import (
	"context"
	"sync"
	"time"
)

// Animation calls Evolve every Interval. The ticker runs on its own
// goroutine but Evolve is queued to the window and runs inside
// Window.Update, on the thread owning the GL context.
type Animation struct {
	Surface  *Surface
	Interval time.Duration
	// Evolve typically mutates state and issues partial vertex updates on
	// Surface. An error stops the animation.
	Evolve func() error

	running bool
	cancel  context.CancelFunc
}

func NewAnimation(surface *Surface, interval time.Duration, evolve func() error) *Animation {
	return &Animation{
		Surface:  surface,
		Interval: interval,
		Evolve:   evolve,
	}
}

// Running reports whether the animation was started and has not stopped yet.
func (a *Animation) Running() bool {
	return a.running
}

// Run starts the ticker. A stopped animation may be run again; steps queued
// by an earlier run are dropped.
func (a *Animation) Run(ctx context.Context, wg *sync.WaitGroup, updates chan<- func()) {
	if a.running {
		return
	}
	a.running = true
	ctx, a.cancel = context.WithCancel(ctx)
	step := func() { a.step(ctx) }
	wg.Add(1)

	go func() {
		defer wg.Done()

		ticker := time.NewTicker(a.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				select {
				case updates <- step:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
}

// Stop ends the ticker goroutine. Steps already queued become no-ops.
func (a *Animation) Stop() {
	a.running = false
	if a.cancel != nil {
		a.cancel()
	}
}

func (a *Animation) step(ctx context.Context) {
	if ctx.Err() != nil || a.Evolve == nil {
		return
	}
	if a.Surface != nil {
		if a.Surface.Window() == nil {
			a.Stop()
			Logger().Debug("animation stopped, surface removed")
			return
		}
		if a.Surface.Disabled {
			return
		}
	}
	if err := a.Evolve(); err != nil {
		a.Stop()
		Logger().Warn("animation stopped", "error", err)
	}
}
