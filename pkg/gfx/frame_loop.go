package gfx

import (
	"context"
	"time"
)

// LoopConfig drives Window.Run.
type LoopConfig struct {
	// FrameInterval is the time between drawn frames. Defaults to 1/60 s.
	FrameInterval time.Duration
	// FixedStep is the simulation step passed to Step. Defaults to 1/120 s.
	FixedStep time.Duration
	// Step, when set, runs zero or more times per loop iteration so that it
	// keeps pace with wall time in FixedStep increments.
	Step func(dt time.Duration)
}

type framePacer struct {
	interval time.Duration
	next     time.Time
}

func newFramePacer(interval time.Duration) *framePacer {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &framePacer{
		interval: interval,
		next:     time.Now().Add(interval),
	}
}

func (p *framePacer) due() bool {
	if time.Now().Before(p.next) {
		return false
	}
	p.next = time.Now().Add(p.interval)
	return true
}

// maxCatchUp bounds how much lag one iteration simulates after a stall.
const maxCatchUp = 250 * time.Millisecond

type fixedStepper struct {
	last        time.Time
	step        time.Duration
	accumulator time.Duration
	update      func(time.Duration)
}

func newFixedStepper(step time.Duration, update func(time.Duration)) *fixedStepper {
	if step <= 0 {
		step = time.Second / 120
	}
	return &fixedStepper{
		last:   time.Now(),
		step:   step,
		update: update,
	}
}

// run returns how long the steps took.
func (s *fixedStepper) run() time.Duration {
	if s.update == nil {
		return 0
	}
	start := time.Now()
	elapsed := min(start.Sub(s.last), maxCatchUp)
	s.last = start
	s.accumulator += elapsed
	for s.accumulator >= s.step {
		s.update(s.step)
		s.accumulator -= s.step
	}
	return time.Since(start)
}

func smoothDuration(avg, last time.Duration) time.Duration {
	return time.Duration(0.95*float64(avg) + 0.05*float64(last))
}

// eventWait is how long to block on events so the next frame is not late.
func eventWait(nextFrame time.Time, avgWork time.Duration) int {
	wait := time.Until(nextFrame) - avgWork
	if wait < 0 {
		return 0
	}
	return int(wait.Milliseconds())
}

// Run is a paced alternative to calling Update in a loop: events are
// handled as they arrive, Step keeps a fixed simulation rate and a frame is
// drawn every FrameInterval. It returns when ctx is done or the window is
// exiting.
func (w *Window) Run(ctx context.Context, conf LoopConfig) {
	pacer := newFramePacer(conf.FrameInterval)
	stepper := newFixedStepper(conf.FixedStep, conf.Step)
	avgWork := time.Millisecond

	for ctx.Err() == nil {
		w.consumeEvents(eventWait(pacer.next, avgWork))
		if w.exiting {
			return
		}
		avgWork = smoothDuration(avgWork, stepper.run())
		if pacer.due() {
			w.frame()
		}
	}
}
