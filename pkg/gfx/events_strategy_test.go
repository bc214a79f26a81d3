package gfx_test

import (
	"testing"

	"github.com/kjkrol/gokt/pkg/gfx"
)

type queuePoller struct {
	events []gfx.Event
	waits  []int
}

func (q *queuePoller) poll(timeoutMs int) (gfx.Event, bool) {
	q.waits = append(q.waits, timeoutMs)
	if len(q.events) == 0 {
		return nil, false
	}
	e := q.events[0]
	q.events = q.events[1:]
	return e, true
}

func TestEventsConsumerStrategies(t *testing.T) {
	tests := []struct {
		name      string
		strategy  gfx.EventsConsumerStrategy
		queued    int
		wantCount int
		wantLeft  int
		wantWaits []int
	}{
		{"drain all", gfx.DrainAll(), 3, 3, 0, []int{20, 0, 0, 0}},
		{"drain all empty", gfx.DrainAll(), 0, 0, 0, []int{20}},
		{"drain max", gfx.DrainMax(2), 3, 2, 1, []int{20, 0}},
		{"drain max under limit", gfx.DrainMax(5), 1, 1, 0, []int{20, 0}},
		{"non-positive max handles one", gfx.DrainMax(0), 3, 1, 2, []int{20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &queuePoller{}
			for i := 0; i < tt.queued; i++ {
				q.events = append(q.events, gfx.KeyPress{Code: uint64(i)})
			}
			var handled []gfx.Event
			n := tt.strategy.Consume(q.poll, func(e gfx.Event) { handled = append(handled, e) }, 20)
			if n != tt.wantCount || len(handled) != tt.wantCount {
				t.Fatalf("handled %d (reported %d), want %d", len(handled), n, tt.wantCount)
			}
			if len(q.events) != tt.wantLeft {
				t.Fatalf("%d events left, want %d", len(q.events), tt.wantLeft)
			}
			if len(q.waits) != len(tt.wantWaits) {
				t.Fatalf("waits = %v, want %v", q.waits, tt.wantWaits)
			}
			for i := range q.waits {
				if q.waits[i] != tt.wantWaits[i] {
					t.Fatalf("waits = %v, want %v", q.waits, tt.wantWaits)
				}
			}
			for i, e := range handled {
				if e != (gfx.KeyPress{Code: uint64(i)}) {
					t.Fatalf("event %d = %v, out of order", i, e)
				}
			}
		})
	}
}
