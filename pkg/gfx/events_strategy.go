package gfx

// EventPoller returns the next event, waiting up to timeoutMs. ok is false
// when nothing arrived in time.
type EventPoller func(timeoutMs int) (event Event, ok bool)

// EventsConsumerStrategy decides how many pending events one Window.Update
// handles before drawing.
type EventsConsumerStrategy interface {
	Consume(poll EventPoller, handle func(Event), timeoutMs int) int
}

type drainStrategy struct {
	max int
}

// Consume waits up to timeoutMs for the first event only; the rest must
// already be queued.
func (s drainStrategy) Consume(poll EventPoller, handle func(Event), timeoutMs int) int {
	count := 0
	for s.max <= 0 || count < s.max {
		event, ok := poll(timeoutMs)
		if !ok {
			break
		}
		handle(event)
		count++
		timeoutMs = 0
	}
	return count
}

// DrainAll handles every queued event.
func DrainAll() EventsConsumerStrategy {
	return drainStrategy{}
}

// DrainMax handles at most max events per update, leaving the rest queued.
func DrainMax(max int) EventsConsumerStrategy {
	if max <= 0 {
		max = 1
	}
	return drainStrategy{max: max}
}
