// Package loop is a single-threaded cooperative event loop with a virtual
// clock. Callbacks never run concurrently: they are posted or scheduled and
// then run one after another from Advance.
package loop

import (
	"container/heap"
	"time"
)

type timer struct {
	due time.Duration
	seq uint64
	fn  func()
}

type timerHeap []*timer

func (h timerHeap) Len() int { return len(h) }
func (h timerHeap) Less(i, j int) bool {
	if h[i].due == h[j].due {
		return h[i].seq < h[j].seq
	}
	return h[i].due < h[j].due
}
func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *timerHeap) Push(x any)   { *h = append(*h, x.(*timer)) }
func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return t
}

type Loop struct {
	now     time.Duration
	seq     uint64
	timers  timerHeap
	posted  Queue[func()]
	stopped bool
}

func New() *Loop {
	return &Loop{
		posted: CreateQueue[func()](16),
	}
}

// Now is the virtual time elapsed since the loop was created.
func (l *Loop) Now() time.Duration { return l.now }

func (l *Loop) Stopped() bool { return l.stopped }

// Pending counts scheduled timers and posted callbacks not yet run.
func (l *Loop) Pending() int { return len(l.timers) + l.posted.Size() }

// After schedules fn to run once, d after the current virtual time.
func (l *Loop) After(d time.Duration, fn func()) {
	if l.stopped || fn == nil {
		return
	}
	if d < 0 {
		d = 0
	}
	l.seq++
	heap.Push(&l.timers, &timer{due: l.now + d, seq: l.seq, fn: fn})
}

// Post queues fn to run at the start of the next Advance.
func (l *Loop) Post(fn func()) {
	if l.stopped || fn == nil {
		return
	}
	l.posted.Push(fn)
}

// Advance runs the posted callbacks, then every timer due within d, in due
// order. Timers scheduled by those callbacks run too when they fall inside
// the window.
func (l *Loop) Advance(d time.Duration) {
	if l.stopped {
		return
	}
	target := l.now + d

	l.drain()
	for !l.stopped && len(l.timers) > 0 && l.timers[0].due <= target {
		t := heap.Pop(&l.timers).(*timer)
		l.now = t.due
		t.fn()
		l.drain()
	}

	if !l.stopped {
		l.now = target
	}
}

// Stop terminates the loop. Nothing runs or gets scheduled afterwards.
func (l *Loop) Stop() {
	l.stopped = true
	l.timers = nil
	l.posted.Clear()
}

func (l *Loop) drain() {
	for !l.stopped {
		fn, ok := l.posted.Pop()
		if !ok {
			return
		}
		fn()
	}
}
