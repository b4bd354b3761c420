package loop

import (
	"testing"
	"time"
)

func TestAfterRunsInDueOrder(t *testing.T) {
	l := New()
	var order []int
	l.After(30*time.Millisecond, func() { order = append(order, 3) })
	l.After(10*time.Millisecond, func() { order = append(order, 1) })
	l.After(20*time.Millisecond, func() { order = append(order, 2) })
	l.After(20*time.Millisecond, func() { order = append(order, 22) })

	l.Advance(25 * time.Millisecond)
	expected := []int{1, 2, 22}
	if len(order) != len(expected) {
		t.Fatalf("expected: %v | got %v", expected, order)
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Errorf("expected: %v | got %v", expected, order)
		}
	}
	if l.Now() != 25*time.Millisecond {
		t.Errorf("expected now=25ms, got %v", l.Now())
	}

	l.Advance(5 * time.Millisecond)
	if len(order) != 4 || order[3] != 3 {
		t.Errorf("expected last timer to fire, got %v", order)
	}
}

func TestSelfReschedulingCallback(t *testing.T) {
	l := New()
	count := 0
	var tick func()
	tick = func() {
		count++
		l.After(16*time.Millisecond, tick)
	}
	l.After(16*time.Millisecond, tick)

	l.Advance(100 * time.Millisecond)
	if count != 6 {
		t.Errorf("expected 6 ticks in 100ms, got %v", count)
	}
	if l.Pending() != 1 {
		t.Errorf("expected one pending tick, got %v", l.Pending())
	}
}

func TestPostRunsBeforeTimers(t *testing.T) {
	l := New()
	var order []string
	l.After(0, func() { order = append(order, "timer") })
	l.Post(func() { order = append(order, "posted") })

	l.Advance(0)
	if len(order) != 2 || order[0] != "posted" || order[1] != "timer" {
		t.Errorf("expected: [posted timer] | got %v", order)
	}
}

func TestStopHaltsEverything(t *testing.T) {
	l := New()
	ran := 0
	l.After(10*time.Millisecond, func() {
		ran++
		l.Stop()
	})
	l.After(10*time.Millisecond, func() { ran++ })
	l.Post(func() {})

	l.Advance(time.Second)
	if ran != 1 {
		t.Errorf("expected only the stopping callback to run, got %v", ran)
	}
	if !l.Stopped() {
		t.Error("expected loop to be stopped")
	}
	if l.Pending() != 0 {
		t.Errorf("expected nothing pending, got %v", l.Pending())
	}

	l.Post(func() { ran++ })
	l.After(0, func() { ran++ })
	l.Advance(time.Second)
	if ran != 1 {
		t.Errorf("expected stopped loop to ignore new work, got %v", ran)
	}
	if l.Now() != 10*time.Millisecond {
		t.Errorf("expected clock frozen at 10ms, got %v", l.Now())
	}
}
