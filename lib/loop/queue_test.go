package loop

import "testing"

func TestQueueSizes(t *testing.T) {
	q := CreateQueue[int](3)
	q.Push(1)
	if q.Size() != 1 {
		t.Errorf("wrong size, expected=%v, got=%v", 1, q.Size())
	}
	q.Push(2)
	if q.Size() != 2 {
		t.Errorf("wrong size, expected=%v, got=%v", 2, q.Size())
	}
	q.Push(3)
	if q.Size() != 3 {
		t.Errorf("wrong size, expected=%v, got=%v", 3, q.Size())
	}

	q = CreateQueue[int](3)
	q.Push(1)
	q.Pop()
	if q.Size() != 0 {
		t.Errorf("wrong size, expected=%v, got=%v", 0, q.Size())
	}
	q.Push(1)
	q.Push(2)
	if q.Size() != 2 {
		t.Errorf("wrong size, expected=%v, got=%v", 2, q.Size())
	}
}

func TestQueue(t *testing.T) {
	q := CreateQueue[int](10)

	_, ok := q.Pop()
	if ok {
		t.Error("cannot pop from empty queue")
	}

	q.Push(123)
	if val, ok := q.Pop(); !ok || val != 123 {
		t.Errorf("failed to retrieved pushed value: %v", val)
	}

	q.Push(1)
	q.Push(2)
	q.Push(3)
	for _, expected := range []int{1, 2, 3} {
		val, ok := q.Pop()
		if !ok || val != expected {
			t.Errorf("wrong value, expected=%v, got=%v", expected, val)
		}
	}

	if !q.IsEmpty() {
		t.Errorf("must be empty")
	}

	for i := 0; i < 15; i++ {
		q.Push(i)
	}
	if q.Size() != 15 {
		t.Errorf("wrong size %v", q.Size())
	}
	for i := 0; i < 15; i++ {
		if val, ok := q.Pop(); !ok || i != val {
			t.Errorf("failed to retrieved pushed value: expected=%v, got=%v", i, val)
		}
	}
}

func TestQueueWrapAround(t *testing.T) {
	q := CreateQueue[int](4)
	q.Push(1)
	q.Push(2)
	q.Push(3)
	q.Pop()
	q.Pop()
	// pushIndex wraps to the front of the buffer here
	q.Push(4)
	q.Push(5)
	q.Push(6)
	q.Push(7)

	for _, expected := range []int{3, 4, 5, 6, 7} {
		val, ok := q.Pop()
		if !ok || val != expected {
			t.Errorf("wrong value, expected=%v, got=%v", expected, val)
		}
	}
	if q.Size() != 0 {
		t.Errorf("wrong size %v", q.Size())
	}
}

func TestQueueClear(t *testing.T) {
	q := CreateQueue[string](2)
	q.Push("a")
	q.Push("b")
	q.Push("c")
	q.Clear()
	if !q.IsEmpty() {
		t.Errorf("expected empty queue, got size %v", q.Size())
	}
}
