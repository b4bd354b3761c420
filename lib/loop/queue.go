package loop

// Queue is a FIFO ring buffer that grows when full.
type Queue[T any] struct {
	data      []T
	popIndex  int
	pushIndex int
	size      int
}

func CreateQueue[T any](initSize int) Queue[T] {
	if initSize < 1 {
		initSize = 1
	}
	return Queue[T]{
		data: make([]T, initSize),
	}
}

func (q *Queue[T]) Push(item T) {
	if q.size >= len(q.data) {
		q.data = growSlice(q.data, q.popIndex, q.size)
		q.popIndex = 0
		q.pushIndex = q.size
	}

	q.data[q.pushIndex] = item
	q.pushIndex = (q.pushIndex + 1) % len(q.data)
	q.size++
}

func (q *Queue[T]) Pop() (T, bool) {
	var none T
	if q.IsEmpty() {
		return none, false
	}

	value := q.data[q.popIndex]
	q.data[q.popIndex] = none
	q.popIndex = (q.popIndex + 1) % len(q.data)
	q.size--

	return value, true
}

func (q *Queue[T]) Size() int     { return q.size }
func (q *Queue[T]) IsEmpty() bool { return q.size == 0 }

// Clear drops every queued item.
func (q *Queue[T]) Clear() {
	for !q.IsEmpty() {
		q.Pop()
	}
}

func growSlice[T any](slice []T, startIndex, size int) []T {
	capacity := len(slice)
	resized := make([]T, (capacity+1)*2)
	for i := 0; i < size; i++ {
		resized[i] = slice[(i+startIndex)%capacity]
	}
	return resized
}
