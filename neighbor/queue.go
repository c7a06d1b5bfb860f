package neighbor

// queueItem is a candidate held by the bounded heap.
type queueItem struct {
	index int
	dist  float64 // squared distance
}

// maxQueue is a value-based binary max-heap on squared distance.
// It does NOT implement container/heap to avoid interface overhead.
type maxQueue struct {
	items []queueItem
}

func (q *maxQueue) reset() {
	q.items = q.items[:0]
}

func (q *maxQueue) len() int {
	return len(q.items)
}

// pushBounded keeps the capacity closest items. If the heap is full and the new
// item is closer than the current worst, the worst is replaced.
func (q *maxQueue) pushBounded(item queueItem, capacity int) {
	if len(q.items) < capacity {
		q.items = append(q.items, item)
		q.siftUp(len(q.items) - 1)
		return
	}

	if item.dist < q.items[0].dist {
		q.items[0] = item
		q.siftDown(0)
	}
}

func (q *maxQueue) less(i, j int) bool {
	return q.items[i].dist > q.items[j].dist
}

func (q *maxQueue) swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
}

func (q *maxQueue) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.less(i, parent) {
			break
		}
		q.swap(i, parent)
		i = parent
	}
}

func (q *maxQueue) siftDown(i int) {
	n := len(q.items)
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		child := left
		right := left + 1
		if right < n && q.less(right, left) {
			child = right
		}
		if !q.less(child, i) {
			break
		}
		q.swap(i, child)
		i = child
	}
}
