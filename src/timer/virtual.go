package timer

import "container/heap"

type scheduled struct {
	time   int64
	seq    uint64
	action func()
}

type scheduledQueue []scheduled

func (q scheduledQueue) Len() int { return len(q) }
func (q scheduledQueue) Less(i, j int) bool {
	if q[i].time != q[j].time {
		return q[i].time < q[j].time
	}
	return q[i].seq < q[j].seq
}
func (q scheduledQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *scheduledQueue) Push(x any)   { *q = append(*q, x.(scheduled)) }
func (q *scheduledQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// Virtual is a manually advanced clock. Actions with equal fire time run in the order they were scheduled.
// It is not safe for concurrent use.
type Virtual struct {
	now   int64
	seq   uint64
	queue scheduledQueue
}

func NewVirtual() *Virtual {
	return &Virtual{}
}

func (v *Virtual) Now() int64 {
	return v.now
}

func (v *Virtual) Schedule(delay int64, action func()) {
	heap.Push(&v.queue, scheduled{time: v.now + delay, seq: v.seq, action: action})
	v.seq++
}

func (v *Virtual) Pending() int {
	return v.queue.Len()
}

// Step runs the earliest pending action, moving the clock to its fire time.
func (v *Virtual) Step() bool {
	if v.queue.Len() == 0 {
		return false
	}
	next := heap.Pop(&v.queue).(scheduled)
	v.now = max(v.now, next.time)
	next.action()
	return true
}

// AdvanceTo runs every action due at or before t, then sets the clock to t.
func (v *Virtual) AdvanceTo(t int64) {
	for v.queue.Len() > 0 && v.queue[0].time <= t {
		v.Step()
	}
	v.now = max(v.now, t)
}

func (v *Virtual) Advance(d int64) {
	v.AdvanceTo(v.now + d)
}

// RunUntilIdle runs actions, including ones scheduled along the way, until none are left.
func (v *Virtual) RunUntilIdle() {
	for v.Step() {
	}
}
