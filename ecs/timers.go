package ecs

import "container/heap"

// TimerFunc is a deferred callback. It only runs while its target is alive.
type TimerFunc func(w *World, target Entity)

type timer struct {
	at     int64
	seq    uint64
	target Entity
	fn     TimerFunc
}

// timerQueue is a min-heap ordered by fire time, then insertion order.
type timerQueue struct {
	items []*timer
	seq   uint64
}

func (q *timerQueue) Len() int { return len(q.items) }

func (q *timerQueue) Less(i, j int) bool {
	if q.items[i].at != q.items[j].at {
		return q.items[i].at < q.items[j].at
	}
	return q.items[i].seq < q.items[j].seq
}

func (q *timerQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *timerQueue) Push(x any) { q.items = append(q.items, x.(*timer)) }

func (q *timerQueue) Pop() any {
	n := len(q.items)
	t := q.items[n-1]
	q.items[n-1] = nil
	q.items = q.items[:n-1]
	return t
}

// After schedules fn to run once, delayMs after the current simulated time,
// at the start of a later tick. A zero target means the callback has no
// target and always runs.
func (w *World) After(delayMs int64, target Entity, fn TimerFunc) {
	if w == nil || fn == nil {
		return
	}
	if delayMs < 0 {
		delayMs = 0
	}
	w.timers.seq++
	heap.Push(&w.timers, &timer{at: w.nowMs + delayMs, seq: w.timers.seq, target: target, fn: fn})
}

// RunDueTimers fires every timer whose time has come and returns how many
// callbacks ran. Timers whose target died are dropped silently.
func (w *World) RunDueTimers() int {
	if w == nil {
		return 0
	}
	fired := 0
	for w.timers.Len() > 0 && w.timers.items[0].at <= w.nowMs {
		t := heap.Pop(&w.timers).(*timer)
		if t.target.Valid() && !w.IsAlive(t.target) {
			continue
		}
		t.fn(w, t.target)
		fired++
	}
	return fired
}

// PendingTimers returns the number of scheduled callbacks.
func (w *World) PendingTimers() int {
	if w == nil {
		return 0
	}
	return w.timers.Len()
}
