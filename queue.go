// Copyright © 2018-2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: iyuryevich@pm.me, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package ekalog

import (
	"sync"

	eddeque "github.com/ef-ds/deque"
)

// boundedQueue is a single receiver's inbound FIFO: a low-allocation ring
// buffer (ef-ds/deque) guarded by a mutex/cond pair, capped at a fixed
// capacity. tryPush never blocks the caller; once full it defers to the
// caller-supplied evict policy (evictLowestSeverity, or a flat drop of the
// new item when evict is nil).
type boundedQueue struct {
	mu       sync.Mutex
	notEmpty *sync.Cond
	dq       eddeque.Deque
	capacity int
	closed   bool

	dropped   uint64
	delivered uint64
}

func newBoundedQueue(capacity int) *boundedQueue {
	q := &boundedQueue{capacity: capacity}
	q.notEmpty = sync.NewCond(&q.mu)
	return q
}

// pushResult tells the caller what happened so it can update its own
// counters/log a BackpressureDrop without a second lock round-trip.
type pushResult int

const (
	pushOK pushResult = iota
	pushDroppedNew
	pushDroppedOldest
	pushRejectedClosed
)

// tryPush attempts a non-blocking enqueue. When the queue is already at
// capacity, evict reports which existing element (if any) should be
// dropped to make room; evict may be nil, in which case the new message
// itself is the one dropped.
func (q *boundedQueue) tryPush(v interface{}, evict func(current []interface{}) int) pushResult {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return pushRejectedClosed
	}

	if q.dq.Len() < q.capacity {
		q.dq.PushBack(v)
		q.notEmpty.Signal()
		return pushOK
	}

	if evict == nil {
		q.dropped++
		return pushDroppedNew
	}

	snapshot := q.snapshotLocked()
	idx := evict(snapshot)
	if idx < 0 || idx >= len(snapshot) {
		q.dropped++
		return pushDroppedNew
	}
	q.removeAtLocked(idx)
	q.dq.PushBack(v)
	q.dropped++
	q.notEmpty.Signal()
	return pushDroppedOldest
}

// pushControl unconditionally enqueues v, bypassing capacity and eviction —
// reserved for control signals (flush requests) that must reach the worker
// even when the queue is already full of backlogged messages. Reports false
// if the queue is already closed, in which case v was not enqueued.
func (q *boundedQueue) pushControl(v interface{}) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return false
	}
	q.dq.PushBack(v)
	q.notEmpty.Signal()
	return true
}

func (q *boundedQueue) snapshotLocked() []interface{} {
	out := make([]interface{}, 0, q.dq.Len())
	for i := 0; i < q.dq.Len(); i++ {
		v, _ := q.dq.PopFront()
		out = append(out, v)
		q.dq.PushBack(v)
	}
	return out
}

func (q *boundedQueue) removeAtLocked(idx int) {
	n := q.dq.Len()
	for i := 0; i < n; i++ {
		v, _ := q.dq.PopFront()
		if i == idx {
			continue
		}
		q.dq.PushBack(v)
	}
}

// popBlocking blocks until an item is available or the queue is closed and
// drained, returning ok=false only in the latter case.
func (q *boundedQueue) popBlocking() (v interface{}, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for q.dq.Len() == 0 {
		if q.closed {
			return nil, false
		}
		q.notEmpty.Wait()
	}
	v, _ = q.dq.PopFront()
	q.delivered++
	return v, true
}

// tryPop is the non-blocking counterpart used by Opportunistic-mode
// receivers, which only drain what is already queued rather than waiting.
func (q *boundedQueue) tryPop() (v interface{}, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.dq.Len() == 0 {
		return nil, false
	}
	v, _ = q.dq.PopFront()
	q.delivered++
	return v, true
}

func (q *boundedQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dq.Len()
}

// close marks the queue closed and wakes every blocked popper; already
// queued items remain poppable until drained.
func (q *boundedQueue) close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.notEmpty.Broadcast()
}

func (q *boundedQueue) stats() (dropped, delivered uint64) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped, q.delivered
}
