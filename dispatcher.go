// Copyright © 2018-2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: iyuryevich@pm.me, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package ekalog

import (
	"sync"
	"sync/atomic"
	"time"

	eddeque "github.com/ef-ds/deque"
)

//noinspection GoSnakeCaseUsage
const (
	_DISPATCHER_STOPPED  = int32(0)
	_DISPATCHER_RUNNING  = int32(1)
	_DISPATCHER_CLOSING  = int32(2)
	_DISPATCHER_CLOSED   = int32(3)
)

// Dispatcher is the process-wide singleton fan-out: producers enqueue,
// exactly one worker goroutine drains inbound in strict FIFO order and
// pushes each message onto every accepting receiver's bounded queue.
// Use Default() rather than constructing one directly outside of tests.
type Dispatcher struct {
	mu       sync.Mutex
	notEmpty *sync.Cond
	inbound  eddeque.Deque

	state int32

	recvMu    sync.RWMutex
	receivers map[ReceiverID]*ReceiverCore

	globalMinLevel atomic.Uint32 // Level, widened for atomic access

	seq *sequencer

	enqueuedCount  atomic.Uint64
	processedCount atomic.Uint64

	workerStarted sync.Once
}

// NewDispatcher builds an unstarted Dispatcher. The worker goroutine is
// lazily started on the first register or enqueue.
func NewDispatcher() *Dispatcher {
	d := &Dispatcher{
		receivers: make(map[ReceiverID]*ReceiverCore),
		seq:       newSequencer(),
	}
	d.notEmpty = sync.NewCond(&d.mu)
	d.globalMinLevel.Store(uint32(LEVEL_NONE))
	return d
}

func (d *Dispatcher) ensureStarted() {
	d.workerStarted.Do(func() {
		// CAS so a Close that already moved a never-started dispatcher to
		// Closing is not overwritten.
		atomic.CompareAndSwapInt32(&d.state, _DISPATCHER_STOPPED, _DISPATCHER_RUNNING)
		go d.run()
	})
}

// Register adds a receiver to the fan-out set and recomputes the fast
// global rejection threshold. Starts the dispatcher if it was Stopped.
func (d *Dispatcher) Register(rc *ReceiverCore) {
	d.recvMu.Lock()
	d.receivers[rc.ID()] = rc
	d.recomputeGlobalMinLevelLocked()
	d.recvMu.Unlock()
	d.ensureStarted()
}

// Unregister removes a receiver from the fan-out set (it is not closed by
// this call — callers that also want it shut down should call its Close).
func (d *Dispatcher) Unregister(id ReceiverID) {
	d.recvMu.Lock()
	delete(d.receivers, id)
	d.recomputeGlobalMinLevelLocked()
	d.recvMu.Unlock()
}

func (d *Dispatcher) recomputeGlobalMinLevelLocked() {
	max := LEVEL_EMERGENCY
	for _, rc := range d.receivers {
		if rc.Level() > max {
			max = rc.Level()
		}
	}
	if len(d.receivers) == 0 {
		max = LEVEL_NONE
	}
	d.globalMinLevel.Store(uint32(max))
}

// GlobalMinLevel is the threshold a Logger fast-path-rejects against: any
// message strictly more verbose than this cannot be accepted by any
// registered receiver and is dropped before it is ever enqueued.
func (d *Dispatcher) GlobalMinLevel() Level {
	return Level(d.globalMinLevel.Load())
}

// Enqueue appends msg to the inbound FIFO and wakes the worker. Producer
// emissions are per-goroutine FIFO; cross-goroutine order is the order of
// successful Enqueue calls.
func (d *Dispatcher) Enqueue(msg LogMessage) {
	if atomic.LoadInt32(&d.state) == _DISPATCHER_CLOSED || atomic.LoadInt32(&d.state) == _DISPATCHER_CLOSING {
		return // LifecycleMisuse: emission after close is a silent no-op
	}
	d.ensureStarted()

	d.mu.Lock()
	d.inbound.PushBack(msg)
	d.enqueuedCount.Add(1)
	d.notEmpty.Signal()
	d.mu.Unlock()
}

// run is the single dispatcher worker: pop inbound, stamp a SequenceID,
// fan out to every accepting receiver.
func (d *Dispatcher) run() {
	for {
		d.mu.Lock()
		for d.inbound.Len() == 0 {
			if atomic.LoadInt32(&d.state) == _DISPATCHER_CLOSING {
				d.mu.Unlock()
				d.finishClosing()
				return
			}
			d.notEmpty.Wait()
		}
		v, _ := d.inbound.PopFront()
		d.mu.Unlock()

		msg := v.(LogMessage)
		msg.SequenceID = d.seq.next(msg.DateTime)

		d.fanOut(msg)
		d.processedCount.Add(1)
	}
}

func (d *Dispatcher) fanOut(msg LogMessage) {
	d.recvMu.RLock()
	defer d.recvMu.RUnlock()
	for _, rc := range d.receivers {
		if msg.Level.LessSevereOrEqual(rc.Level()) {
			rc.Offer(msg)
		}
		if err := rc.TakeLastSinkError(); err != nil {
			d.selfLog(err)
		}
	}
}

// selfLog emits a receiver's surfaced SinkError as an Error-level message
// from the dispatcher itself, pushed back onto inbound the same way Enqueue
// does (but without Enqueue's closing check), so it is fanned out on a later
// cycle of this worker (never synchronously, never recursively from within a
// receiver's own worker).
func (d *Dispatcher) selfLog(err error) {
	msg := NewLogMessage(LEVEL_ERROR, "ekalog", "Dispatcher", err.Error(), Invariant)
	d.mu.Lock()
	d.inbound.PushBack(msg)
	d.enqueuedCount.Add(1)
	d.notEmpty.Signal()
	d.mu.Unlock()
}

// Flush captures the number of messages enqueued so far, waits until the
// worker has fanned out at least that many, then flushes every receiver in
// turn: everything a producer enqueued before this call is guaranteed
// delivered to every accepting receiver before Flush returns.
func (d *Dispatcher) Flush() {
	target := d.enqueuedCount.Load()

	for d.processedCount.Load() < target {
		time.Sleep(time.Millisecond)
	}

	d.recvMu.RLock()
	recvs := make([]*ReceiverCore, 0, len(d.receivers))
	for _, rc := range d.receivers {
		recvs = append(recvs, rc)
	}
	d.recvMu.RUnlock()

	for _, rc := range recvs {
		rc.Flush()
	}
}

// Close transitions Stopped/Running→Closing, drains inbound, closes every
// receiver, then is Closed. Idempotent: a second Close returns immediately.
func (d *Dispatcher) Close() {
	for {
		cur := atomic.LoadInt32(&d.state)
		if cur == _DISPATCHER_CLOSED {
			return
		}
		if cur == _DISPATCHER_CLOSING {
			break
		}
		if atomic.CompareAndSwapInt32(&d.state, cur, _DISPATCHER_CLOSING) {
			d.ensureStarted() // a never-started dispatcher still needs its worker to exit
			d.mu.Lock()
			d.notEmpty.Broadcast()
			d.mu.Unlock()
			break
		}
	}
	for atomic.LoadInt32(&d.state) != _DISPATCHER_CLOSED {
		time.Sleep(time.Millisecond)
	}
}

func (d *Dispatcher) finishClosing() {
	d.recvMu.RLock()
	recvs := make([]*ReceiverCore, 0, len(d.receivers))
	for _, rc := range d.receivers {
		recvs = append(recvs, rc)
	}
	d.recvMu.RUnlock()

	for _, rc := range recvs {
		rc.Close()
	}
	atomic.StoreInt32(&d.state, _DISPATCHER_CLOSED)
}
