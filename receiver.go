// Copyright © 2018-2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: iyuryevich@pm.me, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package ekalog

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Sink is what a concrete receiver (Collector, console, HTML file, syslog
// bridge, plain file, ...) implements. All three methods run exclusively
// on that receiver's own worker goroutine — never concurrently, never from
// the dispatcher's goroutine directly.
type Sink interface {
	WriteOne(msg LogMessage, styled LogText) error
	Flush() error
	Close() error
}

// Mode selects how a receiver's worker drains its queue.
type Mode uint8

const (
	// Continuous: the worker sleeps on an empty queue and processes every
	// message exactly once, in arrival order.
	Continuous Mode = iota
	// Opportunistic: the worker only drains what is already queued each
	// time it wakes, skipping ahead rather than blocking a slow sink —
	// still delivers a terminal close.
	Opportunistic
)

//noinspection GoSnakeCaseUsage
const (
	_RECEIVER_CAS_OPEN    = int32(0)
	_RECEIVER_CAS_CLOSING = int32(1)
	_RECEIVER_CAS_CLOSED  = int32(2)
)

// ReceiverCore is the framework every concrete Sink is wrapped in: a
// bounded per-receiver queue, a dedicated worker goroutine, the
// late-message/backpressure policy and the Open→Closing→Closed lifecycle.
// Modeled on the teacher's async HTTP writer worker (CAS status field,
// context-driven shutdown, one goroutine owning all sink side effects).
type ReceiverCore struct {
	id   ReceiverID
	sink Sink
	mode Mode

	level Level

	queue *boundedQueue

	lateThreshold int
	lateMS        int64

	casState int32

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	lastSinkErr  atomic.Value // error
	lastErrMu    sync.Mutex
	lastProcTime atomic.Int64 // unix nano
}

// ReceiverOptions configures a ReceiverCore at registration time.
type ReceiverOptions struct {
	Level         Level
	Mode          Mode
	QueueCapacity int
	LateThreshold int   // queue depth past which the receiver is "late"; negative disables
	LateMS        int64 // message age in ms past which the receiver is "late"; negative disables
}

// DefaultReceiverOptions mirrors the Collector's own defaults for anything
// not itself an in-memory collector: Information level, a 4096-deep queue,
// Continuous mode, late-checks disabled.
func DefaultReceiverOptions() ReceiverOptions {
	return ReceiverOptions{
		Level:         LEVEL_INFO,
		Mode:          Continuous,
		QueueCapacity: 4096,
		LateThreshold: -1,
		LateMS:        -1,
	}
}

// NewReceiverCore wraps sink in the queueing/worker/lifecycle framework.
func NewReceiverCore(sink Sink, opts ReceiverOptions) *ReceiverCore {
	if opts.QueueCapacity <= 0 {
		opts.QueueCapacity = 4096
	}
	ctx, cancel := context.WithCancel(context.Background())
	rc := &ReceiverCore{
		id:            newReceiverID(),
		sink:          sink,
		mode:          opts.Mode,
		level:         opts.Level,
		queue:         newBoundedQueue(opts.QueueCapacity),
		lateThreshold: opts.LateThreshold,
		lateMS:        opts.LateMS,
		ctx:           ctx,
		cancel:        cancel,
		done:          make(chan struct{}),
	}
	go rc.run()
	return rc
}

// ID identifies this receiver for the lifetime of the process.
func (rc *ReceiverCore) ID() ReceiverID { return rc.id }

// Level is the acceptance threshold: messages numerically greater are
// dropped by the dispatcher before they ever reach this receiver's queue.
func (rc *ReceiverCore) Level() Level { return rc.level }

// isLate reports whether the receiver is currently behind, per whichever
// of its two knobs is enabled (a negative value disables that check).
func (rc *ReceiverCore) isLate(msgTime time.Time) bool {
	if rc.lateThreshold >= 0 && rc.queue.len() > rc.lateThreshold {
		return true
	}
	if rc.lateMS >= 0 {
		if time.Since(msgTime).Milliseconds() > rc.lateMS {
			return true
		}
	}
	return false
}

// Offer attempts to hand msg to this receiver. It never blocks. When the
// queue is full and the receiver is late (see isLate), the lowest-severity
// queued message is evicted to make room; when the queue is full and the
// receiver is not late (e.g. both late knobs disabled, as in
// DefaultReceiverOptions), msg itself is dropped instead. Either way the
// drop is only counted, never surfaced to the producer.
func (rc *ReceiverCore) Offer(msg LogMessage) {
	if atomic.LoadInt32(&rc.casState) != _RECEIVER_CAS_OPEN {
		return // LifecycleMisuse: silently dropped, already-closing/closed
	}
	var evict func([]interface{}) int
	if rc.isLate(msg.DateTime) {
		evict = evictLowestSeverity
	}
	rc.queue.tryPush(msg, evict)
}

// flushSignal is a control item posted onto the queue so Flush's call into
// rc.sink.Flush happens on the worker goroutine, same as every WriteOne —
// never on whichever goroutine called Flush.
type flushSignal struct {
	done chan struct{}
}

// run is the receiver's dedicated worker goroutine: the only goroutine
// that ever calls into rc.sink.
func (rc *ReceiverCore) run() {
	defer close(rc.done)
	for {
		v, ok := rc.drainOne()
		if !ok {
			rc.drainRemaining()
			rc.finalizeSink()
			return
		}
		rc.handle(v)
	}
}

func (rc *ReceiverCore) drainOne() (interface{}, bool) {
	var v interface{}
	var ok bool
	if rc.mode == Opportunistic {
		for {
			v, ok = rc.queue.tryPop()
			if ok {
				break
			}
			select {
			case <-time.After(10 * time.Millisecond):
			case <-rc.ctx.Done():
				return nil, false
			}
		}
	} else {
		v, ok = rc.queue.popBlocking()
	}
	if !ok {
		return nil, false
	}
	return v, true
}

func (rc *ReceiverCore) drainRemaining() {
	for {
		v, ok := rc.queue.tryPop()
		if !ok {
			return
		}
		rc.handle(v)
	}
}

// handle dispatches a queued item to either sink delivery or a pending
// Flush's sentinel — both run exclusively on this worker goroutine.
func (rc *ReceiverCore) handle(v interface{}) {
	switch item := v.(type) {
	case *flushSignal:
		rc.doFlush(item)
	case LogMessage:
		rc.deliver(item)
	}
}

func (rc *ReceiverCore) doFlush(sig *flushSignal) {
	if err := rc.sink.Flush(); err != nil {
		rc.recordSinkErr(&SinkError{Receiver: rc.id.String(), Op: "flush", Err: err})
	}
	close(sig.done)
}

func (rc *ReceiverCore) deliver(msg LogMessage) {
	styled := msg.Content
	if err := rc.sink.WriteOne(msg, styled); err != nil {
		rc.recordSinkErr(&SinkError{Receiver: rc.id.String(), Op: "write_one", Err: err})
	}
	rc.lastProcTime.Store(time.Now().UnixNano())
}

func (rc *ReceiverCore) recordSinkErr(err error) {
	rc.lastErrMu.Lock()
	rc.lastSinkErr.Store(err)
	rc.lastErrMu.Unlock()
}

// TakeLastSinkError returns and clears the last SinkError observed, so the
// dispatcher can self-emit it once at Error level on its next cycle.
func (rc *ReceiverCore) TakeLastSinkError() error {
	rc.lastErrMu.Lock()
	defer rc.lastErrMu.Unlock()
	v := rc.lastSinkErr.Load()
	rc.lastSinkErr = atomic.Value{}
	if v == nil {
		return nil
	}
	return v.(error)
}

func (rc *ReceiverCore) finalizeSink() {
	if err := rc.sink.Flush(); err != nil {
		rc.recordSinkErr(&SinkError{Receiver: rc.id.String(), Op: "flush", Err: err})
	}
	if err := rc.sink.Close(); err != nil {
		rc.recordSinkErr(&SinkError{Receiver: rc.id.String(), Op: "close", Err: err})
	}
	atomic.StoreInt32(&rc.casState, _RECEIVER_CAS_CLOSED)
}

// Flush posts a flush sentinel behind every message already queued and
// blocks until the worker goroutine reaches it and calls the sink's own
// Flush — rc.sink.Flush is never called from Flush's own caller, only from
// the same worker goroutine every WriteOne runs on. A no-op once the
// receiver is no longer Open: finalizeSink already flushed the sink once
// on its way to Closed.
func (rc *ReceiverCore) Flush() {
	if atomic.LoadInt32(&rc.casState) != _RECEIVER_CAS_OPEN {
		return
	}
	sig := &flushSignal{done: make(chan struct{})}
	if !rc.queue.pushControl(sig) {
		return
	}
	<-sig.done
}

// Close transitions Open→Closing, stops accepting new messages, waits for
// the worker to drain and finalize the sink, then is Closed. Idempotent.
func (rc *ReceiverCore) Close() {
	if !atomic.CompareAndSwapInt32(&rc.casState, _RECEIVER_CAS_OPEN, _RECEIVER_CAS_CLOSING) {
		<-rc.done
		return
	}
	rc.queue.close()
	rc.cancel()
	<-rc.done
}

// IsClosed reports whether this receiver has fully finalized its sink.
func (rc *ReceiverCore) IsClosed() bool {
	return atomic.LoadInt32(&rc.casState) == _RECEIVER_CAS_CLOSED
}
