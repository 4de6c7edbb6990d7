// Copyright © 2018-2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: iyuryevich@pm.me, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package ekalog

import (
	"sync"

	eddeque "github.com/ef-ds/deque"
)

// MessageReceivedEvent is passed to a Collector's handler before a message
// is stored; setting Handled suppresses storage entirely.
type MessageReceivedEvent struct {
	Message LogMessage
	Handled bool
}

// MessageReceivedFunc is called synchronously on the receiver worker
// goroutine, before insertion.
type MessageReceivedFunc func(ev *MessageReceivedEvent)

// Collector is an in-memory ring of the last MaxItems delivered messages.
// It implements Sink and is meant to be wrapped in a ReceiverCore.
type Collector struct {
	mu       sync.Mutex
	items    eddeque.Deque
	maxItems int

	messagesRemoved uint64

	onReceived MessageReceivedFunc
}

// CollectorOptions configures a Collector at construction time.
type CollectorOptions struct {
	MaxItems   int
	OnReceived MessageReceivedFunc
}

// NewCollector builds a Collector. MaxItems<=0 defaults to 100.
func NewCollector(opts CollectorOptions) *Collector {
	if opts.MaxItems <= 0 {
		opts.MaxItems = 100
	}
	return &Collector{maxItems: opts.MaxItems, onReceived: opts.OnReceived}
}

// WriteOne implements Sink: it is the receiver worker's MessageReceived
// handling plus ring insertion, evicting the oldest entry when full.
func (c *Collector) WriteOne(msg LogMessage, _ LogText) error {
	if c.onReceived != nil {
		ev := &MessageReceivedEvent{Message: msg}
		c.onReceived(ev)
		if ev.Handled {
			return nil
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.items.Len() >= c.maxItems {
		c.items.PopFront()
		c.messagesRemoved++
	}
	c.items.PushBack(msg)
	return nil
}

// Flush is a no-op: storage is already visible the instant WriteOne
// returns, there is nothing further to make durable.
func (c *Collector) Flush() error { return nil }

// Close is a no-op: a Collector owns no external resource.
func (c *Collector) Close() error { return nil }

// TryTake dequeues the oldest stored message, FIFO. ok is false if empty.
func (c *Collector) TryTake() (msg LogMessage, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, present := c.items.PopFront()
	if !present {
		return LogMessage{}, false
	}
	return v.(LogMessage), true
}

// Snapshot returns every currently stored message, oldest first, without
// removing any of them.
func (c *Collector) Snapshot() []LogMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]LogMessage, 0, c.items.Len())
	n := c.items.Len()
	for i := 0; i < n; i++ {
		v, _ := c.items.PopFront()
		out = append(out, v.(LogMessage))
		c.items.PushBack(v)
	}
	return out
}

// ItemCount is the number of messages currently stored.
func (c *Collector) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items.Len()
}

// MessagesRemoved is the cumulative count of messages evicted to make room
// for new ones (not messages explicitly taken via TryTake).
func (c *Collector) MessagesRemoved() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.messagesRemoved
}
