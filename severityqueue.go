// Copyright © 2018-2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: iyuryevich@pm.me, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package ekalog

import (
	binaryheap "github.com/theodesp/go-heaps/binary"
)

// severityHeapItem pairs a queued LogMessage with its position in the
// snapshot tryPush hands to the eviction policy, since the heap reorders
// but the caller needs an index back into the original slice.
type severityHeapItem struct {
	msg   LogMessage
	index int
}

// evictLowestSeverity implements the bounded queue's "drop lowest-severity
// first" backpressure policy: when a late receiver's queue is full, the least
// severe already-queued message is evicted to make room for the new one,
// ties broken by the oldest SequenceID. ReceiverCore.Offer hands it to
// boundedQueue.tryPush as the evict callback only while the receiver is late.
//
// The comparison order is inverted from a textbook min-heap on severity:
// Level's zero value is the MOST severe (Emergency), so the item we want to
// evict is the one a plain min-heap on Level would place last. Building a
// min-heap keyed by (-Level, SequenceID) surfaces the least severe, oldest
// candidate at the root in one Pop.
func evictLowestSeverity(current []interface{}) int {
	if len(current) == 0 {
		return -1
	}

	h := binaryheap.NewWith(func(a, b interface{}) int {
		ia, ib := a.(severityHeapItem), b.(severityHeapItem)
		if ia.msg.Level != ib.msg.Level {
			// Higher Level value == less severe == evict first, so it must
			// sort ahead in this min-heap: invert the natural order.
			if ia.msg.Level > ib.msg.Level {
				return -1
			}
			return 1
		}
		return ia.msg.SequenceID.Compare(ib.msg.SequenceID)
	})

	for i, v := range current {
		msg, ok := v.(LogMessage)
		if !ok {
			continue
		}
		h.Push(severityHeapItem{msg: msg, index: i})
	}

	if h.IsEmpty() {
		return -1
	}
	top := h.Pop().(severityHeapItem)
	return top.index
}
