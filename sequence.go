// Copyright © 2018-2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: iyuryevich@pm.me, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package ekalog

import (
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// SequenceID is the dispatcher's logical clock: a monotonically increasing
// ULID minted by the single worker goroutine as it pops a message off the
// inbound queue. It doubles as both a unique message ID and a sortable
// arrival-order marker; Dispatcher.Flush tracks completion with its own
// enqueued/processed counters rather than comparing SequenceIDs, since a
// message sitting in the inbound queue has none yet.
type SequenceID = ulid.ULID

// sequencer mints strictly increasing SequenceID values. It is owned by
// exactly one goroutine (the dispatcher's worker); ulid.Monotonic's entropy
// source does no locking of its own, so the mutex here guards it in case a
// sequencer is ever shared across goroutines (e.g. in tests).
type sequencer struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func newSequencer() *sequencer {
	return &sequencer{
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}
}

// next mints the next SequenceID, timestamped at t.
func (s *sequencer) next(t time.Time) SequenceID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, err := ulid.New(ulid.Timestamp(t), s.entropy)
	if err != nil {
		// Entropy exhaustion within the same millisecond is the only
		// failure mode; fall back to a fresh non-monotonic ID rather than
		// ever failing a producer's send.
		id, _ = ulid.New(ulid.Timestamp(t), rand.New(rand.NewSource(time.Now().UnixNano())))
	}
	return id
}
