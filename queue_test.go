// Copyright © 2018-2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: iyuryevich@pm.me, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package ekalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundedQueue_PushPopFIFO(t *testing.T) {
	q := newBoundedQueue(4)
	for i := 0; i < 4; i++ {
		res := q.tryPush(i, nil)
		assert.Equal(t, pushOK, res)
	}
	for i := 0; i < 4; i++ {
		v, ok := q.tryPop()
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
	_, ok := q.tryPop()
	assert.False(t, ok)
}

func TestBoundedQueue_DropsWhenFullWithoutEvictor(t *testing.T) {
	q := newBoundedQueue(2)
	assert.Equal(t, pushOK, q.tryPush(1, nil))
	assert.Equal(t, pushOK, q.tryPush(2, nil))
	assert.Equal(t, pushDroppedNew, q.tryPush(3, nil))

	dropped, _ := q.stats()
	assert.Equal(t, uint64(1), dropped)
	assert.Equal(t, 2, q.len())
}

func TestBoundedQueue_ClosePreventsNewPushes(t *testing.T) {
	q := newBoundedQueue(2)
	q.close()
	assert.Equal(t, pushRejectedClosed, q.tryPush(1, nil))
}

func TestBoundedQueue_PopBlockingUnblocksOnClose(t *testing.T) {
	q := newBoundedQueue(2)
	done := make(chan bool, 1)
	go func() {
		_, ok := q.popBlocking()
		done <- ok
	}()
	q.close()
	ok := <-done
	assert.False(t, ok)
}
