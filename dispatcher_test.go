// Copyright © 2018-2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: iyuryevich@pm.me, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package ekalog_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/inaneverb/ekalog"
	"github.com/stretchr/testify/require"
)

// Scenario 3: flush correctness under parallelism.
func TestDispatcher_FlushCorrectnessUnderParallelism(t *testing.T) {
	const n = 1000

	col := ekalog.NewCollector(ekalog.CollectorOptions{MaxItems: n + 1})
	d := ekalog.NewDispatcher()
	d.Register(ekalog.NewReceiverCore(col, ekalog.ReceiverOptions{
		Level: ekalog.LEVEL_INFO, Mode: ekalog.Continuous, QueueCapacity: n + 1,
	}))

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			logger := ekalog.New(d, fmt.Sprintf("producer-%d", i), "")
			logger.Info(fmt.Sprintf("Test {%d}", i))
		}(i)
	}
	wg.Wait()

	d.Flush()

	require.Equal(t, n, col.ItemCount())

	seen := make(map[int]bool, n)
	for _, msg := range col.Snapshot() {
		plain := ekalog.RenderPlain(msg.Content)
		var got int
		_, err := fmt.Sscanf(plain, "Test %d", &got)
		require.NoError(t, err)
		seen[got] = true
	}
	require.Len(t, seen, n)
	for i := 0; i < n; i++ {
		require.True(t, seen[i], "missing n=%d", i)
	}
}

func TestDispatcher_GlobalMinLevelTracksReceivers(t *testing.T) {
	d := ekalog.NewDispatcher()
	require.Equal(t, ekalog.LEVEL_NONE, d.GlobalMinLevel())

	col := ekalog.NewCollector(ekalog.CollectorOptions{})
	rc := ekalog.NewReceiverCore(col, ekalog.ReceiverOptions{
		Level: ekalog.LEVEL_WARNING, Mode: ekalog.Continuous, QueueCapacity: 16,
	})
	d.Register(rc)
	require.Equal(t, ekalog.LEVEL_WARNING, d.GlobalMinLevel())

	d.Unregister(rc.ID())
	require.Equal(t, ekalog.LEVEL_NONE, d.GlobalMinLevel())
}

func TestDispatcher_CloseIsIdempotent(t *testing.T) {
	d := ekalog.NewDispatcher()
	col := ekalog.NewCollector(ekalog.CollectorOptions{})
	d.Register(ekalog.NewReceiverCore(col, ekalog.ReceiverOptions{
		Level: ekalog.LEVEL_INFO, Mode: ekalog.Continuous, QueueCapacity: 16,
	}))
	d.Close()
	d.Close() // must return immediately, not hang or panic
}
