// Copyright © 2018-2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: iyuryevich@pm.me, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package ekalog_test

import (
	"fmt"
	"testing"

	"github.com/inaneverb/ekalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIsolatedLogger(t *testing.T, rc *ekalog.ReceiverCore, senderName string) *ekalog.Logger {
	t.Helper()
	d := ekalog.NewDispatcher()
	d.Register(rc)
	return ekalog.New(d, senderName, "")
}

// Scenario 1: capacity eviction.
func TestCollector_CapacityEviction(t *testing.T) {
	col := ekalog.NewCollector(ekalog.CollectorOptions{MaxItems: 100})
	rc := ekalog.NewReceiverCore(col, ekalog.ReceiverOptions{
		Level: ekalog.LEVEL_INFO, Mode: ekalog.Continuous, QueueCapacity: 1024,
	})
	logger := newIsolatedLogger(t, rc, "T")

	for i := 0; i < 200; i++ {
		logger.Verbose(fmt.Sprintf("Verbose Message <cyan>{%d}", i))
		logger.Info(fmt.Sprintf("Message <cyan>{%d}", i))
	}
	logger.Flush()

	require.Equal(t, 100, col.ItemCount())
	assert.Equal(t, uint64(100), col.MessagesRemoved())

	snap := col.Snapshot()
	require.Len(t, snap, 100)
	for idx, msg := range snap {
		want := 100 + idx
		assert.Equal(t, ekalog.LEVEL_INFO, msg.Level)
		wantMsg := ekalog.NewLogMessage(ekalog.LEVEL_INFO, "T", "",
			fmt.Sprintf("Message <cyan>{%d}", want), ekalog.Invariant)
		assert.True(t, wantMsg.Content.Equal(msg.Content))
	}
}

// Scenario 2: level filtering.
func TestCollector_LevelFiltering(t *testing.T) {
	col := ekalog.NewCollector(ekalog.CollectorOptions{MaxItems: 300})
	rc := ekalog.NewReceiverCore(col, ekalog.ReceiverOptions{
		Level: ekalog.LEVEL_INFO, Mode: ekalog.Continuous, QueueCapacity: 2048,
	})
	logger := newIsolatedLogger(t, rc, "T")

	for i := 0; i < 200; i++ {
		logger.Verbose(fmt.Sprintf("v%d", i))
		logger.Debug(fmt.Sprintf("d%d", i))
		logger.Info(fmt.Sprintf("i%d", i))
	}
	logger.Flush()

	require.Equal(t, 200, col.ItemCount())
	for _, msg := range col.Snapshot() {
		assert.Equal(t, ekalog.LEVEL_INFO, msg.Level)
	}
}

// Scenario 7: filtered collector cross-check.
func TestCollector_FilteredCrossCheck(t *testing.T) {
	c2 := ekalog.NewCollector(ekalog.CollectorOptions{MaxItems: 10000})
	var c1 *ekalog.Collector
	c1 = ekalog.NewCollector(ekalog.CollectorOptions{
		MaxItems: 10000,
		OnReceived: func(ev *ekalog.MessageReceivedEvent) {
			if ev.Message.SenderName == "FilteredSender" {
				ev.Handled = true
			}
		},
	})

	d := ekalog.NewDispatcher()
	d.Register(ekalog.NewReceiverCore(c1, ekalog.ReceiverOptions{
		Level: ekalog.LEVEL_WARNING, Mode: ekalog.Continuous, QueueCapacity: 4096,
	}))
	d.Register(ekalog.NewReceiverCore(c2, ekalog.ReceiverOptions{
		Level: ekalog.LEVEL_VERBOSE, Mode: ekalog.Continuous, QueueCapacity: 4096,
	}))

	senders := []string{"A", "FilteredSender", "B"}
	for _, name := range senders {
		logger := ekalog.New(d, name, "")
		for i := 0; i < 20; i++ {
			logger.Error(fmt.Sprintf("err %d", i))
			logger.Warning(fmt.Sprintf("warn %d", i))
			logger.Info(fmt.Sprintf("info %d", i))
		}
	}
	d.Flush()

	snap1 := c1.Snapshot()
	snap2 := c2.Snapshot()

	var want []ekalog.LogMessage
	for _, m := range snap2 {
		if m.Level.LessSevereOrEqual(ekalog.LEVEL_WARNING) && m.SenderName != "FilteredSender" {
			want = append(want, m)
		}
	}

	require.Equal(t, len(want), len(snap1))
	for i := range want {
		assert.Equal(t, want[i].SenderName, snap1[i].SenderName)
		assert.Equal(t, want[i].Level, snap1[i].Level)
		assert.True(t, want[i].Content.Equal(snap1[i].Content))
	}
}
