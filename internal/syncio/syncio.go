// Copyright © 2019-2023. All rights reserved.
// Author: Ilya Stroy.
// Contacts: iyuryevich@pm.me, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

// Package syncio wraps an io.WriteCloser with a mutex so a receiver's
// console/file sink can be written from its own single worker goroutine
// without racing whatever else (tests, another sink) holds the same
// underlying file descriptor.
package syncio

import (
	"io"
	"os"
	"sync"
)

// wcSynced is a wrapper for io.WriteCloser with a sync.Mutex protector.
type wcSynced struct {
	origin io.WriteCloser
	mu     sync.Mutex
}

// nopeWriteCloser discards everything written to it; used as the fallback
// when a sink is constructed with a nil underlying writer rather than
// letting a nil pointer panic deep inside a receiver's worker.
type nopeWriteCloser struct{}

func (nopeWriteCloser) Write(p []byte) (int, error) { return len(p), nil }
func (nopeWriteCloser) Close() error                { return nil }

// NewSyncedWriteCloser wraps origin so every Write/Close is serialized.
// A nil origin yields a writer that discards everything.
func NewSyncedWriteCloser(origin io.WriteCloser) io.WriteCloser {
	if origin == nil {
		return nopeWriteCloser{}
	}
	return &wcSynced{origin: origin}
}

func (w *wcSynced) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.origin.Write(p)
}

func (w *wcSynced) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.origin.Close()
}

// nopCloser adapts an io.Writer with no meaningful Close (stdout, stderr)
// to io.WriteCloser so it can share NewSyncedWriteCloser with real files.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

var (
	syncedStdout = NewSyncedWriteCloser(nopCloser{os.Stdout})
	syncedStderr = NewSyncedWriteCloser(nopCloser{os.Stderr})
)

// Stdout returns STDOUT as an io.WriteCloser whose Write calls are
// serialized with a mutex; Close is a no-op.
func Stdout() io.WriteCloser { return syncedStdout }

// Stderr returns STDERR as an io.WriteCloser whose Write calls are
// serialized with a mutex; Close is a no-op.
func Stderr() io.WriteCloser { return syncedStderr }
