// Copyright © 2018-2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: iyuryevich@pm.me, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

// Package filesink is a Sink that appends plain-text formatted lines to a
// file, one ekalog.RenderPlain line per message.
package filesink

import (
	"io"
	"os"

	"github.com/inaneverb/ekalog"
	"github.com/inaneverb/ekalog/internal/syncio"
)

// Sink appends formatted lines to a file opened in append mode, through
// the same synced io.WriteCloser wrapper the console sink uses.
type Sink struct {
	f         *os.File
	w         io.WriteCloser
	formatter *ekalog.Formatter
}

// New opens (creating if necessary) path in append mode. A nil formatter
// defaults to ekalog.PresetDefault under the invariant culture.
func New(path string, formatter *ekalog.Formatter) (*Sink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	if formatter == nil {
		formatter = ekalog.NewFormatter(ekalog.PresetDefault, nil)
	}
	return &Sink{f: f, w: syncio.NewSyncedWriteCloser(f), formatter: formatter}, nil
}

// WriteOne appends msg's formatted, plain-text line to the file.
func (s *Sink) WriteOne(msg ekalog.LogMessage, _ ekalog.LogText) error {
	line := ekalog.RenderPlain(s.formatter.Format(msg))
	_, err := io.WriteString(s.w, line)
	return err
}

// Flush syncs the file to disk.
func (s *Sink) Flush() error { return s.f.Sync() }

// Close closes the file.
func (s *Sink) Close() error { return s.w.Close() }
