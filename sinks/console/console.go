// Copyright © 2018-2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: iyuryevich@pm.me, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

// Package console is a Sink that writes formatted, ANSI-styled log lines
// to a terminal (or any io.WriteCloser standing in for one).
package console

import (
	"io"

	"github.com/inaneverb/ekalog"
	"github.com/inaneverb/ekalog/internal/syncio"
)

// Sink writes formatted lines to an underlying writer, ANSI-styled.
type Sink struct {
	w         io.WriteCloser
	formatter *ekalog.Formatter
	closeable bool
}

// New builds a console Sink writing to syncio.Stdout() with formatter. A
// nil formatter defaults to ekalog.NewFormatter(ekalog.PresetDefaultColored, nil).
func New(formatter *ekalog.Formatter) *Sink {
	if formatter == nil {
		formatter = ekalog.NewFormatter(ekalog.PresetDefaultColored, nil)
	}
	return &Sink{w: syncio.Stdout(), formatter: formatter}
}

// NewWithWriter builds a console Sink writing to w instead of stdout —
// tests use this to capture output without a real terminal. Unlike the
// shared stdout/stderr handle, w is closed when the receiver closes.
func NewWithWriter(w io.WriteCloser, formatter *ekalog.Formatter) *Sink {
	if formatter == nil {
		formatter = ekalog.NewFormatter(ekalog.PresetDefaultColored, nil)
	}
	return &Sink{w: w, formatter: formatter, closeable: true}
}

// WriteOne renders msg via the configured formatter and writes its ANSI
// form to the underlying writer.
func (s *Sink) WriteOne(msg ekalog.LogMessage, _ ekalog.LogText) error {
	line := s.formatter.Format(msg)
	_, err := io.WriteString(s.w, ekalog.RenderANSI(line))
	return err
}

// Flush is a no-op: writes to the underlying writer are synchronous.
func (s *Sink) Flush() error { return nil }

// Close closes the underlying writer unless it is the shared stdout/stderr
// handle (which must survive past this one sink's lifetime).
func (s *Sink) Close() error {
	if !s.closeable {
		return nil
	}
	return s.w.Close()
}
