// Copyright © 2018-2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: iyuryevich@pm.me, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

//go:build unix

package syslogbridge

import (
	"log/syslog"

	"github.com/inaneverb/ekalog"
)

// Sink writes one syslog entry per message, at the severity saturateSeverity
// maps msg.Level onto.
type Sink struct {
	w         *syslog.Writer
	formatter *ekalog.Formatter
}

// New dials the local syslog daemon tagged as tag. A nil formatter defaults
// to ekalog.PresetDefault under the invariant culture.
func New(tag string, formatter *ekalog.Formatter) (*Sink, error) {
	w, err := syslog.New(syslog.LOG_INFO, tag)
	if err != nil {
		return nil, err
	}
	if formatter == nil {
		formatter = ekalog.NewFormatter(ekalog.PresetDefault, nil)
	}
	return &Sink{w: w, formatter: formatter}, nil
}

// WriteOne writes msg at the syslog severity matching its Level.
func (s *Sink) WriteOne(msg ekalog.LogMessage, _ ekalog.LogText) error {
	line := ekalog.RenderPlain(s.formatter.Format(msg))
	switch saturateSeverity(msg.Level) {
	case sevEmerg:
		return s.w.Emerg(line)
	case sevAlert:
		return s.w.Alert(line)
	case sevCrit:
		return s.w.Crit(line)
	case sevErr:
		return s.w.Err(line)
	case sevWarning:
		return s.w.Warning(line)
	case sevNotice:
		return s.w.Notice(line)
	case sevInfo:
		return s.w.Info(line)
	default:
		return s.w.Debug(line)
	}
}

// Flush is a no-op: the syslog protocol has no explicit flush.
func (s *Sink) Flush() error { return nil }

// Close closes the underlying syslog connection.
func (s *Sink) Close() error { return s.w.Close() }
