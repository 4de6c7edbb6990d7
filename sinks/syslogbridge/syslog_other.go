// Copyright © 2018-2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: iyuryevich@pm.me, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

//go:build !unix

package syslogbridge

import (
	"errors"

	"github.com/inaneverb/ekalog"
)

// Sink is a stub on platforms without a syslog daemon; New always fails.
type Sink struct{}

// New always returns an error: syslog is a unix-only collaborator.
func New(tag string, formatter *ekalog.Formatter) (*Sink, error) {
	return nil, errors.New("syslogbridge: syslog is not available on this platform")
}

func (s *Sink) WriteOne(ekalog.LogMessage, ekalog.LogText) error { return nil }
func (s *Sink) Flush() error                                    { return nil }
func (s *Sink) Close() error                                     { return nil }
