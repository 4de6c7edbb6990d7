// Copyright © 2018-2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: iyuryevich@pm.me, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package ekalog

import "time"

// Exception is the optional error/panic payload a LogMessage may carry.
// TypeName is the concrete Go type of the original error (via %T),
// Stack is whatever stacktrace the producer captured, formatted already —
// the dispatcher never re-derives one.
type Exception struct {
	Message  string
	TypeName string
	Stack    string
}

// LogMessage is the unit of work the Dispatcher fans out to every
// Receiver. It is immutable from the moment a Logger hands it to the
// dispatcher: SequenceID is the only field the dispatcher itself fills in,
// stamped by the single worker goroutine as the message's logical clock.
type LogMessage struct {
	SequenceID SequenceID

	DateTime time.Time
	Level    Level

	SenderName string
	SenderType string

	Content   LogText
	Exception *Exception

	SourceFile   string
	SourceMember string
	SourceLine   int
}

// NewLogMessage builds a LogMessage at the given severity. content is run
// through fp's value interpolation (numbers/bools in "{...}" holes) before
// being parsed as "<Token>" markup; a nil fp uses Invariant. SequenceID is
// left zero; the dispatcher stamps it.
func NewLogMessage(level Level, senderName, senderType, content string, fp FormatProvider) LogMessage {
	return LogMessage{
		DateTime:   time.Now(),
		Level:      level,
		SenderName: senderName,
		SenderType: senderType,
		Content:    formatContent(content, fp),
	}
}

// WithSource returns a copy of m stamped with its call site.
func (m LogMessage) WithSource(file, member string, line int) LogMessage {
	m.SourceFile = file
	m.SourceMember = member
	m.SourceLine = line
	return m
}

// WithException returns a copy of m carrying exc.
func (m LogMessage) WithException(exc *Exception) LogMessage {
	m.Exception = exc
	return m
}
