// Copyright © 2018-2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: iyuryevich@pm.me, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package ekalog

// Logger is a producer-side handle: a stable SenderName/SenderType
// attached to every message it emits, routed to a Dispatcher. The zero
// value is not usable; build one with New, or with NewDefault to bind it
// to the Default() Dispatcher.
type Logger struct {
	senderName string
	senderType string
	dispatcher *Dispatcher
	fp         FormatProvider
}

// New builds a Logger bound to dispatcher, identifying itself as
// senderName/senderType on every emission.
func New(dispatcher *Dispatcher, senderName, senderType string) *Logger {
	return &Logger{
		senderName: senderName,
		senderType: senderType,
		dispatcher: dispatcher,
		fp:         Invariant,
	}
}

// WithFormatProvider returns a copy of l that interpolates content values
// (numbers, booleans) under fp instead of the invariant culture.
func (l *Logger) WithFormatProvider(fp FormatProvider) *Logger {
	cp := *l
	if fp != nil {
		cp.fp = fp
	}
	return &cp
}

// validate reports the ProducerError that should stop a send before any
// LogMessage is built, or nil if l is fit to send through.
func (l *Logger) validate() error {
	if l == nil {
		return &ProducerError{Op: "send", Err: errNilLogger}
	}
	if l.dispatcher == nil {
		return &ProducerError{Op: "send", Err: errNilDispatcher}
	}
	if l.senderName == "" {
		return &ProducerError{Op: "send", Err: errEmptySenderName}
	}
	return nil
}

// Send builds a LogMessage at level from content and hands it to the
// dispatcher. Fast-path: if level is more verbose than the dispatcher's
// current GlobalMinLevel, no registered receiver could possibly accept
// it, and the message is dropped before a LogMessage is even built. Returns
// a *ProducerError if l is unfit to send through (nil, unbound, or an empty
// sender name); never an error from anything past the producer's goroutine.
func (l *Logger) Send(level Level, content string) error {
	if err := l.validate(); err != nil {
		return err
	}
	if level > l.dispatcher.GlobalMinLevel() {
		return nil
	}
	l.dispatcher.Enqueue(NewLogMessage(level, l.senderName, l.senderType, content, l.fp))
	return nil
}

// SendException is Send plus an Exception payload.
func (l *Logger) SendException(level Level, content string, exc *Exception) error {
	if err := l.validate(); err != nil {
		return err
	}
	if level > l.dispatcher.GlobalMinLevel() {
		return nil
	}
	msg := NewLogMessage(level, l.senderName, l.senderType, content, l.fp).WithException(exc)
	l.dispatcher.Enqueue(msg)
	return nil
}

// SendWithSource is Send plus an explicit call site.
func (l *Logger) SendWithSource(level Level, content, file, member string, line int) error {
	if err := l.validate(); err != nil {
		return err
	}
	if level > l.dispatcher.GlobalMinLevel() {
		return nil
	}
	msg := NewLogMessage(level, l.senderName, l.senderType, content, l.fp).WithSource(file, member, line)
	l.dispatcher.Enqueue(msg)
	return nil
}

// Emergency sends a LEVEL_EMERGENCY message.
func (l *Logger) Emergency(content string) { l.Send(LEVEL_EMERGENCY, content) }

// Alert sends a LEVEL_ALERT message.
func (l *Logger) Alert(content string) { l.Send(LEVEL_ALERT, content) }

// Critical sends a LEVEL_CRITICAL message.
func (l *Logger) Critical(content string) { l.Send(LEVEL_CRITICAL, content) }

// Error sends a LEVEL_ERROR message.
func (l *Logger) Error(content string) { l.Send(LEVEL_ERROR, content) }

// Warning sends a LEVEL_WARNING message.
func (l *Logger) Warning(content string) { l.Send(LEVEL_WARNING, content) }

// Notice sends a LEVEL_NOTICE message.
func (l *Logger) Notice(content string) { l.Send(LEVEL_NOTICE, content) }

// Info sends a LEVEL_INFO message.
func (l *Logger) Info(content string) { l.Send(LEVEL_INFO, content) }

// Debug sends a LEVEL_DEBUG message.
func (l *Logger) Debug(content string) { l.Send(LEVEL_DEBUG, content) }

// Verbose sends a LEVEL_VERBOSE message.
func (l *Logger) Verbose(content string) { l.Send(LEVEL_VERBOSE, content) }

// Flush delegates to the bound dispatcher.
func (l *Logger) Flush() {
	if l.dispatcher != nil {
		l.dispatcher.Flush()
	}
}

// Close delegates to the bound dispatcher.
func (l *Logger) Close() {
	if l.dispatcher != nil {
		l.dispatcher.Close()
	}
}
