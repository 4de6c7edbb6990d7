// Copyright © 2018-2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: iyuryevich@pm.me, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package ekalog

var defaultDispatcher = NewDispatcher()

// Default returns the process-wide Dispatcher singleton. Most applications
// never need more than one; tests that need isolation should build their
// own with NewDispatcher instead.
func Default() *Dispatcher { return defaultDispatcher }

// NewDefault builds a Logger bound to the package-level default Dispatcher.
func NewDefault(senderName, senderType string) *Logger {
	return New(defaultDispatcher, senderName, senderType)
}
