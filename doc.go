// Copyright © 2018-2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: iyuryevich@pm.me, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

// Package ekalog is an asynchronous, multi-sink logging pipeline.
//
// A producer attaches itself to the package with New(), or with NewDefault()
// to bind to the package-level Default() Dispatcher, builds styled LogMessage
// values at call sites and hands them to a single process-wide Dispatcher.
// The dispatcher fans every message out, in arrival order, to every
// registered ReceiverCore, each wrapping one Sink: a Collector kept in
// memory, a console, an HTML file, a syslog bridge, a plain file, or
// anything else that implements the Sink interface.
//
// Flush and Close give producers an explicit, ordered coordination point;
// everything else about delivery is non-blocking from the producer's side.
package ekalog
