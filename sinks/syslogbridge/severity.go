// Copyright © 2018-2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: iyuryevich@pm.me, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

// Package syslogbridge is a Sink that translates LogLevel to the host
// syslog's Priority ordinally, saturating at the target scale's extremes.
// The platform-independent severity mapping lives here; syslog_unix.go
// supplies the Sink backed by a log/syslog.Writer on platforms that have
// one, and syslog_other.go a stub whose New always fails elsewhere.
package syslogbridge

import "github.com/inaneverb/ekalog"

// syslogSeverity mirrors log/syslog's Priority severity levels without
// importing the package on platforms where it doesn't exist (Windows):
// 0=Emerg..7=Debug, same ordinal scale ekalog.Level already uses through
// LEVEL_DEBUG, with Verbose/None saturating at Debug.
type syslogSeverity int

const (
	sevEmerg syslogSeverity = iota
	sevAlert
	sevCrit
	sevErr
	sevWarning
	sevNotice
	sevInfo
	sevDebug
)

// saturateSeverity maps an ekalog.Level onto the syslog severity scale,
// saturating at Debug for anything more verbose (Verbose, None) since
// syslog has no levels past Debug.
func saturateSeverity(l ekalog.Level) syslogSeverity {
	switch {
	case l <= ekalog.LEVEL_DEBUG:
		return syslogSeverity(l)
	default:
		return sevDebug
	}
}
