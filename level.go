// Copyright © 2018-2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: iyuryevich@pm.me, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package ekalog

// Level is a log message's severity. Lower numbers are more severe, the
// same ordering syslog uses, extended with Verbose and a None sentinel
// that disables a receiver entirely.
type Level uint8

//noinspection GoSnakeCaseUsage
const (
	LEVEL_EMERGENCY Level = iota
	LEVEL_ALERT
	LEVEL_CRITICAL
	LEVEL_ERROR
	LEVEL_WARNING
	LEVEL_NOTICE
	LEVEL_INFO
	LEVEL_DEBUG
	LEVEL_VERBOSE

	// LEVEL_NONE is above LEVEL_VERBOSE and is used only to disable a
	// receiver: no LogMessage ever carries this level.
	LEVEL_NONE
)

// String returns a capitalized string of the current log level.
// Returns an empty string for an unexpected value.
func (l Level) String() string {
	switch l {
	case LEVEL_EMERGENCY:
		return "Emergency"
	case LEVEL_ALERT:
		return "Alert"
	case LEVEL_CRITICAL:
		return "Critical"
	case LEVEL_ERROR:
		return "Error"
	case LEVEL_WARNING:
		return "Warning"
	case LEVEL_NOTICE:
		return "Notice"
	case LEVEL_INFO:
		return "Information"
	case LEVEL_DEBUG:
		return "Debug"
	case LEVEL_VERBOSE:
		return "Verbose"
	case LEVEL_NONE:
		return "None"
	default:
		return ""
	}
}

// Initial returns the single capitalized initial of the level, used by the
// ShortColored formatter preset.
func (l Level) Initial() string {
	s := l.String()
	if s == "" {
		return "?"
	}
	return s[:1]
}

// LessSevereOrEqual reports whether l is at or below the severity of
// threshold, i.e. whether a receiver configured with threshold would
// accept a message at level l. "At or below" a threshold means
// numerically <= that threshold, since lower numbers are more severe.
func (l Level) LessSevereOrEqual(threshold Level) bool {
	return l <= threshold
}

// IsValid reports whether l is one of the named levels (LEVEL_NONE
// included, even though no message is ever stamped with it).
func (l Level) IsValid() bool {
	return l <= LEVEL_NONE
}
