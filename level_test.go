// Copyright © 2018-2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: iyuryevich@pm.me, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package ekalog_test

import (
	"testing"

	"github.com/inaneverb/ekalog"
	"github.com/stretchr/testify/assert"
)

func TestLevel_String(t *testing.T) {
	cases := map[ekalog.Level]string{
		ekalog.LEVEL_EMERGENCY: "Emergency",
		ekalog.LEVEL_ALERT:     "Alert",
		ekalog.LEVEL_CRITICAL:  "Critical",
		ekalog.LEVEL_ERROR:     "Error",
		ekalog.LEVEL_WARNING:   "Warning",
		ekalog.LEVEL_NOTICE:    "Notice",
		ekalog.LEVEL_INFO:      "Information",
		ekalog.LEVEL_DEBUG:     "Debug",
		ekalog.LEVEL_VERBOSE:   "Verbose",
		ekalog.LEVEL_NONE:      "None",
	}
	for l, want := range cases {
		assert.Equal(t, want, l.String())
	}
}

func TestLevel_Initial(t *testing.T) {
	assert.Equal(t, "C", ekalog.LEVEL_CRITICAL.Initial())
	assert.Equal(t, "I", ekalog.LEVEL_INFO.Initial())
	assert.Equal(t, "?", ekalog.Level(250).Initial())
}

func TestLevel_LessSevereOrEqual(t *testing.T) {
	assert.True(t, ekalog.LEVEL_INFO.LessSevereOrEqual(ekalog.LEVEL_DEBUG))
	assert.True(t, ekalog.LEVEL_INFO.LessSevereOrEqual(ekalog.LEVEL_INFO))
	assert.False(t, ekalog.LEVEL_DEBUG.LessSevereOrEqual(ekalog.LEVEL_INFO))
}

func TestLevel_IsValid(t *testing.T) {
	assert.True(t, ekalog.LEVEL_NONE.IsValid())
	assert.False(t, ekalog.Level(250).IsValid())
}
