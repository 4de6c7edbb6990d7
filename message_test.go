// Copyright © 2018-2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: iyuryevich@pm.me, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package ekalog_test

import (
	"testing"

	"github.com/inaneverb/ekalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogMessage_BasicFields(t *testing.T) {
	msg := ekalog.NewLogMessage(ekalog.LEVEL_WARNING, "Sender", "Type", "plain text", ekalog.Invariant)
	assert.Equal(t, ekalog.LEVEL_WARNING, msg.Level)
	assert.Equal(t, "Sender", msg.SenderName)
	assert.Equal(t, "Type", msg.SenderType)
	assert.Equal(t, "plain text", ekalog.RenderPlain(msg.Content))
	assert.False(t, msg.DateTime.IsZero())
	assert.Nil(t, msg.Exception)
}

func TestNewLogMessage_NilFormatProviderDefaultsToInvariant(t *testing.T) {
	msg := ekalog.NewLogMessage(ekalog.LEVEL_INFO, "T", "", "value {3.5}", nil)
	assert.Equal(t, "value 3.5", ekalog.RenderPlain(msg.Content))
}

func TestNewLogMessage_UnrecognizedInterpolationSurvivesLiterally(t *testing.T) {
	msg := ekalog.NewLogMessage(ekalog.LEVEL_INFO, "T", "", "value {not-a-number}", ekalog.Invariant)
	assert.Equal(t, "value {not-a-number}", ekalog.RenderPlain(msg.Content))
}

func TestLogMessage_WithSource(t *testing.T) {
	msg := ekalog.NewLogMessage(ekalog.LEVEL_ERROR, "T", "", "boom", ekalog.Invariant)
	stamped := msg.WithSource("main.go", "doStuff", 42)
	assert.Equal(t, "main.go", stamped.SourceFile)
	assert.Equal(t, "doStuff", stamped.SourceMember)
	assert.Equal(t, 42, stamped.SourceLine)

	// Original is untouched: WithSource returns a copy.
	assert.Empty(t, msg.SourceFile)
}

func TestLogMessage_WithException(t *testing.T) {
	msg := ekalog.NewLogMessage(ekalog.LEVEL_CRITICAL, "T", "", "crashed", ekalog.Invariant)
	exc := &ekalog.Exception{Message: "nil pointer", TypeName: "*runtime.Error", Stack: "goroutine 1 [running]:"}
	stamped := msg.WithException(exc)

	require.NotNil(t, stamped.Exception)
	assert.Equal(t, "nil pointer", stamped.Exception.Message)
	assert.Equal(t, "*runtime.Error", stamped.Exception.TypeName)
	assert.Nil(t, msg.Exception)
}

func TestLogMessage_ChainedWithSourceAndException(t *testing.T) {
	exc := &ekalog.Exception{Message: "oops", TypeName: "error"}
	msg := ekalog.NewLogMessage(ekalog.LEVEL_ERROR, "T", "", "failed", ekalog.Invariant).
		WithSource("f.go", "m", 7).
		WithException(exc)

	assert.Equal(t, "f.go", msg.SourceFile)
	require.NotNil(t, msg.Exception)
	assert.Equal(t, "oops", msg.Exception.Message)
}
