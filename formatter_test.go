// Copyright © 2018-2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: iyuryevich@pm.me, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package ekalog_test

import (
	"testing"
	"time"

	"github.com/inaneverb/ekalog"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func scenarioMessage(t *testing.T, fp ekalog.FormatProvider) ekalog.LogMessage {
	t.Helper()
	dt := time.Date(2023, 2, 23, 23, 2, 23, 200*int(time.Millisecond), time.UTC)
	msg := ekalog.NewLogMessage(ekalog.LEVEL_CRITICAL, "T", "",
		"Critical test message number {2.5}: This is even = {true}", fp)
	msg.DateTime = dt
	return msg
}

// Scenario 4: default template, invariant culture.
func TestFormatter_DefaultInvariantCulture(t *testing.T) {
	msg := scenarioMessage(t, ekalog.Invariant)
	f := ekalog.NewFormatter(ekalog.PresetDefault, ekalog.Invariant)
	got := ekalog.RenderPlain(f.Format(msg))
	want := "2023-02-23 23:02:23.200: Critical T> Critical test message number 2.5: This is even = True\n"
	assert.Equal(t, want, got)
}

// Scenario 5: default template, de-DE culture (comma decimal separator).
func TestFormatter_DefaultGermanCulture(t *testing.T) {
	fp := ekalog.Culture(language.German)
	msg := scenarioMessage(t, fp)
	f := ekalog.NewFormatter(ekalog.PresetDefault, fp)
	got := ekalog.RenderPlain(f.Format(msg))
	want := "2023-02-23 23:02:23.200: Critical T> Critical test message number 2,5: This is even = True\n"
	assert.Equal(t, want, got)
}

// Scenario 6: DefaultColored template, styled markup form.
func TestFormatter_DefaultColoredStyledForm(t *testing.T) {
	msg := scenarioMessage(t, ekalog.Invariant)
	f := ekalog.NewFormatter(ekalog.PresetDefaultColored, ekalog.Invariant)
	line := f.Format(msg)
	got := ekalog.RenderStyledMarkup(line)
	want := "<Inverse><Magenta>2023-02-23 23:02:23.200 Critical T<Reset>> " +
		"Critical test message number 2.5: This is even = True<Reset>\n"
	assert.Equal(t, want, got)
}
