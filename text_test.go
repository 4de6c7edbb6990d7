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

func TestParseLogText_PlainTextRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"hello world",
		"line one\nline two",
		"carriage\rreturn",
		"crlf\r\nhere",
	}
	for _, in := range inputs {
		got := ekalog.RenderPlain(ekalog.ParseLogText(in))
		want := in
		// \r and \r\n both normalize to a single line break.
		normalized := ""
		runes := []rune(in)
		for i := 0; i < len(runes); i++ {
			if runes[i] == '\r' {
				normalized += "\n"
				if i+1 < len(runes) && runes[i+1] == '\n' {
					i++
				}
				continue
			}
			normalized += string(runes[i])
		}
		want = normalized
		assert.Equal(t, want, got, "input %q", in)
	}
}

func TestParseLogText_ColorTokenStripped(t *testing.T) {
	got := ekalog.RenderPlain(ekalog.ParseLogText("<Red>alert<Reset> normal"))
	assert.Equal(t, "alert normal", got)
}

func TestParseLogText_UnrecognizedTokenSurvives(t *testing.T) {
	got := ekalog.RenderPlain(ekalog.ParseLogText("value is {not-a-number} units"))
	assert.Equal(t, "value is {not-a-number} units", got)

	got2 := ekalog.RenderPlain(ekalog.ParseLogText("a <NotAColor> token"))
	assert.Equal(t, "a <NotAColor> token", got2)
}

func TestParseLogText_UnterminatedTokenIsLiteral(t *testing.T) {
	got := ekalog.RenderPlain(ekalog.ParseLogText("broken <Red forever"))
	assert.Equal(t, "broken <Red forever", got)
}

func TestParseLogText_NestedUnterminatedAbandonsFirst(t *testing.T) {
	// "<Red" is abandoned literally the moment "<Green>" starts.
	got := ekalog.ParseLogText("<Red<Green>hi")
	assert.Equal(t, "<Redhi", ekalog.RenderPlain(got))
}

func TestParseLogText_CloseWithoutOpenIsLiteral(t *testing.T) {
	got := ekalog.RenderPlain(ekalog.ParseLogText("5 > 3 and 2 } 1"))
	assert.Equal(t, "5 > 3 and 2 } 1", got)
}

func TestLogText_Equal(t *testing.T) {
	a := ekalog.ParseLogText("<Red>hi<Reset>")
	b := ekalog.ParseLogText("<Red>hi<Reset>")
	c := ekalog.ParseLogText("<Blue>hi<Reset>")
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestLogText_Append(t *testing.T) {
	a := ekalog.NewLogText(ekalog.LogTextItem{Text: "a"})
	b := ekalog.NewLogText(ekalog.LogTextItem{Text: "b"})
	got := a.Append(b)
	assert.Equal(t, "ab", ekalog.RenderPlain(got))
}

func TestRenderStyledMarkup_ColoredHeaderRoundTrip(t *testing.T) {
	src := "<Inverse><Magenta>hi<Reset>> plain\n"
	parsed := ekalog.ParseLogText(src)
	// <Reset> clears only the style, so "> plain" stays Magenta and the
	// parser's implicit end-of-line color reset shows up as a second <Reset>.
	want := "<Inverse><Magenta>hi<Reset>> plain<Reset>\n"
	assert.Equal(t, want, ekalog.RenderStyledMarkup(parsed))
}

func TestRenderHTML_EscapesAndBreaks(t *testing.T) {
	got := ekalog.RenderHTML(ekalog.ParseLogText("<Red>a<b\nc"))
	assert.Contains(t, got, "&lt;b")
	assert.Contains(t, got, "<br/>")
	assert.Contains(t, got, `color:red`)
}
