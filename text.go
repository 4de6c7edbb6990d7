// Copyright © 2020-2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: iyuryevich@pm.me, https://github.com/qioalice/ekago
// License: https://opensource.org/licenses/MIT

package ekalog

import (
	"strings"
)

// LogTextItem is an atomic styled fragment of a LogText. Items are
// immutable once constructed.
type LogTextItem struct {
	Text  string
	Color LogColor
	Style LogStyle

	newLine bool
}

// NewLine is the distinguished item denoting a hard line break.
var NewLine = LogTextItem{newLine: true}

// IsNewLine reports whether this item is the NewLine singleton.
func (it LogTextItem) IsNewLine() bool { return it.newLine }

// LogText is an ordered sequence of LogTextItem. Two LogText values are
// equal iff their item sequences are element-wise equal.
type LogText struct {
	items []LogTextItem
}

// Items returns the underlying item slice. Callers must not mutate it.
func (t LogText) Items() []LogTextItem { return t.items }

// IsEmpty reports whether t has no items at all.
func (t LogText) IsEmpty() bool { return len(t.items) == 0 }

// NewLogText builds a LogText directly from items, copying them so the
// caller's slice may be reused or mutated afterward.
func NewLogText(items ...LogTextItem) LogText {
	cp := make([]LogTextItem, len(items))
	copy(cp, items)
	return LogText{items: cp}
}

// Append returns a new LogText with other's items appended after t's.
func (t LogText) Append(other LogText) LogText {
	out := make([]LogTextItem, 0, len(t.items)+len(other.items))
	out = append(out, t.items...)
	out = append(out, other.items...)
	return LogText{items: out}
}

// Equal reports whether t and other have element-wise equal item
// sequences (text, color, style all compared).
func (t LogText) Equal(other LogText) bool {
	if len(t.items) != len(other.items) {
		return false
	}
	for i, it := range t.items {
		o := other.items[i]
		if it.newLine != o.newLine || it.Text != o.Text ||
			it.Color != o.Color || it.Style != o.Style {
			return false
		}
	}
	return true
}

// tokenFrame is a markup token that has been opened ('<' or '{') but not
// yet closed. content accumulates the candidate token name; if another
// token opens before this one closes, this frame is abandoned and its
// opener plus whatever it accumulated is flushed back as literal text
// (spec invariant: an unterminated start is literal).
type tokenFrame struct {
	open    rune
	content strings.Builder
}

// textBuilder accumulates a run of a LogText under construction: the finished
// items plus the current "live" literal text not yet turned into an item.
type textBuilder struct {
	items    []LogTextItem
	curColor LogColor
	curStyle LogStyle
	literal  strings.Builder
}

func (b *textBuilder) flushLiteral() {
	if b.literal.Len() == 0 {
		return
	}
	b.items = append(b.items, LogTextItem{Text: b.literal.String(), Color: b.curColor, Style: b.curStyle})
	b.literal.Reset()
}

func (b *textBuilder) writeNewLine() {
	b.flushLiteral()
	b.resetTrailingColorIfActive()
	b.items = append(b.items, NewLine)
}

// resetTrailingColorIfActive appends an implicit (color=Default, empty
// text) item whenever the builder's current color is still "active" (set
// to something other than Default already) — at a NewLine boundary or at
// end-of-input, so a styled run can never bleed into the next line or
// leave a sink's cursor colored after the message ends.
func (b *textBuilder) resetTrailingColorIfActive() {
	if b.curColor != LogColorUnchanged && b.curColor != LogColorDefault {
		b.items = append(b.items, LogTextItem{Text: "", Color: LogColorDefault, Style: LogStyleUnchanged})
		b.curColor = LogColorDefault
	}
}

func (b *textBuilder) writeLiteralRune(r rune) {
	b.literal.WriteRune(r)
}

// ParseLogText parses a markup string into a LogText. It is a total
// function: malformed or unrecognized tokens become literal text, and
// "\r\n", "\r", "\n" all become NewLine items. If the current color at a
// line break or at end-of-input is neither Unchanged nor Default, an
// implicit reset item (color Default, empty text) is appended there. The
// check is on the current color, not on the last item: input that ends with
// an explicit "<Default>" after colored text gets no implicit reset item,
// even though its last text item is still colored.
func ParseLogText(src string) LogText {
	b := &textBuilder{}

	abandon := func(f *tokenFrame) {
		// The frame's opener plus whatever content it has accumulated so
		// far was never a recognized token: it is literal text.
		b.writeLiteralRune(f.open)
		b.literal.WriteString(f.content.String())
	}

	closeChar := func(open rune) rune {
		if open == '<' {
			return '>'
		}
		return '}'
	}

	// top is the currently-open token frame, if any; at most one is ever
	// open at a time since a second opener abandons the first.
	var top *tokenFrame

	runes := []rune(src)
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if top != nil {
			frame := top
			switch {
			case r == '\r' || r == '\n':
				// A newline always terminates an unterminated token.
				top = nil
				abandon(frame)
				b.writeNewLine()
				if r == '\r' && i+1 < len(runes) && runes[i+1] == '\n' {
					i++
				}
				continue
			case r == '<' || r == '{':
				// Nested/second start: abandon the first as literal,
				// start tracking the new one.
				abandon(frame)
				top = &tokenFrame{open: r}
				continue
			case r == closeChar(frame.open):
				top = nil
				b.applyTokenFor(frame.open, frame.content.String())
				continue
			default:
				frame.content.WriteRune(r)
				continue
			}
		}

		switch r {
		case '\r':
			b.writeNewLine()
			if i+1 < len(runes) && runes[i+1] == '\n' {
				i++
			}
		case '\n':
			b.writeNewLine()
		case '<', '{':
			top = &tokenFrame{open: r}
		case '>', '}':
			// A close with nothing pending is literal.
			b.writeLiteralRune(r)
		default:
			b.writeLiteralRune(r)
		}
	}

	// Anything still pending at end-of-input never closed: literal.
	if top != nil {
		abandon(top)
	}

	b.flushLiteral()
	b.resetTrailingColorIfActive()

	return LogText{items: b.items}
}

// applyTokenFor resolves a closed token's name against the bracket kind
// that opened it and either switches builder state or falls back to
// literal text (unrecognized "<...>"/"{...}" tokens survive verbatim).
func (b *textBuilder) applyTokenFor(open rune, name string) {
	var color LogColor
	var style LogStyle
	var isColor, isStyle bool
	if open == '<' {
		// Only "<...>" is color/style markup; "{...}" is always literal here.
		color, style, isColor, isStyle = lookupToken(name)
	}
	switch {
	case isColor:
		b.flushLiteral()
		b.curColor = color
	case isStyle:
		b.flushLiteral()
		if style == LogStyleReset {
			b.curStyle = LogStyleUnchanged
		} else {
			b.curStyle |= style
		}
	default:
		closeCh := '>'
		if open == '{' {
			closeCh = '}'
		}
		b.writeLiteralRune(open)
		b.literal.WriteString(name)
		b.writeLiteralRune(closeCh)
	}
}
