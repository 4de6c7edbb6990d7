// Copyright © 2018-2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: iyuryevich@pm.me, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package ekalog

import (
	"strconv"
	"strings"
)

// Preset names a built-in Formatter template.
type Preset uint8

const (
	// PresetDefault: "<ts>: <LvlName> <Sender>> <content>\n", plain.
	PresetDefault Preset = iota
	// PresetDefaultColored: same, header through SenderName wrapped in
	// Inverse+LevelColor.
	PresetDefaultColored
	// PresetShortColored: "<LvlInitial> <hh:mm:ss.fff> <Sender>> <content>\n",
	// level-colored header.
	PresetShortColored
)

// Placeholder is one substitution slot a custom Template can reference, the
// same closed set the three built-in presets are hardcoded against.
type Placeholder int

const (
	PlaceholderDateTime Placeholder = iota
	PlaceholderLevel
	PlaceholderSenderName
	PlaceholderSenderType
	PlaceholderContent
	PlaceholderException
	PlaceholderSourceFile
	PlaceholderSourceLine
	PlaceholderNewLine
)

// TemplateSegment is one piece of a custom Template: either literal markup
// text, passed through to ParseLogText verbatim, or a Placeholder resolved
// from the LogMessage being formatted.
type TemplateSegment struct {
	literal       string
	placeholder   Placeholder
	isPlaceholder bool
}

// Lit is a literal markup segment (it may itself contain "<Token>" markup).
func Lit(s string) TemplateSegment { return TemplateSegment{literal: s} }

// Ph is a placeholder segment.
func Ph(p Placeholder) TemplateSegment {
	return TemplateSegment{placeholder: p, isPlaceholder: true}
}

// Template is a custom message_format: an ordered sequence of literal and
// placeholder segments, composed into one markup string and parsed once,
// exactly like the built-in presets.
type Template []TemplateSegment

// Formatter turns a LogMessage into a LogText line, following one of the
// built-in presets or a custom Template (see NewFormatterTemplate), under a
// configurable date/time layout and culture.
type Formatter struct {
	dateTimeLayout string
	formatProvider FormatProvider
	preset         Preset
	template       Template // non-nil overrides preset
}

// NewFormatter builds a Formatter for preset using fp as its culture; a nil
// fp defaults to Invariant.
func NewFormatter(preset Preset, fp FormatProvider) *Formatter {
	if fp == nil {
		fp = Invariant
	}
	return &Formatter{
		dateTimeLayout: "2006-01-02 15:04:05.000", // yyyy-MM-dd HH:mm:ss.fff
		formatProvider: fp,
		preset:         preset,
	}
}

// NewFormatterTemplate builds a Formatter that renders every message
// through tpl instead of one of the three built-in presets — the "custom
// sequence" form of message_format, free to reference SenderType,
// SourceFile and SourceLine, which none of the built-in presets emit.
func NewFormatterTemplate(tpl Template, fp FormatProvider) *Formatter {
	if fp == nil {
		fp = Invariant
	}
	return &Formatter{
		dateTimeLayout: "2006-01-02 15:04:05.000",
		formatProvider: fp,
		template:       tpl,
	}
}

// DefaultFormatter is PresetDefault under the invariant culture, the same
// layout the file, HTML file and syslog sinks fall back to when given a nil
// formatter (the console sink falls back to PresetDefaultColored).
func DefaultFormatter() *Formatter { return NewFormatter(PresetDefault, Invariant) }

// WithDateTimeLayout returns a copy of f using layout (a Go time layout,
// not a "yyyy-MM-dd"-style placeholder string) instead of the default
// millisecond-precision layout.
func (f *Formatter) WithDateTimeLayout(layout string) *Formatter {
	cp := *f
	cp.dateTimeLayout = layout
	return &cp
}

// Format renders msg into a LogText according to f's preset, or f's custom
// Template if one was supplied via NewFormatterTemplate.
func (f *Formatter) Format(msg LogMessage) LogText {
	if f.template != nil {
		return f.renderTemplate(msg)
	}

	content := RenderPlain(msg.Content)

	dt := msg.DateTime.Format(f.dateTimeLayout)
	level := msg.Level.String()

	var src strings.Builder
	switch f.preset {
	case PresetDefaultColored:
		col := LevelColor(msg.Level)
		src.WriteString("<Inverse><")
		src.WriteString(colorTagNames[col])
		src.WriteString(">")
		src.WriteString(dt)
		src.WriteByte(' ')
		src.WriteString(level)
		src.WriteByte(' ')
		src.WriteString(msg.SenderName)
		src.WriteString("<Reset>> ")
		src.WriteString(content)
		f.appendException(&src, msg)
		src.WriteByte('\n')

	case PresetShortColored:
		col := LevelColor(msg.Level)
		src.WriteString("<Inverse><")
		src.WriteString(colorTagNames[col])
		src.WriteString(">")
		src.WriteString(msg.Level.Initial())
		src.WriteByte(' ')
		src.WriteString(msg.DateTime.Format("15:04:05.000"))
		src.WriteByte(' ')
		src.WriteString(msg.SenderName)
		src.WriteString("<Reset>> ")
		src.WriteString(content)
		f.appendException(&src, msg)
		src.WriteByte('\n')

	default: // PresetDefault
		src.WriteString(dt)
		src.WriteString(": ")
		src.WriteString(level)
		src.WriteByte(' ')
		src.WriteString(msg.SenderName)
		src.WriteString("> ")
		src.WriteString(content)
		f.appendException(&src, msg)
		src.WriteByte('\n')
	}

	return ParseLogText(src.String())
}

// renderTemplate composes f.template's segments into one markup string and
// parses it once, the same way every built-in preset does. It is the only
// path by which SenderType, SourceFile and SourceLine can ever reach a
// rendered line.
func (f *Formatter) renderTemplate(msg LogMessage) LogText {
	var src strings.Builder
	for _, seg := range f.template {
		if !seg.isPlaceholder {
			src.WriteString(seg.literal)
			continue
		}
		switch seg.placeholder {
		case PlaceholderDateTime:
			src.WriteString(msg.DateTime.Format(f.dateTimeLayout))
		case PlaceholderLevel:
			src.WriteString(msg.Level.String())
		case PlaceholderSenderName:
			src.WriteString(msg.SenderName)
		case PlaceholderSenderType:
			src.WriteString(msg.SenderType)
		case PlaceholderContent:
			src.WriteString(RenderPlain(msg.Content))
		case PlaceholderException:
			f.appendException(&src, msg)
		case PlaceholderSourceFile:
			src.WriteString(msg.SourceFile)
		case PlaceholderSourceLine:
			src.WriteString(formatSourceLine(msg.SourceLine))
		case PlaceholderNewLine:
			src.WriteByte('\n')
		}
	}
	return ParseLogText(src.String())
}

func (f *Formatter) appendException(src *strings.Builder, msg LogMessage) {
	if msg.Exception == nil {
		return
	}
	src.WriteString(": ")
	src.WriteString(msg.Exception.TypeName)
	src.WriteString(": ")
	src.WriteString(msg.Exception.Message)
	if msg.Exception.Stack != "" {
		src.WriteByte('\n')
		src.WriteString(msg.Exception.Stack)
	}
}

// formatContent runs a producer-site content template through value
// interpolation under fp, using a caller-supplied or default FormatProvider,
// before the result is parsed as markup.
func formatContent(template string, fp FormatProvider) LogText {
	if fp == nil {
		fp = Invariant
	}
	return ParseLogText(interpolateValues(template, fp))
}

// formatSourceLine renders a call-site line number for PlaceholderSourceLine,
// or "" when none was recorded.
func formatSourceLine(line int) string {
	if line <= 0 {
		return ""
	}
	return strconv.Itoa(line)
}
