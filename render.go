// Copyright © 2020-2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: iyuryevich@pm.me, https://github.com/qioalice/ekago
// License: https://opensource.org/licenses/MIT

package ekalog

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/tomnomnom/xtermcolor"
)

// RenderPlain concatenates item texts, line breaks included, with every
// markup stripped — the form spec.md's parser-idempotence property checks
// against.
func RenderPlain(t LogText) string {
	var sb strings.Builder
	for _, it := range t.items {
		if it.IsNewLine() {
			sb.WriteByte('\n')
			continue
		}
		sb.WriteString(it.Text)
	}
	return sb.String()
}

// isNeutral reports whether (style, color) is the baseline "nothing
// active" state: no style bits set and either no color was ever chosen or
// color was explicitly reset to Default.
func isNeutral(style LogStyle, col LogColor) bool {
	return style == LogStyleUnchanged && (col == LogColorDefault || col == LogColorUnchanged)
}

var styleOrder = []struct {
	flag LogStyle
	name string
}{
	{LogStyleBold, "Bold"},
	{LogStyleItalic, "Italic"},
	{LogStyleUnderline, "Underline"},
	{LogStyleInverse, "Inverse"},
}

var colorTagNames = map[LogColor]string{
	LogColorDefault: "Default",
	LogColorBlack:   "Black",
	LogColorGray:    "Gray",
	LogColorBlue:    "Blue",
	LogColorGreen:   "Green",
	LogColorCyan:    "Cyan",
	LogColorRed:     "Red",
	LogColorMagenta: "Magenta",
	LogColorYellow:  "Yellow",
	LogColorWhite:   "White",
}

// RenderStyledMarkup re-serializes a LogText back into the "<Token>"
// markup grammar, transitioning only when the previously-emitted
// color/style actually changes. Any run that returns a LogText to the
// neutral baseline (no style, Default/Unchanged color) from an active one
// collapses to a single "<Reset>" — ANSI's own SGR-0 resets everything at
// once, and the formatter's colored presets rely on that shorthand.
func RenderStyledMarkup(t LogText) string {
	var sb strings.Builder
	prevStyle := LogStyle(LogStyleUnchanged)
	prevColor := LogColorUnchanged
	for _, it := range t.items {
		if it.IsNewLine() {
			sb.WriteByte('\n')
			continue
		}
		neutral := isNeutral(it.Style, it.Color)
		wasNeutral := isNeutral(prevStyle, prevColor)
		switch {
		case neutral && !wasNeutral:
			sb.WriteString("<Reset>")
		case !neutral:
			if it.Style != prevStyle {
				added := it.Style &^ prevStyle
				for _, s := range styleOrder {
					if added.Has(s.flag) {
						sb.WriteString("<" + s.name + ">")
					}
				}
				if it.Style == LogStyleUnchanged && prevStyle != LogStyleUnchanged {
					sb.WriteString("<Reset>")
				}
			}
			if it.Color != prevColor && it.Color != LogColorUnchanged {
				if name, ok := colorTagNames[it.Color]; ok {
					sb.WriteString("<" + name + ">")
				}
			}
		}
		prevStyle, prevColor = it.Style, it.Color
		sb.WriteString(it.Text)
	}
	return sb.String()
}

// ansiReset is the SGR sequence that clears all attributes.
const ansiReset = "\x1b[0m"

// xtermCode returns the nearest xterm-256 palette index for one of the
// closed LogColor values, used to keep the ANSI renderer's 8-color
// semantics legible on 256-color terminals.
func xtermCode(c LogColor) uint8 {
	rgbv, ok := colorRGB[c]
	if !ok {
		rgbv = colorRGB[LogColorDefault]
	}
	return xtermcolor.Lookup(color.RGBA{R: rgbv.r, G: rgbv.g, B: rgbv.b, A: 0xff})
}

func ansiSGR(col LogColor, style LogStyle) string {
	var codes []string
	if style.Has(LogStyleBold) {
		codes = append(codes, "1")
	}
	if style.Has(LogStyleItalic) {
		codes = append(codes, "3")
	}
	if style.Has(LogStyleUnderline) {
		codes = append(codes, "4")
	}
	if style.Has(LogStyleInverse) {
		codes = append(codes, "7")
	}
	if col != LogColorUnchanged {
		codes = append(codes, fmt.Sprintf("38;5;%d", xtermCode(col)))
	}
	if len(codes) == 0 {
		return ""
	}
	return "\x1b[" + strings.Join(codes, ";") + "m"
}

// RenderANSI emits terminal control sequences, transitioning only when the
// color or style actually changes from the previously-emitted run — one
// SGR-0 reset whenever the text returns to baseline, one combined SGR
// sequence whenever it becomes styled.
func RenderANSI(t LogText) string {
	var sb strings.Builder
	prevStyle := LogStyle(LogStyleUnchanged)
	prevColor := LogColorUnchanged
	for _, it := range t.items {
		if it.IsNewLine() {
			sb.WriteByte('\n')
			continue
		}
		neutral := isNeutral(it.Style, it.Color)
		wasNeutral := isNeutral(prevStyle, prevColor)
		switch {
		case neutral && !wasNeutral:
			sb.WriteString(ansiReset)
		case !neutral && (it.Style != prevStyle || it.Color != prevColor):
			sb.WriteString(ansiReset)
			sb.WriteString(ansiSGR(it.Color, it.Style))
		}
		prevStyle, prevColor = it.Style, it.Color
		sb.WriteString(it.Text)
	}
	if !isNeutral(prevStyle, prevColor) {
		sb.WriteString(ansiReset)
	}
	return sb.String()
}

// RenderHTML emits one <span style="..."> per styled run and <br/> for
// NewLine, as an inline fragment (no surrounding document — see
// sinks/htmlfile for the full HTML5 document wrapper).
func RenderHTML(t LogText) string {
	var sb strings.Builder
	for _, it := range t.items {
		if it.IsNewLine() {
			sb.WriteString("<br/>")
			continue
		}
		if it.Text == "" {
			continue
		}
		style := htmlInlineStyle(it.Color, it.Style)
		if style == "" {
			sb.WriteString(htmlEscape(it.Text))
			continue
		}
		sb.WriteString(`<span style="`)
		sb.WriteString(style)
		sb.WriteString(`">`)
		sb.WriteString(htmlEscape(it.Text))
		sb.WriteString(`</span>`)
	}
	return sb.String()
}

func htmlInlineStyle(col LogColor, style LogStyle) string {
	var parts []string
	if col != LogColorUnchanged {
		if name, ok := htmlColorNames[col]; ok {
			parts = append(parts, "color:"+name)
		}
	}
	if style.Has(LogStyleBold) {
		parts = append(parts, "font-weight:bold")
	}
	if style.Has(LogStyleItalic) {
		parts = append(parts, "font-style:italic")
	}
	if style.Has(LogStyleUnderline) {
		parts = append(parts, "text-decoration:underline")
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, ";")
}

func htmlEscape(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	return r.Replace(s)
}
