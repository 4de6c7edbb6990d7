// Copyright © 2018-2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: iyuryevich@pm.me, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package ekalog

import (
	"strconv"
	"strings"
)

// interpolateValues resolves "{...}" value holes in a content string before
// it reaches ParseLogText: any brace span whose inner text parses cleanly
// as a float or a bool is replaced by fp's culture-appropriate rendering of
// that value, braces stripped. A span that doesn't parse as either is left
// untouched, braces and all, so the markup parser's own "unrecognized
// token is literal text" rule applies to it downstream — "{...}" is never
// color/style markup, only "<...>" is, but an un-resolvable "{...}" must
// still survive verbatim rather than vanish.
func interpolateValues(content string, fp FormatProvider) string {
	if !strings.ContainsRune(content, '{') {
		return content
	}

	var sb strings.Builder
	runes := []rune(content)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '{' {
			sb.WriteRune(r)
			continue
		}
		end := indexRune(runes, i+1, '}')
		if end < 0 {
			sb.WriteRune(r)
			continue
		}
		inner := string(runes[i+1 : end])
		if rendered, ok := renderInterpolatedValue(inner, fp); ok {
			sb.WriteString(rendered)
			i = end
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func indexRune(runes []rune, from int, target rune) int {
	for i := from; i < len(runes); i++ {
		if runes[i] == target {
			return i
		}
		if runes[i] == '{' {
			// A second open before this one closes: the first is not a
			// simple value hole and is left to the parser's own fallback;
			// the second open is examined on its own afterwards.
			return -1
		}
	}
	return -1
}

func renderInterpolatedValue(inner string, fp FormatProvider) (string, bool) {
	// Numbers first: strconv.ParseBool also accepts "0" and "1".
	if f, err := strconv.ParseFloat(inner, 64); err == nil {
		return fp.FormatNumber(f), true
	}
	if b, err := strconv.ParseBool(inner); err == nil {
		return fp.FormatBool(b), true
	}
	return "", false
}
