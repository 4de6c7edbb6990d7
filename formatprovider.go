// Copyright © 2018-2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: iyuryevich@pm.me, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package ekalog

import (
	"fmt"
	"strconv"

	"github.com/modern-go/reflect2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatProvider renders the primitive values a LogMessage's Content
// interpolation may embed (numbers, booleans) the way a given culture
// expects — e.g. "2.5" vs the de-DE "2,5", or .NET-style "True"/"False"
// instead of Go's lowercase default.
type FormatProvider interface {
	FormatNumber(v float64) string
	FormatBool(v bool) string
}

// invariantProvider is the culture-insensitive FormatProvider: Go's own
// strconv formatting, "True"/"False" casing to match the rest of the
// message templates' capitalized vocabulary (Level names, etc).
type invariantProvider struct{}

// Invariant is the FormatProvider used when no culture is configured.
var Invariant FormatProvider = invariantProvider{}

func (invariantProvider) FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (invariantProvider) FormatBool(v bool) string {
	if v {
		return "True"
	}
	return "False"
}

// cultureProvider formats numbers the way a specific locale would (decimal
// separator, grouping), via golang.org/x/text. Booleans are not a locale
// concept in x/text, so they follow the same "True"/"False" convention as
// Invariant.
type cultureProvider struct {
	tag     language.Tag
	printer *message.Printer
}

// Culture returns a FormatProvider honoring tag's number formatting rules,
// e.g. Culture(language.German) renders 2.5 as "2,5".
func Culture(tag language.Tag) FormatProvider {
	return &cultureProvider{tag: tag, printer: message.NewPrinter(tag)}
}

func (c *cultureProvider) FormatNumber(v float64) string {
	return c.printer.Sprint(number.Decimal(v))
}

func (c *cultureProvider) FormatBool(v bool) string {
	if v {
		return "True"
	}
	return "False"
}

// formatValue dispatches an arbitrary value to the right FormatProvider
// method: the common numeric/bool/string cases go through a plain type
// switch, and reflect2 is used only on the fallback path. Content
// interpolation (interpolateValues) does not call it.
func formatValue(fp FormatProvider, v interface{}) string {
	if v == nil {
		return ""
	}
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return fp.FormatBool(x)
	case float64:
		return fp.FormatNumber(x)
	case float32:
		return fp.FormatNumber(float64(x))
	case int:
		return fp.FormatNumber(float64(x))
	case int64:
		return fp.FormatNumber(float64(x))
	}

	if s, ok := v.(interface{ String() string }); ok {
		return s.String()
	}
	if e, ok := v.(error); ok {
		return e.Error()
	}

	// Anything else (structs, slices, uncommon numeric kinds): reflect2
	// still spares the allocation-heavy reflect.Value path for the type
	// name itself, even though the value is rendered via fmt.
	rt := reflect2.TypeOf(v)
	if rt == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}
