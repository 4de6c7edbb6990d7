// Copyright © 2020-2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: iyuryevich@pm.me, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package ekalog

import "strings"

// LogColor is a closed set of named colors a LogTextItem may carry.
// LogColorUnchanged means "inherit from the prior item"; LogColorDefault
// resets to the sink's default foreground.
type LogColor uint8

//noinspection GoSnakeCaseUsage
const (
	LogColorUnchanged LogColor = iota
	LogColorDefault
	LogColorBlack
	LogColorGray
	LogColorBlue
	LogColorGreen
	LogColorCyan
	LogColorRed
	LogColorMagenta
	LogColorYellow
	LogColorWhite
)

// LogStyle is a bitflag set of text decorations. Reset clears whatever
// style was active; the rest compose by bitwise union.
type LogStyle uint8

//noinspection GoSnakeCaseUsage
const (
	LogStyleUnchanged LogStyle = 0
	LogStyleReset     LogStyle = 1 << iota
	LogStyleBold
	LogStyleItalic
	LogStyleUnderline
	LogStyleInverse
)

// Has reports whether every flag in want is set in s.
func (s LogStyle) Has(want LogStyle) bool { return want != 0 && s&want == want }

var colorNames = map[string]LogColor{
	"unchanged": LogColorUnchanged,
	"default":   LogColorDefault,
	"black":     LogColorBlack,
	"gray":      LogColorGray,
	"grey":      LogColorGray,
	"blue":      LogColorBlue,
	"green":     LogColorGreen,
	"cyan":      LogColorCyan,
	"red":       LogColorRed,
	"magenta":   LogColorMagenta,
	"yellow":    LogColorYellow,
	"white":     LogColorWhite,
}

var styleNames = map[string]LogStyle{
	"unchanged": LogStyleUnchanged,
	"reset":     LogStyleReset,
	"bold":      LogStyleBold,
	"italic":    LogStyleItalic,
	"underline": LogStyleUnderline,
	"inverse":   LogStyleInverse,
}

// lookupToken resolves a case-insensitive markup token name to either a
// LogColor or a LogStyle. isColor and isStyle are both false if name is
// neither; "unchanged" resolves as the color.
func lookupToken(name string) (color LogColor, style LogStyle, isColor, isStyle bool) {
	lower := strings.ToLower(name)
	if c, found := colorNames[lower]; found {
		return c, 0, true, false
	}
	if st, found := styleNames[lower]; found {
		return 0, st, false, true
	}
	return 0, 0, false, false
}

// rgb is the sRGB triple used to drive xterm-256 nearest-color lookups for
// the ANSI renderer (see render.go).
type rgb struct{ r, g, b uint8 }

var colorRGB = map[LogColor]rgb{
	LogColorBlack:   {0, 0, 0},
	LogColorGray:    {128, 128, 128},
	LogColorBlue:    {0, 0, 238},
	LogColorGreen:   {0, 205, 0},
	LogColorCyan:    {0, 205, 205},
	LogColorRed:     {205, 0, 0},
	LogColorMagenta: {205, 0, 205},
	LogColorYellow:  {205, 205, 0},
	LogColorWhite:   {229, 229, 229},
	LogColorDefault: {229, 229, 229},
}

// htmlColorNames maps a LogColor to its CSS color keyword for the HTML sink.
var htmlColorNames = map[LogColor]string{
	LogColorBlack:   "black",
	LogColorGray:    "gray",
	LogColorBlue:    "blue",
	LogColorGreen:   "green",
	LogColorCyan:    "teal",
	LogColorRed:     "red",
	LogColorMagenta: "magenta",
	LogColorYellow:  "olive",
	LogColorWhite:   "silver",
	LogColorDefault: "inherit",
}

// LevelColor is the default color mapping used by the DefaultColored and
// ShortColored formatter presets.
func LevelColor(l Level) LogColor {
	switch l {
	case LEVEL_EMERGENCY, LEVEL_ALERT, LEVEL_CRITICAL:
		return LogColorMagenta
	case LEVEL_ERROR:
		return LogColorRed
	case LEVEL_WARNING:
		return LogColorYellow
	case LEVEL_NOTICE:
		return LogColorGreen
	case LEVEL_INFO:
		return LogColorCyan
	case LEVEL_DEBUG:
		return LogColorGray
	case LEVEL_VERBOSE:
		return LogColorBlue
	default:
		return LogColorDefault
	}
}
