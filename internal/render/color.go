package render

import (
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
)

var colorTags = map[string]text.Colors{
	"black":   {text.FgBlack},
	"red":     {text.FgRed},
	"green":   {text.FgGreen},
	"yellow":  {text.FgYellow},
	"blue":    {text.FgBlue},
	"magenta": {text.FgMagenta},
	"cyan":    {text.FgCyan},
	"white":   {text.FgWhite},
	"gray":    {text.FgHiBlack},
	"grey":    {text.FgHiBlack},
	"bold":    {text.Bold},

	"bright_red":     {text.FgHiRed},
	"bright_green":   {text.FgHiGreen},
	"bright_yellow":  {text.FgHiYellow},
	"bright_blue":    {text.FgHiBlue},
	"bright_magenta": {text.FgHiMagenta},
	"bright_cyan":    {text.FgHiCyan},
}

// ColorTags lists the recognized color tag names in sorted order.
func ColorTags() []string {
	names := make([]string, 0, len(colorTags))
	for name := range colorTags {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// colorize wraps s in the sequence for tag. The empty tag, "default", and
// unknown tags leave s untouched.
func colorize(s, tag string) string {
	colors, ok := colorTags[strings.ToLower(strings.TrimSpace(tag))]
	if !ok || s == "" {
		return s
	}
	return colors.EscapeSeq() + s + text.Reset.EscapeSeq()
}
