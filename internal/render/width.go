package render

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/jedib0t/go-pretty/v6/text"
)

// VisibleWidth returns the display width of s ignoring escape sequences.
func VisibleWidth(s string) int {
	return text.StringWidthWithoutEscSequences(s)
}

// StripEscapes removes every ANSI escape sequence from s.
func StripEscapes(s string) string {
	return ansi.Strip(s)
}
