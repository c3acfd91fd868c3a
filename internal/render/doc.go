// Package render turns one log record into one formatted output line.
//
// The Renderer merges every indentation source (scope depth, the per-call
// manual hint, and the logger's position in the dot-separated hierarchy) into a
// single level, indents and optionally truncates the message, colors it, and
// aligns an optional {module:function} annotation to a fixed column.
// Alignment and truncation measure visible width, so ANSI color sequences never
// shift columns.
//
// Configuration problems such as an annotation template naming an unknown
// field are reported by New. Render itself never fails: missing optional
// record fields fall back to neutral values.
package render
