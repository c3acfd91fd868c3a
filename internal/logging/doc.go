// Package logging wires the indentation renderer into log/slog.
//
// The console handler reads the nesting depth from the context handed to
// slog's *Context methods, consumes the lvl/c/func hint attributes, and renders
// each record through internal/render. New assembles console and file sinks
// (the file sink drops color, and optionally indentation) behind one logger;
// the JSON format keeps the stdlib handler and adds depth and session_id
// fields instead.
//
// Dump logs a structured value one record per line, nested under the caller's
// current depth.
package logging
