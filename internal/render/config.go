package render

import (
	"errors"
	"fmt"
)

const (
	defaultColumn       = 80
	defaultIndentSpaces = 4
	defaultTopLevel     = "main"
	defaultTimeLayout   = "2006-01-02 15:04:05"
)

// Config controls how records are rendered. A Renderer keeps its own copy, so
// mutating a Config after New has no effect on existing renderers.
type Config struct {
	// IncludeFunc and IncludeModule select the fields of the default
	// annotation template when FuncModuleFormat is empty.
	IncludeFunc   bool
	IncludeModule bool
	// FuncModuleFormat overrides the annotation template. Recognized fields
	// are {funcName} and {moduleName}; {{ and }} produce literal braces.
	FuncModuleFormat string
	// Truncate clamps the indented message to a fixed visible width.
	Truncate bool
	// Column is the target column for the annotation.
	Column int
	// IndentModules adds one level for records whose source is not TopLevel.
	IndentModules bool
	// IndentPackages adds one level per '.' in the record source.
	IndentPackages bool
	// TopLevel names the entry-point source that IndentModules leaves flush.
	TopLevel string
	// IndentSpaces is the width of a single nesting level.
	IndentSpaces int
	// Color wraps messages in the record's color tag. When false the output
	// contains no escape sequences at all.
	Color bool
	// DisableIndent drops indentation regardless of depth.
	DisableIndent bool
	// DisableTimestamp omits the timestamp and its separator.
	DisableTimestamp bool
	// TimeFormat is a time.Format layout for the timestamp field.
	TimeFormat string
}

// DefaultConfig returns the settings used for a color console.
func DefaultConfig() Config {
	return Config{
		Column:       defaultColumn,
		TopLevel:     defaultTopLevel,
		IndentSpaces: defaultIndentSpaces,
		Color:        true,
		TimeFormat:   defaultTimeLayout,
	}
}

// Validate reports configuration errors without building a renderer.
func (c Config) Validate() error {
	if c.IndentSpaces < 0 {
		return errors.New("indent spaces must be >= 0")
	}
	if c.Column < 0 {
		return errors.New("annotation column must be >= 0")
	}
	if _, err := ParseTemplate(c.annotationFormat()); err != nil {
		return fmt.Errorf("func/module format: %w", err)
	}
	return nil
}

func (c Config) annotationFormat() string {
	if c.FuncModuleFormat != "" {
		return c.FuncModuleFormat
	}
	switch {
	case c.IncludeModule && c.IncludeFunc:
		return "{" + fieldModuleName + "}:{" + fieldFuncName + "}"
	case c.IncludeModule:
		return "{" + fieldModuleName + "}"
	case c.IncludeFunc:
		return "{" + fieldFuncName + "}"
	default:
		return ""
	}
}

func (c Config) withDefaults() Config {
	if c.TopLevel == "" {
		c.TopLevel = defaultTopLevel
	}
	if c.TimeFormat == "" {
		c.TimeFormat = defaultTimeLayout
	}
	return c
}
