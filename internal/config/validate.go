package config

import (
	"errors"
	"fmt"

	"indentlog/internal/render"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateRender(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q (want debug, info, warn, or error)", c.Logging.Level)
	}
	switch c.Logging.Format {
	case FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("logging.format: unsupported value %q (want %s or %s)", c.Logging.Format, FormatConsole, FormatJSON)
	}
	switch c.Logging.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("logging.color: unsupported value %q (want %s, %s, or %s)", c.Logging.Color, ColorAuto, ColorAlways, ColorNever)
	}
	return nil
}

func (c *Config) validateRender() error {
	if c.Render.IndentSpaces < 0 {
		return errors.New("render.indent_spaces must be >= 0")
	}
	if c.Render.MinFuncNameCol < 0 {
		return errors.New("render.min_func_name_col must be >= 0")
	}
	if _, err := render.ParseTemplate(c.Render.FuncModuleFormat); err != nil {
		return fmt.Errorf("render.func_module_format: %w", err)
	}
	return nil
}
