package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	c.normalizeRender()
	c.normalizeDump()
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Color = strings.ToLower(strings.TrimSpace(c.Logging.Color))
	if c.Logging.Color == "" {
		c.Logging.Color = defaultColor
	}
	c.Logging.File = strings.TrimSpace(c.Logging.File)
	if c.Logging.File != "" {
		expanded, err := expandPath(c.Logging.File)
		if err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
		c.Logging.File = expanded
	}
	return nil
}

func (c *Config) normalizeRender() {
	c.Render.TopLevel = strings.TrimSpace(c.Render.TopLevel)
	if c.Render.TopLevel == "" {
		c.Render.TopLevel = defaultTopLevel
	}
	if strings.TrimSpace(c.Render.DateFormat) == "" {
		c.Render.DateFormat = defaultDateFormat
	}
}

func (c *Config) normalizeDump() {
	if len(c.Dump.Exclude) == 0 {
		return
	}
	seen := make(map[string]struct{}, len(c.Dump.Exclude))
	keys := make([]string, 0, len(c.Dump.Exclude))
	for _, key := range c.Dump.Exclude {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	c.Dump.Exclude = keys
}
