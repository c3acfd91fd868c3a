package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"indentlog/internal/dump"
	"indentlog/internal/render"
)

//go:embed sample_config.toml
var sampleConfig string

// Logging contains configuration for log output and sinks.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	// Color is one of auto, always, never. Auto enables color when stdout is
	// a terminal.
	Color string `toml:"color"`
	// File, when set, receives a second copy of every line.
	File         string `toml:"file"`
	FileKeepANSI bool   `toml:"file_keep_ansi"`
	FileNoIndent bool   `toml:"file_no_indent"`
}

// Render contains the line layout settings.
type Render struct {
	IncludeFunc      bool   `toml:"include_func"`
	IncludeModule    bool   `toml:"include_module"`
	FuncModuleFormat string `toml:"func_module_format"`
	TruncateMessages bool   `toml:"truncate_messages"`
	MinFuncNameCol   int    `toml:"min_func_name_col"`
	IndentModules    bool   `toml:"indent_modules"`
	IndentPackages   bool   `toml:"indent_packages"`
	TopLevel         string `toml:"top_level"`
	IndentSpaces     int    `toml:"indent_spaces"`
	DateFormat       string `toml:"date_format"`
	NoTimestamp      bool   `toml:"no_timestamp"`
}

// Dump contains defaults for structured value dumps.
type Dump struct {
	FlattenLongText bool     `toml:"flatten_long_text"`
	Exclude         []string `toml:"exclude"`
}

// Config encapsulates all configuration values for indentlog.
type Config struct {
	Logging Logging `toml:"logging"`
	Render  Render  `toml:"render"`
	Dump    Dump    `toml:"dump"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/indentlog/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has environment overrides applied and paths expanded. The string and
// bool results report the resolved path and whether a file was read.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		info, err := os.Stat(expanded)
		if err != nil {
			return "", false, fmt.Errorf("config %s: %w", expanded, err)
		}
		if info.IsDir() {
			return "", false, fmt.Errorf("config %s is a directory", expanded)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("indentlog.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func (c *Config) applyEnv() {
	if level, ok := os.LookupEnv("INDENTLOG_LEVEL"); ok && strings.TrimSpace(level) != "" {
		c.Logging.Level = level
	}
	if file, ok := os.LookupEnv("INDENTLOG_LOG_FILE"); ok && strings.TrimSpace(file) != "" {
		c.Logging.File = file
	}
	// https://no-color.org: any non-empty value disables color.
	if v, ok := os.LookupEnv("NO_COLOR"); ok && v != "" {
		c.Logging.Color = ColorNever
	}
}

// RenderConfig returns the renderer settings for a console sink. Color is left
// enabled; sinks decide whether to keep it.
func (c *Config) RenderConfig() render.Config {
	return render.Config{
		IncludeFunc:      c.Render.IncludeFunc,
		IncludeModule:    c.Render.IncludeModule,
		FuncModuleFormat: c.Render.FuncModuleFormat,
		Truncate:         c.Render.TruncateMessages,
		Column:           c.Render.MinFuncNameCol,
		IndentModules:    c.Render.IndentModules,
		IndentPackages:   c.Render.IndentPackages,
		TopLevel:         c.Render.TopLevel,
		IndentSpaces:     c.Render.IndentSpaces,
		Color:            true,
		DisableTimestamp: c.Render.NoTimestamp,
		TimeFormat:       c.Render.DateFormat,
	}
}

// DumpOptions returns the configured structured-dump defaults.
func (c *Config) DumpOptions() dump.Options {
	return dump.Options{
		Exclude:         append([]string(nil), c.Dump.Exclude...),
		FlattenLongText: c.Dump.FlattenLongText,
	}
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// SampleConfig returns the annotated sample configuration.
func SampleConfig() string {
	return sampleConfig
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
