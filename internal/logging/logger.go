package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"

	"indentlog/internal/config"
	"indentlog/internal/render"
)

// Options describes logger construction parameters.
type Options struct {
	Level string
	// Format is console or json.
	Format string
	// Color is auto, always, or never. It applies to the console sinks only.
	Color string
	// OutputPaths lists console sinks: stdout, stderr, or file paths.
	OutputPaths []string
	// Console, when set, is the console sink and OutputPaths is ignored.
	Console io.Writer
	// FilePath adds a file sink rendered without color (unless FileKeepANSI)
	// and without indentation when FileNoIndent is set.
	FilePath     string
	FileKeepANSI bool
	FileNoIndent bool
	// Render is the console layout. Nil means render.DefaultConfig; a non-nil
	// config is used as given, so start from render.DefaultConfig and adjust.
	Render *render.Config
	// SessionID tags JSON records. Empty generates a fresh id.
	SessionID string
}

// New constructs a slog logger using the provided options.
func New(opts Options) (*slog.Logger, error) {
	levelVar := new(slog.LevelVar)
	levelVar.Set(parseLevel(opts.Level))

	console := opts.Console
	if console == nil {
		var err error
		if console, err = openWriters(defaultSlice(opts.OutputPaths, []string{"stdout"})); err != nil {
			return nil, err
		}
	}
	var file io.Writer
	if path := strings.TrimSpace(opts.FilePath); path != "" {
		f, err := openFile(path)
		if err != nil {
			return nil, err
		}
		file = f
	}

	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = config.FormatConsole
	}

	var handlers []slog.Handler
	switch format {
	case config.FormatJSON:
		sessionID := opts.SessionID
		if sessionID == "" {
			sessionID = NewSessionID()
		}
		addSource := levelVar.Level() <= slog.LevelDebug
		handlers = append(handlers, newSessionIDHandler(newJSONHandler(console, levelVar, addSource), sessionID))
		if file != nil {
			handlers = append(handlers, newSessionIDHandler(newJSONHandler(file, levelVar, addSource), sessionID))
		}
	case config.FormatConsole:
		base := render.DefaultConfig()
		if opts.Render != nil {
			base = *opts.Render
		}

		consoleCfg := base
		consoleCfg.Color = useColor(opts.Color, console)
		consoleRenderer, err := render.New(consoleCfg)
		if err != nil {
			return nil, fmt.Errorf("console renderer: %w", err)
		}
		handlers = append(handlers, NewHandler(console, consoleRenderer, levelVar))

		if file != nil {
			fileRenderer, err := render.New(FileRenderConfig(base, opts.FileKeepANSI, opts.FileNoIndent))
			if err != nil {
				return nil, fmt.Errorf("file renderer: %w", err)
			}
			handlers = append(handlers, NewHandler(file, fileRenderer, levelVar))
		}
	default:
		return nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}

	return slog.New(newFanoutHandler(handlers...)), nil
}

// NewFromConfig creates a logger using application config defaults.
func NewFromConfig(cfg *config.Config) (*slog.Logger, error) {
	return New(OptionsFromConfig(cfg))
}

// OptionsFromConfig maps loaded configuration onto logger options writing to
// stdout. A nil cfg yields the defaults.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		defaults := config.Default()
		cfg = &defaults
	}
	rc := cfg.RenderConfig()
	return Options{
		Level:        cfg.Logging.Level,
		Format:       cfg.Logging.Format,
		Color:        cfg.Logging.Color,
		OutputPaths:  []string{"stdout"},
		FilePath:     cfg.Logging.File,
		FileKeepANSI: cfg.Logging.FileKeepANSI,
		FileNoIndent: cfg.Logging.FileNoIndent,
		Render:       &rc,
	}
}

// FileRenderConfig derives the layout used for file sinks from the console
// layout: color is stripped unless keepANSI, and noIndent removes every
// source of indentation.
func FileRenderConfig(base render.Config, keepANSI, noIndent bool) render.Config {
	cfg := base
	cfg.Color = keepANSI
	if noIndent {
		cfg.DisableIndent = true
		cfg.IndentModules = false
		cfg.IndentPackages = false
	}
	return cfg
}

func useColor(mode string, w io.Writer) bool {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		f, ok := w.(*os.File)
		if !ok {
			return false
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "critical":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func defaultSlice(value []string, fallback []string) []string {
	src := value
	if len(src) == 0 {
		src = fallback
	}
	cp := make([]string, len(src))
	copy(cp, src)
	return cp
}

func openWriters(paths []string) (io.Writer, error) {
	seen := map[string]struct{}{}
	var writers []io.Writer
	for _, path := range paths {
		trimmed := strings.TrimSpace(path)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}

		switch trimmed {
		case "stdout":
			writers = append(writers, os.Stdout)
		case "stderr":
			writers = append(writers, os.Stderr)
		default:
			file, err := openFile(trimmed)
			if err != nil {
				return nil, err
			}
			writers = append(writers, file)
		}
	}

	switch len(writers) {
	case 0:
		return os.Stdout, nil
	case 1:
		return writers[0], nil
	}
	return io.MultiWriter(writers...), nil
}

func openFile(path string) (*os.File, error) {
	if err := ensureLogDir(path); err != nil {
		return nil, fmt.Errorf("ensure log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o664)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return file, nil
}

func ensureLogDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
