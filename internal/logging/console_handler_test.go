package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"indentlog/internal/indent"
	"indentlog/internal/logging"
	"indentlog/internal/render"
)

func plainConfig() render.Config {
	cfg := render.DefaultConfig()
	cfg.Color = false
	cfg.DisableTimestamp = true
	return cfg
}

func newTestLogger(t *testing.T, cfg render.Config) (*slog.Logger, *bytes.Buffer) {
	t.Helper()
	r, err := render.New(cfg)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	var buf bytes.Buffer
	return slog.New(logging.NewHandler(&buf, r, slog.LevelDebug)), &buf
}

func outputLines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}

func TestHandlerIndentsFromContext(t *testing.T) {
	logger, buf := newTestLogger(t, plainConfig())
	ctx := logging.WithContext(context.Background())

	logger.InfoContext(ctx, "outer")
	exit := indent.Enter(ctx)
	logger.InfoContext(ctx, "inner")
	exit()
	logger.InfoContext(ctx, "after")

	want := []string{
		"INFO     - outer",
		"INFO     -     inner",
		"INFO     - after",
	}
	got := outputLines(buf)
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestHandlerWithoutTrackerIsFlush(t *testing.T) {
	logger, buf := newTestLogger(t, plainConfig())
	logger.Info("hello")
	if got := buf.String(); got != "INFO     - hello\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestHandlerConsumesHints(t *testing.T) {
	logger, buf := newTestLogger(t, plainConfig())
	logger.Warn("step", logging.Lvl(2), logging.Color("red"), logging.String("k", "v"))

	got := buf.String()
	if got != "WARNING  -         step k=v\n" {
		t.Fatalf("output = %q", got)
	}
	for _, key := range []string{"lvl=", "c=", "func="} {
		if strings.Contains(got, key) {
			t.Fatalf("hint %q leaked into %q", key, got)
		}
	}
}

func TestHandlerNegativeHintClamps(t *testing.T) {
	logger, buf := newTestLogger(t, plainConfig())
	logger.Info("x", logging.Lvl(-3))
	if got := buf.String(); got != "INFO     - x\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestHandlerAnnotatesCaller(t *testing.T) {
	cfg := plainConfig()
	cfg.IncludeFunc = true
	cfg.Column = 0
	logger, buf := newTestLogger(t, cfg)

	logger.Info("hi")
	logger.Info("hi", logging.Func("custom"))

	got := outputLines(buf)
	if got[0] != "INFO     - hi{TestHandlerAnnotatesCaller}" {
		t.Fatalf("caller line = %q", got[0])
	}
	if got[1] != "INFO     - hi{custom}" {
		t.Fatalf("override line = %q", got[1])
	}
}

func TestHandlerNamedLoggerHierarchy(t *testing.T) {
	cfg := plainConfig()
	cfg.IndentPackages = true
	cfg.IncludeModule = true
	cfg.Column = 0
	logger, buf := newTestLogger(t, cfg)

	logging.Named(logger, "app.db.pool").Info("connect")

	if got := buf.String(); got != "INFO     -         connect{app.db.pool}\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestHandlerUnnamedLoggerIsTopLevel(t *testing.T) {
	cfg := plainConfig()
	cfg.IndentModules = true
	logger, buf := newTestLogger(t, cfg)

	logger.Info("root")
	logging.Named(logger, "worker").Info("child")

	want := []string{
		"INFO     - root",
		"INFO     -     child",
	}
	got := outputLines(buf)
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestHandlerFormatsAttrs(t *testing.T) {
	logger, buf := newTestLogger(t, plainConfig())
	logger.WithGroup("req").Info("served", "id", 7, "path", "a b")

	if got := buf.String(); got != "INFO     - served req.id=7 req.path=\"a b\"\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestHandlerRespectsLevel(t *testing.T) {
	r, err := render.New(plainConfig())
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	logger := slog.New(logging.NewHandler(&buf, r, slog.LevelWarn))

	logger.Info("dropped")
	logger.Error("kept")

	if got := buf.String(); got != "ERROR    - kept\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestHandlerColorTag(t *testing.T) {
	cfg := plainConfig()
	cfg.Color = true
	logger, buf := newTestLogger(t, cfg)

	logger.Info("alert", logging.Color("red"))
	logger.Info("plain")

	got := outputLines(buf)
	if !strings.Contains(got[0], "\x1b[") {
		t.Fatalf("expected escape sequence in %q", got[0])
	}
	if strings.Contains(got[1], "\x1b[") {
		t.Fatalf("untagged line carries escapes: %q", got[1])
	}
}
