package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"indentlog/internal/render"
)

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestNewFanoutHandlerCollapses(t *testing.T) {
	if _, ok := newFanoutHandler(nil, nil).(NoopHandler); !ok {
		t.Error("expected NoopHandler when every sink is nil")
	}
	inner := slog.NewJSONHandler(&bytes.Buffer{}, nil)
	if h := newFanoutHandler(nil, inner, nil); h != inner {
		t.Error("expected the single non-nil sink to be returned unwrapped")
	}
}

func TestFanoutHandlerEnabled(t *testing.T) {
	tests := []struct {
		name   string
		levels []slog.Level
		query  slog.Level
		want   bool
	}{
		{"any sink accepts", []slog.Level{slog.LevelInfo, slog.LevelDebug}, slog.LevelDebug, true},
		{"all sinks accept", []slog.Level{slog.LevelInfo, slog.LevelDebug}, slog.LevelInfo, true},
		{"no sink accepts", []slog.Level{slog.LevelWarn, slog.LevelError}, slog.LevelDebug, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handlers := make([]slog.Handler, 0, len(tc.levels))
			for _, lvl := range tc.levels {
				handlers = append(handlers, slog.NewJSONHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: lvl}))
			}
			if got := newFanoutHandler(handlers...).Enabled(context.Background(), tc.query); got != tc.want {
				t.Errorf("Enabled(%v) = %v, want %v", tc.query, got, tc.want)
			}
		})
	}
}

func TestFanoutHandlerPerSinkLevels(t *testing.T) {
	var infoBuf, debugBuf bytes.Buffer
	logger := slog.New(newFanoutHandler(
		slog.NewJSONHandler(&infoBuf, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
	))

	logger.Debug("debug only")

	if infoBuf.Len() != 0 {
		t.Error("info sink should not receive debug records")
	}
	if debugBuf.Len() == 0 {
		t.Error("debug sink should receive debug records")
	}
}

func TestFanoutHandlerSharesAttrsAndGroups(t *testing.T) {
	r, err := render.New(render.Config{DisableTimestamp: true, IndentSpaces: 4})
	if err != nil {
		t.Fatal(err)
	}
	var jsonBuf, lineBuf bytes.Buffer
	h := newFanoutHandler(slog.NewJSONHandler(&jsonBuf, nil), NewHandler(&lineBuf, r, slog.LevelInfo))

	slog.New(h).With("key", "value").WithGroup("grp").Info("test", "field", 1)

	if !strings.Contains(jsonBuf.String(), `"key":"value"`) || !strings.Contains(jsonBuf.String(), `"grp":{"field":1}`) {
		t.Errorf("json sink = %s", jsonBuf.String())
	}
	if got := lineBuf.String(); got != "INFO     - test key=value grp.field=1\n" {
		t.Errorf("line sink = %q", got)
	}
}

func TestFanoutHandlerJoinsSinkErrors(t *testing.T) {
	errA := errors.New("sink a")
	errB := errors.New("sink b")
	var ok bytes.Buffer
	h := newFanoutHandler(
		slog.NewTextHandler(failingWriter{errA}, nil),
		slog.NewTextHandler(&ok, nil),
		slog.NewTextHandler(failingWriter{errB}, nil),
	)

	err := h.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelInfo, "msg", 0))
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Fatalf("expected both sink errors, got %v", err)
	}
	if ok.Len() == 0 {
		t.Error("healthy sink should still receive the record")
	}
}

func TestTeeLogger(t *testing.T) {
	var baseBuf, teeBuf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&baseBuf, nil))

	TeeLogger(base, slog.NewJSONHandler(&teeBuf, nil)).Info("teed message")
	if baseBuf.Len() == 0 || teeBuf.Len() == 0 {
		t.Errorf("expected output in both sinks, base=%d tee=%d", baseBuf.Len(), teeBuf.Len())
	}

	teeBuf.Reset()
	TeeLogger(nil, TeeHandler(slog.NewJSONHandler(&teeBuf, nil))).Info("no base")
	if teeBuf.Len() == 0 {
		t.Error("expected output without a base logger")
	}
}

func TestCallerName(t *testing.T) {
	tests := map[string]string{
		"indentlog/cmd/indentlog.runDemo":       "runDemo",
		"indentlog/internal/x.(*Server).Start":  "(*Server).Start",
		"main.main":                             "main",
		"indentlog/internal/logging.Dump.func1": "Dump.func1",
	}
	for in, want := range tests {
		if got := trimFuncName(in); got != want {
			t.Errorf("trimFuncName(%q) = %q, want %q", in, got, want)
		}
	}
}
