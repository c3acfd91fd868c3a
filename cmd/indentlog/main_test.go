package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const plainConfig = `[logging]
color = "never"

[render]
no_timestamp = true
`

// setupCLITestEnv isolates HOME and the environment and writes a config that
// disables color and timestamps so output can be compared literally.
func setupCLITestEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("INDENTLOG_LEVEL", "")
	t.Setenv("INDENTLOG_LOG_FILE", "")
	t.Setenv("NO_COLOR", "")
	t.Chdir(home)

	path := filepath.Join(home, "indentlog.toml")
	if err := os.WriteFile(path, []byte(plainConfig), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func requireNotContains(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Fatalf("expected %q not to contain %q", output, substr)
	}
}

func TestRootShowsHelp(t *testing.T) {
	configPath := setupCLITestEnv(t)
	out, _, err := runCLI(t, nil, configPath)
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	requireContains(t, out, "demo")
	requireContains(t, out, "dump")
}

func TestRootRejectsBadLevel(t *testing.T) {
	configPath := setupCLITestEnv(t)
	_, _, err := runCLI(t, []string{"--level", "loud", "demo"}, configPath)
	if err == nil || !strings.Contains(err.Error(), "logging.level") {
		t.Fatalf("expected logging.level error, got %v", err)
	}
}

func TestRootMissingExplicitConfig(t *testing.T) {
	setupCLITestEnv(t)
	_, _, err := runCLI(t, []string{"demo"}, filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("expected an error for a missing --config path")
	}
}
