package main

import (
	"strings"
	"testing"
)

func TestDemoCommand(t *testing.T) {
	configPath := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"demo"}, configPath)
	if err != nil {
		t.Fatalf("demo: %v", err)
	}

	for _, want := range []string{
		"INFO     - Starting main function\n",
		"INFO     -     Starting complex operation\n",
		"INFO     -         Performing sub operation step 1\n",
		"WARNING  -         Retrying flaky step attempt=2\n",
		"INFO     -     Complex operation completed attempts=2\n",
		"INFO     - settings:\n",
		"INFO     -     name: primary\n",
		"INFO     -     hosts: List of length 2\n",
		"INFO     -         0: db-1.local\n",
		"INFO     -     labels:\n",
		"INFO     -         region: eu-west\n",
		"INFO     -     parent: <cycle detected>\n",
		"INFO     - Finished main function\n",
	} {
		requireContains(t, out, want)
	}
	requireNotContains(t, out, "Manual depth hint")
	requireNotContains(t, out, "redacted")
	requireNotContains(t, out, "\x1b[")
}

func TestDemoCommandDebugLevel(t *testing.T) {
	configPath := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"--level", "debug", "demo"}, configPath)
	if err != nil {
		t.Fatalf("demo: %v", err)
	}
	requireContains(t, out, "DEBUG    - "+strings.Repeat(" ", 20)+"Manual depth hint\n")
}

func TestDemoCommandWorkers(t *testing.T) {
	configPath := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"demo", "--workers", "3"}, configPath)
	if err != nil {
		t.Fatalf("demo: %v", err)
	}
	if got := strings.Count(out, "INFO     -     Worker started\n"); got != 3 {
		t.Fatalf("expected 3 worker start lines at depth 1, got %d in %q", got, out)
	}
	if got := strings.Count(out, "INFO     -         Worker step\n"); got != 3 {
		t.Fatalf("expected 3 worker step lines at depth 2, got %d", got)
	}
}

func TestDemoCommandRejectsNegativeWorkers(t *testing.T) {
	configPath := setupCLITestEnv(t)
	if _, _, err := runCLI(t, []string{"demo", "--workers", "-1"}, configPath); err == nil {
		t.Fatal("expected error for negative workers")
	}
}
