package main

import (
	"testing"
)

const sampleJSON = `{"b": 1, "a": {"c": [1, 2]}, "secret": "x"}`

func TestDumpCommandJSONRaw(t *testing.T) {
	configPath := setupCLITestEnv(t)
	path := writeFile(t, t.TempDir(), "doc.json", sampleJSON)

	out, _, err := runCLI(t, []string{"dump", "--raw", "--exclude", "secret", path}, configPath)
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	want := "b: 1\na:\n    c: List of length 2\n        0: 1\n        1: 2\n"
	if out != want {
		t.Fatalf("dump --raw = %q, want %q", out, want)
	}
}

func TestDumpCommandThroughLogger(t *testing.T) {
	configPath := setupCLITestEnv(t)
	path := writeFile(t, t.TempDir(), "doc.json", sampleJSON)

	out, _, err := runCLI(t, []string{"dump", "--name", "doc", path}, configPath)
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	requireContains(t, out, "INFO     - doc:\n")
	requireContains(t, out, "INFO     -     a:\n")
	requireContains(t, out, "INFO     -         c: List of length 2\n")
	requireContains(t, out, "INFO     -     secret: x\n")
}

func TestDumpCommandYAML(t *testing.T) {
	configPath := setupCLITestEnv(t)
	body := "defaults: &d\n  retries: 3\nprimary: *d\nname: demo\n"
	path := writeFile(t, t.TempDir(), "doc.yaml", body)

	out, _, err := runCLI(t, []string{"dump", "--raw", path}, configPath)
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	want := "defaults:\n    retries: 3\nprimary:\n    retries: 3\nname: demo\n"
	if out != want {
		t.Fatalf("dump --raw = %q, want %q", out, want)
	}
}

func TestDumpCommandTOML(t *testing.T) {
	configPath := setupCLITestEnv(t)
	body := "[server]\nport = 8080\nhost = \"db.local\"\n"
	path := writeFile(t, t.TempDir(), "doc.toml", body)

	out, _, err := runCLI(t, []string{"dump", "--raw", path}, configPath)
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	want := "server:\n    host: db.local\n    port: 8080\n"
	if out != want {
		t.Fatalf("dump --raw = %q, want %q", out, want)
	}
}

func TestDumpCommandErrors(t *testing.T) {
	configPath := setupCLITestEnv(t)
	dir := t.TempDir()

	tests := []struct {
		name string
		file string
		body string
	}{
		{"unsupported extension", "doc.ini", "a=1"},
		{"invalid json", "bad.json", "{"},
		{"invalid yaml", "bad.yaml", "a: [1, 2"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, dir, tc.file, tc.body)
			if _, _, err := runCLI(t, []string{"dump", path}, configPath); err == nil {
				t.Fatalf("expected error for %s", tc.file)
			}
		})
	}
}
