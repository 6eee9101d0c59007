package main

import (
	"os"
	"path/filepath"
	"testing"
)

// Smoke test to ensure main honors SKIP_SERVER_RUN and does not block test runs.
func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "1")
	main()
}

func TestLogOutputDefaultsToStdout(t *testing.T) {
	out, closeFn, err := logOutput("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer closeFn()
	if out != os.Stdout {
		t.Fatalf("expected stdout, got %T", out)
	}
}

func TestLogOutputAppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ticker.log")
	out, closeFn, err := logOutput(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := out.Write([]byte("hello\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	closeFn()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "hello\n" {
		t.Fatalf("unexpected file contents %q", data)
	}
}

func TestLogOutputFailsOnMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "ticker.log")
	if _, _, err := logOutput(path); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}
