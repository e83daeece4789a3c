package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "tokitype.log")
	logger, cleanup, err := Setup(Config{Path: path, Debug: true})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	logger.Info().Str("session", "abc").Msg("hello")
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	for _, want := range []string{`"message":"hello"`, `"session":"abc"`, "logger initialized"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %s in log:\n%s", want, out)
		}
	}
}

func TestSetupInfoLevelSkipsDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokitype.log")
	logger, cleanup, err := Setup(Config{Path: path})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	logger.Debug().Msg("hidden")
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if strings.Contains(string(data), "hidden") {
		t.Fatalf("debug line written at info level")
	}
}

func TestSetupEmptyPath(t *testing.T) {
	logger, cleanup, err := Setup(Config{})
	if err == nil {
		t.Fatalf("expected error for empty path")
	}
	logger.Info().Msg("dropped")
	if err := cleanup(); err != nil {
		t.Fatalf("noop cleanup failed: %v", err)
	}
}
