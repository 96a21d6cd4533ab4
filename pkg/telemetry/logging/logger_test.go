package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	logger.Info("parse complete", "clauses", 12)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if entry["msg"] != "parse complete" {
		t.Errorf("expected message, got %v", entry["msg"])
	}
	if entry["clauses"] != float64(12) {
		t.Errorf("expected clauses=12, got %v", entry["clauses"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "warn", Format: "text", Writer: &buf})
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	logger.Debug("dropped")
	logger.Info("dropped too")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("expected sub-level entries to be filtered, got %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("expected warn entry, got %q", out)
	}
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	logger.Info("watcher started", "paths", "games/")

	out := buf.String()
	if !strings.Contains(out, "INFO") {
		t.Errorf("expected level prefix, got %q", out)
	}
	if !strings.Contains(out, "watcher started") {
		t.Errorf("expected message, got %q", out)
	}
	if !strings.Contains(out, "paths=games/") {
		t.Errorf("expected key=value attributes, got %q", out)
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	logger.With("component", "catalog").Info("entry stored")

	if !strings.Contains(buf.String(), `"component":"catalog"`) {
		t.Errorf("expected bound attribute, got %q", buf.String())
	}
}

func TestInvalidConfig(t *testing.T) {
	if _, err := New(Config{Level: "loud"}); err == nil {
		t.Error("expected error for unknown level")
	}
	if _, err := New(Config{Format: "xml"}); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestDefaultsWhenEmpty(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Writer: &buf})
	if err != nil {
		t.Fatalf("empty config must default: %v", err)
	}

	logger.Debug("dropped at default level")
	logger.Info("kept")

	if strings.Contains(buf.String(), "dropped") {
		t.Error("expected debug filtered at default info level")
	}
	if !strings.Contains(buf.String(), "kept") {
		t.Error("expected info entry at default level")
	}
}
