package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewFormatter(t *testing.T) {
	if _, ok := NewFormatter(FormatJSON).(*JSONFormatter); !ok {
		t.Error("expected JSONFormatter for json format")
	}
	if _, ok := NewFormatter(FormatText).(*TextFormatter); !ok {
		t.Error("expected TextFormatter for text format")
	}
	if _, ok := NewFormatter("unknown").(*TextFormatter); !ok {
		t.Error("expected TextFormatter fallback for unknown format")
	}
}

func TestJSONFormatter(t *testing.T) {
	formatter := &JSONFormatter{Indent: true}

	data := map[string]int{"clauses": 12}
	out, err := formatter.Format(data)
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}

	var decoded map[string]int
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["clauses"] != 12 {
		t.Errorf("expected clauses=12, got %d", decoded["clauses"])
	}

	var buf bytes.Buffer
	if err := formatter.FormatTo(&buf, data); err != nil {
		t.Fatalf("FormatTo failed: %v", err)
	}
	if !strings.Contains(buf.String(), "clauses") {
		t.Errorf("expected key in output, got %q", buf.String())
	}
}

func TestTextFormatter(t *testing.T) {
	formatter := &TextFormatter{}

	var buf bytes.Buffer
	if err := formatter.FormatTo(&buf, "3 clauses"); err != nil {
		t.Fatalf("FormatTo failed: %v", err)
	}
	if buf.String() != "3 clauses\n" {
		t.Errorf("expected trailing newline, got %q", buf.String())
	}
}
