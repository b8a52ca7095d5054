package telemetry

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestInfoWritesJSONLine(t *testing.T) {
	var buf bytes.Buffer
	restore := SetOutput(&buf)
	defer restore()

	Info("analysis.complete", map[string]any{
		"item_count": 3,
		"provider":   "gemini",
	})

	line := strings.TrimSpace(buf.String())
	var payload map[string]any
	if err := json.Unmarshal([]byte(line), &payload); err != nil {
		t.Fatalf("decode log json: %v (%s)", err, line)
	}
	if payload["msg"] != "analysis.complete" {
		t.Fatalf("unexpected msg: %v", payload["msg"])
	}
	if payload["level"] != "info" {
		t.Fatalf("unexpected level: %v", payload["level"])
	}
	if _, ok := payload["ts"]; !ok {
		t.Fatalf("missing ts field")
	}
	if payload["provider"] != "gemini" {
		t.Fatalf("unexpected provider: %v", payload["provider"])
	}
	if payload["item_count"] != float64(3) {
		t.Fatalf("unexpected item_count: %v", payload["item_count"])
	}
}

func TestErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	restore := SetOutput(&buf)
	defer restore()

	Error("http.error", nil)

	var payload map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &payload); err != nil {
		t.Fatalf("decode log json: %v", err)
	}
	if payload["level"] != "error" {
		t.Fatalf("unexpected level: %v", payload["level"])
	}
}
