package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/aretw0/marvin/pkg/domain"
)

func TestJSONHandler_Output(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := NewJSONHandler(buf)

	err := handler.Output(context.Background(), &Result{
		Mode:        domain.ModeImplicit,
		Seed:        "ABCDEFGHIJKLMNOP",
		Fingerprint: "OACYZXIUWTESQOAP",
		Trace:       sampleTrace(),
	})
	if err != nil {
		t.Fatalf("Output failed: %v", err)
	}

	if !strings.HasSuffix(buf.String(), "\n") {
		t.Error("Expected output to be newline-terminated")
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Failed to decode output: %v", err)
	}
	if decoded["fingerprint"] != "OACYZXIUWTESQOAP" {
		t.Errorf("Expected fingerprint, got %v", decoded["fingerprint"])
	}
	trace := decoded["trace"].(map[string]any)
	step := trace["steps"].([]any)[0].(map[string]any)
	if step["selector"] != "A" || step["output"] != "OACYZXIUWTESQOAP" {
		t.Errorf("Expected symbols and blocks encoded as text, got %v", step)
	}
}

func TestJSONHandler_PromptIsSilent(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := NewJSONHandler(buf)

	if err := handler.Prompt(context.Background(), "Input seed:"); err != nil {
		t.Fatalf("Prompt failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Expected no output, got %q", buf.String())
	}
}
