package runner

import (
	"context"
	"encoding/json"
	"io"
	"os"
)

// JSONHandler implements the OutputHandler interface for structured JSON-Lines output.
type JSONHandler struct {
	Writer  io.Writer
	Encoder *json.Encoder
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(w io.Writer) *JSONHandler {
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Writer:  w,
		Encoder: json.NewEncoder(w),
	}
}

// Prompt is a no-op: JSON consumers are programs.
func (h *JSONHandler) Prompt(ctx context.Context, msg string) error {
	return nil
}

// Output emits the result as a single JSON line, errors included.
func (h *JSONHandler) Output(ctx context.Context, res *Result) error {
	return h.Encoder.Encode(res)
}
