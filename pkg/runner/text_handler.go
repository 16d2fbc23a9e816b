package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/marvin/pkg/domain"
)

// TextHandler implements the standard text-based interface.
type TextHandler struct {
	Writer   io.Writer
	Renderer ContentRenderer
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(w io.Writer) *TextHandler {
	if w == nil {
		w = os.Stdout
	}
	return &TextHandler{
		Writer: w,
	}
}

func (h *TextHandler) Prompt(ctx context.Context, msg string) error {
	_, err := fmt.Fprintln(h.Writer, msg)
	return err
}

// Output prints the explanation, when present, followed by the fingerprint on its own line.
// Failed results print nothing; the caller reports the error.
func (h *TextHandler) Output(ctx context.Context, res *Result) error {
	if res.Error != "" {
		return nil
	}
	if res.Trace != nil {
		md := ExplainMarkdown(res.Trace)
		output := md
		if h.Renderer != nil {
			if rendered, err := h.Renderer(md); err == nil {
				output = rendered
			}
		}
		if _, err := fmt.Fprintln(h.Writer, strings.TrimRight(output, "\n")); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(h.Writer, res.Fingerprint)
	return err
}

// ExplainMarkdown renders a trace as a markdown table, one row per group.
func ExplainMarkdown(t *domain.Trace) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Reduction (%s)\n\n", t.Mode)
	fmt.Fprintf(&b, "Preamble `%s`, body of %d characters.\n\n", t.Preamble, len(t.Body))
	b.WriteString("| # | Action | Chunk | Block | Transforms | Result |\n")
	b.WriteString("|---|--------|-------|-------|------------|--------|\n")
	for _, st := range t.Steps {
		fmt.Fprintf(&b, "| %d | %s | `%s` | `%s` | %s | `%s` |\n",
			st.Index, st.Selector, st.Chunk, st.Input, strings.Join(st.Transforms, ", "), st.Output)
	}
	fmt.Fprintf(&b, "\nFingerprint: **%s**\n", t.Fingerprint)
	return b.String()
}
