package runner

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ReadSeed reads r to EOF, trims every line and joins the lines without separators.
// A seed typed over several lines therefore reads as one continuous string.
func ReadSeed(r io.Reader) (string, error) {
	var b strings.Builder
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		b.WriteString(strings.TrimSpace(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("failed to read seed: %w", err)
	}
	return b.String(), nil
}

// IsTerminal reports whether r is an interactive terminal.
// Prompts are only printed in that case so that piped output stays clean.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
