package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/marvin/pkg/domain"
)

// GenerateMermaid draws a reduction trace as a Mermaid flowchart:
// each chunk [/Parallelogram/] feeds its action edge into a [[Subroutine]]
// holding the transformed block, and every block flows into the
// ((Circle)) fingerprint.
func GenerateMermaid(t *domain.Trace) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for _, s := range t.Steps {
		in := fmt.Sprintf("chunk%d", s.Index)
		out := fmt.Sprintf("block%d", s.Index)

		sb.WriteString(fmt.Sprintf("    %s[/\"%s\"/]\n", in, escapeLabel(s.Chunk)))
		sb.WriteString(fmt.Sprintf("    %s[[\"%s\"]]\n", out, s.Output))

		label := fmt.Sprintf("%s: %s", s.Selector, strings.Join(s.Transforms, ", "))
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", in, label, out))
		sb.WriteString(fmt.Sprintf("    %s --> fingerprint\n", out))
	}
	sb.WriteString(fmt.Sprintf("    fingerprint((\"%s\"))\n", t.Fingerprint))

	sb.WriteString("\n    %% Mode Styles\n")
	sb.WriteString("    classDef result fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
	sb.WriteString("    class fingerprint result;\n")
	if t.Mode == domain.ModeImplicit {
		sb.WriteString("    classDef implicit fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		for _, s := range t.Steps {
			sb.WriteString(fmt.Sprintf("    class chunk%d implicit;\n", s.Index))
		}
	}

	return sb.String()
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
