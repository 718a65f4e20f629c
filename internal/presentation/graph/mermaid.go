// Package graph draws a deck outline as a Mermaid flowchart.
package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/slideception/pkg/domain"
)

// Overlay marks a position in the deck.
type Overlay struct {
	// Current is the 1-based slide to highlight. Slides before it are drawn as visited.
	Current int
}

// GenerateMermaid produces a Mermaid flowchart of the deck in presentation order.
// Slides with an action are drawn as [[subroutines]], no-op slides as [rectangles].
// Node ids are positional since slide names need not be unique.
func GenerateMermaid(slides []domain.Slide, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for i, s := range slides {
		id := nodeID(i + 1)
		opener, closer := "[", "]"
		if !s.NoOp && s.Action != nil {
			opener, closer = "[[", "]]"
		}
		label := strings.ReplaceAll(s.Name, "\"", "'")
		fmt.Fprintf(&sb, "    %s%s\"%d. %s\"%s\n", id, opener, i+1, label, closer)
		if i > 0 {
			fmt.Fprintf(&sb, "    %s --> %s\n", nodeID(i), id)
		}
	}

	if overlay != nil && overlay.Current > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Black text keeps contrast on both light and dark themes.
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		for n := 1; n < overlay.Current && n <= len(slides); n++ {
			fmt.Fprintf(&sb, "    class %s visited;\n", nodeID(n))
		}
		if overlay.Current <= len(slides) {
			fmt.Fprintf(&sb, "    class %s current;\n", nodeID(overlay.Current))
		}
	}

	return sb.String()
}

func nodeID(n int) string {
	return fmt.Sprintf("s%d", n)
}
