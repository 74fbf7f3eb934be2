package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/physrisk/pkg/schema"
)

// Overlay marks entities on the graph, e.g. those that failed validation.
type Overlay struct {
	Failed []string
	Root   string
}

// GenerateMermaid produces a Mermaid flowchart of how entities compose.
// Each object appears once, reached from the given roots. Shapes:
// - Open object: {{Hexagon}}
// - Closed object: [Rectangle]
// Edges are labelled with the field name; list fields end in "[]" and
// optional ones in "?".
func GenerateMermaid(roots []*schema.Object, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	seen := make(map[*schema.Object]bool)
	var visit func(o *schema.Object)
	visit = func(o *schema.Object) {
		if seen[o] {
			return
		}
		seen[o] = true

		opener, closer := "[", "]"
		if o.Open() {
			opener, closer = "{{", "}}"
		}
		safeID := sanitizeMermaidID(o.Name())
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, o.Name(), closer))

		for _, f := range o.Fields() {
			child, label := nestedObject(f.Type, f.Name)
			if child == nil {
				continue
			}
			if !f.Required && !strings.HasSuffix(label, "?") {
				label += "?"
			}
			sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", safeID, label, sanitizeMermaidID(child.Name())))
			visit(child)
		}
	}
	for _, o := range roots {
		visit(o)
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef failed fill:#ffebee,stroke:#b71c1c,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef root fill:#e1f5fe,stroke:#01579b,stroke-width:4px,color:#000;\n")

		if overlay.Root != "" {
			sb.WriteString(fmt.Sprintf("    class %s root;\n", sanitizeMermaidID(overlay.Root)))
		}
		failedSet := make(map[string]bool)
		for _, name := range overlay.Failed {
			safeID := sanitizeMermaidID(name)
			if !failedSet[safeID] && safeID != "" {
				failedSet[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s failed;\n", safeID))
			}
		}
	}

	return sb.String()
}

// nestedObject unwraps containers around t and returns the object they hold.
func nestedObject(t schema.Type, label string) (*schema.Object, string) {
	switch typ := t.(type) {
	case *schema.Object:
		return typ, label
	case *schema.ListType:
		return nestedObject(typ.Elem(), label+"[]")
	case *schema.MapType:
		return nestedObject(typ.Elem(), label+"{}")
	case *schema.OptionalType:
		return nestedObject(typ.Inner(), label+"?")
	}
	return nil, label
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
