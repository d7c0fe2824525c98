package graph

import (
	"fmt"
	"strings"

	"github.com/lime816/whatsappsuitetest-sub002/internal/compiler"
	"github.com/lime816/whatsappsuitetest-sub002/pkg/domain"
)

// GraphOverlay contains editor and validation state to visualize on the graph.
type GraphOverlay struct {
	InvalidScreens []string
	ActiveScreen   string
}

// GenerateMermaid produces a Mermaid flowchart syntax string from a list of screens.
// It applies semantic styling:
// - Entry screen: ((Circle))
// - Terminal screen (complete footer): ([Stadium])
// - Default: [Rectangle]
// Edges follow the derived routing model. Navigate footers pointing at the
// placeholder screen are drawn dashed to an "unset" node.
func GenerateMermaid(screens []domain.Screen, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for i, s := range screens {
		safeID := sanitizeMermaidID(s.ID)

		opener, closer := "[", "]"
		switch {
		case i == 0:
			opener, closer = "((", "))"
		case completes(s):
			opener, closer = "([", "])"
		}

		label := s.ID
		if s.Title != "" && s.Title != s.ID {
			label = fmt.Sprintf("%s <br/> %s", s.Title, s.ID)
		}
		label = strings.ReplaceAll(label, "\"", "'")
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, label, closer))
	}

	unset := false
	for _, e := range compiler.Edges(compiler.Routing(screens)) {
		from, to := sanitizeMermaidID(e[0]), sanitizeMermaidID(e[1])
		if e[1] == domain.UnsetScreen {
			unset = true
			sb.WriteString(fmt.Sprintf("    %s -.-> %s\n", from, to))
			continue
		}
		sb.WriteString(fmt.Sprintf("    %s --> %s\n", from, to))
	}
	if unset {
		sb.WriteString(fmt.Sprintf("    %s{{\"unset\"}}\n", sanitizeMermaidID(domain.UnsetScreen)))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef invalid fill:#ffebee,stroke:#c62828,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef active fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, id := range overlay.InvalidScreens {
			safeID := sanitizeMermaidID(id)
			if !seen[safeID] && safeID != "" {
				seen[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s invalid;\n", safeID))
			}
		}
		if overlay.ActiveScreen != "" {
			sb.WriteString(fmt.Sprintf("    class %s active;\n", sanitizeMermaidID(overlay.ActiveScreen)))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}

func completes(s domain.Screen) bool {
	f, ok := s.Footer()
	return ok && f.Action == domain.ActionComplete
}
