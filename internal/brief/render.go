package brief

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// RenderMarkdown styles the brief body for terminal display. It falls
// back to the raw markdown when rendering fails.
func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
