package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	frameIndent = "  "
	frameWidth  = 54
)

var frameRule = frameIndent + strings.Repeat("─", frameWidth)

// renderPage frames body between two rules under a title. An empty body is
// drawn as a single dash so the frame keeps its shape.
func renderPage(title, body, hotKeys string) string {
	lines := []string{titleStyle.Render(title), frameRule, ""}

	if strings.TrimSpace(body) == "" {
		lines = append(lines, frameIndent+"-")
	} else {
		for _, line := range strings.Split(body, "\n") {
			lines = append(lines, frameIndent+line)
		}
	}
	lines = append(lines, "", frameRule)

	if strings.TrimSpace(hotKeys) != "" {
		lines = append(lines, frameIndent+helpStyle.Render(hotKeys))
	}
	lines = append(lines, helpStyle.Render(frameIndent+"ctrl+c: quit"))

	return strings.Join(lines, "\n")
}

// fitText truncates v to max display cells, marking the cut with "…".
func fitText(v string, max int) string {
	if max <= 0 || lipgloss.Width(v) <= max {
		return v
	}
	runes := []rune(v)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > max {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

func valueOrNA(v string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return "N/A"
}
