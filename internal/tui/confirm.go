package tui

import "fmt"

// confirmModel asks before a note is deleted. The notes page owns the y/n
// keys; this only draws the box.
type confirmModel struct {
	title string
}

func (m confirmModel) View() string {
	return overlayBoxStyle.Render(fmt.Sprintf("Delete %q?\n\ny yes    n no", m.title))
}
