package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/notes"
	"github.com/charmbracelet/lipgloss"
)

const noteDateLayout = "Jan 2, 2006"

func (p *NotesPage) View() string {
	sidebar := p.viewSidebar()
	panel := p.viewPanel()

	sw := sidebarWidth
	if p.collapsed {
		sw = collapsedSidebarWidth
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Width(sw).Render(sidebar),
		panelStyle.Width(p.panelWidth()).Render(panel),
	)

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n\n")
	if p.confirming {
		b.WriteString(p.confirm.View())
		b.WriteString("\n")
	}
	if p.status != "" {
		if p.statusErr {
			b.WriteString(errorStyle.Render(p.status))
		} else {
			b.WriteString(okStyle.Render(p.status))
		}
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(p.help()))

	return b.String()
}

func (p *NotesPage) viewSidebar() string {
	var b strings.Builder

	if p.collapsed {
		b.WriteString(titleStyle.Render("+"))
	} else {
		b.WriteString(titleStyle.Render("Notes"))
		b.WriteString(mutedStyle.Render("   n: new"))
		b.WriteString("\n")
		b.WriteString(p.search.View())
	}
	b.WriteString("\n\n")

	if placeholder := p.state.ListPlaceholder(); placeholder != "" {
		if !p.collapsed {
			b.WriteString(mutedStyle.Render(placeholder))
		}
		return b.String()
	}

	selected := p.state.SelectedIndex()
	for i, note := range p.state.Filtered() {
		marker := "  "
		style := lipgloss.NewStyle()
		if i == selected {
			marker = "▌ "
			style = selectedItemStyle
		}

		if p.collapsed {
			b.WriteString(style.Render(marker + "▤"))
			b.WriteString("\n")
			continue
		}

		b.WriteString(style.Render(marker + fitText(note.DisplayTitle(), sidebarWidth-4)))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("  " + note.CreatedAt.Local().Format(noteDateLayout)))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (p *NotesPage) viewPanel() string {
	note, ok := p.state.Selected()
	if !ok {
		heading, hint := p.state.PanelPlaceholder()
		return "\n" + titleStyle.Render(heading) + "\n" + mutedStyle.Render(hint)
	}

	var b strings.Builder
	if p.focus == focusTitle {
		b.WriteString(p.title.View())
	} else {
		b.WriteString(titleStyle.Render(fitText(note.DisplayTitle(), p.panelWidth())))
	}
	b.WriteString("\n")
	b.WriteString(p.viewModeTabs())
	b.WriteString("\n\n")

	if p.state.Mode() == notes.ModeEdit {
		b.WriteString(p.editor.View())
		return b.String()
	}

	b.WriteString(p.preview(note.ID, note.Content))
	return b.String()
}

func (p *NotesPage) viewModeTabs() string {
	edit, preview := inactiveTabStyle, inactiveTabStyle
	if p.state.Mode() == notes.ModeEdit {
		edit = activeTabStyle
	} else {
		preview = activeTabStyle
	}
	return edit.Render("Edit") + preview.Render("Preview") + mutedStyle.Render("  d: delete")
}

// preview renders content as terminal markdown. The last rendering is
// reused while the note, its content and the width stay the same.
func (p *NotesPage) preview(id, content string) string {
	if content == "" {
		return mutedStyle.Render(notes.MsgEmptyContent)
	}

	width := p.panelWidth()
	cacheKey := fmt.Sprintf("%s|%d|%s", id, width, content)
	if cacheKey == p.previewKey {
		return p.previewOut
	}

	out, err := p.renderer.Render(content, width)
	if err != nil {
		p.logger.Err(err).Str("func", "*NotesPage.preview").Str("id", id).Msg("error rendering markdown")
		out = content
	}

	p.previewKey = cacheKey
	p.previewOut = out
	return out
}

func (p *NotesPage) help() string {
	switch p.focus {
	case focusSearch:
		return "type to search │ enter/esc: back to list"
	case focusTitle:
		return "enter/esc: save title"
	case focusEditor:
		return "ctrl+s: save │ esc: back to list │ ctrl+y: copy"
	}
	return "↑/↓: select │ /: search │ n: new │ e: edit │ p: preview │ r: rename │ d: delete │ ctrl+b: collapse │ ctrl+y: copy │ ctrl+e: export html"
}
