// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package markdown

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// DefaultStyle is the glamour standard style used by the client preview.
const DefaultStyle = "dracula"

const (
	minWrapWidth  = 20
	fallbackWidth = 80
)

// TermRenderer renders markdown for a terminal of a given width. Building a
// glamour renderer is costly, so the last one is kept and rebuilt only when
// the width changes. TermRenderer belongs to the UI goroutine and is not
// safe for concurrent use.
type TermRenderer struct {
	style    string
	width    int
	renderer *glamour.TermRenderer
}

// NewTermRenderer returns a renderer using the named glamour standard style
// ("dark", "light", "dracula", "notty", ...).
func NewTermRenderer(style string) *TermRenderer {
	if style == "" {
		style = DefaultStyle
	}
	return &TermRenderer{style: style}
}

// Render converts content to styled terminal text wrapped at width columns.
// Empty content renders to an empty string; the caller shows its own
// placeholder. Whitespace-only content is rendered like any other.
func (r *TermRenderer) Render(content string, width int) (string, error) {
	if content == "" {
		return "", nil
	}

	tr, err := r.rendererFor(width)
	if err != nil {
		return "", err
	}

	out, err := tr.Render(content)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRender, err)
	}

	return strings.Trim(out, "\n"), nil
}

func (r *TermRenderer) rendererFor(width int) (*glamour.TermRenderer, error) {
	if width < minWrapWidth {
		width = fallbackWidth
	}

	if r.renderer != nil && r.width == width {
		return r.renderer, nil
	}

	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.style),
		glamour.WithWordWrap(width),
		glamour.WithPreservedNewLines(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRendererInit, err)
	}

	r.renderer = tr
	r.width = width

	return tr, nil
}
