// Package markdown renders note content. [TermRenderer] produces ANSI text
// for the terminal preview panel with glamour; [HTMLRenderer] produces HTML
// for the export endpoint with goldmark.
package markdown
