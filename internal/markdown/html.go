package markdown

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

// HTMLRenderer converts markdown to HTML with GitHub flavoured extensions
// (tables, strikethrough, task lists, autolinks). Raw HTML in the source is
// not passed through. It is safe for concurrent use.
type HTMLRenderer struct {
	md goldmark.Markdown
}

// NewHTMLRenderer returns a ready HTMLRenderer.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(goldmarkhtml.WithHardWraps()),
		),
	}
}

// Fragment renders content to an HTML fragment.
func (r *HTMLRenderer) Fragment(content string) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(content), &buf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}
	return buf.Bytes(), nil
}

// Document renders a complete HTML page with title as <title> and first
// heading, followed by the rendered content.
func (r *HTMLRenderer) Document(title, content string) ([]byte, error) {
	body, err := r.Fragment(content)
	if err != nil {
		return nil, err
	}

	escaped := html.EscapeString(title)

	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&buf, "<title>%s</title>\n", escaped)
	buf.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&buf, "<h1>%s</h1>\n", escaped)
	buf.Write(body)
	buf.WriteString("</body>\n</html>\n")

	return buf.Bytes(), nil
}
