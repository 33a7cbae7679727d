package markdown

import "errors"

var (
	// ErrRendererInit is returned when the terminal renderer cannot be
	// built for the requested style.
	ErrRendererInit = errors.New("markdown renderer init failed")
	// ErrRender wraps failures of a single conversion.
	ErrRender = errors.New("markdown render failed")
)
