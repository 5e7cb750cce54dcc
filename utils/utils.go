package utils

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

const (
	DefaultStyle = "dracula"

	defaultWrapWidth       = 100
	previewHorizontalSpace = 4
)

// RenderMarkdown renders a note body for the terminal with the named
// glamour style. A width of zero uses the default wrap width.
func RenderMarkdown(body, style string, width int) (string, error) {
	if strings.TrimSpace(style) == "" {
		style = DefaultStyle
	}
	if width <= 0 {
		width = defaultWrapWidth
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
		glamour.WithColorProfile(termenv.ANSI256),
	)
	if err != nil {
		return "", err
	}

	return r.Render(body)
}

// RenderMarkdownPreview renders body to fit a preview pane w columns
// wide. Failures come back as text so the pane always has something to
// show.
func RenderMarkdownPreview(body, style string, w int) string {
	wrap := w - previewHorizontalSpace
	if wrap <= 0 {
		wrap = defaultWrapWidth
	}

	markdown, err := RenderMarkdown(body, style, wrap)
	if err != nil {
		return "Error rendering markdown"
	}
	return markdown
}
