package utils

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderMarkdownPreview_AppliesWrapWidth(t *testing.T) {
	t.Parallel()

	markdown := `# Example Note

This is a sentence with enough words to require wrapping when rendered into a preview panel.
`

	const previewWidth = 20

	rendered := RenderMarkdownPreview(markdown, DefaultStyle, previewWidth)

	wrapWidth := previewWidth - previewHorizontalSpace
	for i, line := range strings.Split(rendered, "\n") {
		trimmed := strings.TrimRight(line, " ")
		if trimmed == "" {
			continue
		}

		if width := lipgloss.Width(trimmed); width > wrapWidth {
			t.Fatalf("line %d exceeds wrap width: got %d, want <= %d: %q", i, width, wrapWidth, trimmed)
		}
	}
}

func TestRenderMarkdownKeepsText(t *testing.T) {
	t.Parallel()

	rendered, err := RenderMarkdown("# Groceries\n\nmilk", "", 0)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(rendered, "Groceries") || !strings.Contains(rendered, "milk") {
		t.Fatalf("expected rendered output to keep the note text, got %q", rendered)
	}
}

func TestRenderMarkdownRejectsUnknownStyle(t *testing.T) {
	t.Parallel()

	if _, err := RenderMarkdown("# x", "no-such-style", 0); err == nil {
		t.Fatalf("expected an error for an unknown style")
	}
}

func TestRenderMarkdownPreviewReportsFailure(t *testing.T) {
	t.Parallel()

	if got := RenderMarkdownPreview("# x", "no-such-style", 40); got != "Error rendering markdown" {
		t.Fatalf("expected error text, got %q", got)
	}
}
