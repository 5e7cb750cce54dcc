package parser

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const Untitled = "Untitled"

// Title is the first line of a note body as plain text, with markdown
// markers such as heading hashes and emphasis removed.
func Title(body string) string {
	first, _, _ := strings.Cut(body, "\n")
	title := plainText(strings.TrimRight(first, "\r"))
	if title == "" {
		return Untitled
	}
	return title
}

// Excerpt is the plain text of the first block after the title line,
// cut to at most limit runes. It is empty when there is nothing else.
func Excerpt(body string, limit int) string {
	_, rest, found := strings.Cut(body, "\n")
	if !found {
		return ""
	}

	excerpt := plainText(rest)
	if limit > 0 {
		if runes := []rune(excerpt); len(runes) > limit {
			excerpt = strings.TrimSpace(string(runes[:limit])) + "…"
		}
	}
	return excerpt
}

// plainText returns the text of the first block in src.
func plainText(src string) string {
	source := []byte(src)
	document := goldmark.DefaultParser().Parse(text.NewReader(source))

	var b strings.Builder
	ast.Walk(
		document,
		func(n ast.Node, entering bool) (ast.WalkStatus, error) {
			if !entering || n.Kind() == ast.KindDocument {
				return ast.WalkContinue, nil
			}
			switch n.(type) {
			case *ast.Heading, *ast.Paragraph, *ast.TextBlock:
				writeInline(&b, n, source)
			case *ast.FencedCodeBlock, *ast.CodeBlock:
				lines := n.Lines()
				for i := 0; i < lines.Len(); i++ {
					seg := lines.At(i)
					b.Write(seg.Value(source))
				}
			default:
				return ast.WalkContinue, nil
			}
			if strings.TrimSpace(b.String()) == "" {
				return ast.WalkSkipChildren, nil
			}
			return ast.WalkStop, nil
		},
	)

	return strings.Join(strings.Fields(b.String()), " ")
}

func writeInline(b *strings.Builder, n ast.Node, source []byte) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Text:
			b.Write(c.Segment.Value(source))
			if c.SoftLineBreak() || c.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(c.Value)
		case *ast.AutoLink:
			b.Write(c.Label(source))
		case *ast.RawHTML:
		default:
			writeInline(b, c, source)
		}
	}
}
