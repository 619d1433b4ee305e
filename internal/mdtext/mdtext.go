// Package mdtext reduces Markdown to the plain prose the readability
// segmenter consumes.
package mdtext

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Text reduces Markdown source to plain text. Inline markup is unwrapped,
// code blocks and raw HTML are dropped, and block boundaries become
// paragraph breaks so headings and list items form their own sentences
// downstream.
func Text(source []byte) string {
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))
	var blocks []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *ast.Paragraph, *ast.Heading, *ast.TextBlock:
			if s := ExtractPlainText(n, source); s != "" {
				blocks = append(blocks, s)
			}
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return strings.Join(blocks, "\n\n")
}

// ExtractPlainText returns the text content of node with inline markup
// removed. Soft and hard line breaks become single spaces.
func ExtractPlainText(node ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := n.(*ast.Text); ok {
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}
