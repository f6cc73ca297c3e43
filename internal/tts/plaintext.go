package tts

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.Table),
)

// Flatten strips markdown structure from note content so the synthesized
// speech reads the text, not the markup. Block boundaries become sentence
// breaks; inline emphasis, links and code fences are reduced to their
// text content.
func Flatten(source string) string {
	src := []byte(source)
	root := markdown.Parser().Parse(text.NewReader(src))

	var blocks []string
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading, *ast.Paragraph, *ast.ListItem:
			if block := blockText(n, src); block != "" {
				blocks = append(blocks, block)
			}
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock:
			var sb strings.Builder
			for i := 0; i < node.Lines().Len(); i++ {
				line := node.Lines().At(i)
				sb.Write(line.Value(src))
			}
			if code := strings.TrimSpace(sb.String()); code != "" {
				blocks = append(blocks, code)
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	return strings.Join(blocks, ". ")
}

// blockText collects the inline text content under a block node.
func blockText(n ast.Node, src []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if txt, ok := child.(*ast.Text); ok {
			sb.Write(txt.Segment.Value(src))
			if txt.SoftLineBreak() || txt.HardLineBreak() {
				sb.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}
