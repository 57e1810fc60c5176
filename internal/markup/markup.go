// Package markup renders guide markdown into HTML fragments.
//
// The pipeline is goldmark with autolink, strikethrough, table and
// superscript extensions, plus block-level overrides: code blocks are
// wrapped in brush containers, headings are emitted one level deeper
// than written (h1/h2 belong to the page chrome), and paragraphs are
// checked against an ordered rule list for admonitions and footnotes.
package markup

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	ghtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// Renderer converts markdown source text to an HTML fragment.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer builds the shared goldmark pipeline. A single Renderer is
// safe for concurrent use; all per-document state lives elsewhere.
func NewRenderer() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Linkify,
			extension.Strikethrough,
			extension.Table,
			Superscript,
		),
		goldmark.WithParserOptions(
			parser.WithASTTransformers(
				util.Prioritized(&admonitionTransformer{}, 100),
			),
		),
		goldmark.WithRendererOptions(
			// Footnote markers arrive as raw <sup> markup and must
			// survive into the output for the footnote passes.
			ghtml.WithUnsafe(),
			renderer.WithNodeRenderers(
				util.Prioritized(&blockRenderer{}, 200),
			),
		),
	)
	return &Renderer{md: md}
}

// Render converts markdown to HTML and applies the footnote passes.
func (r *Renderer) Render(src string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return expandFootnotes(buf.String()), nil
}
