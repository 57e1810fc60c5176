package markup

import (
	"fmt"
	stdhtml "html"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// blockRenderer overrides goldmark's default rendering for headings,
// code blocks and paragraphs.
type blockRenderer struct{}

func (r *blockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindHeading, r.renderHeading)
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCodeBlock)
	reg.Register(ast.KindCodeBlock, r.renderCodeBlock)
	reg.Register(ast.KindParagraph, r.renderParagraph)
}

// renderHeading emits headings one level deeper than written, so a
// level-2 markdown heading becomes an <h3>. h1 and h2 are reserved for
// the hosting page.
func (r *blockRenderer) renderHeading(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Heading)
	level := n.Level + 1
	if level > 6 {
		level = 6
	}
	if entering {
		fmt.Fprintf(w, "<h%d>", level)
	} else {
		fmt.Fprintf(w, "</h%d>\n", level)
	}
	return ast.WalkContinue, nil
}

func (r *blockRenderer) renderFencedCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.FencedCodeBlock)
	lang := ""
	if l := n.Language(source); l != nil {
		lang = string(l)
	}
	writeBrushBlock(w, source, n, lang)
	return ast.WalkSkipChildren, nil
}

func (r *blockRenderer) renderCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	writeBrushBlock(w, source, node, "")
	return ast.WalkSkipChildren, nil
}

// writeBrushBlock wraps code in the styling container the front-end
// highlighter picks up.
func writeBrushBlock(w util.BufWriter, source []byte, n ast.Node, lang string) {
	fmt.Fprintf(w, `<div class="code"><pre class="brush: %s">`, BrushFor(lang))
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		w.WriteString(stdhtml.EscapeString(string(line.Value(source))))
	}
	w.WriteString("</pre></div>\n")
}

// renderParagraph dispatches on the paragraph rules. Admonitions were
// already classified by the AST transformer; everything else is a plain
// paragraph (footnote definitions are rewritten after rendering, see
// footnotes.go for the full rule table).
func (r *blockRenderer) renderParagraph(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Paragraph)
	if style, ok := n.AttributeString(admonitionAttr); ok {
		if entering {
			fmt.Fprintf(w, `<div class="%s"><p>`, style)
		} else {
			w.WriteString("</p></div>\n")
		}
		return ast.WalkContinue, nil
	}
	if entering {
		w.WriteString("<p>")
	} else {
		w.WriteString("</p>\n")
	}
	return ast.WalkContinue, nil
}
