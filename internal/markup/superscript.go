package markup

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Superscript renders ^text^ as <sup>text</sup>. The span must close on
// the same line and may not contain whitespace.
var Superscript = &superscriptExtension{}

type superscriptExtension struct{}

func (e *superscriptExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithInlineParsers(util.Prioritized(&superscriptParser{}, 600)),
	)
	m.Renderer().AddOptions(
		renderer.WithNodeRenderers(util.Prioritized(&superscriptRenderer{}, 600)),
	)
}

var kindSuperscript = ast.NewNodeKind("Superscript")

type superscriptNode struct {
	ast.BaseInline
}

func (n *superscriptNode) Kind() ast.NodeKind { return kindSuperscript }

func (n *superscriptNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

type superscriptParser struct{}

func (p *superscriptParser) Trigger() []byte { return []byte{'^'} }

func (p *superscriptParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, seg := block.PeekLine()
	stop := -1
	for i := 1; i < len(line); i++ {
		c := line[i]
		if c == '^' {
			stop = i
			break
		}
		if c == ' ' || c == '\t' {
			return nil
		}
	}
	if stop < 2 {
		return nil
	}
	n := &superscriptNode{}
	n.AppendChild(n, ast.NewTextSegment(text.NewSegment(seg.Start+1, seg.Start+stop)))
	block.Advance(stop + 1)
	return n
}

type superscriptRenderer struct{}

func (r *superscriptRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(kindSuperscript, r.render)
}

func (r *superscriptRenderer) render(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		w.WriteString("<sup>")
	} else {
		w.WriteString("</sup>")
	}
	return ast.WalkContinue, nil
}
