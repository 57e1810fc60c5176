package markup

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

const admonitionAttr = "admonition"

// A paragraph whose first line starts with one of these keywords
// followed by "." or ":" becomes a styled callout box. The box consumes
// the paragraph only, never past the next blank line.
var admonitionPattern = regexp.MustCompile(`^(TIP|IMPORTANT|CAUTION|WARNING|NOTE|INFO|TODO)[.:]\s*`)

// admonitionStyle maps the keyword to its box style. CAUTION and
// IMPORTANT share the warning style, TIP is an info box, the rest style
// themselves.
func admonitionStyle(keyword string) string {
	switch keyword {
	case "CAUTION", "IMPORTANT":
		return "warning"
	case "TIP":
		return "info"
	default:
		return strings.ToLower(keyword)
	}
}

// admonitionTransformer tags admonition paragraphs and strips the
// keyword prefix from their first text segment, so the paragraph
// renderer only has to wrap the remaining inline content.
type admonitionTransformer struct{}

func (t *admonitionTransformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	source := reader.Source()
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		p, ok := n.(*ast.Paragraph)
		if !ok || p.Lines().Len() == 0 {
			return ast.WalkContinue, nil
		}
		seg := p.Lines().At(0)
		m := admonitionPattern.FindSubmatch(seg.Value(source))
		if m == nil {
			return ast.WalkContinue, nil
		}
		p.SetAttributeString(admonitionAttr, []byte(admonitionStyle(string(m[1]))))
		trimKeyword(p, seg.Start, len(m[0]))
		return ast.WalkSkipChildren, nil
	})
}

// trimKeyword shortens the paragraph's leading text segment so the
// matched keyword prefix is not rendered inside the box.
func trimKeyword(p *ast.Paragraph, lineStart, prefixLen int) {
	first, ok := p.FirstChild().(*ast.Text)
	if !ok || first.Segment.Start != lineStart {
		return
	}
	start := first.Segment.Start + prefixLen
	if start > first.Segment.Stop {
		start = first.Segment.Stop
	}
	first.Segment = first.Segment.WithStart(start)
}
