// Package compose turns one raw guide document into the pieces the
// hosting page needs: rendered header, page title, annotated body and
// the chapters index.
package compose

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dgallion1/guideview/internal/markup"
	"github.com/dgallion1/guideview/internal/outline"
	"golang.org/x/net/html"
)

// Document is the raw input split once at render start.
type Document struct {
	Header string
	Body   string
}

// A standalone line of 40 or more hyphens separates the header block
// from the body. Without one the whole input is body.
var headerDelimiter = regexp.MustCompile(`(?m)^-{40,}[ \t]*\r?\n?`)

// Split divides raw input into header and body.
func Split(raw string) Document {
	loc := headerDelimiter.FindStringIndex(raw)
	if loc == nil {
		return Document{Body: raw}
	}
	return Document{
		Header: raw[:loc[0]],
		Body:   raw[loc[1]:],
	}
}

// Page is the assembled render output handed to the view layer.
type Page struct {
	Title      string          `json:"title"`
	HeaderHTML string          `json:"header_html"`
	BodyHTML   string          `json:"body_html"`
	IndexHTML  string          `json:"index_html,omitempty"`
	Entries    []outline.Entry `json:"outline,omitempty"`
}

// Assembler renders complete pages. Stateless across documents; every
// Assemble call gets a fresh walker, counter and anchor registry.
type Assembler struct {
	renderer     *markup.Renderer
	defaultTitle string
}

func NewAssembler(renderer *markup.Renderer, defaultTitle string) *Assembler {
	return &Assembler{renderer: renderer, defaultTitle: defaultTitle}
}

// Assemble runs the full render: split, render header, extract title,
// render body, number and anchor its headings, build the chapters
// index.
func (a *Assembler) Assemble(raw string) (*Page, error) {
	doc := Split(raw)

	var headerHTML string
	if strings.TrimSpace(doc.Header) != "" {
		var err error
		headerHTML, err = a.renderer.Render(doc.Header)
		if err != nil {
			return nil, fmt.Errorf("render header: %w", err)
		}
	}

	title := titleFrom(headerHTML)
	if title == "" {
		title = a.defaultTitle
	}

	bodyHTML, err := a.renderer.Render(doc.Body)
	if err != nil {
		return nil, fmt.Errorf("render body: %w", err)
	}

	walked, entries, err := outline.NewWalker().Walk(bodyHTML)
	if err != nil {
		return nil, err
	}

	indexHTML, err := outline.BuildChapters(a.renderer, entries)
	if err != nil {
		return nil, err
	}

	return &Page{
		Title:      title,
		HeaderHTML: headerHTML,
		BodyHTML:   walked,
		IndexHTML:  indexHTML,
		Entries:    entries,
	}, nil
}

// titleFrom extracts the first secondary heading of the rendered
// header fragment. The markdown pass bumps heading levels, so the
// document's top heading arrives as an h2.
func titleFrom(headerHTML string) string {
	if headerHTML == "" {
		return ""
	}
	doc, err := html.Parse(strings.NewReader(headerHTML))
	if err != nil {
		return ""
	}
	h2 := findFirst(doc, "h2")
	if h2 == nil {
		return ""
	}
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(h2)
	return strings.TrimSpace(buf.String())
}

func findFirst(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, tag); found != nil {
			return found
		}
	}
	return nil
}
