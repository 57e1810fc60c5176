// Package outline numbers, anchors and indexes the section headings of
// a rendered guide body. One Walker (with its own Allocator and
// Counter) is used per document render; nothing here is shared across
// renders.
package outline

import (
	"strings"

	"golang.org/x/net/html"
)

// Depth classifies a body-level tag among the four recognized heading
// depths. The markdown pass reserves h1/h2 for page chrome, so h3 is
// the shallowest section heading.
type Depth int

const (
	DepthNone Depth = iota
	Depth1
	Depth2
	Depth3
	Depth4
)

// DepthOf maps a tag name to its recognized depth, or DepthNone.
func DepthOf(tag string) Depth {
	switch tag {
	case "h3":
		return Depth1
	case "h4":
		return Depth2
	case "h5":
		return Depth3
	case "h6":
		return Depth4
	}
	return DepthNone
}

// Heading is one recognized section heading in the parsed body tree.
type Heading struct {
	Node *html.Node
	ID   string
	Text string
}

// SetID records the heading's identifier and writes it into the DOM
// node's id attribute.
func (h *Heading) SetID(id string) {
	h.ID = id
	if h.Node == nil {
		return
	}
	for i, attr := range h.Node.Attr {
		if attr.Key == "id" {
			h.Node.Attr[i].Val = id
			return
		}
	}
	h.Node.Attr = append(h.Node.Attr, html.Attribute{Key: "id", Val: id})
}

// Hierarchy is the chain of currently-open ancestor headings down to
// the current one. It is rebuilt (never aliased) on every heading so
// registered hierarchies stay immutable.
type Hierarchy []*Heading

// Entry is one chapters-index item, collected for depths 1 and 2 only.
type Entry struct {
	Level int    `json:"level"`
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Renderer turns markdown text into an HTML fragment. Satisfied by
// markup.Renderer.
type Renderer interface {
	Render(src string) (string, error)
}

// textContent flattens the text below a node.
func textContent(n *html.Node) string {
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
	extract(n)
	return strings.TrimSpace(buf.String())
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
