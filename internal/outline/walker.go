package outline

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Walker annotates the direct children of a rendered body fragment:
// recognized headings get an anchor id and a section number, and the
// two shallowest depths are collected for the chapters index.
type Walker struct {
	alloc     *Allocator
	counter   *Counter
	hierarchy Hierarchy
	collected []indexedHeading
}

// indexedHeading keeps the heading reference, not its id: a later
// collision can re-key an earlier heading, so ids are read only after
// the whole walk is done.
type indexedHeading struct {
	level   int
	heading *Heading
	label   string
}

func NewWalker() *Walker {
	return &Walker{
		alloc:   NewAllocator(),
		counter: NewCounter(),
	}
}

// Walk parses bodyHTML, mutates the heading nodes and returns the
// serialized result together with the collected index entries. Only
// direct children of the body are considered; nested headings (inside
// blockquotes, admonition boxes and the like) are not sections.
func (w *Walker) Walk(bodyHTML string) (string, []Entry, error) {
	doc, err := html.Parse(strings.NewReader(bodyHTML))
	if err != nil {
		return "", nil, fmt.Errorf("parse body html: %w", err)
	}
	body := findBody(doc)
	if body == nil {
		return bodyHTML, nil, nil
	}

	for n := body.FirstChild; n != nil; n = n.NextSibling {
		if n.Type != html.ElementNode {
			continue
		}
		depth := DepthOf(n.Data)
		if depth == DepthNone {
			continue
		}
		w.visit(n, depth)
	}

	var buf strings.Builder
	for n := body.FirstChild; n != nil; n = n.NextSibling {
		if err := html.Render(&buf, n); err != nil {
			return "", nil, fmt.Errorf("serialize body html: %w", err)
		}
	}

	var entries []Entry
	for _, c := range w.collected {
		entries = append(entries, Entry{Level: c.level, ID: c.heading.ID, Label: c.label})
	}
	return buf.String(), entries, nil
}

func (w *Walker) visit(n *html.Node, depth Depth) {
	h := &Heading{Node: n, Text: textContent(n)}

	// Truncate the open chain to this heading's ancestors and append
	// self. A fresh slice every time: registered hierarchies must never
	// share a backing array with the live one.
	keep := int(depth) - 1
	if keep > len(w.hierarchy) {
		keep = len(w.hierarchy)
	}
	hier := make(Hierarchy, 0, keep+1)
	hier = append(hier, w.hierarchy[:keep]...)
	hier = append(hier, h)
	w.hierarchy = hier

	w.alloc.Allocate(hier)
	label := h.Text
	number := w.counter.NumberFor(len(hier))
	prependText(n, number+" ")

	if depth == Depth1 || depth == Depth2 {
		w.collected = append(w.collected, indexedHeading{level: int(depth), heading: h, label: label})
	}
}

// prependText inserts a text node in front of the heading's existing
// content.
func prependText(n *html.Node, s string) {
	t := &html.Node{Type: html.TextNode, Data: s}
	if n.FirstChild != nil {
		n.InsertBefore(t, n.FirstChild)
	} else {
		n.AppendChild(t)
	}
}
