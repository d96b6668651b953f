// Copyright The awrparse Authors
// SPDX-License-Identifier: Apache-2.0

// Package htmlreport is the generic navigation toolkit the AWR parsers are
// built on: DOM parsing, table extraction, anchor/caption lookup and
// structural table classification. It knows nothing about Oracle releases;
// the per-version parsers supply the anchor names and heading patterns.
package htmlreport // import "github.com/spathlavath/awrparse/htmlreport"

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document wraps a parsed HTML tree together with the per-document lookup
// caches. A Document is built once per parse call and discarded with it;
// it is not safe for concurrent use.
type Document struct {
	root *html.Node

	tables      []*html.Node
	tablesBuilt bool
	anchorCache map[string]*html.Node
}

// Parse builds a Document from raw HTML. x/net/html repairs malformed
// markup rather than rejecting it, so errors are limited to truly broken
// input.
func Parse(content string) (*Document, error) {
	root, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return nil, err
	}
	return &Document{root: root, anchorCache: make(map[string]*html.Node)}, nil
}

// Root returns the document root node.
func (d *Document) Root() *html.Node {
	return d.root
}

// Tables returns every table element in document order. The slice is
// computed once and reused across section lookups.
func (d *Document) Tables() []*html.Node {
	if !d.tablesBuilt {
		d.tables = findAll(d.root, atom.Table)
		d.tablesBuilt = true
	}
	return d.tables
}

// Title returns the trimmed <title> text, or "".
func (d *Document) Title() string {
	if n := findFirst(d.root, atom.Title); n != nil {
		return CollectText(n)
	}
	return ""
}

// FirstHeading returns the text of the first <h1>, or "".
func (d *Document) FirstHeading() string {
	if n := findFirst(d.root, atom.H1); n != nil {
		return CollectText(n)
	}
	return ""
}

// CollectText extracts the visible text of a subtree with single spaces
// between fragments, skipping script and style blocks.
func CollectText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				if sb.Len() > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(text)
			}
		}
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Script, atom.Style, atom.Noscript:
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// findAll collects descendant elements of the given kind in document order.
func findAll(n *html.Node, a atom.Atom) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == a {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

// findFirst returns the first descendant element of the given kind.
func findFirst(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, a); found != nil {
			return found
		}
	}
	return nil
}

// attr returns the value of the named attribute, if present.
func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// isElement reports whether n is an element node of the given kind.
func isElement(n *html.Node, a atom.Atom) bool {
	return n != nil && n.Type == html.ElementNode && n.DataAtom == a
}

// isHeading reports whether n is an h1..h6 element.
func isHeading(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	switch n.DataAtom {
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return true
	}
	return false
}
