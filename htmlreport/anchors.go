// Copyright The awrparse Authors
// SPDX-License-Identifier: Apache-2.0

package htmlreport

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// FindAnchor resolves a named bookmark: first an <a name=...>, then any
// element with a matching id, then a case-insensitive substring match over
// all anchors. Results, including misses, are memoized for the lifetime of
// the Document.
func (d *Document) FindAnchor(name string) *html.Node {
	if cached, ok := d.anchorCache[name]; ok {
		return cached
	}

	anchor := d.findByAttr(atom.A, "name", name)
	if anchor == nil {
		anchor = d.findByAttr(0, "id", name)
	}
	if anchor == nil {
		anchor = d.fuzzyFindAnchor(name)
	}

	d.anchorCache[name] = anchor
	return anchor
}

// SectionAfterAnchor walks the siblings following an anchor and returns
// the first element of one of the wanted kinds, or a descendant of such a
// kind inside an intervening wrapper.
func (d *Document) SectionAfterAnchor(name string, kinds ...atom.Atom) *html.Node {
	anchor := d.FindAnchor(name)
	if anchor == nil {
		return nil
	}
	for cur := anchor.NextSibling; cur != nil; cur = cur.NextSibling {
		if cur.Type != html.ElementNode {
			continue
		}
		for _, kind := range kinds {
			if cur.DataAtom == kind {
				return cur
			}
			if child := findFirst(cur, kind); child != nil {
				return child
			}
		}
	}
	return nil
}

// TableAfterAnchor returns the first table following the named anchor.
func (d *Document) TableAfterAnchor(name string) *html.Node {
	return d.SectionAfterAnchor(name, atom.Table)
}

// TablesAfterAnchor returns every sibling-level table following the named
// anchor until the next anchor element, in document order. AWR reports
// repeat some sections (SQL ordered by ...) under one anchor family.
func (d *Document) TablesAfterAnchor(name string) []*html.Node {
	anchor := d.FindAnchor(name)
	if anchor == nil {
		return nil
	}
	var tables []*html.Node
	for cur := anchor.NextSibling; cur != nil; cur = cur.NextSibling {
		if cur.Type != html.ElementNode {
			continue
		}
		if cur.DataAtom == atom.A {
			if _, named := attr(cur, "name"); named {
				break
			}
		}
		if cur.DataAtom == atom.Table {
			tables = append(tables, cur)
			continue
		}
		tables = append(tables, findAll(cur, atom.Table)...)
	}
	return tables
}

// findByAttr returns the first element with the attribute equal to value.
// A zero kind matches every element.
func (d *Document) findByAttr(kind atom.Atom, key, value string) *html.Node {
	var walk func(*html.Node) *html.Node
	walk = func(n *html.Node) *html.Node {
		if n.Type == html.ElementNode && (kind == 0 || n.DataAtom == kind) {
			if v, ok := attr(n, key); ok && v == value {
				return n
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if found := walk(c); found != nil {
				return found
			}
		}
		return nil
	}
	return walk(d.root)
}

// fuzzyFindAnchor relaxes the lookup to bidirectional case-insensitive
// substring matching, first over <a name=...> anchors, then over ids.
// Anchor names drift between AWR releases; this catches renames like
// "topsql" vs "top_sql_elapsed".
func (d *Document) fuzzyFindAnchor(name string) *html.Node {
	want := strings.ToLower(name)

	match := func(candidate string) bool {
		c := strings.ToLower(candidate)
		return strings.Contains(c, want) || strings.Contains(want, c)
	}

	var byID *html.Node
	var walk func(*html.Node) *html.Node
	walk = func(n *html.Node) *html.Node {
		if n.Type == html.ElementNode {
			if isElement(n, atom.A) {
				if v, ok := attr(n, "name"); ok && v != "" && match(v) {
					return n
				}
			}
			if byID == nil {
				if v, ok := attr(n, "id"); ok && v != "" && match(v) {
					byID = n
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if found := walk(c); found != nil {
				return found
			}
		}
		return nil
	}
	if byName := walk(d.root); byName != nil {
		return byName
	}
	return byID
}
