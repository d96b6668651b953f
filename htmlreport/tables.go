// Copyright The awrparse Authors
// SPDX-License-Identifier: Apache-2.0

package htmlreport

import (
	"fmt"
	"regexp"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/spathlavath/awrparse/commonutils"
)

// Row is one data row of a header table, keyed by header name. Row maps
// are a boundary representation only: the extractors convert them to typed
// entities immediately, iterating the header slice for deterministic
// order.
type Row map[string]string

// KeyValues is an insertion-ordered string map extracted from a two-column
// table. Order matters because field lookups fall back to substring
// matching and must be deterministic across runs.
type KeyValues struct {
	keys   []string
	values map[string]string
}

// Set records a pair, keeping first-occurrence order for duplicate keys.
func (kv *KeyValues) Set(key, value string) {
	if kv.values == nil {
		kv.values = make(map[string]string)
	}
	if _, exists := kv.values[key]; !exists {
		kv.keys = append(kv.keys, key)
	}
	kv.values[key] = value
}

// Get returns the value for an exact key.
func (kv *KeyValues) Get(key string) (string, bool) {
	v, ok := kv.values[key]
	return v, ok
}

// Keys returns the keys in extraction order.
func (kv *KeyValues) Keys() []string {
	return kv.keys
}

// Len returns the number of pairs.
func (kv *KeyValues) Len() int {
	return len(kv.keys)
}

// TableRows collects the tr elements of a table in document order.
func TableRows(table *html.Node) []*html.Node {
	if !isElement(table, atom.Table) {
		return nil
	}
	return findAll(table, atom.Tr)
}

// RowCells collects the td/th elements of a row in document order.
func RowCells(row *html.Node) []*html.Node {
	var cells []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.DataAtom == atom.Td || n.DataAtom == atom.Th) {
			cells = append(cells, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := row.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return cells
}

// CellText extracts a cell's text with whitespace collapsed.
func CellText(cell *html.Node) string {
	if cell == nil {
		return ""
	}
	return commonutils.CleanText(CollectText(cell))
}

// ParseHeaderTable splits a table into a header row and data rows. Header
// names are taken in first-occurrence order from the row at
// headerRowIndex; data cells beyond the header count get positional
// "column_N" fallback names; rows without cells are skipped.
func ParseHeaderTable(table *html.Node, headerRowIndex int) ([]string, []Row) {
	rows := TableRows(table)
	if len(rows) <= headerRowIndex {
		return nil, nil
	}

	var headers []string
	for _, cell := range RowCells(rows[headerRowIndex]) {
		headers = append(headers, CellText(cell))
	}

	var data []Row
	for _, row := range rows[headerRowIndex+1:] {
		cells := RowCells(row)
		if len(cells) == 0 {
			continue
		}
		rowData := make(Row, len(cells))
		for i, cell := range cells {
			if i < len(headers) {
				rowData[headers[i]] = CellText(cell)
			} else if len(headers) > 0 {
				rowData[fmt.Sprintf("column_%d", i)] = CellText(cell)
			}
		}
		if len(rowData) > 0 {
			data = append(data, rowData)
		}
	}
	return headers, data
}

// ParseKeyValueTable builds an ordered mapping from a two-column table.
// Trailing colons and spaces are trimmed from keys; rows with an empty key
// or value are skipped.
func ParseKeyValueTable(table *html.Node, keyCol, valCol int) *KeyValues {
	kv := &KeyValues{}
	if !isElement(table, atom.Table) {
		return kv
	}
	maxCol := keyCol
	if valCol > maxCol {
		maxCol = valCol
	}
	for _, row := range TableRows(table) {
		cells := RowCells(row)
		if len(cells) <= maxCol {
			continue
		}
		key := commonutils.CleanKey(CellText(cells[keyCol]))
		value := CellText(cells[valCol])
		if key == "" || value == "" {
			continue
		}
		kv.Set(key, value)
	}
	return kv
}

// FindTableByCaption returns the first table whose <caption> text, or
// whose nearest preceding heading element, matches the pattern. Compile
// patterns with (?i) for the case-insensitive matching AWR headings need.
func (d *Document) FindTableByCaption(pattern *regexp.Regexp) *html.Node {
	for _, table := range d.Tables() {
		if caption := findFirst(table, atom.Caption); caption != nil {
			if pattern.MatchString(CollectText(caption)) {
				return table
			}
		}
		// Only the nearest preceding element counts as the table's
		// heading; anything else in between breaks the association.
		for prev := table.PrevSibling; prev != nil; prev = prev.PrevSibling {
			if prev.Type != html.ElementNode {
				continue
			}
			if isHeading(prev) && pattern.MatchString(CollectText(prev)) {
				return table
			}
			break
		}
	}
	return nil
}
