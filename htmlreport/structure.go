// Copyright The awrparse Authors
// SPDX-License-Identifier: Apache-2.0

package htmlreport

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// TableKind classifies a table's overall shape, which decides the parsing
// strategy: key/value extraction, header+data extraction, or neither.
type TableKind string

const (
	KindKeyValue     TableKind = "key_value"
	KindHeaderData   TableKind = "header_data"
	KindUnstructured TableKind = "unstructured"
)

// ColumnType is the inferred content type of one column.
type ColumnType string

const (
	ColNumeric    ColumnType = "numeric"
	ColPercentage ColumnType = "percentage"
	ColTime       ColumnType = "time"
	ColText       ColumnType = "text"
	ColEmpty      ColumnType = "empty"
)

// TableStructure summarizes the shape of a table.
type TableStructure struct {
	RowCount    int
	ColumnCount int
	HasHeader   bool
	HasFooter   bool
	IsKeyValue  bool
	Kind        TableKind
	ColumnTypes []ColumnType
}

// typeSampleRows caps how many rows are sampled per column when inferring
// column types.
const typeSampleRows = 5

var (
	numericCellRe = regexp.MustCompile(`^[\d,.\-]+$`)
	timeCellRes   = []*regexp.Regexp{
		regexp.MustCompile(`\d+:\d+:\d+`),
		regexp.MustCompile(`\d+\.\d+s`),
		regexp.MustCompile(`\d+ms`),
	}
)

// AnalyzeTable computes the structural profile of a table: row/column
// counts, header/footer presence, key-value shape (>70% of rows with
// exactly two cells) and per-column content types sampled over the first
// rows.
func AnalyzeTable(table *html.Node) TableStructure {
	rows := TableRows(table)
	s := TableStructure{
		RowCount:    len(rows),
		ColumnCount: maxColumnCount(rows),
		HasHeader:   hasHeaderRow(rows),
		HasFooter:   hasFooterRow(rows),
		IsKeyValue:  isKeyValueShape(rows),
	}

	switch {
	case s.IsKeyValue:
		s.Kind = KindKeyValue
	case s.HasHeader:
		s.Kind = KindHeaderData
	default:
		s.Kind = KindUnstructured
	}

	s.ColumnTypes = inferColumnTypes(rows, s.ColumnCount)
	return s
}

// HasColumns reports whether the table's first row contains every wanted
// column name, by bidirectional case-insensitive containment. Used to
// recognize the snapshot table by its column signature when anchors are
// missing.
func HasColumns(table *html.Node, names []string) bool {
	rows := TableRows(table)
	if len(rows) == 0 {
		return false
	}
	var headerTexts []string
	for _, cell := range RowCells(rows[0]) {
		// Blank label cells would substring-match anything.
		if text := strings.ToLower(CellText(cell)); text != "" {
			headerTexts = append(headerTexts, text)
		}
	}
	for _, name := range names {
		want := strings.ToLower(name)
		found := false
		for _, have := range headerTexts {
			if strings.Contains(have, want) || strings.Contains(want, have) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func maxColumnCount(rows []*html.Node) int {
	maxCols := 0
	for _, row := range rows {
		if n := len(RowCells(row)); n > maxCols {
			maxCols = n
		}
	}
	return maxCols
}

// hasHeaderRow: the first row is a header when it is mostly th cells.
func hasHeaderRow(rows []*html.Node) bool {
	if len(rows) == 0 {
		return false
	}
	thCount, tdCount := 0, 0
	for _, cell := range RowCells(rows[0]) {
		if cell.DataAtom == atom.Th {
			thCount++
		} else {
			tdCount++
		}
	}
	return thCount > tdCount
}

// hasFooterRow: a final single cell spanning more than one column is a
// summary footer.
func hasFooterRow(rows []*html.Node) bool {
	if len(rows) < 2 {
		return false
	}
	cells := RowCells(rows[len(rows)-1])
	if len(cells) != 1 {
		return false
	}
	span, ok := attr(cells[0], "colspan")
	if !ok {
		return false
	}
	n, err := strconv.Atoi(span)
	return err == nil && n > 1
}

func isKeyValueShape(rows []*html.Node) bool {
	if len(rows) < 2 {
		return false
	}
	twoCell := 0
	for _, row := range rows {
		if len(RowCells(row)) == 2 {
			twoCell++
		}
	}
	return float64(twoCell)/float64(len(rows)) > 0.7
}

func inferColumnTypes(rows []*html.Node, columnCount int) []ColumnType {
	if columnCount == 0 {
		return nil
	}
	sample := rows
	if len(sample) > typeSampleRows {
		sample = sample[:typeSampleRows]
	}

	types := make([]ColumnType, columnCount)
	for col := 0; col < columnCount; col++ {
		var values []string
		for _, row := range sample {
			cells := RowCells(row)
			if col < len(cells) {
				if text := CellText(cells[col]); text != "" {
					values = append(values, text)
				}
			}
		}
		types[col] = detectColumnType(values)
	}
	return types
}

func detectColumnType(values []string) ColumnType {
	if len(values) == 0 {
		return ColEmpty
	}

	numeric := 0
	for _, v := range values {
		if numericCellRe.MatchString(strings.ReplaceAll(v, " ", "")) {
			numeric++
		}
	}
	if float64(numeric)/float64(len(values)) > 0.7 {
		return ColNumeric
	}

	percentage := 0
	for _, v := range values {
		if strings.Contains(v, "%") {
			percentage++
		}
	}
	if float64(percentage)/float64(len(values)) > 0.5 {
		return ColPercentage
	}

	timed := 0
	for _, v := range values {
		for _, re := range timeCellRes {
			if re.MatchString(v) {
				timed++
				break
			}
		}
	}
	if float64(timed)/float64(len(values)) > 0.5 {
		return ColTime
	}

	return ColText
}
