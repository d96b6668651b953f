// Copyright The awrparse Authors
// SPDX-License-Identifier: Apache-2.0

package htmlreport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeTableKeyValue(t *testing.T) {
	doc := mustParse(t, `<table>
		<tr><td>DB Name</td><td>PROD</td></tr>
		<tr><td>Instance</td><td>PROD1</td></tr>
		<tr><td>Host Name</td><td>dbhost01</td></tr>
	</table>`)

	s := AnalyzeTable(firstTable(t, doc))
	assert.True(t, s.IsKeyValue)
	assert.Equal(t, KindKeyValue, s.Kind)
	assert.Equal(t, 3, s.RowCount)
	assert.Equal(t, 2, s.ColumnCount)
}

func TestAnalyzeTableHeaderData(t *testing.T) {
	doc := mustParse(t, `<table>
		<tr><th>Event</th><th>Waits</th><th>Time(s)</th></tr>
		<tr><td>db file sequential read</td><td>1,000</td><td>50.1</td></tr>
		<tr><td>log file sync</td><td>200</td><td>10.2</td></tr>
		<tr><td>direct path read</td><td>300</td><td>5.0</td></tr>
	</table>`)

	s := AnalyzeTable(firstTable(t, doc))
	assert.True(t, s.HasHeader)
	assert.False(t, s.IsKeyValue)
	assert.Equal(t, KindHeaderData, s.Kind)
}

func TestAnalyzeTableFooter(t *testing.T) {
	doc := mustParse(t, `<table>
		<tr><th>A</th><th>B</th></tr>
		<tr><td>1</td><td>2</td></tr>
		<tr><td colspan="2">back to top</td></tr>
	</table>`)

	s := AnalyzeTable(firstTable(t, doc))
	assert.True(t, s.HasFooter)
}

func TestColumnTypeInference(t *testing.T) {
	doc := mustParse(t, `<table>
		<tr><td>db file sequential read</td><td>1,000</td><td>45.2%</td><td>00:10:05</td></tr>
		<tr><td>log file sync</td><td>200</td><td>12.1%</td><td>00:01:30</td></tr>
		<tr><td>direct path read</td><td>3,500</td><td>8.0%</td><td>00:00:12</td></tr>
	</table>`)

	s := AnalyzeTable(firstTable(t, doc))
	assert.Equal(t, []ColumnType{ColText, ColNumeric, ColPercentage, ColTime}, s.ColumnTypes)
}

func TestHasColumns(t *testing.T) {
	doc := mustParse(t, `<table>
		<tr><th></th><th>Snap Id</th><th>Begin Snap Time</th></tr>
		<tr><td>Begin Snap:</td><td>100</td><td>01-Jun-25 10:00:00</td></tr>
	</table>`)
	table := firstTable(t, doc)

	assert.True(t, HasColumns(table, []string{"Snap Id", "Snap Time"}))
	assert.False(t, HasColumns(table, []string{"Snap Id", "Sessions"}))
}
