// Copyright The awrparse Authors
// SPDX-License-Identifier: Apache-2.0

package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spathlavath/awrparse/models"
)

func TestOracle12cCanParse(t *testing.T) {
	p := NewOracle12cParser(zap.NewNop())

	assert.True(t, p.CanParse("Oracle Database 12c Release 12.1.0.2.0"))
	assert.True(t, p.CanParse("version 12.2.0.1.0"))
	assert.False(t, p.CanParse("Oracle Database 11g Release 11.2.0.4.0"))
}

func TestOracle12cDBInfoPDB(t *testing.T) {
	p := NewOracle12cParser(zap.NewNop())
	doc := mustDocument(t, `<html><body>
		<a name="dbinfo"></a>
		<table>
		<tr><td>DB Name</td><td>CDB1</td></tr>
		<tr><td>Instance</td><td>cdb1</td></tr>
		<tr><td>Container</td><td>PDB</td></tr>
		<tr><td>Con Name</td><td>SALESPDB</td></tr>
		</table>
	</body></html>`)

	info, err := p.ParseDBInfo(doc)
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, models.InstancePDB, info.InstanceType)
	assert.Equal(t, "SALESPDB", info.ContainerName)
	assert.False(t, info.IsRAC)
}

func TestOracle12cDBInfoCDB(t *testing.T) {
	p := NewOracle12cParser(zap.NewNop())
	doc := mustDocument(t, `<html><body>
		<a name="dbinfo"></a>
		<table>
		<tr><td>DB Name</td><td>CDB1</td></tr>
		<tr><td>Instance</td><td>cdb1</td></tr>
		<tr><td>CDB</td><td>YES</td></tr>
		</table>
	</body></html>`)

	info, err := p.ParseDBInfo(doc)
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, models.InstanceCDB, info.InstanceType)
	assert.Empty(t, info.ContainerName, "a bare yes flag names no container")
}

func TestOracle12cRACOutranksContainer(t *testing.T) {
	p := NewOracle12cParser(zap.NewNop())
	doc := mustDocument(t, `<html><body>
		<a name="dbinfo"></a>
		<table>
		<tr><td>DB Name</td><td>CDB1</td></tr>
		<tr><td>Instance</td><td>cdb12</td></tr>
		<tr><td>RAC</td><td>YES</td></tr>
		<tr><td>CDB</td><td>YES</td></tr>
		</table>
	</body></html>`)

	info, err := p.ParseDBInfo(doc)
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, models.InstanceRAC, info.InstanceType)
	assert.True(t, info.IsRAC)
	assert.Equal(t, 12, info.InstanceNumber, "trailing digits of the instance name")
}

func TestOracle12cWaitClassColumn(t *testing.T) {
	p := NewOracle12cParser(zap.NewNop())
	doc := mustDocument(t, `<html><body>
		<a name="topevents"></a>
		<table>
		<tr><th>Event</th><th>Waits</th><th>Total Wait Time (sec)</th><th>Wait Avg(ms)</th><th>% DB time</th><th>Wait Class</th></tr>
		<tr><td>log file sync</td><td>400</td><td>8</td><td>20</td><td>12.0</td><td>Commit</td></tr>
		</table>
	</body></html>`)

	events, err := p.ParseWaitEvents(doc)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Commit", events[0].WaitClass)
	assert.InDelta(t, 20.0, events[0].AvgWaitMs, 1e-9)
}
