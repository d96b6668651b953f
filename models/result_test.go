// Copyright The awrparse Authors
// SPDX-License-Identifier: Apache-2.0

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParseResultDefaults(t *testing.T) {
	r := NewParseResult(Oracle19c)

	assert.Equal(t, StatusSuccess, r.Status)
	assert.Equal(t, "UNKNOWN", r.DBInfo.DBName)
	assert.Equal(t, "UNKNOWN", r.DBInfo.InstanceName)
	assert.Equal(t, Oracle19c, r.DBInfo.Version)
	assert.Equal(t, InstanceSingle, r.DBInfo.InstanceType)
	assert.True(t, r.SnapshotInfo.BeginTime.IsZero())
	assert.True(t, r.SnapshotInfo.EndTime.IsZero())
	assert.Empty(t, r.WaitEvents)
	assert.Empty(t, r.Errors)
}

func TestStatusOnlyWorsens(t *testing.T) {
	r := NewParseResult(Oracle11g)

	r.AddError("wait_events", ErrTypeParseError, "bad table", "", false)
	assert.Equal(t, StatusPartial, r.Status)

	// A later warning must not improve the status.
	r.AddWarning("section sql_statistics parsed empty")
	assert.Equal(t, StatusPartial, r.Status)

	r.AddError("parser", ErrTypeException, "boom", "", true)
	assert.Equal(t, StatusFailed, r.Status)

	r.AddWarning("too late")
	assert.Equal(t, StatusFailed, r.Status)
}

func TestErrorOutranksWarningRegardlessOfOrder(t *testing.T) {
	warnFirst := NewParseResult(Oracle12c)
	warnFirst.AddWarning("w")
	warnFirst.AddError("load_profile", ErrTypeParseError, "e", "", false)

	errFirst := NewParseResult(Oracle12c)
	errFirst.AddError("load_profile", ErrTypeParseError, "e", "", false)
	errFirst.AddWarning("w")

	assert.Equal(t, StatusPartial, warnFirst.Status)
	assert.Equal(t, errFirst.Status, warnFirst.Status)
}

func TestWarningOnlyDowngradesSuccess(t *testing.T) {
	r := NewParseResult(Oracle19c)
	r.AddWarning("section db_info parsed empty")

	assert.Equal(t, StatusWarning, r.Status)
	assert.True(t, r.IsUsable())
	assert.False(t, r.Failed())
}

func TestCriticalErrorIsTerminal(t *testing.T) {
	r := NewParseResult(Oracle19c)
	r.AddError("parser", ErrTypeUnsupported, "unsupported AWR format", "", true)

	assert.True(t, r.Failed())
	assert.False(t, r.IsUsable())

	pe, ok := r.FirstCritical()
	require.True(t, ok)
	assert.Equal(t, ErrTypeUnsupported, pe.Type)
	require.Error(t, r.AsError())
	assert.Contains(t, r.AsError().Error(), "unsupported")
}

func TestErrCombinesSectionErrors(t *testing.T) {
	r := NewParseResult(Oracle11g)
	assert.NoError(t, r.Err())

	r.AddError("wait_events", ErrTypeParseError, "bad waits column", "", false)
	r.AddError("sql_statistics", ErrTypeParseError, "bad gets column", "", false)

	err := r.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wait_events")
	assert.Contains(t, err.Error(), "sql_statistics")
	assert.Nil(t, r.AsError(), "non-critical errors do not fail the run")
}

func TestWindowValid(t *testing.T) {
	tests := []struct {
		name string
		snap SnapshotInfo
		want bool
	}{
		{"zero value", SnapshotInfo{}, true},
		{"ordered ids", SnapshotInfo{BeginSnapID: 10, EndSnapID: 12}, true},
		{"inverted ids", SnapshotInfo{BeginSnapID: 12, EndSnapID: 10}, false},
		{"only begin id", SnapshotInfo{BeginSnapID: 12}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.snap.WindowValid())
		})
	}
}

func TestDeriveIOTime(t *testing.T) {
	assert.InDelta(t, 15.3, DeriveIOTime(25.5, 10.2), 1e-9)
	assert.Zero(t, DeriveIOTime(10.0, 12.0), "rounding artifacts never go negative")
	assert.InDelta(t, 25.5, DeriveIOTime(25.5, 0), 1e-9)
}
