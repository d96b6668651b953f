// Copyright The awrparse Authors
// SPDX-License-Identifier: Apache-2.0

package models

import "time"

// SnapshotInfo describes the begin/end snapshot pair an AWR report is
// computed over. Timestamps are zero when the report did not carry a
// parsable value; no wall-clock defaults are ever substituted, so parsing
// the same document twice yields identical output. Invariant: when both
// ends are known, EndSnapID >= BeginSnapID and EndTime >= BeginTime.
type SnapshotInfo struct {
	BeginSnapID        int64
	EndSnapID          int64
	BeginTime          time.Time
	EndTime            time.Time
	ElapsedTimeMinutes float64
	DBTimeMinutes      float64
}

// DefaultSnapshotInfo is the deterministic placeholder for a missing or
// empty snapshot section.
func DefaultSnapshotInfo() SnapshotInfo {
	return SnapshotInfo{}
}

// WindowValid reports whether the known parts of the snapshot window are
// consistent. Unknown (zero) ends never invalidate the window.
func (s SnapshotInfo) WindowValid() bool {
	if s.EndSnapID != 0 && s.BeginSnapID != 0 && s.EndSnapID < s.BeginSnapID {
		return false
	}
	if !s.EndTime.IsZero() && !s.BeginTime.IsZero() && s.EndTime.Before(s.BeginTime) {
		return false
	}
	return true
}
