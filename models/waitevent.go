// Copyright The awrparse Authors
// SPDX-License-Identifier: Apache-2.0

package models

// WaitEvent is one row of a Top Timed Events / Wait Events table. The
// parser preserves the report's row order; no re-sorting is applied.
// AvgWaitMs is recomputed from TotalWaitTimeSec and Waits rather than
// copied from the report, which rounds aggressively. WaitClass is empty on
// releases that do not report it (11g).
type WaitEvent struct {
	EventName        string
	Waits            int64
	TotalWaitTimeSec float64
	AvgWaitMs        float64
	PercentDBTime    float64
	WaitClass        string
}
