// Copyright The awrparse Authors
// SPDX-License-Identifier: Apache-2.0

package models

// MaxSQLTextLen caps the SQL text carried per statement; AWR reports embed
// only a truncated preview anyway.
const MaxSQLTextLen = 500

// SQLStatistic is one row of a "SQL ordered by ..." table. SQLText may be
// empty or truncated. IOTimeSec is derived as max(elapsed-cpu, 0); when the
// table has no CPU column CPUTimeSec stays 0 and IOTimeSec equals the
// elapsed time.
type SQLStatistic struct {
	SQLID          string
	SQLText        string
	Executions     int64
	ElapsedTimeSec float64
	CPUTimeSec     float64
	IOTimeSec      float64
	Gets           int64
	Reads          int64
}

// DeriveIOTime returns the IO component of an elapsed/cpu pair, clamped at
// zero so rounding in the report can never produce a negative time.
func DeriveIOTime(elapsedSec, cpuSec float64) float64 {
	if elapsedSec > cpuSec {
		return elapsedSec - cpuSec
	}
	return 0
}
