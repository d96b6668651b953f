// Copyright The awrparse Authors
// SPDX-License-Identifier: Apache-2.0

// Package awrparse extracts structured performance data from Oracle AWR
// HTML reports across the 11g, 12c and 19c/21c report layouts.
//
// The typical entry point is ParseAWR:
//
//	result := awrparse.ParseAWR(reportHTML)
//	if result.IsUsable() {
//	    fmt.Println(result.DBInfo.DBName, result.SnapshotInfo.BeginSnapID)
//	}
//
// ParseAWR detects the release family, picks the matching parser and runs
// the six section extractors (database info, snapshot window, load
// profile, wait events, SQL statistics, instance activity) with
// per-section fault isolation. Sections that fail or come back empty are
// recorded in the result's error and warning lists while the rest of the
// document still parses; only an unsupported or unrecognizable document
// yields a failed result. The call never panics and never returns nil.
//
// Callers needing control over logging or parser registration build a
// Factory and use its Parse and Registry methods instead.
package awrparse // import "github.com/spathlavath/awrparse"
