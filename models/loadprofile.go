// Copyright The awrparse Authors
// SPDX-License-Identifier: Apache-2.0

package models

// LoadProfile carries the normalized workload counters from the report's
// Load Profile table. Counters the table did not contain stay zero; one
// LoadProfile is produced per report.
type LoadProfile struct {
	DBTimePerSecond            float64
	DBTimePerTransaction       float64
	LogicalReadsPerSecond      float64
	LogicalReadsPerTransaction float64
	PhysicalReadsPerSecond     float64
	PhysicalWritesPerSecond    float64
	UserCallsPerSecond         float64
	ParsesPerSecond            float64
	HardParsesPerSecond        float64
	SortsPerSecond             float64
	LogonsPerSecond            float64
	ExecutesPerSecond          float64
	RollbacksPerSecond         float64
	TransactionsPerSecond      float64
}
