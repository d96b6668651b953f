// Copyright The awrparse Authors
// SPDX-License-Identifier: Apache-2.0

package models

// InstanceActivity is one row of the Instance Activity Stats table.
type InstanceActivity struct {
	StatisticName  string
	TotalValue     float64
	PerSecond      float64
	PerTransaction float64
}
