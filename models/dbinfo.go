// Copyright The awrparse Authors
// SPDX-License-Identifier: Apache-2.0

package models

import "time"

// DBInfo holds the database identity block of an AWR report. Optional
// fields use zero values for absence: HostName, Platform and ContainerName
// may be empty, StartupTime may be the zero time, and InstanceNumber is 0
// when the report does not identify a cluster instance. Values are
// immutable once produced by a parser.
type DBInfo struct {
	DBName         string
	InstanceName   string
	Version        OracleVersion
	InstanceType   InstanceType
	HostName       string
	Platform       string
	StartupTime    time.Time
	IsRAC          bool
	ContainerName  string
	InstanceNumber int
}

// DefaultDBInfo is the deterministic placeholder installed when the
// database information section is missing or parsed empty.
func DefaultDBInfo(version OracleVersion) DBInfo {
	return DBInfo{
		DBName:       "UNKNOWN",
		InstanceName: "UNKNOWN",
		Version:      version,
		InstanceType: InstanceSingle,
	}
}
