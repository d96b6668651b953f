// Copyright The awrparse Authors
// SPDX-License-Identifier: Apache-2.0

package models // import "github.com/spathlavath/awrparse/models"

// OracleVersion identifies the Oracle release family an AWR report was
// generated by. It drives parser selection in the factory.
type OracleVersion string

const (
	Oracle10g      OracleVersion = "10g"
	Oracle11g      OracleVersion = "11g"
	Oracle12c      OracleVersion = "12c"
	Oracle19c      OracleVersion = "19c"
	Oracle21c      OracleVersion = "21c"
	VersionUnknown OracleVersion = "unknown"
)

// KnownVersions lists the detectable release families, newest first. The
// ordering matters: detection evaluates newest-first so an incidental
// substring (such as "11" inside a 19c version string) cannot shadow an
// explicit declaration elsewhere in the document.
var KnownVersions = []OracleVersion{Oracle21c, Oracle19c, Oracle12c, Oracle11g, Oracle10g}

func (v OracleVersion) String() string {
	return string(v)
}
