// Copyright The awrparse Authors
// SPDX-License-Identifier: Apache-2.0

package models

// InstanceType describes the deployment topology the report was captured
// from. It gates which optional DBInfo fields are populated: ContainerName
// is only meaningful for CDB/PDB, InstanceNumber only for RAC.
type InstanceType string

const (
	InstanceSingle InstanceType = "single"
	InstanceRAC    InstanceType = "rac"
	InstanceCDB    InstanceType = "cdb"
	InstancePDB    InstanceType = "pdb"
)

func (t InstanceType) String() string {
	return string(t)
}
