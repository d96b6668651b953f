// Copyright The awrparse Authors
// SPDX-License-Identifier: Apache-2.0

package parsers // import "github.com/spathlavath/awrparse/parsers"

import (
	"go.uber.org/zap"

	"github.com/spathlavath/awrparse/htmlreport"
	"github.com/spathlavath/awrparse/models"
)

// Oracle12cParser handles 12c AWR reports: the first multitenant release.
// Container (CDB/PDB) detection is layered over the same RAC detection 11g
// uses, with RAC taking precedence when both apply. Wait-event tables gain
// the Wait Class column in this release.
type Oracle12cParser struct {
	baseParser
}

var oracle12cPatterns = []string{
	`(?i)Oracle\s+Database\s+12c`,
	`(?i)Release\s+12\.`,
	`\b12\.\d+\.\d+\.\d+`,
	`(?i)version["\s:]*12\.`,
}

func NewOracle12cParser(logger *zap.Logger) *Oracle12cParser {
	p := &Oracle12cParser{
		baseParser: newBaseParser(models.Oracle12c, logger, oracle12cPatterns),
	}
	p.hasWaitCls = true
	return p
}

func (p *Oracle12cParser) ParseDBInfo(doc *htmlreport.Document) (*models.DBInfo, error) {
	return p.parseDBInfo(doc, func(kv *htmlreport.KeyValues) (models.InstanceType, string) {
		if detectRACKeywords(kv) {
			return models.InstanceRAC, ""
		}
		if t, name, ok := detectContainer(kv); ok {
			return t, name
		}
		return models.InstanceSingle, ""
	})
}

func (p *Oracle12cParser) ParseSnapshotInfo(doc *htmlreport.Document) (*models.SnapshotInfo, error) {
	return p.parseSnapshotInfo(doc)
}

func (p *Oracle12cParser) ParseLoadProfile(doc *htmlreport.Document) (*models.LoadProfile, error) {
	return p.parseLoadProfile(doc)
}

func (p *Oracle12cParser) ParseWaitEvents(doc *htmlreport.Document) ([]models.WaitEvent, error) {
	return p.parseWaitEvents(doc)
}

func (p *Oracle12cParser) ParseSQLStatistics(doc *htmlreport.Document) ([]models.SQLStatistic, error) {
	return p.parseSQLStatistics(doc)
}

func (p *Oracle12cParser) ParseInstanceActivity(doc *htmlreport.Document) ([]models.InstanceActivity, error) {
	return p.parseInstanceActivity(doc)
}
