// Copyright The awrparse Authors
// SPDX-License-Identifier: Apache-2.0

package parsers // import "github.com/spathlavath/awrparse/parsers"

import (
	"go.uber.org/zap"

	"github.com/spathlavath/awrparse/htmlreport"
	"github.com/spathlavath/awrparse/models"
)

// Oracle11gParser handles 11g AWR reports. 11g predates multitenancy, so
// topology is single or RAC only, and its wait-event tables carry no Wait
// Class column.
type Oracle11gParser struct {
	baseParser
}

var oracle11gPatterns = []string{
	`(?i)Oracle\s+Database\s+11g`,
	`(?i)Release\s+11\.`,
	`\b11\.\d+\.\d+\.\d+`,
	`(?i)version["\s:]*11\.`,
}

func NewOracle11gParser(logger *zap.Logger) *Oracle11gParser {
	return &Oracle11gParser{
		baseParser: newBaseParser(models.Oracle11g, logger, oracle11gPatterns),
	}
}

func (p *Oracle11gParser) ParseDBInfo(doc *htmlreport.Document) (*models.DBInfo, error) {
	return p.parseDBInfo(doc, func(kv *htmlreport.KeyValues) (models.InstanceType, string) {
		if detectRACKeywords(kv) {
			return models.InstanceRAC, ""
		}
		return models.InstanceSingle, ""
	})
}

func (p *Oracle11gParser) ParseSnapshotInfo(doc *htmlreport.Document) (*models.SnapshotInfo, error) {
	return p.parseSnapshotInfo(doc)
}

func (p *Oracle11gParser) ParseLoadProfile(doc *htmlreport.Document) (*models.LoadProfile, error) {
	return p.parseLoadProfile(doc)
}

func (p *Oracle11gParser) ParseWaitEvents(doc *htmlreport.Document) ([]models.WaitEvent, error) {
	return p.parseWaitEvents(doc)
}

func (p *Oracle11gParser) ParseSQLStatistics(doc *htmlreport.Document) ([]models.SQLStatistic, error) {
	return p.parseSQLStatistics(doc)
}

func (p *Oracle11gParser) ParseInstanceActivity(doc *htmlreport.Document) ([]models.InstanceActivity, error) {
	return p.parseInstanceActivity(doc)
}
