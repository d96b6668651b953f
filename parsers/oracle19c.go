// Copyright The awrparse Authors
// SPDX-License-Identifier: Apache-2.0

package parsers // import "github.com/spathlavath/awrparse/parsers"

import (
	"go.uber.org/zap"

	"github.com/spathlavath/awrparse/htmlreport"
	"github.com/spathlavath/awrparse/models"
)

// oracle19cSQLLimit caps the aggregated SQL statistics list. 19c reports
// repeat the "SQL ordered by ..." family many times; past the top rows
// the entries stop being interesting and start being bulk.
const oracle19cSQLLimit = 50

// Oracle19cParser handles 19c and later AWR reports. It aggregates SQL
// statistics across the whole "SQL ordered by ..." family and unifies RAC
// and container detection in a single pass. 21c reports parse with this
// parser as well; their layout is unchanged.
type Oracle19cParser struct {
	baseParser
}

var oracle19cPatterns = []string{
	`(?i)Oracle\s+Database\s+19c`,
	`(?i)Oracle\s+Database\s+21c`,
	`(?i)Release\s+(19|21)\.`,
	`\b(19|21)\.\d+\.\d+\.\d+`,
	`(?i)version["\s:]*(19|21)\.`,
}

func NewOracle19cParser(logger *zap.Logger) *Oracle19cParser {
	p := &Oracle19cParser{
		baseParser: newBaseParser(models.Oracle19c, logger, oracle19cPatterns),
	}
	p.hasWaitCls = true
	p.aggregateSQL = true
	p.sqlRowLimit = oracle19cSQLLimit
	return p
}

func (p *Oracle19cParser) ParseDBInfo(doc *htmlreport.Document) (*models.DBInfo, error) {
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

func (p *Oracle19cParser) ParseSnapshotInfo(doc *htmlreport.Document) (*models.SnapshotInfo, error) {
	return p.parseSnapshotInfo(doc)
}

func (p *Oracle19cParser) ParseLoadProfile(doc *htmlreport.Document) (*models.LoadProfile, error) {
	return p.parseLoadProfile(doc)
}

func (p *Oracle19cParser) ParseWaitEvents(doc *htmlreport.Document) ([]models.WaitEvent, error) {
	return p.parseWaitEvents(doc)
}

func (p *Oracle19cParser) ParseSQLStatistics(doc *htmlreport.Document) ([]models.SQLStatistic, error) {
	return p.parseSQLStatistics(doc)
}

func (p *Oracle19cParser) ParseInstanceActivity(doc *htmlreport.Document) ([]models.InstanceActivity, error) {
	return p.parseInstanceActivity(doc)
}
