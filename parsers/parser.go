// Copyright The awrparse Authors
// SPDX-License-Identifier: Apache-2.0

// Package parsers contains the per-release AWR parsers and the template
// orchestration that runs their six section extractors with per-section
// fault isolation. Parse never panics: every extractor failure is
// converted into the result's error log and the remaining sections still
// run.
package parsers // import "github.com/spathlavath/awrparse/parsers"

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/spathlavath/awrparse/htmlreport"
	"github.com/spathlavath/awrparse/models"
)

// Section names as they appear in ParsedSections and error records.
const (
	SectionDBInfo           = "db_info"
	SectionSnapshotInfo     = "snapshot_info"
	SectionLoadProfile      = "load_profile"
	SectionWaitEvents       = "wait_events"
	SectionSQLStatistics    = "sql_statistics"
	SectionInstanceActivity = "instance_activity"
)

// VersionParser is the contract every release-specific parser satisfies.
// Extractors return a nil/empty value when their section is missing or
// parsed empty; the orchestrator installs the section default and records
// a warning. CanParse must swallow every internal failure.
type VersionParser interface {
	Version() models.OracleVersion
	CanParse(content string) bool

	ParseDBInfo(doc *htmlreport.Document) (*models.DBInfo, error)
	ParseSnapshotInfo(doc *htmlreport.Document) (*models.SnapshotInfo, error)
	ParseLoadProfile(doc *htmlreport.Document) (*models.LoadProfile, error)
	ParseWaitEvents(doc *htmlreport.Document) ([]models.WaitEvent, error)
	ParseSQLStatistics(doc *htmlreport.Document) ([]models.SQLStatistic, error)
	ParseInstanceActivity(doc *htmlreport.Document) ([]models.InstanceActivity, error)
}

// Parse runs the full extraction pipeline for one document: compatibility
// check, DOM parse, then the six extractors in fixed order. A section
// failure is recorded as a non-critical error and the run continues; an
// empty section is recorded as a warning and its deterministic default is
// kept. Only a failure of the orchestration itself (or an unsupported
// document) is critical.
func Parse(p VersionParser, content string, logger *zap.Logger) (result *models.ParseResult) {
	if logger == nil {
		logger = zap.NewNop()
	}
	result = models.NewParseResult(p.Version())

	// Anything that escapes the per-section recovery is a failure of the
	// orchestrator, reported once as critical.
	defer func() {
		if r := recover(); r != nil {
			logger.Error("awr parse aborted", zap.Any("panic", r))
			result.AddError("parser", models.ErrTypeException,
				fmt.Sprintf("parse aborted: %v", r), "", true)
		}
	}()

	if !p.CanParse(content) {
		result.AddError("parser", models.ErrTypeUnsupported,
			"unsupported AWR format", "", true)
		return result
	}

	doc, err := htmlreport.Parse(content)
	if err != nil {
		result.AddError("parser", models.ErrTypeException,
			"malformed document: "+err.Error(), "", true)
		return result
	}

	runSection(result, logger, SectionDBInfo, func() (bool, error) {
		info, err := p.ParseDBInfo(doc)
		if err != nil || info == nil {
			return false, err
		}
		result.DBInfo = *info
		return true, nil
	})

	runSection(result, logger, SectionSnapshotInfo, func() (bool, error) {
		snap, err := p.ParseSnapshotInfo(doc)
		if err != nil || snap == nil {
			return false, err
		}
		result.SnapshotInfo = *snap
		return true, nil
	})

	runSection(result, logger, SectionLoadProfile, func() (bool, error) {
		profile, err := p.ParseLoadProfile(doc)
		if err != nil || profile == nil {
			return false, err
		}
		result.LoadProfile = *profile
		return true, nil
	})

	runSection(result, logger, SectionWaitEvents, func() (bool, error) {
		events, err := p.ParseWaitEvents(doc)
		if err != nil || len(events) == 0 {
			return false, err
		}
		result.WaitEvents = events
		return true, nil
	})

	runSection(result, logger, SectionSQLStatistics, func() (bool, error) {
		stats, err := p.ParseSQLStatistics(doc)
		if err != nil || len(stats) == 0 {
			return false, err
		}
		result.SQLStatistics = stats
		return true, nil
	})

	runSection(result, logger, SectionInstanceActivity, func() (bool, error) {
		activities, err := p.ParseInstanceActivity(doc)
		if err != nil || len(activities) == 0 {
			return false, err
		}
		result.InstanceActivities = activities
		return true, nil
	})

	logger.Debug("awr parse finished",
		zap.String("version", p.Version().String()),
		zap.String("status", string(result.Status)),
		zap.Int("sections", len(result.ParsedSections)),
		zap.Int("errors", len(result.Errors)))

	return result
}

// runSection executes one extractor with fault isolation: a panic or error
// becomes a non-critical parse_error, an empty outcome becomes a warning,
// and success appends the section to ParsedSections. A broken wait-events
// table must never block SQL-statistics extraction.
func runSection(result *models.ParseResult, logger *zap.Logger, name string, extract func() (bool, error)) {
	populated, err := func() (populated bool, err error) {
		defer func() {
			if r := recover(); r != nil {
				populated = false
				err = fmt.Errorf("extractor panicked: %v", r)
			}
		}()
		return extract()
	}()

	switch {
	case err != nil:
		logger.Warn("section extraction failed", zap.String("section", name), zap.Error(err))
		result.AddError(name, models.ErrTypeParseError, err.Error(), "", false)
	case !populated:
		logger.Debug("section parsed empty", zap.String("section", name))
		result.AddWarning(fmt.Sprintf("section %s parsed empty", name))
	default:
		result.ParsedSections = append(result.ParsedSections, name)
	}
}
