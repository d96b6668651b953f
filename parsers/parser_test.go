// Copyright The awrparse Authors
// SPDX-License-Identifier: Apache-2.0

package parsers

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spathlavath/awrparse/htmlreport"
	"github.com/spathlavath/awrparse/models"
)

// stubParser lets each test script the six extractors independently.
// Unset hooks report an empty section.
type stubParser struct {
	version  models.OracleVersion
	canParse bool

	dbInfo   func() (*models.DBInfo, error)
	snapshot func() (*models.SnapshotInfo, error)
	profile  func() (*models.LoadProfile, error)
	events   func() ([]models.WaitEvent, error)
	sqlStats func() ([]models.SQLStatistic, error)
	activity func() ([]models.InstanceActivity, error)
}

func (s *stubParser) Version() models.OracleVersion { return s.version }
func (s *stubParser) CanParse(string) bool          { return s.canParse }

func (s *stubParser) ParseDBInfo(*htmlreport.Document) (*models.DBInfo, error) {
	if s.dbInfo == nil {
		return nil, nil
	}
	return s.dbInfo()
}

func (s *stubParser) ParseSnapshotInfo(*htmlreport.Document) (*models.SnapshotInfo, error) {
	if s.snapshot == nil {
		return nil, nil
	}
	return s.snapshot()
}

func (s *stubParser) ParseLoadProfile(*htmlreport.Document) (*models.LoadProfile, error) {
	if s.profile == nil {
		return nil, nil
	}
	return s.profile()
}

func (s *stubParser) ParseWaitEvents(*htmlreport.Document) ([]models.WaitEvent, error) {
	if s.events == nil {
		return nil, nil
	}
	return s.events()
}

func (s *stubParser) ParseSQLStatistics(*htmlreport.Document) ([]models.SQLStatistic, error) {
	if s.sqlStats == nil {
		return nil, nil
	}
	return s.sqlStats()
}

func (s *stubParser) ParseInstanceActivity(*htmlreport.Document) ([]models.InstanceActivity, error) {
	if s.activity == nil {
		return nil, nil
	}
	return s.activity()
}

func TestParseUnsupportedDocumentFailsCritically(t *testing.T) {
	p := &stubParser{version: models.Oracle11g, canParse: false}
	result := Parse(p, "<html>not an awr report</html>", zap.NewNop())

	require.NotNil(t, result)
	assert.True(t, result.Failed())
	pe, ok := result.FirstCritical()
	require.True(t, ok)
	assert.Equal(t, models.ErrTypeUnsupported, pe.Type)
	assert.Empty(t, result.ParsedSections)
}

func TestParseSectionPanicIsIsolated(t *testing.T) {
	p := &stubParser{
		version:  models.Oracle19c,
		canParse: true,
		dbInfo: func() (*models.DBInfo, error) {
			return &models.DBInfo{DBName: "PROD", InstanceName: "PROD1", Version: models.Oracle19c}, nil
		},
		events: func() ([]models.WaitEvent, error) {
			panic("corrupt wait table")
		},
		sqlStats: func() ([]models.SQLStatistic, error) {
			return []models.SQLStatistic{{SQLID: "abc123"}}, nil
		},
	}

	result := Parse(p, "<html></html>", zap.NewNop())

	assert.Equal(t, models.StatusPartial, result.Status)
	assert.True(t, result.IsUsable())
	// The section after the panicking one still ran.
	assert.Contains(t, result.ParsedSections, SectionSQLStatistics)
	assert.Contains(t, result.ParsedSections, SectionDBInfo)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, SectionWaitEvents, result.Errors[0].Section)
	assert.Equal(t, models.ErrTypeParseError, result.Errors[0].Type)
	assert.False(t, result.Errors[0].IsCritical)
	assert.Contains(t, result.Errors[0].Message, "corrupt wait table")
}

func TestParseSectionErrorIsNonCritical(t *testing.T) {
	p := &stubParser{
		version:  models.Oracle12c,
		canParse: true,
		profile: func() (*models.LoadProfile, error) {
			return nil, errors.New("per-second column missing")
		},
	}

	result := Parse(p, "<html></html>", zap.NewNop())

	assert.Equal(t, models.StatusPartial, result.Status)
	found := false
	for _, pe := range result.Errors {
		if pe.Section == SectionLoadProfile {
			found = true
			assert.Contains(t, pe.Message, "per-second column missing")
		}
	}
	assert.True(t, found)
}

func TestParseEmptySectionsWarnAndKeepDefaults(t *testing.T) {
	p := &stubParser{version: models.Oracle11g, canParse: true}
	result := Parse(p, "<html></html>", zap.NewNop())

	assert.Equal(t, models.StatusWarning, result.Status)
	assert.Len(t, result.Warnings, 6)
	assert.Empty(t, result.Errors)
	assert.Equal(t, "UNKNOWN", result.DBInfo.DBName)
	assert.Zero(t, result.SnapshotInfo.BeginSnapID)
	assert.True(t, result.SnapshotInfo.BeginTime.IsZero())
	assert.Empty(t, result.ParsedSections)
}

func TestParseFullSuccess(t *testing.T) {
	p := &stubParser{
		version:  models.Oracle19c,
		canParse: true,
		dbInfo: func() (*models.DBInfo, error) {
			return &models.DBInfo{DBName: "ORCL", InstanceName: "orcl1", Version: models.Oracle19c}, nil
		},
		snapshot: func() (*models.SnapshotInfo, error) {
			return &models.SnapshotInfo{BeginSnapID: 100, EndSnapID: 101}, nil
		},
		profile: func() (*models.LoadProfile, error) {
			return &models.LoadProfile{DBTimePerSecond: 2.5}, nil
		},
		events: func() ([]models.WaitEvent, error) {
			return []models.WaitEvent{{EventName: "log file sync"}}, nil
		},
		sqlStats: func() ([]models.SQLStatistic, error) {
			return []models.SQLStatistic{{SQLID: "abc"}}, nil
		},
		activity: func() ([]models.InstanceActivity, error) {
			return []models.InstanceActivity{{StatisticName: "user commits"}}, nil
		},
	}

	result := Parse(p, "<html></html>", zap.NewNop())

	assert.Equal(t, models.StatusSuccess, result.Status)
	assert.Equal(t, []string{
		SectionDBInfo, SectionSnapshotInfo, SectionLoadProfile,
		SectionWaitEvents, SectionSQLStatistics, SectionInstanceActivity,
	}, result.ParsedSections)
	assert.Equal(t, "ORCL", result.DBInfo.DBName)
	assert.Equal(t, int64(100), result.SnapshotInfo.BeginSnapID)
}

func TestParseIsIdempotent(t *testing.T) {
	p := &stubParser{
		version:  models.Oracle11g,
		canParse: true,
		dbInfo: func() (*models.DBInfo, error) {
			return &models.DBInfo{DBName: "PROD", InstanceName: "PROD1", Version: models.Oracle11g}, nil
		},
	}

	first := Parse(p, "<html></html>", zap.NewNop())
	second := Parse(p, "<html></html>", zap.NewNop())

	assert.Empty(t, cmp.Diff(first, second))
}

func TestParseNilLogger(t *testing.T) {
	p := &stubParser{version: models.Oracle11g, canParse: true}
	assert.NotPanics(t, func() {
		Parse(p, "<html></html>", nil)
	})
}
