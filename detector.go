// Copyright The awrparse Authors
// SPDX-License-Identifier: Apache-2.0

package awrparse // import "github.com/spathlavath/awrparse"

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/spathlavath/awrparse/htmlreport"
	"github.com/spathlavath/awrparse/models"
)

// awrIndicatorRes are the strong AWR markers. Any one of them overrides
// ASH discrimination: hybrid documents that merely embed an ASH summary
// still parse as AWR.
var awrIndicatorRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)<title>[^<]*AWR\s+Report`),
	regexp.MustCompile(`(?i)AWR\s+Report\s+for\s+DB`),
	regexp.MustCompile(`(?i)<h1[^>]*>[^<]*AWR\s+Report`),
	regexp.MustCompile(`(?i)Automatic\s+Workload\s+Repository`),
	regexp.MustCompile(`(?i)Database\s+Summary`),
	regexp.MustCompile(`(?i)Load\s+Profile`),
	regexp.MustCompile(`(?i)Instance\s+Activity\s+Stat`),
	regexp.MustCompile(`(?i)Tablespace\s+IO\s+Stats`),
}

// ashIndicatorRes mark a pure ASH report, which carries no snapshot-based
// sections and must not be routed to an AWR parser.
var ashIndicatorRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)<title>[^<]*ASH\s+Report`),
	regexp.MustCompile(`(?i)<h1[^>]*>[^<]*ASH\s+Report`),
	regexp.MustCompile(`(?i)<title>[^<]*Active\s+Session\s+History\s+Report`),
}

// versionSignature groups the textual forms one release family appears
// under. Groups are evaluated newest-first so an incidental "11." inside a
// 19c version string never wins.
type versionSignature struct {
	version models.OracleVersion
	res     []*regexp.Regexp
}

func newVersionSignature(version models.OracleVersion, marketing string, number string) versionSignature {
	return versionSignature{
		version: version,
		res: []*regexp.Regexp{
			regexp.MustCompile(`(?i)Oracle\s+Database\s+` + marketing + `\b`),
			regexp.MustCompile(`(?i)Release\s+` + number + `\.`),
			regexp.MustCompile(`\b` + number + `\.\d+\.\d+\.\d+\.\d+`),
			regexp.MustCompile(`\b` + number + `\.\d+\.\d+\.\d+`),
			regexp.MustCompile(`(?i)version["\s:=]*` + number + `\.`),
			regexp.MustCompile(`(?i)<td[^>]*>\s*` + number + `\.\d+\.\d+`),
		},
	}
}

var versionSignatures = []versionSignature{
	newVersionSignature(models.Oracle21c, "21c", "21"),
	newVersionSignature(models.Oracle19c, "19c", "19"),
	newVersionSignature(models.Oracle12c, "12c", "12"),
	newVersionSignature(models.Oracle11g, "11g", "11"),
	newVersionSignature(models.Oracle10g, "10g", "10"),
}

// headingVersionRe extracts a marketing token ("19c", "11g") or a
// "release NN" form from a title or heading line.
var headingVersionRe = regexp.MustCompile(`(?i)\b(?:release\s+)?(\d{2})[cg]?\b`)

var headingVersionByNumber = map[string]models.OracleVersion{
	"21": models.Oracle21c,
	"19": models.Oracle19c,
	"12": models.Oracle12c,
	"11": models.Oracle11g,
	"10": models.Oracle10g,
}

// VersionDetector classifies raw report text into an Oracle release
// family. It accepts any input and never panics; anything unrecognizable,
// including pure ASH reports, maps to VersionUnknown.
type VersionDetector struct {
	logger *zap.Logger
}

func NewVersionDetector(logger *zap.Logger) *VersionDetector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VersionDetector{logger: logger}
}

// DetectVersion returns the release family of an AWR document, or
// VersionUnknown for ASH reports and unrecognizable input.
func (d *VersionDetector) DetectVersion(content string) (version models.OracleVersion) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("version detection aborted", zap.Any("panic", r))
			version = models.VersionUnknown
		}
	}()

	if content == "" {
		return models.VersionUnknown
	}

	if !d.isAWR(content) {
		d.logger.Debug("document rejected as non-AWR")
		return models.VersionUnknown
	}

	for _, sig := range versionSignatures {
		for _, re := range sig.res {
			if re.MatchString(content) {
				d.logger.Debug("version detected",
					zap.String("version", sig.version.String()),
					zap.String("pattern", re.String()))
				return sig.version
			}
		}
	}

	if v := d.versionFromHeadings(content); v != models.VersionUnknown {
		return v
	}

	d.logger.Debug("no version signature matched")
	return models.VersionUnknown
}

// isAWR applies ASH discrimination: strong AWR indicators win outright,
// a pure ASH title loses, everything else passes through to version
// matching.
func (d *VersionDetector) isAWR(content string) bool {
	for _, re := range awrIndicatorRes {
		if re.MatchString(content) {
			return true
		}
	}
	for _, re := range ashIndicatorRes {
		if re.MatchString(content) {
			return false
		}
	}
	return true
}

// versionFromHeadings is the last resort: parse the DOM and scan the title
// and first h1 for a bare release token.
func (d *VersionDetector) versionFromHeadings(content string) models.OracleVersion {
	doc, err := htmlreport.Parse(content)
	if err != nil {
		return models.VersionUnknown
	}
	for _, text := range []string{doc.Title(), doc.FirstHeading()} {
		if text == "" {
			continue
		}
		if m := headingVersionRe.FindStringSubmatch(strings.ToLower(text)); m != nil {
			if v, ok := headingVersionByNumber[m[1]]; ok {
				d.logger.Debug("version detected from heading",
					zap.String("version", v.String()),
					zap.String("heading", text))
				return v
			}
		}
	}
	return models.VersionUnknown
}
