// Copyright The awrparse Authors
// SPDX-License-Identifier: Apache-2.0

package awrparse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spathlavath/awrparse/models"
)

func TestDetectVersionSignatures(t *testing.T) {
	d := NewVersionDetector(nil)

	tests := []struct {
		name    string
		content string
		want    models.OracleVersion
	}{
		{"21c marketing", "<html><body>Oracle Database 21c Enterprise Edition</body></html>", models.Oracle21c},
		{"19c marketing", "<html><body>Oracle Database 19c Enterprise Edition</body></html>", models.Oracle19c},
		{"19c release", "<html><body>Release 19.3.0.0.0 - Production</body></html>", models.Oracle19c},
		{"12c version number", "<html><body><td>12.1.0.2.0</td></body></html>", models.Oracle12c},
		{"11g marketing", "<html><body>Oracle Database 11g Release 11.2.0.4.0</body></html>", models.Oracle11g},
		{"10g marketing", "<html><body>Oracle Database 10g Release 10.2.0.5.0</body></html>", models.Oracle10g},
		{"garbage", "<html><body>hello world</body></html>", models.VersionUnknown},
		{"empty", "", models.VersionUnknown},
		{"not html", "just some text", models.VersionUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.DetectVersion(tt.content))
		})
	}
}

func TestDetectVersionNewestFirst(t *testing.T) {
	d := NewVersionDetector(nil)
	// A 19c report whose body happens to mention an 11.2 client; the
	// newer family must win.
	content := `<html><body>
		Oracle Database 19c Enterprise Edition Release 19.3.0.0.0
		<p>client version 11.2</p>
	</body></html>`
	assert.Equal(t, models.Oracle19c, d.DetectVersion(content))
}

func TestDetectVersionASHReportIsUnknown(t *testing.T) {
	d := NewVersionDetector(nil)

	ash := `<html><head><title>ASH Report For PROD/prod1</title></head>
		<body><h1>ASH Report</h1><p>Sampled session activity</p></body></html>`
	assert.Equal(t, models.VersionUnknown, d.DetectVersion(ash))

	history := `<html><head><title>Active Session History Report</title></head><body></body></html>`
	assert.Equal(t, models.VersionUnknown, d.DetectVersion(history))
}

func TestDetectVersionAWRIndicatorOverridesASH(t *testing.T) {
	d := NewVersionDetector(nil)
	// Hybrid document: ASH wording in the title but a real AWR body.
	content := `<html><head><title>ASH Report extract</title></head><body>
		Automatic Workload Repository report
		Oracle Database 19c Release 19.3.0.0.0
	</body></html>`
	assert.Equal(t, models.Oracle19c, d.DetectVersion(content))
}

func TestDetectVersionHeadingFallback(t *testing.T) {
	d := NewVersionDetector(nil)
	content := `<html><head><title>Database Summary 19c</title></head>
		<body><p>no other markers</p></body></html>`
	assert.Equal(t, models.Oracle19c, d.DetectVersion(content))
}

func TestDetectVersionLargeGarbageInput(t *testing.T) {
	d := NewVersionDetector(nil)
	assert.Equal(t, models.VersionUnknown, d.DetectVersion(strings.Repeat("x", 1<<16)))
}
