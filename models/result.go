// Copyright The awrparse Authors
// SPDX-License-Identifier: Apache-2.0

package models

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// ParseStatus is the overall outcome of one parse run. Within a run the
// status only ever worsens: success < warning < partial < failed. A
// non-critical error always outranks a warning regardless of the order in
// which the two were recorded.
type ParseStatus string

const (
	StatusSuccess ParseStatus = "success"
	StatusWarning ParseStatus = "warning"
	StatusPartial ParseStatus = "partial"
	StatusFailed  ParseStatus = "failed"
)

func (s ParseStatus) rank() int {
	switch s {
	case StatusWarning:
		return 1
	case StatusPartial:
		return 2
	case StatusFailed:
		return 3
	default:
		return 0
	}
}

// Error type tags carried by ParseError.Type.
const (
	ErrTypeUnsupported = "unsupported" // CanParse rejected the document
	ErrTypeParseError  = "parse_error" // a section extractor failed
	ErrTypeException   = "exception"   // the orchestrator failed outside the extractors
	ErrTypeNoParser    = "no_parser"   // the factory could not resolve any implementation
)

// ParseError records a single failure during a parse run. The error list
// on ParseResult is append-only.
type ParseError struct {
	Section    string
	Type       string
	Message    string
	Details    string
	IsCritical bool
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Section, e.Type, e.Message)
}

// ParseResult is the engine's sole output: the typed sections of one AWR
// report plus the errors, warnings and status accumulated while extracting
// them. It is produced once per call and must not be mutated after return.
type ParseResult struct {
	DBInfo             DBInfo
	SnapshotInfo       SnapshotInfo
	LoadProfile        LoadProfile
	WaitEvents         []WaitEvent
	SQLStatistics      []SQLStatistic
	InstanceActivities []InstanceActivity

	Status         ParseStatus
	Errors         []ParseError
	Warnings       []string
	ParsedSections []string
}

// NewParseResult returns a result pre-populated with the deterministic
// section defaults and a success status.
func NewParseResult(version OracleVersion) *ParseResult {
	return &ParseResult{
		DBInfo:       DefaultDBInfo(version),
		SnapshotInfo: DefaultSnapshotInfo(),
		Status:       StatusSuccess,
	}
}

// AddError appends a parse error and worsens the status: critical errors
// force the terminal failed state, non-critical ones force at least
// partial.
func (r *ParseResult) AddError(section, errType, message, details string, critical bool) {
	r.Errors = append(r.Errors, ParseError{
		Section:    section,
		Type:       errType,
		Message:    message,
		Details:    details,
		IsCritical: critical,
	})
	if critical {
		r.escalate(StatusFailed)
	} else {
		r.escalate(StatusPartial)
	}
}

// AddWarning appends a warning; warnings only ever downgrade a success to
// warning, never past it.
func (r *ParseResult) AddWarning(message string) {
	r.Warnings = append(r.Warnings, message)
	r.escalate(StatusWarning)
}

func (r *ParseResult) escalate(to ParseStatus) {
	if to.rank() > r.Status.rank() {
		r.Status = to
	}
}

// IsUsable reports whether the result carries extracted data worth
// consuming: everything short of a terminal failure.
func (r *ParseResult) IsUsable() bool {
	return r.Status != StatusFailed
}

// Failed reports whether a critical error ended the run.
func (r *ParseResult) Failed() bool {
	return r.Status == StatusFailed
}

// Err combines the recorded parse errors into a single error value, or nil
// when the run recorded none.
func (r *ParseResult) Err() error {
	var errs []error
	for _, pe := range r.Errors {
		errs = append(errs, pe)
	}
	return multierr.Combine(errs...)
}

// FirstCritical returns the first critical error of the run, if any.
func (r *ParseResult) FirstCritical() (ParseError, bool) {
	for _, pe := range r.Errors {
		if pe.IsCritical {
			return pe, true
		}
	}
	return ParseError{}, false
}

// AsError is a convenience for callers that treat a failed result as a Go
// error: it returns nil unless the run failed.
func (r *ParseResult) AsError() error {
	if !r.Failed() {
		return nil
	}
	if pe, ok := r.FirstCritical(); ok {
		return pe
	}
	return errors.New("awr parse failed")
}
