// Copyright The awrparse Authors
// SPDX-License-Identifier: Apache-2.0

// Package commonutils holds the normalization helpers shared by the
// per-version AWR parsers: numeric, percentage and duration cleaning plus
// wait-event name canonicalization. Every function returns an ok flag
// instead of failing; unparsable input yields (zero, false) and never a
// panic, so the extractors can feed them raw table cells directly.
package commonutils // import "github.com/spathlavath/awrparse/commonutils"

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	separatorRe   = regexp.MustCompile(`[,\s]+`)
	multiplierRe  = regexp.MustCompile(`(?i)([kmgt])$`)
	unitSuffixRe  = regexp.MustCompile(`[A-Za-z%]+$`)
	numericRunRe  = regexp.MustCompile(`([\d,]+\.?\d*)`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
	trailingKeyRe = regexp.MustCompile(`[:\s]+$`)
)

var multipliers = map[string]float64{
	"K": 1e3,
	"M": 1e6,
	"G": 1e9,
	"T": 1e12,
}

// CleanNumber normalizes a formatted numeric cell: thousands separators and
// whitespace are stripped, a trailing K/M/G/T multiplier (any case) scales
// the value, any other trailing unit or percent suffix is dropped.
func CleanNumber(value string) (float64, bool) {
	cleaned := separatorRe.ReplaceAllString(value, "")
	if cleaned == "" {
		return 0, false
	}

	multiplier := 1.0
	if m := multiplierRe.FindStringSubmatch(cleaned); m != nil {
		multiplier = multipliers[strings.ToUpper(m[1])]
		cleaned = cleaned[:len(cleaned)-1]
	} else {
		cleaned = unitSuffixRe.ReplaceAllString(cleaned, "")
	}

	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return n * multiplier, true
}

// CleanInt is CleanNumber truncated to an integer.
func CleanInt(value string) (int64, bool) {
	n, ok := CleanNumber(value)
	if !ok {
		return 0, false
	}
	return int64(n), true
}

// CleanPercentage extracts the first numeric run from a percentage cell
// and returns it on the 0-100 scale.
func CleanPercentage(value string) (float64, bool) {
	m := numericRunRe.FindStringSubmatch(value)
	if m == nil {
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Ordered (pattern, minutes-per-unit) pairs for free-text durations. More
// specific units come first so "ms" is never consumed as minutes.
var durationUnits = []struct {
	re      *regexp.Regexp
	minutes float64
}{
	{regexp.MustCompile(`(?i)([\d.]+)\s*ms(?:ec)?s?\b`), 1.0 / 60000},
	{regexp.MustCompile(`(?i)([\d.]+)\s*us(?:ec)?s?\b`), 1.0 / 60000000},
	{regexp.MustCompile(`(?i)([\d.]+)\s*s(?:ec)?(?:ond)?s?\b`), 1.0 / 60},
	{regexp.MustCompile(`(?i)([\d.]+)\s*m(?:in)?(?:ute)?s?\b`), 1},
	{regexp.MustCompile(`(?i)([\d.]+)\s*h(?:r)?(?:our)?s?\b`), 60},
}

var clockRe = regexp.MustCompile(`^(\d+):(\d+)(?::(\d+(?:\.\d+)?))?$`)

// DurationMinutes parses free-text durations such as "59.5 (mins)",
// "1 hr 30 min", "01:30:00" or "120 secs" into minutes. A bare numeric
// value with no unit is taken as minutes, matching how AWR reports label
// the Elapsed/DB Time fields.
func DurationMinutes(value string) (float64, bool) {
	text := strings.TrimSpace(value)
	if text == "" {
		return 0, false
	}

	if m := clockRe.FindStringSubmatch(text); m != nil {
		first, _ := strconv.ParseFloat(m[1], 64)
		second, _ := strconv.ParseFloat(m[2], 64)
		if m[3] != "" {
			// hh:mm:ss
			third, _ := strconv.ParseFloat(m[3], 64)
			return first*60 + second + third/60, true
		}
		// mm:ss
		return first + second/60, true
	}

	total := 0.0
	matched := false
	remaining := text
	for _, unit := range durationUnits {
		for _, m := range unit.re.FindAllStringSubmatch(remaining, -1) {
			n, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				continue
			}
			total += n * unit.minutes
			matched = true
		}
		remaining = unit.re.ReplaceAllString(remaining, "")
	}
	if matched {
		return total, true
	}

	cleaned := separatorRe.ReplaceAllString(text, "")
	cleaned = strings.TrimSuffix(cleaned, "(mins)")
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Known spelling variants of common wait events, keyed by their collapsed
// lowercase form. AWR releases disagree on pluralization and punctuation
// for a handful of events; anything not listed passes through unchanged.
var eventNameVariants = map[string]string{
	"db file sequential reads":      "db file sequential read",
	"db file scattered reads":       "db file scattered read",
	"log file syncs":                "log file sync",
	"log file parallel writes":      "log file parallel write",
	"latch cache buffers chains":    "latch: cache buffers chains",
	"buffer busy wait":              "buffer busy waits",
	"direct path reads":             "direct path read",
	"direct path writes":            "direct path write",
	"enq tx - row lock contention":  "enq: TX - row lock contention",
	"gc buffer busy acquire waits":  "gc buffer busy acquire",
	"library cache locks":           "library cache lock",
	"sql*net message from clients":  "SQL*Net message from client",
	"sql*net more data from client": "SQL*Net more data from client",
}

// NormalizeEventName collapses whitespace in a wait-event name and maps
// known spelling variants to their canonical form.
func NormalizeEventName(name string) string {
	cleaned := CleanText(name)
	if cleaned == "" {
		return ""
	}
	if canonical, ok := eventNameVariants[strings.ToLower(cleaned)]; ok {
		return canonical
	}
	return cleaned
}

// CleanText collapses all internal whitespace (including newlines and
// tabs) to single spaces and trims the ends.
func CleanText(value string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(value, " "))
}

// CleanKey trims trailing colons and whitespace from a key-column cell.
func CleanKey(value string) string {
	return trailingKeyRe.ReplaceAllString(strings.TrimSpace(value), "")
}
