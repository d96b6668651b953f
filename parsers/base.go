// Copyright The awrparse Authors
// SPDX-License-Identifier: Apache-2.0

package parsers // import "github.com/spathlavath/awrparse/parsers"

import (
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/spathlavath/awrparse/commonutils"
	"github.com/spathlavath/awrparse/htmlreport"
	"github.com/spathlavath/awrparse/models"
)

// Anchor name candidates per section, tried in order. The htmlreport
// lookup already falls back to fuzzy matching, so these only need to cover
// the naming families Oracle has used across releases.
var sectionAnchors = map[string][]string{
	SectionDBInfo:           {"dbinfo", "db_information", "database_information"},
	SectionSnapshotInfo:     {"snapshot", "snap_info", "snapshot_information"},
	SectionLoadProfile:      {"loadprofile", "load_profile", "system_load"},
	SectionWaitEvents:       {"topevents", "wait_events", "top_events"},
	SectionSQLStatistics:    {"topsql", "sql_statistics", "top_sql"},
	SectionInstanceActivity: {"sysstat", "instance_activity", "system_statistics"},
}

// Caption / heading patterns per section, the fallback when no anchor
// resolves.
var sectionCaptions = map[string][]*regexp.Regexp{
	SectionDBInfo: {
		regexp.MustCompile(`(?i)database\s+(instance\s+)?information`),
		regexp.MustCompile(`(?i)db\s+info`),
	},
	SectionSnapshotInfo: {
		regexp.MustCompile(`(?i)snapshot\s+(information|details)`),
		regexp.MustCompile(`(?i)snap\s+info`),
	},
	SectionLoadProfile: {
		regexp.MustCompile(`(?i)load\s+profile`),
		regexp.MustCompile(`(?i)system\s+load`),
	},
	SectionWaitEvents: {
		regexp.MustCompile(`(?i)top\s+\d*\s*(timed\s+)?(foreground\s+)?events`),
		regexp.MustCompile(`(?i)wait\s+events`),
	},
	SectionSQLStatistics: {
		regexp.MustCompile(`(?i)sql\s+ordered\s+by`),
		regexp.MustCompile(`(?i)top\s+sql`),
		regexp.MustCompile(`(?i)sql\s+statistics`),
	},
	SectionInstanceActivity: {
		regexp.MustCompile(`(?i)instance\s+activity\s+stat`),
		regexp.MustCompile(`(?i)system\s+statistics`),
		regexp.MustCompile(`(?i)key\s+instance\s+activity`),
	},
}

// awrMarkerAnchors are the anchors whose presence marks a document as an
// AWR report when no version string survives; two of them are enough.
var awrMarkerAnchors = []string{"dbinfo", "loadprofile", "topevents", "topsql"}

// startupTimeLayouts are the timestamp formats observed across AWR
// releases, most common first.
var startupTimeLayouts = []string{
	"02-Jan-06 15:04:05",
	"2006-01-02 15:04:05",
	"02-01-2006 15:04:05",
	"01/02/2006 15:04:05",
	"02-Jan-2006 15:04:05",
}

// baseParser carries the machinery shared by every release parser:
// compatibility checking, section location and row-to-entity conversion.
// The release parsers differ only in version patterns, topology detection
// and a few table-shape options.
type baseParser struct {
	version      models.OracleVersion
	versionRes   []*regexp.Regexp
	logger       *zap.Logger
	sqlRowLimit  int
	aggregateSQL bool
	hasWaitCls   bool
}

func newBaseParser(version models.OracleVersion, logger *zap.Logger, versionPatterns []string) baseParser {
	if logger == nil {
		logger = zap.NewNop()
	}
	res := make([]*regexp.Regexp, 0, len(versionPatterns))
	for _, p := range versionPatterns {
		res = append(res, regexp.MustCompile(p))
	}
	return baseParser{version: version, versionRes: res, logger: logger}
}

func (b *baseParser) Version() models.OracleVersion {
	return b.version
}

// CanParse accepts a document that either declares the parser's release in
// its text or, failing that, carries at least two of the canonical AWR
// section anchors. It never panics and never errors; any internal failure
// means "cannot parse".
func (b *baseParser) CanParse(content string) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	for _, re := range b.versionRes {
		if re.MatchString(content) {
			return true
		}
	}

	doc, err := htmlreport.Parse(content)
	if err != nil {
		return false
	}
	found := 0
	for _, name := range awrMarkerAnchors {
		if doc.FindAnchor(name) != nil {
			found++
		}
	}
	return found >= 2
}

// findSectionTable locates a section's table: each anchor candidate is
// tried first, then each caption pattern.
func (b *baseParser) findSectionTable(doc *htmlreport.Document, section string) *html.Node {
	for _, name := range sectionAnchors[section] {
		if table := doc.TableAfterAnchor(name); table != nil {
			return table
		}
	}
	for _, re := range sectionCaptions[section] {
		if table := doc.FindTableByCaption(re); table != nil {
			return table
		}
	}
	return nil
}

// kvValue resolves a logical field from an ordered key/value mapping. Each
// pattern is tried three ways before moving to the next: exact key,
// case-insensitive equality, then case-insensitive substring over the keys
// in extraction order. Substring matching comes last so "Begin Snap Id"
// patterns cannot be captured by a "Begin Snap Time" key.
func kvValue(kv *htmlreport.KeyValues, patterns []string) (string, bool) {
	for _, pattern := range patterns {
		if v, ok := kv.Get(pattern); ok && v != "" {
			return v, true
		}
		want := strings.ToLower(pattern)
		for _, key := range kv.Keys() {
			if strings.ToLower(key) == want {
				if v, ok := kv.Get(key); ok && v != "" {
					return v, true
				}
			}
		}
		for _, key := range kv.Keys() {
			if strings.Contains(strings.ToLower(key), want) {
				if v, ok := kv.Get(key); ok && v != "" {
					return v, true
				}
			}
		}
	}
	return "", false
}

// headerIndex returns the first header whose lowercase text contains all
// of wantAll and none of wantNone, or "".
func headerIndex(headers []string, wantAll []string, wantNone []string) string {
	for _, h := range headers {
		lower := strings.ToLower(h)
		ok := true
		for _, w := range wantAll {
			if !strings.Contains(lower, w) {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		for _, w := range wantNone {
			if strings.Contains(lower, w) {
				ok = false
				break
			}
		}
		if ok {
			return h
		}
	}
	return ""
}

// ---------------------------------------------------------------------------
// db_info

// parseDBInfo extracts the database identity block. detectTopology is the
// release-specific hook that classifies the deployment from the same
// key/value mapping.
func (b *baseParser) parseDBInfo(doc *htmlreport.Document, detectTopology func(kv *htmlreport.KeyValues) (models.InstanceType, string)) (*models.DBInfo, error) {
	table := b.findSectionTable(doc, SectionDBInfo)
	if table == nil {
		return nil, nil
	}

	kv := dbInfoPairs(table)
	if kv.Len() == 0 {
		return nil, nil
	}

	info := &models.DBInfo{Version: b.version, InstanceType: models.InstanceSingle}
	if v, ok := kvValue(kv, []string{"DB Name", "Database Name", "DB_NAME", "Name"}); ok {
		info.DBName = commonutils.CleanText(v)
	}
	if v, ok := kvValue(kv, []string{"Instance Name", "INSTANCE_NAME", "Inst Name", "Instance"}); ok {
		info.InstanceName = commonutils.CleanText(v)
	}
	if v, ok := kvValue(kv, []string{"Host Name", "Hostname", "Host"}); ok {
		info.HostName = commonutils.CleanText(v)
	}
	if v, ok := kvValue(kv, []string{"Platform Name", "Platform", "OS"}); ok {
		info.Platform = commonutils.CleanText(v)
	}
	if v, ok := kvValue(kv, []string{"Startup Time", "Instance Started", "Started"}); ok {
		if t, ok := parseReportTime(v); ok {
			info.StartupTime = t
		}
	}
	if info.DBName == "" && info.InstanceName == "" {
		return nil, nil
	}
	if info.DBName == "" {
		info.DBName = "UNKNOWN"
	}
	if info.InstanceName == "" {
		info.InstanceName = "UNKNOWN"
	}

	instanceType, container := detectTopology(kv)
	info.InstanceType = instanceType
	info.IsRAC = instanceType == models.InstanceRAC
	info.ContainerName = container
	info.InstanceNumber = instanceNumber(kv, info.InstanceName, info.IsRAC)

	b.logger.Debug("db info extracted",
		zap.String("db", info.DBName),
		zap.String("instance", info.InstanceName),
		zap.String("topology", info.InstanceType.String()))
	return info, nil
}

// dbInfoPairs reads the identity table as key/value pairs whatever its
// shape: true two-column tables directly, header tables by pairing the
// header row with the first data row.
func dbInfoPairs(table *html.Node) *htmlreport.KeyValues {
	structure := htmlreport.AnalyzeTable(table)
	if structure.IsKeyValue {
		return htmlreport.ParseKeyValueTable(table, 0, 1)
	}

	headers, rows := htmlreport.ParseHeaderTable(table, 0)
	kv := &htmlreport.KeyValues{}
	if len(rows) == 0 {
		// Single-row tables still sometimes parse as key/value columns.
		return htmlreport.ParseKeyValueTable(table, 0, 1)
	}
	for _, h := range headers {
		if v := rows[0][h]; v != "" && h != "" {
			kv.Set(commonutils.CleanKey(h), v)
		}
	}
	return kv
}

func parseReportTime(value string) (time.Time, bool) {
	text := commonutils.CleanText(value)
	for _, layout := range startupTimeLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// detectRACKeywords reports a cluster deployment: a RAC keyword in a key
// with an affirmative value, or a RAC keyword anywhere in a value.
func detectRACKeywords(kv *htmlreport.KeyValues) bool {
	keywords := []string{"rac", "real application clusters", "parallel server", "cluster"}
	affirmative := []string{"yes", "true", "enabled"}

	for _, key := range kv.Keys() {
		value, _ := kv.Get(key)
		keyLower := strings.ToLower(key)
		valueLower := strings.ToLower(value)
		for _, kw := range keywords {
			if strings.Contains(keyLower, kw) {
				for _, a := range affirmative {
					if strings.Contains(valueLower, a) {
						return true
					}
				}
			}
			if strings.Contains(valueLower, kw) {
				return true
			}
		}
	}
	return false
}

// detectContainer classifies multitenant deployments: any key naming a
// container decides between PDB and CDB by its value, defaulting to CDB
// for a bare yes/true flag. The container name comes from an explicit
// name field when one exists, else from the indicator value itself.
func detectContainer(kv *htmlreport.KeyValues) (models.InstanceType, string, bool) {
	indicators := []string{"container", "cdb", "pdb"}
	for _, key := range kv.Keys() {
		value, _ := kv.Get(key)
		keyLower := strings.ToLower(key)
		valueLower := strings.ToLower(value)
		for _, ind := range indicators {
			if !strings.Contains(keyLower, ind) {
				continue
			}
			name := containerName(kv, value)
			if strings.Contains(valueLower, "pdb") {
				return models.InstancePDB, name, true
			}
			if strings.Contains(valueLower, "cdb") {
				return models.InstanceCDB, name, true
			}
			if affirmativeValue(valueLower) {
				return models.InstanceCDB, name, true
			}
		}
	}
	return models.InstanceSingle, "", false
}

func affirmativeValue(lower string) bool {
	switch lower {
	case "yes", "true", "enabled", "y":
		return true
	}
	return false
}

func containerName(kv *htmlreport.KeyValues, indicatorValue string) string {
	if v, ok := kvValue(kv, []string{"Container Name", "PDB Name", "Con Name"}); ok {
		return commonutils.CleanText(v)
	}
	cleaned := commonutils.CleanText(indicatorValue)
	if affirmativeValue(strings.ToLower(cleaned)) {
		return ""
	}
	return cleaned
}

var trailingDigitsRe = regexp.MustCompile(`(\d+)$`)

// instanceNumber resolves the cluster instance number: an explicit field,
// then trailing digits of the instance name, then 1 for a RAC report with
// neither, and 0 otherwise.
func instanceNumber(kv *htmlreport.KeyValues, instanceName string, isRAC bool) int {
	if v, ok := kvValue(kv, []string{"Instance Number", "Inst Num", "Inst#"}); ok {
		if n, ok := commonutils.CleanInt(v); ok && n > 0 {
			return int(n)
		}
	}
	if m := trailingDigitsRe.FindStringSubmatch(instanceName); m != nil {
		if n, ok := commonutils.CleanInt(m[1]); ok && n > 0 {
			return int(n)
		}
	}
	if isRAC {
		return 1
	}
	return 0
}

// ---------------------------------------------------------------------------
// snapshot_info

func (b *baseParser) parseSnapshotInfo(doc *htmlreport.Document) (*models.SnapshotInfo, error) {
	table := b.findSectionTable(doc, SectionSnapshotInfo)
	if table == nil {
		// Snapshot tables often carry no anchor at all; recognize the
		// column signature among the leading tables instead.
		for i, candidate := range doc.Tables() {
			if i >= 5 {
				break
			}
			if htmlreport.HasColumns(candidate, []string{"Snap Id", "Snap Time"}) {
				table = candidate
				break
			}
		}
	}
	if table == nil {
		return nil, nil
	}

	structure := htmlreport.AnalyzeTable(table)
	if structure.IsKeyValue {
		if snap := snapshotFromKV(htmlreport.ParseKeyValueTable(table, 0, 1)); snap != nil {
			return snap, nil
		}
	}
	headers, rows := htmlreport.ParseHeaderTable(table, 0)
	if snap := snapshotFromRows(headers, rows); snap != nil {
		return snap, nil
	}
	return nil, nil
}

func snapshotFromKV(kv *htmlreport.KeyValues) *models.SnapshotInfo {
	if kv.Len() == 0 {
		return nil
	}
	snap := &models.SnapshotInfo{}
	populated := false

	if v, ok := kvValue(kv, []string{"Begin Snap Id", "Begin Snap"}); ok {
		if n, ok := commonutils.CleanInt(v); ok {
			snap.BeginSnapID = n
			populated = true
		}
	}
	if v, ok := kvValue(kv, []string{"End Snap Id", "End Snap"}); ok {
		if n, ok := commonutils.CleanInt(v); ok {
			snap.EndSnapID = n
			populated = true
		}
	}
	if v, ok := kvValue(kv, []string{"Begin Snap Time", "Begin Time"}); ok {
		if t, ok := parseReportTime(v); ok {
			snap.BeginTime = t
			populated = true
		}
	}
	if v, ok := kvValue(kv, []string{"End Snap Time", "End Time"}); ok {
		if t, ok := parseReportTime(v); ok {
			snap.EndTime = t
			populated = true
		}
	}
	if v, ok := kvValue(kv, []string{"Elapsed Time", "Elapsed", "Duration"}); ok {
		if n, ok := commonutils.DurationMinutes(v); ok {
			snap.ElapsedTimeMinutes = n
			populated = true
		}
	}
	if v, ok := kvValue(kv, []string{"DB Time", "Database Time"}); ok {
		if n, ok := commonutils.DurationMinutes(v); ok {
			snap.DBTimeMinutes = n
			populated = true
		}
	}

	if !populated {
		return nil
	}
	return snap
}

// snapshotFromRows handles the classic AWR layout where Begin Snap / End
// Snap / Elapsed / DB Time are row labels under Snap Id / Snap Time
// columns.
func snapshotFromRows(headers []string, rows []htmlreport.Row) *models.SnapshotInfo {
	if len(headers) == 0 || len(rows) == 0 {
		return nil
	}

	idCol := headerIndex(headers, []string{"snap", "id"}, nil)
	timeCol := headerIndex(headers, []string{"snap", "time"}, nil)
	if timeCol == "" {
		timeCol = headerIndex(headers, []string{"time"}, nil)
	}
	labelCol := headers[0]

	snap := &models.SnapshotInfo{}
	populated := false
	for _, row := range rows {
		label := strings.ToLower(row[labelCol])
		switch {
		case strings.Contains(label, "begin snap"):
			if idCol != "" {
				if n, ok := commonutils.CleanInt(row[idCol]); ok {
					snap.BeginSnapID = n
					populated = true
				}
			}
			if timeCol != "" {
				if t, ok := parseReportTime(row[timeCol]); ok {
					snap.BeginTime = t
					populated = true
				}
			}
		case strings.Contains(label, "end snap"):
			if idCol != "" {
				if n, ok := commonutils.CleanInt(row[idCol]); ok {
					snap.EndSnapID = n
					populated = true
				}
			}
			if timeCol != "" {
				if t, ok := parseReportTime(row[timeCol]); ok {
					snap.EndTime = t
					populated = true
				}
			}
		case strings.Contains(label, "elapsed"):
			if timeCol != "" {
				if n, ok := commonutils.DurationMinutes(row[timeCol]); ok {
					snap.ElapsedTimeMinutes = n
					populated = true
				}
			}
		case strings.Contains(label, "db time"):
			if timeCol != "" {
				if n, ok := commonutils.DurationMinutes(row[timeCol]); ok {
					snap.DBTimeMinutes = n
					populated = true
				}
			}
		}
	}

	if !populated {
		return nil
	}
	return snap
}

// ---------------------------------------------------------------------------
// load_profile

func (b *baseParser) parseLoadProfile(doc *htmlreport.Document) (*models.LoadProfile, error) {
	table := b.findSectionTable(doc, SectionLoadProfile)
	if table == nil {
		return nil, nil
	}

	headers, rows := htmlreport.ParseHeaderTable(table, 0)
	if len(rows) == 0 {
		return nil, nil
	}
	perSecCol := headerIndex(headers, []string{"per second"}, nil)
	if perSecCol == "" {
		perSecCol = headerIndex(headers, []string{"per sec"}, nil)
	}
	if perSecCol == "" {
		perSecCol = headerIndex(headers, []string{"/sec"}, nil)
	}
	perTxnCol := headerIndex(headers, []string{"per transaction"}, nil)
	if perTxnCol == "" {
		perTxnCol = headerIndex(headers, []string{"per txn"}, nil)
	}
	if perTxnCol == "" {
		perTxnCol = headerIndex(headers, []string{"/txn"}, nil)
	}
	if perSecCol == "" {
		return nil, nil
	}
	labelCol := headers[0]
	if labelCol == perSecCol || labelCol == perTxnCol {
		return nil, nil
	}

	profile := &models.LoadProfile{}
	populated := false
	for _, row := range rows {
		label := strings.ToLower(commonutils.CleanText(row[labelCol]))
		if label == "" {
			continue
		}
		perSec, okSec := commonutils.CleanNumber(row[perSecCol])
		perTxn := 0.0
		okTxn := false
		if perTxnCol != "" {
			perTxn, okTxn = commonutils.CleanNumber(row[perTxnCol])
		}
		if !okSec && !okTxn {
			continue
		}
		if routeLoadProfileMetric(profile, label, perSec, okSec, perTxn, okTxn) {
			populated = true
		}
	}

	if !populated {
		return nil, nil
	}
	return profile, nil
}

// routeLoadProfileMetric assigns one Load Profile row to its typed fields.
// "Hard parses" must be tested before "parses" since the label contains
// both words.
func routeLoadProfileMetric(p *models.LoadProfile, label string, perSec float64, okSec bool, perTxn float64, okTxn bool) bool {
	set := func(sec, txn *float64) bool {
		hit := false
		if okSec && sec != nil {
			*sec = perSec
			hit = true
		}
		if okTxn && txn != nil {
			*txn = perTxn
			hit = true
		}
		return hit
	}

	switch {
	case strings.Contains(label, "db time"):
		return set(&p.DBTimePerSecond, &p.DBTimePerTransaction)
	case strings.Contains(label, "logical read"):
		return set(&p.LogicalReadsPerSecond, &p.LogicalReadsPerTransaction)
	case strings.Contains(label, "physical read"):
		return set(&p.PhysicalReadsPerSecond, nil)
	case strings.Contains(label, "physical write"):
		return set(&p.PhysicalWritesPerSecond, nil)
	case strings.Contains(label, "user call"):
		return set(&p.UserCallsPerSecond, nil)
	case strings.Contains(label, "hard parse"):
		return set(&p.HardParsesPerSecond, nil)
	case strings.Contains(label, "parse"):
		return set(&p.ParsesPerSecond, nil)
	case strings.Contains(label, "sort"):
		return set(&p.SortsPerSecond, nil)
	case strings.Contains(label, "logon"):
		return set(&p.LogonsPerSecond, nil)
	case strings.Contains(label, "execute"):
		return set(&p.ExecutesPerSecond, nil)
	case strings.Contains(label, "rollback"):
		return set(&p.RollbacksPerSecond, nil)
	case strings.Contains(label, "transaction"):
		return set(&p.TransactionsPerSecond, nil)
	}
	return false
}

// ---------------------------------------------------------------------------
// wait_events

func (b *baseParser) parseWaitEvents(doc *htmlreport.Document) ([]models.WaitEvent, error) {
	table := b.findSectionTable(doc, SectionWaitEvents)
	if table == nil {
		return nil, nil
	}
	headers, rows := htmlreport.ParseHeaderTable(table, 0)
	return b.waitEventsFromRows(headers, rows), nil
}

func (b *baseParser) waitEventsFromRows(headers []string, rows []htmlreport.Row) []models.WaitEvent {
	eventCol := headerIndex(headers, []string{"event"}, nil)
	if eventCol == "" {
		return nil
	}
	waitsCol := headerIndex(headers, []string{"waits"}, nil)
	if waitsCol == "" {
		waitsCol = headerIndex(headers, []string{"wait", "count"}, nil)
	}
	timeCol := headerIndex(headers, []string{"time"}, []string{"avg", "%", "wait class", "cpu"})
	pctCol := headerIndex(headers, []string{"%"}, nil)
	classCol := ""
	if b.hasWaitCls {
		classCol = headerIndex(headers, []string{"class"}, nil)
	}

	var events []models.WaitEvent
	for _, row := range rows {
		name := commonutils.NormalizeEventName(row[eventCol])
		if name == "" {
			continue
		}
		switch strings.ToLower(name) {
		case "total", "other", "totals":
			continue
		}

		event := models.WaitEvent{EventName: name}
		if waitsCol != "" {
			if n, ok := commonutils.CleanInt(row[waitsCol]); ok {
				event.Waits = n
			}
		}
		if timeCol != "" {
			if n, ok := commonutils.CleanNumber(row[timeCol]); ok {
				event.TotalWaitTimeSec = n
			}
		}
		if pctCol != "" {
			if n, ok := commonutils.CleanPercentage(row[pctCol]); ok {
				event.PercentDBTime = n
			}
		}
		// Recomputed from totals: the report's own average column is
		// rounded to one decimal and drifts across releases.
		if event.Waits > 0 {
			event.AvgWaitMs = event.TotalWaitTimeSec * 1000 / float64(event.Waits)
		}
		if classCol != "" {
			event.WaitClass = commonutils.CleanText(row[classCol])
		}
		events = append(events, event)
	}
	return events
}

// ---------------------------------------------------------------------------
// sql_statistics

func (b *baseParser) parseSQLStatistics(doc *htmlreport.Document) ([]models.SQLStatistic, error) {
	var stats []models.SQLStatistic
	seen := make(map[string]bool)

	appendTable := func(table *html.Node) {
		headers, rows := htmlreport.ParseHeaderTable(table, 0)
		for _, stat := range sqlStatsFromRows(headers, rows) {
			if seen[stat.SQLID] {
				continue
			}
			seen[stat.SQLID] = true
			stats = append(stats, stat)
		}
	}

	// Each anchor family may carry its own "SQL ordered by ..." table.
	// Parsers that aggregate collect across all of them; the rest stop at
	// the first hit.
	for _, name := range sectionAnchors[SectionSQLStatistics] {
		if b.aggregateSQL {
			for _, table := range doc.TablesAfterAnchor(name) {
				appendTable(table)
			}
			continue
		}
		if table := doc.TableAfterAnchor(name); table != nil {
			appendTable(table)
			if len(stats) > 0 {
				break
			}
		}
	}
	if len(stats) == 0 {
		for _, re := range sectionCaptions[SectionSQLStatistics] {
			if table := doc.FindTableByCaption(re); table != nil {
				appendTable(table)
				break
			}
		}
	}

	if b.sqlRowLimit > 0 && len(stats) > b.sqlRowLimit {
		stats = stats[:b.sqlRowLimit]
	}
	return stats, nil
}

func sqlStatsFromRows(headers []string, rows []htmlreport.Row) []models.SQLStatistic {
	idCol := headerIndex(headers, []string{"sql id"}, nil)
	if idCol == "" {
		idCol = headerIndex(headers, []string{"sql_id"}, nil)
	}
	if idCol == "" {
		return nil
	}
	textCol := headerIndex(headers, []string{"sql text"}, nil)
	if textCol == "" {
		textCol = headerIndex(headers, []string{"command"}, nil)
	}
	execCol := headerIndex(headers, []string{"execution"}, nil)
	elapsedCol := headerIndex(headers, []string{"elapsed"}, nil)
	cpuCol := headerIndex(headers, []string{"cpu"}, nil)
	getsCol := headerIndex(headers, []string{"gets"}, nil)
	if getsCol == "" {
		getsCol = headerIndex(headers, []string{"buffer get"}, nil)
	}
	readsCol := headerIndex(headers, []string{"reads"}, []string{"logical"})
	if readsCol == "" {
		readsCol = headerIndex(headers, []string{"disk read"}, nil)
	}

	var stats []models.SQLStatistic
	for _, row := range rows {
		sqlID := commonutils.CleanText(row[idCol])
		if sqlID == "" {
			continue
		}
		stat := models.SQLStatistic{SQLID: sqlID}
		if textCol != "" {
			text := commonutils.CleanText(row[textCol])
			if len(text) > models.MaxSQLTextLen {
				text = text[:models.MaxSQLTextLen]
			}
			stat.SQLText = text
		}
		if execCol != "" {
			if n, ok := commonutils.CleanInt(row[execCol]); ok {
				stat.Executions = n
			}
		}
		if elapsedCol != "" {
			if n, ok := commonutils.CleanNumber(row[elapsedCol]); ok {
				stat.ElapsedTimeSec = n
			}
		}
		if cpuCol != "" {
			if n, ok := commonutils.CleanNumber(row[cpuCol]); ok {
				stat.CPUTimeSec = n
			}
		}
		stat.IOTimeSec = models.DeriveIOTime(stat.ElapsedTimeSec, stat.CPUTimeSec)
		if getsCol != "" {
			if n, ok := commonutils.CleanInt(row[getsCol]); ok {
				stat.Gets = n
			}
		}
		if readsCol != "" {
			if n, ok := commonutils.CleanInt(row[readsCol]); ok {
				stat.Reads = n
			}
		}
		stats = append(stats, stat)
	}
	return stats
}

// ---------------------------------------------------------------------------
// instance_activity

func (b *baseParser) parseInstanceActivity(doc *htmlreport.Document) ([]models.InstanceActivity, error) {
	table := b.findSectionTable(doc, SectionInstanceActivity)
	if table == nil {
		return nil, nil
	}
	headers, rows := htmlreport.ParseHeaderTable(table, 0)

	nameCol := headerIndex(headers, []string{"statistic"}, nil)
	if nameCol == "" {
		nameCol = headerIndex(headers, []string{"name"}, nil)
	}
	if nameCol == "" {
		return nil, nil
	}
	totalCol := headerIndex(headers, []string{"total"}, nil)
	if totalCol == "" {
		totalCol = headerIndex(headers, []string{"value"}, nil)
	}
	perSecCol := headerIndex(headers, []string{"per second"}, nil)
	perTxnCol := headerIndex(headers, []string{"per trans"}, nil)

	var activities []models.InstanceActivity
	for _, row := range rows {
		name := commonutils.CleanText(row[nameCol])
		if name == "" {
			continue
		}
		activity := models.InstanceActivity{StatisticName: name}
		if totalCol != "" {
			if n, ok := commonutils.CleanNumber(row[totalCol]); ok {
				activity.TotalValue = n
			}
		}
		if perSecCol != "" {
			if n, ok := commonutils.CleanNumber(row[perSecCol]); ok {
				activity.PerSecond = n
			}
		}
		if perTxnCol != "" {
			if n, ok := commonutils.CleanNumber(row[perTxnCol]); ok {
				activity.PerTransaction = n
			}
		}
		activities = append(activities, activity)
	}
	return activities, nil
}
