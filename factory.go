// Copyright The awrparse Authors
// SPDX-License-Identifier: Apache-2.0

package awrparse // import "github.com/spathlavath/awrparse"

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/spathlavath/awrparse/models"
	"github.com/spathlavath/awrparse/parsers"
)

// Registry maps release families to lazily-built parser instances.
// Parsers are stateless once constructed, so one instance per version is
// shared across all callers.
type Registry struct {
	mu           sync.Mutex
	constructors map[models.OracleVersion]func() parsers.VersionParser
	instances    map[models.OracleVersion]parsers.VersionParser
}

func NewRegistry() *Registry {
	return &Registry{
		constructors: make(map[models.OracleVersion]func() parsers.VersionParser),
		instances:    make(map[models.OracleVersion]parsers.VersionParser),
	}
}

// Register binds a parser constructor to a release family. Re-registering
// a version replaces its constructor and drops any memoized instance.
func (r *Registry) Register(version models.OracleVersion, constructor func() parsers.VersionParser) error {
	if version == models.VersionUnknown || version == "" {
		return fmt.Errorf("cannot register parser for version %q", version)
	}
	if constructor == nil {
		return errors.New("cannot register nil parser constructor")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.constructors[version] = constructor
	delete(r.instances, version)
	return nil
}

// Parser returns the memoized parser for a version, building it on first
// use. The bool is false when no constructor is registered.
func (r *Registry) Parser(version models.OracleVersion) (parsers.VersionParser, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.instances[version]; ok {
		return p, true
	}
	constructor, ok := r.constructors[version]
	if !ok {
		return nil, false
	}
	p := constructor()
	r.instances[version] = p
	return p, true
}

// SupportedVersions lists the registered release families, newest first.
func (r *Registry) SupportedVersions() []models.OracleVersion {
	r.mu.Lock()
	defer r.mu.Unlock()
	var versions []models.OracleVersion
	for _, v := range models.KnownVersions {
		if _, ok := r.constructors[v]; ok {
			versions = append(versions, v)
		}
	}
	return versions
}

// Factory resolves raw report text to a concrete parser and runs the full
// pipeline. It is safe for concurrent use.
type Factory struct {
	registry *Registry
	detector *VersionDetector
	logger   *zap.Logger
}

// NewFactory builds a factory with the stock 11g/12c/19c parsers
// registered. 21c reports resolve to the 19c parser via its compatibility
// patterns; 10g detection succeeds but has no parser, surfacing as a
// no_parser result.
func NewFactory(logger *zap.Logger) *Factory {
	if logger == nil {
		logger = zap.NewNop()
	}
	f := &Factory{
		registry: NewRegistry(),
		detector: NewVersionDetector(logger),
		logger:   logger,
	}

	defaults := map[models.OracleVersion]func() parsers.VersionParser{
		models.Oracle11g: func() parsers.VersionParser { return parsers.NewOracle11gParser(logger) },
		models.Oracle12c: func() parsers.VersionParser { return parsers.NewOracle12cParser(logger) },
		models.Oracle19c: func() parsers.VersionParser { return parsers.NewOracle19cParser(logger) },
	}
	for version, constructor := range defaults {
		if err := f.registry.Register(version, constructor); err != nil {
			logger.Warn("skipping default parser registration",
				zap.String("version", version.String()), zap.Error(err))
		}
	}
	return f
}

// Registry exposes the factory's registry for callers adding their own
// parsers.
func (f *Factory) Registry() *Registry {
	return f.registry
}

// CreateParser resolves the parser for a document: detect the version,
// look it up, re-validate with CanParse, and on any miss brute-force
// CanParse across every registered parser newest-first. Returns nil when
// no parser accepts the document (ASH reports, garbage input, unsupported
// releases).
func (f *Factory) CreateParser(content string) parsers.VersionParser {
	version := f.detector.DetectVersion(content)

	if version != models.VersionUnknown {
		if p, ok := f.registry.Parser(version); ok && p.CanParse(content) {
			return p
		}
		f.logger.Debug("detected version has no accepting parser",
			zap.String("version", version.String()))
	}

	for _, v := range f.registry.SupportedVersions() {
		if v == version {
			continue
		}
		p, ok := f.registry.Parser(v)
		if !ok {
			continue
		}
		if p.CanParse(content) {
			f.logger.Debug("parser resolved by probing",
				zap.String("detected", version.String()),
				zap.String("parser", v.String()))
			return p
		}
	}
	return nil
}

// Parse runs the full pipeline on one document. The result is never nil:
// when no parser accepts the document it carries a single critical
// no_parser error and the detected (possibly unknown) version.
func (f *Factory) Parse(content string) *models.ParseResult {
	p := f.CreateParser(content)
	if p == nil {
		version := f.detector.DetectVersion(content)
		result := models.NewParseResult(version)
		result.AddError("factory", models.ErrTypeNoParser,
			fmt.Sprintf("no parser available for version %s", version), "", true)
		return result
	}
	return parsers.Parse(p, content, f.logger)
}

var (
	defaultFactoryOnce sync.Once
	defaultFactory     *Factory
)

// ParseAWR is the package-level entry point: one call from raw report text
// to a complete ParseResult, using a shared default factory. It never
// returns nil and never panics.
func ParseAWR(content string) *models.ParseResult {
	defaultFactoryOnce.Do(func() {
		defaultFactory = NewFactory(nil)
	})
	return defaultFactory.Parse(content)
}
