// Package linter provides a high-level API for SQL style linting and
// formatting.
//
// # Quick Start
//
//	l := linter.New(nil)
//
//	report, err := l.Lint("select * from staff;")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, v := range report.Violations {
//	    fmt.Printf("[%s] %s: %s\n", v.Severity, v.StartPosition, v.Message)
//	}
//
// # Using Custom Configuration
//
//	cfg, err := config.LoadFromFile("sqlstyle.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report, err := linter.New(cfg).Lint(source)
//
// # Formatting
//
//	fixed, err := linter.New(nil).Format(source)
package linter

import (
	"log/slog"

	"github.com/nlspoon/sqlstyle.guide/pkg/config"
	"github.com/nlspoon/sqlstyle.guide/pkg/lexer"
	"github.com/nlspoon/sqlstyle.guide/pkg/report"
	"github.com/nlspoon/sqlstyle.guide/pkg/rules"
	"github.com/nlspoon/sqlstyle.guide/pkg/segment"
	"github.com/nlspoon/sqlstyle.guide/pkg/token"
	"github.com/nlspoon/sqlstyle.guide/pkg/types"
)

// Linter runs the lint pipeline over single documents.
//
// Linter is safe for concurrent use by multiple goroutines: the pipeline
// holds no shared mutable state, and the reserved keyword set is immutable
// after package init.
type Linter struct {
	config *config.Config
}

// New creates a Linter. A nil cfg means the default configuration: every
// rule enabled, uppercase keywords, 30-byte identifier limit.
func New(cfg *config.Config) *Linter {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Linter{config: cfg}
}

// Config returns the configuration the linter runs with.
func (l *Linter) Config() *config.Config {
	return l.config
}

// Lint checks source against every enabled rule and returns the sorted
// report. A lexing or segmentation failure aborts the whole document: the
// returned error is a *lexer.LexError or *segment.StructureError carrying
// the offending position, and no partial report is produced.
func (l *Linter) Lint(source string) (*types.Report, error) {
	doc, err := l.analyze(source)
	if err != nil {
		return nil, err
	}
	violations := rules.Check(doc)
	slog.Debug("lint completed", "violations", len(violations))
	return report.Build(violations), nil
}

// Format applies every suggested fix from the enabled rules and returns
// the rewritten source. It fails with the same fatal errors as Lint, plus
// *report.ConflictError when two fixes overlap.
func (l *Linter) Format(source string) (string, error) {
	doc, err := l.analyze(source)
	if err != nil {
		return "", err
	}
	return report.ApplyFixes(source, rules.Check(doc))
}

// analyze runs the shared pipeline front: tokenize, classify, segment.
func (l *Linter) analyze(source string) (*rules.Document, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	tokens = token.ClassifyAll(tokens)
	tree, err := segment.Segment(tokens)
	if err != nil {
		return nil, err
	}
	return &rules.Document{
		Source: source,
		Tokens: tokens,
		Tree:   tree,
		Config: l.config,
	}, nil
}
