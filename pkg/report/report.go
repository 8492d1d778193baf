// Package report aggregates violations into deterministic reports and
// renders them as text, JSON or YAML. It also applies suggested fixes to
// produce a rewritten source.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/nlspoon/sqlstyle.guide/pkg/types"
)

// ConflictError reports two suggested fixes overlapping the same source
// span. It is fatal for formatting only; linting never applies fixes.
type ConflictError struct {
	First  *types.Violation
	Second *types.Violation
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf(
		"conflicting fixes: %s at %s overlaps %s at %s",
		e.First.RuleID, e.First.StartPosition,
		e.Second.RuleID, e.Second.StartPosition,
	)
}

// Sort orders violations by line, then column, then rule ID. The order of
// rule execution therefore never leaks into reports.
func Sort(violations []*types.Violation) {
	sort.SliceStable(violations, func(i, j int) bool {
		a, b := violations[i], violations[j]
		if a.StartPosition.Line != b.StartPosition.Line {
			return a.StartPosition.Line < b.StartPosition.Line
		}
		if a.StartPosition.Column != b.StartPosition.Column {
			return a.StartPosition.Column < b.StartPosition.Column
		}
		return a.RuleID < b.RuleID
	})
}

// Build sorts the violations and wraps them in a summarized report.
func Build(violations []*types.Violation) *types.Report {
	Sort(violations)
	r := &types.Report{Violations: violations}
	r.Summarize()
	return r
}

// ApplyFixes rewrites source by applying every suggested fix. Fixes are
// applied in reverse position order so earlier offsets stay valid. Two
// fixes overlapping the same span yield a ConflictError; the conflict is
// surfaced, never silently resolved.
func ApplyFixes(source string, violations []*types.Violation) (string, error) {
	var fixable []*types.Violation
	for _, v := range violations {
		if v.SuggestedFix != nil {
			fixable = append(fixable, v)
		}
	}
	if len(fixable) == 0 {
		return source, nil
	}

	sort.SliceStable(fixable, func(i, j int) bool {
		a, b := fixable[i].SuggestedFix, fixable[j].SuggestedFix
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		// Insertions before replacements at the same offset, so the
		// reverse-order application below never shifts a pending span.
		return a.End < b.End
	})
	for i := 1; i < len(fixable); i++ {
		if fixable[i-1].SuggestedFix.Overlaps(fixable[i].SuggestedFix) {
			return "", &ConflictError{First: fixable[i-1], Second: fixable[i]}
		}
	}

	out := source
	for i := len(fixable) - 1; i >= 0; i-- {
		fix := fixable[i].SuggestedFix
		out = out[:fix.Start] + fix.Replacement + out[fix.End:]
	}
	return out, nil
}

// RenderText writes a human-readable report: one table row per violation
// and a closing summary line.
func RenderText(w io.Writer, name string, r *types.Report) error {
	if r.IsClean() {
		_, err := fmt.Fprintf(w, "%s: no issues found.\n", name)
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Severity", "Line", "Col", "Rule", "Message"})
	for _, v := range r.Violations {
		t.AppendRow(table.Row{
			v.Severity.String(),
			v.StartPosition.Line,
			v.StartPosition.Column,
			v.RuleID,
			v.Message,
		})
	}
	fmt.Fprintf(w, "%s:\n", name)
	t.Render()
	_, err := fmt.Fprintf(w, "Summary: %d error(s), %d warning(s)\n", r.Summary.Errors, r.Summary.Warnings)
	return err
}

// RenderJSON writes the report as indented JSON.
func RenderJSON(w io.Writer, r *types.Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

// RenderYAML writes the report as YAML.
func RenderYAML(w io.Writer, r *types.Report) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	return encoder.Encode(r)
}
