package types

import (
	"encoding/json"
	"fmt"
)

// Position represents a position in the source text.
// Line and Column are 1-based; Offset is the 0-based byte offset.
type Position struct {
	Line   int32 `json:"line"   yaml:"line"`
	Column int32 `json:"column" yaml:"column"`
	Offset int   `json:"offset" yaml:"offset"`
}

func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// Severity represents the severity level of a violation.
type Severity int32

const (
	Severity_UNSPECIFIED Severity = 0
	Severity_ERROR       Severity = 1
	Severity_WARNING     Severity = 2
)

func (s Severity) String() string {
	switch s {
	case Severity_ERROR:
		return "ERROR"
	case Severity_WARNING:
		return "WARNING"
	default:
		return "UNSPECIFIED"
	}
}

// MarshalJSON implements json.Marshaler for Severity
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// MarshalYAML implements yaml.Marshaler for Severity
func (s Severity) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Severity
func (s *Severity) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var str string
	if err := unmarshal(&str); err != nil {
		return err
	}
	*s = severityFromString(str)
	return nil
}

// UnmarshalJSON implements json.Unmarshaler for Severity
func (s *Severity) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = severityFromString(str)
	return nil
}

func severityFromString(s string) Severity {
	switch s {
	case "ERROR", "error":
		return Severity_ERROR
	case "WARNING", "warning":
		return Severity_WARNING
	default:
		return Severity_UNSPECIFIED
	}
}

// Fix is a mechanical replacement of a source span. Start and End are byte
// offsets into the original source; End is exclusive.
type Fix struct {
	Start       int    `json:"start"       yaml:"start"`
	End         int    `json:"end"         yaml:"end"`
	Replacement string `json:"replacement" yaml:"replacement"`
}

// Overlaps reports whether two fixes touch the same source span. Spans
// are half-open, so a pure insertion at another fix's boundary does not
// conflict; two replacements of the same range do, even when identical.
func (f *Fix) Overlaps(other *Fix) bool {
	if f == nil || other == nil {
		return false
	}
	if f.Start == other.Start && f.End == other.End {
		return true
	}
	return f.Start < other.End && other.Start < f.End
}

// Violation represents a single rule finding. Violations are created by
// rules and never mutated afterwards.
type Violation struct {
	RuleID        string   `json:"ruleId"                 yaml:"ruleId"`
	Severity      Severity `json:"severity"               yaml:"severity"`
	Message       string   `json:"message"                yaml:"message"`
	StartPosition Position `json:"startPosition"          yaml:"startPosition"`
	SuggestedFix  *Fix     `json:"suggestedFix,omitempty" yaml:"suggestedFix,omitempty"`
}

// Report contains the results of linting a single document.
//
// Violations are sorted by position, then rule ID.
type Report struct {
	// Violations contains all findings from the enabled rules.
	// Empty means the document is fully compliant.
	Violations []*Violation `json:"violations" yaml:"violations"`

	// Summary provides aggregate statistics about the findings.
	Summary Summary `json:"summary" yaml:"summary"`
}

// Summary categorizes findings by severity level.
type Summary struct {
	Total    int `json:"total"    yaml:"total"`
	Errors   int `json:"errors"   yaml:"errors"`
	Warnings int `json:"warnings" yaml:"warnings"`
}

// Summarize recomputes the report summary from its violations.
func (r *Report) Summarize() {
	s := Summary{Total: len(r.Violations)}
	for _, v := range r.Violations {
		switch v.Severity {
		case Severity_ERROR:
			s.Errors++
		case Severity_WARNING:
			s.Warnings++
		}
	}
	r.Summary = s
}

// HasErrors returns true if the report contains any ERROR-level findings.
//
// Useful for CI pipelines that should fail on errors:
//
//	if report.HasErrors() {
//	    os.Exit(1)
//	}
func (r *Report) HasErrors() bool {
	return r.Summary.Errors > 0
}

// HasWarnings returns true if the report contains any WARNING-level findings.
func (r *Report) HasWarnings() bool {
	return r.Summary.Warnings > 0
}

// IsClean returns true if the report contains no findings at all.
func (r *Report) IsClean() bool {
	return len(r.Violations) == 0
}

// FilterBySeverity returns the violations carrying the given severity.
func (r *Report) FilterBySeverity(severity Severity) []*Violation {
	var out []*Violation
	for _, v := range r.Violations {
		if v.Severity == severity {
			out = append(out, v)
		}
	}
	return out
}

func (r *Report) String() string {
	return fmt.Sprintf(
		"Lint Results: %d total (%d errors, %d warnings)",
		r.Summary.Total,
		r.Summary.Errors,
		r.Summary.Warnings,
	)
}
