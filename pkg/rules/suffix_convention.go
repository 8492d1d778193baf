package rules

import (
	"fmt"
	"strings"

	"github.com/nlspoon/sqlstyle.guide/pkg/types"
)

// typeSuffixes maps a column type keyword to the suffixes its columns are
// expected to carry. The mapping is a best-effort heuristic, so the rule
// only ever warns.
var typeSuffixes = map[string][]string{
	"DATE":      {"_date"},
	"TIME":      {"_time"},
	"TIMESTAMP": {"_date", "_time", "_at"},
	"DATETIME":  {"_date", "_time", "_at"},
}

// SuffixConventionRule checks that column names in CREATE TABLE bodies
// carry the suffix matching their semantic role, inferred from the
// adjacent type keyword (a DATE column should end in _date).
type SuffixConventionRule struct{}

// ID returns the rule identifier
func (*SuffixConventionRule) ID() string {
	return "suffix_convention"
}

// Check inspects the column definitions of every CREATE TABLE body.
func (r *SuffixConventionRule) Check(doc *Document) []*types.Violation {
	var violations []*types.Violation
	for _, body := range tableBodies(doc) {
		for _, def := range columnDefs(doc, body) {
			nameTok := doc.Tokens[def.nameTok]
			suffixes, ok := typeSuffixes[doc.Tokens[def.typeTok].Normalized()]
			if !ok {
				continue
			}
			name := strings.ToLower(nameTok.Unquoted())
			matched := false
			for _, suffix := range suffixes {
				if strings.HasSuffix(name, suffix) {
					matched = true
					break
				}
			}
			if matched {
				continue
			}
			violations = append(violations, &types.Violation{
				RuleID:   r.ID(),
				Severity: types.Severity_WARNING,
				Message: fmt.Sprintf(
					"column %q of type %s should carry a %s suffix",
					nameTok.Unquoted(), doc.Tokens[def.typeTok].Normalized(), strings.Join(suffixes, " or "),
				),
				StartPosition: nameTok.Start,
			})
		}
	}
	return violations
}
