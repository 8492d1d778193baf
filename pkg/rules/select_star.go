package rules

import (
	"github.com/nlspoon/sqlstyle.guide/pkg/segment"
	"github.com/nlspoon/sqlstyle.guide/pkg/types"
)

// SelectStarRule warns about SELECT * projections; explicit column lists
// survive schema changes and document intent.
type SelectStarRule struct{}

// ID returns the rule identifier
func (*SelectStarRule) ID() string {
	return "select_star"
}

// Check flags a star directly following a SELECT keyword.
func (r *SelectStarRule) Check(doc *Document) []*types.Violation {
	var violations []*types.Violation
	for i := range doc.Tree.Nodes {
		n := doc.Tree.Node(i)
		if n.Type != segment.Clause_SELECT || n.KeywordToken < 0 {
			continue
		}
		next := doc.nextSignificant(n.KeywordToken + 1)
		if next >= 0 && (doc.Tokens[next].Match("DISTINCT") || doc.Tokens[next].Match("ALL")) {
			next = doc.nextSignificant(next + 1)
		}
		if next < 0 || next > n.EndToken {
			continue
		}
		if doc.Tokens[next].Text != "*" {
			continue
		}
		violations = append(violations, &types.Violation{
			RuleID:        r.ID(),
			Severity:      types.Severity_WARNING,
			Message:       "SELECT * hides the projection; list the columns explicitly",
			StartPosition: doc.Tokens[next].Start,
		})
	}
	return violations
}
