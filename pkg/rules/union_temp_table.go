package rules

import (
	"github.com/nlspoon/sqlstyle.guide/pkg/types"
)

// UnionTempTableRule emits an informational warning for statements built
// around UNION. Large unions often signal a schema that wants a lookup
// table instead; there is no mechanical fix.
type UnionTempTableRule struct{}

// ID returns the rule identifier
func (*UnionTempTableRule) ID() string {
	return "union_temp_table_avoidance"
}

// Check flags each statement containing a UNION keyword once.
func (r *UnionTempTableRule) Check(doc *Document) []*types.Violation {
	var violations []*types.Violation
	for _, stmt := range doc.Tree.Statements {
		if !doc.Tree.ContainsKeyword(stmt, "UNION") {
			continue
		}
		start := doc.Tree.Node(stmt).StartToken
		violations = append(violations, &types.Violation{
			RuleID:        r.ID(),
			Severity:      types.Severity_WARNING,
			Message:       "statement uses UNION; consider whether a lookup table or a simpler query would serve",
			StartPosition: doc.Tokens[start].Start,
		})
	}
	return violations
}
