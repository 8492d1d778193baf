package rules

import (
	"fmt"
	"strings"

	"github.com/nlspoon/sqlstyle.guide/pkg/token"
	"github.com/nlspoon/sqlstyle.guide/pkg/types"
)

// RiverAlignmentRule enforces "river" formatting: within one statement (or
// subquery), the leading keywords of sibling clauses are right-aligned so
// that they all end at the same column, leaving a vertical gap between
// keywords and clause bodies.
//
// The boundary is computed per container as the maximum of
// startColumn + keywordLength over the participating clauses. A clause
// participates only when its keyword is the first token on its line apart
// from indentation; single-line statements therefore never trigger the
// rule.
type RiverAlignmentRule struct{}

// ID returns the rule identifier
func (*RiverAlignmentRule) ID() string {
	return "river_alignment"
}

// Check aligns each statement and subquery independently.
func (r *RiverAlignmentRule) Check(doc *Document) []*types.Violation {
	var violations []*types.Violation
	for _, container := range doc.Tree.Containers() {
		violations = append(violations, r.checkContainer(doc, container)...)
	}
	return violations
}

func (r *RiverAlignmentRule) checkContainer(doc *Document, container int) []*types.Violation {
	var kwTokens []int
	for _, clause := range doc.Tree.Clauses(container) {
		kw := doc.Tree.Node(clause).KeywordToken
		if kw >= 0 && lineLeading(doc.Tokens, kw) {
			kwTokens = append(kwTokens, kw)
		}
	}
	if len(kwTokens) < 2 {
		return nil
	}

	boundary := int32(0)
	for _, kw := range kwTokens {
		t := doc.Tokens[kw]
		if end := t.Start.Column + int32(t.Len()); end > boundary {
			boundary = end
		}
	}

	var violations []*types.Violation
	for _, kw := range kwTokens {
		t := doc.Tokens[kw]
		if t.Start.Column+int32(t.Len()) == boundary {
			continue
		}
		wantColumn := boundary - int32(t.Len())
		lineStart := t.Start.Offset - int(t.Start.Column-1)
		violations = append(violations, &types.Violation{
			RuleID:   r.ID(),
			Severity: types.Severity_ERROR,
			Message: fmt.Sprintf(
				"keyword %q starts at column %d; right-align it to end at column %d (start at column %d)",
				t.Text, t.Start.Column, boundary, wantColumn,
			),
			StartPosition: t.Start,
			SuggestedFix: &types.Fix{
				Start:       lineStart,
				End:         t.Start.Offset,
				Replacement: strings.Repeat(" ", int(wantColumn-1)),
			},
		})
	}
	return violations
}

// lineLeading reports whether only indentation precedes the token on its
// line. A leading comment disqualifies the clause because the indentation
// rewrite would clobber it.
func lineLeading(tokens []token.Token, i int) bool {
	for j := i - 1; j >= 0; j-- {
		switch tokens[j].Kind {
		case token.Kind_WHITESPACE:
			continue
		case token.Kind_NEWLINE:
			return true
		default:
			return false
		}
	}
	return true
}
