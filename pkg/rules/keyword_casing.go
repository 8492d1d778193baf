package rules

import (
	"fmt"
	"strings"

	"github.com/nlspoon/sqlstyle.guide/pkg/config"
	"github.com/nlspoon/sqlstyle.guide/pkg/token"
	"github.com/nlspoon/sqlstyle.guide/pkg/types"
)

// KeywordCasingRule enforces the configured casing for reserved keywords.
// The fix is mechanical, so violations carry a suggested replacement.
type KeywordCasingRule struct{}

// ID returns the rule identifier
func (*KeywordCasingRule) ID() string {
	return "keyword_casing"
}

// Check reports every keyword token whose raw text does not match the
// configured casing.
func (r *KeywordCasingRule) Check(doc *Document) []*types.Violation {
	var violations []*types.Violation
	for _, t := range doc.Tokens {
		if t.Kind != token.Kind_KEYWORD {
			continue
		}
		want := strings.ToUpper(t.Text)
		caseName := "uppercase"
		if doc.Config.KeywordCase == config.KeywordCase_LOWER {
			want = strings.ToLower(t.Text)
			caseName = "lowercase"
		}
		if t.Text == want {
			continue
		}
		violations = append(violations, &types.Violation{
			RuleID:        r.ID(),
			Severity:      types.Severity_ERROR,
			Message:       fmt.Sprintf("keyword %q should be %s: %q", t.Text, caseName, want),
			StartPosition: t.Start,
			SuggestedFix: &types.Fix{
				Start:       t.Start.Offset,
				End:         t.End(),
				Replacement: want,
			},
		})
	}
	return violations
}
