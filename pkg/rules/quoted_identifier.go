package rules

import (
	"fmt"
	"strings"

	"github.com/nlspoon/sqlstyle.guide/pkg/token"
	"github.com/nlspoon/sqlstyle.guide/pkg/types"
)

// QuotedIdentifierRule flags identifiers quoted with anything other than
// ASCII double quotes (backticks, square brackets). When the bare form
// would still be a valid identifier, the fix strips the quotes.
type QuotedIdentifierRule struct{}

// ID returns the rule identifier
func (*QuotedIdentifierRule) ID() string {
	return "quoted_identifier"
}

// Check inspects every identifier token's quoting style.
func (r *QuotedIdentifierRule) Check(doc *Document) []*types.Violation {
	var violations []*types.Violation
	for _, t := range doc.Tokens {
		if t.Kind != token.Kind_IDENTIFIER {
			continue
		}
		var style string
		switch t.Quote {
		case token.Quote_BACKTICK:
			style = "backticks"
		case token.Quote_BRACKET:
			style = "square brackets"
		default:
			continue
		}
		v := &types.Violation{
			RuleID:        r.ID(),
			Severity:      types.Severity_ERROR,
			Message:       fmt.Sprintf("identifier %s is quoted with %s; use double quotes if quoting is unavoidable", t.Text, style),
			StartPosition: t.Start,
		}
		if bare := t.Unquoted(); bareIdentifierValid(bare) {
			v.SuggestedFix = &types.Fix{
				Start:       t.Start.Offset,
				End:         t.End(),
				Replacement: bare,
			}
		}
		violations = append(violations, v)
	}
	return violations
}

// bareIdentifierValid reports whether name can stand unquoted: no keyword
// collision, no embedded space or quote characters, and a sound first
// character.
func bareIdentifierValid(name string) bool {
	if name == "" || token.IsReserved(name) {
		return false
	}
	if strings.ContainsAny(name, " \t\n\r\"'`[]") {
		return false
	}
	ch := name[0]
	if !(ch == '_' || ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z') {
		return false
	}
	for i := 1; i < len(name); i++ {
		ch := name[i]
		ok := ch == '_' || ch == '$' ||
			ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch >= '0' && ch <= '9'
		if !ok {
			return false
		}
	}
	return true
}
