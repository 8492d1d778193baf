package rules

import (
	"fmt"
	"strings"

	"github.com/nlspoon/sqlstyle.guide/pkg/token"
	"github.com/nlspoon/sqlstyle.guide/pkg/types"
)

// IdentifierNamingRule enforces snake_case identifiers: no camelCase, no
// trailing underscore, no doubled underscores, and a configurable byte
// length limit. Every matched sub-condition is reported as its own
// violation, not just the first.
type IdentifierNamingRule struct{}

// ID returns the rule identifier
func (*IdentifierNamingRule) ID() string {
	return "identifier_naming"
}

// Check inspects every unquoted identifier token.
func (r *IdentifierNamingRule) Check(doc *Document) []*types.Violation {
	var violations []*types.Violation
	for _, t := range doc.Tokens {
		if t.Kind != token.Kind_IDENTIFIER || t.Quote != token.Quote_NONE {
			continue
		}
		name := t.Text
		emit := func(msg string) {
			violations = append(violations, &types.Violation{
				RuleID:        r.ID(),
				Severity:      types.Severity_ERROR,
				Message:       msg,
				StartPosition: t.Start,
			})
		}
		if hasCamelCase(name) {
			emit(fmt.Sprintf("identifier %q uses camelCase; use snake_case instead", name))
		}
		if strings.HasSuffix(name, "_") {
			emit(fmt.Sprintf("identifier %q ends with an underscore", name))
		}
		if strings.Contains(name, "__") {
			emit(fmt.Sprintf("identifier %q contains consecutive underscores", name))
		}
		if max := doc.Config.MaxIdentifierLength; max > 0 && len(name) > max {
			emit(fmt.Sprintf("identifier %q is %d bytes long, limit is %d", name, len(name), max))
		}
	}
	return violations
}

// hasCamelCase reports an uppercase letter directly adjacent to a
// lowercase one. Uniformly cased names never match, so all-uppercase
// identifiers are left to the quoting and casing rules.
func hasCamelCase(name string) bool {
	for i := 1; i < len(name); i++ {
		prev, cur := name[i-1], name[i]
		if isLower(prev) && isUpper(cur) {
			return true
		}
		if isUpper(prev) && isLower(cur) {
			return true
		}
	}
	return false
}

func isLower(ch byte) bool { return ch >= 'a' && ch <= 'z' }
func isUpper(ch byte) bool { return ch >= 'A' && ch <= 'Z' }
