package rules

import (
	"fmt"
	"strings"

	pluralize "github.com/gertd/go-pluralize"

	"github.com/nlspoon/sqlstyle.guide/pkg/segment"
	"github.com/nlspoon/sqlstyle.guide/pkg/types"
)

// TablePluralNameRule suggests collective or plural table names: a table
// holds many rows, so "staff" or "employees" reads better than "employee".
// Heuristic, so warning only.
type TablePluralNameRule struct {
	client *pluralize.Client
}

// NewTablePluralNameRule creates the rule with its pluralization client.
func NewTablePluralNameRule() *TablePluralNameRule {
	return &TablePluralNameRule{client: pluralize.NewClient()}
}

// ID returns the rule identifier
func (*TablePluralNameRule) ID() string {
	return "table_plural_name"
}

// Check inspects the table name of every CREATE TABLE clause.
func (r *TablePluralNameRule) Check(doc *Document) []*types.Violation {
	var violations []*types.Violation
	for i := range doc.Tree.Nodes {
		if doc.Tree.Node(i).Type != segment.Clause_CREATE_TABLE {
			continue
		}
		nameTok := tableName(doc, i)
		if nameTok < 0 {
			continue
		}
		name := doc.Tokens[nameTok].Unquoted()
		// Judge only the last word of a snake_case name: "user_account"
		// pluralizes to "user_accounts", not "users_accounts".
		words := strings.Split(strings.ToLower(name), "_")
		last := words[len(words)-1]
		if last == "" || r.client.IsPlural(last) {
			continue
		}
		plural := r.client.Plural(last)
		if plural == last {
			// Uncountable nouns ("staff", "data") already read as
			// collectives.
			continue
		}
		words[len(words)-1] = plural
		violations = append(violations, &types.Violation{
			RuleID:   r.ID(),
			Severity: types.Severity_WARNING,
			Message: fmt.Sprintf(
				"table %q has a singular name; use a collective or plural name such as %q",
				name, strings.Join(words, "_"),
			),
			StartPosition: doc.Tokens[nameTok].Start,
		})
	}
	return violations
}
