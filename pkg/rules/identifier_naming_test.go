package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nlspoon/sqlstyle.guide/pkg/config"
)

func TestIdentifierNaming(t *testing.T) {
	rule := &IdentifierNamingRule{}

	tests := []struct {
		name   string
		source string
		want   int
	}{
		{"snake case is clean", "SELECT my_table_name FROM staff;", 0},
		{"camelCase", "SELECT myTableName FROM staff;", 1},
		{"PascalCase", "SELECT MyTable FROM staff;", 1},
		{"all uppercase is left alone", "SELECT STAFF_ID FROM staff;", 0},
		{"trailing underscore", "SELECT staff_ FROM staff;", 1},
		{"consecutive underscores", "SELECT staff__id FROM staff;", 1},
		{"leading underscore is allowed", "SELECT _staff_id FROM staff;", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := rule.Check(newDocument(t, tt.source, nil))
			require.Len(t, violations, tt.want)
			for _, v := range violations {
				require.Equal(t, "identifier_naming", v.RuleID)
				require.Nil(t, v.SuggestedFix, "renames are never auto-fixed")
			}
		})
	}
}

// Independent defects on one identifier are reported separately.
func TestIdentifierNamingMultipleDefects(t *testing.T) {
	rule := &IdentifierNamingRule{}
	violations := rule.Check(newDocument(t, "SELECT myName__ FROM staff;", nil))
	require.Len(t, violations, 3)
}

func TestIdentifierNamingLength(t *testing.T) {
	rule := &IdentifierNamingRule{}

	long := "col_" + strings.Repeat("x", 27) // 31 bytes
	violations := rule.Check(newDocument(t, "SELECT "+long+" FROM staff;", nil))
	require.Len(t, violations, 1)
	require.Contains(t, violations[0].Message, "limit is 30")

	cfg := config.Default()
	cfg.MaxIdentifierLength = 40
	require.Empty(t, rule.Check(newDocument(t, "SELECT "+long+" FROM staff;", cfg)))
}

// Quoted identifiers are the quoting rule's business, not this one's.
func TestIdentifierNamingIgnoresQuoted(t *testing.T) {
	rule := &IdentifierNamingRule{}
	require.Empty(t, rule.Check(newDocument(t, `SELECT "myTableName" FROM staff;`, nil)))
}
