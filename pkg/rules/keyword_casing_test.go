package rules

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nlspoon/sqlstyle.guide/pkg/config"
	"github.com/nlspoon/sqlstyle.guide/pkg/types"
)

func TestKeywordCasingUpper(t *testing.T) {
	rule := &KeywordCasingRule{}

	violations := rule.Check(newDocument(t, "select * from staff;", nil))
	require.Len(t, violations, 2)

	first := violations[0]
	require.Equal(t, "keyword_casing", first.RuleID)
	require.Equal(t, types.Severity_ERROR, first.Severity)
	require.Equal(t, types.Position{Line: 1, Column: 1, Offset: 0}, first.StartPosition)
	require.Equal(t, &types.Fix{Start: 0, End: 6, Replacement: "SELECT"}, first.SuggestedFix)

	second := violations[1]
	require.Equal(t, types.Position{Line: 1, Column: 10, Offset: 9}, second.StartPosition)
	require.Equal(t, &types.Fix{Start: 9, End: 13, Replacement: "FROM"}, second.SuggestedFix)
}

func TestKeywordCasingClean(t *testing.T) {
	rule := &KeywordCasingRule{}
	require.Empty(t, rule.Check(newDocument(t, "SELECT first_name FROM staff;", nil)))
}

func TestKeywordCasingMixed(t *testing.T) {
	rule := &KeywordCasingRule{}
	violations := rule.Check(newDocument(t, "Select first_name FROM staff;", nil))
	require.Len(t, violations, 1)
	require.Equal(t, "SELECT", violations[0].SuggestedFix.Replacement)
}

func TestKeywordCasingLower(t *testing.T) {
	cfg := config.Default()
	cfg.KeywordCase = config.KeywordCase_LOWER

	rule := &KeywordCasingRule{}
	violations := rule.Check(newDocument(t, "SELECT first_name from staff;", cfg))
	require.Len(t, violations, 1)
	require.Equal(t, &types.Fix{Start: 0, End: 6, Replacement: "select"}, violations[0].SuggestedFix)
}

// Quoting turns a reserved word into a plain identifier, so casing does not
// apply to it.
func TestKeywordCasingIgnoresQuoted(t *testing.T) {
	rule := &KeywordCasingRule{}
	require.Empty(t, rule.Check(newDocument(t, `SELECT "select" FROM staff;`, nil)))
}
