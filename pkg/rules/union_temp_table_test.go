package rules

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nlspoon/sqlstyle.guide/pkg/types"
)

func TestUnionTempTable(t *testing.T) {
	rule := &UnionTempTableRule{}

	violations := rule.Check(newDocument(t, "SELECT staff_id FROM staff\nUNION\nSELECT staff_id FROM archived_staff;", nil))
	require.Len(t, violations, 1)

	v := violations[0]
	require.Equal(t, "union_temp_table_avoidance", v.RuleID)
	require.Equal(t, types.Severity_WARNING, v.Severity)
	require.Equal(t, int32(1), v.StartPosition.Line)
	require.Nil(t, v.SuggestedFix)
}

// One warning per statement, however many branches the union chains.
func TestUnionTempTableOncePerStatement(t *testing.T) {
	rule := &UnionTempTableRule{}

	source := "SELECT a FROM x UNION SELECT a FROM y UNION SELECT a FROM z;\nSELECT a FROM x UNION SELECT a FROM y;"
	violations := rule.Check(newDocument(t, source, nil))
	require.Len(t, violations, 2)
}

func TestUnionTempTableClean(t *testing.T) {
	rule := &UnionTempTableRule{}
	require.Empty(t, rule.Check(newDocument(t, "SELECT staff_id FROM staff;", nil)))
}
