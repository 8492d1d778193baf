package rules

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nlspoon/sqlstyle.guide/pkg/types"
)

func TestSelectStar(t *testing.T) {
	rule := &SelectStarRule{}

	tests := []struct {
		name   string
		source string
		want   int
	}{
		{"bare star", "SELECT * FROM staff;", 1},
		{"star after DISTINCT", "SELECT DISTINCT * FROM staff;", 1},
		{"explicit columns", "SELECT staff_id, first_name FROM staff;", 0},
		{"count star is fine", "SELECT COUNT(*) FROM staff;", 0},
		{"star in subquery", "SELECT staff_id FROM (SELECT * FROM staff) AS s;", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := rule.Check(newDocument(t, tt.source, nil))
			require.Len(t, violations, tt.want)
			for _, v := range violations {
				require.Equal(t, "select_star", v.RuleID)
				require.Equal(t, types.Severity_WARNING, v.Severity)
			}
		})
	}
}
