package rules

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nlspoon/sqlstyle.guide/pkg/types"
)

func TestRiverAlignmentAligned(t *testing.T) {
	rule := &RiverAlignmentRule{}

	aligned := []string{
		"SELECT first_name\n  FROM staff;",
		"SELECT first_name\n  FROM staff\n WHERE staff_id = 1;",
		"SELECT first_name\n  FROM staff\n ORDER BY first_name;",
	}
	for _, source := range aligned {
		require.Empty(t, rule.Check(newDocument(t, source, nil)), "source: %q", source)
	}
}

func TestRiverAlignmentMisaligned(t *testing.T) {
	rule := &RiverAlignmentRule{}

	violations := rule.Check(newDocument(t, "SELECT first_name\nFROM staff;", nil))
	require.Len(t, violations, 1)

	v := violations[0]
	require.Equal(t, "river_alignment", v.RuleID)
	require.Equal(t, types.Position{Line: 2, Column: 1, Offset: 18}, v.StartPosition)
	// FROM must be indented two columns so it ends at column 7 like SELECT.
	require.Equal(t, &types.Fix{Start: 18, End: 18, Replacement: "  "}, v.SuggestedFix)
}

// An over-indented clause pushes the river deeper: the boundary is the
// maximum end column, so the other keywords are asked to move right.
func TestRiverAlignmentOverIndented(t *testing.T) {
	rule := &RiverAlignmentRule{}

	violations := rule.Check(newDocument(t, "SELECT first_name\n    FROM staff;", nil))
	require.Len(t, violations, 1)

	v := violations[0]
	require.Equal(t, int32(1), v.StartPosition.Line)
	require.Equal(t, &types.Fix{Start: 0, End: 0, Replacement: "  "}, v.SuggestedFix)
}

// Single-line statements have nothing to align.
func TestRiverAlignmentSingleLine(t *testing.T) {
	rule := &RiverAlignmentRule{}
	require.Empty(t, rule.Check(newDocument(t, "SELECT first_name FROM staff;", nil)))
}

// Each subquery aligns on its own river, independent of the outer
// statement's boundary.
func TestRiverAlignmentSubquery(t *testing.T) {
	rule := &RiverAlignmentRule{}

	source := "SELECT staff_id\n  FROM (\nSELECT staff_id\n  FROM staff) AS s;"
	require.Empty(t, rule.Check(newDocument(t, source, nil)))

	misaligned := "SELECT staff_id\n  FROM (\nSELECT staff_id\nFROM staff) AS s;"
	violations := rule.Check(newDocument(t, misaligned, nil))
	require.Len(t, violations, 1)
	require.Equal(t, int32(4), violations[0].StartPosition.Line)
}

// A clause keyword midway through a line cannot be re-indented, so it drops
// out of the alignment group.
func TestRiverAlignmentSkipsMidlineKeywords(t *testing.T) {
	rule := &RiverAlignmentRule{}
	require.Empty(t, rule.Check(newDocument(t, "SELECT first_name FROM staff\n WHERE staff_id = 1;", nil)))
}
