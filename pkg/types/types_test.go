package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestPositionString(t *testing.T) {
	p := Position{Line: 3, Column: 7, Offset: 42}
	require.Equal(t, "line 3, column 7", p.String())
}

func TestSeverityRoundTrip(t *testing.T) {
	for _, s := range []Severity{Severity_ERROR, Severity_WARNING} {
		data, err := json.Marshal(s)
		require.NoError(t, err)

		var back Severity
		require.NoError(t, json.Unmarshal(data, &back))
		require.Equal(t, s, back)

		yamlData, err := yaml.Marshal(s)
		require.NoError(t, err)
		require.NoError(t, yaml.Unmarshal(yamlData, &back))
		require.Equal(t, s, back)
	}
}

func TestFixOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b *Fix
		want bool
	}{
		{"disjoint", &Fix{Start: 0, End: 4}, &Fix{Start: 6, End: 8}, false},
		{"adjacent spans touch but do not overlap", &Fix{Start: 0, End: 4}, &Fix{Start: 4, End: 8}, false},
		{"partial overlap", &Fix{Start: 0, End: 6}, &Fix{Start: 3, End: 8}, true},
		{"contained", &Fix{Start: 0, End: 10}, &Fix{Start: 3, End: 5}, true},
		{"identical spans", &Fix{Start: 2, End: 6}, &Fix{Start: 2, End: 6}, true},
		{"insertion at span start", &Fix{Start: 2, End: 2}, &Fix{Start: 2, End: 6}, false},
		{"insertion inside span", &Fix{Start: 3, End: 3}, &Fix{Start: 2, End: 6}, true},
		{"nil", &Fix{Start: 0, End: 4}, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			if tt.b != nil {
				require.Equal(t, tt.want, tt.b.Overlaps(tt.a), "Overlaps must be symmetric")
			}
		})
	}
}

func TestReportSummarize(t *testing.T) {
	r := &Report{Violations: []*Violation{
		{RuleID: "a", Severity: Severity_ERROR},
		{RuleID: "b", Severity: Severity_WARNING},
		{RuleID: "c", Severity: Severity_WARNING},
	}}
	r.Summarize()

	require.Equal(t, Summary{Total: 3, Errors: 1, Warnings: 2}, r.Summary)
	require.True(t, r.HasErrors())
	require.True(t, r.HasWarnings())
	require.False(t, r.IsClean())
	require.Len(t, r.FilterBySeverity(Severity_WARNING), 2)
	require.Equal(t, "Lint Results: 3 total (1 errors, 2 warnings)", r.String())
}

func TestReportClean(t *testing.T) {
	r := &Report{}
	r.Summarize()
	require.True(t, r.IsClean())
	require.False(t, r.HasErrors())
	require.False(t, r.HasWarnings())
}
