package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Equal(t, 30, cfg.MaxIdentifierLength)
	require.True(t, cfg.EnforceRiverAlignment)
	require.Equal(t, KeywordCase_UPPER, cfg.KeywordCase)
	require.Empty(t, cfg.EnabledRules)
	require.Empty(t, cfg.IgnoredRules)
}

func TestRuleEnabled(t *testing.T) {
	cfg := Default()
	require.True(t, cfg.RuleEnabled("keyword_casing"))
	require.True(t, cfg.RuleEnabled("river_alignment"))

	cfg.EnforceRiverAlignment = false
	require.False(t, cfg.RuleEnabled("river_alignment"))
	require.True(t, cfg.RuleEnabled("keyword_casing"))

	cfg = Default()
	cfg.EnabledRules = []string{"keyword_casing"}
	require.True(t, cfg.RuleEnabled("keyword_casing"))
	require.False(t, cfg.RuleEnabled("identifier_naming"))

	// Ignore wins over enable.
	cfg.IgnoredRules = []string{"keyword_casing"}
	require.False(t, cfg.RuleEnabled("keyword_casing"))
}

func writeConfigFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFileYAML(t *testing.T) {
	path := writeConfigFile(t, "sqlstyle.yaml", `
maxIdentifierLength: 20
enforceRiverAlignment: false
keywordCase: lower
enabledRules:
  - keyword_casing
  - river_alignment
ignoredRules:
  - select_star
`)
	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	require.Equal(t, 20, cfg.MaxIdentifierLength)
	require.False(t, cfg.EnforceRiverAlignment)
	require.Equal(t, KeywordCase_LOWER, cfg.KeywordCase)
	require.Equal(t, []string{"keyword_casing", "river_alignment"}, cfg.EnabledRules)
	require.Equal(t, []string{"select_star"}, cfg.IgnoredRules)
}

func TestLoadFromFileJSON(t *testing.T) {
	path := writeConfigFile(t, "sqlstyle.json", `{
  "maxIdentifierLength": 40,
  "keywordCase": "upper"
}`)
	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	require.Equal(t, 40, cfg.MaxIdentifierLength)
	require.Equal(t, KeywordCase_UPPER, cfg.KeywordCase)
}

// Absent keys keep their defaults instead of collapsing to zero values.
func TestLoadFromFilePartial(t *testing.T) {
	path := writeConfigFile(t, "sqlstyle.yaml", "keywordCase: lower\n")
	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	require.Equal(t, 30, cfg.MaxIdentifierLength)
	require.True(t, cfg.EnforceRiverAlignment)
	require.Equal(t, KeywordCase_LOWER, cfg.KeywordCase)
}

func TestLoadFromFileErrors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := writeConfigFile(t, "broken.yaml", "keywordCase: [not a\n")
	_, err = LoadFromFile(path)
	require.Error(t, err)

	path = writeConfigFile(t, "badcase.yaml", "keywordCase: sideways\n")
	_, err = LoadFromFile(path)
	require.Error(t, err)
}

func TestKeywordCaseString(t *testing.T) {
	require.Equal(t, "upper", KeywordCase_UPPER.String())
	require.Equal(t, "lower", KeywordCase_LOWER.String())
}
