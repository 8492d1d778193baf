package cmd

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/nlspoon/sqlstyle.guide/pkg/config"
	"github.com/nlspoon/sqlstyle.guide/pkg/linter"
	"github.com/nlspoon/sqlstyle.guide/pkg/logger"
	"github.com/nlspoon/sqlstyle.guide/pkg/report"
	"github.com/nlspoon/sqlstyle.guide/pkg/types"
)

var lintCmd = &cobra.Command{
	Use:   "lint [flags] [sql-file...]",
	Short: "Check SQL files against the style rules",
	Long: `Check SQL files against the configured style rules.

Each file runs through its own pipeline: a fatal error in one file (an
unterminated literal, unbalanced parentheses) is reported as a single
diagnostic for that file and does not stop the rest of the batch.

With no file arguments, SQL is read from stdin.`,
	RunE: runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)

	// Flags for lint command
	lintCmd.Flags().StringP("output", "o", "text", "output format (text, json, yaml)")
	lintCmd.Flags().StringP("rules", "r", "", "path to rules configuration file")
	lintCmd.Flags().Bool("fail-on-error", false, "exit with non-zero code if errors are found")
	lintCmd.Flags().Bool("fail-on-warning", false, "exit with non-zero code if warnings are found")

	// Bind flags to viper
	_ = viper.BindPFlag("output", lintCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("rules", lintCmd.Flags().Lookup("rules"))
	_ = viper.BindPFlag("fail-on-error", lintCmd.Flags().Lookup("fail-on-error"))
	_ = viper.BindPFlag("fail-on-warning", lintCmd.Flags().Lookup("fail-on-warning"))
}

// fileResult is one linted document in json/yaml output. Exactly one of
// Error and Report is set.
type fileResult struct {
	File   string        `json:"file"             yaml:"file"`
	Error  string        `json:"error,omitempty"  yaml:"error,omitempty"`
	Report *types.Report `json:"report,omitempty" yaml:"report,omitempty"`
}

func runLint(_ *cobra.Command, args []string) error {
	initLogger()

	cfg, err := loadConfiguration()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		return err
	}

	l := linter.New(cfg)
	var results []fileResult
	hasFatal := false
	hasErrors := false
	hasWarnings := false

	for _, doc := range readDocuments(args) {
		if doc.readErr != nil {
			return doc.readErr
		}
		slog.Debug("linting document", "file", doc.name, "size", len(doc.content))
		rep, err := l.Lint(doc.content)
		if err != nil {
			// Fatal for this document only; the batch continues.
			hasFatal = true
			results = append(results, fileResult{File: doc.name, Error: err.Error()})
			continue
		}
		hasErrors = hasErrors || rep.HasErrors()
		hasWarnings = hasWarnings || rep.HasWarnings()
		results = append(results, fileResult{File: doc.name, Report: rep})
	}

	if err := outputResults(results, viper.GetString("output")); err != nil {
		return err
	}

	// Check exit codes
	if hasFatal {
		os.Exit(1)
	}
	if hasErrors && viper.GetBool("fail-on-error") {
		os.Exit(1)
	}
	if hasWarnings && viper.GetBool("fail-on-warning") {
		os.Exit(1)
	}
	return nil
}

func initLogger() {
	logLevel := slog.LevelWarn
	if viper.GetBool("debug") {
		logLevel = slog.LevelDebug
	} else if viper.GetBool("verbose") {
		logLevel = slog.LevelInfo
	}
	_ = logger.NewWithLevel(logLevel)
}

// loadConfiguration builds the rule configuration: an explicit rules file
// wins, otherwise viper settings (config file, env, defaults) are merged
// over the default configuration.
func loadConfiguration() (*config.Config, error) {
	if rulesPath := viper.GetString("rules"); rulesPath != "" {
		return config.LoadFromFile(rulesPath)
	}

	cfg := config.Default()
	if viper.IsSet("maxIdentifierLength") {
		cfg.MaxIdentifierLength = viper.GetInt("maxIdentifierLength")
	}
	if viper.IsSet("enforceRiverAlignment") {
		cfg.EnforceRiverAlignment = viper.GetBool("enforceRiverAlignment")
	}
	if viper.IsSet("keywordCase") {
		switch viper.GetString("keywordCase") {
		case "upper", "UPPER":
			cfg.KeywordCase = config.KeywordCase_UPPER
		case "lower", "LOWER":
			cfg.KeywordCase = config.KeywordCase_LOWER
		default:
			return nil, errors.Errorf("unsupported keyword case: %q", viper.GetString("keywordCase"))
		}
	}
	cfg.EnabledRules = viper.GetStringSlice("enabledRules")
	cfg.IgnoredRules = viper.GetStringSlice("ignoredRules")
	return cfg, nil
}

type document struct {
	name    string
	content string
	readErr error
}

// readDocuments loads the named files, or stdin when no names are given.
func readDocuments(args []string) []document {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return []document{{name: "<stdin>", readErr: errors.Wrap(err, "failed to read stdin")}}
		}
		return []document{{name: "<stdin>", content: string(data)}}
	}

	var docs []document
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			docs = append(docs, document{name: path, readErr: errors.Wrapf(err, "failed to read SQL file: %s", path)})
			continue
		}
		docs = append(docs, document{name: path, content: string(data)})
	}
	return docs
}

func outputResults(results []fileResult, format string) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(map[string]interface{}{"results": results})
	case "yaml":
		encoder := yaml.NewEncoder(os.Stdout)
		defer encoder.Close()
		return encoder.Encode(map[string]interface{}{"results": results})
	case "text":
		return outputText(results)
	default:
		return errors.Errorf("unsupported output format: %s", format)
	}
}

func outputText(results []fileResult) error {
	for _, res := range results {
		if res.Error != "" {
			if _, err := os.Stdout.WriteString(res.File + ": " + res.Error + "\n"); err != nil {
				return err
			}
			continue
		}
		if err := report.RenderText(os.Stdout, res.File, res.Report); err != nil {
			return err
		}
	}
	return nil
}
