package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nlspoon/sqlstyle.guide/pkg/linter"
)

var formatCmd = &cobra.Command{
	Use:   "format [flags] [sql-file...]",
	Short: "Apply the mechanical style fixes to SQL files",
	Long: `Rewrite SQL files by applying every auto-fixable style violation
(keyword casing, river indentation, removable quoting).

Without --write the rewritten SQL is printed to stdout. With no file
arguments, SQL is read from stdin and always printed to stdout.

Formatting a file fails when two suggested fixes overlap; the conflict
is reported and the file is left untouched.`,
	RunE: runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)

	formatCmd.Flags().BoolP("write", "w", false, "rewrite files in place instead of printing to stdout")
	_ = viper.BindPFlag("write", formatCmd.Flags().Lookup("write"))
}

func runFormat(_ *cobra.Command, args []string) error {
	initLogger()

	cfg, err := loadConfiguration()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		return err
	}

	l := linter.New(cfg)
	write := viper.GetBool("write")
	failed := false

	for _, doc := range readDocuments(args) {
		if doc.readErr != nil {
			return doc.readErr
		}
		fixed, err := l.Format(doc.content)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", doc.name, err)
			failed = true
			continue
		}
		if write && doc.name != "<stdin>" {
			if err := os.WriteFile(doc.name, []byte(fixed), 0644); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", doc.name, err)
				failed = true
			}
			continue
		}
		if _, err := os.Stdout.WriteString(fixed); err != nil {
			return err
		}
	}

	if failed {
		os.Exit(1)
	}
	return nil
}
