// Package pkg provides SQL style linting and formatting for Go applications.
//
// The linter checks SQL text against a set of layout and naming conventions
// and can mechanically rewrite the source to satisfy the fixable ones.
//
// # Package Structure
//
// The pkg directory contains several specialized packages:
//
//   - linter: High-level API for linting and formatting (recommended starting point)
//   - rules: Style rule registry and every built-in rule
//   - lexer: Position-tagged SQL tokenizer
//   - token: Token model and the reserved keyword table
//   - segment: Clause tree segmentation over the token stream
//   - report: Report assembly, rendering and fix application
//   - config: Configuration loading and management
//   - types: Core type definitions shared across packages
//   - logger: Logging abstraction layer
//
// # Getting Started
//
// For most use cases, start with the linter package:
//
//	import "github.com/nlspoon/sqlstyle.guide/pkg/linter"
//
//	func main() {
//	    report, err := linter.New(nil).Lint(sql)
//	    // Process report.Violations...
//	}
//
// # Rule Categories
//
// The built-in rules cover:
//
// Casing and quoting:
//   - keyword_casing: reserved keywords in the configured case
//   - quoted_identifier: no backtick or bracket quoting
//
// Naming:
//   - identifier_naming: snake_case, no camelCase, length limits
//   - table_plural_name: collective or plural table names
//   - suffix_convention: type-derived column suffixes (_date, _time, _at)
//
// Layout:
//   - river_alignment: clause keywords right-aligned on a shared boundary
//
// Query shape:
//   - select_star: explicit projections over SELECT *
//   - union_temp_table_avoidance: UNION-heavy statements
//   - data_type_preference: NUMERIC/DECIMAL over approximate float types
//
// # Configuration
//
// Rules can be configured via YAML/JSON files or programmatically:
//
//	cfg, err := config.LoadFromFile("sqlstyle.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report, err := linter.New(cfg).Lint(sql)
//
// # Thread Safety
//
// All public APIs are safe for concurrent use by multiple goroutines.
// Linter instances can be reused across documents.
//
// # Error Handling
//
// Lint operations distinguish between:
//   - Style findings (returned as Violations in the Report)
//   - Fatal analysis errors (returned as error: lexer.LexError, segment.StructureError)
//
// Individual rule failures are logged but don't abort the run, allowing
// partial results even when some rules fail.
//
// # Documentation
//
// Complete documentation and examples:
//   - Package documentation: https://pkg.go.dev/github.com/nlspoon/sqlstyle.guide/pkg
//   - Examples: examples/library-usage/
package pkg
