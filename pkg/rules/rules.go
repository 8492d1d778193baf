// Package rules contains the style rule registry and every built-in rule.
//
// Rules are independent and side-effect free: each consumes the classified
// token stream and clause tree read-only and emits zero or more violations.
// A rule never fails; the registry recovers panics so one broken rule
// cannot take down a lint run.
package rules

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/pkg/errors"

	"github.com/nlspoon/sqlstyle.guide/pkg/config"
	"github.com/nlspoon/sqlstyle.guide/pkg/segment"
	"github.com/nlspoon/sqlstyle.guide/pkg/token"
	"github.com/nlspoon/sqlstyle.guide/pkg/types"
)

// Document is the read-only input shared by every rule for one lint run.
type Document struct {
	Source string
	Tokens []token.Token
	Tree   *segment.Tree
	Config *config.Config
}

// Rule is a single style check.
type Rule interface {
	// ID returns the stable rule identifier used in reports and config.
	ID() string
	// Check inspects the document and returns its violations.
	Check(doc *Document) []*types.Violation
}

var (
	ruleMu   sync.RWMutex
	registry = make(map[string]Rule)
)

// Register makes a rule available under its ID. If Register is called
// twice with the same ID or if rule is nil, it panics.
func Register(rule Rule) {
	ruleMu.Lock()
	defer ruleMu.Unlock()
	if rule == nil {
		panic("rules: Register rule is nil")
	}
	if _, dup := registry[rule.ID()]; dup {
		panic("rules: Register called twice for rule " + rule.ID())
	}
	registry[rule.ID()] = rule
}

// All returns every registered rule, sorted by ID for deterministic runs.
func All() []Rule {
	ruleMu.RLock()
	defer ruleMu.RUnlock()
	out := make([]Rule, 0, len(registry))
	for _, r := range registry {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// Check runs every enabled rule against the document and collects the
// violations. Rule order does not matter for correctness; the reporter
// normalizes ordering afterwards.
func Check(doc *Document) []*types.Violation {
	var all []*types.Violation
	for _, rule := range All() {
		if !doc.Config.RuleEnabled(rule.ID()) {
			continue
		}
		all = append(all, runRule(rule, doc)...)
	}
	return all
}

func runRule(rule Rule, doc *Document) (violations []*types.Violation) {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			err, ok := panicErr.(error)
			if !ok {
				err = errors.Errorf("%v", panicErr)
			}
			slog.Error("rule check PANIC RECOVER", "rule", rule.ID(), "error", err)
			violations = nil
		}
	}()
	return rule.Check(doc)
}

func significant(t token.Token) bool {
	switch t.Kind {
	case token.Kind_WHITESPACE, token.Kind_NEWLINE, token.Kind_COMMENT:
		return false
	}
	return true
}

// nextSignificant returns the index of the first significant token at or
// after from within the document, or -1.
func (doc *Document) nextSignificant(from int) int {
	for i := from; i < len(doc.Tokens); i++ {
		if significant(doc.Tokens[i]) {
			return i
		}
	}
	return -1
}

func init() {
	Register(&KeywordCasingRule{})
	Register(&IdentifierNamingRule{})
	Register(&QuotedIdentifierRule{})
	Register(&RiverAlignmentRule{})
	Register(&SuffixConventionRule{})
	Register(&DataTypePreferenceRule{})
	Register(&UnionTempTableRule{})
	Register(NewTablePluralNameRule())
	Register(&SelectStarRule{})
}
