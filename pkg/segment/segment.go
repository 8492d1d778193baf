// Package segment groups a token stream into a shallow clause tree.
//
// The segmenter models style, not grammar: unknown or out-of-order clauses
// are not errors, only unbalanced parentheses are. Nodes live in an index
// arena with parent/child links, which keeps ownership trivial and makes
// the tree easy to inspect in tests.
package segment

import (
	"fmt"

	"github.com/nlspoon/sqlstyle.guide/pkg/token"
	"github.com/nlspoon/sqlstyle.guide/pkg/types"
)

// StructureError reports unbalanced parentheses, the only condition the
// segmenter treats as fatal.
type StructureError struct {
	Msg           string
	StartPosition types.Position
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("%s at %s", e.Msg, e.StartPosition)
}

// ClauseType identifies a clause kind.
type ClauseType int32

const (
	Clause_STATEMENT ClauseType = iota
	Clause_SELECT
	Clause_FROM
	Clause_WHERE
	Clause_JOIN
	Clause_GROUP_BY
	Clause_ORDER_BY
	Clause_HAVING
	Clause_CREATE_TABLE
	Clause_CONSTRAINT
	Clause_SUBQUERY
	Clause_GROUPING
	Clause_UNION
	Clause_INSERT
	Clause_UPDATE
	Clause_DELETE
	Clause_SET
	Clause_VALUES
	Clause_LIMIT
	Clause_WITH
)

func (c ClauseType) String() string {
	switch c {
	case Clause_STATEMENT:
		return "STATEMENT"
	case Clause_SELECT:
		return "SELECT"
	case Clause_FROM:
		return "FROM"
	case Clause_WHERE:
		return "WHERE"
	case Clause_JOIN:
		return "JOIN"
	case Clause_GROUP_BY:
		return "GROUP_BY"
	case Clause_ORDER_BY:
		return "ORDER_BY"
	case Clause_HAVING:
		return "HAVING"
	case Clause_CREATE_TABLE:
		return "CREATE_TABLE"
	case Clause_CONSTRAINT:
		return "CONSTRAINT"
	case Clause_SUBQUERY:
		return "SUBQUERY"
	case Clause_GROUPING:
		return "GROUPING"
	case Clause_UNION:
		return "UNION"
	case Clause_INSERT:
		return "INSERT"
	case Clause_UPDATE:
		return "UPDATE"
	case Clause_DELETE:
		return "DELETE"
	case Clause_SET:
		return "SET"
	case Clause_VALUES:
		return "VALUES"
	case Clause_LIMIT:
		return "LIMIT"
	case Clause_WITH:
		return "WITH"
	default:
		return "UNKNOWN"
	}
}

// Node is a single clause in the arena. StartToken and EndToken are
// inclusive indexes into the token stream; KeywordToken points at the
// clause-leading keyword (-1 for containers without one).
type Node struct {
	Type         ClauseType
	StartToken   int
	EndToken     int
	KeywordToken int
	Depth        int
	Parent       int
	Children     []int
}

// Tree is the clause tree over a token stream.
type Tree struct {
	Tokens     []token.Token
	Nodes      []Node
	Statements []int
}

// Node returns the arena node at index i.
func (t *Tree) Node(i int) *Node {
	return &t.Nodes[i]
}

// Clauses returns the child clause indexes of node i, excluding
// subquery/grouping containers.
func (t *Tree) Clauses(i int) []int {
	var out []int
	for _, c := range t.Nodes[i].Children {
		switch t.Nodes[c].Type {
		case Clause_SUBQUERY, Clause_GROUPING:
		default:
			out = append(out, c)
		}
	}
	return out
}

// Containers returns every statement and subquery node index, i.e. every
// node whose child clauses form one alignment group.
func (t *Tree) Containers() []int {
	var out []int
	for i := range t.Nodes {
		switch t.Nodes[i].Type {
		case Clause_STATEMENT, Clause_SUBQUERY:
			out = append(out, i)
		}
	}
	return out
}

// ContainsKeyword reports whether any keyword token directly inside node i
// (children included) matches the given upper-case text.
func (t *Tree) ContainsKeyword(i int, upper string) bool {
	n := t.Nodes[i]
	for j := n.StartToken; j <= n.EndToken && j < len(t.Tokens); j++ {
		if t.Tokens[j].Match(upper) {
			return true
		}
	}
	return false
}

// clauseLeaders maps a leading keyword to its clause type. Multi-word
// leaders (GROUP BY, CREATE TABLE, join variants) are resolved in leadClause.
var clauseLeaders = map[string]ClauseType{
	"SELECT":    Clause_SELECT,
	"FROM":      Clause_FROM,
	"WHERE":     Clause_WHERE,
	"HAVING":    Clause_HAVING,
	"UNION":     Clause_UNION,
	"INTERSECT": Clause_UNION,
	"EXCEPT":    Clause_UNION,
	"INSERT":    Clause_INSERT,
	"UPDATE":    Clause_UPDATE,
	"DELETE":    Clause_DELETE,
	"SET":       Clause_SET,
	"VALUES":    Clause_VALUES,
	"LIMIT":     Clause_LIMIT,
	"WITH":      Clause_WITH,
}

var joinWords = map[string]bool{
	"JOIN":          true,
	"INNER":         true,
	"LEFT":          true,
	"RIGHT":         true,
	"FULL":          true,
	"CROSS":         true,
	"NATURAL":       true,
	"OUTER":         true,
	"STRAIGHT_JOIN": true,
}

type segmenter struct {
	tree *Tree
	// containers holds the open statement/subquery/grouping nodes; clause
	// holds the open clause per container, -1 when none.
	containers []int
	clause     []int
}

// Segment builds the clause tree for a classified token stream. It scans
// the tokens once, tracking parenthesis depth and clause boundaries.
func Segment(tokens []token.Token) (*Tree, error) {
	s := &segmenter{tree: &Tree{Tokens: tokens}}
	joinRun := false

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if !significant(tok) {
			continue
		}

		// A significant token outside any container starts a statement.
		if len(s.containers) == 0 {
			s.openContainer(Clause_STATEMENT, i)
		}

		if tok.Kind == token.Kind_PUNCTUATION {
			switch tok.Text {
			case "(":
				typ := Clause_GROUPING
				if next, ok := nextSignificant(tokens, i+1); ok && tokens[next].Match("SELECT") {
					typ = Clause_SUBQUERY
				}
				s.openContainer(typ, i)
				joinRun = false
				continue
			case ")":
				if !s.closeContainer(i) {
					return nil, &StructureError{Msg: "unmatched closing parenthesis", StartPosition: tok.Start}
				}
				joinRun = false
				continue
			case ";":
				// A semicolon inside parentheses is left to the balance
				// check; only a top-level one terminates the statement.
				if s.tree.Node(s.containers[len(s.containers)-1]).Type == Clause_STATEMENT {
					s.closeStatement(i)
				}
				joinRun = false
				continue
			}
		}

		if tok.Kind != token.Kind_KEYWORD {
			joinRun = false
			continue
		}

		word := tok.Normalized()
		if joinRun && joinWords[word] {
			continue
		}
		joinRun = false

		typ, ok := s.leadClause(tokens, i, word)
		if !ok {
			continue
		}
		s.openClause(typ, i)
		if typ == Clause_JOIN {
			joinRun = true
		}
	}

	// Unclosed subqueries or groupings mean an unmatched open parenthesis.
	for d := len(s.containers) - 1; d >= 0; d-- {
		n := s.tree.Node(s.containers[d])
		if n.Type != Clause_STATEMENT {
			return nil, &StructureError{
				Msg:           "unmatched opening parenthesis",
				StartPosition: s.tree.Tokens[n.StartToken].Start,
			}
		}
	}
	s.closeStatement(len(tokens) - 1)

	return s.tree, nil
}

// leadClause decides whether the keyword at index i opens a clause in the
// current container, and of which type.
func (s *segmenter) leadClause(tokens []token.Token, i int, word string) (ClauseType, bool) {
	if joinWords[word] && word != "OUTER" {
		return Clause_JOIN, true
	}
	switch word {
	case "GROUP", "ORDER":
		if next, ok := nextSignificant(tokens, i+1); ok && tokens[next].Match("BY") {
			if word == "GROUP" {
				return Clause_GROUP_BY, true
			}
			return Clause_ORDER_BY, true
		}
		return 0, false
	case "CREATE":
		if next, ok := nextSignificant(tokens, i+1); ok && tokens[next].Match("TABLE") {
			return Clause_CREATE_TABLE, true
		}
		return 0, false
	case "CONSTRAINT":
		return Clause_CONSTRAINT, s.inGrouping()
	case "PRIMARY", "FOREIGN":
		if !s.inGrouping() || !s.afterSeparator(tokens, i) {
			return 0, false
		}
		if next, ok := nextSignificant(tokens, i+1); ok && tokens[next].Match("KEY") {
			return Clause_CONSTRAINT, true
		}
		return 0, false
	}
	if typ, ok := clauseLeaders[word]; ok {
		// Statement-level clauses never open inside a plain grouping such
		// as a CREATE TABLE body or an IN (...) list.
		if s.inGrouping() && typ != Clause_CONSTRAINT {
			return 0, false
		}
		return typ, true
	}
	return 0, false
}

func (s *segmenter) inGrouping() bool {
	if len(s.containers) == 0 {
		return false
	}
	return s.tree.Node(s.containers[len(s.containers)-1]).Type == Clause_GROUPING
}

// afterSeparator reports whether the previous significant token is a comma
// or the container's opening parenthesis, i.e. the keyword starts a table
// element rather than trailing a column definition.
func (s *segmenter) afterSeparator(tokens []token.Token, i int) bool {
	for j := i - 1; j >= 0; j-- {
		if !significant(tokens[j]) {
			continue
		}
		return tokens[j].Kind == token.Kind_PUNCTUATION && (tokens[j].Text == "," || tokens[j].Text == "(")
	}
	return false
}

func (s *segmenter) openContainer(typ ClauseType, startTok int) {
	parent := -1
	if len(s.containers) > 0 {
		// Attach to the open clause when there is one, otherwise to the
		// container itself.
		parent = s.containers[len(s.containers)-1]
		if c := s.clause[len(s.clause)-1]; c >= 0 {
			parent = c
		}
	}
	idx := s.newNode(typ, startTok, -1, parent, len(s.containers))
	s.containers = append(s.containers, idx)
	s.clause = append(s.clause, -1)
	if typ == Clause_STATEMENT {
		s.tree.Statements = append(s.tree.Statements, idx)
	}
}

func (s *segmenter) openClause(typ ClauseType, i int) {
	s.sealClause(i - 1)
	top := s.containers[len(s.containers)-1]
	idx := s.newNode(typ, i, i, top, len(s.containers))
	s.clause[len(s.clause)-1] = idx
}

// sealClause closes the currently open clause of the top container.
func (s *segmenter) sealClause(endTok int) {
	if len(s.clause) == 0 {
		return
	}
	if c := s.clause[len(s.clause)-1]; c >= 0 {
		s.tree.Nodes[c].EndToken = endTok
		s.clause[len(s.clause)-1] = -1
	}
}

// closeContainer closes the top subquery/grouping container. Returns false
// when the top of the stack is a statement, i.e. the parenthesis has no
// match.
func (s *segmenter) closeContainer(endTok int) bool {
	if len(s.containers) == 0 {
		return false
	}
	top := s.containers[len(s.containers)-1]
	if s.tree.Node(top).Type == Clause_STATEMENT {
		return false
	}
	s.sealClause(endTok - 1)
	s.tree.Nodes[top].EndToken = endTok
	s.containers = s.containers[:len(s.containers)-1]
	s.clause = s.clause[:len(s.clause)-1]
	return true
}

// closeStatement seals everything down to and including the innermost
// statement. Called on ";" and at end of input.
func (s *segmenter) closeStatement(endTok int) {
	for len(s.containers) > 0 {
		top := s.containers[len(s.containers)-1]
		s.sealClause(endTok)
		s.tree.Nodes[top].EndToken = endTok
		isStatement := s.tree.Node(top).Type == Clause_STATEMENT
		s.containers = s.containers[:len(s.containers)-1]
		s.clause = s.clause[:len(s.clause)-1]
		if isStatement {
			return
		}
	}
}

func (s *segmenter) newNode(typ ClauseType, startTok, kwTok, parent, depth int) int {
	idx := len(s.tree.Nodes)
	s.tree.Nodes = append(s.tree.Nodes, Node{
		Type:         typ,
		StartToken:   startTok,
		EndToken:     startTok,
		KeywordToken: kwTok,
		Depth:        depth,
		Parent:       parent,
	})
	if parent >= 0 {
		s.tree.Nodes[parent].Children = append(s.tree.Nodes[parent].Children, idx)
	}
	return idx
}

func significant(t token.Token) bool {
	switch t.Kind {
	case token.Kind_WHITESPACE, token.Kind_NEWLINE, token.Kind_COMMENT:
		return false
	}
	return true
}

func nextSignificant(tokens []token.Token, from int) (int, bool) {
	for i := from; i < len(tokens); i++ {
		if significant(tokens[i]) {
			return i, true
		}
	}
	return 0, false
}
