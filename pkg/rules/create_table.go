package rules

import (
	"github.com/nlspoon/sqlstyle.guide/pkg/segment"
	"github.com/nlspoon/sqlstyle.guide/pkg/token"
)

// columnDef is a column definition inside a CREATE TABLE body: the column
// name token and the first token of its type.
type columnDef struct {
	nameTok int
	typeTok int
}

// tableBodies returns the grouping nodes holding CREATE TABLE column and
// constraint blocks.
func tableBodies(doc *Document) []int {
	var out []int
	for i := range doc.Tree.Nodes {
		n := doc.Tree.Node(i)
		if n.Type != segment.Clause_GROUPING || n.Parent < 0 {
			continue
		}
		if doc.Tree.Node(n.Parent).Type == segment.Clause_CREATE_TABLE {
			out = append(out, i)
		}
	}
	return out
}

// tableName returns the token index of the table name in a CREATE TABLE
// clause, or -1. The name is the first identifier after the TABLE keyword,
// skipping IF NOT EXISTS and schema qualification.
func tableName(doc *Document, clause int) int {
	n := doc.Tree.Node(clause)
	for i := n.KeywordToken; i <= n.EndToken && i < len(doc.Tokens); i++ {
		t := doc.Tokens[i]
		if t.Kind == token.Kind_IDENTIFIER {
			// Schema-qualified names: prefer the identifier after the dot.
			if next := doc.nextSignificant(i + 1); next >= 0 &&
				doc.Tokens[next].Kind == token.Kind_PUNCTUATION && doc.Tokens[next].Text == "." {
				continue
			}
			return i
		}
		if t.Kind == token.Kind_PUNCTUATION && t.Text == "(" {
			break
		}
	}
	return -1
}

// columnDefs extracts the column definitions from a table body grouping.
// Elements led by a keyword (CONSTRAINT, PRIMARY KEY, ...) are skipped.
func columnDefs(doc *Document, grouping int) []columnDef {
	n := doc.Tree.Node(grouping)
	var defs []columnDef
	depth := 0
	elementStart := true
	for i := n.StartToken + 1; i < n.EndToken && i < len(doc.Tokens); i++ {
		t := doc.Tokens[i]
		if !significant(t) {
			continue
		}
		if t.Kind == token.Kind_PUNCTUATION {
			switch t.Text {
			case "(":
				depth++
				continue
			case ")":
				depth--
				continue
			case ",":
				if depth == 0 {
					elementStart = true
				}
				continue
			}
		}
		if !elementStart || depth > 0 {
			continue
		}
		elementStart = false
		if t.Kind != token.Kind_IDENTIFIER {
			continue
		}
		typeTok := doc.nextSignificant(i + 1)
		if typeTok < 0 || typeTok >= n.EndToken {
			continue
		}
		if doc.Tokens[typeTok].Kind != token.Kind_KEYWORD {
			continue
		}
		defs = append(defs, columnDef{nameTok: i, typeTok: typeTok})
	}
	return defs
}
