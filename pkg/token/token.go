package token

import (
	"strings"

	"github.com/nlspoon/sqlstyle.guide/pkg/types"
)

// Kind is the lexical class of a token.
type Kind int32

const (
	Kind_UNSPECIFIED Kind = iota
	Kind_KEYWORD
	Kind_IDENTIFIER
	Kind_STRING
	Kind_NUMBER
	Kind_OPERATOR
	Kind_PUNCTUATION
	Kind_COMMENT
	Kind_WHITESPACE
	Kind_NEWLINE
)

func (k Kind) String() string {
	switch k {
	case Kind_KEYWORD:
		return "KEYWORD"
	case Kind_IDENTIFIER:
		return "IDENTIFIER"
	case Kind_STRING:
		return "STRING"
	case Kind_NUMBER:
		return "NUMBER"
	case Kind_OPERATOR:
		return "OPERATOR"
	case Kind_PUNCTUATION:
		return "PUNCTUATION"
	case Kind_COMMENT:
		return "COMMENT"
	case Kind_WHITESPACE:
		return "WHITESPACE"
	case Kind_NEWLINE:
		return "NEWLINE"
	default:
		return "UNSPECIFIED"
	}
}

// Quote is the quoting style of an identifier token.
type Quote int32

const (
	Quote_NONE Quote = iota
	Quote_DOUBLE
	Quote_BACKTICK
	Quote_BRACKET
)

// Token is a single lexical unit of the source text. Tokens are immutable
// once produced; Text holds the raw source substring so that concatenating
// the Text of every token reconstructs the input exactly.
type Token struct {
	Kind  Kind
	Text  string
	Quote Quote
	Start types.Position
}

// Normalized returns the case-folded form used for keyword lookup and
// case-insensitive comparison. Quoted identifiers keep their inner text.
func (t Token) Normalized() string {
	return strings.ToUpper(t.Unquoted())
}

// Unquoted returns the identifier text with its quoting characters removed.
// For unquoted tokens it returns Text unchanged.
func (t Token) Unquoted() string {
	switch t.Quote {
	case Quote_DOUBLE, Quote_BACKTICK, Quote_BRACKET:
		if len(t.Text) >= 2 {
			return t.Text[1 : len(t.Text)-1]
		}
	}
	return t.Text
}

// Len returns the token length in bytes.
func (t Token) Len() int {
	return len(t.Text)
}

// End returns the byte offset just past the token.
func (t Token) End() int {
	return t.Start.Offset + len(t.Text)
}

// Match reports whether the token is a keyword with the given upper-case text.
func (t Token) Match(upper string) bool {
	return t.Kind == Kind_KEYWORD && t.Normalized() == upper
}

// Classify retags an identifier-shaped token as a keyword when its folded
// text is reserved. Quoted identifiers are never reclassified; quoting is
// exactly how SQL escapes a reserved word. The original casing is preserved
// in Text so casing rules can still see it.
func Classify(t Token) Token {
	if t.Kind == Kind_IDENTIFIER && t.Quote == Quote_NONE && IsReserved(t.Text) {
		t.Kind = Kind_KEYWORD
	}
	return t
}

// ClassifyAll applies Classify to every token in place.
func ClassifyAll(tokens []Token) []Token {
	for i := range tokens {
		tokens[i] = Classify(tokens[i])
	}
	return tokens
}
