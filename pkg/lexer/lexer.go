// Package lexer splits raw SQL text into position-tagged lexical tokens.
//
// The token stream covers the whole input with no gaps or overlaps:
// concatenating the Text of every token reconstructs the source exactly,
// including whitespace and comments. That invariant is what makes auto-fix
// rendering safe.
package lexer

import (
	"fmt"
	"strings"

	"github.com/nlspoon/sqlstyle.guide/pkg/token"
	"github.com/nlspoon/sqlstyle.guide/pkg/types"
)

// LexError reports a malformed token, such as an unterminated string
// literal or block comment. It aborts the lint for the whole document.
type LexError struct {
	Msg           string
	StartPosition types.Position
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s at %s", e.Msg, e.StartPosition)
}

type lexer struct {
	src    string
	pos    int
	line   int32
	col    int32
	tokens []token.Token
}

// Tokenize splits source into tokens. It is a pure function over the input:
// identical input always yields an identical token sequence.
func Tokenize(source string) ([]token.Token, error) {
	l := &lexer{src: source, line: 1, col: 1}
	for l.pos < len(l.src) {
		if err := l.next(); err != nil {
			return nil, err
		}
	}
	return l.tokens, nil
}

func (l *lexer) position() types.Position {
	return types.Position{Line: l.line, Column: l.col, Offset: l.pos}
}

// advance consumes n bytes without line tracking. Only safe for text known
// to contain no newlines.
func (l *lexer) advance(n int) {
	l.pos += n
	l.col += int32(n)
}

func (l *lexer) peek(i int) byte {
	if l.pos+i < len(l.src) {
		return l.src[l.pos+i]
	}
	return 0
}

func (l *lexer) emit(kind token.Kind, quote token.Quote, start types.Position) {
	l.tokens = append(l.tokens, token.Token{
		Kind:  kind,
		Text:  l.src[start.Offset:l.pos],
		Quote: quote,
		Start: start,
	})
}

func (l *lexer) next() error {
	ch := l.src[l.pos]
	switch {
	case ch == '\n' || ch == '\r':
		l.newline()
	case ch == ' ' || ch == '\t':
		l.whitespace()
	case ch == '-' && l.peek(1) == '-':
		l.lineComment()
	case ch == '/' && l.peek(1) == '*':
		return l.blockComment()
	case ch == '\'':
		return l.stringLiteral()
	case ch == '"':
		return l.quotedIdentifier('"', token.Quote_DOUBLE)
	case ch == '`':
		return l.quotedIdentifier('`', token.Quote_BACKTICK)
	case ch == '[':
		return l.bracketIdentifier()
	case isDigit(ch) || (ch == '.' && isDigit(l.peek(1))):
		l.number()
	case isIdentStart(ch):
		l.identifier()
	case strings.IndexByte(",();.", ch) >= 0:
		start := l.position()
		l.advance(1)
		l.emit(token.Kind_PUNCTUATION, token.Quote_NONE, start)
	default:
		l.operator()
	}
	return nil
}

func (l *lexer) newline() {
	start := l.position()
	if l.src[l.pos] == '\r' && l.peek(1) == '\n' {
		l.pos += 2
	} else {
		l.pos++
	}
	l.line++
	l.col = 1
	l.emit(token.Kind_NEWLINE, token.Quote_NONE, start)
}

func (l *lexer) whitespace() {
	start := l.position()
	for l.pos < len(l.src) && (l.src[l.pos] == ' ' || l.src[l.pos] == '\t') {
		l.advance(1)
	}
	l.emit(token.Kind_WHITESPACE, token.Quote_NONE, start)
}

// lineComment consumes "--" up to but not including the newline.
func (l *lexer) lineComment() {
	start := l.position()
	for l.pos < len(l.src) && l.src[l.pos] != '\n' && l.src[l.pos] != '\r' {
		l.advance(1)
	}
	l.emit(token.Kind_COMMENT, token.Quote_NONE, start)
}

func (l *lexer) blockComment() error {
	start := l.position()
	l.advance(2)
	for l.pos < len(l.src) {
		if l.src[l.pos] == '*' && l.peek(1) == '/' {
			l.advance(2)
			l.emit(token.Kind_COMMENT, token.Quote_NONE, start)
			return nil
		}
		l.consumeRaw()
	}
	return &LexError{Msg: "unterminated block comment", StartPosition: start}
}

func (l *lexer) stringLiteral() error {
	start := l.position()
	l.advance(1)
	for l.pos < len(l.src) {
		if l.src[l.pos] == '\'' {
			if l.peek(1) == '\'' {
				// Doubled quote escapes a literal quote.
				l.advance(2)
				continue
			}
			l.advance(1)
			l.emit(token.Kind_STRING, token.Quote_NONE, start)
			return nil
		}
		l.consumeRaw()
	}
	return &LexError{Msg: "unterminated string literal", StartPosition: start}
}

func (l *lexer) quotedIdentifier(quote byte, style token.Quote) error {
	start := l.position()
	l.advance(1)
	for l.pos < len(l.src) {
		if l.src[l.pos] == quote {
			if l.peek(1) == quote {
				l.advance(2)
				continue
			}
			l.advance(1)
			l.emit(token.Kind_IDENTIFIER, style, start)
			return nil
		}
		l.consumeRaw()
	}
	return &LexError{
		Msg:           fmt.Sprintf("unterminated quoted identifier (missing closing %q)", string(quote)),
		StartPosition: start,
	}
}

func (l *lexer) bracketIdentifier() error {
	start := l.position()
	l.advance(1)
	for l.pos < len(l.src) {
		if l.src[l.pos] == ']' {
			l.advance(1)
			l.emit(token.Kind_IDENTIFIER, token.Quote_BRACKET, start)
			return nil
		}
		l.consumeRaw()
	}
	return &LexError{Msg: "unterminated quoted identifier (missing closing \"]\")", StartPosition: start}
}

// consumeRaw consumes one byte inside a multi-line construct, keeping the
// line and column counters correct.
func (l *lexer) consumeRaw() {
	if l.src[l.pos] == '\n' {
		l.pos++
		l.line++
		l.col = 1
		return
	}
	l.advance(1)
}

func (l *lexer) number() {
	start := l.position()
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.advance(1)
	}
	if l.pos < len(l.src) && l.src[l.pos] == '.' && isDigit(l.peek(1)) {
		l.advance(1)
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.advance(1)
		}
	}
	// Exponent part, e.g. 1.5e-3.
	if l.pos < len(l.src) && (l.src[l.pos] == 'e' || l.src[l.pos] == 'E') {
		next := l.peek(1)
		if isDigit(next) {
			l.advance(1)
		} else if (next == '+' || next == '-') && isDigit(l.peek(2)) {
			l.advance(2)
		}
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.advance(1)
		}
	}
	l.emit(token.Kind_NUMBER, token.Quote_NONE, start)
}

func (l *lexer) identifier() {
	start := l.position()
	for l.pos < len(l.src) && isIdentPart(l.src[l.pos]) {
		l.advance(1)
	}
	l.emit(token.Kind_IDENTIFIER, token.Quote_NONE, start)
}

// twoByteOperators are matched before single characters.
var twoByteOperators = []string{"<=", ">=", "<>", "!=", "||", "::", ":=", "->"}

func (l *lexer) operator() {
	start := l.position()
	rest := l.src[l.pos:]
	for _, op := range twoByteOperators {
		if strings.HasPrefix(rest, op) {
			l.advance(len(op))
			l.emit(token.Kind_OPERATOR, token.Quote_NONE, start)
			return
		}
	}
	l.advance(1)
	l.emit(token.Kind_OPERATOR, token.Quote_NONE, start)
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return ch == '_' || ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch >= 0x80
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch) || ch == '$'
}
