package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nlspoon/sqlstyle.guide/pkg/token"
)

// TestTokenizeRoundTrip checks the core lexer invariant: concatenating the
// text of every token reconstructs the input byte for byte.
func TestTokenizeRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"SELECT first_name FROM staff;",
		"select *\nfrom staff\nwhere staff_id = 42;",
		"SELECT 'it''s here' AS greeting_text;",
		"-- leading comment\nSELECT 1;",
		"SELECT 1 /* block\ncomment */ + 2;",
		"SELECT \"first_name\", `last_name`, [title] FROM staff;",
		"INSERT INTO staff (staff_id) VALUES (1), (2);\r\nSELECT 1;\r\n",
		"SELECT price * 1.5e-3, total::numeric FROM products;",
		"SELECT a <= b, c <> d, e || f FROM t1;",
		"   \t  ",
		"café_id",
	}
	for _, input := range inputs {
		tokens, err := Tokenize(input)
		require.NoError(t, err, "input: %q", input)

		var sb strings.Builder
		for _, tok := range tokens {
			sb.WriteString(tok.Text)
		}
		require.Equal(t, input, sb.String())
	}
}

func TestTokenizeKinds(t *testing.T) {
	tokens, err := Tokenize("SELECT first_name FROM staff;")
	require.NoError(t, err)

	want := []token.Kind{
		token.Kind_IDENTIFIER, // keyword classification happens later
		token.Kind_WHITESPACE,
		token.Kind_IDENTIFIER,
		token.Kind_WHITESPACE,
		token.Kind_IDENTIFIER,
		token.Kind_WHITESPACE,
		token.Kind_IDENTIFIER,
		token.Kind_PUNCTUATION,
	}
	require.Len(t, tokens, len(want))
	for i, kind := range want {
		require.Equal(t, kind, tokens[i].Kind, "token %d (%q)", i, tokens[i].Text)
	}
}

func TestTokenizePositions(t *testing.T) {
	tokens, err := Tokenize("SELECT a\nFROM b")
	require.NoError(t, err)

	// SELECT ws a \n FROM ws b
	require.Len(t, tokens, 7)

	from := tokens[4]
	require.Equal(t, "FROM", from.Text)
	require.Equal(t, int32(2), from.Start.Line)
	require.Equal(t, int32(1), from.Start.Column)
	require.Equal(t, 9, from.Start.Offset)

	b := tokens[6]
	require.Equal(t, "b", b.Text)
	require.Equal(t, int32(2), b.Start.Line)
	require.Equal(t, int32(6), b.Start.Column)
}

// Positions must stay correct after constructs spanning several lines.
func TestTokenizePositionsAfterMultilineComment(t *testing.T) {
	tokens, err := Tokenize("/* a\nb */ x")
	require.NoError(t, err)
	require.Len(t, tokens, 3)

	x := tokens[2]
	require.Equal(t, "x", x.Text)
	require.Equal(t, int32(2), x.Start.Line)
	require.Equal(t, int32(6), x.Start.Column)
}

func TestTokenizeStringEscape(t *testing.T) {
	tokens, err := Tokenize("'it''s'")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	require.Equal(t, token.Kind_STRING, tokens[0].Kind)
	require.Equal(t, "'it''s'", tokens[0].Text)
}

func TestTokenizeNumbers(t *testing.T) {
	tests := []struct {
		input string
		text  string
	}{
		{"42", "42"},
		{"3.14", "3.14"},
		{".5", ".5"},
		{"1.5e-3", "1.5e-3"},
		{"2E10", "2E10"},
	}
	for _, tt := range tests {
		tokens, err := Tokenize(tt.input)
		require.NoError(t, err, "input: %q", tt.input)
		require.Len(t, tokens, 1, "input: %q", tt.input)
		require.Equal(t, token.Kind_NUMBER, tokens[0].Kind)
		require.Equal(t, tt.text, tokens[0].Text)
	}
}

func TestTokenizeTwoByteOperators(t *testing.T) {
	tokens, err := Tokenize("a<=b")
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	require.Equal(t, token.Kind_OPERATOR, tokens[1].Kind)
	require.Equal(t, "<=", tokens[1].Text)
}

func TestTokenizeQuoteStyles(t *testing.T) {
	tokens, err := Tokenize(`"a" ` + "`b`" + ` [c]`)
	require.NoError(t, err)

	var idents []token.Token
	for _, tok := range tokens {
		if tok.Kind == token.Kind_IDENTIFIER {
			idents = append(idents, tok)
		}
	}
	require.Len(t, idents, 3)
	require.Equal(t, token.Quote_DOUBLE, idents[0].Quote)
	require.Equal(t, token.Quote_BACKTICK, idents[1].Quote)
	require.Equal(t, token.Quote_BRACKET, idents[2].Quote)
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		msg    string
		line   int32
		column int32
	}{
		{
			name:   "unterminated string",
			input:  "SELECT 'abc FROM staff;",
			msg:    "unterminated string literal",
			line:   1,
			column: 8,
		},
		{
			name:   "unterminated block comment",
			input:  "SELECT 1 /* oops",
			msg:    "unterminated block comment",
			line:   1,
			column: 10,
		},
		{
			name:   "unterminated double quote",
			input:  `SELECT "first_name FROM staff;`,
			msg:    "unterminated quoted identifier",
			line:   1,
			column: 8,
		},
		{
			name:   "unterminated backtick on later line",
			input:  "SELECT 1;\nSELECT `oops",
			msg:    "unterminated quoted identifier",
			line:   2,
			column: 8,
		},
		{
			name:   "unterminated bracket",
			input:  "SELECT [title FROM staff;",
			msg:    "unterminated quoted identifier",
			line:   1,
			column: 8,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			require.Nil(t, tokens)
			require.Error(t, err)

			var lexErr *LexError
			require.ErrorAs(t, err, &lexErr)
			require.Contains(t, lexErr.Msg, tt.msg)
			require.Equal(t, tt.line, lexErr.StartPosition.Line)
			require.Equal(t, tt.column, lexErr.StartPosition.Column)
		})
	}
}
