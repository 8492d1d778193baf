package token

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nlspoon/sqlstyle.guide/pkg/types"
)

func TestIsReserved(t *testing.T) {
	require.True(t, IsReserved("SELECT"))
	require.True(t, IsReserved("select"))
	require.True(t, IsReserved("Select"))
	require.True(t, IsReserved("group"))
	require.False(t, IsReserved("staff"))
	require.False(t, IsReserved("first_name"))
	require.False(t, IsReserved(""))
	require.Greater(t, ReservedCount(), 500)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		in   Token
		want Kind
	}{
		{
			name: "unquoted keyword is retagged",
			in:   Token{Kind: Kind_IDENTIFIER, Text: "select"},
			want: Kind_KEYWORD,
		},
		{
			name: "plain identifier stays",
			in:   Token{Kind: Kind_IDENTIFIER, Text: "staff"},
			want: Kind_IDENTIFIER,
		},
		{
			name: "quoting escapes a reserved word",
			in:   Token{Kind: Kind_IDENTIFIER, Text: `"select"`, Quote: Quote_DOUBLE},
			want: Kind_IDENTIFIER,
		},
		{
			name: "string literal is never a keyword",
			in:   Token{Kind: Kind_STRING, Text: "'select'"},
			want: Kind_STRING,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Classify(tt.in)
			require.Equal(t, tt.want, out.Kind)
			require.Equal(t, tt.in.Text, out.Text, "classification must not rewrite text")
		})
	}
}

func TestClassifyAllIdempotent(t *testing.T) {
	tokens := []Token{
		{Kind: Kind_IDENTIFIER, Text: "select"},
		{Kind: Kind_WHITESPACE, Text: " "},
		{Kind: Kind_IDENTIFIER, Text: "staff"},
	}
	once := ClassifyAll(tokens)
	twice := ClassifyAll(once)
	require.Equal(t, once, twice)
	require.Equal(t, Kind_KEYWORD, twice[0].Kind)
	require.Equal(t, Kind_IDENTIFIER, twice[2].Kind)
}

func TestTokenUnquoted(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Token{Kind: Kind_IDENTIFIER, Text: "staff"}, "staff"},
		{Token{Kind: Kind_IDENTIFIER, Text: `"staff"`, Quote: Quote_DOUBLE}, "staff"},
		{Token{Kind: Kind_IDENTIFIER, Text: "`staff`", Quote: Quote_BACKTICK}, "staff"},
		{Token{Kind: Kind_IDENTIFIER, Text: "[staff]", Quote: Quote_BRACKET}, "staff"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.tok.Unquoted())
	}
}

func TestTokenMatch(t *testing.T) {
	kw := Token{Kind: Kind_KEYWORD, Text: "select"}
	require.True(t, kw.Match("SELECT"))
	require.False(t, kw.Match("FROM"))

	ident := Token{Kind: Kind_IDENTIFIER, Text: "select"}
	require.False(t, ident.Match("SELECT"), "only keyword tokens match")
}

func TestTokenEnd(t *testing.T) {
	tok := Token{
		Kind:  Kind_KEYWORD,
		Text:  "FROM",
		Start: types.Position{Line: 2, Column: 3, Offset: 20},
	}
	require.Equal(t, 4, tok.Len())
	require.Equal(t, 24, tok.End())
}
