package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJoin(t *testing.T) {
	tokens := []Token{
		{Type: LBRACE, Literal: "{"},
		{Type: QUOTE, Literal: `"`},
		{Type: WORD, Literal: "key"},
		{Type: QUOTE, Literal: `"`},
		{Type: COLON, Literal: ":"},
		{Type: WHITESPACE, Literal: " "},
		{Type: NUMBER, Literal: "42"},
		{Type: RBRACE, Literal: "}"},
		{Type: EOF},
	}
	require.Equal(t, `{"key": 42}`, Join(tokens))
	require.Empty(t, Join(nil))
}
