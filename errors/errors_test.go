package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/KimNorgaard/go-jsonc/errors"
	"github.com/stretchr/testify/require"
)

func TestLexError(t *testing.T) {
	err := &errors.LexError{Offset: 4, Line: 1, Column: 5, Remaining: "<tag>"}
	require.EqualError(t, err, `jsonc: no token matches at line 1, column 5: "<tag>"`)
	require.ErrorIs(t, err, errors.ErrLex)
	require.NotErrorIs(t, err, errors.ErrGrammar)

	wrapped := fmt.Errorf("reading config: %w", err)
	var lexErr *errors.LexError
	require.True(t, stderrors.As(wrapped, &lexErr))
	require.Equal(t, 4, lexErr.Offset)
}

func TestLexErrorTruncatesRemaining(t *testing.T) {
	err := &errors.LexError{Line: 2, Column: 1, Remaining: "<abcdefghijklmnopqrstuvwxyz"}
	require.EqualError(t, err, `jsonc: no token matches at line 2, column 1: "<abcdefghijklmno..."`)
}

func TestGrammarError(t *testing.T) {
	err := &errors.GrammarError{Message: "expected ':' after key", Found: "WORD", Literal: "x", Line: 3, Column: 7}
	require.EqualError(t, err, `jsonc: parsing error at line 3, column 7: expected ':' after key, got WORD ("x")`)
	require.ErrorIs(t, err, errors.ErrGrammar)
	require.NotErrorIs(t, err, errors.ErrLex)

	eof := &errors.GrammarError{Message: "unterminated string", Line: 1, Column: 9}
	require.EqualError(t, eof, "jsonc: parsing error at line 1, column 9: unterminated string")
}
