// Package errors defines the error types reported while reading relaxed
// JSON text. Every error is fatal: the first one aborts the pipeline and
// no partial result is returned.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrLex matches any *LexError through errors.Is.
	ErrLex = errors.New("jsonc: lexical error")
	// ErrGrammar matches any *GrammarError through errors.Is.
	ErrGrammar = errors.New("jsonc: grammar error")
)

const excerptLen = 16

// LexError reports that no token pattern matches the input at a position.
type LexError struct {
	Offset    int
	Line      int
	Column    int
	Remaining string // the unmatched input, starting at Offset
}

func (e *LexError) Error() string {
	return fmt.Sprintf("jsonc: no token matches at line %d, column %d: %q", e.Line, e.Column, excerpt(e.Remaining))
}

// Is reports whether target is ErrLex.
func (e *LexError) Is(target error) bool { return target == ErrLex }

// GrammarError reports a token in a position the grammar forbids.
type GrammarError struct {
	Message string
	Found   string // type of the offending token
	Literal string
	Offset  int
	Line    int
	Column  int
}

func (e *GrammarError) Error() string {
	if e.Found == "" {
		return fmt.Sprintf("jsonc: parsing error at line %d, column %d: %s", e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("jsonc: parsing error at line %d, column %d: %s, got %s (%q)", e.Line, e.Column, e.Message, e.Found, excerpt(e.Literal))
}

// Is reports whether target is ErrGrammar.
func (e *GrammarError) Is(target error) bool { return target == ErrGrammar }

func excerpt(s string) string {
	r := []rune(s)
	if len(r) <= excerptLen {
		return s
	}
	return string(r[:excerptLen]) + "..."
}
