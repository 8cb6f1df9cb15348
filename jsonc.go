package jsonc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/KimNorgaard/go-jsonc/ast"
	"github.com/KimNorgaard/go-jsonc/internal/formatter"
	"github.com/KimNorgaard/go-jsonc/internal/lexer"
	"github.com/KimNorgaard/go-jsonc/internal/parser"
	"github.com/KimNorgaard/go-jsonc/internal/prune"
	"github.com/KimNorgaard/go-jsonc/internal/token"
)

// ErrEmptyPath is returned by Prune for a deletion path without segments.
var ErrEmptyPath = errors.New("jsonc: empty deletion path")

// Token is a classified span of source text.
type Token = token.Token

// TokenType is the kind of a Token.
type TokenType = token.Type

// Token kinds.
const (
	WordToken       = token.WORD
	WhiteSpaceToken = token.WHITESPACE
	EscapedToken    = token.ESCAPED
	NumberToken     = token.NUMBER
	BooleanToken    = token.BOOLEAN
	QuoteToken      = token.QUOTE
	LBraceToken     = token.LBRACE
	RBraceToken     = token.RBRACE
	LBracketToken   = token.LBRACK
	RBracketToken   = token.RBRACK
	ColonToken      = token.COLON
	CommaToken      = token.COMMA
)

// Tokenize splits data into its ordered token sequence. Concatenating the
// literals of the result reproduces data exactly. If some position matches
// no token pattern, Tokenize returns a *errors.LexError.
func Tokenize(data []byte) ([]Token, error) {
	return lexer.Tokenize(data)
}

// Parse tokenizes and parses data into a tree whose root is an
// *ast.Statement or an *ast.Array. Content after the root other than
// whitespace is an error. The first malformed construct aborts
// parsing with a *errors.LexError or *errors.GrammarError.
func Parse(data []byte, opts ...Option) (ast.Expr, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	return parse(data, o)
}

func parse(data []byte, o *options) (ast.Expr, error) {
	tokens, err := lexer.Tokenize(data)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("tokenized input", slog.Int("bytes", len(data)), slog.Int("tokens", len(tokens)))

	var popts []parser.Option
	if o.maxDepth > 0 {
		popts = append(popts, parser.MaxDepth(o.maxDepth))
	}
	root, err := parser.New(tokens, popts...).Parse()
	if err != nil {
		return nil, err
	}
	o.logger.Debug("parsed tree", slog.Int("pairs", prune.Count(root)))
	return root, nil
}

// Delete returns a copy of root in which the pairs addressed by path are
// replaced by ast.NoOp. The tree is walked in document order with a single
// cursor over path: a key may match at any depth, and each match moves the
// cursor on for the rest of the walk, so later keys are looked up in every
// pair visited after it. Arrays are never searched.
func Delete(root ast.Expr, path ...string) ast.Expr {
	return prune.Delete(root, path)
}

// Marshal renders root as a single line of text. Scalars that are values of
// a member are always quoted; deleted members leave no trace.
func Marshal(root ast.Expr, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := MarshalTo(&buf, root, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalTo writes the rendering of root to w.
func MarshalTo(w io.Writer, root ast.Expr, opts ...Option) error {
	o, err := newOptions(opts)
	if err != nil {
		return err
	}
	return formatter.New(w, o.formatterOpts()...).Format(root)
}

// Prune parses data, deletes every path in order and returns the rendered
// result.
func Prune(data []byte, paths [][]string, opts ...Option) ([]byte, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	for i, path := range paths {
		if len(path) == 0 {
			return nil, fmt.Errorf("path %d: %w", i, ErrEmptyPath)
		}
	}

	root, err := parse(data, o)
	if err != nil {
		return nil, err
	}

	for _, path := range paths {
		var n int
		root, n = prune.DeleteCount(root, path)
		o.logger.Debug("deleted path", slog.Any("path", path), slog.Int("removed", n))
	}

	var buf bytes.Buffer
	if err := formatter.New(&buf, o.formatterOpts()...).Format(root); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
