package lexer

import (
	"regexp"
	"unicode/utf8"

	"github.com/KimNorgaard/go-jsonc/errors"
	"github.com/KimNorgaard/go-jsonc/internal/token"
)

// pattern pairs a token type with the expression that recognizes it at the
// start of the remaining input.
type pattern struct {
	typ token.Type
	re  *regexp.Regexp
}

// patterns is tried in order; the first one that matches at the cursor wins
// and its leftmost-longest match is consumed. Escapes come first so that an
// escaped quote or brace is never read as structure.
var patterns = []pattern{
	{token.ESCAPED, regexp.MustCompile(`^(?s:\\.)`)},
	{token.WHITESPACE, regexp.MustCompile(`^[ \t\n\r]+`)},
	{token.BOOLEAN, regexp.MustCompile(`^(?:true|false)`)},
	{token.LBRACK, regexp.MustCompile(`^\[`)},
	{token.RBRACK, regexp.MustCompile(`^\]`)},
	{token.QUOTE, regexp.MustCompile(`^"`)},
	{token.LBRACE, regexp.MustCompile(`^\{`)},
	{token.RBRACE, regexp.MustCompile(`^\}`)},
	{token.COLON, regexp.MustCompile(`^:`)},
	{token.COMMA, regexp.MustCompile(`^,`)},
	{token.NUMBER, regexp.MustCompile(`^[0-9]+`)},
	// '<' and '!' end a word like the quote and the backslash do.
	{token.WORD, regexp.MustCompile(`^[^<!\\"]+`)},
}

// Lexer holds the state for tokenizing relaxed JSON source.
type Lexer struct {
	input    []byte
	position int // offset of the next unread byte
	line     int
	column   int
}

// New creates and returns a new Lexer.
func New(input []byte) *Lexer {
	return &Lexer{input: input, line: 1, column: 1}
}

// NextToken scans the input and returns the next token. At the end of the
// input it returns an EOF token. If no pattern matches it returns a
// *errors.LexError and the lexer does not advance.
func (l *Lexer) NextToken() (token.Token, error) {
	tok := token.Token{Offset: l.position, Line: l.line, Column: l.column}
	if l.position >= len(l.input) {
		tok.Type = token.EOF
		return tok, nil
	}

	rest := l.input[l.position:]
	for _, p := range patterns {
		loc := p.re.FindIndex(rest)
		if loc == nil || loc[1] == 0 {
			continue
		}
		tok.Type = p.typ
		tok.Literal = string(rest[:loc[1]])
		l.advance(rest[:loc[1]])
		return tok, nil
	}

	return tok, &errors.LexError{
		Offset:    l.position,
		Line:      l.line,
		Column:    l.column,
		Remaining: string(rest),
	}
}

// Tokenize converts the whole input into its ordered token sequence. The
// trailing EOF token is not included, so concatenating the literals of the
// result reproduces the input exactly.
func Tokenize(input []byte) ([]token.Token, error) {
	l := New(input)
	var tokens []token.Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Type == token.EOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

func (l *Lexer) advance(consumed []byte) {
	l.position += len(consumed)
	for len(consumed) > 0 {
		r, size := utf8.DecodeRune(consumed)
		if r == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
		consumed = consumed[size:]
	}
}
