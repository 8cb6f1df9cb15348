package token

import "strings"

// Type is the type of a token.
type Type string

// Token represents a lexical token.
type Token struct {
	Type    Type
	Literal string
	Offset  int // byte offset of the first character
	Line    int
	Column  int
}

const (
	// Special tokens
	EOF Type = "EOF" // End of input

	// Runs of text
	WORD       Type = "WORD"       // hello world
	WHITESPACE Type = "WHITESPACE" // " \t\r\n"
	ESCAPED    Type = "ESCAPED"    // \"
	NUMBER     Type = "NUMBER"     // 12345
	BOOLEAN    Type = "BOOLEAN"    // true, false

	// Delimiters
	QUOTE  Type = `"`
	LBRACE Type = "{"
	RBRACE Type = "}"
	LBRACK Type = "["
	RBRACK Type = "]"
	COLON  Type = ":"
	COMMA  Type = ","
)

// Join concatenates the literal text of every token in order. For the
// output of a successful tokenization it reproduces the source.
func Join(tokens []Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(tok.Literal)
	}
	return b.String()
}
