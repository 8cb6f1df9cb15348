package jsonc

import (
	"fmt"
	"io"

	"github.com/KimNorgaard/go-jsonc/ast"
)

// Decoder reads and parses a document from an input stream.
type Decoder struct {
	r    io.Reader
	opts []Option
}

// NewDecoder returns a new decoder that reads from r.
//
// It is the caller's responsibility to call Close on r if required.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode reads the whole input and parses it into a tree.
//
// Note: This is a non-streaming implementation. It reads the entire
// reader into memory first before parsing.
func (d *Decoder) Decode() (ast.Expr, error) {
	if d.r == nil {
		return nil, fmt.Errorf("jsonc: Decode(nil reader)")
	}
	data, err := io.ReadAll(d.r)
	if err != nil {
		return nil, err
	}
	return Parse(data, d.opts...)
}
