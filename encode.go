package jsonc

import (
	"fmt"
	"io"

	"github.com/KimNorgaard/go-jsonc/ast"
)

// Encoder writes rendered trees to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the rendering of root to the stream. Nothing is written
// after it, so consecutive trees are not separated.
func (e *Encoder) Encode(root ast.Expr) error {
	if root == nil {
		return fmt.Errorf("jsonc: Encode(nil tree)")
	}
	return MarshalTo(e.w, root, e.opts...)
}
