package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/KimNorgaard/go-jsonc/ast"
	"github.com/fatih/color"
)

// ColorAttr names the part of the output a color applies to.
type ColorAttr int

const (
	KeyColor ColorAttr = iota
	ValueColor
	SepColor
)

// Colors maps output parts to sprintf-style painters.
type Colors struct {
	Map map[ColorAttr]func(string, ...any) string
}

// NewColors returns the default palette. Its colors are always emitted,
// whether or not the process writes to a terminal.
func NewColors() *Colors {
	return &Colors{
		Map: map[ColorAttr]func(string, ...any) string{
			KeyColor:   rgb(196, 96, 16),
			ValueColor: rgb(8, 196, 16),
			SepColor:   rgb(128, 128, 128),
		},
	}
}

func rgb(r, g, b int) func(string, ...any) string {
	c := color.RGB(r, g, b)
	c.EnableColor()
	return c.SprintfFunc()
}

// Option configures a Formatter.
type Option func(*Formatter)

// Compact omits the space between a key's colon and its value.
func Compact() Option {
	return func(f *Formatter) {
		f.compact = true
	}
}

// WithColors paints keys, scalars and delimiters. A nil palette disables
// color.
func WithColors(c *Colors) Option {
	return func(f *Formatter) {
		f.colors = c
	}
}

// Formatter writes a tree to an output stream as a single line with no
// surrounding whitespace.
type Formatter struct {
	w       io.Writer
	compact bool
	colors  *Colors
}

// New returns a new formatter that writes to w.
func New(w io.Writer, opts ...Option) *Formatter {
	f := &Formatter{w: w}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format writes the rendering of node to the writer.
func (f *Formatter) Format(node ast.Expr) error {
	s, err := f.render(node)
	if err != nil {
		return err
	}
	_, err = io.WriteString(f.w, s)
	return err
}

// render returns the empty string for NoOp; containers drop empty
// renderings, which is how deleted members disappear from the output.
func (f *Formatter) render(node ast.Expr) (string, error) {
	switch n := node.(type) {
	case *ast.Value:
		return f.paint(ValueColor, n.Raw), nil

	case *ast.Pair:
		key := f.paint(KeyColor, `"`+n.Key+`"`) + f.paint(SepColor, ":")
		if !f.compact {
			key += " "
		}
		switch v := n.Value.(type) {
		case *ast.Statement, *ast.Array:
			value, err := f.render(v)
			if err != nil {
				return "", err
			}
			return key + value, nil
		case *ast.Value:
			return key + f.paint(ValueColor, `"`+v.Raw+`"`), nil
		}
		value, err := f.render(n.Value)
		if err != nil {
			return "", err
		}
		return key + f.paint(ValueColor, `"`+value+`"`), nil

	case ast.NoOp:
		return "", nil

	case *ast.Statement:
		return f.renderList("{", "}", n.Children)

	case *ast.Array:
		return f.renderList("[", "]", n.Children)

	default:
		return "", fmt.Errorf("jsonc: unsupported node type for formatting: %T", n)
	}
}

func (f *Formatter) renderList(start, end string, children []ast.Expr) (string, error) {
	parts := make([]string, 0, len(children))
	for _, c := range children {
		s, err := f.render(c)
		if err != nil {
			return "", err
		}
		if s == "" {
			continue
		}
		parts = append(parts, s)
	}
	comma := f.paint(SepColor, ",")
	return f.paint(SepColor, start) + strings.Join(parts, comma) + f.paint(SepColor, end), nil
}

func (f *Formatter) paint(attr ColorAttr, s string) string {
	if f.colors == nil || s == "" {
		return s
	}
	fn, ok := f.colors.Map[attr]
	if !ok {
		return s
	}
	return fn("%s", s)
}
