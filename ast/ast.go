// Package ast defines the tree produced by parsing relaxed JSON text.
//
// The tree is strictly owned: every node owns its children and nothing
// points back up. Scalars keep their unquoted source text; no numeric or
// boolean typing survives parsing.
package ast

import (
	"strconv"
	"strings"
)

// Expr is the interface implemented by all tree nodes.
type Expr interface {
	// String returns a structural description of the node, for debugging
	// and tests. It is not the serialized form.
	String() string
	exprNode()
}

// Value is a terminal scalar holding its raw source text.
type Value struct {
	Raw string
}

// Pair is a key/value member of an object.
type Pair struct {
	Key   string
	Value Expr
}

// Statement is an object body. Its children are *Pair or NoOp.
type Statement struct {
	Children []Expr
}

// Array is an array body. Its children are *Value, *Statement or *Array.
type Array struct {
	Children []Expr
}

// NoOp marks an absent node: the end of a parse loop, or the tombstone
// left behind by a deletion.
type NoOp struct{}

func (*Value) exprNode()     {}
func (*Pair) exprNode()      {}
func (*Statement) exprNode() {}
func (*Array) exprNode()     {}
func (NoOp) exprNode()       {}

func (v *Value) String() string { return "Value(" + strconv.Quote(v.Raw) + ")" }

func (p *Pair) String() string {
	return "Pair(" + strconv.Quote(p.Key) + ", " + p.Value.String() + ")"
}

func (s *Statement) String() string { return "Statement(" + join(s.Children) + ")" }

func (a *Array) String() string { return "Array(" + join(a.Children) + ")" }

func (NoOp) String() string { return "NoOp" }

func join(children []Expr) string {
	parts := make([]string, 0, len(children))
	for _, c := range children {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, ", ")
}

// IsNoOp reports whether e is the absence marker.
func IsNoOp(e Expr) bool {
	_, ok := e.(NoOp)
	return ok
}

// Walk traverses the tree rooted at e in depth-first order. It calls fn for
// each node and descends into the node's children only if fn returns true.
// Array elements are visited like any other children.
func Walk(e Expr, fn func(Expr) bool) {
	if e == nil || !fn(e) {
		return
	}
	switch n := e.(type) {
	case *Pair:
		Walk(n.Value, fn)
	case *Statement:
		for _, c := range n.Children {
			Walk(c, fn)
		}
	case *Array:
		for _, c := range n.Children {
			Walk(c, fn)
		}
	}
}
