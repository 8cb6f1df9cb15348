// Package prune removes subtrees addressed by a sequence of object keys.
package prune

import "github.com/KimNorgaard/go-jsonc/ast"

// Delete returns a tree in which the pairs reached by path have been
// replaced by ast.NoOp. The input tree is not modified; untouched subtrees
// are shared with the result.
//
// The tree is walked depth first, in document order, with one cursor over
// path. A pair whose key equals the head of the cursor either is deleted,
// when the head is the last segment, or advances the cursor before its
// value is searched. The cursor is never rewound, so a match narrows the
// path for every pair visited after it, siblings included. Keys that do
// not match are searched below with the cursor as it is. Arrays are never
// entered. An empty path leaves the tree unchanged.
func Delete(root ast.Expr, path []string) ast.Expr {
	res, _ := DeleteCount(root, path)
	return res
}

// DeleteCount is like Delete and also reports how many pairs were removed.
func DeleteCount(root ast.Expr, path []string) (ast.Expr, int) {
	if len(path) == 0 {
		return root, 0
	}
	w := &walker{path: path}
	return w.delete(root), w.removed
}

type walker struct {
	path    []string // remaining segments, never empty
	removed int
}

func (w *walker) delete(e ast.Expr) ast.Expr {
	switch n := e.(type) {
	case *ast.Pair:
		if n.Key == w.path[0] {
			if len(w.path) == 1 {
				w.removed++
				return ast.NoOp{}
			}
			w.path = w.path[1:]
		}
		return &ast.Pair{Key: n.Key, Value: w.delete(n.Value)}
	case *ast.Statement:
		children := make([]ast.Expr, 0, len(n.Children))
		for _, c := range n.Children {
			children = append(children, w.delete(c))
		}
		return &ast.Statement{Children: children}
	default:
		// *ast.Value, *ast.Array and ast.NoOp are returned as they are.
		return e
	}
}

// Count returns the number of pairs in the tree, including those held by
// objects inside arrays.
func Count(root ast.Expr) int {
	var n int
	ast.Walk(root, func(e ast.Expr) bool {
		if _, ok := e.(*ast.Pair); ok {
			n++
		}
		return true
	})
	return n
}
