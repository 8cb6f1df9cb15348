// Package pathexpr converts textual deletion paths into key segments.
//
// Two notations are accepted. A dotted path such as meta.disclaimer is
// split on every dot. A path that starts with '$' is read as a JSONPath
// query restricted to member-name selectors, e.g. $.meta['dis.claimer'],
// which allows keys that contain dots or spaces.
package pathexpr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theory/jsonpath"
	"github.com/theory/jsonpath/spec"
)

var (
	ErrEmpty       = errors.New("empty path")
	ErrUnsupported = errors.New("unsupported path expression")
)

// Parse returns the key segments named by expr.
func Parse(expr string) ([]string, error) {
	if strings.HasPrefix(expr, "$") {
		return parseJSONPath(expr)
	}
	return parseDotted(expr)
}

func parseDotted(expr string) ([]string, error) {
	if expr == "" {
		return nil, ErrEmpty
	}
	segs := strings.Split(expr, ".")
	for i, s := range segs {
		if s == "" {
			return nil, fmt.Errorf("%w: empty segment %d in %q", ErrUnsupported, i, expr)
		}
	}
	return segs, nil
}

func parseJSONPath(expr string) ([]string, error) {
	p, err := jsonpath.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid JSONPath %s: %v", ErrUnsupported, expr, err)
	}

	var segs []string
	for i, seg := range p.Query().Segments() {
		if seg.IsDescendant() {
			return nil, fmt.Errorf("%w: descendant segment %d in %s", ErrUnsupported, i, expr)
		}
		sels := seg.Selectors()
		if len(sels) != 1 {
			return nil, fmt.Errorf("%w: segment %d in %s must select exactly one member", ErrUnsupported, i, expr)
		}
		name, ok := sels[0].(spec.Name)
		if !ok {
			return nil, fmt.Errorf("%w: segment %d in %s is not a member name", ErrUnsupported, i, expr)
		}
		segs = append(segs, string(name))
	}
	if len(segs) == 0 {
		return nil, ErrEmpty
	}
	return segs, nil
}
