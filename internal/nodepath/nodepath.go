// Package nodepath addresses tree nodes by their sibling indices.
//
// A path is the colon-joined list of child indices walked from the root down
// to a node; the root itself has the empty path. Paths are positional, so a
// path is only meaningful against a tree with the same shape as the one it
// was encoded from.
package nodepath

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jacoelho/hq/internal/dom"
)

const indexSep = ":"

// ErrStalePath indicates a path that does not resolve against the current
// tree, which usually means the tree was rebuilt after the path was encoded.
// It is distinct from structural parse errors: the input tree is fine, the
// address is not.
var ErrStalePath = errors.New("nodepath: stale path")

// Encode returns the node's positional address. Each step records the node's
// index within its parent's child list, found by linear scan; the synthetic
// root contributes nothing, so the root encodes to the empty string.
func Encode(node *dom.Node) string {
	var indices []string

	for cur := node; cur.Parent != nil; cur = cur.Parent {
		for i, child := range cur.Parent.Children {
			if child == cur {
				indices = append(indices, strconv.Itoa(i))
				break
			}
		}
	}

	slices.Reverse(indices)
	return strings.Join(indices, indexSep)
}

// Decode resolves a path against root by indexing into successive child
// lists. Any out-of-range index or non-integer component fails with
// ErrStalePath; the empty path, which only the synthetic root encodes to,
// is rejected the same way.
func Decode(root *dom.Node, path string) (*dom.Node, error) {
	cur := root
	for _, component := range strings.Split(path, indexSep) {
		index, err := strconv.Atoi(component)
		if err != nil {
			return nil, fmt.Errorf("%w: component %q is not an index", ErrStalePath, component)
		}
		if index < 0 || index >= len(cur.Children) {
			return nil, fmt.Errorf("%w: index %d out of range (%d children)", ErrStalePath, index, len(cur.Children))
		}
		cur = cur.Children[index]
	}
	return cur, nil
}
