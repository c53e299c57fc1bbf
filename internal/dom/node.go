// Package dom holds the element tree built from a markup event stream.
package dom

import (
	"slices"
	"strings"
)

// RootTag is the sentinel name of the synthetic root element.
// Real markup never produces it, so no selector token matches the root.
const RootTag = "root"

// Attribute is one key/value pair on an element, in document order.
type Attribute struct {
	Key   string
	Value string
}

// Node is a single element of the tree, or the synthetic root.
//
// Children are owned by the node and kept in document order; Parent is a
// non-owning back-reference and is nil only on the root. A node is mutable
// only while its Builder is consuming events.
type Node struct {
	Tag      string
	Attrs    []Attribute
	Classes  []string
	Text     string
	Comments []string
	Parent   *Node
	Children []*Node
}

// NewRoot returns the synthetic root of an empty tree.
func NewRoot() *Node {
	return &Node{Tag: RootTag}
}

// Attr returns the last value of the named attribute, matching how repeated
// attributes overwrite earlier ones upstream. The class attribute is not part
// of the generic attribute list; use Classes or HasClass instead.
func (n *Node) Attr(name string) (string, bool) {
	for i := len(n.Attrs) - 1; i >= 0; i-- {
		if n.Attrs[i].Key == name {
			return n.Attrs[i].Value, true
		}
	}
	return "", false
}

// ID returns the id attribute, or the empty string when absent.
func (n *Node) ID() string {
	id, _ := n.Attr("id")
	return id
}

// HasClass reports whether name is one of the node's class tokens.
func (n *Node) HasClass(name string) bool {
	return slices.Contains(n.Classes, name)
}

// IsRoot reports whether the node is the synthetic root.
func (n *Node) IsRoot() bool {
	return n.Parent == nil && n.Tag == RootTag
}

// Walk visits the node and every descendant in depth-first document order.
// Traversal stops early when fn returns false.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// String renders the tag with its children, mirroring document structure.
// It is meant for debugging output, not serialization.
func (n *Node) String() string {
	if len(n.Children) == 0 {
		return n.Tag
	}

	var b strings.Builder
	b.WriteString(n.Tag)
	b.WriteString(": [")
	for i, child := range n.Children {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(child.String())
	}
	b.WriteString("]")
	return b.String()
}
