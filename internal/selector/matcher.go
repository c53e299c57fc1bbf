package selector

import (
	"github.com/jacoelho/hq/internal/dom"
)

// Match reports whether the node satisfies every part of the predicate.
// All checks are conjunctive; empty parts hold vacuously.
func (p Predicate) Match(n *dom.Node) bool {
	if p.Tag != "" && p.Tag != n.Tag {
		return false
	}

	if p.ID != "" {
		id, ok := n.Attr("id")
		if !ok || id != p.ID {
			return false
		}
	}

	for _, class := range p.Classes {
		if !n.HasClass(class) {
			return false
		}
	}

	for key, want := range p.Attrs {
		got, ok := n.Attr(key)
		if !ok || got != want {
			return false
		}
	}

	return true
}

// IsAny reports whether the predicate matches unconditionally, which is what
// an empty selector token compiles to.
func (p Predicate) IsAny() bool {
	return p.Tag == "" && p.ID == "" && len(p.Classes) == 0 && len(p.Attrs) == 0
}
