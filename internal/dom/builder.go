package dom

import (
	"fmt"
	"strings"
)

// Builder assembles a tree from an ordered stream of open/close/text/comment
// events. The cursor is the most recently opened, not yet closed element;
// events always apply at the cursor.
//
// Mismatched closing tags are recovered, not rejected: a close that skips
// open elements walks up to the matching ancestor, and every child of a
// skipped element is re-attached, stripped of its own children, under that
// ancestor. Deeper content below re-attached children is discarded. A close
// with no matching open ancestor at all fails the whole parse with
// ErrUnmatchedClose.
type Builder struct {
	root *Node
	cur  *Node
	err  error
	done bool
}

func NewBuilder() *Builder {
	root := NewRoot()
	return &Builder{
		root: root,
		cur:  root,
	}
}

// Open allocates a new element as a child of the cursor and moves the cursor
// to it. A class attribute is split on whitespace into class tokens and kept
// out of the generic attribute list.
func (b *Builder) Open(tag string, attrs []Attribute) {
	if b.err != nil || b.done {
		return
	}

	node := &Node{
		Tag:    tag,
		Parent: b.cur,
	}
	for _, attr := range attrs {
		if attr.Key == "class" {
			node.Classes = strings.Fields(attr.Value)
			continue
		}
		node.Attrs = append(node.Attrs, attr)
	}

	b.cur.Children = append(b.cur.Children, node)
	b.cur = node
}

// Text appends data to the cursor's text buffer.
func (b *Builder) Text(data string) {
	if b.err != nil || b.done {
		return
	}
	b.cur.Text += data
}

// Comment appends data to the cursor's comment list.
func (b *Builder) Comment(data string) {
	if b.err != nil || b.done {
		return
	}
	b.cur.Comments = append(b.cur.Comments, data)
}

// Close walks the cursor up to the nearest ancestor named tag, applying
// mismatch recovery on the way, then moves the cursor to that ancestor's
// parent. It fails when no ancestor matches. The synthetic root was never
// opened by an event, so it is not closable: a closing tag that happens to
// carry the root's name is unmatched like any other.
func (b *Builder) Close(tag string) error {
	if b.err != nil {
		return b.err
	}
	if b.done {
		return ErrBuilderDone
	}

	var orphans []*Node
	target := b.cur
	for {
		if target.Parent == nil {
			b.err = fmt.Errorf("%w: </%s>", ErrUnmatchedClose, tag)
			return b.err
		}
		if target.Tag == tag {
			break
		}
		orphans = append(orphans, target.Children...)
		target.Children = nil
		target = target.Parent
	}

	for _, orphan := range orphans {
		orphan.Parent = target
		orphan.Children = nil
	}
	target.Children = append(target.Children, orphans...)

	b.cur = target.Parent
	return nil
}

// Root finalizes the stream and returns the completed tree. After a
// successful Root the builder accepts no further events; after any builder
// error no tree is returned at all.
func (b *Builder) Root() (*Node, error) {
	if b.err != nil {
		return nil, b.err
	}
	b.done = true
	return b.root, nil
}
