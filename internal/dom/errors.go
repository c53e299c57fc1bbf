package dom

import "errors"

var (
	// ErrUnmatchedClose indicates a closing tag with no matching open ancestor.
	// The parse cannot continue past it: recovery only handles closes that
	// match some enclosing element.
	ErrUnmatchedClose = errors.New("dom: unmatched closing tag")

	// ErrBuilderDone indicates events were delivered after Root finalized the tree.
	ErrBuilderDone = errors.New("dom: builder already finalized")
)
