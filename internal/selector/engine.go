package selector

import (
	"github.com/jacoelho/hq/internal/dom"
	"github.com/jacoelho/hq/internal/queue"
)

// workItem pairs a node with the predicates still to be satisfied below it.
type workItem struct {
	node  *dom.Node
	chain []Predicate
}

// Select evaluates a predicate chain against the tree rooted at root and
// returns the matches in the order they are found.
//
// The traversal is breadth-first over a single work queue with a dual
// enqueue discipline: every dequeued node re-enqueues its children under the
// same remaining chain, so the current predicate keeps searching past
// non-matching nodes at any depth, and a node that satisfies the head of its
// chain additionally enqueues its children under the rest of the chain. A
// node can therefore sit in the queue under several chains at once; that is
// what lets it act both as a skipped ancestor and as a step toward a deeper
// match. Result order follows match completion, not raw tree depth.
func Select(root *dom.Node, chain []Predicate) []*dom.Node {
	if root == nil || len(chain) == 0 {
		return nil
	}

	q := queue.New[workItem]()
	q.Enqueue(workItem{node: root, chain: chain})

	var results []*dom.Node
	for {
		item, ok := q.Dequeue()
		if !ok {
			break
		}

		for _, child := range item.node.Children {
			q.Enqueue(workItem{node: child, chain: item.chain})
		}

		if !item.chain[0].Match(item.node) {
			continue
		}

		if len(item.chain) == 1 {
			results = append(results, item.node)
			continue
		}

		for _, child := range item.node.Children {
			q.Enqueue(workItem{node: child, chain: item.chain[1:]})
		}
	}

	return results
}

// SelectQuery parses query and evaluates it against root.
func SelectQuery(root *dom.Node, query string) ([]*dom.Node, error) {
	chain, err := Parse(query)
	if err != nil {
		return nil, err
	}
	return Select(root, chain), nil
}
