// Package document owns a parsed tree and answers selector queries against
// it, with optional path-based result caching.
package document

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/jacoelho/hq/internal/dom"
	"github.com/jacoelho/hq/internal/nodepath"
	"github.com/jacoelho/hq/internal/selector"
	"github.com/jacoelho/hq/internal/tokenizer"
)

// cacheEntry records the encoded paths of a query's last match set together
// with the identity of the tree they were encoded against.
type cacheEntry struct {
	tree  uuid.UUID
	paths []string
}

// Document holds the current tree for one piece of content. Re-parsing
// replaces the tree wholesale and issues a fresh identity; it never mutates
// the old tree, so in-flight read-only queries against a previous root stay
// safe as long as the caller sequences Reparse against them.
//
// The cache is keyed on the literal query string. Cached lookups re-resolve
// stored paths against the current root, so after a Reparse a cached entry
// either fails to decode or resolves to nodes of the new tree; it never
// returns nodes of a discarded tree.
type Document struct {
	id      uuid.UUID
	content string
	root    *dom.Node
	cache   map[string]cacheEntry
}

// New parses content from r into a fresh document.
func New(r io.Reader) (*Document, error) {
	d := &Document{
		cache: make(map[string]cacheEntry),
	}
	if err := d.Reparse(r); err != nil {
		return nil, err
	}
	return d, nil
}

// NewFromString parses literal markup into a fresh document.
func NewFromString(content string) (*Document, error) {
	return New(strings.NewReader(content))
}

// ID identifies the current tree; it changes on every successful Reparse.
func (d *Document) ID() uuid.UUID {
	return d.id
}

// Root returns the current tree.
func (d *Document) Root() *dom.Node {
	return d.root
}

// Content returns the raw markup behind the current tree.
func (d *Document) Content() string {
	return d.content
}

// Reparse replaces the document's tree with one built from r. On failure the
// previous tree, identity and cache remain in place; there is no partially
// rebuilt state.
func (d *Document) Reparse(r io.Reader) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read content: %w", err)
	}

	root, err := tokenizer.Parse(strings.NewReader(string(raw)))
	if err != nil {
		return err
	}

	d.content = string(raw)
	d.root = root
	d.id = uuid.New()
	return nil
}

// Select runs a selector query against the current tree.
//
// With useCache set, a previous result for the same literal query string is
// re-resolved path by path against the current root instead of re-running
// the match; decode failures surface as nodepath.ErrStalePath. Every
// uncached run refreshes the cache entry, whether or not useCache was set.
//
// The empty query matches the root, whose encoded path is the empty string
// and is not decodable, so a cached empty query always fails with
// nodepath.ErrStalePath. Run the empty query uncached.
func (d *Document) Select(query string, useCache bool) ([]*dom.Node, error) {
	if useCache {
		if entry, ok := d.cache[query]; ok {
			return d.GetTags(entry.paths)
		}
	}

	nodes, err := selector.SelectQuery(d.root, query)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(nodes))
	for _, node := range nodes {
		paths = append(paths, nodepath.Encode(node))
	}
	d.cache[query] = cacheEntry{tree: d.id, paths: paths}

	return nodes, nil
}

// CachedPaths returns the stored paths for a query along with the identity
// of the tree they were encoded against, when an entry exists.
func (d *Document) CachedPaths(query string) ([]string, uuid.UUID, bool) {
	entry, ok := d.cache[query]
	return entry.paths, entry.tree, ok
}

// GetTag resolves one encoded path against the current tree.
func (d *Document) GetTag(path string) (*dom.Node, error) {
	return nodepath.Decode(d.root, path)
}

// GetTags resolves each path in order against the current tree, failing on
// the first path that does not resolve.
func (d *Document) GetTags(paths []string) ([]*dom.Node, error) {
	nodes := make([]*dom.Node, 0, len(paths))
	for _, path := range paths {
		node, err := nodepath.Decode(d.root, path)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}
