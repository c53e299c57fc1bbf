// Package selector parses jQuery-style compound selectors and matches them
// against a dom tree.
//
// A query is one or more space-separated compound tokens, each combining a
// tag name with .class, #id and [key=value] parts in any order. Tokens chain
// as descendant requirements: each token matches a descendant, at any depth,
// of the previous token's match.
package selector

import (
	"fmt"
	"strings"
)

const (
	classSep  = '.'
	idSep     = '#'
	attrOpen  = '['
	attrClose = ']'
	tokenSep  = " "
)

// sectionStops terminates class and id sections; attribute sections stop
// only at the closing bracket.
const sectionStops = ".#[]"

// Predicate is the structured form of one compound selector token. Empty
// fields match unconditionally, so the zero Predicate matches every node.
type Predicate struct {
	Tag     string
	ID      string
	Classes []string
	Attrs   map[string]string
}

// Compile parses a single compound token (no whitespace).
func Compile(token string) (Predicate, error) {
	p := Predicate{Tag: token}
	if i := strings.IndexAny(token, sectionStops); i >= 0 {
		p.Tag = token[:i]
	}

	p.Classes = sections(token, classSep, sectionStops)

	if ids := sections(token, idSep, sectionStops); len(ids) > 0 {
		// first id wins when a token carries more than one
		p.ID = ids[0]
	}

	for _, item := range sections(token, attrOpen, string(attrClose)) {
		key, value, ok := strings.Cut(item, "=")
		if !ok {
			return Predicate{}, fmt.Errorf("%w: attribute %q missing '='", ErrSelector, item)
		}
		if p.Attrs == nil {
			p.Attrs = make(map[string]string)
		}
		p.Attrs[key] = value
	}

	return p, nil
}

// Parse splits a query on single spaces and compiles each token into a
// predicate, leftmost first. Consecutive spaces produce empty tokens, which
// compile to the match-anything predicate; callers that build queries from
// user input should collapse whitespace themselves if they do not want that.
func Parse(query string) ([]Predicate, error) {
	tokens := strings.Split(query, tokenSep)

	predicates := make([]Predicate, 0, len(tokens))
	for _, token := range tokens {
		p, err := Compile(token)
		if err != nil {
			return nil, fmt.Errorf("token %q: %w", token, err)
		}
		predicates = append(predicates, p)
	}

	return predicates, nil
}

// sections collects the substrings introduced by start and terminated by the
// next stop byte or the end of the token. The introducing byte is consumed;
// stops inside a section are not part of it.
func sections(token string, start byte, stops string) []string {
	var out []string

	begin := -1
	for i := 0; i < len(token); i++ {
		c := token[i]
		if begin >= 0 && strings.IndexByte(stops, c) >= 0 {
			out = append(out, token[begin+1:i])
			begin = -1
		}
		if c == start {
			begin = i
		}
	}
	if begin >= 0 {
		out = append(out, token[begin+1:])
	}

	return out
}
