// Package tokenizer adapts the x/net/html token stream into the builder's
// open/close/text/comment events.
package tokenizer

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html"

	"github.com/jacoelho/hq/internal/dom"
)

// ErrTokenize indicates the underlying markup tokenizer failed to read input.
var ErrTokenize = errors.New("tokenizer: read failure")

// Parse tokenizes r and returns the completed tree.
//
// Tokens map one-to-one onto builder events: start tags open, end tags close,
// self-closing tags open and immediately close. Void elements written without
// a slash arrive as plain start tags and are folded back in by the builder's
// mismatch recovery when an enclosing element closes, the same way the
// upstream event source behaves.
func Parse(r io.Reader) (*dom.Node, error) {
	z := html.NewTokenizer(r)
	b := dom.NewBuilder()

	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: %v", ErrTokenize, err)
			}
			return b.Root()

		case html.StartTagToken:
			name, attrs := tagAttributes(z)
			b.Open(name, attrs)

		case html.EndTagToken:
			name, _ := z.TagName()
			if err := b.Close(string(name)); err != nil {
				return nil, err
			}

		case html.SelfClosingTagToken:
			name, attrs := tagAttributes(z)
			b.Open(name, attrs)
			if err := b.Close(name); err != nil {
				return nil, err
			}

		case html.TextToken:
			b.Text(string(z.Text()))

		case html.CommentToken:
			b.Comment(string(z.Text()))

		case html.DoctypeToken:
			// carries no tree structure
		}
	}
}

func tagAttributes(z *html.Tokenizer) (string, []dom.Attribute) {
	name, hasAttr := z.TagName()

	var attrs []dom.Attribute
	for hasAttr {
		var key, val []byte
		key, val, hasAttr = z.TagAttr()
		attrs = append(attrs, dom.Attribute{Key: string(key), Value: string(val)})
	}

	return string(name), attrs
}
