package tokenizer

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/jacoelho/hq/internal/dom"
)

func TestParse_Simple(t *testing.T) {
	t.Parallel()

	root, err := Parse(strings.NewReader(`<div id="main" class="foo bar"><p>hello</p><!-- note --></div>`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(root.Children) != 1 {
		t.Fatalf("root children = %d, want 1", len(root.Children))
	}

	div := root.Children[0]
	if div.Tag != "div" {
		t.Errorf("tag = %q, want div", div.Tag)
	}
	if div.ID() != "main" {
		t.Errorf("id = %q, want main", div.ID())
	}
	if got, want := div.Classes, []string{"foo", "bar"}; !reflect.DeepEqual(got, want) {
		t.Errorf("classes = %v, want %v", got, want)
	}
	if got, want := div.Comments, []string{" note "}; !reflect.DeepEqual(got, want) {
		t.Errorf("comments = %v, want %v", got, want)
	}

	if len(div.Children) != 1 {
		t.Fatalf("div children = %d, want 1", len(div.Children))
	}
	p := div.Children[0]
	if p.Tag != "p" || p.Text != "hello" {
		t.Errorf("child = %s %q, want p %q", p.Tag, p.Text, "hello")
	}
}

func TestParse_SelfClosing(t *testing.T) {
	t.Parallel()

	root, err := Parse(strings.NewReader(`<div><img src="x.png"/><span>y</span></div>`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	div := root.Children[0]
	var tags []string
	for _, child := range div.Children {
		tags = append(tags, child.Tag)
	}
	if want := []string{"img", "span"}; !reflect.DeepEqual(tags, want) {
		t.Errorf("div children = %v, want %v", tags, want)
	}
}

func TestParse_NoDocumentScaffolding(t *testing.T) {
	t.Parallel()

	// Unlike a conforming HTML5 parser, tokenizing adds no implicit
	// html/head/body elements.
	root, err := Parse(strings.NewReader(`<span>x</span>`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(root.Children) != 1 || root.Children[0].Tag != "span" {
		t.Errorf("root = %s, want a lone span child", root)
	}
}

func TestParse_UnmatchedClose(t *testing.T) {
	t.Parallel()

	_, err := Parse(strings.NewReader(`<div><p>x</p></table></div>`))
	if !errors.Is(err, dom.ErrUnmatchedClose) {
		t.Fatalf("Parse() error = %v, want ErrUnmatchedClose", err)
	}
}

// A custom-element end tag spelled like the synthetic root name reaches the
// builder verbatim and must fail the parse, not corrupt the cursor.
func TestParse_RootNamedCloseTag(t *testing.T) {
	t.Parallel()

	_, err := Parse(strings.NewReader(`</root><div>x</div>`))
	if !errors.Is(err, dom.ErrUnmatchedClose) {
		t.Fatalf("Parse() error = %v, want ErrUnmatchedClose", err)
	}
}

func TestParse_MismatchedNesting(t *testing.T) {
	t.Parallel()

	root, err := Parse(strings.NewReader(`<div><span><em>x</div>`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	div := root.Children[0]
	var tags []string
	for _, child := range div.Children {
		tags = append(tags, child.Tag)
		if len(child.Children) != 0 {
			t.Errorf("%s should be a leaf after recovery", child.Tag)
		}
	}
	if want := []string{"span", "em"}; !reflect.DeepEqual(tags, want) {
		t.Errorf("div children = %v, want %v", tags, want)
	}
}
