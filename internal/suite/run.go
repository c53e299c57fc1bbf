package suite

import (
	"fmt"

	"github.com/theory/jsonpath"

	"github.com/jacoelho/hq/internal/document"
	"github.com/jacoelho/hq/internal/dom"
	"github.com/jacoelho/hq/internal/nodepath"
)

// QueryResult is the outcome of one suite query.
type QueryResult struct {
	Name       string   `json:"name"`
	Selector   string   `json:"selector"`
	MatchCount int      `json:"match_count"`
	Values     []any    `json:"values,omitempty"`
	Passed     bool     `json:"passed"`
	Failures   []string `json:"failures,omitempty"`
}

// Report aggregates the results of a suite run against one tree.
type Report struct {
	TreeID  string        `json:"tree_id"`
	Results []QueryResult `json:"results"`
	Passed  bool          `json:"passed"`
}

// Run executes each query in order against the document. Queries are
// independent: a failed selector or assertion marks its own result and the
// run continues, leaving the document's tree untouched.
func Run(doc *document.Document, queries []Query) *Report {
	report := &Report{
		TreeID: doc.ID().String(),
		Passed: true,
	}

	for _, q := range queries {
		result := runQuery(doc, q)
		if !result.Passed {
			report.Passed = false
		}
		report.Results = append(report.Results, result)
	}

	return report
}

func runQuery(doc *document.Document, q Query) QueryResult {
	result := QueryResult{
		Name:     q.Name,
		Selector: q.Selector,
	}

	nodes, err := doc.Select(q.Selector, q.Cache)
	if err != nil {
		result.Failures = append(result.Failures, err.Error())
		return result
	}
	result.MatchCount = len(nodes)

	values, err := extractValues(nodes, q.Extract)
	if err != nil {
		result.Failures = append(result.Failures, err.Error())
		return result
	}
	result.Values = values

	result.Passed = true
	for _, a := range q.Asserts {
		if msg, ok := checkAssert(a, values); !ok {
			result.Passed = false
			result.Failures = append(result.Failures, msg)
		}
	}

	return result
}

// extractValues projects each matched node to its JSON shape and, when an
// extract expression is set, selects the first jsonpath result per node.
// Nodes where the expression selects nothing contribute no value.
func extractValues(nodes []*dom.Node, extract string) ([]any, error) {
	if extract == "" {
		values := make([]any, 0, len(nodes))
		for _, n := range nodes {
			values = append(values, Projection(n))
		}
		return values, nil
	}

	path, err := jsonpath.Parse(extract)
	if err != nil {
		return nil, fmt.Errorf("invalid extract %s: %v", extract, err)
	}

	var values []any
	for _, n := range nodes {
		if selected := path.Select(Projection(n)); len(selected) > 0 {
			values = append(values, selected[0])
		}
	}
	return values, nil
}

// checkAssert passes when any extracted value satisfies the predicate,
// mirroring how jsonpath assertions accept any matching stream result.
// Values that cannot be evaluated under the operation are skipped.
func checkAssert(a Assert, values []any) (string, bool) {
	pred, err := newPredicate(a.Operation, a.Value)
	if err != nil {
		return err.Error(), false
	}

	if len(values) == 0 {
		return fmt.Sprintf("%s: no values to assert against", a.Operation), false
	}

	for _, value := range values {
		ok, err := pred.evaluate(value)
		if err != nil {
			continue
		}
		if ok {
			return "", true
		}
	}

	return fmt.Sprintf("%s %v: no extracted value satisfied the assert", a.Operation, a.Value), false
}

// Projection is the JSON shape of a node that extract expressions run over.
func Projection(n *dom.Node) map[string]any {
	attrs := make(map[string]any, len(n.Attrs))
	for _, attr := range n.Attrs {
		attrs[attr.Key] = attr.Value
	}

	classes := make([]any, 0, len(n.Classes))
	for _, class := range n.Classes {
		classes = append(classes, class)
	}

	comments := make([]any, 0, len(n.Comments))
	for _, comment := range n.Comments {
		comments = append(comments, comment)
	}

	return map[string]any{
		"tag":      n.Tag,
		"id":       n.ID(),
		"text":     n.Text,
		"classes":  classes,
		"attrs":    attrs,
		"comments": comments,
		"path":     nodepath.Encode(n),
	}
}
