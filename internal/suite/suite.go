// Package suite runs declarative batches of selector queries, described in
// YAML, against a parsed document.
package suite

import (
	"errors"
	"fmt"
	"io"

	yaml "github.com/goccy/go-yaml"
)

// ErrSuite is the sentinel error for all suite parsing failures.
var ErrSuite = errors.New("suite: invalid suite")

// Query is one named selector query with optional value extraction and
// assertions over the extracted values.
type Query struct {
	Name     string   `yaml:"name"`              // query identifier for reporting
	Selector string   `yaml:"selector"`          // compound selector query
	Extract  string   `yaml:"extract,omitempty"` // jsonpath over each match's JSON projection
	Cache    bool     `yaml:"cache,omitempty"`   // use path-based result caching
	Asserts  []Assert `yaml:"asserts,omitempty"` // checks over extracted values
}

// Assert is one predicate over a query's extracted values.
type Assert struct {
	Operation string `yaml:"op"`
	Value     any    `yaml:"value,omitempty"`
}

// Parse decodes a YAML stream of queries and validates each entry.
func Parse(r io.Reader) ([]Query, error) {
	decoder := yaml.NewDecoder(r)

	var queries []Query
	if err := decoder.Decode(&queries); err != nil {
		return nil, fmt.Errorf("%w: failed to decode YAML: %v", ErrSuite, err)
	}

	for i, q := range queries {
		if q.Name == "" {
			return nil, fmt.Errorf("%w: query %d missing name", ErrSuite, i)
		}
		if q.Selector == "" {
			return nil, fmt.Errorf("%w: query %q missing selector", ErrSuite, q.Name)
		}
		for _, a := range q.Asserts {
			if _, err := newPredicate(a.Operation, a.Value); err != nil {
				return nil, fmt.Errorf("%w: query %q: %v", ErrSuite, q.Name, err)
			}
		}
	}

	return queries, nil
}
