// Package output renders query results for the hq command.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jacoelho/hq/internal/dom"
	"github.com/jacoelho/hq/internal/hq/config"
	"github.com/jacoelho/hq/internal/nodepath"
	"github.com/jacoelho/hq/internal/suite"
)

// Match is the serializable view of one matched node.
type Match struct {
	Path    string            `json:"path"`
	Tag     string            `json:"tag"`
	ID      string            `json:"id,omitempty"`
	Classes []string          `json:"classes,omitempty"`
	Attrs   map[string]string `json:"attrs,omitempty"`
	Text    string            `json:"text,omitempty"`
}

// NewMatch captures a node's queryable surface along with its address.
func NewMatch(n *dom.Node) Match {
	m := Match{
		Path:    nodepath.Encode(n),
		Tag:     n.Tag,
		ID:      n.ID(),
		Classes: n.Classes,
		Text:    n.Text,
	}
	if len(n.Attrs) > 0 {
		m.Attrs = make(map[string]string, len(n.Attrs))
		for _, attr := range n.Attrs {
			m.Attrs[attr.Key] = attr.Value
		}
	}
	return m
}

// FormatNodes renders the matches of a single query.
func FormatNodes(format config.Format, w io.Writer, query string, nodes []*dom.Node) error {
	matches := make([]Match, 0, len(nodes))
	for _, n := range nodes {
		matches = append(matches, NewMatch(n))
	}

	if format == config.FormatJSON {
		return writeJSON(w, map[string]any{
			"query":   query,
			"matches": matches,
		})
	}

	if _, err := fmt.Fprintf(w, "%s: %d match(es)\n", query, len(matches)); err != nil {
		return err
	}
	for _, m := range matches {
		line := fmt.Sprintf("  %s  <%s", m.Path, m.Tag)
		if m.ID != "" {
			line += fmt.Sprintf(" id=%q", m.ID)
		}
		for _, class := range m.Classes {
			line += fmt.Sprintf(" .%s", class)
		}
		line += ">"
		if m.Text != "" {
			line += fmt.Sprintf(" %q", m.Text)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// FormatReport renders a suite run.
func FormatReport(format config.Format, w io.Writer, report *suite.Report) error {
	if format == config.FormatJSON {
		return writeJSON(w, report)
	}

	for _, result := range report.Results {
		status := "ok"
		if !result.Passed {
			status = "failed"
		}
		if _, err := fmt.Fprintf(w, "%s: %s (%d match(es))\n", result.Name, status, result.MatchCount); err != nil {
			return err
		}
		for _, failure := range result.Failures {
			if _, err := fmt.Fprintf(w, "  %s\n", failure); err != nil {
				return err
			}
		}
	}

	overall := "ok"
	if !report.Passed {
		overall = "failed"
	}
	_, err := fmt.Fprintf(w, "suite %s (tree %s)\n", overall, report.TreeID)
	return err
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
