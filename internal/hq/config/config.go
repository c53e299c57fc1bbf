// Package config parses and validates hq command-line configuration.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jacoelho/hq/internal/hq/exit"
)

const (
	// DefaultTimeout is the default timeout for document fetches.
	DefaultTimeout = 30 * time.Second
)

var (
	ErrNoArguments   = errors.New("no arguments provided")
	ErrNoInput       = errors.New("either -url or -file must be set")
	ErrTwoInputs     = errors.New("-url and -file are mutually exclusive")
	ErrNoQuery       = errors.New("either -query or -suite must be set")
	ErrTwoQueries    = errors.New("-query and -suite are mutually exclusive")
	ErrUnknownFormat = errors.New("format must be text or json")
)

// Format selects how results are rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Config represents the complete configuration for the hq tool.
type Config struct {
	// Document source
	URL  string
	File string

	// Query execution
	Query     string
	SuiteFile string
	UseCache  bool

	// Output
	Format Format

	// Fetching
	RequestTimeout time.Duration
	RateLimit      float64 // requests per second (0 = unlimited)
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	switch {
	case c.URL == "" && c.File == "":
		return ErrNoInput
	case c.URL != "" && c.File != "":
		return ErrTwoInputs
	}

	switch {
	case c.Query == "" && c.SuiteFile == "":
		return ErrNoQuery
	case c.Query != "" && c.SuiteFile != "":
		return ErrTwoQueries
	}

	if c.File != "" {
		if _, err := os.Stat(c.File); err != nil {
			return fmt.Errorf("input file %s not found: %w", c.File, err)
		}
	}
	if c.SuiteFile != "" {
		if _, err := os.Stat(c.SuiteFile); err != nil {
			return fmt.Errorf("suite file %s not found: %w", c.SuiteFile, err)
		}
	}

	if c.Format != FormatText && c.Format != FormatJSON {
		return fmt.Errorf("%w, got: %s", ErrUnknownFormat, c.Format)
	}

	return nil
}

// Parse parses command-line arguments and returns a validated Config.
// If parsing fails or help is requested, returns nil config and exit result.
func Parse(args []string) (*Config, *exit.Result) {
	if len(args) == 0 {
		return nil, exit.Errorf("Error: %v\n\n%s", ErrNoArguments, Usage())
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)

	// Suppress default flag output; usage and errors are handled here.
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)

	var (
		url       = fs.String("url", "", "URL of the document to fetch and query")
		file      = fs.String("file", "", "Path to a local document to query")
		query     = fs.String("query", "", "Selector query to run, e.g. 'div.article p'")
		suiteFile = fs.String("suite", "", "Path to a YAML file of named queries")
		useCache  = fs.Bool("cache", false, "Reuse path-cached results for repeated queries")
		format    = fs.String("format", string(FormatText), "Output format: text or json")
		timeout   = fs.Duration("timeout", DefaultTimeout, "Fetch timeout")
		rateLimit = fs.Float64("rate-limit", 0, "Fetch rate limit in requests per second (0 for unlimited)")
	)

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, exit.Success(Usage())
		}
		return nil, exit.Errorf("Error: %v\n\n%s", err, Usage())
	}

	cfg := &Config{
		URL:            *url,
		File:           *file,
		Query:          *query,
		SuiteFile:      *suiteFile,
		UseCache:       *useCache,
		Format:         Format(*format),
		RequestTimeout: *timeout,
		RateLimit:      *rateLimit,
	}

	if err := cfg.Validate(); err != nil {
		return nil, exit.Errorf("Error: %v\n\n%s", err, Usage())
	}

	return cfg, nil
}

// Usage returns the command usage text.
func Usage() string {
	return `Usage: hq [options]

Query an HTML document with jQuery-style selectors.

Options:
  -url string        URL of the document to fetch and query
  -file string       Path to a local document to query
  -query string      Selector query to run, e.g. 'div.article p'
  -suite string      Path to a YAML file of named queries
  -cache             Reuse path-cached results for repeated queries
  -format string     Output format: text or json (default "text")
  -timeout duration  Fetch timeout (default 30s)
  -rate-limit float  Fetch rate limit in requests per second (0 for unlimited)

Examples:
  hq -url https://example.com -query "div.article h1"
  hq -url https://example.com -query "p.summary" -rate-limit 2 -timeout 10s
  hq -file page.html -query "a[href=/home]" -format json
  hq -file page.html -suite queries.yaml
`
}
