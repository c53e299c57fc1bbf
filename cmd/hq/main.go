package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jacoelho/hq/internal/document"
	"github.com/jacoelho/hq/internal/fetch"
	"github.com/jacoelho/hq/internal/hq/config"
	"github.com/jacoelho/hq/internal/hq/exit"
	"github.com/jacoelho/hq/internal/hq/output"
	"github.com/jacoelho/hq/internal/suite"
)

func main() {
	cfg, exitResult := config.Parse(os.Args)
	if exitResult != nil {
		exitResult.Print()
		os.Exit(exitResult.ExitCode)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	result := run(ctx, cfg)
	result.Print()
	os.Exit(result.ExitCode)
}

func run(ctx context.Context, cfg *config.Config) *exit.Result {
	doc, result := load(ctx, cfg)
	if result != nil {
		return result
	}

	if cfg.SuiteFile != "" {
		return runSuite(cfg, doc)
	}
	return runQuery(cfg, doc)
}

func load(ctx context.Context, cfg *config.Config) (*document.Document, *exit.Result) {
	if cfg.URL != "" {
		fetcher := fetch.New(cfg.RequestTimeout, cfg.RateLimit)
		body, err := fetcher.Fetch(ctx, cfg.URL)
		if err != nil {
			return nil, exit.Errorf("Error: %v\n", err)
		}
		doc, err := document.NewFromString(string(body))
		if err != nil {
			return nil, exit.Errorf("Error: %v\n", err)
		}
		return doc, nil
	}

	f, err := os.Open(cfg.File)
	if err != nil {
		return nil, exit.Errorf("Error: %v\n", err)
	}
	defer f.Close()

	doc, err := document.New(f)
	if err != nil {
		return nil, exit.Errorf("Error: %v\n", err)
	}
	return doc, nil
}

func runQuery(cfg *config.Config, doc *document.Document) *exit.Result {
	nodes, err := doc.Select(cfg.Query, cfg.UseCache)
	if err != nil {
		return exit.Errorf("Error: %v\n", err)
	}

	if err := output.FormatNodes(cfg.Format, os.Stdout, cfg.Query, nodes); err != nil {
		return exit.Errorf("Error: %v\n", err)
	}
	return &exit.Result{Output: os.Stdout, ExitCode: 0}
}

func runSuite(cfg *config.Config, doc *document.Document) *exit.Result {
	f, err := os.Open(cfg.SuiteFile)
	if err != nil {
		return exit.Errorf("Error: %v\n", err)
	}
	defer f.Close()

	queries, err := suite.Parse(f)
	if err != nil {
		return exit.Errorf("Error: %v\n", err)
	}

	report := suite.Run(doc, queries)
	if err := output.FormatReport(cfg.Format, os.Stdout, report); err != nil {
		return exit.Errorf("Error: %v\n", err)
	}

	if !report.Passed {
		return &exit.Result{Output: os.Stdout, ExitCode: 1}
	}
	return &exit.Result{Output: os.Stdout, ExitCode: 0}
}
