package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestParse_Valid(t *testing.T) {
	t.Parallel()

	file := writeTempFile(t, "page.html", "<div>x</div>")

	cfg, result := Parse([]string{"hq", "-file", file, "-query", "div", "-format", "json", "-cache"})
	if result != nil {
		t.Fatalf("Parse() result = %+v, want nil", result)
	}

	if cfg.File != file {
		t.Errorf("File = %q, want %q", cfg.File, file)
	}
	if cfg.Query != "div" {
		t.Errorf("Query = %q, want div", cfg.Query)
	}
	if cfg.Format != FormatJSON {
		t.Errorf("Format = %q, want json", cfg.Format)
	}
	if !cfg.UseCache {
		t.Error("UseCache = false, want true")
	}
	if cfg.RequestTimeout != DefaultTimeout {
		t.Errorf("RequestTimeout = %v, want %v", cfg.RequestTimeout, DefaultTimeout)
	}
}

func TestParse_URLWithOptions(t *testing.T) {
	t.Parallel()

	cfg, result := Parse([]string{"hq", "-url", "https://example.com", "-query", "h1",
		"-timeout", "5s", "-rate-limit", "2"})
	if result != nil {
		t.Fatalf("Parse() result = %+v, want nil", result)
	}

	if cfg.URL != "https://example.com" {
		t.Errorf("URL = %q", cfg.URL)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("RequestTimeout = %v, want 5s", cfg.RequestTimeout)
	}
	if cfg.RateLimit != 2 {
		t.Errorf("RateLimit = %f, want 2", cfg.RateLimit)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{
			name: "no_input",
			cfg:  Config{Query: "div", Format: FormatText},
			want: ErrNoInput,
		},
		{
			name: "both_inputs",
			cfg:  Config{URL: "https://x", File: "y", Query: "div", Format: FormatText},
			want: ErrTwoInputs,
		},
		{
			name: "no_query",
			cfg:  Config{URL: "https://x", Format: FormatText},
			want: ErrNoQuery,
		},
		{
			name: "both_queries",
			cfg:  Config{URL: "https://x", Query: "div", SuiteFile: "s.yaml", Format: FormatText},
			want: ErrTwoQueries,
		},
		{
			name: "bad_format",
			cfg:  Config{URL: "https://x", Query: "div", Format: "yaml"},
			want: ErrUnknownFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := tt.cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParse_MissingFile(t *testing.T) {
	t.Parallel()

	_, result := Parse([]string{"hq", "-file", "no/such/file.html", "-query", "div"})
	if result == nil {
		t.Fatal("Parse() should fail for a missing input file")
	}
	if result.ExitCode == 0 {
		t.Errorf("ExitCode = %d, want non-zero", result.ExitCode)
	}
}

func TestParse_Help(t *testing.T) {
	t.Parallel()

	_, result := Parse([]string{"hq", "-h"})
	if result == nil {
		t.Fatal("Parse(-h) should return a result")
	}
	if result.ExitCode != 0 {
		t.Errorf("Parse(-h) exit code = %d, want 0", result.ExitCode)
	}
}
