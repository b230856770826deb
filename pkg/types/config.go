// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// OutputFormat selects how a result is written to stdout.
type OutputFormat string

const (
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
	OutputHTML OutputFormat = "html"
)

// TextLayout selects how page text is linearized before scanning.
type TextLayout string

const (
	// LayoutRows groups text by baseline, one line per visual row.
	LayoutRows TextLayout = "rows"

	// LayoutPlain uses the reader's plain-text stream as is.
	LayoutPlain TextLayout = "plain"
)

// Config holds the CLI settings. Each field can come from a flag, the
// escala.yaml config file, or an ESCALA_* environment variable.
type Config struct {
	// Format is the output format: json, yaml, or html (default json).
	Format OutputFormat `json:"format" yaml:"format"`

	// Layout is the text linearization mode: rows or plain (default rows).
	Layout TextLayout `json:"layout" yaml:"layout"`

	// Sanitize passes HTML output through an allow-list sanitizer.
	Sanitize bool `json:"sanitize" yaml:"sanitize"`

	// Verbose prints scan diagnostics to stderr.
	Verbose bool `json:"verbose" yaml:"verbose"`
}
