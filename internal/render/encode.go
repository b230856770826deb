// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/escala-extractor/pkg/types"
)

// JSON writes v indented by two spaces. Non-ASCII text and HTML characters
// are written as is.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}

// YAML writes v as a YAML document indented by two spaces.
func YAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

// Write renders v in the given format. Only a *types.RosterResult or
// types.RosterResult can be rendered as HTML; anything else, such as an
// error body, falls back to JSON so callers can still parse it.
func Write(w io.Writer, format types.OutputFormat, sanitize bool, v any) error {
	switch format {
	case types.OutputYAML:
		return YAML(w, v)
	case types.OutputHTML:
		var result types.RosterResult
		switch r := v.(type) {
		case types.RosterResult:
			result = r
		case *types.RosterResult:
			result = *r
		default:
			return JSON(w, v)
		}
		if !sanitize {
			return HTML(w, result)
		}
		var b strings.Builder
		if err := HTML(&b, result); err != nil {
			return err
		}
		_, err := io.WriteString(w, Sanitize(b.String()))
		return err
	case types.OutputJSON, "":
		return JSON(w, v)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
