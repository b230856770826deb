// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert runs a roster PDF through loading and scanning, turning
// any document failure into the error body instead of returning it.
package convert

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pdiddy/escala-extractor/internal/document"
	"github.com/pdiddy/escala-extractor/internal/roster"
	"github.com/pdiddy/escala-extractor/pkg/types"
)

// Outcome is the result of converting one document. Exactly one of Result
// and Err is set.
type Outcome struct {
	Result *types.RosterResult
	Stats  roster.ScanStats
	Err    error
}

// Failed reports whether the document could not be read.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Document returns the value written to stdout: the roster, or the
// single-key error body.
func (o Outcome) Document() any {
	if o.Err != nil {
		return types.NewErrorResult(o.Err)
	}
	return o.Result
}

// ConvertRoster loads pdfPath with l and scans its text. Per-file status is
// printed to w.
func ConvertRoster(l document.Loader, pdfPath string, w io.Writer) Outcome {
	base := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))

	text, err := l.Load(pdfPath)
	if err != nil {
		kind := document.KindInvalid
		var de *document.Error
		if errors.As(err, &de) {
			kind = de.Kind
		}
		fmt.Fprintf(w, "failed:  %s (%s: %v)\n", base, kind, err)
		return Outcome{Err: err}
	}

	result, stats := roster.Scan(text)
	fmt.Fprintf(w, "converted: %s (%d personnel; %s)\n", base, result.Statistics.TotalPersonnel, stats)
	return Outcome{Result: &result, Stats: stats}
}
