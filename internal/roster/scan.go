// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package roster turns the linearized text of a duty roster into a
// RosterResult. Headers are read from the whole text; everything else comes
// from a single pass over the lines, tracking which shift heading was seen
// last.
package roster

import (
	"fmt"
	"strings"

	"github.com/pdiddy/escala-extractor/pkg/types"
)

// ScanStats counts what a scan saw. It is diagnostic only and never part of
// the result document.
type ScanStats struct {
	// Lines is the number of non-blank lines scanned.
	Lines int

	// Headings is the number of lines consumed as shift headings.
	Headings int

	// Skipped is the number of lines seen before the first heading.
	Skipped int

	// DroppedNames counts rank matches whose cleaned name was too short.
	DroppedNames int
}

// String formats the stats for --verbose output.
func (s ScanStats) String() string {
	return fmt.Sprintf("%d lines, %d headings, %d before first heading, %d names dropped",
		s.Lines, s.Headings, s.Skipped, s.DroppedNames)
}

// Scan extracts a roster from text. Every call starts from empty
// accumulators, so results never leak between documents.
func Scan(text string) (types.RosterResult, ScanStats) {
	var stats ScanStats
	buckets := types.NewShiftBuckets()
	observations := []string{}

	var current types.Shift
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		stats.Lines++

		if shift, ok := ClassifyShift(line); ok {
			current = shift
			stats.Headings++
			continue
		}

		if current == "" {
			stats.Skipped++
		} else {
			switch rec, m := ExtractPersonnel(line, current); m {
			case MatchRecord:
				buckets.Add(rec)
			case MatchShortName:
				stats.DroppedNames++
			}
		}

		if IsObservation(line) {
			observations = append(observations, line)
		}
	}

	return types.RosterResult{
		Header:       ExtractHeader(text),
		Shifts:       buckets,
		Observations: observations,
		Statistics:   types.NewStatistics(buckets),
	}, stats
}
