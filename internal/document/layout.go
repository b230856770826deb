// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	// rowTolerance is how far apart, in points, two baselines may be and
	// still belong to the same line.
	rowTolerance = 2.0

	// wordGap is the horizontal gap, as a fraction of the font size, above
	// which two glyphs are separated by a space. Kerning in TJ arrays stays
	// well below it.
	wordGap = 0.15
)

// rowLines rebuilds visual lines: glyphs are grouped by baseline, top to
// bottom, and each line is read left to right.
func rowLines(glyphs []pdf.Text) []string {
	if len(glyphs) == 0 {
		return nil
	}
	gs := append([]pdf.Text(nil), glyphs...)

	sort.SliceStable(gs, func(i, j int) bool { return gs[i].Y > gs[j].Y })
	base := gs[0].Y
	for i := range gs {
		if base-gs[i].Y <= rowTolerance {
			gs[i].Y = base
		} else {
			base = gs[i].Y
		}
	}
	sort.SliceStable(gs, func(i, j int) bool {
		if gs[i].Y != gs[j].Y {
			return gs[i].Y > gs[j].Y
		}
		return gs[i].X < gs[j].X
	})

	var lines []string
	start := 0
	for i := 1; i <= len(gs); i++ {
		if i == len(gs) || gs[i].Y != gs[start].Y {
			lines = append(lines, joinGlyphs(gs[start:i]))
			start = i
		}
	}
	return lines
}

// streamLines keeps the content stream order and starts a new line whenever
// the baseline moves.
func streamLines(glyphs []pdf.Text) []string {
	var lines []string
	start := 0
	for i := 1; i <= len(glyphs); i++ {
		if i == len(glyphs) || math.Abs(glyphs[i].Y-glyphs[i-1].Y) > rowTolerance {
			lines = append(lines, joinGlyphs(glyphs[start:i]))
			start = i
		}
	}
	return lines
}

// joinGlyphs concatenates one line of glyphs, inserting a space where the
// gap after the previous glyph is wider than wordGap.
func joinGlyphs(gs []pdf.Text) string {
	var b strings.Builder
	var end float64
	for i, g := range gs {
		if i > 0 && g.X-end > wordGap*g.FontSize &&
			!strings.HasSuffix(b.String(), " ") && !strings.HasPrefix(g.S, " ") {
			b.WriteByte(' ')
		}
		b.WriteString(g.S)
		end = g.X + g.W
	}
	return b.String()
}
