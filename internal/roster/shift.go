// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package roster

import (
	"strings"

	"github.com/pdiddy/escala-extractor/pkg/types"
)

// shiftRule maps a set of lowercase keywords to the shift they announce.
type shiftRule struct {
	shift    types.Shift
	keywords []string
}

// shiftRules are checked in order; the first rule with a matching keyword
// wins, so a line with both "24:00" and "tarde" is a pernoite heading.
var shiftRules = []shiftRule{
	{types.ShiftPernoite, []string{"pernoite", "noite", "00:00", "24:00"}},
	{types.ShiftManha, []string{"manhã", "manha", "06:00", "08:00"}},
	{types.ShiftTarde, []string{"tarde", "12:00", "14:00", "18:00"}},
	{types.ShiftDiario, []string{"diário", "diario", "administrativo"}},
}

// ClassifyShift reports whether line is a shift heading and, if so, which
// shift it opens.
func ClassifyShift(line string) (types.Shift, bool) {
	lower := strings.ToLower(line)
	for _, rule := range shiftRules {
		if containsAny(lower, rule.keywords) {
			return rule.shift, true
		}
	}
	return "", false
}

func containsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
