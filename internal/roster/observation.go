// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package roster

import "strings"

var observationKeywords = []string{"obs:", "observação", "observacao", "nota:"}

// IsObservation reports whether line is a free-text annotation.
func IsObservation(line string) bool {
	return containsAny(strings.ToLower(line), observationKeywords)
}
