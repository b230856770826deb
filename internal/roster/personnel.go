// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package roster

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/escala-extractor/pkg/types"
)

// minNameLength is the longest cleaned name that is still rejected.
const minNameLength = 2

var (
	// personnelPattern matches a rank token followed by an uppercase name.
	// Ranks are tried in the listed order at each position. \p{Zs} makes
	// no-break spaces count as whitespace.
	personnelPattern = regexp.MustCompile(
		`(?i)(1º[\s\p{Zs}]*TEN|2º[\s\p{Zs}]*TEN|1º[\s\p{Zs}]*SGT|2º[\s\p{Zs}]*SGT|3º[\s\p{Zs}]*SGT|CB|SD|MN|CC|SO|1SG|2SG|3SG)` +
			`[\s\p{Zs}]+([A-ZÁÀÃÂÉÊÍÓÔÕÚÇ\s\p{Zs}]+)`)

	// nameNoise is case sensitive: lowercase letters are removed from names.
	nameNoise = regexp.MustCompile(`[^A-ZÁÀÃÂÉÊÍÓÔÕÚÇ\s\p{Zs}]`)
)

// Match tells what ExtractPersonnel found in a line.
type Match int

const (
	// MatchNone means no rank token followed by a name.
	MatchNone Match = iota

	// MatchShortName means a rank matched but the cleaned name was too
	// short to keep.
	MatchShortName

	// MatchRecord means a record was extracted.
	MatchRecord
)

// ExtractPersonnel returns the record held by line under shift. Only the
// first rank/name pair in the line is considered. The record is valid only
// when the Match is MatchRecord; an unknown shift always yields MatchNone.
func ExtractPersonnel(line string, shift types.Shift) (types.PersonnelRecord, Match) {
	if !shift.Valid() {
		return types.PersonnelRecord{}, MatchNone
	}
	m := personnelPattern.FindStringSubmatch(line)
	if m == nil {
		return types.PersonnelRecord{}, MatchNone
	}
	name := strings.TrimSpace(nameNoise.ReplaceAllString(strings.TrimSpace(m[2]), ""))
	if utf8.RuneCountInString(name) <= minNameLength {
		return types.PersonnelRecord{}, MatchShortName
	}
	return types.PersonnelRecord{
		Rank:         strings.TrimSpace(m[1]),
		Name:         name,
		OriginalLine: strings.TrimSpace(line),
		Shift:        shift,
	}, MatchRecord
}
