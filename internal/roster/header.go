// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package roster

import (
	"regexp"
	"strings"

	"github.com/pdiddy/escala-extractor/pkg/types"
)

// headerRule extracts one header field. When group is 0 the whole match is
// kept; otherwise the numbered capture group is.
type headerRule struct {
	key     string
	pattern *regexp.Regexp
	group   int
}

// headerRules run against the full document text, not line by line.
// \p{Zs} lets no-break spaces separate a label from its value.
var headerRules = []headerRule{
	{
		key:     types.HeaderUnidade,
		pattern: regexp.MustCompile(`(?i)(?:COMANDO|QUARTEL|BATALHÃO|REGIMENTO|COMPANHIA)[^\n]*`),
	},
	{
		key:     types.HeaderPeriodo,
		pattern: regexp.MustCompile(`(?i)(?:PERÍODO|PERIODO)[:\s\p{Zs}]*([^\n]+)`),
		group:   1,
	},
	{
		key:     types.HeaderData,
		pattern: regexp.MustCompile(`(?i)(?:DATA|DE)[:\s\p{Zs}]*(\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4})`),
		group:   1,
	},
	{
		key:     types.HeaderEscala,
		pattern: regexp.MustCompile(`(?i)(?:ESCALA|SERVIÇO)[^\n]*`),
	},
}

// ExtractHeader returns the header fields found in text. Only the first match
// of each rule counts; rules that do not match leave their key absent.
func ExtractHeader(text string) types.HeaderInfo {
	header := types.HeaderInfo{}
	for _, rule := range headerRules {
		m := rule.pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		header[rule.key] = strings.TrimSpace(m[rule.group])
	}
	return header
}
