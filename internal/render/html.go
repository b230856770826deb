// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render writes roster results as JSON, YAML, or an HTML fragment.
//
// The HTML fragment interpolates field values without escaping. Callers that
// display it next to untrusted content must pass it through Sanitize.
package render

import (
	"fmt"
	"io"
	"text/template"

	"github.com/microcosm-cc/bluemonday"

	"github.com/pdiddy/escala-extractor/pkg/types"
)

// shiftTitles gives the display order and heading of each shift table.
var shiftTitles = []struct {
	shift types.Shift
	title string
}{
	{types.ShiftPernoite, "Serviço de Pernoite"},
	{types.ShiftManha, "Serviço da Manhã"},
	{types.ShiftTarde, "Serviço da Tarde"},
	{types.ShiftDiario, "Serviço Diário"},
}

type section struct {
	Title   string
	Records []types.PersonnelRecord
}

type page struct {
	Header       types.HeaderInfo
	Sections     []section
	Observations []string
}

// text/template on purpose: values are written raw.
var fragment = template.Must(template.New("escala").Parse(`<div class="escala-militar-container">
  <div class="escala-header">
    <h2>Escala de Serviço</h2>
{{- with index .Header "unidade"}}
    <p><strong>{{.}}</strong></p>
{{- end}}
{{- with index .Header "periodo"}}
    <p>Período: {{.}}</p>
{{- end}}
  </div>
  <div class="turnos-container">
{{- range .Sections}}
    <div class="turno-section">
      <h3 class="turno-title">{{.Title}}</h3>
      <table class="militares-table">
        <thead>
          <tr>
            <th>Posto/Graduação</th>
            <th>Nome</th>
          </tr>
        </thead>
        <tbody>
{{- range .Records}}
          <tr>
            <td class="patente">{{.Rank}}</td>
            <td class="nome">{{.Name}}</td>
          </tr>
{{- end}}
        </tbody>
      </table>
    </div>
{{- end}}
{{- if .Observations}}
    <div class="observacoes-section">
      <h3>Observações</h3>
      <ul>
{{- range .Observations}}
        <li>{{.}}</li>
{{- end}}
      </ul>
    </div>
{{- end}}
  </div>
</div>
`))

// HTML writes result as an HTML fragment: a header block, one table per
// shift that has records, and the observations list when there is one.
func HTML(w io.Writer, result types.RosterResult) error {
	p := page{
		Header:       result.Header,
		Observations: result.Observations,
	}
	for _, st := range shiftTitles {
		if recs := result.Shifts.Records(st.shift); len(recs) > 0 {
			p.Sections = append(p.Sections, section{Title: st.title, Records: recs})
		}
	}
	if err := fragment.Execute(w, p); err != nil {
		return fmt.Errorf("rendering html: %w", err)
	}
	return nil
}

var sanitizer = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowStyling()
	return p
}()

// Sanitize removes scripts, event handlers, and any other markup outside a
// user-content allow list, keeping tables and class attributes.
func Sanitize(html string) string {
	return sanitizer.Sanitize(html)
}
