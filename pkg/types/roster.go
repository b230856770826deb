// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Shift identifies one of the four fixed duty periods of a roster.
type Shift string

const (
	ShiftPernoite Shift = "pernoite"
	ShiftManha    Shift = "manha"
	ShiftTarde    Shift = "tarde"
	ShiftDiario   Shift = "diario"
)

// AllShifts lists every shift in display order.
var AllShifts = []Shift{ShiftPernoite, ShiftManha, ShiftTarde, ShiftDiario}

// Valid reports whether s is one of the four known shifts.
func (s Shift) Valid() bool {
	switch s {
	case ShiftPernoite, ShiftManha, ShiftTarde, ShiftDiario:
		return true
	}
	return false
}

// Header keys populated by the header extractor.
const (
	HeaderUnidade = "unidade"
	HeaderPeriodo = "periodo"
	HeaderData    = "data"
	HeaderEscala  = "escala"
)

// HeaderInfo maps header keys to the text found for them. Keys whose pattern
// did not match are absent.
type HeaderInfo map[string]string

// PersonnelRecord is one rank/name pair found under a shift heading.
type PersonnelRecord struct {
	// Rank is the rank token as it appeared in the line (e.g. "2º SGT").
	Rank string `json:"patente" yaml:"patente"`

	// Name is the cleaned uppercase name.
	Name string `json:"nome" yaml:"nome"`

	// OriginalLine is the trimmed source line the record came from.
	OriginalLine string `json:"linha_original" yaml:"linha_original"`

	// Shift is the heading the line appeared under.
	Shift Shift `json:"turno" yaml:"turno"`
}

// ShiftBuckets holds the records of each shift in document order. All four
// buckets are always present, so they serialize as empty lists, never null.
type ShiftBuckets struct {
	Pernoite []PersonnelRecord `json:"pernoite" yaml:"pernoite"`
	Manha    []PersonnelRecord `json:"manha" yaml:"manha"`
	Tarde    []PersonnelRecord `json:"tarde" yaml:"tarde"`
	Diario   []PersonnelRecord `json:"diario" yaml:"diario"`
}

// NewShiftBuckets returns buckets with every shift initialized to an empty list.
func NewShiftBuckets() ShiftBuckets {
	return ShiftBuckets{
		Pernoite: []PersonnelRecord{},
		Manha:    []PersonnelRecord{},
		Tarde:    []PersonnelRecord{},
		Diario:   []PersonnelRecord{},
	}
}

func (b *ShiftBuckets) bucket(s Shift) *[]PersonnelRecord {
	switch s {
	case ShiftPernoite:
		return &b.Pernoite
	case ShiftManha:
		return &b.Manha
	case ShiftTarde:
		return &b.Tarde
	case ShiftDiario:
		return &b.Diario
	}
	return nil
}

// Add appends r to the bucket named by r.Shift. It reports false, leaving the
// buckets untouched, when r.Shift is not a known shift.
func (b *ShiftBuckets) Add(r PersonnelRecord) bool {
	p := b.bucket(r.Shift)
	if p == nil {
		return false
	}
	*p = append(*p, r)
	return true
}

// Records returns the records of shift s, or nil for an unknown shift.
func (b ShiftBuckets) Records(s Shift) []PersonnelRecord {
	if p := b.bucket(s); p != nil {
		return *p
	}
	return nil
}

// ShiftCounts holds the number of records per shift.
type ShiftCounts struct {
	Pernoite int `json:"pernoite" yaml:"pernoite"`
	Manha    int `json:"manha" yaml:"manha"`
	Tarde    int `json:"tarde" yaml:"tarde"`
	Diario   int `json:"diario" yaml:"diario"`
}

// Count returns the count stored for shift s.
func (c ShiftCounts) Count(s Shift) int {
	switch s {
	case ShiftPernoite:
		return c.Pernoite
	case ShiftManha:
		return c.Manha
	case ShiftTarde:
		return c.Tarde
	case ShiftDiario:
		return c.Diario
	}
	return 0
}

// Statistics summarizes a roster.
type Statistics struct {
	TotalPersonnel int         `json:"total_militares" yaml:"total_militares"`
	PerShift       ShiftCounts `json:"por_turno" yaml:"por_turno"`
}

// NewStatistics counts the records in b.
func NewStatistics(b ShiftBuckets) Statistics {
	counts := ShiftCounts{
		Pernoite: len(b.Pernoite),
		Manha:    len(b.Manha),
		Tarde:    len(b.Tarde),
		Diario:   len(b.Diario),
	}
	return Statistics{
		TotalPersonnel: counts.Pernoite + counts.Manha + counts.Tarde + counts.Diario,
		PerShift:       counts,
	}
}

// RosterResult is everything extracted from one roster document.
type RosterResult struct {
	Header       HeaderInfo   `json:"cabecalho" yaml:"cabecalho"`
	Shifts       ShiftBuckets `json:"turnos" yaml:"turnos"`
	Observations []string     `json:"observacoes" yaml:"observacoes"`
	Statistics   Statistics   `json:"estatisticas" yaml:"estatisticas"`
}

// errorPrefix is prepended to every document failure message.
const errorPrefix = "Erro ao processar PDF: "

// ErrorResult is emitted instead of a RosterResult when the document could
// not be opened or read. Callers distinguish it by the presence of "erro".
type ErrorResult struct {
	Error string `json:"erro" yaml:"erro"`
}

// NewErrorResult wraps err in the error body.
func NewErrorResult(err error) ErrorResult {
	return ErrorResult{Error: errorPrefix + err.Error()}
}
