// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/escala-extractor/internal/document"
	"github.com/pdiddy/escala-extractor/internal/render"
	"github.com/pdiddy/escala-extractor/pkg/types"
)

// fakeLoader implements document.Loader for testing. It returns canned text
// or an error, depending on configuration.
type fakeLoader struct {
	text  string
	err   error
	calls int
}

func (f *fakeLoader) Load(path string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

const rosterText = `ESCALA DE SERVIÇO
SERVIÇO DA MANHÃ 08:00
2º SGT JOAO DA SILVA
SD AB
OBS: Trocar escala nos feriados
`

func TestConvertRoster(t *testing.T) {
	tests := []struct {
		name       string
		loader     *fakeLoader
		wantFailed bool
		wantLog    string
	}{
		{
			name:    "successful conversion",
			loader:  &fakeLoader{text: rosterText},
			wantLog: "converted: escala (1 personnel;",
		},
		{
			name: "missing document",
			loader: &fakeLoader{err: &document.Error{
				Kind: document.KindNotFound,
				Path: "escala.pdf",
				Err:  errors.New("open escala.pdf: no such file or directory"),
			}},
			wantFailed: true,
			wantLog:    "failed:  escala (not found:",
		},
		{
			name:       "plain loader error",
			loader:     &fakeLoader{err: errors.New("broken xref")},
			wantFailed: true,
			wantLog:    "failed:  escala (invalid: broken xref)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var log bytes.Buffer
			out := ConvertRoster(tt.loader, "/data/escala.pdf", &log)

			if out.Failed() != tt.wantFailed {
				t.Errorf("Failed() = %v, want %v", out.Failed(), tt.wantFailed)
			}
			if tt.wantFailed && out.Result != nil {
				t.Error("failed outcome should not carry a result")
			}
			if !strings.Contains(log.String(), tt.wantLog) {
				t.Errorf("log output %q does not contain %q", log.String(), tt.wantLog)
			}
			if tt.loader.calls != 1 {
				t.Errorf("loader called %d times, want 1", tt.loader.calls)
			}
		})
	}
}

func TestConvertRoster_Document(t *testing.T) {
	out := ConvertRoster(&fakeLoader{text: rosterText}, "escala.pdf", io.Discard)
	result, ok := out.Document().(*types.RosterResult)
	if !ok {
		t.Fatalf("Document() = %T, want *types.RosterResult", out.Document())
	}
	if got := len(result.Shifts.Manha); got != 1 {
		t.Fatalf("manha records = %d, want 1", got)
	}
	if result.Shifts.Manha[0].Name != "JOAO DA SILVA" {
		t.Errorf("name = %q, want JOAO DA SILVA", result.Shifts.Manha[0].Name)
	}
	if out.Stats.DroppedNames != 1 {
		t.Errorf("dropped names = %d, want 1", out.Stats.DroppedNames)
	}
}

func TestConvertRoster_MissingFileBody(t *testing.T) {
	l, err := document.NewPDFLoader(types.LayoutRows)
	if err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(t.TempDir(), "escala.pdf")

	out := ConvertRoster(l, missing, io.Discard)
	if !out.Failed() {
		t.Fatal("expected failure for missing file")
	}
	if !errors.Is(out.Err, document.ErrNotFound) {
		t.Errorf("error %v is not ErrNotFound", out.Err)
	}

	var buf bytes.Buffer
	if err := render.JSON(&buf, out.Document()); err != nil {
		t.Fatal(err)
	}
	var body map[string]string
	if err := json.Unmarshal(buf.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if len(body) != 1 {
		t.Errorf("body has %d keys, want 1: %v", len(body), body)
	}
	if !strings.HasPrefix(body["erro"], "Erro ao processar PDF: ") {
		t.Errorf("erro = %q, want prefix %q", body["erro"], "Erro ao processar PDF: ")
	}
	if _, statErr := os.Stat(missing); !os.IsNotExist(statErr) {
		t.Error("test file should not exist")
	}
}

func TestConvertRoster_Idempotent(t *testing.T) {
	encode := func() string {
		var buf bytes.Buffer
		out := ConvertRoster(&fakeLoader{text: rosterText}, "escala.pdf", io.Discard)
		if err := render.JSON(&buf, out.Document()); err != nil {
			t.Fatal(err)
		}
		return buf.String()
	}
	if a, b := encode(), encode(); a != b {
		t.Errorf("outputs differ:\n%s\n---\n%s", a, b)
	}
}
