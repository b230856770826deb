// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/escala-extractor/pkg/types"
)

func TestRootArgs(t *testing.T) {
	assert.Error(t, rootCmd.Args(rootCmd, nil))
	assert.Error(t, rootCmd.Args(rootCmd, []string{"a.pdf", "b.pdf"}))
	assert.NoError(t, rootCmd.Args(rootCmd, []string{"a.pdf"}))
}

func TestRun_MissingFile(t *testing.T) {
	for _, format := range []types.OutputFormat{types.OutputJSON, types.OutputHTML} {
		t.Run(string(format), func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			missing := filepath.Join(t.TempDir(), "escala.pdf")

			err := run(types.Config{Format: format}, missing, &stdout, &stderr)
			require.NoError(t, err, "document failures are reported in the body")

			var body map[string]string
			require.NoError(t, json.Unmarshal(stdout.Bytes(), &body))
			require.Len(t, body, 1)
			assert.True(t, strings.HasPrefix(body["erro"], "Erro ao processar PDF: "), body["erro"])
			assert.Contains(t, body["erro"], "escala.pdf")
			assert.Empty(t, stderr.String(), "diagnostics are off without verbose")
		})
	}
}

func TestRun_Verbose(t *testing.T) {
	var stdout, stderr bytes.Buffer
	missing := filepath.Join(t.TempDir(), "escala.pdf")

	require.NoError(t, run(types.Config{Verbose: true}, missing, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "failed:  escala (not found:")
}

func TestRun_BadSettings(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run(types.Config{Format: "csv"}, "escala.pdf", &stdout, &stderr)
	assert.ErrorContains(t, err, `unknown output format "csv"`)

	err = run(types.Config{Layout: "columns"}, "escala.pdf", &stdout, &stderr)
	assert.ErrorContains(t, err, `unknown layout "columns"`)

	assert.Empty(t, stdout.String())
}

func TestExecute_ArgCount(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "no arguments", args: []string{}, want: "accepts 1 arg(s), received 0"},
		{name: "two arguments", args: []string{"a.pdf", "b.pdf"}, want: "accepts 1 arg(s), received 2"},
		{name: "unknown flag", args: []string{"--pages", "a.pdf"}, want: "unknown flag: --pages"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			code := execute(tt.args, &stdout, &stderr)

			assert.Equal(t, 1, code)
			assert.Contains(t, stderr.String(), tt.want)
			assert.Contains(t, stderr.String(), "Usage:")
			assert.Contains(t, stderr.String(), "escala <pdf>")
			assert.Empty(t, stdout.String())
		})
	}
}

func TestExecute_MissingFileExitsZero(t *testing.T) {
	var stdout, stderr bytes.Buffer
	missing := filepath.Join(t.TempDir(), "escala.pdf")

	code := execute([]string{missing}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &body))
	assert.True(t, strings.HasPrefix(body["erro"], "Erro ao processar PDF: "), body["erro"])
	assert.NotContains(t, stderr.String(), "Usage:")
}

func TestVersionCmd(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := execute([]string{"version"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Equal(t, "escala dev\n", stdout.String())
}
